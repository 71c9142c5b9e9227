package domain

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccount(t *testing.T) {
	a, err := ParseAccount("  0xAbCdEf0123456789abcdef0123456789ABCDEF01 ")
	require.NoError(t, err)
	assert.Equal(t, Account("0xabcdef0123456789abcdef0123456789abcdef01"), a)
	assert.Equal(t, "0xabcd...ef01", a.Short())
	assert.Equal(t, "AB", a.Initials())

	for _, bad := range []string{"", "0x123", "abcdef0123456789abcdef0123456789abcdef0123", "0xZZcdef0123456789abcdef0123456789abcdef01"} {
		_, err := ParseAccount(bad)
		assert.True(t, errors.Is(err, ErrInvalidAccount), bad)
	}
}

func TestProfileDisplay(t *testing.T) {
	acct := Account("0xabcdef0123456789abcdef0123456789abcdef01")

	var missing *MerchantProfile
	assert.Equal(t, "0xabcd...ef01", missing.DisplayName(acct))
	assert.Equal(t, acct.String(), missing.Contact(acct))

	p := &MerchantProfile{BusinessName: "Warung Jane"}
	assert.Equal(t, "Warung Jane", p.DisplayName(acct))

	p.Name = "Jane"
	p.Email = "jane@example.com"
	assert.Equal(t, "Jane", p.DisplayName(acct))
	assert.Equal(t, "jane@example.com", p.Contact(acct))
}

func TestProfileUpdateValidate(t *testing.T) {
	u := NewProfileUpdate(" Jane ", "Warung Jane", "jane@example.com")
	require.NoError(t, u.Validate())
	assert.Equal(t, "Jane", u.Name)

	u.Email = "nope"
	err := u.Validate()
	assert.True(t, errors.Is(err, ErrInvalidProfile))
	assert.Contains(t, err.Error(), "email must be a valid email address")
}
