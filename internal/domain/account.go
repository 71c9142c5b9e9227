package domain

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Account is the wallet address identifying a merchant session.
type Account string

// ParseAccount validates an EVM wallet address and normalizes it to lower case.
func ParseAccount(s string) (Account, error) {
	s = strings.TrimSpace(s)
	if !addressPattern.MatchString(s) {
		return "", errors.Wrapf(ErrInvalidAccount, "%q", s)
	}
	return Account(strings.ToLower(s)), nil
}

// IsZero reports whether no account is set
func (a Account) IsZero() bool {
	return a == ""
}

func (a Account) String() string {
	return string(a)
}

// Short renders the address as 0x1234...abcd
func (a Account) Short() string {
	s := string(a)
	if len(s) <= 10 {
		return s
	}
	return s[:6] + "..." + s[len(s)-4:]
}

// Initials returns the two characters after the 0x prefix, upper-cased.
func (a Account) Initials() string {
	s := string(a)
	if len(s) < 4 {
		return "??"
	}
	return strings.ToUpper(s[2:4])
}
