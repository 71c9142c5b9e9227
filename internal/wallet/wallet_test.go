package wallet

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/movo/dashboard/internal/domain"
	"github.com/movo/dashboard/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

const addr = "0xAbCdEf0123456789aBcDeF0123456789AbCdEf01"

func TestStore_RoundTrip(t *testing.T) {
	keyring.MockInit()
	s := NewStore("movo-test", "")

	_, err := s.Get()
	assert.ErrorIs(t, err, ErrNotStored)

	require.NoError(t, s.Set(addr))
	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, addr, got)

	require.NoError(t, s.Delete())
	_, err = s.Get()
	assert.ErrorIs(t, err, ErrNotStored)

	// deleting twice is fine
	assert.NoError(t, s.Delete())
	assert.True(t, s.IsAvailable())
}

func TestStore_EnvOverride(t *testing.T) {
	keyring.MockInit()
	t.Setenv("MOVO_TEST_WALLET", addr)
	s := NewStore("movo-test", "MOVO_TEST_WALLET")

	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, addr, got)
}

func TestStore_KeyringFailure(t *testing.T) {
	keyring.MockInitWithError(errors.New("no secret service"))
	s := NewStore("movo-test", "")

	_, err := s.Get()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotStored))
	assert.False(t, s.IsAvailable())
}

func TestProvider_ConnectDisconnect(t *testing.T) {
	keyring.MockInit()
	p := NewProvider(NewStore("movo-test", ""), nil)
	assert.False(t, p.Current().Connected)

	account, err := p.Connect(addr)
	require.NoError(t, err)
	assert.Equal(t, domain.Account("0xabcdef0123456789abcdef0123456789abcdef01"), account)

	ev := <-p.Events()
	assert.Equal(t, session.Change{Connected: true, Account: account}, ev)
	assert.True(t, p.Current().Connected)

	require.NoError(t, p.Disconnect())
	ev = <-p.Events()
	assert.False(t, ev.Connected)
	assert.False(t, p.Current().Connected)
}

func TestProvider_ReconnectSameAccountIsSilent(t *testing.T) {
	keyring.MockInit()
	p := NewProvider(NewStore("movo-test", ""), nil)

	_, err := p.Connect(addr)
	require.NoError(t, err)
	<-p.Events()

	_, err = p.Connect(addr)
	require.NoError(t, err)
	assert.Empty(t, p.Events())
}

func TestProvider_RestoresStoredWallet(t *testing.T) {
	keyring.MockInit()
	store := NewStore("movo-test", "")
	require.NoError(t, store.Set(addr))

	p := NewProvider(store, nil)
	cur := p.Current()
	assert.True(t, cur.Connected)
	assert.Equal(t, "0xabcdef0123456789abcdef0123456789abcdef01", cur.Account.String())
}

func TestProvider_RejectsInvalidAddress(t *testing.T) {
	keyring.MockInit()
	p := NewProvider(NewStore("movo-test", ""), nil)

	_, err := p.Connect("0x123")
	assert.True(t, errors.Is(err, domain.ErrInvalidAccount))
	assert.False(t, p.Current().Connected)
	assert.Empty(t, p.Events())
}
