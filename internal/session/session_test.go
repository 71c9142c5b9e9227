package session

import (
	"testing"

	"github.com/movo/dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	acctA = domain.Account("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	acctB = domain.Account("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
)

func TestObserve_ConnectSwitchDisconnect(t *testing.T) {
	s := New(nil)
	var seen []Invalidation
	s.Subscribe(func(inv Invalidation) { seen = append(seen, inv) })

	_, err := s.Require()
	assert.ErrorIs(t, err, domain.ErrNoSession)

	inv, changed := s.Observe(Change{Connected: true, Account: acctA})
	require.True(t, changed)
	assert.True(t, inv.Connected())
	assert.Equal(t, acctA, inv.Account)
	assert.Equal(t, uint64(1), inv.Generation)

	acct, ok := s.Account()
	assert.True(t, ok)
	assert.Equal(t, acctA, acct)

	_, changed = s.Observe(Change{Connected: true, Account: acctB})
	require.True(t, changed)

	inv, changed = s.Observe(Change{Connected: false})
	require.True(t, changed)
	assert.False(t, inv.Connected())
	assert.Equal(t, acctB, inv.Previous)
	assert.False(t, s.Connected())

	require.Len(t, seen, 3)
	assert.Equal(t, uint64(3), s.Generation())
}

func TestObserve_NoChangeIsSilent(t *testing.T) {
	s := New(nil)
	calls := 0
	s.Subscribe(func(Invalidation) { calls++ })

	s.Observe(Change{Connected: true, Account: acctA})
	_, changed := s.Observe(Change{Connected: true, Account: acctA})
	assert.False(t, changed)

	// connected without an account is the same as disconnected
	s2 := New(nil)
	_, changed = s2.Observe(Change{Connected: true})
	assert.False(t, changed)

	assert.Equal(t, 1, calls)
}

func TestObserve_ListenersRunBeforeReturn(t *testing.T) {
	s := New(nil)
	var order []string
	s.Subscribe(func(Invalidation) { order = append(order, "first") })
	s.Subscribe(func(Invalidation) { order = append(order, "second") })

	s.Observe(Change{Connected: true, Account: acctA})
	order = append(order, "returned")

	assert.Equal(t, []string{"first", "second", "returned"}, order)
}
