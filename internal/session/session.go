// Package session tracks wallet connectivity and the active merchant account.
//
// The wallet provider owns connectivity; a session Context only observes its
// change events and republishes them as Invalidation events so that every
// component holding per-account state can reset before new data is requested.
package session

import (
	"github.com/movo/dashboard/internal/domain"
	"go.uber.org/zap"
)

// Change is raised by the wallet provider whenever connectivity or the account changes.
type Change struct {
	Connected bool
	Account   domain.Account
}

// Invalidation tells dependents that all state tied to Previous is stale.
type Invalidation struct {
	Generation uint64
	Previous   domain.Account
	Account    domain.Account // zero when disconnected
}

// Connected reports whether the new session has an account
func (i Invalidation) Connected() bool {
	return !i.Account.IsZero()
}

// Context is the session state threaded into every session-scoped component.
type Context struct {
	account    domain.Account
	generation uint64
	listeners  []func(Invalidation)
	log        *zap.Logger
}

// New creates a disconnected session
func New(log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{log: log}
}

// Subscribe registers fn to run synchronously on every invalidation, in registration order.
func (c *Context) Subscribe(fn func(Invalidation)) {
	c.listeners = append(c.listeners, fn)
}

// Observe applies a wallet change. It returns false when nothing changed;
// otherwise the generation advances and all listeners run before it returns.
func (c *Context) Observe(ch Change) (Invalidation, bool) {
	next := ch.Account
	if !ch.Connected {
		next = ""
	}
	if next == c.account {
		return Invalidation{}, false
	}

	prev := c.account
	c.account = next
	c.generation++

	inv := Invalidation{
		Generation: c.generation,
		Previous:   prev,
		Account:    next,
	}

	if inv.Connected() {
		c.log.Info("wallet session changed",
			zap.String("account", next.String()),
			zap.Uint64("generation", c.generation))
	} else {
		c.log.Info("wallet disconnected",
			zap.String("previous", prev.String()),
			zap.Uint64("generation", c.generation))
	}

	for _, fn := range c.listeners {
		fn(inv)
	}
	return inv, true
}

// Connected reports whether a wallet account is active
func (c *Context) Connected() bool {
	return !c.account.IsZero()
}

// Account returns the active account, if any
func (c *Context) Account() (domain.Account, bool) {
	return c.account, !c.account.IsZero()
}

// Require returns the active account or ErrNoSession
func (c *Context) Require() (domain.Account, error) {
	if c.account.IsZero() {
		return "", domain.ErrNoSession
	}
	return c.account, nil
}

// Generation increases on every account change
func (c *Context) Generation() uint64 {
	return c.generation
}
