// Package wallet is the wallet provider the dashboard session observes.
//
// Connecting stores an address in the OS keyring and raises a change event;
// the dashboard never signs anything, it only needs the merchant address.
package wallet

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/movo/dashboard/internal/domain"
	"github.com/movo/dashboard/internal/session"
	"go.uber.org/zap"
)

const eventBuffer = 16

// Provider connects and disconnects the merchant wallet
type Provider struct {
	store Store
	log   *zap.Logger

	mu      sync.Mutex
	current domain.Account
	events  chan session.Change
}

// NewProvider loads the previously connected address, if any
func NewProvider(store Store, log *zap.Logger) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Provider{
		store:  store,
		log:    log,
		events: make(chan session.Change, eventBuffer),
	}

	addr, err := store.Get()
	switch {
	case errors.Is(err, ErrNotStored):
	case err != nil:
		log.Warn("could not restore wallet", zap.Error(err))
	default:
		account, err := domain.ParseAccount(addr)
		if err != nil {
			log.Warn("ignoring stored wallet address", zap.Error(err))
			break
		}
		p.current = account
	}
	return p
}

// Current returns the connectivity snapshot
func (p *Provider) Current() session.Change {
	p.mu.Lock()
	defer p.mu.Unlock()
	return session.Change{Connected: !p.current.IsZero(), Account: p.current}
}

// Connect validates and stores address, then raises a change event
func (p *Provider) Connect(address string) (domain.Account, error) {
	account, err := domain.ParseAccount(address)
	if err != nil {
		return "", err
	}
	if err := p.store.Set(account.String()); err != nil {
		return "", err
	}

	p.mu.Lock()
	changed := p.current != account
	p.current = account
	p.mu.Unlock()

	p.log.Info("wallet connected", zap.String("account", account.String()))
	if changed {
		p.emit(session.Change{Connected: true, Account: account})
	}
	return account, nil
}

// Disconnect forgets the wallet and raises a change event
func (p *Provider) Disconnect() error {
	if err := p.store.Delete(); err != nil {
		return err
	}

	p.mu.Lock()
	prev := p.current
	p.current = ""
	p.mu.Unlock()

	if prev.IsZero() {
		return nil
	}
	p.log.Info("wallet disconnected", zap.String("account", prev.String()))
	p.emit(session.Change{Connected: false})
	return nil
}

// Events delivers change events in order
func (p *Provider) Events() <-chan session.Change {
	return p.events
}

func (p *Provider) emit(ch session.Change) {
	select {
	case p.events <- ch:
	default:
		p.log.Warn("wallet event dropped, listener is not draining", zap.Bool("connected", ch.Connected))
	}
}
