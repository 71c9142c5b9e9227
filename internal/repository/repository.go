package repository

import (
	"context"

	"github.com/movo/dashboard/internal/domain"
)

// InvoiceFetcher is the invoice service read side
type InvoiceFetcher interface {
	FetchInvoices(ctx context.Context, account domain.Account) ([]domain.InvoiceRecord, error)
}

// Phase is the outcome of the most recent settled load
type Phase int

const (
	PhaseIdle      Phase = iota // nothing loaded yet
	PhaseNoSession              // load attempted without a wallet
	PhaseLoaded                 // list replaced by the latest response (possibly empty)
	PhaseFailed                 // latest load failed; distinct from an empty list
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseNoSession:
		return "no-session"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Request identifies one load attempt
type Request struct {
	Generation uint64
	Account    domain.Account
}

// Result is the outcome of Fetch, applied with Apply
type Result struct {
	Request
	Records []domain.InvoiceRecord
	Err     error
}
