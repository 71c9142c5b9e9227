package repository

import (
	"context"
	"time"

	"github.com/movo/dashboard/internal/domain"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// InvoiceRepo holds the invoice list of the connected account as view models.
// Begin and Apply run on the event loop; Fetch may run on any goroutine.
type InvoiceRepo struct {
	fetcher InvoiceFetcher
	log     *zap.Logger
	now     func() time.Time

	generation uint64
	settled    bool
	account    domain.Account

	loading  bool
	phase    Phase
	invoices []domain.InvoiceViewModel
	err      error
	rejected int
	loadedAt time.Time
}

// NewInvoiceRepo creates an empty repository
func NewInvoiceRepo(fetcher InvoiceFetcher, log *zap.Logger) *InvoiceRepo {
	if log == nil {
		log = zap.NewNop()
	}
	return &InvoiceRepo{
		fetcher: fetcher,
		log:     log,
		now:     time.Now,
		settled: true,
	}
}

// Begin starts a load for account and supersedes any load in flight.
// Without an account it settles immediately in PhaseNoSession and returns false;
// the backend must not be called.
func (r *InvoiceRepo) Begin(account domain.Account) (Request, bool) {
	r.generation++
	r.account = account

	if account.IsZero() {
		r.settled = true
		r.loading = false
		r.phase = PhaseNoSession
		r.invoices = nil
		r.err = domain.ErrNoSession
		return Request{Generation: r.generation}, false
	}

	r.settled = false
	r.loading = true
	return Request{Generation: r.generation, Account: account}, true
}

// Fetch calls the invoice service. It does not touch repository state.
func (r *InvoiceRepo) Fetch(ctx context.Context, req Request) Result {
	records, err := r.fetcher.FetchInvoices(ctx, req.Account)
	if err != nil {
		return Result{Request: req, Err: domain.Kind(err, domain.ErrInvoiceListFetchFailed, "fetch invoices")}
	}
	return Result{Request: req, Records: records}
}

// Apply settles a load. Only the most recently issued request may settle, and only once;
// anything else is discarded and false is returned.
func (r *InvoiceRepo) Apply(res Result) bool {
	if res.Generation != r.generation || r.settled {
		r.log.Debug("discarding stale invoice response",
			zap.Uint64("generation", res.Generation),
			zap.Uint64("current", r.generation))
		return false
	}

	r.settled = true
	r.loading = false

	if res.Err != nil {
		r.phase = PhaseFailed
		r.invoices = nil
		r.err = res.Err
		r.log.Error("invoice list load failed",
			zap.String("account", res.Account.String()),
			zap.Error(res.Err))
		return true
	}

	valid := lo.Filter(res.Records, func(rec domain.InvoiceRecord, _ int) bool {
		if err := rec.Validate(); err != nil {
			r.log.Warn("skipping invalid invoice record", zap.Error(err))
			return false
		}
		if domain.MapInvoiceStatus(rec.Status) == domain.InvoiceStatusUnknown {
			r.log.Warn("unknown invoice status code",
				zap.String("invoice", rec.ID),
				zap.String("status", rec.Status))
		}
		return true
	})

	r.phase = PhaseLoaded
	r.err = nil
	r.rejected = len(res.Records) - len(valid)
	r.invoices = domain.DeriveViewModels(valid)
	r.loadedAt = r.now()
	return true
}

// Load fetches and applies in one step
func (r *InvoiceRepo) Load(ctx context.Context, account domain.Account) error {
	req, ok := r.Begin(account)
	if !ok {
		return r.err
	}
	r.Apply(r.Fetch(ctx, req))
	return r.err
}

// Reset forgets the list and invalidates in-flight loads
func (r *InvoiceRepo) Reset() {
	r.generation++
	r.settled = true
	r.account = ""
	r.loading = false
	r.phase = PhaseIdle
	r.invoices = nil
	r.err = nil
	r.rejected = 0
	r.loadedAt = time.Time{}
}

func (r *InvoiceRepo) Loading() bool { return r.loading }

func (r *InvoiceRepo) Phase() Phase { return r.phase }

// Err is set in PhaseFailed and PhaseNoSession
func (r *InvoiceRepo) Err() error { return r.err }

// Invoices returns the current list
func (r *InvoiceRepo) Invoices() []domain.InvoiceViewModel { return r.invoices }

// Recent returns at most n invoices from the top of the list
func (r *InvoiceRepo) Recent(n int) []domain.InvoiceViewModel {
	if n < 0 || n >= len(r.invoices) {
		return r.invoices
	}
	return r.invoices[:n]
}

// Empty reports a successful load with zero invoices
func (r *InvoiceRepo) Empty() bool {
	return r.phase == PhaseLoaded && len(r.invoices) == 0
}

// Rejected counts records dropped by validation in the last load
func (r *InvoiceRepo) Rejected() int { return r.rejected }

func (r *InvoiceRepo) LoadedAt() time.Time { return r.loadedAt }
