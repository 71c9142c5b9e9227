package domain

import "github.com/cockroachdb/errors"

// Error kinds. Callers wrap a cause with errors.Mark so errors.Is matches the
// kind while the message keeps the underlying reason.
var (
	ErrNoSession              = errors.New("no wallet connected")
	ErrProfileFetchFailed     = errors.New("failed to load merchant profile")
	ErrProfileNotFound        = errors.New("merchant profile not found")
	ErrProfileSaveFailed      = errors.New("failed to save merchant profile")
	ErrInvoiceListFetchFailed = errors.New("failed to load invoices")
	ErrInvoiceCreateFailed    = errors.New("failed to create invoice")

	ErrInvalidAccount     = errors.New("invalid wallet address")
	ErrInvalidRecord      = errors.New("invalid invoice record")
	ErrInvalidDraft       = errors.New("invalid invoice draft")
	ErrInvalidProfile     = errors.New("invalid merchant profile")
	ErrInvalidTransition  = errors.New("transition not allowed")
	ErrSubmissionInFlight = errors.New("an invoice submission is already in progress")
	ErrOnboardingRequired = errors.New("complete your merchant profile first")
)

// Kind marks err as belonging to the given error kind and adds context.
func Kind(err error, kind error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrap(err, msg), kind)
}
