package workflow

import "github.com/movo/dashboard/internal/domain"

// Event is an input to Machine.Handle
type Event interface {
	Trigger() Trigger
}

type (
	// OpenCreateForm opens a new draft or resumes the unsaved one
	OpenCreateForm struct{}

	// EditDraft replaces the draft fields with the form contents
	EditDraft struct{ Draft domain.DraftInvoice }

	// SubmitForPreview freezes the current draft
	SubmitForPreview struct{}

	// RequestEdit returns from preview to an editable draft
	RequestEdit struct{}

	// ConfirmCreation submits the preview snapshot. ProfileCompleted must come
	// from the profile gate; an unresolved profile counts as not completed.
	ConfirmCreation struct{ ProfileCompleted bool }

	// CreationSucceeded settles the submission with the given ticket
	CreationSucceeded struct {
		Ticket  uint64
		Created domain.CreatedInvoice
	}

	// CreationFailed settles the submission with the given ticket
	CreationFailed struct {
		Ticket uint64
		Err    error
	}

	Acknowledge struct{}

	// CancelDraft discards the draft
	CancelDraft struct{}

	// LeaveTab resets to the list when the merchant navigates away
	LeaveTab struct{}
)

func (OpenCreateForm) Trigger() Trigger    { return TriggerOpenForm }
func (EditDraft) Trigger() Trigger         { return TriggerEdit }
func (SubmitForPreview) Trigger() Trigger  { return TriggerPreview }
func (RequestEdit) Trigger() Trigger       { return TriggerRequestEdit }
func (ConfirmCreation) Trigger() Trigger   { return TriggerConfirm }
func (CreationSucceeded) Trigger() Trigger { return TriggerSucceeded }
func (CreationFailed) Trigger() Trigger    { return TriggerFailed }
func (Acknowledge) Trigger() Trigger       { return TriggerAcknowledge }
func (CancelDraft) Trigger() Trigger       { return TriggerCancel }
func (LeaveTab) Trigger() Trigger          { return TriggerLeaveTab }

// Effect is a side effect the caller must perform after a transition
type Effect interface {
	effect()
}

// CreateInvoice asks the caller to submit Draft to the invoice service and
// report back with CreationSucceeded or CreationFailed carrying Ticket.
type CreateInvoice struct {
	Ticket         uint64
	Draft          domain.DraftInvoice
	IdempotencyKey string
}

// ReloadInvoices asks the caller to reload the invoice list
type ReloadInvoices struct{}

func (CreateInvoice) effect()  {}
func (ReloadInvoices) effect() {}
