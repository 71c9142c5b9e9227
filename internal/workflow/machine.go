package workflow

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/movo/dashboard/internal/domain"
	"go.uber.org/zap"
)

type submission struct {
	ticket   uint64
	key      string
	sent     domain.DraftInvoice
	orphaned bool // the workflow left Submitting before this settled
}

// Machine is the invoice creation workflow. It performs no I/O: Handle returns
// the effects the caller has to carry out.
type Machine struct {
	log      *zap.Logger
	currency string
	newKey   func() string

	state    State
	draft    *domain.DraftInvoice
	snapshot *domain.DraftInvoice
	created  *domain.CreatedInvoice
	err      error

	ticket  uint64
	pending *submission
}

// NewMachine returns a machine in StateList. New drafts use defaultCurrency.
func NewMachine(defaultCurrency string, log *zap.Logger) *Machine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Machine{
		log:      log,
		currency: defaultCurrency,
		newKey:   uuid.NewString,
	}
}

// Handle applies ev. A rejected event leaves the machine unchanged and returns
// an error; ErrInvalidTransition for pairs outside the transition table.
func (m *Machine) Handle(ev Event) ([]Effect, error) {
	switch e := ev.(type) {
	case LeaveTab:
		m.leave()
		return nil, nil
	case CreationSucceeded:
		return m.succeeded(e), nil
	case CreationFailed:
		m.failed(e)
		return nil, nil
	case ConfirmCreation:
		if m.state == StateSubmitting {
			// repeated confirm while the first is in flight
			return nil, nil
		}
	}

	to, ok := Next(m.state, ev.Trigger())
	if !ok {
		return nil, errors.Mark(
			errors.Newf("%s on %s", ev.Trigger(), m.state),
			domain.ErrInvalidTransition)
	}

	switch e := ev.(type) {
	case OpenCreateForm:
		if m.draft == nil {
			d := domain.NewDraft(m.currency)
			m.draft = &d
		}
		m.err = nil

	case EditDraft:
		d := e.Draft.Clone()
		m.draft = &d

	case SubmitForPreview:
		if err := m.draft.Validate(); err != nil {
			return nil, err
		}
		snap := m.draft.Clone()
		m.snapshot = &snap
		m.err = nil

	case RequestEdit:
		d := m.snapshot.Clone()
		m.draft = &d
		m.snapshot = nil
		m.err = nil

	case ConfirmCreation:
		if m.pending != nil {
			return nil, errors.WithStack(domain.ErrSubmissionInFlight)
		}
		if !e.ProfileCompleted {
			return nil, errors.WithStack(domain.ErrOnboardingRequired)
		}
		m.ticket++
		m.pending = &submission{ticket: m.ticket, key: m.newKey(), sent: m.snapshot.Clone()}
		m.err = nil
		m.state = to
		return []Effect{CreateInvoice{
			Ticket:         m.pending.ticket,
			Draft:          m.pending.sent.Clone(),
			IdempotencyKey: m.pending.key,
		}}, nil

	case Acknowledge:
		m.created = nil

	case CancelDraft:
		m.draft = nil
	}

	m.state = to
	return nil, nil
}

func (m *Machine) leave() {
	switch m.state {
	case StatePreview:
		// the draft already holds the snapshot contents
		m.snapshot = nil
	case StateSubmitting:
		m.pending.orphaned = true
		m.snapshot = nil
	case StateSuccess:
		m.created = nil
	}
	m.err = nil
	m.state = StateList
}

func (m *Machine) succeeded(e CreationSucceeded) []Effect {
	if m.pending == nil || m.pending.ticket != e.Ticket {
		m.log.Debug("ignoring unknown submission result", zap.Uint64("ticket", e.Ticket))
		return nil
	}
	sub := m.pending
	m.pending = nil

	if sub.orphaned {
		m.log.Info("background invoice submission succeeded",
			zap.String("invoice_no", e.Created.InvoiceNo))
		m.discardSent(sub.sent)
		return []Effect{ReloadInvoices{}}
	}

	created := e.Created
	m.created = &created
	m.draft = nil
	m.snapshot = nil
	m.err = nil
	m.state = StateSuccess
	return []Effect{ReloadInvoices{}}
}

// discardSent drops the draft and preview of an invoice that now exists on the
// backend. A draft edited since the submission is a different invoice and stays.
func (m *Machine) discardSent(sent domain.DraftInvoice) {
	if m.snapshot != nil && m.snapshot.Equal(sent) {
		m.snapshot = nil
	}
	if m.draft == nil || !m.draft.Equal(sent) {
		return
	}
	m.draft = nil
	if m.state == StateDraft || m.state == StatePreview {
		m.snapshot = nil
		m.err = nil
		m.state = StateList
	}
}

func (m *Machine) failed(e CreationFailed) {
	if m.pending == nil || m.pending.ticket != e.Ticket {
		m.log.Debug("ignoring unknown submission result", zap.Uint64("ticket", e.Ticket))
		return
	}
	orphaned := m.pending.orphaned
	m.pending = nil

	err := domain.Kind(e.Err, domain.ErrInvoiceCreateFailed, "create invoice")
	if orphaned {
		m.log.Warn("background invoice submission failed", zap.Error(err))
		return
	}
	m.err = err
	m.state = StatePreview
}

// Reset returns to the initial state and forgets any submission in flight.
// Results for forgotten submissions are ignored and trigger no reload.
func (m *Machine) Reset() {
	m.state = StateList
	m.draft = nil
	m.snapshot = nil
	m.created = nil
	m.err = nil
	m.pending = nil
}

func (m *Machine) State() State { return m.state }

// Draft returns a copy of the draft, if one exists
func (m *Machine) Draft() (domain.DraftInvoice, bool) {
	if m.draft == nil {
		return domain.DraftInvoice{}, false
	}
	return m.draft.Clone(), true
}

// Snapshot returns a copy of the frozen preview
func (m *Machine) Snapshot() (domain.DraftInvoice, bool) {
	if m.snapshot == nil {
		return domain.DraftInvoice{}, false
	}
	return m.snapshot.Clone(), true
}

// Created is the confirmation shown in StateSuccess
func (m *Machine) Created() (domain.CreatedInvoice, bool) {
	if m.created == nil {
		return domain.CreatedInvoice{}, false
	}
	return *m.created, true
}

// Err is the last creation failure, shown on the preview
func (m *Machine) Err() error { return m.err }

// InFlight reports whether a submission has not settled yet, including one
// the workflow has left behind.
func (m *Machine) InFlight() bool { return m.pending != nil }

// HasDraft reports whether opening the form resumes a draft
func (m *Machine) HasDraft() bool { return m.draft != nil }
