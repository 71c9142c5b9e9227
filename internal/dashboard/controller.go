// Package dashboard composes the session, profile gate, invoice repository and
// invoice workflow behind the tabbed merchant dashboard.
//
// The controller runs on a single event loop. Every operation that needs the
// network returns Tasks instead of blocking; their results come back through
// Update, where stale ones are discarded by request generation.
package dashboard

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/movo/dashboard/internal/domain"
	"github.com/movo/dashboard/internal/profile"
	"github.com/movo/dashboard/internal/repository"
	"github.com/movo/dashboard/internal/session"
	"github.com/movo/dashboard/internal/workflow"
	"go.uber.org/zap"
)

// ProfileSaver stores the merchant profile
type ProfileSaver interface {
	SaveMerchantProfile(ctx context.Context, account domain.Account, update domain.ProfileUpdate) (*domain.MerchantProfile, error)
}

// InvoiceCreator submits a new invoice
type InvoiceCreator interface {
	CreateInvoice(ctx context.Context, account domain.Account, draft domain.DraftInvoice, idempotencyKey string) (domain.CreatedInvoice, error)
}

// Controller is the dashboard state shared by all screens
type Controller struct {
	session  *session.Context
	gate     *profile.Gate
	invoices *repository.InvoiceRepo
	flow     *workflow.Machine
	saver    ProfileSaver
	creator  InvoiceCreator
	log      *zap.Logger

	tab       Tab
	modal     bool
	dismissed bool
	saving    bool
	saveErr   error
}

// New wires the components together. The controller subscribes to sess so
// that every account change resets per-account state before anything reloads.
func New(
	sess *session.Context,
	gate *profile.Gate,
	invoices *repository.InvoiceRepo,
	flow *workflow.Machine,
	saver ProfileSaver,
	creator InvoiceCreator,
	log *zap.Logger,
) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{
		session:  sess,
		gate:     gate,
		invoices: invoices,
		flow:     flow,
		saver:    saver,
		creator:  creator,
		log:      log,
	}
	sess.Subscribe(c.invalidate)
	return c
}

func (c *Controller) invalidate(inv session.Invalidation) {
	c.gate.Reset()
	c.invoices.Reset()
	c.flow.Reset()
	c.modal = false
	c.dismissed = false
	c.saving = false
	c.saveErr = nil
	c.log.Debug("dashboard state reset", zap.Uint64("generation", inv.Generation))
}

// WalletChanged applies a wallet provider event. Per-account state is cleared
// synchronously; a connected account then gets its profile and invoices loaded.
func (c *Controller) WalletChanged(ch session.Change) []Task {
	inv, changed := c.session.Observe(ch)
	if !changed || !inv.Connected() {
		return nil
	}
	return c.Reload()
}

// Reload re-resolves the profile and reloads the invoice list
func (c *Controller) Reload() []Task {
	var tasks []Task
	if t := c.resolveProfile(); t != nil {
		tasks = append(tasks, t)
	}
	if t := c.loadInvoices(); t != nil {
		tasks = append(tasks, t)
	}
	return tasks
}

// Refresh reloads the invoice list unless a load is already running
func (c *Controller) Refresh() []Task {
	if c.invoices.Loading() {
		return nil
	}
	if t := c.loadInvoices(); t != nil {
		return []Task{t}
	}
	return nil
}

func (c *Controller) resolveProfile() Task {
	account, ok := c.session.Account()
	if !ok {
		return nil
	}
	req := c.gate.Begin(account)
	return func(ctx context.Context) Msg {
		return ProfileResolved{Result: c.gate.Fetch(ctx, req)}
	}
}

func (c *Controller) loadInvoices() Task {
	account, _ := c.session.Account()
	req, ok := c.invoices.Begin(account)
	if !ok {
		// no session: the repository settled without calling the backend
		return nil
	}
	return func(ctx context.Context) Msg {
		return InvoicesLoaded{Result: c.invoices.Fetch(ctx, req)}
	}
}

// SelectTab switches tabs. Leaving Invoices resets the workflow to its list.
func (c *Controller) SelectTab(t Tab) []Task {
	if t == c.tab {
		return nil
	}
	if c.tab == TabInvoices {
		if _, err := c.flow.Handle(workflow.LeaveTab{}); err != nil {
			c.log.Error("leave invoices tab", zap.Error(err))
		}
	}
	c.tab = t
	if t == TabInvoices && c.invoices.Phase() != repository.PhaseLoaded {
		return c.Refresh()
	}
	return nil
}

// Dispatch feeds a workflow event. ConfirmCreation gets its profile flag from
// the gate; a rejected confirm because of onboarding raises the profile modal.
func (c *Controller) Dispatch(ev workflow.Event) ([]Task, error) {
	if _, err := c.session.Require(); err != nil {
		return nil, err
	}

	if _, ok := ev.(workflow.ConfirmCreation); ok {
		ev = workflow.ConfirmCreation{ProfileCompleted: c.gate.Completed()}
	}

	effects, err := c.flow.Handle(ev)
	if err != nil {
		if errors.Is(err, domain.ErrOnboardingRequired) {
			// a profile still loading raises the modal once it resolves as incomplete
			c.dismissed = false
			switch c.gate.State() {
			case profile.StateLoading:
			case profile.StateFailed, profile.StateUnresolved:
				c.modal = true
				if t := c.resolveProfile(); t != nil {
					return []Task{t}, err
				}
			default:
				c.modal = c.gate.OnboardingRequired()
			}
		}
		return nil, err
	}
	return c.run(effects), nil
}

func (c *Controller) run(effects []workflow.Effect) []Task {
	var tasks []Task
	for _, eff := range effects {
		switch e := eff.(type) {
		case workflow.CreateInvoice:
			tasks = append(tasks, c.createInvoice(e))
		case workflow.ReloadInvoices:
			if t := c.loadInvoices(); t != nil {
				tasks = append(tasks, t)
			}
		}
	}
	return tasks
}

func (c *Controller) createInvoice(e workflow.CreateInvoice) Task {
	account, _ := c.session.Account()
	gen := c.session.Generation()
	return func(ctx context.Context) Msg {
		created, err := c.creator.CreateInvoice(ctx, account, e.Draft, e.IdempotencyKey)
		return InvoiceSubmitted{Generation: gen, Ticket: e.Ticket, Created: created, Err: err}
	}
}

// Update applies a Task result and returns any follow-up tasks
func (c *Controller) Update(msg Msg) []Task {
	switch m := msg.(type) {
	case ProfileResolved:
		if !c.gate.Apply(m.Result) {
			return nil
		}
		switch {
		case c.gate.Completed():
			c.modal = false
		case c.gate.OnboardingRequired() && !c.dismissed:
			c.modal = true
		}

	case InvoicesLoaded:
		c.invoices.Apply(m.Result)

	case InvoiceSubmitted:
		if m.Generation != c.session.Generation() {
			c.log.Debug("dropping invoice result from previous session", zap.Uint64("ticket", m.Ticket))
			return nil
		}
		var ev workflow.Event = workflow.CreationSucceeded{Ticket: m.Ticket, Created: m.Created}
		if m.Err != nil {
			c.log.Error("invoice creation failed", zap.Uint64("ticket", m.Ticket), zap.Error(m.Err))
			ev = workflow.CreationFailed{Ticket: m.Ticket, Err: m.Err}
		}
		effects, err := c.flow.Handle(ev)
		if err != nil {
			c.log.Error("apply invoice result", zap.Error(err))
			return nil
		}
		return c.run(effects)

	case ProfileSaved:
		if m.Generation != c.session.Generation() {
			return nil
		}
		c.saving = false
		if m.Err != nil {
			c.saveErr = domain.Kind(m.Err, domain.ErrProfileSaveFailed, "save merchant profile")
			c.log.Error("profile save failed", zap.Error(c.saveErr))
			return nil
		}
		c.saveErr = nil
		c.modal = false
		c.dismissed = false
		return c.Reload()
	}
	return nil
}

// ShowProfileModal opens the profile form, e.g. from "Edit profile"
func (c *Controller) ShowProfileModal() {
	c.modal = true
	c.saveErr = nil
}

// DismissProfileModal hides the modal without completing onboarding
func (c *Controller) DismissProfileModal() {
	c.modal = false
	c.dismissed = true
	c.saveErr = nil
}

// SaveProfile validates update and returns the task that stores it
func (c *Controller) SaveProfile(update domain.ProfileUpdate) (Task, error) {
	account, err := c.session.Require()
	if err != nil {
		return nil, err
	}
	if c.saving {
		return nil, nil
	}
	if err := update.Validate(); err != nil {
		c.saveErr = err
		return nil, err
	}
	c.saving = true
	c.saveErr = nil
	gen := c.session.Generation()
	return func(ctx context.Context) Msg {
		p, err := c.saver.SaveMerchantProfile(ctx, account, update)
		return ProfileSaved{Generation: gen, Profile: p, Err: err}
	}, nil
}

func (c *Controller) Tab() Tab { return c.tab }

// ModalVisible reports whether the onboarding modal covers the dashboard
func (c *Controller) ModalVisible() bool { return c.modal }

func (c *Controller) Saving() bool { return c.saving }

func (c *Controller) SaveErr() error { return c.saveErr }

func (c *Controller) Session() *session.Context { return c.session }

func (c *Controller) Profile() *profile.Gate { return c.gate }

func (c *Controller) Invoices() *repository.InvoiceRepo { return c.invoices }

func (c *Controller) Workflow() *workflow.Machine { return c.flow }

// Identity returns the sidebar name and contact lines
func (c *Controller) Identity() (name, contact string) {
	account, ok := c.session.Account()
	if !ok {
		return "", ""
	}
	p := c.gate.Profile()
	return p.DisplayName(account), p.Contact(account)
}
