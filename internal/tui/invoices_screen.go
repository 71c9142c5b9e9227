package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/movo/dashboard/internal/domain"
	"github.com/movo/dashboard/internal/profile"
	"github.com/movo/dashboard/internal/repository"
	"github.com/movo/dashboard/internal/workflow"
	"go.uber.org/zap"
)

// InvoicesModel shows the invoice list and walks the creation workflow
type InvoicesModel struct {
	*shared

	cursor   int
	selected *domain.InvoiceViewModel // detail view when set

	form *invoiceForm // only while the workflow is in Draft
	err  error
}

// NewInvoicesModel creates the invoices tab
func NewInvoicesModel(s *shared) *InvoicesModel {
	return &InvoicesModel{shared: s}
}

// IsCapturingInput returns true while the draft form has focus
func (m *InvoicesModel) IsCapturingInput() bool {
	return m.ctrl.Workflow().State() == workflow.StateDraft
}

func (m *InvoicesModel) Init() tea.Cmd {
	return nil
}

// LeaveTab stores the form contents in the workflow draft so it can be resumed
func (m *InvoicesModel) LeaveTab() {
	if m.form == nil || m.ctrl.Workflow().State() != workflow.StateDraft {
		return
	}
	if _, err := m.ctrl.Dispatch(workflow.EditDraft{Draft: m.form.lenientDraft()}); err != nil {
		m.app.Log.Warn("could not keep draft on tab leave", zap.Error(err))
	}
	m.form = nil
	m.err = nil
}

func (m *InvoicesModel) dispatch(ev workflow.Event) tea.Cmd {
	tasks, err := m.ctrl.Dispatch(ev)
	m.err = err
	m.syncForm()
	return runTasks(tasks)
}

// syncForm builds the form when the workflow enters Draft and drops it otherwise
func (m *InvoicesModel) syncForm() {
	flow := m.ctrl.Workflow()
	if flow.State() != workflow.StateDraft {
		m.form = nil
		return
	}
	if m.form == nil {
		d, _ := flow.Draft()
		m.form = newInvoiceForm(d)
	}
}

func (m *InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.syncForm()

	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		switch m.ctrl.Workflow().State() {
		case workflow.StateList:
			if m.selected != nil {
				return m.updateDetail(msg)
			}
			return m.updateList(msg)
		case workflow.StateDraft:
			return m.updateDraft(msg)
		case workflow.StatePreview:
			return m.updatePreview(msg)
		case workflow.StateSuccess:
			return m.updateSuccess(msg)
		}
		return m, nil
	}

	if m.form != nil {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m *InvoicesModel) clampCursor() {
	n := len(m.ctrl.Invoices().Invoices())
	if m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *InvoicesModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	invoices := m.ctrl.Invoices().Invoices()

	switch {
	case key.Matches(msg, DefaultKeyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, DefaultKeyMap.Down):
		if m.cursor < len(invoices)-1 {
			m.cursor++
		}
	case key.Matches(msg, DefaultKeyMap.Select):
		if m.cursor < len(invoices) {
			vm := invoices[m.cursor]
			m.selected = &vm
		}
	case key.Matches(msg, DefaultKeyMap.New):
		return m, m.dispatch(workflow.OpenCreateForm{})
	case key.Matches(msg, DefaultKeyMap.Refresh):
		m.cursor = 0
		return m, runTasks(m.ctrl.Refresh())
	}
	return m, nil
}

func (m *InvoicesModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, DefaultKeyMap.Back) {
		m.selected = nil
	}
	return m, nil
}

func (m *InvoicesModel) updateDraft(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, DefaultKeyMap.Back):
		return m, m.dispatch(workflow.CancelDraft{})

	case key.Matches(msg, DefaultKeyMap.NextField):
		return m, m.form.next()

	case key.Matches(msg, DefaultKeyMap.PrevField):
		return m, m.form.prev()

	case key.Matches(msg, DefaultKeyMap.AddRef):
		return m, m.form.addReference()

	case key.Matches(msg, DefaultKeyMap.RemoveRef):
		return m, m.form.removeReference()

	case key.Matches(msg, DefaultKeyMap.Save):
		return m, m.preview()

	case key.Matches(msg, DefaultKeyMap.Select):
		if m.form.onLastField() {
			return m, m.preview()
		}
		return m, m.form.next()
	}

	return m, m.form.update(msg)
}

// preview copies the form into the workflow draft and freezes it
func (m *InvoicesModel) preview() tea.Cmd {
	d, err := m.form.draft()
	if err != nil {
		m.err = err
		return nil
	}
	if _, err := m.ctrl.Dispatch(workflow.EditDraft{Draft: d}); err != nil {
		m.err = err
		return nil
	}
	return m.dispatch(workflow.SubmitForPreview{})
}

func (m *InvoicesModel) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, DefaultKeyMap.Select):
		return m, m.dispatch(workflow.ConfirmCreation{})
	case key.Matches(msg, DefaultKeyMap.Edit), key.Matches(msg, DefaultKeyMap.Back):
		return m, m.dispatch(workflow.RequestEdit{})
	}
	return m, nil
}

func (m *InvoicesModel) updateSuccess(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, DefaultKeyMap.Select) || key.Matches(msg, DefaultKeyMap.Back) {
		m.cursor = 0
		return m, m.dispatch(workflow.Acknowledge{})
	}
	return m, nil
}

func (m *InvoicesModel) View() string {
	switch m.ctrl.Workflow().State() {
	case workflow.StateDraft:
		return m.viewDraft()
	case workflow.StatePreview:
		return m.viewPreview()
	case workflow.StateSubmitting:
		return m.viewSubmitting()
	case workflow.StateSuccess:
		return m.viewSuccess()
	}
	if m.selected != nil {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m *InvoicesModel) viewList() string {
	var s string
	s += titleStyle.Render("Invoices") + "\n\n"

	flow := m.ctrl.Workflow()
	if flow.InFlight() {
		s += warnStyle.Render(fmt.Sprintf("  %s An invoice is still being submitted...", m.spinner.View())) + "\n\n"
	}
	if m.err != nil {
		s += errorStyle.Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	repo := m.ctrl.Invoices()
	newHelp := "n: new invoice"
	if flow.HasDraft() {
		newHelp = "n: resume draft"
	}

	switch {
	case repo.Loading():
		return s + fmt.Sprintf("  %s Loading invoices...", m.spinner.View())

	case repo.Phase() == repository.PhaseFailed:
		s += errorStyle.Render(fmt.Sprintf("  Could not load invoices: %v", repo.Err())) + "\n\n"
		return s + helpStyle.Render("  r: retry  "+newHelp)

	case repo.Empty():
		s += subtitleStyle.Render("  No invoices yet. Press 'n' to create one.") + "\n\n"
		return s + helpStyle.Render("  r: refresh  "+newHelp)
	}

	s += subtitleStyle.Render(fmt.Sprintf(
		"  %-14s  %-20s  %-12s  %-12s  %18s  %-16s  %s",
		"Number", "Customer", "Created", "Expires", "Amount", "USDC", "Status",
	)) + "\n"

	for i, vm := range repo.Invoices() {
		equivalent := vm.Equivalent
		if !vm.HasEquivalent() {
			equivalent = "-"
		}
		line := fmt.Sprintf("  %-14s  %-20s  %-12s  %-12s  %18s  %-16s  ",
			truncateStr(vm.InvoiceNo, 14),
			truncateStr(vm.Customer, 20),
			vm.Created,
			vm.Expires,
			vm.AmountText,
			equivalent,
		)
		if i == m.cursor {
			s += selectedStyle.Render(line+vm.StatusLabel) + "\n"
		} else {
			s += line + statusBadge(vm) + "\n"
		}
	}

	if n := repo.Rejected(); n > 0 {
		s += "\n" + warnStyle.Render(fmt.Sprintf("  %d invoice(s) could not be displayed", n)) + "\n"
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  enter: view detail  r: refresh  "+newHelp)
	return s
}

func (m *InvoicesModel) viewDetail() string {
	vm := m.selected

	var s string
	s += titleStyle.Render(fmt.Sprintf("Invoice %s", vm.InvoiceNo)) + "\n\n"
	s += fmt.Sprintf("  Customer:  %s\n", vm.Customer)
	if vm.Email != "" {
		s += fmt.Sprintf("  Email:     %s\n", vm.Email)
	}
	s += fmt.Sprintf("  Created:   %s\n", vm.Created)
	s += fmt.Sprintf("  Expires:   %s\n", vm.Expires)
	s += fmt.Sprintf("  Status:    %s\n", statusBadge(*vm))
	s += "\n"
	s += fmt.Sprintf("  Amount:    %s\n", amountStyle.Render(vm.AmountText))
	if vm.HasEquivalent() {
		s += fmt.Sprintf("             %s\n", equivalentStyle.Render(vm.Equivalent))
	}

	s += "\n" + helpStyle.Render("  esc: back to list")
	return s
}

func (m *InvoicesModel) viewDraft() string {
	var s string
	s += titleStyle.Render("New Invoice") + "\n\n"

	if m.err != nil {
		s += errorStyle.Render(fmt.Sprintf("  %v", m.err)) + "\n\n"
	}
	if m.form != nil {
		s += m.form.view()
	}

	s += helpStyle.Render("  tab: next field  ctrl+r: add reference  ctrl+d: remove reference  ctrl+s: preview  esc: discard")
	return s
}

func (m *InvoicesModel) viewPreview() string {
	flow := m.ctrl.Workflow()
	d, _ := flow.Snapshot()

	var s string
	s += titleStyle.Render("Preview Invoice") + "\n\n"
	s += labelStyle.Render("  Customer") + valueStyle.Render(d.CustomerName) + "\n"
	if d.CustomerEmail != "" {
		s += labelStyle.Render("  Email") + valueStyle.Render(d.CustomerEmail) + "\n"
	}
	s += labelStyle.Render("  Amount") + amountStyle.Render(domain.FormatAmount(d.Amount, d.Currency)) + "\n"
	if d.Description != "" {
		s += labelStyle.Render("  Description") + valueStyle.Render(d.Description) + "\n"
	}
	for _, ref := range d.References {
		s += labelStyle.Render("  "+ref.Label) + valueStyle.Render(ref.Value) + "\n"
	}
	s += "\n"

	err := m.err
	if err == nil {
		err = flow.Err()
	}
	switch {
	case errors.Is(err, domain.ErrOnboardingRequired) && m.ctrl.Profile().State() == profile.StateLoading:
		s += warnStyle.Render("  Checking your merchant profile, try again in a moment.") + "\n\n"
	case errors.Is(err, domain.ErrOnboardingRequired):
		s += warnStyle.Render("  Complete your merchant profile before creating invoices.") + "\n\n"
	case errors.Is(err, domain.ErrSubmissionInFlight):
		s += warnStyle.Render("  Wait for the previous invoice to finish submitting.") + "\n\n"
	case err != nil:
		s += errorStyle.Render(fmt.Sprintf("  Error: %v", err)) + "\n\n"
	}

	s += helpStyle.Render("  enter: create invoice  e: edit")
	return s
}

func (m *InvoicesModel) viewSubmitting() string {
	s := titleStyle.Render("Creating Invoice") + "\n\n"
	s += fmt.Sprintf("  %s Submitting invoice...", m.spinner.View())
	return s
}

func (m *InvoicesModel) viewSuccess() string {
	created, _ := m.ctrl.Workflow().Created()

	var s string
	s += titleStyle.Render("Invoice Created") + "\n\n"
	s += statusStyle.Render(fmt.Sprintf("  Invoice %s was created.", created.InvoiceNo)) + "\n"
	if created.PaymentURL != "" {
		s += fmt.Sprintf("\n  Payment link:  %s\n", valueStyle.Render(created.PaymentURL))
	}
	s += "\n" + helpStyle.Render("  enter: back to invoices")
	return s
}
