package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/movo/dashboard/internal/dashboard"
	"github.com/movo/dashboard/internal/domain"
	"github.com/movo/dashboard/internal/repository"
	"github.com/samber/lo"
)

// OverviewModel is the dashboard home tab
type OverviewModel struct {
	*shared
}

// NewOverviewModel creates the overview tab
func NewOverviewModel(s *shared) *OverviewModel {
	return &OverviewModel{shared: s}
}

func (m *OverviewModel) Init() tea.Cmd {
	return nil
}

func (m *OverviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		if m.ctrl.Invoices().Phase() == repository.PhaseIdle {
			return m, runTasks(m.ctrl.Refresh())
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.ViewAll):
			return m, func() tea.Msg { return SwitchTabMsg{Tab: dashboard.TabInvoices} }
		case key.Matches(msg, DefaultKeyMap.Refresh):
			return m, runTasks(m.ctrl.Refresh())
		}
	}
	return m, nil
}

func (m *OverviewModel) View() string {
	var s string

	name, _ := m.ctrl.Identity()
	s += titleStyle.Render(fmt.Sprintf("Welcome back, %s", name)) + "\n"
	s += subtitleStyle.Render(m.now.Format("Monday, Jan 02, 2006  15:04:05")) + "\n\n"

	repo := m.ctrl.Invoices()
	switch {
	case repo.Loading() && repo.Phase() != repository.PhaseLoaded:
		return s + fmt.Sprintf("  %s Loading invoices...", m.spinner.View())

	case repo.Phase() == repository.PhaseFailed:
		s += errorStyle.Render(fmt.Sprintf("  Could not load invoices: %v", repo.Err())) + "\n\n"
		return s + helpStyle.Render("  r: retry")

	case repo.Empty():
		s += subtitleStyle.Render("  No invoices yet. Create your first one from the Invoices tab.") + "\n\n"
		return s + helpStyle.Render("  v: go to invoices")
	}

	s += m.renderSummary(repo.Invoices()) + "\n"
	s += m.renderRecent(repo.Recent(m.app.Config.Invoice.RecentLimit))
	s += "\n" + helpStyle.Render("  v: view all  r: refresh")
	return s
}

func (m *OverviewModel) renderSummary(invoices []domain.InvoiceViewModel) string {
	counts := lo.CountValuesBy(invoices, func(vm domain.InvoiceViewModel) domain.InvoiceStatus {
		return vm.Status
	})
	return fmt.Sprintf(
		"  Invoices:  %-6d  Pending:  %-6d  Paid:  %-6d  Expired:  %d\n",
		len(invoices),
		counts[domain.InvoiceStatusPending],
		counts[domain.InvoiceStatusPaid],
		counts[domain.InvoiceStatusExpired],
	)
}

func (m *OverviewModel) renderRecent(recent []domain.InvoiceViewModel) string {
	s := "  Recent Invoices\n"
	for _, vm := range recent {
		s += fmt.Sprintf("  %-14s  %-20s  %-12s  %s  %s\n",
			truncateStr(vm.InvoiceNo, 14),
			truncateStr(vm.Customer, 20),
			vm.Created,
			amountStyle.Render(fmt.Sprintf("%18s", vm.AmountText)),
			statusBadge(vm),
		)
	}
	return s
}
