package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/movo/dashboard/internal/app"
	"github.com/movo/dashboard/internal/dashboard"
	"github.com/movo/dashboard/internal/domain"
	"github.com/movo/dashboard/internal/wallet"
)

// shared is the state every screen reads; the root model owns it
type shared struct {
	app     *app.App
	ctrl    *dashboard.Controller
	spinner spinner.Model
	now     time.Time
}

// runTasks turns dashboard tasks into commands whose results come back as taskDoneMsg
func runTasks(tasks []dashboard.Task) tea.Cmd {
	if len(tasks) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(tasks))
	for _, t := range tasks {
		cmds = append(cmds, func() tea.Msg {
			return taskDoneMsg{msg: t(context.Background())}
		})
	}
	return tea.Batch(cmds...)
}

// waitForWallet blocks until the provider raises the next change
func waitForWallet(p *wallet.Provider) tea.Cmd {
	return func() tea.Msg {
		return walletEventMsg{change: <-p.Events()}
	}
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

func statusBadge(vm domain.InvoiceViewModel) string {
	switch vm.Status {
	case domain.InvoiceStatusPending:
		return lipgloss.NewStyle().Foreground(warningColor).Render(vm.StatusLabel)
	case domain.InvoiceStatusPaid:
		return lipgloss.NewStyle().Foreground(successColor).Render(vm.StatusLabel)
	case domain.InvoiceStatusExpired:
		return lipgloss.NewStyle().Foreground(mutedColor).Render(vm.StatusLabel)
	case domain.InvoiceStatusCancelled:
		return lipgloss.NewStyle().Foreground(errorColor).Render(vm.StatusLabel)
	default:
		return vm.StatusLabel
	}
}

// truncateStr truncates a string to the specified length with ellipsis
func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
