package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/movo/dashboard/internal/app"
	"github.com/movo/dashboard/internal/dashboard"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// InputCapturer is implemented by screens that capture keyboard input (e.g. text forms).
// When active, global keys are suppressed; only the alt+N tab keys still switch tabs.
type InputCapturer interface {
	IsCapturingInput() bool
}

// tabLeaver is implemented by screens that save state before their tab is left
type tabLeaver interface {
	LeaveTab()
}

// Model is the root Bubble Tea model
type Model struct {
	*shared
	width  int
	height int

	screens map[dashboard.Tab]tea.Model
	connect *ConnectModel
	modal   *ProfileModalModel

	err       error
	statusMsg string
}

// New creates a new root model
func New(a *app.App) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)

	s := &shared{app: a, ctrl: a.Dashboard, spinner: sp, now: time.Now()}
	return Model{
		shared: s,
		screens: map[dashboard.Tab]tea.Model{
			dashboard.TabOverview: NewOverviewModel(s),
			dashboard.TabInvoices: NewInvoicesModel(s),
			dashboard.TabPayout:   NewComingSoonModel(dashboard.TabPayout),
			dashboard.TabKYC:      NewComingSoonModel(dashboard.TabKYC),
			dashboard.TabFAQ:      NewFAQModel(),
		},
		connect: NewConnectModel(s),
		modal:   NewProfileModalModel(s),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		runTasks(m.ctrl.WalletChanged(m.app.Wallet.Current())),
		waitForWallet(m.app.Wallet),
		m.connect.Init(),
		clockTick(),
		m.spinner.Tick,
	)
}

func (m *Model) current() tea.Model {
	return m.screens[m.ctrl.Tab()]
}

// activeScreenCapturingInput returns true if the current screen is capturing text input
func (m *Model) activeScreenCapturingInput() bool {
	if ic, ok := m.current().(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

// selectTab lets the current screen save its state, then switches
func (m *Model) selectTab(t dashboard.Tab) tea.Cmd {
	if t == m.ctrl.Tab() {
		return nil
	}
	if tl, ok := m.current().(tabLeaver); ok {
		tl.LeaveTab()
	}
	cmds := []tea.Cmd{runTasks(m.ctrl.SelectTab(t))}
	var cmd tea.Cmd
	m.screens[t], cmd = m.screens[t].Update(RefreshDataMsg{})
	return tea.Batch(append(cmds, cmd)...)
}

// syncModal opens or closes the profile form to follow the controller
func (m *Model) syncModal() tea.Cmd {
	visible := m.ctrl.ModalVisible()
	switch {
	case visible && !m.modal.active:
		return m.modal.open()
	case !visible && m.modal.active:
		m.modal.close()
	}
	return nil
}

func (m *Model) disconnect() tea.Cmd {
	return func() tea.Msg {
		if err := m.app.Wallet.Disconnect(); err != nil {
			return walletActionMsg{err: err}
		}
		return walletActionMsg{status: "Wallet disconnected"}
	}
}

var tabKeys = []key.Binding{
	DefaultKeyMap.Overview,
	DefaultKeyMap.Invoices,
	DefaultKeyMap.Payout,
	DefaultKeyMap.KYC,
	DefaultKeyMap.FAQ,
}

// tabForKey maps 1-5 to a tab. While a form captures input only alt+1-5 count.
func tabForKey(msg tea.KeyMsg, capturing bool) (dashboard.Tab, bool) {
	if capturing && !msg.Alt {
		return 0, false
	}
	for i, b := range tabKeys {
		if key.Matches(msg, b) {
			return dashboard.Tabs[i], true
		}
	}
	return 0, false
}

// Update implements tea.Model - routes keys to screens
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, tea.Batch(cmd, m.syncModal())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return nil

	case taskDoneMsg:
		cmd := runTasks(m.ctrl.Update(msg.msg))
		var screenCmd tea.Cmd
		m.screens[m.ctrl.Tab()], screenCmd = m.current().Update(RefreshDataMsg{})
		return tea.Batch(cmd, screenCmd)

	case walletEventMsg:
		m.app.Log.Debug("wallet change", zap.Bool("connected", msg.change.Connected))
		return tea.Batch(runTasks(m.ctrl.WalletChanged(msg.change)), waitForWallet(m.app.Wallet))

	case walletActionMsg:
		m.err = msg.err
		m.statusMsg = msg.status
		var cmd tea.Cmd
		_, cmd = m.connect.Update(msg)
		return cmd

	case clockMsg:
		m.now = time.Time(msg)
		return clockTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case SwitchTabMsg:
		return m.selectTab(msg.Tab)

	case ErrorMsg:
		m.err = msg.Err
		return nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
		m.err = nil
		m.statusMsg = ""

		if !m.ctrl.Session().Connected() {
			var cmd tea.Cmd
			_, cmd = m.connect.Update(msg)
			return cmd
		}

		if m.modal.active {
			var cmd tea.Cmd
			_, cmd = m.modal.Update(msg)
			return cmd
		}

		capturing := m.activeScreenCapturingInput()
		if t, ok := tabForKey(msg, capturing); ok {
			return m.selectTab(t)
		}

		// Skip global keys when a screen is capturing text input
		if !capturing {
			switch {
			case key.Matches(msg, DefaultKeyMap.Quit):
				return tea.Quit
			case key.Matches(msg, DefaultKeyMap.Profile):
				m.ctrl.ShowProfileModal()
				return nil
			case key.Matches(msg, DefaultKeyMap.Disconnect):
				return m.disconnect()
			}
		}
	}

	// Route message to current screen
	if !m.ctrl.Session().Connected() {
		var cmd tea.Cmd
		_, cmd = m.connect.Update(msg)
		return cmd
	}
	var cmd tea.Cmd
	m.screens[m.ctrl.Tab()], cmd = m.current().Update(msg)
	return cmd
}

func (m Model) renderTabs() string {
	tabs := lo.Map(dashboard.Tabs, func(t dashboard.Tab, i int) string {
		label := fmt.Sprintf("%d %s", i+1, t)
		if t == m.ctrl.Tab() {
			return activeTabStyle.Render(label)
		}
		return tabStyle.Render(label)
	})
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	connected := m.ctrl.Session().Connected()

	// Header
	header := headerStyle.Render("movo - merchant dashboard")
	if connected {
		name, contact := m.ctrl.Identity()
		header += "  " + identityStyle.Render(name) + subtitleStyle.Render("  "+contact)
	}

	// Footer with navigation keys
	footer := footerStyle.Render("[1-5] Tabs  [P]rofile  [X] Disconnect  [Q]uit")

	var content string
	switch {
	case !connected:
		content = m.connect.View()
		footer = footerStyle.Render("[Ctrl+C] Quit")
	case m.modal.active:
		content = m.renderTabs() + "\n\n" + inertStyle.Render(m.current().View()) + "\n\n" + m.modal.View()
	default:
		content = m.renderTabs() + "\n\n" + m.current().View()
	}

	// Error/status display
	statusDisplay := ""
	if m.err != nil {
		statusDisplay = errorStyle.Render(fmt.Sprintf("\nError: %s", m.err.Error()))
	} else if m.statusMsg != "" {
		statusDisplay = statusStyle.Render("\n" + m.statusMsg)
	}

	// Divider line between header and content
	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	dividerWidth := innerWidth - 12
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(
		strings.Repeat("─", dividerWidth),
	)

	body := fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s\n%s", header, divider, content, statusDisplay, divider, footer)

	// Wrap in border, sized to terminal
	frame := appBorderStyle.
		Width(innerWidth).
		Height(m.height - 4) // leave room for border top/bottom
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
