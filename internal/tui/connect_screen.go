package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ConnectModel prompts for a wallet address while no session exists
type ConnectModel struct {
	*shared
	input      textinput.Model
	connecting bool
	err        error
}

func NewConnectModel(s *shared) *ConnectModel {
	input := newTextInput("0x...", 42, 46)
	input.Focus()
	return &ConnectModel{shared: s, input: input}
}

// IsCapturingInput is always true; the address field owns the keyboard
func (m *ConnectModel) IsCapturingInput() bool {
	return true
}

func (m *ConnectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ConnectModel) connect() tea.Cmd {
	address := m.input.Value()
	return func() tea.Msg {
		account, err := m.app.Wallet.Connect(address)
		if err != nil {
			return walletActionMsg{err: err}
		}
		return walletActionMsg{status: fmt.Sprintf("Connected %s", account.Short())}
	}
}

func (m *ConnectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case walletActionMsg:
		m.connecting = false
		m.err = msg.err
		if msg.err == nil {
			m.input.Reset()
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, DefaultKeyMap.Select) && !m.connecting {
			m.connecting = true
			m.err = nil
			return m, m.connect()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ConnectModel) View() string {
	var s string
	s += titleStyle.Render("Connect your wallet") + "\n\n"
	s += subtitleStyle.Render("  Enter the address that receives your USDC payments.") + "\n\n"
	s += "  " + m.input.View() + "\n\n"

	switch {
	case m.connecting:
		s += fmt.Sprintf("  %s Connecting...\n\n", m.spinner.View())
	case m.err != nil:
		s += errorStyle.Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	s += helpStyle.Render("  enter: connect  ctrl+c: quit")
	return s
}
