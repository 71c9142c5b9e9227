package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/movo/dashboard/internal/dashboard"
)

var comingSoonBlurbs = map[dashboard.Tab]string{
	dashboard.TabPayout: "Withdraw settled USDC to your bank account.",
	dashboard.TabKYC:    "Verify your business to raise your payment limits.",
}

// ComingSoonModel is the placeholder for tabs that are not available yet
type ComingSoonModel struct {
	tab dashboard.Tab
}

func NewComingSoonModel(tab dashboard.Tab) *ComingSoonModel {
	return &ComingSoonModel{tab: tab}
}

func (m *ComingSoonModel) Init() tea.Cmd { return nil }

func (m *ComingSoonModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m *ComingSoonModel) View() string {
	s := titleStyle.Render(m.tab.String()) + "\n\n"
	s += boxStyle.Render(warnStyle.Render("Coming soon") + "\n\n" + subtitleStyle.Render(comingSoonBlurbs[m.tab]))
	return s
}
