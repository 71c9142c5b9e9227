package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type faqEntry struct {
	question string
	answer   string
}

var faqEntries = []faqEntry{
	{"What is Movo?", "Movo lets merchants invoice customers in local currency and get paid in USDC."},
	{"How do I use Movo?", "Connect your wallet, complete your merchant profile, then create an invoice and share its payment link with your customer."},
	{"Which cryptocurrencies are supported?", "Payments settle in USDC. Invoices can be priced in your local currency and show the USDC equivalent."},
	{"How long until I receive a payment?", "Funds reach your wallet as soon as the payment transaction is confirmed on chain, usually within minutes."},
	{"What are the fees?", "A small processing fee is taken from each paid invoice. Creating invoices is free."},
	{"Is Movo secure?", "Payments go straight to your wallet. Movo never holds your funds or your private keys."},
	{"Where do I register?", "There is no separate sign up. Connecting a wallet and filling in your profile creates your merchant account."},
	{"Do I need KYC verification?", "Not to get started. Verification will be needed for higher limits and payouts once the KYC tab is live."},
	{"Which countries are supported?", "Any country where holding USDC is permitted. Local currency pricing starts with IDR."},
	{"How do I contact support?", "Email support@movo.xyz and include your wallet address."},
}

// FAQModel lists questions with at most one answer expanded
type FAQModel struct {
	cursor int
	open   int // -1 when every answer is collapsed
}

func NewFAQModel() *FAQModel {
	return &FAQModel{open: -1}
}

func (m *FAQModel) Init() tea.Cmd {
	return nil
}

func (m *FAQModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(faqEntries)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.Select):
			m.toggle(m.cursor)
		}
	}
	return m, nil
}

// toggle expands question i and collapses the rest
func (m *FAQModel) toggle(i int) {
	if m.open == i {
		m.open = -1
		return
	}
	m.open = i
}

func (m *FAQModel) View() string {
	var s string
	s += titleStyle.Render("Frequently Asked Questions") + "\n\n"

	for i, e := range faqEntries {
		marker := "+"
		if i == m.open {
			marker = "-"
		}
		line := "  " + marker + " " + e.question
		if i == m.cursor {
			s += selectedStyle.Render(line) + "\n"
		} else {
			s += line + "\n"
		}
		if i == m.open {
			s += subtitleStyle.Render("      "+e.answer) + "\n"
		}
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  enter: expand/collapse")
	return s
}
