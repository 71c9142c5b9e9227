package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	// Tabs; the alt variants also work while a form has focus
	Overview key.Binding
	Invoices key.Binding
	Payout   key.Binding
	KYC      key.Binding
	FAQ      key.Binding

	// Session
	Profile    key.Binding
	Disconnect key.Binding

	// Actions
	Select  key.Binding
	New     key.Binding
	Edit    key.Binding
	Refresh key.Binding
	ViewAll key.Binding
	Save    key.Binding

	// Form
	NextField key.Binding
	PrevField key.Binding
	AddRef    key.Binding
	RemoveRef key.Binding

	// Movement
	Up   key.Binding
	Down key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Overview:   key.NewBinding(key.WithKeys("1", "alt+1"), key.WithHelp("1", "overview")),
	Invoices:   key.NewBinding(key.WithKeys("2", "alt+2"), key.WithHelp("2", "invoices")),
	Payout:     key.NewBinding(key.WithKeys("3", "alt+3"), key.WithHelp("3", "payout")),
	KYC:        key.NewBinding(key.WithKeys("4", "alt+4"), key.WithHelp("4", "kyc")),
	FAQ:        key.NewBinding(key.WithKeys("5", "alt+5"), key.WithHelp("5", "faq")),
	Profile:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
	Disconnect: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "disconnect")),
	Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	New:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	ViewAll:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view all")),
	Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	NextField:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	PrevField:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	AddRef:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "add reference")),
	RemoveRef:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove reference")),
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
}
