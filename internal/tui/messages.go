package tui

import (
	"time"

	"github.com/movo/dashboard/internal/dashboard"
	"github.com/movo/dashboard/internal/session"
)

// SwitchTabMsg requests a tab change
type SwitchTabMsg struct {
	Tab dashboard.Tab
}

// RefreshDataMsg is sent to a screen when its tab becomes active
type RefreshDataMsg struct{}

// ErrorMsg carries error information
type ErrorMsg struct {
	Err error
}

// taskDoneMsg carries a finished dashboard task back to the event loop
type taskDoneMsg struct {
	msg dashboard.Msg
}

// walletEventMsg is a change raised by the wallet provider
type walletEventMsg struct {
	change session.Change
}

type walletActionMsg struct {
	status string
	err    error
}

type clockMsg time.Time
