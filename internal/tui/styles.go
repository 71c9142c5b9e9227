package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("39")  // Blue
	accentColor  = lipgloss.Color("205") // Pink
	mutedColor   = lipgloss.Color("241") // Gray
	successColor = lipgloss.Color("76")  // Green
	warningColor = lipgloss.Color("214") // Orange
	errorColor   = lipgloss.Color("196") // Red

	// Base styles
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	subtitleStyle = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("117")) // Bright cyan
	selectedStyle = lipgloss.NewStyle().Bold(true).Background(primaryColor).Foreground(lipgloss.Color("0"))
	errorStyle    = lipgloss.NewStyle().Foreground(errorColor)
	statusStyle   = lipgloss.NewStyle().Foreground(successColor)
	warnStyle     = lipgloss.NewStyle().Foreground(warningColor)
	labelStyle    = lipgloss.NewStyle().Bold(true).Width(20)
	valueStyle    = lipgloss.NewStyle().Foreground(primaryColor)
	focusedLabel  = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)

	// Box styles
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1)
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accentColor).
			Padding(1, 3)
	inertStyle = lipgloss.NewStyle().Faint(true)

	// Layout
	borderColor    = lipgloss.Color("63") // Soft purple
	appBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(1, 2)

	// Header/Footer
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Padding(0, 1)
	identityStyle  = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true) // Bright yellow
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(accentColor).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 1)

	// Amounts
	amountStyle     = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	equivalentStyle = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
)
