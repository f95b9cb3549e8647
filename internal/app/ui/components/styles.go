package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	// TitleStyle for view titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	// HeaderStyle for the top line
	HeaderStyle = lipgloss.NewStyle().
			Padding(1, 1, 0, 1)

	// FooterStyle for the bottom block
	FooterStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// FooterHelpStyle for the help line inside the footer
	FooterHelpStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	// ContentStyle for the main area
	ContentStyle = lipgloss.NewStyle().
			Padding(1, 2)

	// SeparatorStyle for horizontal lines
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	// OverlayStyle for the box drawn around an indicator
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FgPrimary).
			Padding(1, 3)

	// DimmedStyle for content behind a raised overlay
	DimmedStyle = lipgloss.NewStyle().
			Foreground(FgDimmed)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	// MutedStyle for secondary text
	MutedStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	// LabelStyle for the text next to an indicator frame
	LabelStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			Italic(true)

	// StartedStyle for in-flight status text
	StartedStyle = lipgloss.NewStyle().
			Foreground(FgStatusWarning)

	// EndedStyle for completed status text
	EndedStyle = lipgloss.NewStyle().
			Foreground(FgStatusRunning)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(FgStatusError)
)
