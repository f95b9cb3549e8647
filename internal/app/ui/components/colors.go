package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	// Foreground colors - text and elements
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - primary/focus color
	FgMuted   = lipgloss.Color("7")       // Light gray - muted elements
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text
	FgDimmed  = lipgloss.Color("240")     // Dark gray - content under an overlay

	// Status colors
	FgStatusRunning = lipgloss.Color("10") // Green - request ended
	FgStatusWarning = lipgloss.Color("11") // Yellow - request started
	FgStatusError   = lipgloss.Color("9")  // Red - contract violation
)

// FadeRamp steps an indicator from invisible to fully drawn
var FadeRamp = []lipgloss.AdaptiveColor{
	{Light: "#E4DEFC", Dark: "#2A2340"},
	{Light: "#C2B3F9", Dark: "#4B3C86"},
	{Light: "#9F86F6", Dark: "#6A52C8"},
	{Light: "#7D56F4", Dark: "#7D56F4"},
}
