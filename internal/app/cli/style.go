package cli

import (
	"github.com/charmbracelet/lipgloss"

	"veil/internal/config"
)

// palette adapts to light and dark terminal backgrounds
var (
	accent  = lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#7D56F4"}
	success = lipgloss.AdaptiveColor{Light: "#028A5B", Dark: "#04B575"}
	warning = lipgloss.AdaptiveColor{Light: "#C56A00", Dark: "#FFA726"}
	danger  = lipgloss.AdaptiveColor{Light: "#C2185B", Dark: "#FF5F87"}
	text    = lipgloss.AdaptiveColor{Light: "#303030", Dark: "#E0E0E0"}
	muted   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"}
)

var (
	sectionHeader = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginTop(1).MarginBottom(1)
	commandName   = lipgloss.NewStyle().Bold(true).Foreground(success)
	exampleCode   = lipgloss.NewStyle().Bold(true).Foreground(warning)
	errorLabel    = lipgloss.NewStyle().Bold(true).Foreground(danger)
	bodyText      = lipgloss.NewStyle().Foreground(text)
	hintText      = lipgloss.NewStyle().Italic(true).Foreground(muted).MarginTop(1)
	versionText   = lipgloss.NewStyle().Foreground(muted)
)

// RenderTitle renders the name and version line followed by the one-line description
func RenderTitle() string {
	name := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(config.AppName)
	title := lipgloss.NewStyle().MarginTop(1).MarginBottom(1).Render(name + versionText.Render(" v"+config.Version))

	return lipgloss.JoinVertical(lipgloss.Left, title, bodyText.Render(config.AppDescription))
}

// RenderError renders a one-line error message
func RenderError(err error) string {
	return errorLabel.Render("Error:") + " " + err.Error()
}
