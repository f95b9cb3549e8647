package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"veil/internal/app/items"
	"veil/internal/app/ui/components"
)

// tipRotationTicks is how many frames a tip stays before the next one
const tipRotationTicks = 60

// View renders the screen and composes the overlay on top
func (m Model) View() string {
	base := lipgloss.JoinVertical(
		lipgloss.Left,
		components.RenderHeader(m.ui.width, components.TitleStyle.Render("veil demo"), m.renderSettings()),
		components.RenderContent(m.renderBody()),
		components.RenderFooter(m.ui.width, m.ui.help.View(m.ui.keys), components.Tip(m.ui.tipOffset+m.ui.tickCounter/tipRotationTicks)),
	)

	height := m.ui.height
	if rows := lipgloss.Height(base); rows > height {
		height = rows
	}

	return m.overlay.Compose(base, m.ui.width, height)
}

// renderSettings renders the active item, delay and blocking policy
func (m Model) renderSettings() string {
	name := ""
	if item, ok := m.ctrl.Item().(*items.Item); ok {
		name = item.Name()
	}

	blocking := "off"
	if m.ctrl.InteractionBlocked() {
		blocking = "on"
	}

	return components.MutedStyle.Render(fmt.Sprintf("%s • delay %s • blocking %s", name, m.ctrl.Delay(), blocking))
}

// renderBody renders the status line, the controller state, the recent events and any reload error
func (m Model) renderBody() string {
	var b strings.Builder

	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")

	showing := "no"
	if m.ctrl.IsShowing() {
		showing = "yes"
	}

	b.WriteString(components.MutedStyle.Render(fmt.Sprintf(
		"in flight %d • count %d • showing %s • phase %s",
		m.state.inFlight, m.ctrl.Count(), showing, m.ctrl.Phase(),
	)))
	b.WriteString("\n\n")

	b.WriteString(components.TitleStyle.Render("recent events"))
	b.WriteString("\n")

	lines := m.history.lines()
	if len(lines) == 0 {
		b.WriteString(components.MutedStyle.Render("none yet"))
	}

	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(components.MutedStyle.Render(line))
	}

	if m.state.reloadErr != nil {
		b.WriteString("\n\n")
		b.WriteString(components.ErrorStyle.Render(fmt.Sprintf("config reload failed: %v", m.state.reloadErr)))
	}

	return b.String()
}

// renderStatus renders the request status line
func (m Model) renderStatus() string {
	switch m.state.status {
	case StatusStarted:
		return components.StartedStyle.Render(m.state.status)
	case StatusEnded:
		return components.EndedStyle.Render(m.state.status)
	default:
		return components.MutedStyle.Render(m.state.status)
	}
}
