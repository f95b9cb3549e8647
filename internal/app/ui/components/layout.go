package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"veil/internal/config"
)

const ellipsis = "…"

// RenderLine renders a horizontal line of the specified width with separator style
func RenderLine(width int) string {
	return SeparatorStyle.Render(strings.Repeat("─", max(width, 0)))
}

// RenderHeader renders the header as ─── <title> ─────── <info> ───, shortening the title when space runs out
func RenderHeader(width int, title, info string) string {
	infoWidth := lipgloss.Width(info)

	if room := width - infoWidth - HeaderSeparatorMinWidth - HeaderFixedChars; room > 0 {
		title = fit(title, room)
	}

	fill := max(width-lipgloss.Width(title)-infoWidth-HeaderFixedChars, HeaderSeparatorMinWidth)

	return HeaderStyle.Render(strings.Join([]string{RenderLine(3), title, RenderLine(fill), info, RenderLine(3)}, " "))
}

// RenderFooter renders a rule carrying the tip and the version, with the key help underneath
func RenderFooter(width int, helpText, tip string) string {
	version := "v" + config.Version

	used := lipgloss.Width(version) + FooterFixedChars
	if tip != "" {
		tip = fit(tip, max(width-used-FooterSeparatorMinWidth-1, 0))
		used += lipgloss.Width(tip) + 1
	}

	rule := RenderLine(max(width-used, FooterSeparatorMinWidth)) + " " + version + " " + RenderLine(3)
	if tip != "" {
		rule = tip + " " + rule
	}

	help := FooterHelpStyle.Render(HelpStyle.Render(helpText))

	return FooterStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rule, help))
}

// RenderContent wraps content with spacing
func RenderContent(content string) string {
	return ContentStyle.Render(content)
}

// fit shortens s to at most width cells, keeping styling intact
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}

	return ansi.Truncate(s, width, ellipsis)
}
