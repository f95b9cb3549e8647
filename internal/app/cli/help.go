package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"veil/internal/config"
)

type usageLine struct {
	command string
	desc    string
}

var (
	commandLines = []usageLine{
		{"veil [demo]", "Run the interactive demo screen"},
		{"veil exec [pattern...]", "Run configured tasks behind the indicator"},
		{"veil init [--force] [--dry-run]", "Generate " + config.DefaultConfigFile},
		{"veil version", "Show version"},
		{"veil help", "Show help"},
	}

	flagLines = []usageLine{
		{"-c, --config <path>", "Config file (default " + config.DefaultConfigFile + ")"},
		{"--delay <duration>", "Override the indicator delay"},
		{"--item <name>", "Override the indicator item"},
		{"--no-block", "Do not block input while the indicator is up"},
		{"--no-ui", "Keep log output on screen (not available for demo)"},
	}

	exampleLines = []usageLine{
		{"veil --delay=500ms", "Demo with a slower indicator"},
		{"veil exec 'test-*'", "Run every task whose name starts with test-"},
		{"veil init --dry-run", "Print the config template"},
	}
)

// renderHelp renders usage, flags and examples under the title block
func renderHelp() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		renderLines(commandLines, commandName),
		sectionHeader.Render("Flags:"),
		renderLines(flagLines, commandName),
		sectionHeader.Render("Examples:"),
		renderLines(exampleLines, exampleCode),
		hintText.Render(fmt.Sprintf("Items: %v", config.ItemNames)),
	) + "\n"
}

func renderLines(lines []usageLine, style lipgloss.Style) string {
	rows := make([]string, len(lines))

	for i, l := range lines {
		rows[i] = bodyText.Render(fmt.Sprintf("  %s  %s", style.Render(fmt.Sprintf("%-32s", l.command)), l.desc))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
