package components

import "github.com/charmbracelet/lipgloss"

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains helpful hints displayed in the footer
var Tips = []string{
	tipDesc("A request shorter than the delay never shows the indicator"),
	tipDesc("Run configured tasks behind the indicator with ") + tipKey("veil exec"),
	tipDesc("Start with a longer window using ") + tipKey("veil --delay 500ms"),
	tipDesc("Generate a config with ") + tipKey("veil init"),
	tipDesc("Press ") + tipKey("b") + tipDesc(" to let keys through while the indicator is up"),
	tipDesc("Press ") + tipKey("i") + tipDesc(" to swap the indicator item"),
}

// Tip returns the tip for a rotation index
func Tip(index int) string {
	if index < 0 {
		index = -index
	}

	return Tips[index%len(Tips)]
}
