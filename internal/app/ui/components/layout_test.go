package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"veil/internal/config"
)

func Test_RenderLine(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{name: "positive width", width: 10, want: 10},
		{name: "zero width", width: 0, want: 0},
		{name: "negative width", width: -3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strings.Count(RenderLine(tt.width), "─"))
		})
	}
}

func Test_RenderHeader(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		title    string
		contains []string
		excludes []string
	}{
		{
			name:     "fits",
			width:    60,
			title:    "veil demo",
			contains: []string{"veil demo", "delay 200ms"},
		},
		{
			name:     "long title is shortened",
			width:    40,
			title:    "a very long title that cannot possibly fit here",
			contains: []string{"delay 200ms", "…"},
			excludes: []string{"possibly"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := RenderHeader(tt.width, tt.title, "delay 200ms")

			for _, s := range tt.contains {
				assert.Contains(t, header, s)
			}

			for _, s := range tt.excludes {
				assert.NotContains(t, header, s)
			}
		})
	}
}

func Test_RenderFooter(t *testing.T) {
	tests := []struct {
		name     string
		tip      string
		contains []string
	}{
		{name: "without tip", contains: []string{"v" + config.Version, "q quit"}},
		{name: "with tip", tip: "press i", contains: []string{"v" + config.Version, "q quit", "press i"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			footer := RenderFooter(60, "q quit", tt.tip)

			for _, s := range tt.contains {
				assert.Contains(t, footer, s)
			}
		})
	}
}

func Test_fit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{name: "fits", input: "short", maxWidth: 10, want: "short"},
		{name: "truncated", input: "a longer title", maxWidth: 6, want: "a lon…"},
		{name: "single cell", input: "abc", maxWidth: 1, want: "…"},
		{name: "no room", input: "abc", maxWidth: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fit(tt.input, tt.maxWidth)

			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, lipgloss.Width(got), max(tt.maxWidth, 0))
		})
	}
}

func Test_Tip(t *testing.T) {
	assert.Equal(t, Tips[0], Tip(0))
	assert.Equal(t, Tips[1], Tip(len(Tips)+1))
	assert.Equal(t, Tips[2], Tip(-2))
}
