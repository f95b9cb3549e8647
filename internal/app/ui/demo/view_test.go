package demo

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"veil/internal/config"
)

func Test_View(t *testing.T) {
	m := newTestModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()

	assert.Contains(t, view, "veil demo")
	assert.Contains(t, view, StatusIdle)
	assert.Contains(t, view, "delay 200ms")
	assert.Contains(t, view, "blocking on")
	assert.Contains(t, view, "none yet")
	assert.Contains(t, view, "v"+config.Version)
}

func Test_View_HeightFillsWindowWhileShown(t *testing.T) {
	m := newTestModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m = send(m, keyPress("2"))
	m = fireTimers(m)

	assert.Len(t, strings.Split(m.View(), "\n"), 40)
}

func Test_View_RecentEvents(t *testing.T) {
	m := newTestModel(t)

	m = send(m, keyPress("1"))

	view := m.View()
	assert.Contains(t, view, "task_started (count 1)")
	assert.Contains(t, view, "timer_armed")
	assert.NotContains(t, view, "none yet")
}

func Test_renderStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
	}{
		{name: "Idle", status: StatusIdle},
		{name: "Started", status: StatusStarted},
		{name: "Ended", status: StatusEnded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m.state.status = tt.status

			assert.Contains(t, m.renderStatus(), tt.status)
		})
	}
}
