package demo

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"veil/internal/app/items"
	"veil/internal/app/ui/components"
	"veil/internal/config"
)

const tickCounterMaximum = 1000000

// frameMsg advances the indicator animation
type frameMsg time.Time

// requestMsg starts a simulated request lasting d
type requestMsg struct {
	d time.Duration
}

// responseMsg finishes a simulated request
type responseMsg struct{}

// ReloadMsg delivers a reloaded config to the running demo
type ReloadMsg struct {
	Config *config.Config
}

// ReloadFailedMsg reports a config change that could not be loaded
type ReloadFailedMsg struct {
	Err error
}

func frameCmd() tea.Cmd {
	return tea.Tick(components.UITickInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func requestCmd(after, d time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return requestMsg{d: d}
	})
}

func responseCmd(after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return responseMsg{}
	})
}

// Update handles a message and then releases any timers the controller armed while handling it
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)

	return next, tea.Batch(cmd, m.sched.flush())
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width

		return m, nil

	case frameMsg:
		m.ui.tickCounter++
		if m.ui.tickCounter >= tickCounterMaximum {
			m.ui.tickCounter = 0
		}

		m.overlay.Tick()

		return m, frameCmd()

	case timerMsg:
		msg.fn()
		return m, nil

	case requestMsg:
		return m.beginRequest(msg.d)

	case responseMsg:
		m.state.status = StatusEnded
		m.state.inFlight--
		m.ctrl.Decrement()

		return m, nil

	case ReloadMsg:
		return m.applyConfig(msg.Config), nil

	case ReloadFailedMsg:
		m.state.reloadErr = msg.Err
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input; everything but quitting is swallowed while the overlay absorbs input
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.ui.keys.Quitting(msg) {
		m.log.Debug().Msg("Quit requested")
		return m, tea.Quit
	}

	if m.overlay.Absorbs() {
		m.log.Debug().Msgf("Swallowed key %s", msg.String())
		return m, nil
	}

	switch {
	case key.Matches(msg, m.ui.keys.Short):
		return m.beginRequest(config.ShortRequest)

	case key.Matches(msg, m.ui.keys.Long):
		return m.beginRequest(config.LongRequest)

	case key.Matches(msg, m.ui.keys.Overlap):
		next, cmd := m.beginRequest(config.LongRequest)
		return next, tea.Batch(cmd, requestCmd(config.OverlapOffset, config.LongRequest))

	case key.Matches(msg, m.ui.keys.Item):
		return m.cycleItem(), nil

	case key.Matches(msg, m.ui.keys.Block):
		m.ctrl.SetInteractionBlocked(!m.ctrl.InteractionBlocked())
		return m, nil

	case key.Matches(msg, m.ui.keys.DelayUp):
		return m.changeDelay(config.DelayStep), nil

	case key.Matches(msg, m.ui.keys.DelayDown):
		return m.changeDelay(-config.DelayStep), nil

	case key.Matches(msg, m.ui.keys.Help):
		m.ui.help.ShowAll = !m.ui.help.ShowAll
		return m, nil
	}

	return m, nil
}

// beginRequest increments the controller and schedules the matching decrement
func (m Model) beginRequest(d time.Duration) (Model, tea.Cmd) {
	m.state.status = StatusStarted
	m.state.inFlight++
	m.ctrl.Increment()

	return m, responseCmd(d)
}

// cycleItem swaps in the next built-in item, already running when the overlay is up
func (m Model) cycleItem() Model {
	current, ok := m.ctrl.Item().(*items.Item)

	name := config.DefaultItem
	if ok {
		name = items.Next(current.Name())
	}

	item, err := items.New(name, m.label)
	if err != nil {
		m.log.Error().Err(err).Msg("Failed to create item")
		return m
	}

	if err := m.ctrl.SetItem(item); err != nil {
		m.log.Error().Err(err).Msg("Failed to swap item")
		return m
	}

	if m.ctrl.IsShowing() {
		item.Resume()
	}

	return m
}

// changeDelay steps the delay, never going below the minimum
func (m Model) changeDelay(step time.Duration) Model {
	d := m.ctrl.Delay() + step
	if d < config.MinDelay {
		d = config.MinDelay
	}

	if err := m.ctrl.SetDelay(d); err != nil {
		m.log.Error().Err(err).Msg("Failed to change delay")
	}

	return m
}

// applyConfig pushes reloaded settings into the controller
func (m Model) applyConfig(cfg *config.Config) Model {
	if err := items.Apply(m.ctrl, cfg); err != nil {
		m.log.Error().Err(err).Msg("Failed to apply reloaded config")
		m.state.reloadErr = err

		return m
	}

	m.label = cfg.Indicator.Label
	m.state.reloadErr = nil
	m.history.add("config reloaded")

	return m
}
