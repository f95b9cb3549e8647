package demo

import (
	"math/rand"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"veil/internal/app/bus"
	"veil/internal/app/indicator"
	"veil/internal/app/items"
	"veil/internal/app/surface"
	"veil/internal/app/ui/components"
	"veil/internal/config"
	"veil/internal/config/logger"
)

// Status lines shown above the event list
const (
	StatusIdle    = "Press 1, 2 or 3 to simulate a request."
	StatusStarted = "Request started."
	StatusEnded   = "Request ended."
)

// Model is the Bubble Tea model of the demo screen
type Model struct {
	ctrl    *indicator.Controller
	overlay *surface.Overlay
	sched   *scheduler
	history *history
	label   string

	state struct {
		status    string
		inFlight  int
		reloadErr error
	}

	ui struct {
		width       int
		height      int
		keys        KeyMap
		help        help.Model
		tickCounter int
		tipOffset   int
	}

	log logger.Logger
}

// NewModel builds the controller the demo drives, rendering its item on a TUI overlay.
// Observers run synchronously ahead of the bus, so they see a strict violation before its panic.
func NewModel(cfg *config.Config, b bus.Bus, log logger.Logger, observers ...indicator.Observer) (Model, error) {
	log = log.WithComponent("DEMO")

	item, err := items.New(cfg.Indicator.Item, cfg.Indicator.Label)
	if err != nil {
		return Model{}, err
	}

	sched := &scheduler{}
	overlay := surface.NewOverlay()

	ctrl, err := indicator.NewController(indicator.SettingsFromConfig(cfg), sched, overlay, item, log)
	if err != nil {
		return Model{}, err
	}

	hist := newHistory(config.EventHistory)
	ctrl.OnEvent(hist.record)

	for _, observe := range observers {
		ctrl.OnEvent(observe)
	}

	ctrl.OnEvent(b.Observer())

	m := Model{
		ctrl:    ctrl,
		overlay: overlay,
		sched:   sched,
		history: hist,
		label:   cfg.Indicator.Label,
		log:     log,
	}

	m.state.status = StatusIdle

	m.ui.width = components.DefaultViewportWidth
	m.ui.keys = DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.tipOffset = rand.Intn(len(components.Tips)) //nolint:gosec // not security-critical

	log.Debug().Msgf("Created model with item %s and delay %s", cfg.Indicator.Item, cfg.Indicator.Delay)

	return m, nil
}

// Init starts the animation clock
func (m Model) Init() tea.Cmd {
	return frameCmd()
}

// Controller returns the controller driven by the model
func (m Model) Controller() *indicator.Controller {
	return m.ctrl
}
