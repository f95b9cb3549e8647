package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"veil/internal/app/bus"
	"veil/internal/app/telemetry"
	"veil/internal/app/ui/demo"
	"veil/internal/app/watcher"
	"veil/internal/config"
	"veil/internal/config/logger"
)

// UI creates a Bubble Tea program for the demo screen
type UI func(ctx context.Context) (*tea.Program, error)

// Module provides the UI factory
var Module = fx.Options(
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config   *config.Config
	Bus      bus.Bus
	Watcher  watcher.Watcher
	Reporter telemetry.Reporter
	Logger   logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context) (*tea.Program, error) {
		model, err := demo.NewModel(params.Config, params.Bus, params.Logger, params.Reporter.Report)
		if err != nil {
			return nil, err
		}

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		err = params.Watcher.Start(ctx, func(cfg *config.Config) {
			p.Send(demo.ReloadMsg{Config: cfg})
		})
		if err != nil {
			params.Logger.Warn().Err(err).Msg("Config hot reload unavailable")
		}

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}
