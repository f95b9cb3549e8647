//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"

	"veil/internal/app/errors"
	"veil/internal/app/generator"
	"veil/internal/app/tasks"
	"veil/internal/app/ui/wire"
	"veil/internal/config"
	"veil/internal/config/logger"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute(ctx context.Context) (int, error)
}

// Params contains dependencies for creating the CLI
type Params struct {
	fx.In

	Options   *Options
	Config    *config.Config
	UI        wire.UI
	Runner    tasks.Runner
	Generator generator.Generator
	Logger    logger.Logger
}

// cli represents the command-line interface for the application
type cli struct {
	opts      *Options
	cfg       *config.Config
	ui        wire.UI
	runner    tasks.Runner
	generator generator.Generator
	out       io.Writer
	log       logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(p Params) CLI {
	return &cli{
		opts:      p.Options,
		cfg:       p.Config,
		ui:        p.UI,
		runner:    p.Runner,
		generator: p.Generator,
		out:       os.Stdout,
		log:       p.Logger,
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute(ctx context.Context) (int, error) {
	var err error

	switch c.opts.Type {
	case CommandDemo:
		err = c.handleDemo(ctx)
	case CommandExec:
		err = c.handleExec(ctx)
	case CommandInit:
		err = c.handleInit()
	case CommandVersion:
		c.handleVersion()
	case CommandHelp:
		c.handleHelp()
	default:
		err = errors.ErrUnknownCommand
	}

	if err != nil {
		fmt.Fprintln(c.out, RenderError(err))
		return ExitFailure, err
	}

	return ExitSuccess, nil
}

// handleDemo runs the demo screen until the user quits or ctx is cancelled
func (c *cli) handleDemo(ctx context.Context) error {
	if c.opts.NoUI {
		return errors.ErrDemoRequiresUI
	}

	c.log.Debug().Msgf("Starting demo (delay %s, item %s)", c.cfg.Indicator.Delay, c.cfg.Indicator.Item)

	p, err := c.ui(ctx)
	if err != nil {
		return err
	}

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		c.log.Error().Err(err).Msg("Demo failed")
		return err
	}

	return nil
}

// handleExec runs the selected tasks and prints their summary
func (c *cli) handleExec(ctx context.Context) error {
	c.log.Debug().Msgf("Running tasks matching %v", c.opts.Patterns)

	summary, err := c.runner.Run(ctx, c.opts.Patterns)
	if summary != nil {
		summary.Render(c.out)
	}

	if err != nil {
		c.log.Error().Err(err).Msg("Task run failed")
	}

	return err
}

// handleInit writes the config template using the current settings as defaults
func (c *cli) handleInit() error {
	opts := generator.DefaultOptions()
	opts.Path = c.opts.ConfigPath
	opts.Delay = c.cfg.Indicator.Delay
	opts.BlockInteraction = c.cfg.Indicator.BlockInteraction
	opts.Item = c.cfg.Indicator.Item
	opts.Label = c.cfg.Indicator.Label

	return c.generator.Generate(opts, c.opts.Force, c.opts.DryRun)
}

// handleVersion displays version information
func (c *cli) handleVersion() {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprintln(c.out, RenderTitle())
}

// handleHelp displays help information
func (c *cli) handleHelp() {
	c.log.Debug().Msg("Displaying help information")
	fmt.Fprint(c.out, renderHelp())
}
