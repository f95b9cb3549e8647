//go:generate mockgen -source=telemetry.go -destination=telemetry_mock.go -package=telemetry
package telemetry

import (
	"context"
	"fmt"
	"strconv"

	"github.com/getsentry/sentry-go"

	"veil/internal/app/bus"
	"veil/internal/app/errors"
	"veil/internal/app/indicator"
	"veil/internal/config"
	"veil/internal/config/logger"
)

// Reporter sends contract violations and reload failures to an error tracker.
// Report is meant to be registered as a controller observer so a violation is captured
// before a strict controller panics; Watch only follows reload failures on the bus.
type Reporter interface {
	Report(e indicator.Event)
	Watch(ctx context.Context, b bus.Bus)
	Flush()
}

// reporter implements Reporter on top of a sentry hub
type reporter struct {
	hub *sentry.Hub
	log logger.Logger
}

// New creates a sentry-backed reporter, or a no-op one when no DSN is configured
func New(cfg *config.Config, log logger.Logger) (Reporter, error) {
	log = log.WithComponent("TELEMETRY")

	if cfg.Telemetry.DSN == "" {
		log.Debug().Msg("Telemetry disabled")
		return NoOp(), nil
	}

	return newReporter(sentry.ClientOptions{
		Dsn:         cfg.Telemetry.DSN,
		Environment: cfg.Telemetry.Environment,
		Release:     config.AppName + "@" + config.Version,
	}, log)
}

func newReporter(opts sentry.ClientOptions, log logger.Logger) (Reporter, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToInitTelemetry, err)
	}

	return &reporter{
		hub: sentry.NewHub(client, sentry.NewScope()),
		log: log,
	}, nil
}

// Report captures a controller event; only contract violations are sent
func (r *reporter) Report(e indicator.Event) {
	if e.Type != indicator.EventContractViolation {
		return
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)
		scope.SetTag("component", "indicator")
		scope.SetTag("phase", e.Phase)
		scope.SetTag("count", strconv.Itoa(e.Count))
		scope.SetExtra("delay", e.Delay.String())

		r.hub.CaptureMessage(e.Message)
	})

	r.log.Debug().Msgf("Reported violation: %s", e.Message)
}

// Watch reports reload failures published on the bus until ctx is done or the bus closes
func (r *reporter) Watch(ctx context.Context, b bus.Bus) {
	ch := b.Subscribe(ctx)

	go func() {
		for msg := range ch {
			data, ok := msg.Data.(bus.ReloadFailed)
			if !ok {
				continue
			}

			r.hub.WithScope(func(scope *sentry.Scope) {
				scope.SetLevel(sentry.LevelWarning)
				scope.SetTag("component", "watcher")
				scope.SetExtra("path", data.Path)

				r.hub.CaptureException(data.Error)
			})
		}
	}()
}

// Flush waits for buffered events to be sent
func (r *reporter) Flush() {
	if !r.hub.Flush(config.TelemetryFlush) {
		r.log.Warn().Msg("Timed out flushing telemetry")
	}
}

// NoOp returns a reporter that drops everything
func NoOp() Reporter {
	return &noOpReporter{}
}

type noOpReporter struct{}

func (n *noOpReporter) Report(indicator.Event)         {}
func (n *noOpReporter) Watch(context.Context, bus.Bus) {}
func (n *noOpReporter) Flush()                         {}
