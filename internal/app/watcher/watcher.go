//go:generate mockgen -source=watcher.go -destination=watcher_mock.go -package=watcher
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/fx"

	"veil/internal/app/bus"
	"veil/internal/app/errors"
	"veil/internal/config"
	"veil/internal/config/logger"
)

// ApplyFunc receives a freshly loaded config; the watcher calls it from its own goroutine
type ApplyFunc func(cfg *config.Config)

// Watcher reloads the config file when it or the env file changes
type Watcher interface {
	Start(ctx context.Context, apply ApplyFunc) error
	Close()
}

// Params contains dependencies for creating a Watcher
type Params struct {
	fx.In

	Config    *config.Config
	Bus       bus.Bus
	Overrides config.Overrides `optional:"true"`
	Logger    logger.Logger
}

// manager implements the Watcher interface
type manager struct {
	cfg       *config.Config
	overrides config.Overrides
	bus       bus.Bus
	fsWatcher *fsnotify.Watcher
	matcher   Matcher
	debouncer Debouncer
	apply     ApplyFunc
	log       logger.Logger
	mu        sync.Mutex
	started   bool
	closed    bool
}

// NewWatcher creates a Watcher for the config file the app was started with; reloads keep the overrides
func NewWatcher(p Params) Watcher {
	return &manager{
		cfg:       p.Config,
		overrides: p.Overrides,
		bus:       p.Bus,
		log:       p.Logger.WithComponent("WATCHER"),
	}
}

// Start begins watching; it does nothing when watching is disabled or no config file exists
func (m *manager) Start(ctx context.Context, apply ApplyFunc) error {
	if !m.cfg.Watch.Enabled {
		m.log.Debug().Msg("Config watching disabled")
		return nil
	}

	if m.cfg.Path == "" {
		m.log.Info().Msg("No config file to watch")
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started || m.closed {
		return nil
	}

	matcher, err := NewConfigMatcher(m.cfg.Path, config.DefaultEnvFile)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToCreateWatcher, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToCreateWatcher, err)
	}

	dir := filepath.Dir(m.cfg.Path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return fmt.Errorf("%w: %w", errors.ErrFailedToCreateWatcher, err)
	}

	m.fsWatcher = fsw
	m.matcher = matcher
	m.apply = apply
	m.debouncer = NewDebouncer(m.cfg.Watch.Debounce, m.reload)
	m.started = true

	go m.processEvents()

	go func() {
		<-ctx.Done()
		m.Close()
	}()

	m.log.Info().Msgf("Watching %s for changes", m.cfg.Path)
	m.bus.Publish(bus.Message{Type: bus.EventWatchStarted, Data: bus.WatchState{Path: m.cfg.Path}})

	return nil
}

// Close stops watching and releases the fsnotify watcher
func (m *manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	m.closed = true

	if !m.started {
		return
	}

	m.debouncer.Stop()
	m.fsWatcher.Close()

	m.log.Debug().Msg("Stopped watching")
	m.bus.Publish(bus.Message{Type: bus.EventWatchStopped, Data: bus.WatchState{Path: m.cfg.Path}})
}

// processEvents routes fsnotify events to the debouncer
func (m *manager) processEvents() {
	for {
		select {
		case event, ok := <-m.fsWatcher.Events:
			if !ok {
				return
			}

			m.handleEvent(event)
		case err, ok := <-m.fsWatcher.Errors:
			if !ok {
				return
			}

			m.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

// handleEvent triggers a reload for relevant changes to watched files
func (m *manager) handleEvent(event fsnotify.Event) {
	if !isRelevantEvent(event) || !m.matcher.Match(event.Name) {
		return
	}

	m.debouncer.Trigger(filepath.Base(event.Name))
}

// reload loads the config again and hands it to apply; on error the previous settings stay
func (m *manager) reload(files []string) {
	m.log.Debug().Msgf("Changed: %v", files)

	cfg, err := m.load()
	if err != nil {
		m.log.Error().Err(err).Msg("Failed to reload config, keeping previous settings")
		m.bus.Publish(bus.Message{
			Type:     bus.EventReloadFailed,
			Data:     bus.ReloadFailed{Path: m.cfg.Path, Error: err},
			Critical: true,
		})

		return
	}

	if cfg == nil {
		m.log.Warn().Msgf("Config file %s disappeared, keeping previous settings", m.cfg.Path)
		return
	}

	m.apply(cfg)

	m.log.Info().Msgf("Reloaded %s (delay %s, item %s)", cfg.Path, cfg.Indicator.Delay, cfg.Indicator.Item)
	m.bus.Publish(bus.Message{
		Type: bus.EventConfigReloaded,
		Data: bus.ConfigReloaded{Path: cfg.Path, Delay: cfg.Indicator.Delay, Item: cfg.Indicator.Item},
	})
}

// load reads the file and reapplies the overrides; a nil config means the file is gone
func (m *manager) load() (*config.Config, error) {
	cfg, err := config.Load(m.cfg.Path)
	if err != nil {
		return nil, err
	}

	if cfg.Path == "" {
		return nil, nil
	}

	if m.overrides == nil {
		return cfg, nil
	}

	m.overrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// isRelevantEvent returns true if the event may have changed file contents
func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename)
}
