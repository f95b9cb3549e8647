package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"veil/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Indicator   Indicator   `yaml:"indicator" mapstructure:"indicator"`
	Logging     Logging     `yaml:"logging" mapstructure:"logging"`
	Telemetry   Telemetry   `yaml:"telemetry" mapstructure:"telemetry"`
	Concurrency Concurrency `yaml:"concurrency" mapstructure:"concurrency"`
	Watch       Watch       `yaml:"watch" mapstructure:"watch"`
	Tasks       []Task      `yaml:"tasks" mapstructure:"tasks"`

	// Path is the file the configuration was read from, empty when defaults were used
	Path string `yaml:"-" mapstructure:"-"`
}

// Indicator holds the debounce controller settings
type Indicator struct {
	Delay            time.Duration `yaml:"delay" mapstructure:"delay"`
	BlockInteraction bool          `yaml:"block_interaction" mapstructure:"block_interaction"`
	Item             string        `yaml:"item" mapstructure:"item"`
	Label            string        `yaml:"label" mapstructure:"label"`
	Strict           bool          `yaml:"strict" mapstructure:"strict"`
}

// Logging holds logger settings
type Logging struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Telemetry holds error reporting settings
type Telemetry struct {
	DSN         string `yaml:"dsn" mapstructure:"dsn"`
	Environment string `yaml:"environment" mapstructure:"environment"`
}

// Concurrency holds task runner limits
type Concurrency struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// Watch represents config hot-reload settings
type Watch struct {
	Enabled  bool          `yaml:"enabled" mapstructure:"enabled"`
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// Task represents a shell command run by the exec command
type Task struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Command string `yaml:"command" mapstructure:"command"`
	Dir     string `yaml:"dir,omitempty" mapstructure:"dir"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Tasks: []Task{},
	}

	cfg.Indicator.Delay = DefaultDelay
	cfg.Indicator.BlockInteraction = DefaultBlockInteraction
	cfg.Indicator.Item = DefaultItem
	cfg.Indicator.Label = DefaultLabel

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Telemetry.Environment = DefaultEnvironment

	cfg.Concurrency.Workers = MaxWorkers

	cfg.Watch.Debounce = WatchDebounce

	return cfg
}

// Overrides adjusts a freshly loaded config, such as with command-line flags; it must run after every load
type Overrides func(cfg *Config)

// Load reads .env and the config file at path, falling back to defaults when the file is missing
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	if err := LoadEnv(DefaultEnvFile); err != nil {
		return nil, err
	}

	v := newViper()

	data, err := os.ReadFile(path)

	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}
	case os.IsNotExist(err):
		path = ""
	default:
		return nil, errors.ErrFailedToReadConfig
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.Path = path
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// LoadEnv loads environment variables from a dotenv file without overriding existing ones
func LoadEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToLoadEnv, err)
	}

	return nil
}

// newViper creates a viper instance with defaults registered so env overrides resolve
func newViper() *viper.Viper {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("indicator.delay", defaults.Indicator.Delay)
	v.SetDefault("indicator.block_interaction", defaults.Indicator.BlockInteraction)
	v.SetDefault("indicator.item", defaults.Indicator.Item)
	v.SetDefault("indicator.label", defaults.Indicator.Label)
	v.SetDefault("indicator.strict", defaults.Indicator.Strict)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("telemetry.dsn", defaults.Telemetry.DSN)
	v.SetDefault("telemetry.environment", defaults.Telemetry.Environment)
	v.SetDefault("concurrency.workers", defaults.Concurrency.Workers)
	v.SetDefault("watch.enabled", defaults.Watch.Enabled)
	v.SetDefault("watch.debounce", defaults.Watch.Debounce)

	return v
}

// normalize trims and lowercases free-form names
func (c *Config) normalize() {
	c.Indicator.Item = strings.ToLower(strings.TrimSpace(c.Indicator.Item))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))

	for i := range c.Tasks {
		c.Tasks[i].Name = strings.TrimSpace(c.Tasks[i].Name)
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateIndicator(); err != nil {
		return err
	}

	if err := c.validateConcurrency(); err != nil {
		return err
	}

	if err := c.validateWatch(); err != nil {
		return err
	}

	return c.validateTasks()
}

// validateIndicator validates controller settings
func (c *Config) validateIndicator() error {
	if c.Indicator.Delay <= 0 {
		return errors.ErrInvalidDelay
	}

	if c.Indicator.Item == "" {
		c.Indicator.Item = DefaultItem
	}

	if !IsKnownItem(c.Indicator.Item) {
		return fmt.Errorf("%w: '%s'", errors.ErrUnknownItem, c.Indicator.Item)
	}

	return nil
}

// IsKnownItem reports whether name is a built-in indicator item
func IsKnownItem(name string) bool {
	for _, known := range ItemNames {
		if name == known {
			return true
		}
	}

	return false
}

// validateConcurrency validates concurrency settings
func (c *Config) validateConcurrency() error {
	if c.Concurrency.Workers <= 0 {
		return errors.ErrInvalidWorkers
	}

	return nil
}

// validateWatch validates hot-reload settings
func (c *Config) validateWatch() error {
	if c.Watch.Debounce < 0 {
		return errors.ErrInvalidWatchDebounce
	}

	return nil
}

// validateTasks validates task definitions
func (c *Config) validateTasks() error {
	seen := make(map[string]bool, len(c.Tasks))

	for i, task := range c.Tasks {
		if task.Name == "" {
			return fmt.Errorf("task %d: %w", i, errors.ErrTaskNameRequired)
		}

		if strings.TrimSpace(task.Command) == "" {
			return fmt.Errorf("task %s: %w", task.Name, errors.ErrTaskCommandRequired)
		}

		if seen[task.Name] {
			return fmt.Errorf("%w: %s", errors.ErrDuplicateTask, task.Name)
		}

		seen[task.Name] = true
	}

	return nil
}

// TaskNames returns the configured task names in declaration order
func (c *Config) TaskNames() []string {
	names := make([]string, 0, len(c.Tasks))
	for _, task := range c.Tasks {
		names = append(names, task.Name)
	}

	return names
}
