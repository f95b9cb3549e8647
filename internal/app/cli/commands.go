package cli

import (
	"time"

	"github.com/spf13/cobra"

	"veil/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandDemo CommandType = iota
	CommandExec
	CommandInit
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type       CommandType
	ConfigPath string
	Delay      time.Duration
	Item       string
	NoBlock    bool
	NoUI       bool
	Patterns   []string
	Force      bool
	DryRun     bool
}

// Apply overrides config values with the flags that were set
func (o *Options) Apply(cfg *config.Config) {
	if o.Delay != 0 {
		cfg.Indicator.Delay = o.Delay
	}

	if o.Item != "" {
		cfg.Indicator.Item = o.Item
	}

	if o.NoBlock {
		cfg.Indicator.BlockInteraction = false
	}
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns a Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type:       CommandDemo,
		ConfigPath: config.DefaultConfigFile,
		Patterns:   []string{},
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildDemoCommand(result),
		buildExecCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "A debounced busy indicator for the terminal",
		Long: `Veil shows a busy indicator only when work outlasts a short delay,
and keeps it up across back-to-back requests instead of flickering.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandDemo
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&result.ConfigPath, "config", "c", config.DefaultConfigFile, "Path to the config file")
	pf.DurationVar(&result.Delay, "delay", 0, "Override the indicator delay")
	pf.StringVar(&result.Item, "item", "", "Override the indicator item")
	pf.BoolVar(&result.NoBlock, "no-block", false, "Do not block input while the indicator is up")
	pf.BoolVar(&result.NoUI, "no-ui", false, "Run without TUI")

	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildDemoCommand creates the demo subcommand
func buildDemoCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "demo",
		Aliases: []string{"d"},
		Short:   "Run the interactive demo screen",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandDemo
		},
	}
}

// buildExecCommand creates the exec subcommand
func buildExecCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "exec [pattern...]",
		Aliases: []string{"x"},
		Short:   "Run configured tasks behind the indicator",
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandExec
			result.Patterns = args
		},
	}
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate veil.yaml template",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVarP(&result.Force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&result.DryRun, "dry-run", false, "Print the template instead of writing it")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}
}
