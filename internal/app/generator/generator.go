//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"time"

	"go.yaml.in/yaml/v3"

	"veil/internal/app/errors"
	"veil/internal/config"
	"veil/internal/config/logger"
)

const templatePath = "templates/veil.yaml.tmpl"

//go:embed templates/veil.yaml.tmpl
var templateFS embed.FS

// Options contains the values rendered into veil.yaml
type Options struct {
	Path             string
	Delay            time.Duration
	BlockInteraction bool
	Item             string
	Label            string
	Workers          int
	TaskName         string
	TaskCommand      string
}

// Items lists the built-in item names for the template comment
func (o Options) Items() string {
	return strings.Join(config.ItemNames, ", ")
}

// DefaultOptions returns sensible defaults for generation
func DefaultOptions() Options {
	return Options{
		Path:             config.DefaultConfigFile,
		Delay:            config.DefaultDelay,
		BlockInteraction: config.DefaultBlockInteraction,
		Item:             config.DefaultItem,
		Label:            config.DefaultLabel,
		Workers:          config.MaxWorkers,
		TaskName:         "build",
		TaskCommand:      "go build ./...",
	}
}

// Generator defines the interface for generating veil.yaml
type Generator interface {
	Generate(opts Options, force bool, dryRun bool) error
}

type generator struct {
	out io.Writer
	log logger.Logger
}

// NewGenerator creates a new generator instance
func NewGenerator(log logger.Logger) Generator {
	return &generator{
		out: os.Stdout,
		log: log,
	}
}

// Generate renders the template and writes it to opts.Path, or prints it on a dry run
func (g *generator) Generate(opts Options, force bool, dryRun bool) error {
	if opts.Path == "" {
		opts.Path = config.DefaultConfigFile
	}

	if !dryRun && !force {
		if _, err := os.Stat(opts.Path); err == nil {
			return fmt.Errorf("%w: %s, use --force to overwrite", errors.ErrConfigExists, opts.Path)
		}
	}

	content, err := render(opts)
	if err != nil {
		return err
	}

	if dryRun {
		_, err := g.out.Write(content)
		return err
	}

	if err := os.WriteFile(opts.Path, content, 0600); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteTemplate, err)
	}

	g.log.Info().Msgf("Generated %s", opts.Path)

	return nil
}

// render executes the template and checks that the result parses back into a valid config
func render(opts Options) ([]byte, error) {
	tmplContent, err := templateFS.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToRenderTemplate, err)
	}

	tmpl, err := template.New(config.DefaultConfigFile).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToRenderTemplate, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToRenderTemplate, err)
	}

	cfg := config.DefaultConfig()
	if err := yaml.Unmarshal(buf.Bytes(), cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToRenderTemplate, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return buf.Bytes(), nil
}
