package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veil/internal/app/errors"
	"veil/internal/config"
	"veil/internal/config/logger"
)

func newTestGenerator() (*generator, *bytes.Buffer) {
	out := &bytes.Buffer{}
	gen := NewGenerator(logger.NewNopLogger()).(*generator)
	gen.out = out

	return gen, out
}

func Test_DefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, config.DefaultConfigFile, opts.Path)
	assert.Equal(t, config.DefaultDelay, opts.Delay)
	assert.Equal(t, config.DefaultItem, opts.Item)
	assert.Equal(t, "spinner, pulse, bar", opts.Items())
}

func Test_Generator_Generate(t *testing.T) {
	gen, _ := newTestGenerator()

	opts := DefaultOptions()
	opts.Path = filepath.Join(t.TempDir(), config.DefaultConfigFile)

	require.NoError(t, gen.Generate(opts, false, false))

	content, err := os.ReadFile(opts.Path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "delay: 200ms")
	assert.Contains(t, string(content), "item: spinner")
	assert.Contains(t, string(content), "command: go build ./...")

	cfg, err := config.Load(opts.Path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultDelay, cfg.Indicator.Delay)
	assert.Equal(t, []string{"build"}, cfg.TaskNames())
}

func Test_Generator_Generate_CustomOptions(t *testing.T) {
	gen, _ := newTestGenerator()

	opts := DefaultOptions()
	opts.Path = filepath.Join(t.TempDir(), "custom.yaml")
	opts.Delay = 750 * time.Millisecond
	opts.Item = config.ItemBar
	opts.BlockInteraction = false
	opts.TaskName = "lint"
	opts.TaskCommand = "golangci-lint run"

	require.NoError(t, gen.Generate(opts, false, false))

	cfg, err := config.Load(opts.Path)
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, cfg.Indicator.Delay)
	assert.Equal(t, config.ItemBar, cfg.Indicator.Item)
	assert.False(t, cfg.Indicator.BlockInteraction)
	assert.Equal(t, []string{"lint"}, cfg.TaskNames())
}

func Test_Generator_Generate_InvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(opts *Options)
	}{
		{name: "Unknown item", mutate: func(opts *Options) { opts.Item = "wheel" }},
		{name: "Zero workers", mutate: func(opts *Options) { opts.Workers = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, _ := newTestGenerator()

			opts := DefaultOptions()
			opts.Path = filepath.Join(t.TempDir(), config.DefaultConfigFile)
			tt.mutate(&opts)

			err := gen.Generate(opts, false, false)
			assert.ErrorIs(t, err, errors.ErrInvalidConfig)

			_, err = os.Stat(opts.Path)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func Test_Generator_Generate_FileExists(t *testing.T) {
	gen, _ := newTestGenerator()

	opts := DefaultOptions()
	opts.Path = filepath.Join(t.TempDir(), config.DefaultConfigFile)
	require.NoError(t, os.WriteFile(opts.Path, []byte("existing"), 0600))

	err := gen.Generate(opts, false, false)
	assert.ErrorIs(t, err, errors.ErrConfigExists)
	assert.Contains(t, err.Error(), "--force")
}

func Test_Generator_Generate_ForceOverwrite(t *testing.T) {
	gen, _ := newTestGenerator()

	opts := DefaultOptions()
	opts.Path = filepath.Join(t.TempDir(), config.DefaultConfigFile)
	require.NoError(t, os.WriteFile(opts.Path, []byte("existing"), 0600))

	require.NoError(t, gen.Generate(opts, true, false))

	content, err := os.ReadFile(opts.Path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "indicator:")
}

func Test_Generator_Generate_DryRun(t *testing.T) {
	gen, out := newTestGenerator()

	opts := DefaultOptions()
	opts.Path = filepath.Join(t.TempDir(), config.DefaultConfigFile)

	require.NoError(t, gen.Generate(opts, false, true))

	_, err := os.Stat(opts.Path)
	assert.True(t, os.IsNotExist(err))
	assert.Contains(t, out.String(), "indicator:")
}

func Test_Generator_Generate_DryRun_IgnoresExistingFile(t *testing.T) {
	gen, out := newTestGenerator()

	opts := DefaultOptions()
	opts.Path = filepath.Join(t.TempDir(), config.DefaultConfigFile)
	require.NoError(t, os.WriteFile(opts.Path, []byte("existing"), 0600))

	require.NoError(t, gen.Generate(opts, false, true))

	content, err := os.ReadFile(opts.Path)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(content))
	assert.NotEmpty(t, out.String())
}
