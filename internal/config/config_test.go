package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 500, cfg.IdleDebounceMs)
	assert.Equal(t, "y", cfg.BaseAxis)
	assert.Equal(t, 400, cfg.DurationMs)
	assert.Equal(t, "in-out-cubic", cfg.Easing)
	assert.Equal(t, 16, cfg.FrameIntervalMs)
	assert.False(t, cfg.Poll.WatchWidth)
	assert.False(t, cfg.Poll.WatchHeight)
	require.NoError(t, cfg.Validate())
}

func TestParseTOMLPartialFillsDefaults(t *testing.T) {
	data := []byte(`
target = "#main"
idle_debounce_ms = 250

[poll]
interval_ms = 100
watch_height = true
`)
	cfg, err := ParseTOML("test.toml", data)
	require.NoError(t, err)

	assert.Equal(t, "#main", cfg.Target)
	assert.Equal(t, 250, cfg.IdleDebounceMs)
	assert.Equal(t, "y", cfg.BaseAxis, "unset field takes the default")
	assert.Equal(t, "in-out-cubic", cfg.Easing)
	assert.Equal(t, 100, cfg.Poll.IntervalMs)
	assert.True(t, cfg.Poll.WatchHeight)
	assert.Equal(t, 250*time.Millisecond, cfg.IdleDebounce())
	assert.Equal(t, 100*time.Millisecond, cfg.PollInterval())
}

func TestParseYAMLPartialFillsDefaults(t *testing.T) {
	data := []byte(`
target: "#main"
base_axis: x
duration_ms: 800
easing: out-expo
`)
	cfg, err := ParseYAML("test.yaml", data)
	require.NoError(t, err)

	assert.Equal(t, "#main", cfg.Target)
	assert.Equal(t, "x", cfg.BaseAxis)
	assert.Equal(t, 800, cfg.DurationMs)
	assert.Equal(t, "out-expo", cfg.Easing)
	assert.Equal(t, 500, cfg.IdleDebounceMs, "unset field takes the default")
	assert.Equal(t, 800*time.Millisecond, cfg.Duration())
}

func TestParseTOMLMalformed(t *testing.T) {
	_, err := ParseTOML("bad.toml", []byte(`target = [unclosed`))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "bad.toml", perr.Path)
	assert.NotNil(t, errors.Unwrap(perr))
}

func TestParseYAMLMalformed(t *testing.T) {
	_, err := ParseYAML("bad.yaml", []byte("target: [\n"))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "bad.yaml", perr.Path)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad axis", func(c *Config) { c.BaseAxis = "z" }},
		{"negative debounce", func(c *Config) { c.IdleDebounceMs = -1 }},
		{"negative duration", func(c *Config) { c.DurationMs = -10 }},
		{"negative frame interval", func(c *Config) { c.FrameIntervalMs = -1 }},
		{"negative poll interval", func(c *Config) { c.Poll.IntervalMs = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scroll.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadPicksDecoderByExtension(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "scroll.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(`duration_ms = 123`), 0o644))
	cfg, err := Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, 123, cfg.DurationMs)

	yamlPath := filepath.Join(dir, "scroll.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`duration_ms: 321`), 0o644))
	cfg, err = Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 321, cfg.DurationMs)
}

func TestLoadValidatesAfterFill(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scroll.toml")
	require.NoError(t, os.WriteFile(path, []byte(`base_axis = "diagonal"`), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidValue)
}
