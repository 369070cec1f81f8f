// Package config loads scroll controller options from TOML or YAML
// files and supports live reload of the tunable subset.
package config

import (
	"fmt"
	"time"
)

// Default values applied where a file leaves a field unset.
const (
	DefaultIdleDebounceMs  = 500
	DefaultDurationMs      = 400
	DefaultFrameIntervalMs = 16
	DefaultEasing          = "in-out-cubic"
	DefaultBaseAxis        = "y"
)

// Config is the file-level option set.
type Config struct {
	// Target is the selector of the element to bind.
	Target string `toml:"target" yaml:"target"`

	// IdleDebounceMs is the scroll-end debounce interval.
	IdleDebounceMs int `toml:"idle_debounce_ms" yaml:"idle_debounce_ms"`

	// BaseAxis breaks axis ties: "x" or "y".
	BaseAxis string `toml:"base_axis" yaml:"base_axis"`

	// DurationMs is the default animation duration.
	DurationMs int `toml:"duration_ms" yaml:"duration_ms"`

	// Easing names the default easing curve.
	Easing string `toml:"easing" yaml:"easing"`

	// FrameIntervalMs paces animation steps.
	FrameIntervalMs int `toml:"frame_interval_ms" yaml:"frame_interval_ms"`

	// Poll configures background content-size polling.
	Poll PollConfig `toml:"poll" yaml:"poll"`
}

// PollConfig configures the content-size poller.
type PollConfig struct {
	IntervalMs  int  `toml:"interval_ms" yaml:"interval_ms"`
	WatchWidth  bool `toml:"watch_width" yaml:"watch_width"`
	WatchHeight bool `toml:"watch_height" yaml:"watch_height"`
}

// Default returns a configuration with every field at its default.
func Default() Config {
	return Config{
		IdleDebounceMs:  DefaultIdleDebounceMs,
		BaseAxis:        DefaultBaseAxis,
		DurationMs:      DefaultDurationMs,
		Easing:          DefaultEasing,
		FrameIntervalMs: DefaultFrameIntervalMs,
	}
}

// fillDefaults replaces zero fields with defaults.
func (c *Config) fillDefaults() {
	if c.IdleDebounceMs == 0 {
		c.IdleDebounceMs = DefaultIdleDebounceMs
	}
	if c.BaseAxis == "" {
		c.BaseAxis = DefaultBaseAxis
	}
	if c.DurationMs == 0 {
		c.DurationMs = DefaultDurationMs
	}
	if c.Easing == "" {
		c.Easing = DefaultEasing
	}
	if c.FrameIntervalMs == 0 {
		c.FrameIntervalMs = DefaultFrameIntervalMs
	}
}

// Validate checks field values that have a closed domain.
func (c Config) Validate() error {
	if c.BaseAxis != "x" && c.BaseAxis != "y" {
		return fmt.Errorf("%w: base_axis %q", ErrInvalidValue, c.BaseAxis)
	}
	if c.IdleDebounceMs < 0 {
		return fmt.Errorf("%w: idle_debounce_ms %d", ErrInvalidValue, c.IdleDebounceMs)
	}
	if c.DurationMs < 0 {
		return fmt.Errorf("%w: duration_ms %d", ErrInvalidValue, c.DurationMs)
	}
	if c.FrameIntervalMs < 0 {
		return fmt.Errorf("%w: frame_interval_ms %d", ErrInvalidValue, c.FrameIntervalMs)
	}
	if c.Poll.IntervalMs < 0 {
		return fmt.Errorf("%w: poll.interval_ms %d", ErrInvalidValue, c.Poll.IntervalMs)
	}
	return nil
}

// IdleDebounce returns the debounce interval as a duration.
func (c Config) IdleDebounce() time.Duration {
	return time.Duration(c.IdleDebounceMs) * time.Millisecond
}

// Duration returns the default animation duration.
func (c Config) Duration() time.Duration {
	return time.Duration(c.DurationMs) * time.Millisecond
}

// FrameInterval returns the animation frame pacing.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMs) * time.Millisecond
}

// PollInterval returns the poller interval.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.Poll.IntervalMs) * time.Millisecond
}
