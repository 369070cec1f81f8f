package scrollkit

import (
	"fmt"
	"time"

	"github.com/dshills/scrollkit/easing"
	"github.com/dshills/scrollkit/internal/config"
	"github.com/dshills/scrollkit/internal/poll"
)

// Options configures a controller instance. Zero fields take defaults.
type Options struct {
	// IdleDebounce is the quiet interval after which an open scroll
	// episode is considered ended. Default 500ms.
	IdleDebounce time.Duration

	// BaseAxis breaks ties when horizontal and vertical tick deltas
	// are equal. Default AxisY.
	BaseAxis Axis

	// Duration is the default animation duration. Default 400ms.
	Duration time.Duration

	// Easing is the default easing curve. Default easing.InOutCubic.
	Easing easing.Func

	// FrameInterval paces animation steps. Default 16ms.
	FrameInterval time.Duration

	// Poll configures background content-size polling. Disabled when
	// zero; used as a fallback where the host cannot deliver resize
	// notifications for the bound element.
	Poll PollOptions
}

// PollOptions configures the content-size poller.
type PollOptions struct {
	Interval    time.Duration
	WatchWidth  bool
	WatchHeight bool
}

// DefaultOptions returns the option set with every field defaulted.
func DefaultOptions() Options {
	return Options{
		IdleDebounce:  500 * time.Millisecond,
		BaseAxis:      AxisY,
		Duration:      400 * time.Millisecond,
		Easing:        easing.InOutCubic,
		FrameInterval: 16 * time.Millisecond,
	}
}

// normalized fills zero fields with defaults.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.IdleDebounce <= 0 {
		o.IdleDebounce = def.IdleDebounce
	}
	if o.Duration <= 0 {
		o.Duration = def.Duration
	}
	if o.Easing == nil {
		o.Easing = def.Easing
	}
	if o.FrameInterval <= 0 {
		o.FrameInterval = def.FrameInterval
	}
	return o
}

func (o Options) pollConfig() poll.Config {
	return poll.Config{
		Interval:    o.Poll.Interval,
		WatchWidth:  o.Poll.WatchWidth,
		WatchHeight: o.Poll.WatchHeight,
	}
}

// LoadOptions reads options from a TOML or YAML file. The second return
// value is the configured bind target selector, empty when the file
// does not name one. A missing file yields the defaults.
func LoadOptions(path string) (Options, string, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return Options{}, "", err
	}
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return Options{}, "", err
	}
	return opts, cfg.Target, nil
}

// optionsFromConfig maps the file-level option set onto Options.
func optionsFromConfig(cfg config.Config) (Options, error) {
	fn, ok := easing.Lookup(cfg.Easing)
	if !ok {
		return Options{}, fmt.Errorf("%w: %q", ErrUnknownEasing, cfg.Easing)
	}

	axis := AxisY
	if cfg.BaseAxis == "x" {
		axis = AxisX
	}

	return Options{
		IdleDebounce:  cfg.IdleDebounce(),
		BaseAxis:      axis,
		Duration:      cfg.Duration(),
		Easing:        fn,
		FrameInterval: cfg.FrameInterval(),
		Poll: PollOptions{
			Interval:    cfg.PollInterval(),
			WatchWidth:  cfg.Poll.WatchWidth,
			WatchHeight: cfg.Poll.WatchHeight,
		},
	}, nil
}

// WatchOptions live-reloads the tunable option subset (idle debounce,
// duration, easing, frame pacing) from path into a running controller.
// The returned closer stops watching.
func WatchOptions(path string, c *Controller) (func() error, error) {
	w, err := config.Watch(path, func(cfg config.Config) {
		opts, err := optionsFromConfig(cfg)
		if err != nil {
			return // keep the last good tunables
		}
		c.ApplyTunables(opts)
	}, nil)
	if err != nil {
		return nil, err
	}
	return w.Close, nil
}

// moveConfig is the merged per-call option set for a move request.
type moveConfig struct {
	duration      time.Duration
	easingFn      easing.Func
	frameInterval time.Duration
	container     any
	x             *bool
	y             *bool
}

// MoveOption overrides an instance default for a single move request.
type MoveOption func(*moveConfig)

// WithDuration overrides the animation duration.
func WithDuration(d time.Duration) MoveOption {
	return func(mc *moveConfig) { mc.duration = d }
}

// WithEasing overrides the easing curve.
func WithEasing(fn easing.Func) MoveOption {
	return func(mc *moveConfig) { mc.easingFn = fn }
}

// WithFrameInterval overrides the animation frame pacing.
func WithFrameInterval(d time.Duration) MoveOption {
	return func(mc *moveConfig) { mc.frameInterval = d }
}

// WithContainer animates a different container than the bound element.
// Accepts a host.Element or a selector string.
func WithContainer(target any) MoveOption {
	return func(mc *moveConfig) { mc.container = target }
}

// WithAxes selects which axes the move may animate.
func WithAxes(x, y bool) MoveOption {
	return func(mc *moveConfig) { mc.x, mc.y = &x, &y }
}

// merge builds the effective per-call configuration.
func (o Options) merge(opts []MoveOption) moveConfig {
	mc := moveConfig{
		duration:      o.Duration,
		easingFn:      o.Easing,
		frameInterval: o.FrameInterval,
	}
	for _, opt := range opts {
		opt(&mc)
	}
	return mc
}

// axes returns the effective axis flags, defaulting to both enabled.
func (mc moveConfig) axes() (x, y bool) {
	x, y = true, true
	if mc.x != nil {
		x = *mc.x
	}
	if mc.y != nil {
		y = *mc.y
	}
	return x, y
}

// axesForBase returns the effective axis flags, defaulting unspecified
// flags from the base axis. Used by MoveToElement.
func (mc moveConfig) axesForBase(base Axis) (x, y bool) {
	x, y = base == AxisX, base == AxisY
	if mc.x != nil {
		x = *mc.x
	}
	if mc.y != nil {
		y = *mc.y
	}
	return x, y
}
