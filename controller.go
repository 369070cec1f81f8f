package scrollkit

import (
	"context"
	"sync"

	"github.com/dshills/scrollkit/host"
	"github.com/dshills/scrollkit/internal/animate"
	"github.com/dshills/scrollkit/internal/poll"
	"github.com/dshills/scrollkit/internal/track"
)

// Controller is the scroll facade: it owns the lifecycle state machine,
// the measurement snapshot, the stopper registry, the observer fan-out
// and the single active animation slot.
//
// All callbacks (host notifications, idle timer, animation frames) are
// serialized per notification: each one finishes classifying and
// emitting before the next is processed.
type Controller struct {
	env  host.Env
	opts Options

	mu           sync.Mutex
	state        State
	element      host.Element
	meas         Measurements
	current      *animate.Result
	stoppers     map[StopperToken]struct{}
	readyCh      chan struct{}
	cancelScroll func()
	cancelResize func()
	cancelVis    func()

	emitter   *emitter
	observers *observerSet
	tracker   *track.Tracker
	poller    *poll.Poller
}

// New creates a controller in the Pending state. Nothing is measured
// or listened to until Bind.
func New(env host.Env, opts Options) *Controller {
	opts = opts.normalized()
	c := &Controller{
		env:       env,
		opts:      opts,
		state:     StatePending,
		stoppers:  make(map[StopperToken]struct{}),
		readyCh:   make(chan struct{}),
		emitter:   newEmitter(),
		observers: newObserverSet(),
	}
	c.tracker = track.New(&trackSink{c}, opts.BaseAxis, opts.IdleDebounce)
	return c
}

// On subscribes fn to event type t and returns a detach closure.
func (c *Controller) On(t EventType, fn Handler) func() {
	_, off := c.emitter.on(t, fn)
	return off
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Scrolling reports whether a scroll episode is open.
func (c *Controller) Scrolling() bool {
	return c.tracker.Scrolling()
}

// Axis returns the dominant axis of the most recent tick.
func (c *Controller) Axis() Axis {
	return c.tracker.Axis()
}

// Directions returns the composite and per-axis last directions.
func (c *Controller) Directions() (composite, y, x Direction) {
	return c.tracker.Directions()
}

// Measurements returns the cached measurement snapshot.
func (c *Controller) Measurements() Measurements {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.meas
}

// WaitReady blocks until the controller leaves Pending or ctx expires.
func (c *Controller) WaitReady(ctx context.Context) error {
	select {
	case <-c.readyCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Bind resolves target (a host.Element or selector string), takes the
// initial measurements, transitions Pending to Ready, auto-starts and
// releases ready waiters. Binding an already bound controller is a
// no-op.
func (c *Controller) Bind(target any) error {
	c.mu.Lock()
	switch c.state {
	case StateDestroyed:
		c.mu.Unlock()
		return ErrAlreadyDestroyed
	case StateReady, StateRunning:
		c.mu.Unlock()
		return nil
	}

	el, err := c.resolveLocked(target)
	if err != nil {
		c.mu.Unlock()
		return err
	}

	c.element = el
	c.meas = measure(el)
	c.state = StateReady
	m := c.meas

	c.poller = poll.New(c.opts.pollConfig(), el.ContentSize, c.handleResize)
	if c.env.Visibility != nil {
		c.cancelVis = c.env.Visibility.OnVisibility(c.handleVisibility)
	}
	c.mu.Unlock()

	c.tracker.Prime(track.Offset{Left: m.ScrollLeft, Top: m.ScrollTop})
	c.observers.syncMeasurements(m)
	c.observers.syncState(StateReady)
	c.emitter.emit(Event{Type: EventChangeState, State: &StateChange{Old: StatePending, New: StateReady}})

	if err := c.Start(); err != nil {
		return err
	}

	close(c.readyCh)
	c.emitter.emit(Event{Type: EventReady})
	return nil
}

// resolveLocked maps a bind target to an element. Caller holds the lock.
func (c *Controller) resolveLocked(target any) (host.Element, error) {
	switch v := target.(type) {
	case host.Element:
		if v == nil {
			return nil, ErrInvalidTarget
		}
		return v, nil
	case string:
		if c.env.Resolver == nil {
			return nil, ErrInvalidTarget
		}
		el, ok := c.env.Resolver.Resolve(v)
		if !ok || el == nil {
			return nil, ErrInvalidTarget
		}
		return el, nil
	default:
		return nil, ErrInvalidTarget
	}
}

// Start attaches listeners and transitions Ready to Running. Calling
// Start while Pending queues nothing extra: Bind always auto-starts.
// No-op when already Running.
func (c *Controller) Start() error {
	c.mu.Lock()
	switch c.state {
	case StateDestroyed:
		c.mu.Unlock()
		return ErrAlreadyDestroyed
	case StateRunning, StatePending:
		c.mu.Unlock()
		return nil
	}

	el := c.element
	c.state = StateRunning
	c.cancelScroll = el.OnScroll(c.handleScroll)
	c.cancelResize = el.OnResize(c.handleResize)
	poller := c.poller
	c.mu.Unlock()

	poller.Start()

	c.observers.syncState(StateRunning)
	c.emitter.emit(Event{Type: EventChangeState, State: &StateChange{Old: StateReady, New: StateRunning}})
	return nil
}

// Stop detaches listeners and transitions Running to Ready. The cached
// state snapshot (offsets, directions) is retained. No-op when not
// Running.
func (c *Controller) Stop() error {
	c.mu.Lock()
	if c.state != StateRunning {
		c.mu.Unlock()
		return nil
	}
	c.state = StateReady
	cancelScroll, cancelResize := c.cancelScroll, c.cancelResize
	c.cancelScroll, c.cancelResize = nil, nil
	poller := c.poller
	c.mu.Unlock()

	if cancelScroll != nil {
		cancelScroll()
	}
	if cancelResize != nil {
		cancelResize()
	}
	c.tracker.Stop()
	poller.Stop()

	c.observers.syncState(StateReady)
	c.emitter.emit(Event{Type: EventChangeState, State: &StateChange{Old: StateRunning, New: StateReady}})
	return nil
}

// Destroy releases every resource: stops listeners, cancels any
// in-flight animation, clears the stopper set (restoring host
// scrolling), detaches from visibility notifications, clears observers
// and event subscribers, and transitions to the terminal Destroyed
// state. Idempotent.
func (c *Controller) Destroy() {
	c.mu.Lock()
	if c.state == StateDestroyed {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	_ = c.Stop()

	c.mu.Lock()
	old := c.state
	c.state = StateDestroyed
	cur := c.current
	c.current = nil
	cancelVis := c.cancelVis
	c.cancelVis = nil
	hadStoppers := len(c.stoppers) > 0
	c.stoppers = make(map[StopperToken]struct{})
	el := c.element
	c.element = nil
	c.mu.Unlock()

	if cur != nil {
		cur.Cancel()
	}
	if cancelVis != nil {
		cancelVis()
	}
	if hadStoppers && el != nil {
		el.SetScrollEnabled(true)
	}

	c.observers.syncState(StateDestroyed)
	c.emitter.emit(Event{Type: EventChangeState, State: &StateChange{Old: old, New: StateDestroyed}})

	c.observers.clear()
	c.emitter.clear()
}

// ApplyTunables updates the tunable option subset on a live controller.
// Lifecycle-structural options (base axis, polling) are ignored.
func (c *Controller) ApplyTunables(opts Options) {
	opts = opts.normalized()
	c.mu.Lock()
	c.opts.IdleDebounce = opts.IdleDebounce
	c.opts.Duration = opts.Duration
	c.opts.Easing = opts.Easing
	c.opts.FrameInterval = opts.FrameInterval
	c.mu.Unlock()

	c.tracker.SetIdleDelay(opts.IdleDebounce)
}

// handleScroll reacts to one raw position-change notification.
func (c *Controller) handleScroll() {
	c.mu.Lock()
	if c.state != StateRunning {
		c.mu.Unlock()
		return
	}
	el := c.element
	wasScrolling := c.tracker.Scrolling()

	left, top := el.Offset()
	if !wasScrolling {
		// Entering a new episode: content may have changed size
		// while idle without a notification.
		w, h := el.ContentSize()
		c.meas.setContentSize(w, h)
	}
	c.meas.setOffsets(left, top)
	m := c.meas
	c.mu.Unlock()

	c.observers.syncMeasurements(m)
	c.tracker.Observe(track.Offset{Left: left, Top: top})
}

// handleResize reacts to a container/content size notification, from
// the host or from the size poller.
func (c *Controller) handleResize() {
	c.mu.Lock()
	if c.state != StateRunning {
		c.mu.Unlock()
		return
	}
	c.meas = measure(c.element)
	m := c.meas
	c.mu.Unlock()

	c.observers.syncMeasurements(m)
	c.emitter.emit(Event{Type: EventResize, Size: &SizeInfo{
		ContainerWidth:  m.ContainerWidth,
		ContainerHeight: m.ContainerHeight,
		ScrollWidth:     m.ScrollWidth,
		ScrollHeight:    m.ScrollHeight,
	}})
}

// handleVisibility reacts to foreground/background transitions.
func (c *Controller) handleVisibility(visible bool) {
	c.mu.Lock()
	if c.state == StateDestroyed {
		c.mu.Unlock()
		return
	}
	el := c.element
	poller := c.poller
	if visible && el != nil {
		c.meas = measure(el)
	}
	m := c.meas
	c.mu.Unlock()

	if visible {
		c.observers.syncMeasurements(m)
		if poller != nil {
			poller.Resume()
		}
	} else if poller != nil {
		poller.Suspend()
	}
}

// scrollInfo builds a scroll-family payload from a classified tick.
func (c *Controller) scrollInfo(t track.Tick) *ScrollInfo {
	c.mu.Lock()
	m := c.meas
	c.mu.Unlock()

	return &ScrollInfo{
		Top:        m.ScrollTop,
		Left:       m.ScrollLeft,
		Bottom:     m.ScrollBottom,
		Right:      m.ScrollRight,
		Axis:       t.Axis,
		Direction:  t.Direction,
		YDirection: t.YDirection,
		XDirection: t.XDirection,
		TickedX:    t.TickedX,
		TickedY:    t.TickedY,
		TotalX:     t.TotalX,
		TotalY:     t.TotalY,
	}
}

// trackSink adapts the tracker's callbacks onto controller events and
// observer synchronization.
type trackSink struct {
	c *Controller
}

func (s *trackSink) ScrollStart(t track.Tick) {
	s.c.observers.syncScrolling(true)
	s.c.emitter.emit(Event{Type: EventScrollStart, Scroll: s.c.scrollInfo(t)})
}

func (s *trackSink) Scroll(t track.Tick) {
	s.c.emitter.emit(Event{Type: EventScroll, Scroll: s.c.scrollInfo(t)})
}

func (s *trackSink) ScrollEnd(t track.Tick) {
	s.c.observers.syncScrolling(false)
	s.c.emitter.emit(Event{Type: EventScrollEnd, Scroll: s.c.scrollInfo(t)})
}

func (s *trackSink) AxisChanged(old, cur track.Axis) {
	s.c.observers.syncAxis(cur)
	s.c.emitter.emit(Event{Type: EventChangeAxis, Axis: &AxisChange{Old: old, New: cur}})
}

func (s *trackSink) DirectionChanged(old, cur track.Direction) {
	s.c.observers.syncLastDirection(cur)
	s.c.emitter.emit(Event{Type: EventChangeLastDirection, Direction: &DirectionChange{Old: old, New: cur}})
}

func (s *trackSink) YDirectionChanged(old, cur track.Direction) {
	s.c.observers.syncLastYDirection(cur)
	s.c.emitter.emit(Event{Type: EventChangeLastYDirection, Direction: &DirectionChange{Old: old, New: cur}})
}

func (s *trackSink) XDirectionChanged(old, cur track.Direction) {
	s.c.observers.syncLastXDirection(cur)
	s.c.emitter.emit(Event{Type: EventChangeLastXDirection, Direction: &DirectionChange{Old: old, New: cur}})
}
