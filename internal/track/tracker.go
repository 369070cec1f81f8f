// Package track classifies raw scroll position notifications into
// discrete episodes with axis and direction semantics.
//
// A Tracker consumes absolute offsets, one per host notification, and
// reports episode boundaries (start, tick, end) plus axis and direction
// changes through a Sink. Episodes end either naturally, when an idle
// debounce timer lapses with no further notifications, or implicitly,
// when the dominant axis or its direction reverses mid-episode. An
// implicit end does not reopen an episode in the same pass; the next
// notification does, through the not-scrolling branch.
package track

import (
	"math"
	"sync"
	"time"
)

// DefaultIdleDelay is the debounce interval used when none is configured.
const DefaultIdleDelay = 500 * time.Millisecond

// Tracker is the scroll state machine.
type Tracker struct {
	sink Sink

	mu        sync.Mutex
	baseAxis  Axis
	idleDelay time.Duration
	idleTimer *time.Timer

	offset       Offset
	primed       bool
	scrolling    bool
	episodeStart Offset

	axis Axis
	dir  Direction
	yDir Direction
	xDir Direction

	totalX float64
	totalY float64
}

// New creates a tracker reporting to sink. The base axis breaks ties when
// horizontal and vertical tick deltas are equal.
func New(sink Sink, baseAxis Axis, idleDelay time.Duration) *Tracker {
	if idleDelay <= 0 {
		idleDelay = DefaultIdleDelay
	}
	return &Tracker{
		sink:      sink,
		baseAxis:  baseAxis,
		idleDelay: idleDelay,
		axis:      baseAxis,
	}
}

// Prime records the current offset without classifying it.
// Called once after binding so the first real notification produces
// sensible deltas instead of measuring from the zero offset.
func (t *Tracker) Prime(offset Offset) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.offset = offset
	t.primed = true
}

// Scrolling reports whether an episode is open.
func (t *Tracker) Scrolling() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scrolling
}

// Axis returns the dominant axis of the most recent tick.
func (t *Tracker) Axis() Axis {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.axis
}

// Directions returns the composite and per-axis directions.
func (t *Tracker) Directions() (composite, y, x Direction) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dir, t.yDir, t.xDir
}

// SetIdleDelay updates the debounce interval. A non-positive delay
// restores the default. The change applies from the next notification.
func (t *Tracker) SetIdleDelay(d time.Duration) {
	if d <= 0 {
		d = DefaultIdleDelay
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.idleDelay = d
}

// Stop cancels the idle timer without emitting an end event and closes
// any open episode silently. Used when listeners detach.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.idleTimer != nil {
		t.idleTimer.Stop()
		t.idleTimer = nil
	}
	t.scrolling = false
}

// Observe classifies one raw position-change notification.
// Notifications must arrive in order; the caller serializes them.
func (t *Tracker) Observe(cur Offset) {
	t.mu.Lock()

	if !t.primed {
		t.offset = cur
		t.primed = true
	}
	prev := t.offset
	t.offset = cur

	tickedX := cur.Left - prev.Left
	tickedY := cur.Top - prev.Top

	axis := t.baseAxis
	switch {
	case math.Abs(tickedX) > math.Abs(tickedY):
		axis = AxisX
	case math.Abs(tickedY) > math.Abs(tickedX):
		axis = AxisY
	}

	// Per-axis directions only move when that axis moved.
	yDir := t.yDir
	if tickedY > 0 {
		yDir = DirBottom
	} else if tickedY < 0 {
		yDir = DirTop
	}
	xDir := t.xDir
	if tickedX > 0 {
		xDir = DirRight
	} else if tickedX < 0 {
		xDir = DirLeft
	}

	dir := yDir
	if axis == AxisX {
		dir = xDir
	}

	oldAxis, oldDir, oldYDir, oldXDir := t.axis, t.dir, t.yDir, t.xDir
	t.axis, t.dir, t.yDir, t.xDir = axis, dir, yDir, xDir

	var calls []func()
	if axis != oldAxis {
		calls = append(calls, func() { t.sink.AxisChanged(oldAxis, axis) })
	}
	if yDir != oldYDir {
		calls = append(calls, func() { t.sink.YDirectionChanged(oldYDir, yDir) })
	}
	if xDir != oldXDir {
		calls = append(calls, func() { t.sink.XDirectionChanged(oldXDir, xDir) })
	}
	if dir != oldDir {
		calls = append(calls, func() { t.sink.DirectionChanged(oldDir, dir) })
	}

	switch {
	case !t.scrolling:
		// Opening notification. Totals measure from the offset before
		// this movement so the opening tick counts toward them.
		t.scrolling = true
		t.episodeStart = prev
		t.totalX = tickedX
		t.totalY = tickedY
		tick := t.tickLocked(tickedX, tickedY)
		calls = append(calls, func() { t.sink.ScrollStart(tick) })

	case axis != oldAxis || dir != oldDir:
		// Reversal closes the episode. The paired start is not
		// synthesized here; the next notification reopens it.
		t.scrolling = false
		tick := t.tickLocked(tickedX, tickedY)
		calls = append(calls, func() { t.sink.ScrollEnd(tick) })

	default:
		t.totalX = cur.Left - t.episodeStart.Left
		t.totalY = cur.Top - t.episodeStart.Top
		tick := t.tickLocked(tickedX, tickedY)
		calls = append(calls, func() { t.sink.Scroll(tick) })
	}

	t.rescheduleIdleLocked()
	t.mu.Unlock()

	for _, call := range calls {
		call()
	}
}

// tickLocked builds a Tick from current state. Caller holds the lock.
func (t *Tracker) tickLocked(tickedX, tickedY float64) Tick {
	return Tick{
		Offset:     t.offset,
		Axis:       t.axis,
		Direction:  t.dir,
		YDirection: t.yDir,
		XDirection: t.xDir,
		TickedX:    tickedX,
		TickedY:    tickedY,
		TotalX:     t.totalX,
		TotalY:     t.totalY,
	}
}

// rescheduleIdleLocked resets the single debounce timer. Caller holds
// the lock.
func (t *Tracker) rescheduleIdleLocked() {
	if t.idleTimer != nil {
		t.idleTimer.Stop()
	}
	t.idleTimer = time.AfterFunc(t.idleDelay, t.idleLapsed)
}

// idleLapsed fires when no notification arrived for the idle delay.
func (t *Tracker) idleLapsed() {
	t.mu.Lock()
	if !t.scrolling {
		t.mu.Unlock()
		return
	}
	t.scrolling = false
	tick := t.tickLocked(0, 0)
	t.mu.Unlock()

	t.sink.ScrollEnd(tick)
}
