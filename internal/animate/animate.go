// Package animate computes interpolated scroll positions frame by frame.
//
// An animation captures its start offset and per-axis distance once, then
// runs a timer-paced loop writing eased positions through the host offset
// setter. The final frame writes the exact target value so no floating
// point drift remains. Cancellation stops the loop where it is and
// resolves the completion channel; it is not an error.
package animate

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/scrollkit/easing"
)

// DefaultFrameInterval paces the update loop when none is configured.
// Roughly one step per 60Hz display frame.
const DefaultFrameInterval = 16 * time.Millisecond

// Host is the scroll offset surface an animation drives.
// SetOffset may clamp to the scrollable range.
type Host interface {
	Offset() (left, top float64)
	SetOffset(left, top float64)
}

// Target holds absolute per-axis destinations. A nil axis leaves that
// axis at its current offset.
type Target struct {
	X *float64
	Y *float64
}

// Options configures a single animation run.
type Options struct {
	// Duration of the full transition. Non-positive jumps directly
	// to the target.
	Duration time.Duration

	// Easing maps progress to eased progress. Defaults to easing.InOutCubic.
	Easing easing.Func

	// FrameInterval paces update steps. Defaults to DefaultFrameInterval.
	FrameInterval time.Duration

	// X and Y select which axes this run may move.
	X bool
	Y bool
}

// Result is the handle to an in-flight animation.
type Result struct {
	done       chan struct{}
	doneOnce   sync.Once
	cancelCh   chan struct{}
	cancelOnce sync.Once
	cancelled  atomic.Bool
}

func newResult() *Result {
	return &Result{
		done:     make(chan struct{}),
		cancelCh: make(chan struct{}),
	}
}

// Done is closed when the animation completes or is cancelled.
func (r *Result) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until completion, cancellation, or context expiry.
// Cancellation is a successful outcome and returns nil.
func (r *Result) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel stops the animation immediately. The offset stays wherever the
// last step left it and Done resolves. Safe to call more than once.
func (r *Result) Cancel() {
	r.cancelOnce.Do(func() {
		r.cancelled.Store(true)
		close(r.cancelCh)
	})
	r.resolve()
}

// Cancelled reports whether the animation was cancelled before finishing.
func (r *Result) Cancelled() bool {
	return r.cancelled.Load()
}

func (r *Result) resolve() {
	r.doneOnce.Do(func() { close(r.done) })
}

// Start begins an animation toward target and returns its handle.
// A disabled or unset axis resolves to the current offset and does not
// move. A non-positive duration sets the target directly and returns an
// already-resolved result.
func Start(host Host, target Target, opts Options) *Result {
	if opts.Easing == nil {
		opts.Easing = easing.InOutCubic
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}

	startX, startY := host.Offset()

	endX, endY := startX, startY
	if opts.X && target.X != nil {
		endX = *target.X
	}
	if opts.Y && target.Y != nil {
		endY = *target.Y
	}

	res := newResult()

	if opts.Duration <= 0 {
		host.SetOffset(endX, endY)
		res.resolve()
		return res
	}

	distX := endX - startX
	distY := endY - startY

	go run(host, res, opts, startX, startY, distX, distY, endX, endY)
	return res
}

// run is the frame loop. One iteration is in flight at a time.
func run(host Host, res *Result, opts Options, startX, startY, distX, distY, endX, endY float64) {
	ticker := time.NewTicker(opts.FrameInterval)
	defer ticker.Stop()

	began := time.Now()
	for {
		select {
		case <-res.cancelCh:
			return
		case <-ticker.C:
			if res.cancelled.Load() {
				return
			}
			progress := easing.Clamp(float64(time.Since(began)) / float64(opts.Duration))
			if progress >= 1 {
				host.SetOffset(endX, endY)
				res.resolve()
				return
			}
			eased := opts.Easing(progress)
			host.SetOffset(startX+distX*eased, startY+distY*eased)
		}
	}
}
