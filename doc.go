// Package scrollkit provides smooth, interruptible scroll animation and
// scroll-state observation for a single viewport.
//
// A Controller binds to a host element through injected capabilities
// (see the host package), turns the host's raw position-change
// notifications into classified scroll episodes with axis and direction
// semantics, and animates offset transitions with configurable duration
// and easing.
//
// # Lifecycle
//
// A controller moves through four states:
//
//	Pending --Bind--> Ready --Start--> Running --Stop--> Ready
//	Ready/Running --Destroy--> Destroyed (terminal)
//
// Bind resolves the target element, takes the initial measurements and
// auto-starts the controller. Destroy releases every resource and is
// idempotent; any other call on a destroyed controller fails with
// ErrAlreadyDestroyed.
//
// # Events
//
// Subscribers receive a closed set of named events: ready, changeState,
// scrollStart, scroll, scrollEnd, resize, changeAxis,
// changeLastDirection, changeLastYDirection and changeLastXDirection.
// Scroll-family payloads carry the measurement snapshot, the dominant
// axis, per-axis directions, and per-tick plus per-episode deltas.
//
//	c := scrollkit.New(env, scrollkit.DefaultOptions())
//	c.On(scrollkit.EventScroll, func(ev scrollkit.Event) {
//	    fmt.Printf("axis=%s dir=%s top=%.0f\n",
//	        ev.Scroll.Axis, ev.Scroll.Direction, ev.Scroll.Top)
//	})
//	if err := c.Bind("#viewport"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Animated moves
//
// MoveTo, MoveBy, MoveToElement and the side/corner helpers start an
// animation and return a Result handle. At most one animation is active
// per controller; a new request cancels and replaces the previous one.
// Cancellation is not an error: a cancelled Result resolves normally
// and the offset stays wherever the last frame left it.
//
//	res, err := c.MoveToBottom()
//	if err != nil {
//	    return err
//	}
//	<-res.Done()
//
// # Scroll stoppers
//
// Any collaborator may suspend host scrolling by pushing an opaque
// stopper token. Scrolling re-enables only when every holder has
// removed its token.
package scrollkit
