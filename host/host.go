// Package host defines the environment capabilities a scroll controller
// consumes. The controller never measures or listens to anything on its
// own; every primitive (viewport size, content size, offset access, raw
// change notifications, visibility transitions) is injected through the
// interfaces here. This keeps the core portable across host environments
// and trivially fakeable in tests.
package host

// Element is a scrollable UI element the controller can bind to.
//
// Offsets and sizes are in content coordinates. SetOffset may clamp to
// the scrollable range; implementations deliver a scroll notification
// for every effective offset change, including ones caused by SetOffset.
type Element interface {
	// ViewportSize returns the visible container size.
	ViewportSize() (width, height float64)

	// ContentSize returns the full scrollable content size.
	ContentSize() (width, height float64)

	// Offset returns the current scroll offset.
	Offset() (left, top float64)

	// SetOffset moves the scroll offset.
	SetOffset(left, top float64)

	// SetScrollEnabled toggles host-level scroll suppression.
	SetScrollEnabled(enabled bool)

	// ContentOffset returns this element's own position within the
	// content of its scroll container. Used to resolve scroll-to-element
	// targets.
	ContentOffset() (left, top float64)

	// OnScroll registers a raw position-change callback and returns a
	// detach function. Callbacks are delivered in arrival order.
	OnScroll(fn func()) (cancel func())

	// OnResize registers a viewport/content size-change callback and
	// returns a detach function.
	OnResize(fn func()) (cancel func())
}

// Resolver maps a selector string to zero or one element.
type Resolver interface {
	Resolve(selector string) (Element, bool)
}

// Visibility delivers foreground/background transitions.
type Visibility interface {
	// OnVisibility registers a callback invoked with true when the
	// environment enters the foreground and false when it leaves it.
	OnVisibility(fn func(visible bool)) (cancel func())
}

// Env bundles the injected capabilities. Visibility is optional; a nil
// value means the environment is always considered visible.
type Env struct {
	Resolver   Resolver
	Visibility Visibility
}
