package scrollkit

import "errors"

// Sentinel errors for the controller.
var (
	// ErrInvalidTarget is returned by Bind when the target selector or
	// element reference cannot be resolved.
	ErrInvalidTarget = errors.New("scroll target cannot be resolved")

	// ErrAlreadyDestroyed is returned by lifecycle and scroll-request
	// calls on a destroyed controller.
	ErrAlreadyDestroyed = errors.New("controller is destroyed")

	// ErrMissingContainer is returned when an animation or side-target
	// request references a container that fails to resolve. The request
	// never begins animating.
	ErrMissingContainer = errors.New("scroll container cannot be resolved")

	// ErrUnknownEasing is returned when configuration names an easing
	// curve that is not registered.
	ErrUnknownEasing = errors.New("unknown easing name")
)
