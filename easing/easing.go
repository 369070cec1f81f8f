// Package easing provides interpolation curves for scroll animation.
//
// An easing function maps linear animation progress in [0, 1] to an eased
// progress ratio. Functions are pure and safe for concurrent use. The
// package also maintains a name registry so easing curves can be selected
// from configuration files.
package easing

import "math"

// Func maps linear progress t in [0, 1] to eased progress.
// Implementations must return 0 for t = 0 and 1 for t = 1.
type Func func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// InQuad accelerates from zero velocity.
func InQuad(t float64) float64 { return t * t }

// OutQuad decelerates to zero velocity.
func OutQuad(t float64) float64 { return t * (2 - t) }

// InOutQuad accelerates until halfway, then decelerates.
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// InCubic accelerates from zero velocity, steeper than InQuad.
func InCubic(t float64) float64 { return t * t * t }

// OutCubic decelerates to zero velocity, steeper than OutQuad.
func OutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

// InOutCubic accelerates until halfway, then decelerates.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// OutExpo decelerates along an exponential curve.
func OutExpo(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// registry maps configuration names to easing functions.
var registry = map[string]Func{
	"linear":       Linear,
	"in-quad":      InQuad,
	"out-quad":     OutQuad,
	"in-out-quad":  InOutQuad,
	"in-cubic":     InCubic,
	"out-cubic":    OutCubic,
	"in-out-cubic": InOutCubic,
	"out-expo":     OutExpo,
}

// Lookup returns the easing function registered under name.
// The second return value is false if the name is unknown.
func Lookup(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Names returns the registered easing names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Clamp constrains progress to [0, 1] before easing.
// Animation loops use it to guard against timer overshoot.
func Clamp(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
