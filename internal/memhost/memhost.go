// Package memhost provides an in-memory host environment for tests and
// examples. Elements clamp offsets the way a real viewport does and
// deliver scroll/resize notifications synchronously, so a test observes
// the full notification loop without a UI toolkit.
package memhost

import (
	"sync"

	"github.com/dshills/scrollkit/host"
)

// Element is an in-memory scrollable element.
type Element struct {
	mu sync.Mutex

	viewportW, viewportH float64
	contentW, contentH   float64
	left, top            float64
	posLeft, posTop      float64
	scrollEnabled        bool

	scrollSubs map[int]func()
	resizeSubs map[int]func()
	nextSub    int
}

// NewElement creates an element with the given viewport and content size.
func NewElement(viewportW, viewportH, contentW, contentH float64) *Element {
	return &Element{
		viewportW:     viewportW,
		viewportH:     viewportH,
		contentW:      contentW,
		contentH:      contentH,
		scrollEnabled: true,
		scrollSubs:    make(map[int]func()),
		resizeSubs:    make(map[int]func()),
	}
}

// ViewportSize returns the container size.
func (e *Element) ViewportSize() (float64, float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewportW, e.viewportH
}

// ContentSize returns the scrollable content size.
func (e *Element) ContentSize() (float64, float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.contentW, e.contentH
}

// Offset returns the current scroll offset.
func (e *Element) Offset() (float64, float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.left, e.top
}

// SetOffset moves the offset, clamped to the scrollable range, and
// notifies scroll subscribers if the effective offset changed.
// A scroll-disabled element ignores the write.
func (e *Element) SetOffset(left, top float64) {
	e.mu.Lock()
	if !e.scrollEnabled {
		e.mu.Unlock()
		return
	}
	left = clamp(left, 0, max(0, e.contentW-e.viewportW))
	top = clamp(top, 0, max(0, e.contentH-e.viewportH))
	if left == e.left && top == e.top {
		e.mu.Unlock()
		return
	}
	e.left, e.top = left, top
	subs := e.scrollSubsLocked()
	e.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// SetScrollEnabled toggles scroll suppression.
func (e *Element) SetScrollEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scrollEnabled = enabled
}

// ScrollEnabled reports whether the element accepts offset writes.
func (e *Element) ScrollEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scrollEnabled
}

// ContentOffset returns this element's position within its scroll parent.
func (e *Element) ContentOffset() (float64, float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.posLeft, e.posTop
}

// SetContentOffset places the element within its scroll parent.
func (e *Element) SetContentOffset(left, top float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.posLeft, e.posTop = left, top
}

// OnScroll registers a scroll notification callback.
func (e *Element) OnScroll(fn func()) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.nextSub
	e.nextSub++
	e.scrollSubs[id] = fn
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.scrollSubs, id)
	}
}

// OnResize registers a size-change notification callback.
func (e *Element) OnResize(fn func()) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.nextSub
	e.nextSub++
	e.resizeSubs[id] = fn
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.resizeSubs, id)
	}
}

// Resize changes the viewport size and notifies resize subscribers.
func (e *Element) Resize(viewportW, viewportH float64) {
	e.mu.Lock()
	e.viewportW, e.viewportH = viewportW, viewportH
	subs := e.resizeSubsLocked()
	e.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// SetContentSize changes the content size and notifies resize
// subscribers.
func (e *Element) SetContentSize(contentW, contentH float64) {
	e.mu.Lock()
	e.contentW, e.contentH = contentW, contentH
	subs := e.resizeSubsLocked()
	e.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// SetContentSizeQuiet changes the content size without a notification.
// Simulates content growth the host cannot report, which only the size
// poller or the next episode's re-measure can catch.
func (e *Element) SetContentSizeQuiet(contentW, contentH float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.contentW, e.contentH = contentW, contentH
}

func (e *Element) scrollSubsLocked() []func() {
	out := make([]func(), 0, len(e.scrollSubs))
	for _, fn := range e.scrollSubs {
		out = append(out, fn)
	}
	return out
}

func (e *Element) resizeSubsLocked() []func() {
	out := make([]func(), 0, len(e.resizeSubs))
	for _, fn := range e.resizeSubs {
		out = append(out, fn)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Env is an in-memory host environment with named elements and a
// controllable visibility signal.
type Env struct {
	mu       sync.Mutex
	elements map[string]*Element
	visible  bool
	visSubs  map[int]func(bool)
	nextSub  int
}

// NewEnv creates an empty, visible environment.
func NewEnv() *Env {
	return &Env{
		elements: make(map[string]*Element),
		visible:  true,
		visSubs:  make(map[int]func(bool)),
	}
}

// Register adds an element under a selector.
func (env *Env) Register(selector string, el *Element) {
	env.mu.Lock()
	defer env.mu.Unlock()
	env.elements[selector] = el
}

// Resolve maps a selector to a registered element.
func (env *Env) Resolve(selector string) (host.Element, bool) {
	env.mu.Lock()
	defer env.mu.Unlock()
	el, ok := env.elements[selector]
	if !ok {
		return nil, false
	}
	return el, true
}

// OnVisibility registers a foreground/background callback.
func (env *Env) OnVisibility(fn func(visible bool)) func() {
	env.mu.Lock()
	defer env.mu.Unlock()
	id := env.nextSub
	env.nextSub++
	env.visSubs[id] = fn
	return func() {
		env.mu.Lock()
		defer env.mu.Unlock()
		delete(env.visSubs, id)
	}
}

// SetVisible transitions the environment visibility and notifies
// subscribers on change.
func (env *Env) SetVisible(visible bool) {
	env.mu.Lock()
	if env.visible == visible {
		env.mu.Unlock()
		return
	}
	env.visible = visible
	subs := make([]func(bool), 0, len(env.visSubs))
	for _, fn := range env.visSubs {
		subs = append(subs, fn)
	}
	env.mu.Unlock()

	for _, fn := range subs {
		fn(visible)
	}
}

// HostEnv returns the host.Env capability bundle for this environment.
func (env *Env) HostEnv() host.Env {
	return host.Env{Resolver: env, Visibility: env}
}
