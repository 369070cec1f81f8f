package scrollkit

import (
	"github.com/dshills/scrollkit/host"
	"github.com/dshills/scrollkit/internal/animate"
)

// Result is the handle to an in-flight animated move. See
// internal/animate for semantics: Done resolves on completion or
// cancellation, and cancellation is a successful outcome.
type Result = animate.Result

// MoveTo animates to absolute coordinates. A nil axis in pos leaves
// that axis unchanged.
func (c *Controller) MoveTo(pos Position, opts ...MoveOption) (*Result, error) {
	mc := c.mergeOpts(opts)
	container, err := c.container(mc)
	if err != nil {
		return nil, err
	}
	x, y := mc.axes()
	return c.launch(container, animate.Target{X: pos.X, Y: pos.Y}, mc, x, y)
}

// MoveBy animates by a relative delta from the current offset.
func (c *Controller) MoveBy(dx, dy float64, opts ...MoveOption) (*Result, error) {
	mc := c.mergeOpts(opts)
	container, err := c.container(mc)
	if err != nil {
		return nil, err
	}
	left, top := container.Offset()
	target := PosXY(left+dx, top+dy)
	x, y := mc.axes()
	return c.launch(container, animate.Target{X: target.X, Y: target.Y}, mc, x, y)
}

// MoveToElement animates so the target element's position within the
// container content reaches the viewport origin. Axis flags default
// from the configured base axis when not overridden with WithAxes.
func (c *Controller) MoveToElement(target any, opts ...MoveOption) (*Result, error) {
	mc := c.mergeOpts(opts)
	container, err := c.container(mc)
	if err != nil {
		return nil, err
	}

	el, err := c.resolveContainer(target)
	if err != nil {
		return nil, err
	}
	left, top := el.ContentOffset()

	c.mu.Lock()
	base := c.opts.BaseAxis
	c.mu.Unlock()

	x, y := mc.axesForBase(base)
	return c.launch(container, animate.Target{X: &left, Y: &top}, mc, x, y)
}

// MoveToSide animates to a viewport edge or corner.
func (c *Controller) MoveToSide(side Side, opts ...MoveOption) (*Result, error) {
	mc := c.mergeOpts(opts)
	container, err := c.container(mc)
	if err != nil {
		return nil, err
	}

	target, x, y := sideTarget(side, container)
	return c.launch(container, target, mc, x, y)
}

// MoveToTop animates the vertical axis to offset zero.
func (c *Controller) MoveToTop(opts ...MoveOption) (*Result, error) {
	return c.MoveToSide(SideTop, opts...)
}

// MoveToBottom animates the vertical axis to its maximum offset.
func (c *Controller) MoveToBottom(opts ...MoveOption) (*Result, error) {
	return c.MoveToSide(SideBottom, opts...)
}

// MoveToLeft animates the horizontal axis to offset zero.
func (c *Controller) MoveToLeft(opts ...MoveOption) (*Result, error) {
	return c.MoveToSide(SideLeft, opts...)
}

// MoveToRight animates the horizontal axis to its maximum offset.
func (c *Controller) MoveToRight(opts ...MoveOption) (*Result, error) {
	return c.MoveToSide(SideRight, opts...)
}

// MoveToTopLeft animates both axes to their minimum offsets.
func (c *Controller) MoveToTopLeft(opts ...MoveOption) (*Result, error) {
	return c.MoveToSide(SideTopLeft, opts...)
}

// MoveToTopRight animates to the top edge and the right extreme.
func (c *Controller) MoveToTopRight(opts ...MoveOption) (*Result, error) {
	return c.MoveToSide(SideTopRight, opts...)
}

// MoveToBottomLeft animates to the bottom extreme and the left edge.
func (c *Controller) MoveToBottomLeft(opts ...MoveOption) (*Result, error) {
	return c.MoveToSide(SideBottomLeft, opts...)
}

// MoveToBottomRight animates both axes to their maximum offsets.
func (c *Controller) MoveToBottomRight(opts ...MoveOption) (*Result, error) {
	return c.MoveToSide(SideBottomRight, opts...)
}

// CancelScroll cancels the current animation, if any. The offset stays
// wherever the last frame left it.
func (c *Controller) CancelScroll() {
	c.mu.Lock()
	cur := c.current
	c.current = nil
	c.mu.Unlock()

	if cur != nil {
		cur.Cancel()
	}
}

// mergeOpts snapshots the instance defaults and applies per-call
// overrides.
func (c *Controller) mergeOpts(opts []MoveOption) moveConfig {
	c.mu.Lock()
	defaults := c.opts
	c.mu.Unlock()
	return defaults.merge(opts)
}

// container resolves the effective animation container: the per-call
// override when given, the bound element otherwise.
func (c *Controller) container(mc moveConfig) (host.Element, error) {
	c.mu.Lock()
	if c.state == StateDestroyed {
		c.mu.Unlock()
		return nil, ErrAlreadyDestroyed
	}
	bound := c.element
	c.mu.Unlock()

	if mc.container != nil {
		return c.resolveContainer(mc.container)
	}
	if bound == nil {
		return nil, ErrMissingContainer
	}
	return bound, nil
}

// resolveContainer maps a per-call container or element target.
func (c *Controller) resolveContainer(target any) (host.Element, error) {
	switch v := target.(type) {
	case host.Element:
		if v == nil {
			return nil, ErrMissingContainer
		}
		return v, nil
	case string:
		if c.env.Resolver == nil {
			return nil, ErrMissingContainer
		}
		el, ok := c.env.Resolver.Resolve(v)
		if !ok || el == nil {
			return nil, ErrMissingContainer
		}
		return el, nil
	default:
		return nil, ErrMissingContainer
	}
}

// launch replaces the current animation slot. The previous occupant is
// cancelled, and resolves, before the new animation begins altering the
// offset.
func (c *Controller) launch(container host.Element, target animate.Target, mc moveConfig, x, y bool) (*Result, error) {
	c.mu.Lock()
	prev := c.current
	c.current = nil
	c.mu.Unlock()

	if prev != nil {
		prev.Cancel()
	}

	res := animate.Start(container, target, animate.Options{
		Duration:      mc.duration,
		Easing:        mc.easingFn,
		FrameInterval: mc.frameInterval,
		X:             x,
		Y:             y,
	})

	c.mu.Lock()
	if c.state == StateDestroyed {
		c.mu.Unlock()
		res.Cancel()
		return nil, ErrAlreadyDestroyed
	}
	c.current = res
	c.mu.Unlock()
	return res, nil
}

// sideTarget computes the absolute offsets for a side or corner and
// the axes the move touches.
func sideTarget(side Side, el host.Element) (animate.Target, bool, bool) {
	viewW, viewH := el.ViewportSize()
	contentW, contentH := el.ContentSize()

	maxX := contentW - viewW
	if maxX < 0 {
		maxX = 0
	}
	maxY := contentH - viewH
	if maxY < 0 {
		maxY = 0
	}
	zero := 0.0

	switch side {
	case SideTop:
		return animate.Target{Y: &zero}, false, true
	case SideBottom:
		return animate.Target{Y: &maxY}, false, true
	case SideLeft:
		return animate.Target{X: &zero}, true, false
	case SideRight:
		return animate.Target{X: &maxX}, true, false
	case SideTopLeft:
		return animate.Target{X: &zero, Y: &zero}, true, true
	case SideTopRight:
		return animate.Target{X: &maxX, Y: &zero}, true, true
	case SideBottomLeft:
		return animate.Target{X: &zero, Y: &maxY}, true, true
	case SideBottomRight:
		return animate.Target{X: &maxX, Y: &maxY}, true, true
	}
	return animate.Target{}, false, false
}
