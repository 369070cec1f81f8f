package scrollkit

import "github.com/google/uuid"

// StopperToken is an opaque handle representing one caller's request to
// suspend scrolling. Scrolling resumes only when every token has been
// removed.
type StopperToken string

// NewStopperToken returns a fresh, unique stopper token.
func NewStopperToken() StopperToken {
	return StopperToken(uuid.NewString())
}

// PushScrollStopper adds tok to the stopper set. The first token
// suppresses host-level scrolling and notifies observers of the
// scrollEnabled field. Re-adding a present token is a no-op.
func (c *Controller) PushScrollStopper(tok StopperToken) error {
	c.mu.Lock()
	if c.state == StateDestroyed {
		c.mu.Unlock()
		return ErrAlreadyDestroyed
	}
	if _, ok := c.stoppers[tok]; ok {
		c.mu.Unlock()
		return nil
	}
	wasEmpty := len(c.stoppers) == 0
	c.stoppers[tok] = struct{}{}
	el := c.element
	c.mu.Unlock()

	if wasEmpty {
		if el != nil {
			el.SetScrollEnabled(false)
		}
		c.observers.syncScrollEnabled(false)
	}
	return nil
}

// RemoveScrollStopper removes tok from the stopper set. Removing the
// last token restores host-level scrolling. Removing an absent token is
// a no-op.
func (c *Controller) RemoveScrollStopper(tok StopperToken) error {
	c.mu.Lock()
	if c.state == StateDestroyed {
		c.mu.Unlock()
		return ErrAlreadyDestroyed
	}
	if _, ok := c.stoppers[tok]; !ok {
		c.mu.Unlock()
		return nil
	}
	delete(c.stoppers, tok)
	nowEmpty := len(c.stoppers) == 0
	el := c.element
	c.mu.Unlock()

	if nowEmpty {
		if el != nil {
			el.SetScrollEnabled(true)
		}
		c.observers.syncScrollEnabled(true)
	}
	return nil
}

// ScrollEnabled reports whether the stopper set is empty.
func (c *Controller) ScrollEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.stoppers) == 0
}

// Observe registers o, performs an immediate full field sync, and
// returns a detach closure. Unobserve is also available directly.
func (c *Controller) Observe(o Observer) (func(), error) {
	c.mu.Lock()
	if c.state == StateDestroyed {
		c.mu.Unlock()
		return nil, ErrAlreadyDestroyed
	}
	m := c.meas
	state := c.state
	enabled := len(c.stoppers) == 0
	c.mu.Unlock()

	off := c.observers.add(o)

	// Full sync of the observable field set.
	o.SetContainerWidth(m.ContainerWidth)
	o.SetContainerHeight(m.ContainerHeight)
	o.SetScrollWidth(m.ScrollWidth)
	o.SetScrollHeight(m.ScrollHeight)
	o.SetScrollLeft(m.ScrollLeft)
	o.SetScrollTop(m.ScrollTop)
	o.SetScrollRight(m.ScrollRight)
	o.SetScrollBottom(m.ScrollBottom)

	dir, yDir, xDir := c.tracker.Directions()
	o.SetAxis(c.tracker.Axis())
	o.SetLastDirection(dir)
	o.SetLastYDirection(yDir)
	o.SetLastXDirection(xDir)
	o.SetScrolling(c.tracker.Scrolling())
	o.SetScrollEnabled(enabled)
	o.SetState(state)

	return off, nil
}

// Unobserve detaches o. Absent observers are no-ops.
func (c *Controller) Unobserve(o Observer) {
	c.observers.remove(o)
}
