package scrollkit

import "encoding/json"

// Snapshot is the flat, serializable record of the controller's
// observable field set.
type Snapshot struct {
	State           string  `json:"state"`
	ContainerWidth  float64 `json:"containerWidth"`
	ContainerHeight float64 `json:"containerHeight"`
	ScrollWidth     float64 `json:"scrollWidth"`
	ScrollHeight    float64 `json:"scrollHeight"`
	ScrollLeft      float64 `json:"scrollLeft"`
	ScrollTop       float64 `json:"scrollTop"`
	ScrollRight     float64 `json:"scrollRight"`
	ScrollBottom    float64 `json:"scrollBottom"`
	Axis            string  `json:"axis"`
	LastDirection   string  `json:"lastDirection"`
	LastYDirection  string  `json:"lastYDirection"`
	LastXDirection  string  `json:"lastXDirection"`
	Scrolling       bool    `json:"scrolling"`
	ScrollEnabled   bool    `json:"scrollEnabled"`
}

// Snapshot returns the current observable state as a flat record.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	m := c.meas
	state := c.state
	enabled := len(c.stoppers) == 0
	c.mu.Unlock()

	dir, yDir, xDir := c.tracker.Directions()

	return Snapshot{
		State:           state.String(),
		ContainerWidth:  m.ContainerWidth,
		ContainerHeight: m.ContainerHeight,
		ScrollWidth:     m.ScrollWidth,
		ScrollHeight:    m.ScrollHeight,
		ScrollLeft:      m.ScrollLeft,
		ScrollTop:       m.ScrollTop,
		ScrollRight:     m.ScrollRight,
		ScrollBottom:    m.ScrollBottom,
		Axis:            c.tracker.Axis().String(),
		LastDirection:   dir.String(),
		LastYDirection:  yDir.String(),
		LastXDirection:  xDir.String(),
		Scrolling:       c.tracker.Scrolling(),
		ScrollEnabled:   enabled,
	}
}

// String returns the snapshot as compact JSON.
func (s Snapshot) String() string {
	data, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// VerticalProgress returns how far through the vertical scroll range
// the offset is, in [0, 1]. Zero when there is no vertical range.
func (s Snapshot) VerticalProgress() float64 {
	span := s.ScrollHeight - s.ContainerHeight
	if span <= 0 {
		return 0
	}
	return s.ScrollTop / span
}

// HorizontalProgress returns how far through the horizontal scroll
// range the offset is, in [0, 1]. Zero when there is no horizontal
// range.
func (s Snapshot) HorizontalProgress() float64 {
	span := s.ScrollWidth - s.ContainerWidth
	if span <= 0 {
		return 0
	}
	return s.ScrollLeft / span
}
