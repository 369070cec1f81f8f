package scrollkit

import "github.com/dshills/scrollkit/host"

// Measurements is the cached viewport/content dimension and offset
// snapshot. ScrollRight and ScrollBottom are derived as
// content − container − offset and re-derived on every refresh;
// they are never independently mutated.
type Measurements struct {
	ContainerWidth  float64
	ContainerHeight float64
	ScrollWidth     float64
	ScrollHeight    float64
	ScrollLeft      float64
	ScrollTop       float64
	ScrollRight     float64
	ScrollBottom    float64
}

// measure reads a full snapshot from el.
func measure(el host.Element) Measurements {
	var m Measurements
	m.ContainerWidth, m.ContainerHeight = el.ViewportSize()
	m.ScrollWidth, m.ScrollHeight = el.ContentSize()
	m.ScrollLeft, m.ScrollTop = el.Offset()
	m.derive()
	return m
}

// derive recomputes the dependent fields.
func (m *Measurements) derive() {
	m.ScrollRight = m.ScrollWidth - m.ContainerWidth - m.ScrollLeft
	m.ScrollBottom = m.ScrollHeight - m.ContainerHeight - m.ScrollTop
}

// setOffsets updates the offset fields and re-derives.
func (m *Measurements) setOffsets(left, top float64) {
	m.ScrollLeft, m.ScrollTop = left, top
	m.derive()
}

// setContentSize updates the content dimensions and re-derives.
func (m *Measurements) setContentSize(width, height float64) {
	m.ScrollWidth, m.ScrollHeight = width, height
	m.derive()
}
