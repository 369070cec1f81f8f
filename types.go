package scrollkit

import "github.com/dshills/scrollkit/internal/track"

// Axis identifies a scroll axis.
type Axis = track.Axis

// Scroll axes.
const (
	AxisY = track.AxisY
	AxisX = track.AxisX
)

// Direction identifies where a scroll movement is heading.
type Direction = track.Direction

// Scroll directions.
const (
	DirectionNone   = track.DirNone
	DirectionTop    = track.DirTop
	DirectionBottom = track.DirBottom
	DirectionLeft   = track.DirLeft
	DirectionRight  = track.DirRight
)

// Position holds absolute target coordinates. A nil axis leaves that
// axis unchanged.
type Position struct {
	X *float64
	Y *float64
}

// PosXY builds a position targeting both axes.
func PosXY(x, y float64) Position {
	return Position{X: &x, Y: &y}
}

// PosX builds a position targeting only the horizontal axis.
func PosX(x float64) Position {
	return Position{X: &x}
}

// PosY builds a position targeting only the vertical axis.
func PosY(y float64) Position {
	return Position{Y: &y}
}

// State is the controller lifecycle state.
type State uint8

// Lifecycle states. Destroyed is terminal.
const (
	StatePending State = iota
	StateReady
	StateRunning
	StateDestroyed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// Side names a viewport edge or corner for MoveToSide.
type Side uint8

// Sides and corners.
const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
	SideTopLeft
	SideTopRight
	SideBottomLeft
	SideBottomRight
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTopLeft:
		return "top-left"
	case SideTopRight:
		return "top-right"
	case SideBottomLeft:
		return "bottom-left"
	case SideBottomRight:
		return "bottom-right"
	}
	return "unknown"
}
