package track

// Axis identifies a scroll axis.
type Axis uint8

// Scroll axes.
const (
	AxisY Axis = iota
	AxisX
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Direction identifies where a scroll movement is heading.
// Vertical movement uses Top/Bottom, horizontal uses Left/Right.
type Direction uint8

// Scroll directions. DirNone is the state before any movement is observed.
const (
	DirNone Direction = iota
	DirTop
	DirBottom
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Offset is a scroll position in content coordinates.
type Offset struct {
	Left float64
	Top  float64
}

// Tick is one classified position-change notification.
type Tick struct {
	// Offset is the position at the time of the notification.
	Offset Offset

	// Axis is the dominant axis of this tick.
	Axis Axis

	// Direction is the direction of the dominant axis.
	Direction Direction

	// YDirection and XDirection are the last known per-axis directions.
	YDirection Direction
	XDirection Direction

	// TickedX and TickedY are the deltas since the previous notification.
	TickedX float64
	TickedY float64

	// TotalX and TotalY are the deltas since the episode opened.
	TotalX float64
	TotalY float64
}

// Sink receives classified scroll events from a Tracker.
// Callbacks are invoked synchronously, one notification at a time, and
// never while the Tracker holds its internal lock.
type Sink interface {
	ScrollStart(Tick)
	Scroll(Tick)
	ScrollEnd(Tick)
	AxisChanged(old, cur Axis)
	DirectionChanged(old, cur Direction)
	YDirectionChanged(old, cur Direction)
	XDirectionChanged(old, cur Direction)
}
