package scrollkit

// EventType names one event in the controller's closed event set.
type EventType uint8

// Controller events.
const (
	EventReady EventType = iota
	EventChangeState
	EventScrollStart
	EventScroll
	EventScrollEnd
	EventResize
	EventChangeAxis
	EventChangeLastDirection
	EventChangeLastYDirection
	EventChangeLastXDirection
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventReady:
		return "ready"
	case EventChangeState:
		return "changeState"
	case EventScrollStart:
		return "scrollStart"
	case EventScroll:
		return "scroll"
	case EventScrollEnd:
		return "scrollEnd"
	case EventResize:
		return "resize"
	case EventChangeAxis:
		return "changeAxis"
	case EventChangeLastDirection:
		return "changeLastDirection"
	case EventChangeLastYDirection:
		return "changeLastYDirection"
	case EventChangeLastXDirection:
		return "changeLastXDirection"
	}
	return "unknown"
}

// ScrollInfo is the payload of the scroll-family events.
type ScrollInfo struct {
	// Offsets at the time of the tick. Right and Bottom are the
	// derived remaining scroll distances.
	Top    float64
	Left   float64
	Bottom float64
	Right  float64

	// Axis is the dominant axis of the tick; Direction is the
	// composite direction (the direction of the dominant axis).
	Axis      Axis
	Direction Direction

	// Per-axis last known directions.
	YDirection Direction
	XDirection Direction

	// Deltas since the previous tick.
	TickedX float64
	TickedY float64

	// Deltas since the episode opened.
	TotalX float64
	TotalY float64
}

// StateChange is the payload of changeState.
type StateChange struct {
	Old State
	New State
}

// AxisChange is the payload of changeAxis.
type AxisChange struct {
	Old Axis
	New Axis
}

// DirectionChange is the payload of the direction-change events.
type DirectionChange struct {
	Old Direction
	New Direction
}

// SizeInfo is the payload of resize.
type SizeInfo struct {
	ContainerWidth  float64
	ContainerHeight float64
	ScrollWidth     float64
	ScrollHeight    float64
}

// Event is delivered to subscribed handlers. Only the payload field
// matching Type is set.
type Event struct {
	Type      EventType
	Scroll    *ScrollInfo
	State     *StateChange
	Axis      *AxisChange
	Direction *DirectionChange
	Size      *SizeInfo
}

// Handler receives controller events.
type Handler func(Event)
