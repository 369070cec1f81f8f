package scrollkit

import "sync"

// Observer receives field-by-field synchronization of the controller's
// observable state. The controller fans writes out through this
// interface and makes no assumption about how the observer stores or
// reacts to them. Registration performs an immediate full sync; after
// that, each setter fires only when its field changes.
type Observer interface {
	SetContainerWidth(v float64)
	SetContainerHeight(v float64)
	SetScrollWidth(v float64)
	SetScrollHeight(v float64)
	SetScrollLeft(v float64)
	SetScrollTop(v float64)
	SetScrollRight(v float64)
	SetScrollBottom(v float64)
	SetAxis(v Axis)
	SetLastDirection(v Direction)
	SetLastYDirection(v Direction)
	SetLastXDirection(v Direction)
	SetScrolling(v bool)
	SetScrollEnabled(v bool)
	SetState(v State)
}

// observerSet is the controller's observer registry. Membership is a
// set: re-adding a registered observer is a no-op.
type observerSet struct {
	mu   sync.Mutex
	list []Observer
}

func newObserverSet() *observerSet {
	return &observerSet{}
}

// add registers o and returns a removal closure. Duplicate adds return
// a closure detaching the original registration.
func (s *observerSet) add(o Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.list {
		if existing == o {
			return func() { s.remove(o) }
		}
	}
	s.list = append(s.list, o)
	return func() { s.remove(o) }
}

// remove detaches o. Absent observers are no-ops.
func (s *observerSet) remove(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.list {
		if existing == o {
			s.list = append(s.list[:i:i], s.list[i+1:]...)
			return
		}
	}
}

// clear detaches every observer.
func (s *observerSet) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = nil
}

// each invokes fn on a snapshot of the registered observers.
func (s *observerSet) each(fn func(Observer)) {
	s.mu.Lock()
	snapshot := make([]Observer, len(s.list))
	copy(snapshot, s.list)
	s.mu.Unlock()

	for _, o := range snapshot {
		fn(o)
	}
}

// syncMeasurements pushes the measurement snapshot fields.
func (s *observerSet) syncMeasurements(m Measurements) {
	s.each(func(o Observer) {
		o.SetContainerWidth(m.ContainerWidth)
		o.SetContainerHeight(m.ContainerHeight)
		o.SetScrollWidth(m.ScrollWidth)
		o.SetScrollHeight(m.ScrollHeight)
		o.SetScrollLeft(m.ScrollLeft)
		o.SetScrollTop(m.ScrollTop)
		o.SetScrollRight(m.ScrollRight)
		o.SetScrollBottom(m.ScrollBottom)
	})
}

func (s *observerSet) syncAxis(v Axis) {
	s.each(func(o Observer) { o.SetAxis(v) })
}

func (s *observerSet) syncLastDirection(v Direction) {
	s.each(func(o Observer) { o.SetLastDirection(v) })
}

func (s *observerSet) syncLastYDirection(v Direction) {
	s.each(func(o Observer) { o.SetLastYDirection(v) })
}

func (s *observerSet) syncLastXDirection(v Direction) {
	s.each(func(o Observer) { o.SetLastXDirection(v) })
}

func (s *observerSet) syncScrolling(v bool) {
	s.each(func(o Observer) { o.SetScrolling(v) })
}

func (s *observerSet) syncScrollEnabled(v bool) {
	s.each(func(o Observer) { o.SetScrollEnabled(v) })
}

func (s *observerSet) syncState(v State) {
	s.each(func(o Observer) { o.SetState(v) })
}
