package scrollkit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dshills/scrollkit/internal/memhost"
)

// eventLog records emitted events for later inspection.
type eventLog struct {
	mu     sync.Mutex
	events []Event
}

func (l *eventLog) add(e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) ofType(t EventType) []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Event
	for _, e := range l.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (l *eventLog) count(t EventType) int {
	return len(l.ofType(t))
}

func (l *eventLog) waitFor(t *testing.T, typ EventType, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if l.count(typ) >= want {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("%s count = %d, want at least %d", typ, l.count(typ), want)
}

// subscribeAll attaches the log to every event type.
func (l *eventLog) subscribeAll(c *Controller) {
	for _, typ := range []EventType{
		EventReady, EventChangeState,
		EventScrollStart, EventScroll, EventScrollEnd,
		EventResize, EventChangeAxis,
		EventChangeLastDirection, EventChangeLastYDirection, EventChangeLastXDirection,
	} {
		c.On(typ, l.add)
	}
}

func newTestRig(t *testing.T) (*memhost.Env, *memhost.Element, *Controller, *eventLog) {
	t.Helper()
	env := memhost.NewEnv()
	el := memhost.NewElement(200, 200, 1000, 1000)
	env.Register("#main", el)

	c := New(env.HostEnv(), Options{IdleDebounce: 40 * time.Millisecond})
	t.Cleanup(c.Destroy)

	log := &eventLog{}
	log.subscribeAll(c)
	return env, el, c, log
}

func bound(t *testing.T) (*memhost.Env, *memhost.Element, *Controller, *eventLog) {
	t.Helper()
	env, el, c, log := newTestRig(t)
	if err := c.Bind("#main"); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	return env, el, c, log
}

func TestBindRejectsBadTargets(t *testing.T) {
	_, _, c, _ := newTestRig(t)

	if err := c.Bind("#missing"); err != ErrInvalidTarget {
		t.Errorf("unknown selector: err = %v, want ErrInvalidTarget", err)
	}
	if err := c.Bind(42); err != ErrInvalidTarget {
		t.Errorf("non-target value: err = %v, want ErrInvalidTarget", err)
	}
	if got := c.State(); got != StatePending {
		t.Errorf("state after failed bind = %v, want Pending", got)
	}
}

func TestBindTransitionsToRunning(t *testing.T) {
	_, _, c, log := newTestRig(t)

	if err := c.Bind("#main"); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if got := c.State(); got != StateRunning {
		t.Errorf("state = %v, want Running", got)
	}

	changes := log.ofType(EventChangeState)
	if len(changes) != 2 {
		t.Fatalf("changeState count = %d, want 2", len(changes))
	}
	if changes[0].State.Old != StatePending || changes[0].State.New != StateReady {
		t.Errorf("first transition = %v->%v, want Pending->Ready", changes[0].State.Old, changes[0].State.New)
	}
	if changes[1].State.Old != StateReady || changes[1].State.New != StateRunning {
		t.Errorf("second transition = %v->%v, want Ready->Running", changes[1].State.Old, changes[1].State.New)
	}
	if log.count(EventReady) != 1 {
		t.Errorf("ready count = %d, want 1", log.count(EventReady))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := c.WaitReady(ctx); err != nil {
		t.Errorf("WaitReady: %v", err)
	}
}

func TestBindDirectElement(t *testing.T) {
	env := memhost.NewEnv()
	el := memhost.NewElement(100, 100, 300, 300)
	c := New(env.HostEnv(), Options{})
	defer c.Destroy()

	if err := c.Bind(el); err != nil {
		t.Fatalf("Bind(element): %v", err)
	}
	m := c.Measurements()
	if m.ContainerWidth != 100 || m.ScrollHeight != 300 {
		t.Errorf("measurements = %+v, want container 100 and content 300", m)
	}
}

func TestBindTwiceIsNoOp(t *testing.T) {
	_, _, c, log := bound(t)

	if err := c.Bind("#main"); err != nil {
		t.Errorf("second Bind: %v, want nil", err)
	}
	if log.count(EventReady) != 1 {
		t.Errorf("ready fired %d times, want 1", log.count(EventReady))
	}
}

func TestInitialMeasurements(t *testing.T) {
	_, _, c, _ := bound(t)

	m := c.Measurements()
	if m.ContainerWidth != 200 || m.ContainerHeight != 200 {
		t.Errorf("container = %vx%v, want 200x200", m.ContainerWidth, m.ContainerHeight)
	}
	if m.ScrollWidth != 1000 || m.ScrollHeight != 1000 {
		t.Errorf("content = %vx%v, want 1000x1000", m.ScrollWidth, m.ScrollHeight)
	}
	if m.ScrollRight != 800 || m.ScrollBottom != 800 {
		t.Errorf("derived right/bottom = %v/%v, want 800/800", m.ScrollRight, m.ScrollBottom)
	}
}

func TestScrollBurstEmitsStartTicksEnd(t *testing.T) {
	_, el, c, log := bound(t)

	el.SetOffset(0, 100)
	el.SetOffset(0, 250)
	el.SetOffset(0, 400)

	if got := log.count(EventScrollStart); got != 1 {
		t.Fatalf("scrollStart count = %d, want 1", got)
	}
	if got := log.count(EventScroll); got != 2 {
		t.Fatalf("scroll count = %d, want 2", got)
	}
	if !c.Scrolling() {
		t.Error("episode must be open mid-burst")
	}

	log.waitFor(t, EventScrollEnd, 1)
	if c.Scrolling() {
		t.Error("episode must close after the idle interval")
	}

	end := log.ofType(EventScrollEnd)[0].Scroll
	if end.TotalY != 400 {
		t.Errorf("end TotalY = %v, want 400", end.TotalY)
	}
	if end.TickedY != 0 {
		t.Errorf("idle-driven end TickedY = %v, want 0", end.TickedY)
	}
	if end.Direction != DirectionBottom || end.YDirection != DirectionBottom {
		t.Errorf("end directions = %v/%v, want bottom/bottom", end.Direction, end.YDirection)
	}
}

func TestScrollStartPayload(t *testing.T) {
	_, el, _, log := bound(t)

	el.SetOffset(0, 120)

	start := log.ofType(EventScrollStart)[0].Scroll
	if start.TickedY != 120 || start.TotalY != 120 {
		t.Errorf("opening tick ticked/total = %v/%v, want 120/120", start.TickedY, start.TotalY)
	}
	if start.Axis != AxisY {
		t.Errorf("axis = %v, want y", start.Axis)
	}
	if start.Top != 120 || start.Bottom != 680 {
		t.Errorf("top/bottom = %v/%v, want 120/680", start.Top, start.Bottom)
	}
}

func TestReversalEndsEpisodeWithoutReopening(t *testing.T) {
	_, el, _, log := bound(t)

	el.SetOffset(0, 100)
	el.SetOffset(0, 200)
	// Reversal: the open episode ends, no replacement start yet.
	el.SetOffset(0, 150)

	if got := log.count(EventScrollEnd); got != 1 {
		t.Fatalf("scrollEnd count = %d, want 1", got)
	}
	if got := log.count(EventScrollStart); got != 1 {
		t.Fatalf("scrollStart count after reversal = %d, want still 1", got)
	}

	// The next movement opens the upward episode.
	el.SetOffset(0, 100)
	if got := log.count(EventScrollStart); got != 2 {
		t.Fatalf("scrollStart count = %d, want 2", got)
	}

	yChanges := log.ofType(EventChangeLastYDirection)
	if len(yChanges) != 2 {
		t.Fatalf("changeLastYDirection count = %d, want 2", len(yChanges))
	}
	last := yChanges[1].Direction
	if last.Old != DirectionBottom || last.New != DirectionTop {
		t.Errorf("reversal change = %v->%v, want bottom->top", last.Old, last.New)
	}
}

func TestAxisChangeEndsEpisode(t *testing.T) {
	_, el, _, log := bound(t)

	el.SetOffset(0, 100)
	el.SetOffset(0, 200)
	// Horizontal movement dominates: the vertical episode ends.
	el.SetOffset(300, 200)

	if got := log.count(EventScrollEnd); got != 1 {
		t.Fatalf("scrollEnd count = %d, want 1", got)
	}
	axisChanges := log.ofType(EventChangeAxis)
	if len(axisChanges) != 1 {
		t.Fatalf("changeAxis count = %d, want 1", len(axisChanges))
	}
	if axisChanges[0].Axis.Old != AxisY || axisChanges[0].Axis.New != AxisX {
		t.Errorf("axis change = %v->%v, want y->x", axisChanges[0].Axis.Old, axisChanges[0].Axis.New)
	}
}

func TestMeasurementIdentityHolds(t *testing.T) {
	_, el, c, _ := bound(t)

	for _, top := range []float64{0, 100, 400, 800} {
		el.SetOffset(0, top)
		m := c.Measurements()
		if m.ScrollTop+m.ContainerHeight+m.ScrollBottom != m.ScrollHeight {
			t.Errorf("top=%v: %v + %v + %v != %v", top,
				m.ScrollTop, m.ContainerHeight, m.ScrollBottom, m.ScrollHeight)
		}
	}
}

func TestNewEpisodeRefreshesContentSize(t *testing.T) {
	_, el, c, log := bound(t)

	el.SetContentSizeQuiet(1000, 2000)
	el.SetOffset(0, 100)

	log.waitFor(t, EventScrollStart, 1)
	m := c.Measurements()
	if m.ScrollHeight != 2000 {
		t.Errorf("ScrollHeight = %v, want 2000 after episode re-measure", m.ScrollHeight)
	}
	if m.ScrollBottom != 1700 {
		t.Errorf("ScrollBottom = %v, want 1700", m.ScrollBottom)
	}
}

func TestResizeEventCarriesNewSizes(t *testing.T) {
	_, el, c, log := bound(t)

	el.Resize(300, 150)

	log.waitFor(t, EventResize, 1)
	size := log.ofType(EventResize)[0].Size
	if size.ContainerWidth != 300 || size.ContainerHeight != 150 {
		t.Errorf("resize payload = %vx%v, want 300x150", size.ContainerWidth, size.ContainerHeight)
	}
	m := c.Measurements()
	if m.ScrollBottom != 850 {
		t.Errorf("ScrollBottom = %v, want 850 after viewport shrink", m.ScrollBottom)
	}
}

func TestStopDetachesListeners(t *testing.T) {
	_, el, c, log := bound(t)

	if err := c.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if got := c.State(); got != StateReady {
		t.Errorf("state = %v, want Ready", got)
	}

	el.SetOffset(0, 300)
	if got := log.count(EventScrollStart); got != 0 {
		t.Errorf("scrollStart fired %d times while stopped, want 0", got)
	}

	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	el.SetOffset(0, 500)
	if got := log.count(EventScrollStart); got != 1 {
		t.Errorf("scrollStart count after restart = %d, want 1", got)
	}
}

func TestStopWhileNotRunningIsNoOp(t *testing.T) {
	_, _, c, log := newTestRig(t)
	if err := c.Stop(); err != nil {
		t.Errorf("Stop while Pending: %v, want nil", err)
	}
	if got := log.count(EventChangeState); got != 0 {
		t.Errorf("changeState fired %d times, want 0", got)
	}
}

func TestStartWhilePendingIsNoOp(t *testing.T) {
	_, _, c, _ := newTestRig(t)
	if err := c.Start(); err != nil {
		t.Errorf("Start while Pending: %v, want nil", err)
	}
	if got := c.State(); got != StatePending {
		t.Errorf("state = %v, want Pending", got)
	}
}

func TestStoppersCompose(t *testing.T) {
	_, el, c, _ := bound(t)

	a, b := NewStopperToken(), NewStopperToken()

	if err := c.PushScrollStopper(a); err != nil {
		t.Fatal(err)
	}
	if el.ScrollEnabled() {
		t.Fatal("first stopper must disable host scrolling")
	}
	if c.ScrollEnabled() {
		t.Fatal("ScrollEnabled must report false")
	}

	if err := c.PushScrollStopper(b); err != nil {
		t.Fatal(err)
	}
	if err := c.PushScrollStopper(a); err != nil {
		t.Errorf("re-push of present token: %v, want nil", err)
	}

	if err := c.RemoveScrollStopper(a); err != nil {
		t.Fatal(err)
	}
	if el.ScrollEnabled() {
		t.Fatal("scrolling must stay disabled while a token remains")
	}

	if err := c.RemoveScrollStopper(b); err != nil {
		t.Fatal(err)
	}
	if !el.ScrollEnabled() {
		t.Fatal("removing the last token must restore host scrolling")
	}
	if err := c.RemoveScrollStopper(b); err != nil {
		t.Errorf("remove of absent token: %v, want nil", err)
	}
}

func TestDestroyRestoresScrollingAndSilences(t *testing.T) {
	_, el, c, log := bound(t)

	if err := c.PushScrollStopper(NewStopperToken()); err != nil {
		t.Fatal(err)
	}

	c.Destroy()

	if got := c.State(); got != StateDestroyed {
		t.Errorf("state = %v, want Destroyed", got)
	}
	if !el.ScrollEnabled() {
		t.Error("destroy must restore host scrolling")
	}

	before := log.count(EventScrollStart)
	el.SetOffset(0, 400)
	if got := log.count(EventScrollStart); got != before {
		t.Error("events emitted after destroy")
	}

	if err := c.Bind("#main"); err != ErrAlreadyDestroyed {
		t.Errorf("Bind after destroy: %v, want ErrAlreadyDestroyed", err)
	}
	if err := c.Start(); err != ErrAlreadyDestroyed {
		t.Errorf("Start after destroy: %v, want ErrAlreadyDestroyed", err)
	}
	if err := c.PushScrollStopper(NewStopperToken()); err != ErrAlreadyDestroyed {
		t.Errorf("PushScrollStopper after destroy: %v, want ErrAlreadyDestroyed", err)
	}

	c.Destroy() // idempotent
}

func TestDestroyEmitsFinalTransition(t *testing.T) {
	_, _, c, log := bound(t)

	c.Destroy()

	changes := log.ofType(EventChangeState)
	final := changes[len(changes)-1].State
	if final.New != StateDestroyed {
		t.Errorf("final transition new state = %v, want Destroyed", final.New)
	}
}

// recordingObserver captures the synchronized field set.
type recordingObserver struct {
	mu sync.Mutex

	containerW, containerH float64
	scrollW, scrollH       float64
	left, top              float64
	right, bottom          float64
	axis                   Axis
	dir, yDir, xDir        Direction
	scrolling              bool
	scrollEnabled          bool
	state                  State
}

func (o *recordingObserver) SetContainerWidth(v float64)  { o.mu.Lock(); o.containerW = v; o.mu.Unlock() }
func (o *recordingObserver) SetContainerHeight(v float64) { o.mu.Lock(); o.containerH = v; o.mu.Unlock() }
func (o *recordingObserver) SetScrollWidth(v float64)     { o.mu.Lock(); o.scrollW = v; o.mu.Unlock() }
func (o *recordingObserver) SetScrollHeight(v float64)    { o.mu.Lock(); o.scrollH = v; o.mu.Unlock() }
func (o *recordingObserver) SetScrollLeft(v float64)      { o.mu.Lock(); o.left = v; o.mu.Unlock() }
func (o *recordingObserver) SetScrollTop(v float64)       { o.mu.Lock(); o.top = v; o.mu.Unlock() }
func (o *recordingObserver) SetScrollRight(v float64)     { o.mu.Lock(); o.right = v; o.mu.Unlock() }
func (o *recordingObserver) SetScrollBottom(v float64)    { o.mu.Lock(); o.bottom = v; o.mu.Unlock() }
func (o *recordingObserver) SetAxis(v Axis)               { o.mu.Lock(); o.axis = v; o.mu.Unlock() }
func (o *recordingObserver) SetLastDirection(v Direction) { o.mu.Lock(); o.dir = v; o.mu.Unlock() }
func (o *recordingObserver) SetLastYDirection(v Direction) {
	o.mu.Lock()
	o.yDir = v
	o.mu.Unlock()
}
func (o *recordingObserver) SetLastXDirection(v Direction) {
	o.mu.Lock()
	o.xDir = v
	o.mu.Unlock()
}
func (o *recordingObserver) SetScrolling(v bool)     { o.mu.Lock(); o.scrolling = v; o.mu.Unlock() }
func (o *recordingObserver) SetScrollEnabled(v bool) { o.mu.Lock(); o.scrollEnabled = v; o.mu.Unlock() }
func (o *recordingObserver) SetState(v State)        { o.mu.Lock(); o.state = v; o.mu.Unlock() }

func TestObserveFullSyncOnAttach(t *testing.T) {
	_, _, c, _ := bound(t)

	o := &recordingObserver{}
	off, err := c.Observe(o)
	if err != nil {
		t.Fatal(err)
	}
	defer off()

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.containerW != 200 || o.scrollH != 1000 || o.bottom != 800 {
		t.Errorf("initial sync = container %v content %v bottom %v, want 200/1000/800",
			o.containerW, o.scrollH, o.bottom)
	}
	if o.state != StateRunning {
		t.Errorf("initial state = %v, want Running", o.state)
	}
	if !o.scrollEnabled {
		t.Error("initial scrollEnabled must be true")
	}
	if o.scrolling {
		t.Error("initial scrolling must be false")
	}
}

func TestObserverTracksScroll(t *testing.T) {
	_, el, c, log := bound(t)

	o := &recordingObserver{}
	if _, err := c.Observe(o); err != nil {
		t.Fatal(err)
	}

	el.SetOffset(0, 300)

	o.mu.Lock()
	top, bottom, scrolling, yDir := o.top, o.bottom, o.scrolling, o.yDir
	o.mu.Unlock()
	if top != 300 || bottom != 500 {
		t.Errorf("observer top/bottom = %v/%v, want 300/500", top, bottom)
	}
	if !scrolling {
		t.Error("observer must see scrolling=true mid-episode")
	}
	if yDir != DirectionBottom {
		t.Errorf("observer yDir = %v, want bottom", yDir)
	}

	log.waitFor(t, EventScrollEnd, 1)
	o.mu.Lock()
	scrolling = o.scrolling
	o.mu.Unlock()
	if scrolling {
		t.Error("observer must see scrolling=false after episode end")
	}
}

func TestUnobserveStopsUpdates(t *testing.T) {
	_, el, c, _ := bound(t)

	o := &recordingObserver{}
	if _, err := c.Observe(o); err != nil {
		t.Fatal(err)
	}
	c.Unobserve(o)

	el.SetOffset(0, 300)

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.top != 0 {
		t.Errorf("detached observer received top = %v, want 0", o.top)
	}
}

func TestObserveAfterDestroy(t *testing.T) {
	_, _, c, _ := bound(t)
	c.Destroy()

	if _, err := c.Observe(&recordingObserver{}); err != ErrAlreadyDestroyed {
		t.Errorf("Observe after destroy: %v, want ErrAlreadyDestroyed", err)
	}
}

func TestVisibilityRefreshesMeasurementsOnForeground(t *testing.T) {
	env, el, c, _ := bound(t)

	env.SetVisible(false)
	el.SetContentSizeQuiet(1000, 3000)
	env.SetVisible(true)

	m := c.Measurements()
	if m.ScrollHeight != 3000 {
		t.Errorf("ScrollHeight = %v, want 3000 after foreground re-measure", m.ScrollHeight)
	}
}

func TestVisibilitySuspendsPoller(t *testing.T) {
	env := memhost.NewEnv()
	el := memhost.NewElement(200, 200, 1000, 1000)
	env.Register("#main", el)

	c := New(env.HostEnv(), Options{
		IdleDebounce: 40 * time.Millisecond,
		Poll:         PollOptions{Interval: 5 * time.Millisecond, WatchHeight: true},
	})
	defer c.Destroy()
	log := &eventLog{}
	log.subscribeAll(c)
	if err := c.Bind("#main"); err != nil {
		t.Fatal(err)
	}

	env.SetVisible(false)
	el.SetContentSizeQuiet(1000, 2000)
	time.Sleep(40 * time.Millisecond)
	if got := log.count(EventResize); got != 0 {
		t.Fatalf("resize fired %d times while hidden, want 0", got)
	}

	env.SetVisible(true)
	log.waitFor(t, EventResize, 1)
}

func TestPollerDetectsQuietGrowth(t *testing.T) {
	env := memhost.NewEnv()
	el := memhost.NewElement(200, 200, 1000, 1000)
	env.Register("#main", el)

	c := New(env.HostEnv(), Options{
		Poll: PollOptions{Interval: 5 * time.Millisecond, WatchHeight: true},
	})
	defer c.Destroy()
	log := &eventLog{}
	log.subscribeAll(c)
	if err := c.Bind("#main"); err != nil {
		t.Fatal(err)
	}

	el.SetContentSizeQuiet(1000, 2500)

	log.waitFor(t, EventResize, 1)
	if m := c.Measurements(); m.ScrollHeight != 2500 {
		t.Errorf("ScrollHeight = %v, want 2500", m.ScrollHeight)
	}
}

func TestApplyTunablesChangesIdleDebounce(t *testing.T) {
	_, el, c, log := bound(t)

	c.ApplyTunables(Options{IdleDebounce: 10 * time.Millisecond})

	el.SetOffset(0, 100)
	log.waitFor(t, EventScrollEnd, 1)
}

func TestUnsubscribeHandler(t *testing.T) {
	_, el, c, _ := bound(t)

	var n int
	var mu sync.Mutex
	off := c.On(EventScrollStart, func(Event) {
		mu.Lock()
		n++
		mu.Unlock()
	})
	off()

	el.SetOffset(0, 100)

	mu.Lock()
	defer mu.Unlock()
	if n != 0 {
		t.Errorf("detached handler fired %d times, want 0", n)
	}
}
