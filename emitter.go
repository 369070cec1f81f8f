package scrollkit

import (
	"sync"

	"github.com/google/uuid"
)

// subscription pairs a handler with its detachable id.
type subscription struct {
	id string
	fn Handler
}

// emitter is the controller's owned publish/subscribe component for the
// closed event set. Handlers run synchronously in subscription order;
// a misbehaving handler is the subscriber's responsibility.
type emitter struct {
	mu   sync.Mutex
	subs map[EventType][]subscription
}

func newEmitter() *emitter {
	return &emitter{subs: make(map[EventType][]subscription)}
}

// on registers a handler and returns its id plus a detach closure.
func (e *emitter) on(t EventType, fn Handler) (string, func()) {
	id := uuid.NewString()
	e.mu.Lock()
	e.subs[t] = append(e.subs[t], subscription{id: id, fn: fn})
	e.mu.Unlock()
	return id, func() { e.off(t, id) }
}

// off removes the handler registered under id. Unknown ids are no-ops.
func (e *emitter) off(t EventType, id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	list := e.subs[t]
	for i, sub := range list {
		if sub.id == id {
			e.subs[t] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// emit delivers ev to every handler subscribed to its type.
// The handler list is snapshotted so handlers may unsubscribe during
// delivery.
func (e *emitter) emit(ev Event) {
	e.mu.Lock()
	list := e.subs[ev.Type]
	fns := make([]Handler, len(list))
	for i, sub := range list {
		fns[i] = sub.fn
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// clear removes every subscription.
func (e *emitter) clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = make(map[EventType][]subscription)
}
