// ABOUTME: Minimal session event contract: add listener, remove, dispatch
// ABOUTME: No ordering or delivery guarantee beyond the callback receiving the event

package promptapi

import "sync"

// EventType names a session event.
type EventType string

const (
	// EventQuotaOverflow fires when retained context is evicted to fit the
	// session back under its input quota.
	EventQuotaOverflow EventType = "quotaoverflow"
	// EventDownloadProgress fires as the host fetches model material.
	EventDownloadProgress EventType = "downloadprogress"
)

// Event is the value delivered to listeners.
type Event struct {
	Type EventType
	// Progress is set for downloadprogress events, in [0, 1].
	Progress float64
}

// Handler is a listener callback.
type Handler func(Event)

// Events is a goroutine-safe listener registry. Hosts embed one per session
// and dispatch into it; consumers see it through Session.On.
type Events struct {
	mu        sync.RWMutex
	listeners map[EventType]map[int]Handler
	nextID    int
}

// NewEvents creates an empty registry.
func NewEvents() *Events {
	return &Events{listeners: make(map[EventType]map[int]Handler)}
}

// On registers a listener for one event type and returns its remove function.
func (e *Events) On(t EventType, h Handler) func() {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	if e.listeners[t] == nil {
		e.listeners[t] = make(map[int]Handler)
	}
	e.listeners[t][id] = h
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.listeners[t], id)
		e.mu.Unlock()
	}
}

// Dispatch delivers ev to every listener registered for its type.
// Listeners run synchronously in arbitrary order.
func (e *Events) Dispatch(ev Event) {
	e.mu.RLock()
	// Snapshot so callbacks can register or remove listeners.
	snapshot := make([]Handler, 0, len(e.listeners[ev.Type]))
	for _, h := range e.listeners[ev.Type] {
		snapshot = append(snapshot, h)
	}
	e.mu.RUnlock()

	for _, h := range snapshot {
		h(ev)
	}
}

// Count returns the number of listeners registered for t.
func (e *Events) Count(t EventType) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners[t])
}
