package dom

import (
	"context"
	"slices"
	"sync/atomic"
)

// Event types forwarded from the browser.
const (
	EventClick  = "click"
	EventChange = "change"
)

// Event is a browser event replayed against the server-side document.
type Event struct {
	Target *Element
	Type   string
	Value  string
}

// Listener handles an event dispatched to an element.
type Listener func(ctx context.Context, ev Event)

// ListenerHandle identifies one registration made with AddEventListener.
// The zero value identifies nothing.
type ListenerHandle struct {
	typ string
	id  uint64
}

// Valid reports whether the handle refers to a registration.
func (h ListenerHandle) Valid() bool {
	return h.id != 0
}

type listenerEntry struct {
	fn Listener
	id uint64
}

var listenerSeq atomic.Uint64

// AddEventListener registers fn for events of type typ and returns a handle
// that removes exactly this registration.
func (e *Element) AddEventListener(typ string, fn Listener) ListenerHandle {
	if fn == nil {
		return ListenerHandle{}
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]listenerEntry)
	}
	id := listenerSeq.Add(1)
	e.listeners[typ] = append(e.listeners[typ], listenerEntry{id: id, fn: fn})
	return ListenerHandle{typ: typ, id: id}
}

// RemoveEventListener removes the registration identified by h.
// Returns false if the handle is unknown to this element.
func (e *Element) RemoveEventListener(h ListenerHandle) bool {
	if !h.Valid() {
		return false
	}
	entries := e.listeners[h.typ]
	idx := slices.IndexFunc(entries, func(le listenerEntry) bool { return le.id == h.id })
	if idx < 0 {
		return false
	}
	e.listeners[h.typ] = slices.Delete(entries, idx, idx+1)
	return true
}

// Listeners returns a snapshot of the listeners registered for typ.
func (e *Element) Listeners(typ string) []Listener {
	entries := e.listeners[typ]
	out := make([]Listener, 0, len(entries))
	for _, le := range entries {
		out = append(out, le.fn)
	}
	return out
}

// ListenerCount returns the number of listeners registered for typ.
func (e *Element) ListenerCount(typ string) int {
	return len(e.listeners[typ])
}
