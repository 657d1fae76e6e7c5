package dom

import (
	"sort"
	"sync"
)

// Phase is the event dispatch phase.
type Phase uint8

const (
	PhaseNone Phase = iota
	PhaseCapturing
	PhaseAtTarget
	PhaseBubbling
)

// String returns the string representation of the Phase.
func (p Phase) String() string {
	switch p {
	case PhaseCapturing:
		return "capturing"
	case PhaseAtTarget:
		return "at-target"
	case PhaseBubbling:
		return "bubbling"
	default:
		return "none"
	}
}

// Event is a dispatched host event.
type Event struct {
	Type   string
	Key    string // For keyboard events ("Escape", "Enter", ...)
	Target *Node
	Phase  Phase

	defaultPrevented   bool
	propagationStopped bool
	immediateStopped   bool
}

// NewEvent creates an event of the given type.
func NewEvent(typ string) *Event {
	return &Event{Type: typ}
}

// NewKeyboardEvent creates a keyboard event carrying key.
func NewKeyboardEvent(typ, key string) *Event {
	return &Event{Type: typ, Key: key}
}

// PreventDefault marks the event's default action as cancelled.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation stops delivery to further targets on the path.
func (e *Event) StopPropagation() { e.propagationStopped = true }

// StopImmediatePropagation also stops delivery to remaining listeners
// on the current target.
func (e *Event) StopImmediatePropagation() {
	e.propagationStopped = true
	e.immediateStopped = true
}

// Listener is a registered event callback. Its identity is its pointer.
type Listener struct {
	Handle func(*Event)
}

// NewListener wraps fn in a Listener.
func NewListener(fn func(*Event)) *Listener {
	return &Listener{Handle: fn}
}

// Options are listener registration flags.
type Options struct {
	Capture bool
}

type listenerEntry struct {
	typ      string
	listener *Listener
	capture  bool
}

// EventTarget holds a listener table. It is embedded by Node and Document.
type EventTarget struct {
	mu      sync.Mutex
	entries []listenerEntry
}

// AddEventListener registers l for typ. Registering the same
// (typ, l, capture) combination twice is a no-op.
func (t *EventTarget) AddEventListener(typ string, l *Listener, opts Options) {
	if l == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, e := range t.entries {
		if e.typ == typ && e.listener == l && e.capture == opts.Capture {
			return
		}
	}
	t.entries = append(t.entries, listenerEntry{typ: typ, listener: l, capture: opts.Capture})
}

// RemoveEventListener removes the registration matching typ, l and the
// capture flag. It reports whether anything was removed; removing an unknown
// registration is a no-op.
func (t *EventTarget) RemoveEventListener(typ string, l *Listener, opts Options) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, e := range t.entries {
		if e.typ == typ && e.listener == l && e.capture == opts.Capture {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount returns the number of registrations on this target.
func (t *EventTarget) ListenerCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// EventTypes returns the distinct event types with a registration, sorted.
func (t *EventTarget) EventTypes() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	seen := make(map[string]bool, len(t.entries))
	var out []string
	for _, e := range t.entries {
		if !seen[e.typ] {
			seen[e.typ] = true
			out = append(out, e.typ)
		}
	}
	sort.Strings(out)
	return out
}

// invoke delivers ev to the listeners matching its type and phase.
// Listeners added during delivery are not called for this event.
func (t *EventTarget) invoke(ev *Event, capture bool) {
	t.mu.Lock()
	snapshot := make([]listenerEntry, 0, len(t.entries))
	for _, e := range t.entries {
		if e.typ != ev.Type {
			continue
		}
		if e.capture != capture {
			continue
		}
		snapshot = append(snapshot, e)
	}
	t.mu.Unlock()

	for _, e := range snapshot {
		if !t.registered(e) {
			continue
		}
		if e.listener.Handle != nil {
			e.listener.Handle(ev)
		}
		if ev.immediateStopped {
			return
		}
	}
}

// registered reports whether e is still in the table.
func (t *EventTarget) registered(e listenerEntry) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, cur := range t.entries {
		if cur == e {
			return true
		}
	}
	return false
}
