package toast

import (
	"sort"
	"sync"
)

// Type represents the toast notification type.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// DefaultLimit is the number of toasts a queue keeps when no limit is given.
const DefaultLimit = 3

// Toast is a single notification.
type Toast struct {
	ID      uint64
	Level   Type
	Title   string
	Message string

	// ActionLabel and ActionID describe an optional action button.
	ActionLabel string
	ActionID    string
}

// Queue holds the visible toasts, oldest first. It is safe for concurrent
// use; subscribers are called without the lock held.
type Queue struct {
	mu        sync.Mutex
	limit     int
	nextID    uint64
	toasts    []Toast
	listeners map[uint64]func()
	nextSub   uint64
}

// NewQueue creates a queue keeping at most limit toasts. Showing a toast
// on a full queue drops the oldest one.
func NewQueue(limit int) *Queue {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Queue{limit: limit, listeners: make(map[uint64]func())}
}

// Push adds t and returns its assigned ID.
func (q *Queue) Push(t Toast) uint64 {
	q.mu.Lock()
	q.nextID++
	t.ID = q.nextID
	q.toasts = append(q.toasts, t)
	if over := len(q.toasts) - q.limit; over > 0 {
		q.toasts = append([]Toast(nil), q.toasts[over:]...)
	}
	q.mu.Unlock()

	q.notify()
	return t.ID
}

// Show displays a toast notification.
func (q *Queue) Show(level Type, message string) uint64 {
	return q.Push(Toast{Level: level, Message: message})
}

// Success shows a success toast.
//
//	q.Success("Changes saved!")
func (q *Queue) Success(message string) uint64 {
	return q.Show(TypeSuccess, message)
}

// Error shows an error toast.
func (q *Queue) Error(message string) uint64 {
	return q.Show(TypeError, message)
}

// Warning shows a warning toast.
func (q *Queue) Warning(message string) uint64 {
	return q.Show(TypeWarning, message)
}

// Info shows an info toast.
func (q *Queue) Info(message string) uint64 {
	return q.Show(TypeInfo, message)
}

// WithTitle shows a toast with a title and message.
func (q *Queue) WithTitle(level Type, title, message string) uint64 {
	return q.Push(Toast{Level: level, Title: title, Message: message})
}

// WithAction shows a toast with an action button.
func (q *Queue) WithAction(level Type, message, actionLabel, actionID string) uint64 {
	return q.Push(Toast{Level: level, Message: message, ActionLabel: actionLabel, ActionID: actionID})
}

// Dismiss removes the toast with the given ID and reports whether it was
// visible.
func (q *Queue) Dismiss(id uint64) bool {
	q.mu.Lock()
	found := false
	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i:i], q.toasts[i+1:]...)
			found = true
			break
		}
	}
	q.mu.Unlock()

	if found {
		q.notify()
	}
	return found
}

// DismissNewest removes the most recently shown toast.
func (q *Queue) DismissNewest() bool {
	q.mu.Lock()
	n := len(q.toasts)
	if n == 0 {
		q.mu.Unlock()
		return false
	}
	q.toasts = q.toasts[:n-1]
	q.mu.Unlock()

	q.notify()
	return true
}

// Clear removes every toast.
func (q *Queue) Clear() {
	q.mu.Lock()
	had := len(q.toasts) > 0
	q.toasts = nil
	q.mu.Unlock()

	if had {
		q.notify()
	}
}

// Toasts returns a copy of the visible toasts, oldest first.
func (q *Queue) Toasts() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Toast(nil), q.toasts...)
}

// Len returns the number of visible toasts.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.toasts)
}

// Subscribe registers fn to run after every change. The returned function
// unsubscribes; calling it again is a no-op.
func (q *Queue) Subscribe(fn func()) func() {
	q.mu.Lock()
	q.nextSub++
	id := q.nextSub
	q.listeners[id] = fn
	q.mu.Unlock()

	return func() {
		q.mu.Lock()
		delete(q.listeners, id)
		q.mu.Unlock()
	}
}

func (q *Queue) notify() {
	q.mu.Lock()
	ids := make([]uint64, 0, len(q.listeners))
	for id := range q.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, q.listeners[id])
	}
	q.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
