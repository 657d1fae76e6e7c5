package vango

import (
	"sync"

	"github.com/vango-dev/primitives/pkg/dom"
)

// Ref holds a mutable reference to a value, most often the host node an
// element is attached to. Ref[*dom.Node] can be passed directly to
// vdom.Ref; the host calls AttachNode on commit and AttachNode(nil) when
// the element is removed.
//
// Ref[T] is safe for concurrent access.
type Ref[T any] struct {
	value T
	isSet bool
	mu    sync.RWMutex
}

// NewRef creates a new Ref with the given initial value. It is not a hook:
// every call returns a new Ref.
func NewRef[T any](initial T) *Ref[T] {
	return &Ref[T]{value: initial}
}

// UseRef returns a Ref that keeps its identity across renders of the
// current component.
//
// This is a hook-like API and MUST be called unconditionally during render.
//
// Example:
//
//	content := vango.UseRef[*dom.Node](nil)
//	return vdom.Div(vdom.Ref(content))
func UseRef[T any](initial T) *Ref[T] {
	owner := CurrentOwner()
	if owner == nil {
		return NewRef(initial)
	}
	owner.TrackHook(HookRef)
	if slot := owner.UseHookSlot(); slot != nil {
		return slot.(*Ref[T])
	}
	r := NewRef(initial)
	owner.SetHookSlot(r)
	return r
}

// Current returns the current value of the ref.
func (r *Ref[T]) Current() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// Set sets the ref's value.
func (r *Ref[T]) Set(value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = value
	r.isSet = true
}

// IsSet returns true if the ref holds a value set by Set or AttachNode.
func (r *Ref[T]) IsSet() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isSet
}

// Clear resets the ref to its zero value.
func (r *Ref[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	r.value = zero
	r.isSet = false
}

// AttachNode implements vdom.NodeAttacher. A nil node clears the ref. Refs
// whose type parameter cannot hold a *dom.Node ignore the call.
func (r *Ref[T]) AttachNode(n *dom.Node) {
	if n == nil {
		r.Clear()
		return
	}
	if v, ok := any(n).(T); ok {
		r.Set(v)
	}
}
