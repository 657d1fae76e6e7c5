package vango

import "sync"

// State is a component-local value. Changing it schedules a re-render of
// the component that created it.
type State[T comparable] struct {
	mu    sync.RWMutex
	value T
	owner *Owner
}

// UseState returns the state for the current hook slot, created with
// initial on the first render.
//
// This is a hook-like API and MUST be called unconditionally during render.
//
// Example:
//
//	mounted := vango.UseState(false)
//	vango.OnMount(func() vango.Cleanup {
//	    mounted.Set(true)
//	    return nil
//	})
func UseState[T comparable](initial T) *State[T] {
	owner := CurrentOwner()
	if owner == nil {
		return &State[T]{value: initial}
	}
	owner.TrackHook(HookState)
	if slot := owner.UseHookSlot(); slot != nil {
		return slot.(*State[T])
	}
	s := &State[T]{value: initial, owner: owner}
	owner.SetHookSlot(s)
	return s
}

// Get returns the current value.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value. Setting an equal value does not re-render.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	if s.value == v {
		s.mu.Unlock()
		return
	}
	s.value = v
	s.mu.Unlock()

	if s.owner != nil {
		s.owner.Invalidate()
	}
}

// Update applies fn to the current value and stores the result.
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}
