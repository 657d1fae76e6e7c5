package vango

import (
	"fmt"
	"sync/atomic"
)

// Cleanup is a function returned by effects to release what they acquired.
// It is called exactly once, when the owning component is disposed.
type Cleanup func()

// Effect is a side effect bound to a component's mount lifecycle. It runs
// once, after the commit that first placed its component, and its Cleanup
// runs once when the component is disposed.
type Effect struct {
	id uint64

	fn      func() Cleanup
	cleanup Cleanup
	owner   *Owner

	ran      atomic.Bool
	disposed atomic.Bool
}

// ID returns the unique identifier for this effect.
func (e *Effect) ID() uint64 {
	return e.id
}

// Ran reports whether the effect body has executed.
func (e *Effect) Ran() bool {
	return e.ran.Load()
}

// run executes the effect body once with the owner as the current owner.
// A panic is recovered and returned as an error.
func (e *Effect) run() (ran bool, err error) {
	if e.disposed.Load() || !e.ran.CompareAndSwap(false, true) {
		return false, nil
	}
	ran = true

	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()

	WithOwner(e.owner, func() {
		e.cleanup = e.fn()
	})
	return ran, nil
}

// dispose runs the cleanup, at most once.
func (e *Effect) dispose() {
	if e.disposed.Swap(true) {
		return
	}
	if e.cleanup != nil {
		cleanup := e.cleanup
		e.cleanup = nil
		safeCall(cleanup)
	}
}

// OnMount registers fn to run after the commit that first places the
// current component. The returned Cleanup runs when the component is
// disposed. Later renders return the same effect without rescheduling it.
//
// This is a hook-like API and MUST be called unconditionally during render.
//
// Example:
//
//	OnMount(func() Cleanup {
//	    sub := escape.Subscribe(onEscape, nil)
//	    return sub.Close
//	})
func OnMount(fn func() Cleanup) *Effect {
	owner := CurrentOwner()
	if owner == nil {
		// No component scope: run immediately, nothing will dispose it.
		e := &Effect{id: nextID(), fn: fn}
		if _, err := e.run(); err != nil {
			panic(err)
		}
		return e
	}

	owner.TrackHook(HookEffect)
	if slot := owner.UseHookSlot(); slot != nil {
		return slot.(*Effect)
	}

	e := &Effect{
		id:    nextID(),
		fn:    fn,
		owner: owner,
	}
	owner.SetHookSlot(e)
	owner.registerEffect(e)
	owner.scheduleEffect(e)
	return e
}

// OnUnmount registers fn to run when the current component is disposed.
// Only the function passed on the first render is kept.
func OnUnmount(fn func()) {
	owner := CurrentOwner()
	if owner == nil {
		return
	}
	owner.TrackHook(HookCleanup)
	if slot := owner.UseHookSlot(); slot != nil {
		return
	}
	owner.SetHookSlot(true)
	owner.OnCleanup(fn)
}

// panicError converts a recovered value into an error.
func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%w: %v", ErrPanic, r)
}
