package vango

import (
	"runtime"
	"sync"
)

// trackingContext holds the render state for a goroutine.
type trackingContext struct {
	// currentOwner is the Owner hooks bind to.
	// Set by the host while rendering a component or running its effects.
	currentOwner *Owner
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// getGoroutineID returns a unique identifier for the current goroutine,
// parsed from the "goroutine <id> " stack header.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ { // Skip "goroutine "
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// getTrackingContext returns the tracking context for the current goroutine,
// creating one if needed.
func getTrackingContext() *trackingContext {
	gid := getGoroutineID()

	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}

	ctx := &trackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// CurrentOwner returns the Owner hooks currently bind to, or nil outside
// of a render or effect.
func CurrentOwner() *Owner {
	return getTrackingContext().currentOwner
}

// setCurrentOwner sets the current owner and returns the previous one.
func setCurrentOwner(o *Owner) *Owner {
	ctx := getTrackingContext()
	old := ctx.currentOwner
	ctx.currentOwner = o
	return old
}

// WithOwner runs fn with owner as the current owner.
//
// Example:
//
//	go func() {
//	    WithOwner(parentOwner, func() {
//	        // Hooks called here bind to parentOwner
//	    })
//	}()
func WithOwner(owner *Owner, fn func()) {
	old := setCurrentOwner(owner)
	defer func() {
		setCurrentOwner(old)
		if old == nil {
			releaseGoroutineContext()
		}
	}()
	fn()
}

// releaseGoroutineContext removes the tracking context for the current
// goroutine once it no longer has an owner set.
func releaseGoroutineContext() {
	ctx := getTrackingContext()
	if ctx.currentOwner == nil {
		trackingContexts.Delete(getGoroutineID())
	}
}
