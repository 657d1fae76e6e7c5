package vango

import (
	"strconv"
	"sync/atomic"
)

// globalIDCounter is the source of unique IDs for owners and effects.
var globalIDCounter uint64

// nextID returns the next unique ID. IDs are monotonically increasing and
// never reused.
func nextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}

// UseID returns an element id that is unique in the process and stable
// across renders of the current component, for wiring aria-labelledby and
// similar attributes.
//
// This is a hook-like API and MUST be called unconditionally during render.
func UseID(prefix string) string {
	if prefix == "" {
		prefix = "v"
	}
	owner := CurrentOwner()
	if owner == nil {
		return prefix + "-" + strconv.FormatUint(nextID(), 10)
	}
	owner.TrackHook(HookRef)
	if slot := owner.UseHookSlot(); slot != nil {
		return slot.(string)
	}
	id := prefix + "-" + strconv.FormatUint(nextID(), 10)
	owner.SetHookSlot(id)
	return id
}
