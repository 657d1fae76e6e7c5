package vango

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// DebugMode enables dev-time validation like hook order checking for every
// Owner in the process. It should be set at startup and not changed while
// trees are mounted. Use Owner.SetDebug to enable it for one tree.
var DebugMode bool

// HookType identifies the type of hook call for order validation.
type HookType uint8

const (
	HookState HookType = iota + 1
	HookEffect
	HookRef
	HookContext
	HookCleanup
)

// String returns a human-readable name for the hook type.
func (h HookType) String() string {
	switch h {
	case HookState:
		return "State"
	case HookEffect:
		return "Effect"
	case HookRef:
		return "Ref"
	case HookContext:
		return "Context"
	case HookCleanup:
		return "Cleanup"
	default:
		return "Unknown"
	}
}

// Owner represents a component scope. When an Owner is disposed, all
// effects, cleanups and child owners it contains are disposed too.
//
// Owners form a hierarchy: each component instance gets an Owner that is a
// child of its parent component's Owner. This mirrors the component tree.
type Owner struct {
	id uint64

	// parent is nil for the root Owner.
	parent *Owner

	children   []*Owner
	childrenMu sync.Mutex

	effects   []*Effect
	effectsMu sync.Mutex

	// cleanups are registered via OnCleanup and run in reverse order.
	cleanups   []func()
	cleanupsMu sync.Mutex

	// pendingEffects run after the next commit.
	pendingEffects   []*Effect
	pendingEffectsMu sync.Mutex

	// values stores context values provided in this scope.
	values   map[any]any
	valuesMu sync.RWMutex

	// invalidate asks the host to re-render this owner's component.
	invalidate func()

	disposed atomic.Bool

	// debug enables hook order validation for this owner and the owners
	// created under it afterwards.
	debug bool

	// Dev-mode hook order tracking (only used when debugging)
	hookOrder   []HookType
	hookIndex   int
	renderCount int

	// Hook slot storage for stable identity across renders.
	hookSlots   []any
	hookSlotIdx int
}

// NewOwner creates a new Owner registered as a child of parent.
// If parent is nil, creates a root Owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		o.debug = parent.debug
		parent.addChild(o)
	}
	return o
}

// SetDebug enables hook order validation for this owner and for owners
// created under it from now on.
func (o *Owner) SetDebug(debug bool) {
	o.debug = debug
}

// debugging reports whether hook order is validated for this owner.
func (o *Owner) debugging() bool {
	return o.debug || DebugMode
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent Owner, or nil if this is a root Owner.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed returns true if this Owner has been disposed.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

func (o *Owner) addChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	o.children = append(o.children, child)
}

func (o *Owner) removeChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()

	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

func (o *Owner) childSnapshot() []*Owner {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	return append([]*Owner(nil), o.children...)
}

// OnCleanup registers fn to run when this Owner is disposed.
// If the Owner is already disposed, fn runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	if fn == nil {
		return
	}
	if o.disposed.Load() {
		safeCall(fn)
		return
	}

	o.cleanupsMu.Lock()
	defer o.cleanupsMu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

// SetInvalidator installs the function the host uses to schedule a
// re-render of this owner's component.
func (o *Owner) SetInvalidator(fn func()) {
	o.invalidate = fn
}

// Invalidate requests a re-render. It is a no-op once disposed.
func (o *Owner) Invalidate() {
	if o.disposed.Load() || o.invalidate == nil {
		return
	}
	o.invalidate()
}

func (o *Owner) registerEffect(e *Effect) {
	if o.disposed.Load() {
		return
	}
	o.effectsMu.Lock()
	defer o.effectsMu.Unlock()
	o.effects = append(o.effects, e)
}

// scheduleEffect queues e to run after the next commit.
func (o *Owner) scheduleEffect(e *Effect) {
	if o.disposed.Load() {
		return
	}
	o.pendingEffectsMu.Lock()
	defer o.pendingEffectsMu.Unlock()
	o.pendingEffects = append(o.pendingEffects, e)
}

// RunPendingEffects runs the effects scheduled on this owner and its
// descendants, parents before children. Panics inside effects are
// recovered and returned; remaining effects still run. It returns the
// number of effects that ran.
func (o *Owner) RunPendingEffects() (int, error) {
	if o.disposed.Load() {
		return 0, nil
	}

	o.pendingEffectsMu.Lock()
	effects := o.pendingEffects
	o.pendingEffects = nil
	o.pendingEffectsMu.Unlock()

	var errs []error
	ran := 0
	for _, e := range effects {
		ok, err := e.run()
		if ok {
			ran++
		}
		if err != nil {
			errs = append(errs, err)
		}
	}

	for _, child := range o.childSnapshot() {
		n, err := child.RunPendingEffects()
		ran += n
		if err != nil {
			errs = append(errs, err)
		}
	}

	return ran, errors.Join(errs...)
}

// HasPendingEffects returns true if this owner or any child has pending effects.
func (o *Owner) HasPendingEffects() bool {
	if o.disposed.Load() {
		return false
	}

	o.pendingEffectsMu.Lock()
	hasPending := len(o.pendingEffects) > 0
	o.pendingEffectsMu.Unlock()
	if hasPending {
		return true
	}

	for _, child := range o.childSnapshot() {
		if child.HasPendingEffects() {
			return true
		}
	}
	return false
}

// Dispose disposes this Owner and all its children, effects, and cleanups.
// Children are disposed in reverse order (last created first). Calling
// Dispose again is a no-op. Panics from cleanups are recovered and logged
// so teardown always completes.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.childrenMu.Lock()
	children := o.children
	o.children = nil
	o.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	o.effectsMu.Lock()
	effects := o.effects
	o.effects = nil
	o.effectsMu.Unlock()

	for i := len(effects) - 1; i >= 0; i-- {
		effects[i].dispose()
	}

	o.cleanupsMu.Lock()
	cleanups := o.cleanups
	o.cleanups = nil
	o.cleanupsMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		safeCall(cleanups[i])
	}

	o.pendingEffectsMu.Lock()
	o.pendingEffects = nil
	o.pendingEffectsMu.Unlock()

	o.invalidate = nil
}

// safeCall runs a teardown function, logging instead of propagating panics.
func safeCall(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Default().Error("vango: cleanup panicked", "panic", fmt.Sprint(r))
		}
	}()
	fn()
}

// =============================================================================
// Dev-mode Hook Order Validation
// =============================================================================

// StartRender is called by the host at the beginning of a component render.
// It resets the hook slot index, and in debug mode the order index.
func (o *Owner) StartRender() {
	o.hookSlotIdx = 0
	if o.debugging() {
		o.hookIndex = 0
	}
}

// EndRender is called at the end of a component render.
// In debug mode, it validates that all expected hooks were called.
func (o *Owner) EndRender() {
	if !o.debugging() {
		return
	}
	if o.renderCount == 0 {
		o.renderCount = 1
	} else if o.hookIndex < len(o.hookOrder) {
		panic(fmt.Errorf("%w: expected %d hooks, got %d", ErrHookOrder, len(o.hookOrder), o.hookIndex))
	}
}

// TrackHook records a hook call during render for order validation.
func (o *Owner) TrackHook(ht HookType) {
	if !o.debugging() {
		return
	}

	if o.renderCount == 0 {
		o.hookOrder = append(o.hookOrder, ht)
	} else {
		if o.hookIndex >= len(o.hookOrder) {
			panic(fmt.Errorf("%w: extra %s hook at index %d", ErrHookOrder, ht, o.hookIndex))
		}
		if expected := o.hookOrder[o.hookIndex]; expected != ht {
			panic(fmt.Errorf("%w at index %d: expected %s, got %s", ErrHookOrder, o.hookIndex, expected, ht))
		}
	}
	o.hookIndex++
}

// TrackHook records a hook call on the current owner, if any.
func TrackHook(ht HookType) {
	if o := CurrentOwner(); o != nil {
		o.TrackHook(ht)
	}
}

// =============================================================================
// Hook Slot Storage for Stable Identity
// =============================================================================

// UseHookSlot returns the stored value for the current hook slot, or nil on
// the first render, in which case the caller creates the value and stores
// it with SetHookSlot.
//
//	func UseThing() *Thing {
//	    owner := CurrentOwner()
//	    if slot := owner.UseHookSlot(); slot != nil {
//	        return slot.(*Thing)
//	    }
//	    t := &Thing{}
//	    owner.SetHookSlot(t)
//	    return t
//	}
func (o *Owner) UseHookSlot() any {
	idx := o.hookSlotIdx
	o.hookSlotIdx++

	if idx < len(o.hookSlots) {
		return o.hookSlots[idx]
	}
	return nil
}

// SetHookSlot stores a value in the current hook slot.
// Must be called after UseHookSlot returns nil (first render).
func (o *Owner) SetHookSlot(value any) {
	o.hookSlots = append(o.hookSlots, value)
}
