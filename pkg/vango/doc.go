// Package vango provides the lifecycle core components render against.
//
// Every mounted component gets an Owner. Owners form a tree mirroring the
// component tree; disposing an Owner disposes its children, its effects and
// its cleanups, each exactly once.
//
// # Hooks
//
// Hooks must be called unconditionally during render. They are bound to
// the current Owner by call order:
//
//	open := vango.UseState(false)
//	vango.OnMount(func() vango.Cleanup {
//	    sub := subscribe()
//	    return sub.Close
//	})
//
// OnMount effects do not run during render. The host runs them after the
// commit that first placed the component, which is what lets a component
// render once without side effects and only then act on the host.
//
// # Context
//
// Context[T] propagates values down the tree without threading parameters:
//
//	var Theme = vango.CreateContext("light")
//
//	Theme.Provider("dark", Toolbar())   // new scope for Toolbar's subtree
//	theme := Theme.Use()                // nearest provider, or "light"
//
// # Thread Safety
//
// The tracking context is per-goroutine. A tree is rendered by one
// goroutine at a time; use WithOwner when a goroutine must create hooks on
// behalf of a specific Owner.
package vango
