package vango

import (
	"github.com/vango-dev/primitives/pkg/vdom"
)

// Context provides dependency injection through the component tree.
// Create a context with CreateContext, provide values with Provider,
// and consume values with Use.
//
// Example:
//
//	var ThemeContext = vango.CreateContext("light")
//
//	func App() vdom.Component {
//	    return vdom.Func(func() *vdom.VNode {
//	        return ThemeContext.Provider("dark",
//	            Header(),
//	            Main(),
//	        )
//	    })
//	}
//
//	func Button() *vdom.VNode {
//	    theme := ThemeContext.Use()
//	    return vdom.Button(vdom.Class("btn-" + theme))
//	}
type Context[T any] struct {
	key          any
	defaultValue T
}

// contextKey wraps Context to create a unique key type.
type contextKey[T any] struct {
	ctx *Context[T]
}

// CreateContext creates a new context with the given default value.
// The default value is returned by Use when no Provider is found
// in the component tree.
func CreateContext[T any](defaultValue T) *Context[T] {
	ctx := &Context[T]{defaultValue: defaultValue}
	ctx.key = contextKey[T]{ctx: ctx}
	return ctx
}

// Default returns the context's default value.
func (c *Context[T]) Default() T {
	return c.defaultValue
}

// Provider wraps children in a new scope carrying value. Descendant
// components see value through Use; siblings and ancestors do not.
// Nested providers shadow outer ones for their own subtree only.
func (c *Context[T]) Provider(value T, children ...any) *vdom.VNode {
	return vdom.Comp(&provider[T]{
		ctx:      c,
		value:    value,
		children: children,
	})
}

// provider is the component behind Provider. It owns the scope the value
// is stored on.
type provider[T any] struct {
	ctx      *Context[T]
	value    T
	children []any
}

// Render implements vdom.Component.
func (p *provider[T]) Render() *vdom.VNode {
	if owner := CurrentOwner(); owner != nil {
		owner.SetValue(p.ctx.key, p.value)
	}
	return vdom.Fragment(p.children...)
}

// Use returns the value from the nearest Provider above the current
// component, or the default value when there is none.
//
// This is a hook-like API and MUST be called unconditionally during render.
func (c *Context[T]) Use() T {
	owner := CurrentOwner()
	if owner == nil {
		return c.defaultValue
	}
	owner.TrackHook(HookContext)
	v, _ := c.LookupFrom(owner)
	return v
}

// LookupFrom walks the owner chain starting at owner and reports whether a
// provider was found. Without one it returns the default value and false.
func (c *Context[T]) LookupFrom(owner *Owner) (T, bool) {
	if owner != nil {
		if v, ok := owner.LookupValue(c.key); ok {
			return v.(T), true
		}
	}
	return c.defaultValue, false
}

// Set stores value directly on owner's scope. Hosts use it to seed the
// root scope; components should prefer Provider.
func (c *Context[T]) Set(owner *Owner, value T) {
	if owner != nil {
		owner.SetValue(c.key, value)
	}
}

// SetValue stores a context value in this Owner's scope.
func (o *Owner) SetValue(key, value any) {
	o.valuesMu.Lock()
	defer o.valuesMu.Unlock()
	if o.values == nil {
		o.values = make(map[any]any)
	}
	o.values[key] = value
}

// GetValue returns the value stored on this Owner only, or nil.
func (o *Owner) GetValue(key any) any {
	o.valuesMu.RLock()
	defer o.valuesMu.RUnlock()
	if o.values == nil {
		return nil
	}
	return o.values[key]
}

// LookupValue walks up the Owner chain and returns the nearest value for
// key. The boolean distinguishes a stored zero value from no value.
func (o *Owner) LookupValue(key any) (any, bool) {
	for cur := o; cur != nil; cur = cur.parent {
		cur.valuesMu.RLock()
		v, ok := cur.values[key]
		cur.valuesMu.RUnlock()
		if ok {
			return v, true
		}
	}
	return nil, false
}
