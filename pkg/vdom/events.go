package vdom

import "github.com/vango-dev/primitives/pkg/dom"

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// On creates a handler for an arbitrary event type.
func On(name string, handler any) EventHandler { return event(name, handler) }

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnPointerDown handles pointerdown events.
func OnPointerDown(handler any) EventHandler { return event("pointerdown", handler) }

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) EventHandler { return event("keyup", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) EventHandler { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventHandler { return event("blur", handler) }

// OnInput handles input events.
func OnInput(handler any) EventHandler { return event("input", handler) }

// OnChange handles change events.
func OnChange(handler any) EventHandler { return event("change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) EventHandler { return event("submit", handler) }

// HandlerFunc is the canonical handler shape produced by handler composition.
type HandlerFunc func(*dom.Event)

// InvokeHandler calls h with ev if h is a supported handler shape and
// reports whether it was called. Supported shapes: func(), func(*dom.Event)
// and HandlerFunc.
func InvokeHandler(h any, ev *dom.Event) bool {
	switch fn := h.(type) {
	case nil:
		return false
	case func():
		if fn == nil {
			return false
		}
		fn()
	case func(*dom.Event):
		if fn == nil {
			return false
		}
		fn(ev)
	case HandlerFunc:
		if fn == nil {
			return false
		}
		fn(ev)
	default:
		return false
	}
	return true
}

// IsHandler reports whether h is a supported handler shape.
func IsHandler(h any) bool {
	switch fn := h.(type) {
	case func():
		return fn != nil
	case func(*dom.Event):
		return fn != nil
	case HandlerFunc:
		return fn != nil
	}
	return false
}
