// Package vdom provides the element model that components render to.
//
// VNode is the fundamental building block representing elements, text,
// fragments, components and portals. Props holds attributes, event handlers
// and the reserved ref/class/style keys. Attr and EventHandler are used to
// build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// # Handlers and refs
//
// Handler values may be func() or func(*dom.Event); InvokeHandler calls
// either shape. Ref values may be func(*dom.Node) or anything implementing
// NodeAttacher; InvokeRef attaches (or, with nil, detaches) either shape.
//
// # Portals
//
// Portal wraps children that the host inserts into a different container
// instead of in place.
package vdom
