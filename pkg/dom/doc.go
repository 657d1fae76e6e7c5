// Package dom provides the DOM-like host capabilities the primitives run on.
//
// It models the small part of a browser document that headless components
// need: element and text nodes, a document with a body, and event targets
// with capture/bubble dispatch. Listeners are identified by pointer so that a
// removal always targets the exact registration that was added:
//
//	doc := dom.NewDocument()
//	l := dom.NewListener(func(e *dom.Event) { ... })
//	doc.AddEventListener("keydown", l, dom.Options{Capture: true})
//	defer doc.RemoveEventListener("keydown", l, dom.Options{Capture: true})
//
// A process-wide document can be installed with SetGlobal; Global reports
// ErrMissingHostEnvironment when none is present.
package dom
