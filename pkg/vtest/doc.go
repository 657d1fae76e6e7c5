// Package vtest provides testing helpers for components built on the
// primitives.
//
// A Harness mounts trees into an "app" element inside a fresh document, so
// the body stays free for portalled content:
//
//	func TestDialogOpens(t *testing.T) {
//	    h := vtest.New(t)
//	    h.Render(ui.Dialog(ui.DialogTrigger(trigger), ui.DialogTitle("Hi")))
//
//	    h.Click(vtest.Find(h.App, "aria-haspopup"))
//	    vtest.ExpectAttribute(t, h.Doc.Body(), "role", "dialog")
//	}
//
// Mount commits without ticking, which lets tests observe the state before
// mount effects run:
//
//	h.Mount(portal.New(nil, content))
//	// nothing portalled yet
//	h.Tick()
//	// content is in the body
//
// # Render Assertions
//
// Assert on the rendered HTML of a node's children:
//
//	vtest.ExpectContains(t, h.App, "Welcome")
//	vtest.ExpectNotContains(t, h.Doc.Body(), `role="dialog"`)
//	vtest.ExpectElement(t, h.App, "button")
package vtest
