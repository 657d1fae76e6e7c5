// Package ui holds styled components assembled from the primitives.
//
// Button shows asChild composition: with AsChild the caller's element is
// rendered instead of a <button>, carrying the button's classes and
// handlers. Dialog combines a composed trigger, a portal, Escape handling
// and the direction context.
//
//	ui.Dialog(
//	    ui.DialogTrigger(ui.Button(ui.WithChildren(vdom.Text("Open")))),
//	    ui.DialogTitle("Delete file"),
//	    ui.DialogContent(vdom.P(vdom.Text("This cannot be undone."))),
//	)
package ui
