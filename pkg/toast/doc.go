// Package toast provides feedback notifications.
//
// A Queue holds the visible toasts. Anything holding the queue can show or
// dismiss toasts; a Toaster renders them into a portalled live region:
//
//	q := toast.NewQueue(3)
//
//	func Page() *vdom.VNode {
//	    return vdom.Fragment(
//	        ui.Button(ui.WithOnClick(func() { q.Success("Changes saved!") }),
//	            ui.WithChildren(vdom.Text("Save"))),
//	        toast.Toaster(q),
//	    )
//	}
//
// With title:
//
//	q.WithTitle(toast.TypeSuccess, "Settings", "Your changes have been saved.")
//
// With an action:
//
//	q.WithAction(toast.TypeInfo, "File deleted", "Undo", "undo")
//
// Pressing Escape dismisses the newest toast. The Toaster does not
// coordinate with other Escape subscribers, so an open dialog closes on the
// same key press.
package toast
