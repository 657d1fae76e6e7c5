package demo

import (
	"github.com/vango-dev/primitives/pkg/direction"
	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/portal"
	"github.com/vango-dev/primitives/pkg/toast"
	"github.com/vango-dev/primitives/pkg/ui"
	"github.com/vango-dev/primitives/pkg/vdom"
)

func init() {
	register(Demo{
		Name:        "button",
		Title:       "Button",
		Description: "Variants, and a link rendered through AsChild.",
		Build:       buttons,
	})
	register(Demo{
		Name:        "dialog",
		Title:       "Dialog",
		Description: "A dialog opened from its trigger and portalled into the body.",
		Build:       dialog,
		Interact:    clickTrigger,
	})
	register(Demo{
		Name:        "dialog-escape",
		Title:       "Dialog closed with Escape",
		Description: "The dialog demo after the trigger is clicked and Escape is pressed.",
		Build:       dialog,
		Interact: func(doc *dom.Document) {
			clickTrigger(doc)
			doc.KeyDown(nil, "Escape")
		},
	})
	register(Demo{
		Name:        "direction",
		Title:       "Direction",
		Description: "Nested providers and a local override.",
		Build:       directions,
	})
	register(Demo{
		Name:        "portal",
		Title:       "Portal",
		Description: "Content mounted into the body after the first commit.",
		Build: func() *vdom.VNode {
			return vdom.Section(
				vdom.P(vdom.Text("In place")),
				portal.New(nil, vdom.Div(vdom.Data("portalled", ""), vdom.Text("Portalled"))),
			)
		},
	})
	register(Demo{
		Name:        "toast",
		Title:       "Toast",
		Description: "Queued notifications in a portalled live region. Escape dismisses the newest.",
		Build:       toasts,
	})
}

func buttons() *vdom.VNode {
	return vdom.Div(
		vdom.Class("flex gap-2"),
		ui.Button(ui.WithChildren(vdom.Text("Default"))),
		ui.Button(ui.Secondary(), ui.WithChildren(vdom.Text("Secondary"))),
		ui.Button(ui.Destructive(), ui.WithDisabled(true), ui.WithChildren(vdom.Text("Delete"))),
		ui.Button(ui.Link(), ui.AsChild(), ui.WithChildren(
			vdom.A(vdom.Href("https://vango.dev/docs/primitives"), vdom.Class("px-0"), vdom.Text("Docs")),
		)),
	)
}

func dialog() *vdom.VNode {
	return ui.Dialog(
		ui.DialogTrigger(ui.Button(ui.Outline(), ui.WithChildren(vdom.Text("Delete file")))),
		ui.DialogTitle("Delete file?"),
		ui.DialogDescription("This cannot be undone."),
		ui.DialogFooter(vdom.Fragment(
			ui.Button(ui.Ghost(), ui.WithChildren(vdom.Text("Cancel"))),
			ui.Button(ui.Destructive(), ui.WithChildren(vdom.Text("Delete"))),
		)),
	)
}

func toasts() *vdom.VNode {
	q := toast.NewQueue(toast.DefaultLimit)
	q.WithTitle(toast.TypeSuccess, "Settings", "Your changes have been saved.")
	q.WithAction(toast.TypeInfo, "File deleted", "Undo", "undo")
	return vdom.Fragment(
		ui.Button(
			ui.WithOnClick(func() { q.Warning("Disk almost full") }),
			ui.WithChildren(vdom.Text("Notify")),
		),
		toast.Toaster(q),
	)
}

func directions() *vdom.VNode {
	line := func(label string, local ...direction.Direction) *vdom.VNode {
		return vdom.Comp(vdom.Func(func() *vdom.VNode {
			d := direction.Use(local...)
			return vdom.P(vdom.Dir(d.String()), vdom.Textf("%s: %s", label, d))
		}))
	}
	return vdom.Div(
		line("inherited"),
		direction.Provider(direction.RTL,
			line("rtl provider"),
			direction.Provider(direction.LTR, line("nested ltr provider")),
			line("local ltr override", direction.LTR),
		),
	)
}

// clickTrigger clicks the first element announcing a dialog popup.
func clickTrigger(doc *dom.Document) {
	if n := findAttr(doc.Body(), "aria-haspopup"); n != nil {
		doc.Click(n)
	}
}

func findAttr(n *dom.Node, attr string) *dom.Node {
	for _, c := range n.Children() {
		if _, ok := c.Attr(attr); ok {
			return c
		}
		if m := findAttr(c, attr); m != nil {
			return m
		}
	}
	return nil
}
