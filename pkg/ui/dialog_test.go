package ui

import (
	"testing"

	"github.com/vango-dev/primitives/pkg/direction"
	"github.com/vango-dev/primitives/pkg/vdom"
	"github.com/vango-dev/primitives/pkg/vtest"
)

func openButton() DialogOption {
	return DialogTrigger(Button(WithChildren(vdom.Text("Open"))))
}

func TestDialogOpenAndEscape(t *testing.T) {
	h := vtest.New(t)
	var changes []bool
	h.Render(Dialog(
		openButton(),
		DialogTitle("Delete"),
		DialogOnOpenChange(func(v bool) { changes = append(changes, v) }),
	))

	trigger := vtest.Find(h.App, "aria-haspopup")
	if trigger == nil {
		t.Fatal("trigger not rendered")
	}
	if trigger.Tag != "button" {
		t.Errorf("trigger tag = %q, want the button itself", trigger.Tag)
	}
	if vtest.Attr(trigger, "aria-expanded") != "false" || vtest.Attr(trigger, "data-state") != "closed" {
		t.Errorf("closed trigger attrs: expanded=%q state=%q", vtest.Attr(trigger, "aria-expanded"), vtest.Attr(trigger, "data-state"))
	}
	if vtest.Find(h.Doc.Body(), "role") != nil {
		t.Fatal("dialog rendered while closed")
	}

	h.Doc.Click(trigger)
	h.Settle()

	panel := vtest.Find(h.Doc.Body(), "role")
	if panel == nil {
		t.Fatal("dialog not rendered after trigger click")
	}
	if panel.Parent() != h.Doc.Body() {
		t.Error("dialog panel not portalled into body")
	}
	if vtest.Attr(trigger, "aria-expanded") != "true" {
		t.Errorf("aria-expanded = %q, want true", vtest.Attr(trigger, "aria-expanded"))
	}
	if vtest.Attr(trigger, "aria-controls") != vtest.Attr(panel, "id") {
		t.Errorf("aria-controls = %q, panel id = %q", vtest.Attr(trigger, "aria-controls"), vtest.Attr(panel, "id"))
	}
	if vtest.Attr(panel, "aria-labelledby") != vtest.Attr(panel, "id")+"-title" {
		t.Errorf("aria-labelledby = %q", vtest.Attr(panel, "aria-labelledby"))
	}
	if h.Doc.ListenerCount() != 1 {
		t.Errorf("document listeners = %d, want 1 escape listener", h.Doc.ListenerCount())
	}

	h.Doc.KeyDown(nil, "Escape")
	h.Settle()

	if vtest.Find(h.Doc.Body(), "role") != nil {
		t.Error("dialog still rendered after Escape")
	}
	if h.Doc.ListenerCount() != 0 {
		t.Errorf("document listeners = %d after close, want 0", h.Doc.ListenerCount())
	}
	if len(changes) != 2 || !changes[0] || changes[1] {
		t.Errorf("open changes = %v, want [true false]", changes)
	}
}

func TestDialogCloseOnEscapeDisabled(t *testing.T) {
	h := vtest.New(t)
	h.Render(Dialog(DialogDefaultOpen(true), DialogCloseOnEscape(false)))

	h.Doc.KeyDown(nil, "Escape")
	h.Settle()

	if vtest.Find(h.Doc.Body(), "role") == nil {
		t.Error("dialog closed on Escape with close on Escape disabled")
	}
}

func TestDialogOverlayAndCloseButton(t *testing.T) {
	tests := []struct {
		name string
		attr string
	}{
		{"overlay", "data-dialog-overlay"},
		{"close button", "data-dialog-close"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := vtest.New(t)
			h.Render(Dialog(DialogDefaultOpen(true)))

			target := vtest.Find(h.Doc.Body(), tt.attr)
			if target == nil {
				t.Fatalf("%s not rendered", tt.name)
			}
			h.Doc.Click(target)
			h.Settle()

			if vtest.Find(h.Doc.Body(), "role") != nil {
				t.Errorf("dialog still open after %s click", tt.name)
			}
		})
	}
}

func TestDialogOverlayClickDisabled(t *testing.T) {
	h := vtest.New(t)
	h.Render(Dialog(DialogDefaultOpen(true), DialogCloseOnOverlay(false), DialogShowCloseButton(false)))

	h.Doc.Click(vtest.Find(h.Doc.Body(), "data-dialog-overlay"))
	h.Settle()

	if vtest.Find(h.Doc.Body(), "role") == nil {
		t.Error("dialog closed on overlay click with it disabled")
	}
	if vtest.Find(h.Doc.Body(), "data-dialog-close") != nil {
		t.Error("close button rendered while hidden")
	}
}

func TestDialogControlled(t *testing.T) {
	h := vtest.New(t)
	var changes []bool
	h.Render(Dialog(DialogOpen(true), DialogOnOpenChange(func(v bool) { changes = append(changes, v) })))

	h.Doc.KeyDown(nil, "Escape")
	h.Settle()

	if vtest.Find(h.Doc.Body(), "role") == nil {
		t.Error("controlled dialog closed itself")
	}
	if len(changes) != 1 || changes[0] {
		t.Errorf("open changes = %v, want [false]", changes)
	}

	h.Render(Dialog(DialogOpen(false)))
	if vtest.Find(h.Doc.Body(), "role") != nil {
		t.Error("controlled dialog still open after open=false")
	}
}

func TestDialogDirection(t *testing.T) {
	tests := []struct {
		name string
		tree func() *vdom.VNode
		want string
	}{
		{
			name: "default",
			tree: func() *vdom.VNode { return Dialog(DialogDefaultOpen(true)) },
			want: "ltr",
		},
		{
			name: "provider",
			tree: func() *vdom.VNode {
				return direction.Provider(direction.RTL, Dialog(DialogDefaultOpen(true)))
			},
			want: "rtl",
		},
		{
			name: "local override",
			tree: func() *vdom.VNode {
				return direction.Provider(direction.RTL, Dialog(DialogDefaultOpen(true), DialogDir(direction.LTR)))
			},
			want: "ltr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := vtest.New(t)
			h.Render(tt.tree())

			panel := vtest.Find(h.Doc.Body(), "role")
			if panel == nil {
				t.Fatal("dialog not rendered")
			}
			if got := vtest.Attr(panel, "dir"); got != tt.want {
				t.Errorf("dir = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDialogContainer(t *testing.T) {
	h := vtest.New(t)
	layer := h.Doc.CreateElement("div")
	h.Doc.Body().AppendChild(layer)

	h.Render(Dialog(DialogDefaultOpen(true), DialogContainer(layer), DialogContent(vdom.P(vdom.Text("body")))))

	panel := vtest.Find(layer, "role")
	if panel == nil {
		t.Fatal("dialog not rendered into the container")
	}
	if panel.TextContent() != "body×" {
		t.Errorf("panel text = %q", panel.TextContent())
	}
}
