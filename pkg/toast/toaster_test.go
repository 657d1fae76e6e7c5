package toast

import (
	"testing"

	"github.com/vango-dev/primitives/pkg/direction"
	"github.com/vango-dev/primitives/pkg/vtest"
)

func TestToasterPortalsRegion(t *testing.T) {
	h := vtest.New(t)
	q := NewQueue(0)
	q.Success("Saved")

	h.Mount(Toaster(q))
	if vtest.Find(h.Doc.Body(), "data-toaster") != nil {
		t.Fatal("region rendered before the first tick")
	}
	h.Settle()

	region := vtest.Find(h.Doc.Body(), "data-toaster")
	if region == nil {
		t.Fatal("region not rendered")
	}
	if region.Parent() != h.Doc.Body() {
		t.Error("region should be portalled into the body")
	}
	if got := vtest.Attr(region, "aria-live"); got != "polite" {
		t.Errorf("aria-live = %q, want polite", got)
	}
	vtest.ExpectAttribute(t, region, "data-level", "success")
	vtest.ExpectContains(t, region, "<p>Saved</p>")
}

func TestToasterFollowsQueue(t *testing.T) {
	h := vtest.New(t)
	q := NewQueue(0)
	h.Render(Toaster(q))

	q.WithTitle(TypeWarning, "Heads up", "Disk almost full")
	h.Settle()
	region := vtest.Find(h.Doc.Body(), "data-toaster")
	vtest.ExpectContains(t, region, "<strong>Heads up</strong>")

	h.Click(vtest.Find(region, "data-toast-dismiss"))
	if q.Len() != 0 {
		t.Errorf("Len() = %d after dismiss click, want 0", q.Len())
	}
	vtest.ExpectNotContains(t, region, "Heads up")
}

func TestToasterAction(t *testing.T) {
	h := vtest.New(t)
	q := NewQueue(0)
	var got Toast
	h.Render(Toaster(q, OnAction(func(ts Toast) { got = ts })))

	q.WithAction(TypeInfo, "File deleted", "Undo", "undo")
	h.Settle()
	h.Click(vtest.Find(h.Doc.Body(), "data-toast-action"))

	if got.ActionID != "undo" {
		t.Errorf("action toast = %+v, want ActionID undo", got)
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want the toast dismissed", q.Len())
	}
}

func TestToasterEscape(t *testing.T) {
	tests := []struct {
		name    string
		opts    []ToasterOption
		wantLen int
	}{
		{"dismisses newest", nil, 1},
		{"disabled", []ToasterOption{DismissOnEscape(false)}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := vtest.New(t)
			q := NewQueue(0)
			q.Info("old")
			q.Info("new")
			h.Render(Toaster(q, tt.opts...))

			h.KeyDown("Escape")
			if got := q.Len(); got != tt.wantLen {
				t.Fatalf("Len() = %d, want %d", got, tt.wantLen)
			}
			if tt.wantLen == 1 && q.Toasts()[0].Message != "old" {
				t.Errorf("remaining = %q, want old", q.Toasts()[0].Message)
			}
		})
	}
}

func TestToasterDirectionAndContainer(t *testing.T) {
	h := vtest.New(t)
	region := h.Doc.CreateElement("section")
	h.Doc.Body().AppendChild(region)
	q := NewQueue(0)
	q.Info("hi")

	h.Render(direction.Provider(direction.RTL, Toaster(q, WithContainer(region), WithClass("bottom-4"))))

	list := vtest.Find(region, "data-toaster")
	if list == nil {
		t.Fatal("toasts not rendered into the container")
	}
	if got := vtest.Attr(list, "dir"); got != "rtl" {
		t.Errorf("dir = %q, want rtl", got)
	}
	vtest.ExpectContains(t, region, "bottom-4")
}

func TestToasterUnmountReleases(t *testing.T) {
	h := vtest.New(t)
	q := NewQueue(0)
	h.Render(Toaster(q))

	if got := len(q.listeners); got != 1 {
		t.Fatalf("queue listeners = %d, want 1", got)
	}
	if got := h.Doc.ListenerCount(); got != 1 {
		t.Fatalf("document listeners = %d, want 1", got)
	}

	h.Root.Unmount()
	if got := len(q.listeners); got != 0 {
		t.Errorf("queue listeners after unmount = %d, want 0", got)
	}
	if got := h.Doc.ListenerCount(); got != 0 {
		t.Errorf("document listeners after unmount = %d, want 0", got)
	}
	q.Info("after")
}
