package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/primitives/pkg/slot"
	"github.com/vango-dev/primitives/pkg/vdom"
	"github.com/vango-dev/primitives/pkg/vtest"
)

func classes(v *vdom.VNode) map[string]bool {
	s, _ := v.Props[vdom.PropClass].(string)
	out := make(map[string]bool)
	for _, c := range strings.Fields(s) {
		out[c] = true
	}
	return out
}

func TestButtonDefaults(t *testing.T) {
	b := Button(WithChildren(vdom.Text("Save")))

	if b.Tag != "button" {
		t.Fatalf("Tag = %q, want button", b.Tag)
	}
	if b.Props["type"] != "button" {
		t.Errorf("type = %v, want button", b.Props["type"])
	}
	if b.Props["data-variant"] != "default" {
		t.Errorf("data-variant = %v, want default", b.Props["data-variant"])
	}
	if c := classes(b); !c["h-10"] || !c["px-4"] {
		t.Errorf("class = %v, want size classes", b.Props[vdom.PropClass])
	}
	if len(b.Children) != 1 || b.Children[0].Text != "Save" {
		t.Errorf("children = %v, want the Save text", b.Children)
	}
}

func TestButtonClassOverride(t *testing.T) {
	b := Button(WithSize(SizeLg), WithClass("px-2"))

	c := classes(b)
	if !c["px-2"] || c["px-8"] {
		t.Errorf("class = %v, want px-2 to replace px-8", b.Props[vdom.PropClass])
	}
}

func TestButtonDisabledDropsClick(t *testing.T) {
	b := Button(WithDisabled(true), WithOnClick(func() {}))

	if b.Props["disabled"] != true {
		t.Errorf("disabled = %v, want true", b.Props["disabled"])
	}
	if _, ok := b.Props["onclick"]; ok {
		t.Error("disabled button kept its click handler")
	}
}

func TestButtonAsChild(t *testing.T) {
	b := Button(
		AsChild(),
		Link(),
		WithChildren(vdom.A(vdom.Href("/docs"), vdom.Class("px-1"), vdom.Text("Docs"))),
	)

	if b.Tag != "a" {
		t.Fatalf("Tag = %q, want a", b.Tag)
	}
	if b.Props["href"] != "/docs" {
		t.Errorf("href = %v, want /docs", b.Props["href"])
	}
	if _, ok := b.Props["type"]; ok {
		t.Error("substituted element got a button type")
	}
	c := classes(b)
	if !c["px-1"] || c["px-4"] || !c["underline-offset-4"] {
		t.Errorf("class = %v, want the child's px-1 to win", b.Props[vdom.PropClass])
	}
}

func TestButtonAsChildContractViolation(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, slot.ErrContractViolation) {
			t.Errorf("recover() = %v, want ErrContractViolation", err)
		}
	}()
	Button(AsChild(), WithChildren(vdom.Span(), vdom.Span()))
	t.Error("Button did not panic")
}

func TestButtonAsChildHandlerOrder(t *testing.T) {
	h := vtest.New(t)
	var order []string
	h.Render(Button(
		AsChild(),
		WithOnClick(func() { order = append(order, "button") }),
		WithChildren(vdom.A(vdom.OnClick(func() { order = append(order, "link") }))),
	))

	link := h.App.Children()[0]
	h.Doc.Click(link)

	if got := strings.Join(order, ","); got != "button,link" {
		t.Errorf("order = %q, want %q", got, "button,link")
	}
}
