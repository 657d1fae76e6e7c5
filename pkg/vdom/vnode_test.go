package vdom

import (
	"testing"

	"github.com/vango-dev/primitives/pkg/dom"
)

func TestIsEventKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"onclick", true},
		{"onClick", true},
		{"onkeydown", true},
		{"on", false},
		{"one", true},
		{"on-x", false},
		{"class", false},
		{"online1", true},
	}
	for _, tt := range tests {
		if got := IsEventKey(tt.key); got != tt.want {
			t.Errorf("IsEventKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}

	if got := EventName("onKeyDown"); got != "keydown" {
		t.Errorf("EventName = %q, want keydown", got)
	}
	if got := EventName("class"); got != "" {
		t.Errorf("EventName(class) = %q, want empty", got)
	}
}

func TestVNodeClone(t *testing.T) {
	orig := Div(Class("a"), Span())
	c := orig.Clone()
	c.Props["class"] = "b"
	c.Children = append(c.Children, P())

	if orig.Props["class"] != "a" {
		t.Error("clone shares props with original")
	}
	if len(orig.Children) != 1 {
		t.Error("clone shares child slice with original")
	}
	if (*VNode)(nil).Clone() != nil {
		t.Error("nil clone should be nil")
	}
}

func TestInvokeHandler(t *testing.T) {
	ev := dom.NewEvent("click")
	var calls []string

	if !InvokeHandler(func() { calls = append(calls, "plain") }, ev) {
		t.Error("func() should be invoked")
	}
	if !InvokeHandler(func(e *dom.Event) { calls = append(calls, e.Type) }, ev) {
		t.Error("func(*dom.Event) should be invoked")
	}
	if !InvokeHandler(HandlerFunc(func(*dom.Event) { calls = append(calls, "typed") }), ev) {
		t.Error("HandlerFunc should be invoked")
	}
	if InvokeHandler("not a handler", ev) {
		t.Error("string should not be invoked")
	}
	if InvokeHandler(nil, ev) {
		t.Error("nil should not be invoked")
	}

	if len(calls) != 3 || calls[1] != "click" {
		t.Errorf("calls = %v", calls)
	}
}

func TestInvokeRef(t *testing.T) {
	n := dom.NewDocument().CreateElement("div")
	var got *dom.Node

	if !InvokeRef(func(x *dom.Node) { got = x }, n) || got != n {
		t.Error("func ref not attached")
	}
	if !InvokeRef(RefFunc(func(x *dom.Node) { got = x }), nil) || got != nil {
		t.Error("RefFunc not detached")
	}
	if InvokeRef(42, n) {
		t.Error("unsupported ref should report false")
	}
}

func TestHelpers(t *testing.T) {
	if If(false, Div()) != nil {
		t.Error("If(false) should be nil")
	}
	if When(false, func() *VNode { panic("evaluated") }) != nil {
		t.Error("When(false) should be nil")
	}
	items := Range([]string{"a", "b"}, func(s string, _ int) *VNode { return Li(s) })
	if len(items) != 2 {
		t.Errorf("Range len = %d, want 2", len(items))
	}
	if nodes := Nodes("x", nil, []any{Div(), nil}); len(nodes) != 2 {
		t.Errorf("Nodes len = %d, want 2", len(nodes))
	}
}
