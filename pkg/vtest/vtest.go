package vtest

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/host"
	"github.com/vango-dev/primitives/pkg/render"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// Harness is a root mounted into a fresh document.
type Harness struct {
	T    testing.TB
	Doc  *dom.Document
	App  *dom.Node
	Root *host.Root
}

// New creates a harness. The root logs nowhere unless opts set a logger,
// and is unmounted when the test ends.
func New(t testing.TB, opts ...host.Option) *Harness {
	t.Helper()
	doc := dom.NewDocument()
	app := doc.CreateElement("div")
	app.SetAttr("id", "app")
	doc.Body().AppendChild(app)

	opts = append([]host.Option{
		host.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		host.WithDocument(doc),
	}, opts...)
	root, err := host.New(app, opts...)
	if err != nil {
		t.Fatalf("host.New() error = %v", err)
	}
	t.Cleanup(root.Unmount)
	return &Harness{T: t, Doc: doc, App: app, Root: root}
}

// Mount renders v and commits it without running mount effects.
func (h *Harness) Mount(v *vdom.VNode) {
	h.T.Helper()
	if err := h.Root.Mount(context.Background(), v); err != nil {
		h.T.Fatalf("Mount() error = %v", err)
	}
}

// Render mounts v and settles.
func (h *Harness) Render(v *vdom.VNode) {
	h.T.Helper()
	h.Mount(v)
	h.Settle()
}

// Tick runs one post-commit tick.
func (h *Harness) Tick() {
	h.T.Helper()
	if err := h.Root.Tick(context.Background()); err != nil {
		h.T.Fatalf("Tick() error = %v", err)
	}
}

// Settle ticks until nothing is pending and returns the number of ticks.
func (h *Harness) Settle() int {
	h.T.Helper()
	n, err := h.Root.Settle(context.Background())
	if err != nil {
		h.T.Fatalf("Settle() error = %v", err)
	}
	return n
}

// Click clicks n and settles. It fails the test if n is nil.
func (h *Harness) Click(n *dom.Node) *dom.Event {
	h.T.Helper()
	if n == nil {
		h.T.Fatal("Click(nil)")
	}
	ev := h.Doc.Click(n)
	h.Settle()
	return ev
}

// KeyDown dispatches key on the document and settles.
func (h *Harness) KeyDown(key string) *dom.Event {
	h.T.Helper()
	ev := h.Doc.KeyDown(nil, key)
	h.Settle()
	return ev
}

// PortalText returns the text of body nodes other than the app element.
func (h *Harness) PortalText() string {
	var b strings.Builder
	for _, n := range h.Doc.Body().Children() {
		if n != h.App {
			b.WriteString(n.TextContent())
		}
	}
	return b.String()
}

// Find returns the first element under n, in document order, carrying attr.
func Find(n *dom.Node, attr string) *dom.Node {
	for _, c := range n.Children() {
		if c.Type != dom.ElementNode {
			continue
		}
		if _, ok := c.Attr(attr); ok {
			return c
		}
		if m := Find(c, attr); m != nil {
			return m
		}
	}
	return nil
}

// FindTag returns the first element under n with the given tag.
func FindTag(n *dom.Node, tag string) *dom.Node {
	for _, c := range n.Children() {
		if c.Type != dom.ElementNode {
			continue
		}
		if c.Tag == tag {
			return c
		}
		if m := FindTag(c, tag); m != nil {
			return m
		}
	}
	return nil
}

// Attr returns an attribute of n, or "" when it is unset.
func Attr(n *dom.Node, name string) string {
	v, _ := n.Attr(name)
	return v
}

// RenderToString renders the children of n and returns the HTML string.
//
// Example:
//
//	html := vtest.RenderToString(h.App)
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(n *dom.Node) string {
	var b strings.Builder
	if err := render.NewRenderer(render.RendererConfig{}).RenderChildren(&b, n); err != nil {
		return ""
	}
	return b.String()
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t testing.TB, n *dom.Node, expected string) {
	t.Helper()
	html := RenderToString(n)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, n *dom.Node, unexpected string) {
	t.Helper()
	html := RenderToString(n)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
//
// Example:
//
//	vtest.ExpectElement(t, h.App, "button")
func ExpectElement(t testing.TB, n *dom.Node, tag string) {
	t.Helper()
	html := RenderToString(n)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, h.App, "data-variant", "primary")
func ExpectAttribute(t testing.TB, n *dom.Node, attr, value string) {
	t.Helper()
	html := RenderToString(n)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
