package host

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	perrors "github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/slot"
	"github.com/vango-dev/primitives/pkg/vango"
	"github.com/vango-dev/primitives/pkg/vdom"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRoot(t *testing.T, opts ...Option) (*Root, *dom.Document) {
	t.Helper()
	doc := dom.NewDocument()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	root, err := New(doc.Body(), opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(root.Unmount)
	return root, doc
}

func mount(t *testing.T, root *Root, v *vdom.VNode) {
	t.Helper()
	if err := root.Mount(context.Background(), v); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
}

func settle(t *testing.T, root *Root) {
	t.Helper()
	if _, err := root.Settle(context.Background()); err != nil {
		t.Fatalf("Settle() error = %v", err)
	}
}

// counter renders a button showing a click count.
type counter struct {
	label string
}

func (c *counter) Render() *vdom.VNode {
	count := vango.UseState(0)
	return vdom.Button(
		vdom.ID("counter"),
		vdom.OnClick(func() { count.Update(func(n int) int { return n + 1 }) }),
		vdom.Textf("%s %d", c.label, count.Get()),
	)
}

func TestNewWithoutHost(t *testing.T) {
	restore := dom.SetGlobal(nil)
	defer restore()

	_, err := New(nil)
	if !errors.Is(err, dom.ErrMissingHostEnvironment) {
		t.Fatalf("New(nil) error = %v, want ErrMissingHostEnvironment", err)
	}
	if perrors.Code(err) != "E202" {
		t.Errorf("code = %q, want E202", perrors.Code(err))
	}
}

func TestNewDefaultsToGlobalBody(t *testing.T) {
	doc := dom.NewDocument()
	restore := dom.SetGlobal(doc)
	defer restore()

	root, err := New(nil, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New(nil) error = %v", err)
	}
	defer root.Unmount()

	if root.Container() != doc.Body() || root.Document() != doc {
		t.Error("root should mount into the global document's body")
	}
}

func TestMountElements(t *testing.T) {
	root, doc := newTestRoot(t)

	mount(t, root, vdom.Div(
		vdom.ID("box"),
		vdom.Class("p-4"),
		vdom.Disabled(),
		vdom.AriaHidden(false),
		vdom.Span("hello"),
		" world",
	))

	body := doc.Body()
	if body.ChildCount() != 1 {
		t.Fatalf("body children = %d, want 1", body.ChildCount())
	}
	div := body.Children()[0]
	if div.Tag != "div" {
		t.Fatalf("tag = %q, want div", div.Tag)
	}
	if v, _ := div.Attr("class"); v != "p-4" {
		t.Errorf("class = %q, want p-4", v)
	}
	if v, ok := div.Attr("disabled"); !ok || v != "" {
		t.Errorf("disabled = %q, %v; want present and empty", v, ok)
	}
	if v, _ := div.Attr("aria-hidden"); v != "false" {
		t.Errorf("aria-hidden = %q, want false", v)
	}
	if got := div.TextContent(); got != "hello world" {
		t.Errorf("text = %q, want %q", got, "hello world")
	}
}

func TestRemountKeepsIdentity(t *testing.T) {
	root, doc := newTestRoot(t)

	mount(t, root, vdom.Div(vdom.ID("a"), vdom.Class("x"), vdom.Span("one")))
	div := doc.Body().Children()[0]
	span := div.Children()[0]

	mount(t, root, vdom.Div(vdom.ID("a"), vdom.Span("two")))

	if doc.Body().Children()[0] != div {
		t.Fatal("div should keep its identity")
	}
	if div.Children()[0] != span {
		t.Fatal("span should keep its identity")
	}
	if span.TextContent() != "two" {
		t.Errorf("span text = %q, want two", span.TextContent())
	}
	if _, ok := div.Attr("class"); ok {
		t.Error("class should be removed when the prop disappears")
	}
}

func TestRemountReplacesOnTagChange(t *testing.T) {
	root, doc := newTestRoot(t)

	mount(t, root, vdom.Div())
	div := doc.Body().Children()[0]
	mount(t, root, vdom.Section())

	if doc.Body().ChildCount() != 1 {
		t.Fatalf("body children = %d, want 1", doc.Body().ChildCount())
	}
	if got := doc.Body().Children()[0]; got == div || got.Tag != "section" {
		t.Errorf("got <%s>, want a new section", got.Tag)
	}
}

func TestKeyedChildrenReorder(t *testing.T) {
	root, doc := newTestRoot(t)

	list := func(keys ...string) *vdom.VNode {
		items := make([]any, 0, len(keys))
		for _, k := range keys {
			items = append(items, vdom.Li(vdom.Key(k), k))
		}
		return vdom.Ul(items...)
	}

	mount(t, root, list("a", "b", "c"))
	ul := doc.Body().Children()[0]
	before := map[string]*dom.Node{}
	for _, li := range ul.Children() {
		before[li.TextContent()] = li
	}

	mount(t, root, list("c", "a"))

	got := ul.Children()
	if len(got) != 2 {
		t.Fatalf("children = %d, want 2", len(got))
	}
	if got[0] != before["c"] || got[1] != before["a"] {
		t.Error("keyed children should be moved, not recreated")
	}
	if before["b"].Parent() != nil {
		t.Error("removed child should be detached")
	}
}

func TestEventHandlersAndState(t *testing.T) {
	root, doc := newTestRoot(t)
	mount(t, root, vdom.Comp(&counter{label: "clicks"}))

	btn := doc.Body().Children()[0]
	if btn.TextContent() != "clicks 0" {
		t.Fatalf("text = %q, want %q", btn.TextContent(), "clicks 0")
	}

	doc.Click(btn)
	doc.Click(btn)
	if !root.Pending() {
		t.Fatal("state change should leave work pending")
	}
	settle(t, root)

	if doc.Body().Children()[0] != btn {
		t.Fatal("button should keep its identity across re-renders")
	}
	if btn.TextContent() != "clicks 2" {
		t.Errorf("text = %q, want %q", btn.TextContent(), "clicks 2")
	}
	if n := btn.ListenerCount(); n != 1 {
		t.Errorf("listeners = %d, want 1", n)
	}
}

func TestEventHandlerRemoved(t *testing.T) {
	root, doc := newTestRoot(t)
	calls := 0

	mount(t, root, vdom.Button(vdom.OnClick(func() { calls++ })))
	btn := doc.Body().Children()[0]
	mount(t, root, vdom.Button())

	doc.Click(btn)
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
	if btn.ListenerCount() != 0 {
		t.Errorf("listeners = %d, want 0", btn.ListenerCount())
	}
}

func TestEventHandlerPanicRecovered(t *testing.T) {
	root, doc := newTestRoot(t)
	mount(t, root, vdom.Button(vdom.OnClick(func() { panic("boom") })))

	doc.Click(doc.Body().Children()[0])
}

func TestOnMountRunsOnTick(t *testing.T) {
	root, doc := newTestRoot(t)
	var log []string

	mount(t, root, vdom.Comp(vdom.Func(func() *vdom.VNode {
		vango.OnMount(func() vango.Cleanup {
			log = append(log, "mount")
			return func() { log = append(log, "cleanup") }
		})
		return vdom.Div()
	})))

	if len(log) != 0 {
		t.Fatalf("effect ran during Mount: %v", log)
	}
	if err := root.Tick(context.Background()); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if strings.Join(log, ",") != "mount" {
		t.Fatalf("log = %v, want [mount]", log)
	}

	root.Unmount()
	root.Unmount()
	if strings.Join(log, ",") != "mount,cleanup" {
		t.Errorf("log = %v, want [mount cleanup]", log)
	}
	if doc.Body().ChildCount() != 0 {
		t.Error("body should be empty after Unmount")
	}
	if err := root.Tick(context.Background()); !errors.Is(err, ErrUnmounted) {
		t.Errorf("Tick after Unmount = %v, want ErrUnmounted", err)
	}
}

func TestRemovedComponentIsDisposed(t *testing.T) {
	root, _ := newTestRoot(t)
	cleaned := 0
	child := vdom.Func(func() *vdom.VNode {
		vango.OnMount(func() vango.Cleanup {
			return func() { cleaned++ }
		})
		return vdom.Span()
	})

	mount(t, root, vdom.Div(child))
	settle(t, root)
	if root.Components() != 1 {
		t.Fatalf("components = %d, want 1", root.Components())
	}

	mount(t, root, vdom.Div())
	if cleaned != 1 {
		t.Errorf("cleanups = %d, want 1", cleaned)
	}
	if root.Components() != 0 {
		t.Errorf("components = %d, want 0", root.Components())
	}
}

func TestPortalNode(t *testing.T) {
	root, doc := newTestRoot(t)
	target := doc.CreateElement("aside")
	doc.Body().AppendChild(target)

	mount(t, root, vdom.Div(vdom.ID("app"), vdom.Portal(target, vdom.P("floating"))))

	app := doc.Body().Children()[1]
	if app.ChildCount() != 0 {
		t.Errorf("portal content rendered in place: %d children", app.ChildCount())
	}
	if target.TextContent() != "floating" {
		t.Errorf("target text = %q, want floating", target.TextContent())
	}
	if doc.Body().Children()[0] != target {
		t.Error("nodes the root does not own should stay in place")
	}

	mount(t, root, vdom.Div(vdom.ID("app")))
	if target.ChildCount() != 0 {
		t.Errorf("target children = %d, want 0 after removal", target.ChildCount())
	}
}

func TestPortalDefaultsToBody(t *testing.T) {
	doc := dom.NewDocument()
	app := doc.CreateElement("main")
	doc.Body().AppendChild(app)

	root, err := New(app, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer root.Unmount()

	mount(t, root, vdom.Portal(nil, vdom.Div(vdom.ID("layer"))))
	if got := doc.Body().Children(); len(got) != 2 || got[1].Tag != "div" {
		t.Errorf("body children = %v, want [main div]", got)
	}
}

func TestRefsAttachAfterCommit(t *testing.T) {
	root, doc := newTestRoot(t)
	ref := vango.NewRef[*dom.Node](nil)
	var inDocument bool
	seen := func(n *dom.Node) {
		if n != nil {
			inDocument = doc.Body().Contains(n)
		}
	}

	mount(t, root, vdom.Div(vdom.Ref(slot.ComposeRefs(seen, ref))))

	if !inDocument {
		t.Error("ref should see its node already in the document")
	}
	if ref.Current() != doc.Body().Children()[0] {
		t.Fatal("ref should hold the div")
	}

	root.Unmount()
	if ref.Current() != nil {
		t.Error("ref should be cleared on unmount")
	}
}

func TestComponentForwardsComposedProps(t *testing.T) {
	root, doc := newTestRoot(t)
	clicks := []string{}

	link := vdom.Func(func() *vdom.VNode {
		return vdom.A(
			vdom.Href("/docs"),
			vdom.Class("underline p-2"),
			vdom.OnClick(func() { clicks = append(clicks, "link") }),
		)
	})
	props := vdom.Props{
		"class":   "p-4 font-bold",
		"onclick": func() { clicks = append(clicks, "behavior") },
	}
	mount(t, root, slot.MustCompose("button", props, true, link))

	a := doc.Body().Children()[0]
	if a.Tag != "a" {
		t.Fatalf("tag = %q, want a", a.Tag)
	}
	if v, _ := a.Attr("class"); v != "font-bold underline p-2" {
		t.Errorf("class = %q, want %q", v, "font-bold underline p-2")
	}
	doc.Click(a)
	if strings.Join(clicks, ",") != "behavior,link" {
		t.Errorf("clicks = %v, want [behavior link]", clicks)
	}
}

func TestRenderPanicKeepsPreviousOutput(t *testing.T) {
	root, doc := newTestRoot(t)
	fail := false

	comp := vdom.Func(func() *vdom.VNode {
		if fail {
			panic("render failed")
		}
		return vdom.P("ok")
	})
	mount(t, root, vdom.Comp(comp))

	fail = true
	err := root.Mount(context.Background(), vdom.Comp(comp))
	if perrors.Code(err) != "E203" || !errors.Is(err, vango.ErrPanic) {
		t.Fatalf("Mount() error = %v, want E203 wrapping ErrPanic", err)
	}
	if doc.Body().TextContent() != "ok" {
		t.Errorf("body = %q, want previous output", doc.Body().TextContent())
	}
}

func TestRenderPanicKeepsCodedError(t *testing.T) {
	root, _ := newTestRoot(t)
	err := root.Mount(context.Background(), vdom.Comp(vdom.Func(func() *vdom.VNode {
		return slot.MustCompose("button", nil, true)
	})))
	if !errors.Is(err, slot.ErrContractViolation) || perrors.Code(err) != "E201" {
		t.Errorf("Mount() error = %v, want E201 contract violation", err)
	}
}

func TestSettleLimit(t *testing.T) {
	root, _ := newTestRoot(t, WithMaxSettleTicks(3))

	mount(t, root, vdom.Comp(vdom.Func(func() *vdom.VNode {
		n := vango.UseState(0)
		n.Update(func(v int) int { return v + 1 })
		return vdom.Div()
	})))

	ticks, err := root.Settle(context.Background())
	if !errors.Is(err, ErrSettleLimit) || perrors.Code(err) != "E205" {
		t.Errorf("Settle() error = %v, want E205", err)
	}
	if ticks != 3 {
		t.Errorf("ticks = %d, want 3", ticks)
	}
}

func TestOwnerDocumentInsideTree(t *testing.T) {
	restore := dom.SetGlobal(nil)
	defer restore()

	root, doc := newTestRoot(t)
	var got *dom.Document
	var gotErr error

	mount(t, root, vdom.Comp(vdom.Func(func() *vdom.VNode {
		got, gotErr = OwnerDocument(nil)
		return nil
	})))

	if gotErr != nil || got != doc {
		t.Errorf("OwnerDocument() = %p, %v; want root document", got, gotErr)
	}

	if _, err := OwnerDocument(nil); !errors.Is(err, dom.ErrMissingHostEnvironment) {
		t.Errorf("OwnerDocument() outside tree error = %v", err)
	}
	other := dom.NewDocument()
	if d, _ := OwnerDocument(other); d != other {
		t.Error("explicit document should win")
	}
}

// shrinking calls one hook fewer after its first render.
type shrinking struct {
	renders *int
}

func (s *shrinking) Render() *vdom.VNode {
	*s.renders++
	vango.UseState(0)
	if *s.renders == 1 {
		vango.UseState("extra")
	}
	return vdom.Span("x")
}

func TestDebugIsScopedToRoot(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		wantErr bool
	}{
		{"debug root", true, true},
		{"plain root", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, _ := newTestRoot(t, WithDebug(tt.debug))
			renders := 0
			tree := func() *vdom.VNode { return vdom.Comp(&shrinking{renders: &renders}) }

			mount(t, root, tree())
			err := root.Mount(context.Background(), tree())
			if gotErr := errors.Is(err, vango.ErrHookOrder); gotErr != tt.wantErr {
				t.Errorf("Mount() error = %v, want hook order error %v", err, tt.wantErr)
			}
			if vango.DebugMode {
				t.Error("WithDebug should not enable debug mode process-wide")
			}
		})
	}
}
