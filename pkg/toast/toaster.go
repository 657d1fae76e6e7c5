package toast

import (
	"strconv"

	"github.com/vango-dev/primitives/pkg/classmerge"
	"github.com/vango-dev/primitives/pkg/direction"
	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/escape"
	"github.com/vango-dev/primitives/pkg/portal"
	"github.com/vango-dev/primitives/pkg/vango"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// ToasterOption configures a Toaster.
type ToasterOption func(*toaster)

// WithContainer portals the toasts into container instead of the body.
func WithContainer(container *dom.Node) ToasterOption {
	return func(t *toaster) { t.container = container }
}

// OnAction is called when a toast's action button is clicked, before the
// toast is dismissed.
func OnAction(fn func(Toast)) ToasterOption {
	return func(t *toaster) { t.onAction = fn }
}

// WithClass adds classes to the toast list.
func WithClass(className string) ToasterOption {
	return func(t *toaster) { t.className = className }
}

// DismissOnEscape controls whether Escape dismisses the newest toast.
// It defaults to true.
func DismissOnEscape(dismiss bool) ToasterOption {
	return func(t *toaster) { t.escape = dismiss }
}

type toaster struct {
	queue     *Queue
	container *dom.Node
	onAction  func(Toast)
	className string
	escape    bool
}

// Toaster renders the toasts of q as a live region portalled into the
// body. It re-renders whenever q changes.
func Toaster(q *Queue, opts ...ToasterOption) *vdom.VNode {
	t := &toaster{queue: q, escape: true}
	for _, opt := range opts {
		opt(t)
	}
	return vdom.Comp(t)
}

const listBase = "fixed bottom-0 end-0 z-[100] flex max-h-screen w-full flex-col gap-2 p-4 sm:max-w-[420px]"

// Render implements vdom.Component.
func (t *toaster) Render() *vdom.VNode {
	q := t.queue
	version := vango.UseState(0)
	vango.OnMount(func() vango.Cleanup {
		return q.Subscribe(func() {
			version.Update(func(v int) int { return v + 1 })
		})
	})
	escape.UseEscapeKeydown(func(*dom.Event) {
		if t.escape {
			q.DismissNewest()
		}
	})
	dir := direction.Use()

	items := make([]any, 0, q.Len())
	for _, item := range q.Toasts() {
		items = append(items, t.item(item))
	}

	return portal.New(t.container, vdom.Ol(
		vdom.Role("region"),
		vdom.AriaLabel("Notifications"),
		vdom.AriaLive("polite"),
		vdom.Dir(dir.String()),
		vdom.Class(classmerge.Merge(listBase, t.className)),
		vdom.Data("toaster", ""),
		items,
	))
}

func (t *toaster) item(item Toast) *vdom.VNode {
	q := t.queue
	id := strconv.FormatUint(item.ID, 10)

	children := []any{
		vdom.Key(id),
		vdom.Role("status"),
		vdom.Data("level", string(item.Level)),
		vdom.Data("toast-id", id),
	}
	if item.Title != "" {
		children = append(children, vdom.Strong(vdom.Text(item.Title)))
	}
	children = append(children, vdom.P(vdom.Text(item.Message)))
	if item.ActionLabel != "" {
		children = append(children, vdom.Button(
			vdom.Data("toast-action", item.ActionID),
			vdom.OnClick(func() {
				if t.onAction != nil {
					t.onAction(item)
				}
				q.Dismiss(item.ID)
			}),
			vdom.Text(item.ActionLabel),
		))
	}
	children = append(children, vdom.Button(
		vdom.AriaLabel("Dismiss"),
		vdom.Data("toast-dismiss", ""),
		vdom.OnClick(func() { q.Dismiss(item.ID) }),
		vdom.Span(vdom.AriaHidden(true), vdom.Text("×")),
	))
	return vdom.Li(children...)
}
