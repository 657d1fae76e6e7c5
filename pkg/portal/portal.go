// Package portal renders children into a container outside the parent's
// subtree.
//
// A portal mounts in two phases. Its first render produces nothing; the
// mount effect that runs after that render is committed flips it to
// mounted, and the re-render in the same tick inserts the children into the
// container. This keeps the first commit free of any container access, so
// the same tree can be rendered where no container exists yet.
//
//	portal.New(nil, dialogContent) // into the owner document body
//	portal.New(overlayRoot, toast) // into a chosen node
//	portal.Open(content, nil)      // same as New(nil, content)
//
// Unmounting the portal removes everything it inserted. Mounting it again
// starts over from the empty first phase.
package portal

import (
	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/host"
	"github.com/vango-dev/primitives/pkg/vango"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// Layer is the portal component.
type Layer struct {
	// Container receives the children. Nil means the owner document body.
	Container *dom.Node

	// ForceMount skips the empty first phase.
	ForceMount bool

	Children []*vdom.VNode
}

// Option configures New.
type Option func(*Layer)

// ForceMount renders the children on the first commit.
func ForceMount() Option {
	return func(l *Layer) {
		l.ForceMount = true
	}
}

// New returns a portal node. children accepts anything vdom element
// constructors accept; Options among them configure the portal.
func New(container *dom.Node, children ...any) *vdom.VNode {
	l := &Layer{Container: container}
	var rest []any
	for _, c := range children {
		if opt, ok := c.(Option); ok {
			opt(l)
			continue
		}
		rest = append(rest, c)
	}
	l.Children = vdom.Nodes(rest...)
	return vdom.Comp(l)
}

// Open is New with the arguments in content-first order. children accepts
// a node, a slice of nodes or []any.
func Open(children any, container *dom.Node) *vdom.VNode {
	return New(container, children)
}

// Render implements vdom.Component.
func (l *Layer) Render() *vdom.VNode {
	mounted := vango.UseState(l.ForceMount)
	vango.OnMount(func() vango.Cleanup {
		mounted.Set(true)
		return nil
	})

	if !mounted.Get() {
		return nil
	}

	container, err := host.DefaultContainer(l.Container)
	if err != nil {
		panic(err)
	}
	return vdom.Portal(container, toAny(l.Children)...)
}

func toAny(nodes []*vdom.VNode) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}
