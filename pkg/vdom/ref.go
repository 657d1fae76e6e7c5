package vdom

import "github.com/vango-dev/primitives/pkg/dom"

// NodeAttacher receives the host node a ref is attached to, and nil when
// it is detached.
type NodeAttacher interface {
	AttachNode(n *dom.Node)
}

// RefFunc is a callback ref.
type RefFunc func(n *dom.Node)

// AttachNode implements NodeAttacher.
func (f RefFunc) AttachNode(n *dom.Node) {
	if f != nil {
		f(n)
	}
}

// InvokeRef attaches n to ref (nil detaches) and reports whether ref was a
// supported shape.
func InvokeRef(ref any, n *dom.Node) bool {
	switch r := ref.(type) {
	case nil:
		return false
	case func(*dom.Node):
		if r == nil {
			return false
		}
		r(n)
	case NodeAttacher:
		r.AttachNode(n)
	default:
		return false
	}
	return true
}
