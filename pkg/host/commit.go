package host

import (
	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// commit places every mounted node in its container and attaches refs of
// newly created elements.
func (r *Root) commit() {
	r.place(r.container, &r.placed, hostNodes(nil, r.tree))
	r.layout(r.tree)

	refs := r.pendingRefs
	r.pendingRefs = nil
	for _, inst := range refs {
		if !inst.unmounted {
			vdom.InvokeRef(inst.ref, inst.node)
		}
	}
	r.cfg.Metrics.incCommits()
}

// layout orders the children of every element and portal in the subtree.
func (r *Root) layout(inst *instance) {
	if inst == nil {
		return
	}
	switch inst.kind {
	case vdom.KindElement:
		want := childNodes(inst)
		if !sameNodes(inst.node.Children(), want) {
			inst.node.SetChildren(want)
		}
	case vdom.KindPortal:
		r.place(inst.container, &inst.placed, childNodes(inst))
	}
	for _, c := range inst.children {
		r.layout(c)
	}
}

// place syncs the nodes a root or portal owns inside a shared container.
// Nodes it does not own are left where they are.
func (r *Root) place(container *dom.Node, placed *[]*dom.Node, want []*dom.Node) {
	keep := make(map[*dom.Node]bool, len(want))
	for _, n := range want {
		keep[n] = true
	}
	for _, n := range *placed {
		if !keep[n] && n.Parent() == container {
			n.Remove()
		}
	}

	var current []*dom.Node
	for _, n := range container.Children() {
		if keep[n] {
			current = append(current, n)
		}
	}
	if !sameNodes(current, want) {
		for _, n := range want {
			container.AppendChild(n)
		}
	}
	*placed = want
}

// hostNodes appends the dom nodes inst contributes to its parent. Portals
// contribute nothing in place.
func hostNodes(out []*dom.Node, inst *instance) []*dom.Node {
	if inst == nil {
		return out
	}
	switch inst.kind {
	case vdom.KindElement, vdom.KindText:
		return append(out, inst.node)
	case vdom.KindPortal:
		return out
	}
	for _, c := range inst.children {
		out = hostNodes(out, c)
	}
	return out
}

func childNodes(inst *instance) []*dom.Node {
	var out []*dom.Node
	for _, c := range inst.children {
		out = hostNodes(out, c)
	}
	return out
}

func sameNodes(a, b []*dom.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
