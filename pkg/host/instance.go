package host

import (
	"fmt"
	"reflect"

	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/slot"
	"github.com/vango-dev/primitives/pkg/vango"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// instance is the mounted counterpart of a VNode.
type instance struct {
	kind  vdom.VKind
	tag   string
	key   string
	depth int

	// node is the dom node of element and text instances.
	node *dom.Node

	// children holds the mounted children. A component has at most one:
	// its rendered output.
	children []*instance

	// Element state.
	attrs     map[string]struct{}
	handlers  map[string]any
	listeners map[string]*dom.Listener
	ref       any

	// scope is the Owner of the nearest enclosing component. Event
	// handlers run with it as the current owner.
	scope *vango.Owner

	// Component state.
	comp      vdom.Component
	compType  reflect.Type
	owner     *vango.Owner
	forwarded vdom.Props
	output    *vdom.VNode

	// Portal state.
	container *dom.Node
	placed    []*dom.Node

	unmounted bool
}

// name identifies a component instance in logs and errors.
func (inst *instance) name() string {
	if inst.comp == nil {
		return inst.kind.String()
	}
	return fmt.Sprintf("%T", inst.comp)
}

// matches reports whether v can update inst in place.
func (r *Root) matches(inst *instance, v *vdom.VNode) bool {
	if inst.kind != v.Kind || inst.key != v.Key {
		return false
	}
	switch v.Kind {
	case vdom.KindElement:
		return inst.tag == v.Tag
	case vdom.KindComponent:
		return inst.compType == reflect.TypeOf(v.Comp)
	case vdom.KindPortal:
		return inst.container == r.portalContainer(v)
	}
	return true
}

// reconcile updates old to match v, replacing it when it cannot be updated
// in place. scope is the Owner of the nearest enclosing component.
func (r *Root) reconcile(old *instance, v *vdom.VNode, scope *vango.Owner, depth int) *instance {
	if v == nil {
		r.unmount(old)
		return nil
	}
	if old != nil && !r.matches(old, v) {
		r.unmount(old)
		old = nil
	}
	if old == nil {
		return r.create(v, scope, depth)
	}
	r.update(old, v, scope)
	return old
}

func (r *Root) create(v *vdom.VNode, scope *vango.Owner, depth int) *instance {
	inst := &instance{
		kind:  v.Kind,
		tag:   v.Tag,
		key:   v.Key,
		depth: depth,
	}

	switch v.Kind {
	case vdom.KindText:
		inst.node = r.doc.CreateTextNode(v.Text)

	case vdom.KindElement:
		inst.node = r.doc.CreateElement(v.Tag)
		inst.scope = scope
		inst.attrs = make(map[string]struct{})
		inst.handlers = make(map[string]any)
		inst.listeners = make(map[string]*dom.Listener)
		r.applyProps(inst, v.Props)
		inst.children = r.reconcileChildren(nil, v.Children, scope, depth+1)
		if inst.ref != nil {
			r.pendingRefs = append(r.pendingRefs, inst)
		}

	case vdom.KindFragment:
		inst.children = r.reconcileChildren(nil, v.Children, scope, depth+1)

	case vdom.KindPortal:
		inst.container = r.portalContainer(v)
		inst.children = r.reconcileChildren(nil, v.Children, scope, depth+1)

	case vdom.KindComponent:
		inst.comp = v.Comp
		inst.compType = reflect.TypeOf(v.Comp)
		inst.forwarded = v.Props
		inst.owner = vango.NewOwner(scope)
		inst.owner.SetInvalidator(func() { r.invalidate(inst) })
		r.components.Add(1)
		r.renderInto(inst)
	}
	return inst
}

func (r *Root) update(inst *instance, v *vdom.VNode, scope *vango.Owner) {
	switch v.Kind {
	case vdom.KindText:
		if inst.node.Text != v.Text {
			inst.node.Text = v.Text
		}

	case vdom.KindElement:
		inst.scope = scope
		r.applyProps(inst, v.Props)
		inst.children = r.reconcileChildren(inst.children, v.Children, scope, inst.depth+1)

	case vdom.KindFragment, vdom.KindPortal:
		inst.children = r.reconcileChildren(inst.children, v.Children, scope, inst.depth+1)

	case vdom.KindComponent:
		inst.comp = v.Comp
		inst.forwarded = v.Props
		r.renderInto(inst)
	}
}

// reconcileChildren matches keyed children by key and unkeyed children by
// position among the unkeyed.
func (r *Root) reconcileChildren(olds []*instance, vs []*vdom.VNode, scope *vango.Owner, depth int) []*instance {
	keyed := make(map[string]*instance)
	var unkeyed []*instance
	for _, o := range olds {
		if o.key != "" {
			keyed[o.key] = o
		} else {
			unkeyed = append(unkeyed, o)
		}
	}

	out := make([]*instance, 0, len(vs))
	next := 0
	for _, v := range vs {
		if v == nil {
			continue
		}
		var old *instance
		if v.Key != "" {
			old = keyed[v.Key]
			delete(keyed, v.Key)
		} else if next < len(unkeyed) {
			old = unkeyed[next]
			next++
		}
		if inst := r.reconcile(old, v, scope, depth); inst != nil {
			out = append(out, inst)
		}
	}

	for _, o := range keyed {
		r.unmount(o)
	}
	for _, o := range unkeyed[next:] {
		r.unmount(o)
	}
	return out
}

// renderInto renders a component and reconciles its output.
func (r *Root) renderInto(inst *instance) {
	delete(r.dirty, inst)
	out := r.renderComponent(inst)

	var old *instance
	if len(inst.children) > 0 {
		old = inst.children[0]
	}
	child := r.reconcile(old, out, inst.owner, inst.depth+1)
	if child == nil {
		inst.children = nil
	} else {
		inst.children = []*instance{child}
	}
}

// renderComponent runs the component's render function with its Owner
// current. A panic is recorded and the previous output is reused.
func (r *Root) renderComponent(inst *instance) (out *vdom.VNode) {
	r.cfg.Metrics.incRenders()
	defer func() {
		if rec := recover(); rec != nil {
			err := renderPanic(rec, inst.name())
			r.errs = append(r.errs, err)
			r.cfg.Metrics.incRenderPanics()
			r.logger.Error("host: component panicked", "component", inst.name(), "error", err)
			out = inst.output
		}
	}()

	inst.owner.StartRender()
	vango.WithOwner(inst.owner, func() {
		out = inst.comp.Render()
	})
	inst.owner.EndRender()

	out = forwardProps(out, inst.forwarded)
	inst.output = out
	return out
}

// forwardProps merges props carried on a component node onto the root
// element the component rendered, with the rendered props taking priority.
func forwardProps(out *vdom.VNode, props vdom.Props) *vdom.VNode {
	if out == nil || len(props) == 0 {
		return out
	}
	if out.Kind != vdom.KindElement && out.Kind != vdom.KindComponent {
		return out
	}
	n := out.Clone()
	n.Props = slot.MergeProps(props, out.Props)
	return n
}

// unmount releases inst and its subtree: listeners are removed, refs
// detached, nodes removed and component Owners disposed.
func (r *Root) unmount(inst *instance) {
	if inst == nil || inst.unmounted {
		return
	}
	inst.unmounted = true
	delete(r.dirty, inst)

	for i := len(inst.children) - 1; i >= 0; i-- {
		r.unmount(inst.children[i])
	}
	inst.children = nil

	switch inst.kind {
	case vdom.KindElement:
		for name, l := range inst.listeners {
			inst.node.RemoveEventListener(name, l, dom.Options{})
		}
		inst.listeners = nil
		vdom.InvokeRef(inst.ref, nil)
		inst.node.Remove()

	case vdom.KindText:
		inst.node.Remove()

	case vdom.KindPortal:
		for _, n := range inst.placed {
			if n.Parent() == inst.container {
				n.Remove()
			}
		}
		inst.placed = nil

	case vdom.KindComponent:
		inst.owner.Dispose()
		r.components.Add(-1)
	}
}

// portalContainer resolves a portal node's container, defaulting to the
// root document's body.
func (r *Root) portalContainer(v *vdom.VNode) *dom.Node {
	if v.Container != nil {
		return v.Container
	}
	return r.doc.Body()
}
