package slot

import (
	"errors"

	perrors "github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// ErrContractViolation is returned when asChild is set and the children are
// not exactly one element or component node.
var ErrContractViolation = errors.New("slot: asChild requires exactly one element child")

// ChildrenProp is the prop key a behavioral prop set uses to replace the
// children of the rendered element.
const ChildrenProp = "children"

// Target is the resolved render target of a composition. It is either a
// DefaultElement or a SubstitutedElement.
type Target interface {
	// Node builds the element to render.
	Node() *vdom.VNode

	target()
}

// DefaultElement renders the behavioral props on a fresh element.
type DefaultElement struct {
	Tag      string
	Props    vdom.Props
	Children []*vdom.VNode
}

func (DefaultElement) target() {}

// Node implements Target.
func (d DefaultElement) Node() *vdom.VNode {
	return &vdom.VNode{
		Kind:     vdom.KindElement,
		Tag:      d.Tag,
		Props:    d.Props.Clone(),
		Children: append([]*vdom.VNode{}, d.Children...),
	}
}

// SubstitutedElement renders a caller-supplied element with the merged props.
type SubstitutedElement struct {
	Child *vdom.VNode
	Props vdom.Props

	// Children replaces the child's children when non-nil.
	Children []*vdom.VNode
}

func (SubstitutedElement) target() {}

// Node implements Target. The result keeps the child's kind, tag, key and
// component. For component children the merged props ride on the component
// node and the host forwards them to the component's rendered root; replacement
// children only apply to element children.
func (s SubstitutedElement) Node() *vdom.VNode {
	n := s.Child.Clone()
	n.Props = s.Props.Clone()
	if s.Children != nil && n.Kind == vdom.KindElement {
		n.Children = append([]*vdom.VNode{}, s.Children...)
	}
	return n
}

// Resolve picks the render target. children accepts anything vdom element
// constructors accept; nils are dropped before counting.
func Resolve(tag string, props vdom.Props, asChild bool, children ...any) (Target, error) {
	own, replacement := splitChildren(props)
	nodes := vdom.Nodes(children...)

	if !asChild {
		if replacement != nil {
			nodes = replacement
		}
		return DefaultElement{Tag: tag, Props: own, Children: nodes}, nil
	}

	if len(nodes) != 1 {
		return nil, contractViolation("got %d children", len(nodes))
	}
	child := nodes[0]
	if child.Kind != vdom.KindElement && child.Kind != vdom.KindComponent {
		return nil, contractViolation("got a %s node", child.Kind)
	}

	return SubstitutedElement{
		Child:    child,
		Props:    MergeProps(own, child.Props),
		Children: replacement,
	}, nil
}

// Compose resolves the render target and builds its node.
func Compose(tag string, props vdom.Props, asChild bool, children ...any) (*vdom.VNode, error) {
	t, err := Resolve(tag, props, asChild, children...)
	if err != nil {
		return nil, err
	}
	return t.Node(), nil
}

// MustCompose is like Compose but panics on error. It is meant for render
// functions, where the host recovers the panic and reports it.
func MustCompose(tag string, props vdom.Props, asChild bool, children ...any) *vdom.VNode {
	n, err := Compose(tag, props, asChild, children...)
	if err != nil {
		panic(err)
	}
	return n
}

// splitChildren separates ChildrenProp from the rest of props.
func splitChildren(props vdom.Props) (vdom.Props, []*vdom.VNode) {
	own := props.Clone()
	v, ok := own[ChildrenProp]
	if !ok {
		return own, nil
	}
	delete(own, ChildrenProp)
	return own, vdom.Nodes(v)
}

func contractViolation(format string, args ...any) error {
	return perrors.New("E201").
		Wrap(ErrContractViolation).
		WithComponent("slot.Compose").
		WithDetailf(format, args...)
}
