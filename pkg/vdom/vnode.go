package vdom

import (
	"strings"
	"unicode"

	"github.com/vango-dev/primitives/pkg/dom"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
	KindPortal                 // Children rendered into another container
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindPortal:
		return "Portal"
	default:
		return "Unknown"
	}
}

// Reserved prop keys.
const (
	PropRef   = "ref"
	PropClass = "class"
	PropStyle = "style"
	PropKey   = "key"
)

// VNode is the virtual DOM node.
type VNode struct {
	Kind      VKind     // Node type
	Tag       string    // Element tag name (e.g., "div")
	Props     Props     // Attributes and event handlers
	Children  []*VNode  // Child nodes
	Key       string    // Reconciliation key
	Text      string    // For KindText
	Comp      Component // For KindComponent
	Container *dom.Node // For KindPortal
}

// Props holds attributes and event handlers.
type Props map[string]any

// Clone returns a shallow copy of p. A nil receiver yields an empty map.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// IsEventKey reports whether key names an event handler: "on" followed by
// a letter, as in "onclick" or "onClick".
func IsEventKey(key string) bool {
	if len(key) <= 2 || !strings.EqualFold(key[:2], "on") {
		return false
	}
	return unicode.IsLetter(rune(key[2]))
}

// EventName returns the lower-case DOM event type for an event key
// ("onClick" → "click").
func EventName(key string) string {
	if !IsEventKey(key) {
		return ""
	}
	return strings.ToLower(key[2:])
}

// IsInteractive returns true if this node has event handlers.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if IsEventKey(key) {
			return true
		}
	}
	return false
}

// Clone returns a copy of v with its own Props map and child slice.
// Children themselves are shared.
func (v *VNode) Clone() *VNode {
	if v == nil {
		return nil
	}
	c := *v
	if v.Props != nil {
		c.Props = v.Props.Clone()
	}
	if v.Children != nil {
		c.Children = append([]*VNode(nil), v.Children...)
	}
	return &c
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "onkeydown", etc.
	Handler any    // func() or func(*dom.Event)
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}

// Comp wraps a component in a KindComponent node.
func Comp(c Component) *VNode {
	if c == nil {
		return nil
	}
	return &VNode{Kind: KindComponent, Comp: c}
}
