package dom

import (
	"sort"
	"strings"
)

// NodeType discriminates Node kinds.
type NodeType uint8

const (
	ElementNode NodeType = iota + 1
	TextNode
)

// Node is an element or text node.
type Node struct {
	EventTarget

	Type NodeType
	Tag  string // Element tag name
	Text string // Text content for TextNode

	attrs    map[string]string
	children []*Node
	parent   *Node
	doc      *Document
}

// OwnerDocument returns the document that created this node.
func (n *Node) OwnerDocument() *Document {
	return n.doc
}

// Parent returns the parent node, or nil if detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Attr returns the attribute value and whether it is set.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// SetAttr sets an attribute.
func (n *Node) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// RemoveAttr removes an attribute.
func (n *Node) RemoveAttr(key string) {
	delete(n.attrs, key)
}

// AttrNames returns attribute names in sorted order.
func (n *Node) AttrNames() []string {
	names := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// AppendChild appends child, detaching it from any previous parent first.
func (n *Node) AppendChild(child *Node) {
	if child == nil || child == n {
		return
	}
	child.Remove()
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild removes child and reports whether it was present.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// SetChildren replaces the child list with children, in order.
func (n *Node) SetChildren(children []*Node) {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = n.children[:0]
	for _, c := range children {
		n.AppendChild(c)
	}
}

// Remove detaches the node from its parent. It is a no-op when detached.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of the subtree.
func (n *Node) TextContent() string {
	if n.Type == TextNode {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// ancestors returns the parent chain, nearest first.
func (n *Node) ancestors() []*Node {
	var out []*Node
	for cur := n.parent; cur != nil; cur = cur.parent {
		out = append(out, cur)
	}
	return out
}
