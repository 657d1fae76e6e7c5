package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// EventMarkers adds a data-on-<type> attribute for every event type an
	// element has listeners for.
	EventMarkers bool
}

// Renderer serializes host node trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders n and its subtree to an HTML string.
func (r *Renderer) RenderToString(n *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams n and its subtree to w.
func (r *Renderer) RenderToWriter(w io.Writer, n *dom.Node) error {
	sw := &stickyWriter{w: w}
	r.renderNode(sw, n, 0)
	return sw.err
}

// RenderChildren streams the children of n without n's own tags, like
// innerHTML.
func (r *Renderer) RenderChildren(w io.Writer, n *dom.Node) error {
	if n == nil {
		return nil
	}
	sw := &stickyWriter{w: w}
	for _, c := range n.Children() {
		r.renderNode(sw, c, 0)
	}
	return sw.err
}

// renderNode dispatches rendering based on node type.
func (r *Renderer) renderNode(w *stickyWriter, n *dom.Node, depth int) {
	if n == nil || w.err != nil {
		return
	}

	switch n.Type {
	case dom.ElementNode:
		r.renderElement(w, n, depth)
	case dom.TextNode:
		w.writeString(escapeHTML(n.Text))
	default:
		w.fail(fmt.Errorf("render: unknown node type %d", n.Type))
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w *stickyWriter, n *dom.Node, depth int) {
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	w.writeString("<" + n.Tag)
	r.renderAttributes(w, n)
	w.writeString(">")

	if vdom.IsVoidElement(n.Tag) {
		if r.config.Pretty {
			w.writeString("\n")
		}
		return
	}

	children := n.Children()
	hasBlockChildren := len(children) > 0 && !isInlineElement(n.Tag)
	if r.config.Pretty && hasBlockChildren {
		w.writeString("\n")
	}

	for _, c := range children {
		if r.config.Pretty && hasBlockChildren && c.Type == dom.TextNode {
			r.writeIndent(w, depth+1)
			r.renderNode(w, c, depth+1)
			w.writeString("\n")
			continue
		}
		r.renderNode(w, c, depth+1)
	}

	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}
	w.writeString("</" + n.Tag + ">")
	if r.config.Pretty {
		w.writeString("\n")
	}
}

// renderAttributes renders attributes in sorted order. Boolean attributes
// with an empty value are written in their short form.
func (r *Renderer) renderAttributes(w *stickyWriter, n *dom.Node) {
	for _, name := range n.AttrNames() {
		value, _ := n.Attr(name)
		if value == "" && vdom.IsBooleanAttr(name) {
			w.writeString(" " + name)
			continue
		}
		w.writeString(" " + name + `="` + escapeAttr(value) + `"`)
	}

	if !r.config.EventMarkers {
		return
	}
	for _, typ := range n.EventTypes() {
		w.writeString(` data-on-` + typ + `="true"`)
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w *stickyWriter, depth int) {
	for i := 0; i < depth; i++ {
		w.writeString(r.config.Indent)
	}
}

// stickyWriter remembers the first write error and skips later writes.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) writeString(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

func (s *stickyWriter) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}
