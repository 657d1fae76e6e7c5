package render

import (
	"io"

	"github.com/vango-dev/primitives/pkg/dom"
)

// PageData contains everything needed to render a complete HTML document.
type PageData struct {
	// Body is the document body. Its attributes and children are rendered
	// inside the page's body element.
	Body *dom.Node

	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Dir is the dir attribute for the html element. Omitted when empty.
	Dir string

	Meta        []MetaTag
	Links       []LinkTag
	StyleSheets []string

	// Styles are inline CSS blocks. They are written verbatim.
	Styles []string

	// Scripts are inline script blocks written verbatim at the end of the
	// body.
	Scripts []string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string
	Content   string
	Property  string
	HTTPEquiv string
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel  string
	Href string
	Type string
}

// RenderPage renders a complete HTML document to w.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	sw := &stickyWriter{w: w}
	r.writeDocumentStart(sw, page)
	r.renderHead(sw, page)
	r.renderBody(sw, page)
	sw.writeString("</html>\n")
	return sw.err
}

func (r *Renderer) writeDocumentStart(w *stickyWriter, page PageData) {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}
	w.writeString("<!DOCTYPE html>\n")
	w.writeString(`<html lang="` + escapeAttr(lang) + `"`)
	if page.Dir != "" {
		w.writeString(` dir="` + escapeAttr(page.Dir) + `"`)
	}
	w.writeString(">\n")
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w *stickyWriter, page PageData) {
	w.writeString("<head>\n")
	w.writeString(`  <meta charset="utf-8">` + "\n")
	w.writeString(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")

	if page.Title != "" {
		w.writeString("  <title>" + escapeHTML(page.Title) + "</title>\n")
	}

	for _, meta := range page.Meta {
		w.writeString("  <meta")
		writeAttrIf(w, "name", meta.Name)
		writeAttrIf(w, "property", meta.Property)
		writeAttrIf(w, "http-equiv", meta.HTTPEquiv)
		writeAttrIf(w, "content", meta.Content)
		w.writeString(">\n")
	}

	for _, link := range page.Links {
		w.writeString("  <link")
		writeAttrIf(w, "rel", link.Rel)
		writeAttrIf(w, "href", link.Href)
		writeAttrIf(w, "type", link.Type)
		w.writeString(">\n")
	}

	for _, href := range page.StyleSheets {
		w.writeString(`  <link rel="stylesheet" href="` + escapeAttr(href) + `">` + "\n")
	}

	for _, style := range page.Styles {
		w.writeString("  <style>" + style + "</style>\n")
	}

	w.writeString("</head>\n")
}

// renderBody renders the body element with the attributes and children of
// page.Body.
func (r *Renderer) renderBody(w *stickyWriter, page PageData) {
	w.writeString("<body")
	if page.Body != nil {
		r.renderAttributes(w, page.Body)
	}
	w.writeString(">\n")

	if page.Body != nil {
		for _, c := range page.Body.Children() {
			r.renderNode(w, c, 0)
		}
		if !r.config.Pretty && page.Body.ChildCount() > 0 {
			w.writeString("\n")
		}
	}

	for _, script := range page.Scripts {
		w.writeString("<script>" + script + "</script>\n")
	}

	w.writeString("</body>\n")
}

func writeAttrIf(w *stickyWriter, name, value string) {
	if value != "" {
		w.writeString(" " + name + `="` + escapeAttr(value) + `"`)
	}
}
