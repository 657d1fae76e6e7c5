// Package render serializes host node trees to HTML.
//
// It works on the *dom.Node trees a host.Root maintains, so what it prints
// is exactly what is mounted, portal content included:
//
//   - Text and attribute escaping
//   - Void elements without closing tags (input, br, img, ...)
//   - Short-form boolean attributes (disabled, hidden, ...)
//   - Optional data-on-<type> markers for elements with listeners
//   - Full pages with DOCTYPE, head and body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// To render a complete document around a mounted body:
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Body:  root.Document().Body(),
//	    Title: "Dialog",
//	    Dir:   "rtl",
//	})
//
// # Streaming
//
// StreamingRenderer flushes after the head and again after the body when
// the writer is an http.Flusher:
//
//	sr := render.NewStreamingRenderer(w, config)
//	err := sr.RenderPage(page)
package render
