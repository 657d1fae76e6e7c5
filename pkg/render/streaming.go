package render

import (
	"io"
	"net/http"
)

// StreamingRenderer wraps Renderer with chunked output support.
// It flushes after the head and after the body so the browser can start
// fetching stylesheets before the body is written.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer that writes to w. If w
// implements http.Flusher, content is flushed after each section.
func NewStreamingRenderer(w io.Writer, config RendererConfig) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: NewRenderer(config),
		flusher:  flusher,
		w:        w,
	}
}

// RenderPage renders a complete HTML document with incremental flushing.
func (s *StreamingRenderer) RenderPage(page PageData) error {
	sw := &stickyWriter{w: s.w}

	s.writeDocumentStart(sw, page)
	s.renderHead(sw, page)
	s.flush(sw)

	s.renderBody(sw, page)
	sw.writeString("</html>\n")
	s.flush(sw)

	return sw.err
}

// flush flushes the writer if it supports flushing and nothing failed.
func (s *StreamingRenderer) flush(sw *stickyWriter) {
	if s.flusher != nil && sw.err == nil {
		s.flusher.Flush()
	}
}

// FlushableWriter wraps an io.Writer and counts flushes. It is useful for
// testing streaming behavior without an http.ResponseWriter.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}
