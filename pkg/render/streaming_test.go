package render

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vango-dev/primitives/pkg/vdom"
)

func TestStreamingRendererRenderPage(t *testing.T) {
	w := httptest.NewRecorder()
	body := mountBody(t, vdom.Div(vdom.Text("Streamed")))

	if err := NewStreamingRenderer(w, RendererConfig{}).RenderPage(PageData{Body: body, Title: "Stream"}); err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}

	html := w.Body.String()
	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Errorf("missing doctype:\n%s", html)
	}
	if !strings.Contains(html, "<div>Streamed</div>") {
		t.Errorf("missing body content:\n%s", html)
	}
	if !w.Flushed {
		t.Error("recorder was not flushed")
	}
}

func TestStreamingRendererFlushes(t *testing.T) {
	var buf bytes.Buffer
	fw := &FlushableWriter{Writer: &buf}

	if err := NewStreamingRenderer(fw, RendererConfig{}).RenderPage(PageData{Title: "Flush"}); err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	if fw.FlushCount != 2 {
		t.Errorf("FlushCount = %d, want 2", fw.FlushCount)
	}
}

func TestStreamingRendererWithoutFlusher(t *testing.T) {
	var buf bytes.Buffer
	if err := NewStreamingRenderer(&buf, RendererConfig{}).RenderPage(PageData{}); err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	if !strings.HasSuffix(buf.String(), "</html>\n") {
		t.Errorf("document not closed:\n%s", buf.String())
	}
}
