package preview

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/primitives/internal/demo"
	perrors "github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/direction"
	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/host"
	"github.com/vango-dev/primitives/pkg/middleware"
	"github.com/vango-dev/primitives/pkg/render"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	doc := dom.NewDocument()
	root, err := host.New(nil, host.WithDocument(doc), host.WithLogger(s.logger))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	defer root.Unmount()

	if err := root.Mount(r.Context(), demo.Index(func(name string) string { return "/demo/" + name })); err != nil {
		s.fail(w, r, err)
		return
	}

	s.writePage(w, r, render.PageData{
		Body:        doc.Body(),
		Title:       "primitives",
		Dir:         s.config.Direction().String(),
		StyleSheets: s.config.Render.StyleSheets,
	})
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	opts, err := s.requestOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := demo.Run(r.Context(), name, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	defer res.Close()

	middleware.SpanFromContext(r.Context()).SetAttributes(demoAttrs(name, opts.Dir, res.Ticks)...)

	page := render.PageData{
		Body:        res.Document.Body(),
		Title:       res.Demo.Title + " · primitives",
		Dir:         opts.Dir.String(),
		StyleSheets: s.config.Render.StyleSheets,
		Meta:        []render.MetaTag{{Name: "description", Content: res.Demo.Description}},
	}
	if r.URL.Query().Get("live") != "" {
		page.Scripts = []string{liveClientScript}
	}
	s.writePage(w, r, page)
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	opts, err := s.requestOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	name := chi.URLParam(r, "name")
	// The session outlives the request context once upgraded.
	if err := s.live.Serve(context.WithoutCancel(r.Context()), w, r, name, opts); err != nil {
		s.fail(w, r, err)
	}
}

// requestOptions applies query overrides to the configured demo options.
func (s *Server) requestOptions(r *http.Request) (demo.Options, error) {
	opts := s.demoOptions()
	if v := r.URL.Query().Get("dir"); v != "" {
		d, err := direction.Parse(v)
		if err != nil {
			return opts, err
		}
		opts.Dir = d
	}
	return opts, nil
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, page render.PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	sr := render.NewStreamingRenderer(w, render.RendererConfig{
		Pretty:       s.config.Render.Pretty,
		EventMarkers: s.config.Render.EventMarkers || len(page.Scripts) > 0,
	})
	if err := sr.RenderPage(page); err != nil {
		s.logger.Error("preview: write page", "path", r.URL.Path, "error", err)
	}
}

// fail writes err as a JSON error body with a status derived from its code.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("preview: request failed", "path", r.URL.Path, "error", err)
	}

	var e *perrors.Error
	if !errors.As(err, &e) {
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(e.FormatJSON() + "\n"))
}

func statusFor(err error) int {
	switch perrors.Code(err) {
	case "E301":
		return http.StatusNotFound
	case "E204", "E302":
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func demoAttrs(name string, dir direction.Direction, ticks int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("demo.name", name),
		attribute.String("demo.dir", dir.String()),
		attribute.Int("demo.ticks", ticks),
	}
}
