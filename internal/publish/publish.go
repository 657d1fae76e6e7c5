package publish

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/vango-dev/primitives/internal/config"
	"github.com/vango-dev/primitives/internal/demo"
	"github.com/vango-dev/primitives/pkg/direction"
	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/host"
	"github.com/vango-dev/primitives/pkg/render"
)

const htmlContentType = "text/html; charset=utf-8"

// Sink stores published objects under slash-separated keys.
type Sink interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
}

// Object describes a published file.
type Object struct {
	Key         string
	ContentType string
	Size        int
}

// Options configures Publish.
type Options struct {
	// Config supplies render settings and Publish.Directions. Nil uses
	// config.New().
	Config *config.Config

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Publish renders the index and every demo and writes them to sink. It
// stops at the first failure and returns what was written so far.
func Publish(ctx context.Context, sink Sink, opts Options) ([]Object, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	dirs, err := cfg.PublishDirections()
	if err != nil {
		return nil, err
	}

	p := &publisher{
		sink:   sink,
		cfg:    cfg,
		logger: logger,
		renderer: render.NewRenderer(render.RendererConfig{
			Pretty:       cfg.Render.Pretty,
			EventMarkers: cfg.Render.EventMarkers,
		}),
	}

	if err := p.index(ctx, dirs[0]); err != nil {
		return p.objects, err
	}
	for _, name := range demo.Names() {
		for i, dir := range dirs {
			if err := p.demo(ctx, name, dir, PageKey(name, dir, i == 0)); err != nil {
				return p.objects, err
			}
		}
	}
	return p.objects, nil
}

// PageKey returns the key of a demo page. The primary direction gets the
// plain name.
func PageKey(name string, dir direction.Direction, primary bool) string {
	if primary {
		return "demo/" + name + ".html"
	}
	return "demo/" + name + "." + dir.String() + ".html"
}

type publisher struct {
	sink     Sink
	cfg      *config.Config
	logger   *slog.Logger
	renderer *render.Renderer
	objects  []Object
}

func (p *publisher) index(ctx context.Context, dir direction.Direction) error {
	doc := dom.NewDocument()
	root, err := host.New(nil, host.WithDocument(doc), host.WithLogger(p.logger))
	if err != nil {
		return err
	}
	defer root.Unmount()

	index := demo.Index(func(name string) string { return PageKey(name, dir, true) })
	if err := root.Mount(ctx, index); err != nil {
		return err
	}
	return p.page(ctx, "index.html", render.PageData{
		Body:        doc.Body(),
		Title:       "primitives",
		Dir:         dir.String(),
		StyleSheets: p.cfg.Render.StyleSheets,
	})
}

func (p *publisher) demo(ctx context.Context, name string, dir direction.Direction, key string) error {
	res, err := demo.Run(ctx, name, demo.Options{
		Dir:            dir,
		Logger:         p.logger,
		Debug:          p.cfg.Debug,
		MaxSettleTicks: p.cfg.MaxSettleTicks,
	})
	if err != nil {
		return err
	}
	defer res.Close()

	return p.page(ctx, key, render.PageData{
		Body:        res.Document.Body(),
		Title:       res.Demo.Title + " · primitives",
		Dir:         dir.String(),
		StyleSheets: p.cfg.Render.StyleSheets,
		Meta:        []render.MetaTag{{Name: "description", Content: res.Demo.Description}},
	})
}

func (p *publisher) page(ctx context.Context, key string, page render.PageData) error {
	var buf bytes.Buffer
	if err := p.renderer.RenderPage(&buf, page); err != nil {
		return err
	}
	if err := p.sink.Put(ctx, key, htmlContentType, buf.Bytes()); err != nil {
		return err
	}
	p.objects = append(p.objects, Object{Key: key, ContentType: htmlContentType, Size: buf.Len()})
	p.logger.Debug("publish: wrote", "key", key, "bytes", buf.Len())
	return nil
}
