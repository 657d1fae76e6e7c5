// Package demo holds the named component trees the CLI renders and the
// preview server serves.
package demo

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	perrors "github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/direction"
	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/host"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// Demo is a named tree. Interact, if set, drives the mounted tree after it
// first settles, for example to open a dialog.
type Demo struct {
	Name        string
	Title       string
	Description string
	Build       func() *vdom.VNode
	Interact    func(doc *dom.Document)
}

// ErrUnknownDemo is reachable through errors.Is on Lookup and Run errors.
var ErrUnknownDemo = errors.New("demo: unknown demo")

var demos = map[string]Demo{}

func register(d Demo) {
	demos[d.Name] = d
}

// Names returns the registered demo names, sorted.
func Names() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every demo, sorted by name.
func All() []Demo {
	out := make([]Demo, 0, len(demos))
	for _, name := range Names() {
		out = append(out, demos[name])
	}
	return out
}

// Lookup returns the demo called name, or an E301 error.
func Lookup(name string) (Demo, error) {
	d, ok := demos[name]
	if !ok {
		return Demo{}, perrors.New("E301").
			Wrap(ErrUnknownDemo).
			WithDetailf("%q is not one of %v", name, Names())
	}
	return d, nil
}

// Index builds a list of every demo, linking each to href(name).
func Index(href func(name string) string) *vdom.VNode {
	items := make([]any, 0, len(demos))
	for _, d := range All() {
		items = append(items, vdom.Li(
			vdom.Key(d.Name),
			vdom.A(vdom.Href(href(d.Name)), vdom.Text(d.Title)),
			vdom.Textf(" %s", d.Description),
		))
	}
	return vdom.Main(
		vdom.H1(vdom.Text("primitives")),
		vdom.Ul(items...),
	)
}

// Options configure Run.
type Options struct {
	Dir            direction.Direction
	Logger         *slog.Logger
	Metrics        *host.Metrics
	Debug          bool
	MaxSettleTicks int
}

// Result is a mounted, settled demo. Call Close when done with it.
type Result struct {
	Demo     Demo
	Document *dom.Document
	Root     *host.Root
	Ticks    int
}

// Close unmounts the demo.
func (r *Result) Close() {
	r.Root.Unmount()
}

// Run mounts the demo called name into a fresh document under a
// direction.Provider, settles it, applies its interaction and settles
// again.
func Run(ctx context.Context, name string, opts Options) (*Result, error) {
	d, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	doc := dom.NewDocument()
	hostOpts := []host.Option{
		host.WithDocument(doc),
		host.WithDebug(opts.Debug),
	}
	if opts.Logger != nil {
		hostOpts = append(hostOpts, host.WithLogger(opts.Logger))
	}
	if opts.Metrics != nil {
		hostOpts = append(hostOpts, host.WithMetrics(opts.Metrics))
	}
	if opts.MaxSettleTicks > 0 {
		hostOpts = append(hostOpts, host.WithMaxSettleTicks(opts.MaxSettleTicks))
	}

	app := doc.CreateElement("div")
	app.SetAttr("id", "app")
	doc.Body().AppendChild(app)

	root, err := host.New(app, hostOpts...)
	if err != nil {
		return nil, err
	}
	res := &Result{Demo: d, Document: doc, Root: root}

	if err := root.Mount(ctx, direction.Provider(opts.Dir, d.Build())); err != nil {
		res.Close()
		return nil, err
	}
	if err := res.Settle(ctx); err != nil {
		res.Close()
		return nil, err
	}

	if d.Interact != nil {
		d.Interact(doc)
		if err := res.Settle(ctx); err != nil {
			res.Close()
			return nil, err
		}
	}
	return res, nil
}

// Settle ticks the root until nothing is pending, for use after events are
// dispatched into the document.
func (r *Result) Settle(ctx context.Context) error {
	n, err := r.Root.Settle(ctx)
	r.Ticks += n
	return err
}
