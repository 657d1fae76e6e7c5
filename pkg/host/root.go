package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	perrors "github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/vango"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// ErrSettleLimit is returned by Settle when the tree keeps changing.
var ErrSettleLimit = errors.New("host: tree did not settle")

// ErrUnmounted is returned when a Root is used after Unmount.
var ErrUnmounted = errors.New("host: root is unmounted")

// Root is a mounted component tree.
type Root struct {
	cfg       Config
	logger    *slog.Logger
	tracer    trace.Tracer
	doc       *dom.Document
	container *dom.Node

	// owner is the scope every top-level component is created under. It
	// carries the owner document.
	owner *vango.Owner

	tree   *instance
	placed []*dom.Node

	dirty       map[*instance]struct{}
	pendingRefs []*instance
	errs        []error

	components atomic.Int64
	unmounted  bool
}

// New creates a Root that mounts into container. A nil container mounts
// into the body of the configured document, or of dom.Global(). Without
// any document New returns an E202 error.
func New(container *dom.Node, opts ...Option) (*Root, error) {
	cfg := buildConfig(opts)

	if container == nil {
		doc := cfg.Document
		if doc == nil {
			var err error
			if doc, err = dom.Global(); err != nil {
				return nil, MissingHostEnvironment("mount container")
			}
		}
		container = doc.Body()
	}
	doc := cfg.Document
	if doc == nil {
		doc = container.OwnerDocument()
	}
	if doc == nil {
		return nil, MissingHostEnvironment("owner document")
	}

	r := &Root{
		cfg:       cfg,
		logger:    cfg.Logger,
		tracer:    otel.Tracer(cfg.TracerName),
		doc:       doc,
		container: container,
		owner:     vango.NewOwner(nil),
		dirty:     make(map[*instance]struct{}),
	}
	r.owner.SetDebug(cfg.Debug)
	documentContext.Set(r.owner, doc)
	cfg.Metrics.track(r)
	return r, nil
}

// Document returns the Root's owner document.
func (r *Root) Document() *dom.Document {
	return r.doc
}

// Container returns the node the tree is mounted into.
func (r *Root) Container() *dom.Node {
	return r.container
}

// Components returns the number of mounted components.
func (r *Root) Components() int {
	return int(r.components.Load())
}

// Mount renders v and commits it, replacing or updating the previously
// mounted tree. Mount effects of new components are scheduled for the next
// Tick.
func (r *Root) Mount(ctx context.Context, v *vdom.VNode) error {
	if r.unmounted {
		return ErrUnmounted
	}
	_, span := r.tracer.Start(ctx, "host.mount")
	defer span.End()

	r.errs = nil
	r.tree = r.reconcile(r.tree, v, r.owner, 0)
	r.commit()

	r.logger.Debug("host: mounted", "components", r.Components())
	return r.finish(span)
}

// Tick is the post-commit step: it runs pending mount effects, re-renders
// components whose state changed and commits the result.
func (r *Root) Tick(ctx context.Context) error {
	if r.unmounted {
		return ErrUnmounted
	}
	_, span := r.tracer.Start(ctx, "host.tick")
	defer span.End()

	r.cfg.Metrics.incTicks()
	r.errs = nil

	ran, err := r.owner.RunPendingEffects()
	r.cfg.Metrics.addEffectsRun(ran)
	if err != nil {
		r.errs = append(r.errs, err)
		r.logger.Error("host: mount effect failed", "error", err)
	}

	rendered := r.flushDirty()
	if rendered > 0 || ran > 0 {
		r.commit()
	}

	span.SetAttributes(
		attribute.Int("host.effects_run", ran),
		attribute.Int("host.components_rendered", rendered),
	)
	r.logger.Debug("host: tick", "effects", ran, "rendered", rendered)
	return r.finish(span)
}

// Pending reports whether a Tick has work to do.
func (r *Root) Pending() bool {
	return !r.unmounted && (len(r.dirty) > 0 || r.owner.HasPendingEffects())
}

// Settle ticks until nothing is pending and returns the number of ticks
// run. It fails with an E205 error if the tree is still changing after
// MaxSettleTicks ticks. Errors from individual ticks stop settling.
func (r *Root) Settle(ctx context.Context) (int, error) {
	ticks := 0
	for r.Pending() {
		if ticks >= r.cfg.MaxSettleTicks {
			return ticks, perrors.New("E205").
				Wrap(ErrSettleLimit).
				WithDetailf("still pending after %d ticks", ticks)
		}
		ticks++
		if err := r.Tick(ctx); err != nil {
			return ticks, err
		}
	}
	return ticks, nil
}

// Unmount tears the tree down: every component Owner is disposed, which
// runs effect cleanups, and every node is removed. Calling it again is a
// no-op.
func (r *Root) Unmount() {
	if r.unmounted {
		return
	}
	r.unmount(r.tree)
	r.tree = nil
	for _, n := range r.placed {
		if n.Parent() == r.container {
			n.Remove()
		}
	}
	r.placed = nil
	r.owner.Dispose()
	r.unmounted = true
	r.cfg.Metrics.untrack(r)
	r.logger.Debug("host: unmounted")
}

// invalidate marks a component for re-render on the next Tick.
func (r *Root) invalidate(inst *instance) {
	if inst.unmounted || r.unmounted {
		return
	}
	r.dirty[inst] = struct{}{}
}

// flushDirty re-renders invalidated components, outermost first. A
// component re-rendered as part of an ancestor is not rendered again.
// Components invalidated during the flush wait for the next Tick.
func (r *Root) flushDirty() int {
	batch := make([]*instance, 0, len(r.dirty))
	for inst := range r.dirty {
		batch = append(batch, inst)
	}
	sort.Slice(batch, func(i, j int) bool { return batch[i].depth < batch[j].depth })

	count := 0
	for _, inst := range batch {
		if _, ok := r.dirty[inst]; !ok {
			continue
		}
		if inst.unmounted {
			delete(r.dirty, inst)
			continue
		}
		r.renderInto(inst)
		count++
	}
	return count
}

// finish converts the errors collected during a pass into the returned
// error and records it on the span.
func (r *Root) finish(span trace.Span) error {
	if len(r.errs) == 0 {
		return nil
	}
	err := errors.Join(r.errs...)
	r.errs = nil
	if perrors.Code(err) == "" {
		err = perrors.FromError(err, "E203")
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// renderPanic converts a recovered render panic into a coded error.
func renderPanic(rec any, component string) error {
	if err, ok := rec.(error); ok {
		if perrors.Code(err) != "" {
			return err
		}
		return perrors.New("E203").Wrap(err).WithComponent(component)
	}
	return perrors.New("E203").
		Wrap(fmt.Errorf("%w: %v", vango.ErrPanic, rec)).
		WithComponent(component)
}
