// Package escape delivers Escape key presses to a component for as long as
// it is mounted.
//
// Each subscription owns one capture-phase keydown listener on the owner
// document. There is no coordination between subscriptions: when two
// layers are open both are notified, in registration order, and deciding
// which one should react is up to the caller.
package escape

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/host"
	"github.com/vango-dev/primitives/pkg/vango"
)

// Key is the KeyboardEvent key value this package reacts to.
const Key = "Escape"

// ErrMissingHostEnvironment is returned when no owner document is available.
var ErrMissingHostEnvironment = dom.ErrMissingHostEnvironment

// Subscription is one registered keydown listener.
type Subscription struct {
	doc      *dom.Document
	listener *dom.Listener
	once     sync.Once
}

// Subscribe attaches a capture-phase keydown listener to doc that calls
// callback once for every keydown whose key is Escape. A nil doc resolves
// through host.OwnerDocument. A panic in callback is recovered and logged
// so it never escapes the dispatch.
func Subscribe(callback func(*dom.Event), doc *dom.Document) (*Subscription, error) {
	doc, err := host.OwnerDocument(doc)
	if err != nil {
		return nil, err
	}

	s := &Subscription{doc: doc}
	s.listener = dom.NewListener(func(ev *dom.Event) {
		if ev.Key != Key || callback == nil {
			return
		}
		defer func() {
			if r := recover(); r != nil {
				slog.Default().Error("escape: callback panicked", "panic", fmt.Sprint(r))
			}
		}()
		callback(ev)
	})
	doc.AddEventListener("keydown", s.listener, dom.Options{Capture: true})
	return s, nil
}

// Close removes the listener. It is safe to call more than once, on a nil
// Subscription and on one that was never attached.
func (s *Subscription) Close() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.doc == nil || s.listener == nil {
			return
		}
		s.doc.RemoveEventListener("keydown", s.listener, dom.Options{Capture: true})
	})
}

// Option configures UseEscapeKeydown.
type Option func(*options)

type options struct {
	doc *dom.Document
}

// WithDocument subscribes on doc instead of the owner document.
func WithDocument(doc *dom.Document) Option {
	return func(o *options) {
		o.doc = doc
	}
}

// UseEscapeKeydown calls callback on every Escape keydown while the current
// component is mounted. The listener is attached after the component's
// first commit and removed when it is disposed. The callback from the
// latest render is the one called.
//
// This is a hook-like API and MUST be called unconditionally during render.
// Without an owner document the mount effect panics with an E202 error,
// which the host returns from Tick.
func UseEscapeKeydown(callback func(*dom.Event), opts ...Option) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	latest := vango.UseRef[func(*dom.Event)](nil)
	latest.Set(callback)

	vango.OnMount(func() vango.Cleanup {
		sub, err := Subscribe(func(ev *dom.Event) {
			if cb := latest.Current(); cb != nil {
				cb(ev)
			}
		}, o.doc)
		if err != nil {
			panic(err)
		}
		return sub.Close
	})
}
