package dom

import (
	"errors"
	"sync"
)

// ErrMissingHostEnvironment is returned when a capability is requested
// but no host document is available.
var ErrMissingHostEnvironment = errors.New("dom: no host document available")

// Document is the root of a node tree and a global event target.
type Document struct {
	EventTarget

	body *Node
}

// NewDocument creates a document with an empty body.
func NewDocument() *Document {
	d := &Document{}
	d.body = d.CreateElement("body")
	return d
}

// Body returns the document body, the default mount root.
func (d *Document) Body() *Node {
	return d.body
}

// CreateElement creates a detached element owned by d.
func (d *Document) CreateElement(tag string) *Node {
	return &Node{Type: ElementNode, Tag: tag, doc: d}
}

// CreateTextNode creates a detached text node owned by d.
func (d *Document) CreateTextNode(text string) *Node {
	return &Node{Type: TextNode, Text: text, doc: d}
}

// Dispatch delivers ev to target following the capture, at-target and
// bubble phases, with the document as the outermost target. A nil target
// dispatches on the document itself. It returns false if a listener called
// PreventDefault.
func (d *Document) Dispatch(target *Node, ev *Event) bool {
	ev.Target = target
	defer func() { ev.Phase = PhaseNone }()

	if target == nil {
		ev.Phase = PhaseAtTarget
		d.invoke(ev, true)
		if !ev.immediateStopped {
			d.invoke(ev, false)
		}
		return !ev.defaultPrevented
	}

	path := target.ancestors()

	ev.Phase = PhaseCapturing
	d.invoke(ev, true)
	for i := len(path) - 1; i >= 0 && !ev.propagationStopped; i-- {
		path[i].invoke(ev, true)
	}
	if ev.propagationStopped {
		return !ev.defaultPrevented
	}

	ev.Phase = PhaseAtTarget
	target.invoke(ev, true)
	if !ev.immediateStopped {
		target.invoke(ev, false)
	}

	ev.Phase = PhaseBubbling
	for i := 0; i < len(path) && !ev.propagationStopped; i++ {
		path[i].invoke(ev, false)
	}
	if !ev.propagationStopped {
		d.invoke(ev, false)
	}
	return !ev.defaultPrevented
}

// KeyDown dispatches a keydown event for key on target (or the document).
func (d *Document) KeyDown(target *Node, key string) *Event {
	ev := NewKeyboardEvent("keydown", key)
	d.Dispatch(target, ev)
	return ev
}

// Click dispatches a click event on target.
func (d *Document) Click(target *Node) *Event {
	ev := NewEvent("click")
	d.Dispatch(target, ev)
	return ev
}

var (
	globalMu  sync.RWMutex
	globalDoc *Document
)

// SetGlobal installs doc as the process-wide document and returns a
// function restoring the previous one.
func SetGlobal(doc *Document) (restore func()) {
	globalMu.Lock()
	prev := globalDoc
	globalDoc = doc
	globalMu.Unlock()

	return func() {
		globalMu.Lock()
		globalDoc = prev
		globalMu.Unlock()
	}
}

// Global returns the process-wide document.
func Global() (*Document, error) {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalDoc == nil {
		return nil, ErrMissingHostEnvironment
	}
	return globalDoc, nil
}
