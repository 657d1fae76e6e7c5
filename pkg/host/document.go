package host

import (
	perrors "github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/vango"
)

// documentContext carries the owner document down every mounted tree.
var documentContext = vango.CreateContext[*dom.Document](nil)

// OwnerDocument resolves the document a component should act on: explicit
// if non-nil, else the document of the Root the calling component is
// mounted in, else the process-wide dom.Global(). It can be called during
// render and from mount effects. Without any document it returns an E202
// error matching dom.ErrMissingHostEnvironment.
func OwnerDocument(explicit *dom.Document) (*dom.Document, error) {
	if explicit != nil {
		return explicit, nil
	}
	if doc, ok := documentContext.LookupFrom(vango.CurrentOwner()); ok && doc != nil {
		return doc, nil
	}
	if doc, err := dom.Global(); err == nil {
		return doc, nil
	}
	return nil, MissingHostEnvironment("document")
}

// DefaultContainer resolves a mount container: explicit if non-nil, else
// the owner document's body.
func DefaultContainer(explicit *dom.Node) (*dom.Node, error) {
	if explicit != nil {
		return explicit, nil
	}
	doc, err := OwnerDocument(nil)
	if err != nil {
		return nil, err
	}
	return doc.Body(), nil
}

// MissingHostEnvironment returns the E202 error for a missing capability.
func MissingHostEnvironment(capability string) error {
	return perrors.New("E202").
		Wrap(dom.ErrMissingHostEnvironment).
		WithDetailf("%s requested outside a host environment", capability)
}
