// Package direction provides the ambient text direction of a component
// tree.
//
//	direction.Provider(direction.RTL,
//	    Toolbar(),
//	)
//
//	func Toolbar() vdom.Component {
//	    return vdom.Func(func() *vdom.VNode {
//	        dir := direction.Use()
//	        return vdom.Div(vdom.Dir(string(dir)))
//	    })
//	}
package direction

import (
	"errors"
	"strings"

	perrors "github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/vango"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// Direction is a text direction.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Default is the direction used when none is provided.
const Default = LTR

// ErrInvalidDirection is returned by Parse for values other than ltr and rtl.
var ErrInvalidDirection = errors.New("direction: invalid direction")

var dirContext = vango.CreateContext(Default)

// Parse reads a direction, ignoring case and surrounding space.
func Parse(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case LTR:
		return LTR, nil
	case RTL:
		return RTL, nil
	}
	return "", perrors.New("E204").
		Wrap(ErrInvalidDirection).
		WithComponent("direction.Parse").
		WithDetailf("%q", s)
}

// IsRTL reports whether d is right-to-left.
func (d Direction) IsRTL() bool {
	return d == RTL
}

// Flip returns the opposite direction. Empty flips to RTL.
func (d Direction) Flip() Direction {
	if d == RTL {
		return LTR
	}
	return RTL
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	return string(d)
}

// Provider makes dir the direction of every component below it. An inner
// Provider overrides it for its own subtree only. An empty dir provides
// Default.
func Provider(dir Direction, children ...any) *vdom.VNode {
	if dir == "" {
		dir = Default
	}
	return dirContext.Provider(dir, children...)
}

// Use returns local if it is non-empty, else the direction of the nearest
// Provider, else Default.
//
// This is a hook-like API and MUST be called unconditionally during render.
func Use(local ...Direction) Direction {
	provided := dirContext.Use()
	return pick(local, provided)
}

// Resolve is like Use but does not register a hook, so it can also be
// called from effects and event handlers.
func Resolve(local ...Direction) Direction {
	provided, _ := dirContext.LookupFrom(vango.CurrentOwner())
	return pick(local, provided)
}

func pick(local []Direction, provided Direction) Direction {
	if len(local) > 0 && local[0] != "" {
		return local[0]
	}
	if provided == "" {
		return Default
	}
	return provided
}
