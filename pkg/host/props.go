package host

import (
	"fmt"
	"strings"

	"github.com/vango-dev/primitives/pkg/classmerge"
	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/slot"
	"github.com/vango-dev/primitives/pkg/vango"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// applyProps brings an element's attributes, handlers and ref in line with
// props.
func (r *Root) applyProps(inst *instance, props vdom.Props) {
	seenAttrs := make(map[string]struct{}, len(props))
	seenEvents := make(map[string]struct{})

	inst.ref = nil
	for key, value := range props {
		switch {
		case key == vdom.PropRef:
			inst.ref = value

		case key == vdom.PropKey || key == slot.ChildrenProp:

		case vdom.IsEventKey(key):
			if !vdom.IsHandler(value) {
				continue
			}
			name := vdom.EventName(key)
			seenEvents[name] = struct{}{}
			inst.handlers[name] = value
			if _, ok := inst.listeners[name]; !ok {
				r.listen(inst, name)
			}

		default:
			s, ok := attrValue(key, value)
			if !ok {
				continue
			}
			seenAttrs[key] = struct{}{}
			if cur, exists := inst.node.Attr(key); !exists || cur != s {
				inst.node.SetAttr(key, s)
			}
		}
	}

	for key := range inst.attrs {
		if _, ok := seenAttrs[key]; !ok {
			inst.node.RemoveAttr(key)
		}
	}
	inst.attrs = seenAttrs

	for name, l := range inst.listeners {
		if _, ok := seenEvents[name]; !ok {
			inst.node.RemoveEventListener(name, l, dom.Options{})
			delete(inst.listeners, name)
			delete(inst.handlers, name)
		}
	}
}

// listen installs the element's single listener for an event type. It
// always calls the handler from the latest render, with the enclosing
// component's owner current so context lookups see its providers.
func (r *Root) listen(inst *instance, name string) {
	l := dom.NewListener(func(ev *dom.Event) {
		h := inst.handlers[name]
		if h == nil {
			return
		}
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error("host: event handler panicked",
					"event", name,
					"tag", inst.tag,
					"panic", fmt.Sprint(rec),
				)
			}
		}()
		vango.WithOwner(inst.scope, func() {
			vdom.InvokeHandler(h, ev)
		})
	})
	inst.node.AddEventListener(name, l, dom.Options{})
	inst.listeners[name] = l
}

// attrValue converts a prop value to its attribute string. It reports
// false when the attribute should be absent.
func attrValue(key string, value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		if key == vdom.PropStyle {
			return v, v != ""
		}
		return v, true
	case bool:
		if vdom.IsBooleanAttr(key) {
			return "", v
		}
		if strings.HasPrefix(key, "aria-") || strings.HasPrefix(key, "data-") {
			return fmt.Sprint(v), true
		}
		return fmt.Sprint(v), v
	case map[string]string:
		if key == vdom.PropStyle {
			s := slot.FormatStyle(slot.ParseStyle(v))
			return s, s != ""
		}
	case []string, map[string]bool, []any:
		if key == vdom.PropClass {
			s := classmerge.Join(v)
			return s, s != ""
		}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v), true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}
