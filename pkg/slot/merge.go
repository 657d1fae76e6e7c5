package slot

import (
	"sort"

	"github.com/vango-dev/primitives/pkg/classmerge"
	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// MergeProps combines a behavioral prop set (base) with the props of the
// element receiving it (override). Neither input is modified.
//
// Event keys are matched by event type, so "onClick" and "onclick" name the
// same handler. A key only present on one side is copied unchanged.
func MergeProps(base, override vdom.Props) vdom.Props {
	base, override = foldEvents(base), foldEvents(override)
	out := make(vdom.Props, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}

	for k, ov := range override {
		if vdom.IsEventKey(k) {
			mergeHandler(out, k, ov)
			continue
		}

		bv, exists := out[k]
		if !exists || bv == nil {
			out[k] = ov
			continue
		}
		if ov == nil {
			continue
		}

		switch k {
		case vdom.PropRef:
			out[k] = ComposeRefs(bv, ov)
		case vdom.PropClass:
			out[k] = classmerge.Merge(bv, ov)
		case vdom.PropStyle:
			out[k] = MergeStyle(bv, ov)
		default:
			out[k] = ov
		}
	}
	return out
}

// foldEvents returns props with event keys that name the same event type
// composed into one "on<type>" key, in sorted key order. Props without such
// duplicates are returned as is.
func foldEvents(props vdom.Props) vdom.Props {
	var groups map[string][]string
	for k := range props {
		if name := vdom.EventName(k); name != "" {
			if groups == nil {
				groups = make(map[string][]string)
			}
			groups[name] = append(groups[name], k)
		}
	}

	var out vdom.Props
	for name, keys := range groups {
		if len(keys) < 2 {
			continue
		}
		if out == nil {
			out = props.Clone()
		}
		sort.Strings(keys)
		handlers := make([]any, 0, len(keys))
		for _, k := range keys {
			handlers = append(handlers, out[k])
			delete(out, k)
		}
		out["on"+name] = ComposeHandlers(handlers...)
	}
	if out == nil {
		return props
	}
	return out
}

// mergeHandler stores override's handler for key in out, chained after any
// base handler registered for the same event type.
func mergeHandler(out vdom.Props, key string, handler any) {
	name := vdom.EventName(key)
	for bk, bv := range out {
		if !vdom.IsEventKey(bk) || vdom.EventName(bk) != name {
			continue
		}
		delete(out, bk)
		if vdom.IsHandler(bv) && vdom.IsHandler(handler) {
			out[key] = ComposeHandlers(bv, handler)
		} else if handler != nil {
			out[key] = handler
		} else {
			out[bk] = bv
		}
		return
	}
	out[key] = handler
}

// ComposeHandlers returns a handler that invokes each handler in order.
// Every handler runs regardless of what earlier ones did to the event.
// Nil or unsupported values are skipped.
func ComposeHandlers(handlers ...any) vdom.HandlerFunc {
	hs := make([]any, 0, len(handlers))
	for _, h := range handlers {
		if vdom.IsHandler(h) {
			hs = append(hs, h)
		}
	}
	return func(ev *dom.Event) {
		for _, h := range hs {
			vdom.InvokeHandler(h, ev)
		}
	}
}

// ComposeRefs returns a ref that forwards the attached node to each ref in
// order. Nil or unsupported values are skipped.
func ComposeRefs(refs ...any) vdom.RefFunc {
	rs := make([]any, 0, len(refs))
	for _, r := range refs {
		if r != nil {
			rs = append(rs, r)
		}
	}
	return func(n *dom.Node) {
		for _, r := range rs {
			vdom.InvokeRef(r, n)
		}
	}
}
