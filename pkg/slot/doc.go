// Package slot implements render-target substitution ("asChild").
//
// A behavioral component computes a prop set and hands it to Compose. When
// asChild is false the props land on a default element. When it is true the
// caller supplies exactly one child, and the props are merged into that
// child instead, keeping its tag or component identity:
//
//	// <button class="btn" onclick=...>Save</button>
//	slot.MustCompose("button", props, false, "Save")
//
//	// <a href="/save" class="btn underline" onclick=...>Save</a>
//	slot.MustCompose("button", props, true,
//	    vdom.A(vdom.Href("/save"), vdom.Class("underline"), "Save"))
//
// MergeProps defines how the two prop sets combine: refs and event handlers
// are chained base first, classes go through classmerge with the child's
// classes winning conflicts, styles merge per property, and everything else
// is replaced by the child's value.
package slot
