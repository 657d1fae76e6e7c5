package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr(PropClass, strings.Join(classes, " ")) }

// StyleAttr sets the style attribute from a CSS declaration string.
func StyleAttr(style string) Attr { return attr(PropStyle, style) }

// StyleMap sets the style attribute from property/value pairs.
func StyleMap(m map[string]string) Attr { return attr(PropStyle, m) }

// Ref attaches a ref: a func(*dom.Node) or a NodeAttacher.
func Ref(ref any) Attr { return attr(PropRef, ref) }

// Data creates a data-* attribute.
// Example: Data("state", "open") → data-state="open"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Dir sets the dir attribute.
func Dir(dir string) Attr { return attr("dir", dir) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// Disabled sets the disabled attribute.
func Disabled() Attr { return attr("disabled", true) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attr { return attr("aria-expanded", expanded) }

// AriaHasPopup sets the aria-haspopup attribute.
func AriaHasPopup(value string) Attr { return attr("aria-haspopup", value) }

// AriaLive sets the aria-live attribute.
func AriaLive(politeness string) Attr { return attr("aria-live", politeness) }

// AriaModal sets the aria-modal attribute.
func AriaModal(modal bool) Attr { return attr("aria-modal", modal) }

// AriaControls sets the aria-controls attribute.
func AriaControls(id string) Attr { return attr("aria-controls", id) }

// AriaLabelledBy sets the aria-labelledby attribute.
func AriaLabelledBy(id string) Attr { return attr("aria-labelledby", id) }

// AriaDescribedBy sets the aria-describedby attribute.
func AriaDescribedBy(id string) Attr { return attr("aria-describedby", id) }

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return attr(PropClass, class)
	}
	return Attr{} // Empty attr, will be ignored
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Key creates a key attribute for reconciliation.
func Key(key string) Attr {
	return attr(PropKey, key)
}

// booleanAttrs are attributes whose presence alone means true.
var booleanAttrs = map[string]bool{
	"autofocus": true,
	"checked":   true,
	"disabled":  true,
	"hidden":    true,
	"inert":     true,
	"multiple":  true,
	"open":      true,
	"readonly":  true,
	"required":  true,
	"selected":  true,
}

// IsBooleanAttr reports whether name is an HTML boolean attribute.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[name]
}
