package ui

import (
	"github.com/vango-dev/primitives/pkg/classmerge"
	"github.com/vango-dev/primitives/pkg/slot"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// ButtonOption configures a Button component.
type ButtonOption func(*buttonConfig)

type buttonConfig struct {
	variant   Variant
	size      Size
	disabled  bool
	asChild   bool
	className string
	children  []any
	onClick   any
	attrs     vdom.Props
}

func defaultButtonConfig() buttonConfig {
	return buttonConfig{
		variant: VariantDefault,
		size:    SizeMd,
	}
}

// WithVariant sets the button variant.
func WithVariant(v Variant) ButtonOption {
	return func(c *buttonConfig) {
		c.variant = v
	}
}

// Primary sets the button to primary variant.
func Primary() ButtonOption { return WithVariant(VariantPrimary) }

// Secondary sets the button to secondary variant.
func Secondary() ButtonOption { return WithVariant(VariantSecondary) }

// Destructive sets the button to destructive variant.
func Destructive() ButtonOption { return WithVariant(VariantDestructive) }

// Outline sets the button to outline variant.
func Outline() ButtonOption { return WithVariant(VariantOutline) }

// Ghost sets the button to ghost variant.
func Ghost() ButtonOption { return WithVariant(VariantGhost) }

// Link sets the button to link variant.
func Link() ButtonOption { return WithVariant(VariantLink) }

// WithSize sets the button size.
func WithSize(s Size) ButtonOption {
	return func(c *buttonConfig) {
		c.size = s
	}
}

// WithDisabled sets the disabled state. A disabled button drops its click
// handler.
func WithDisabled(d bool) ButtonOption {
	return func(c *buttonConfig) {
		c.disabled = d
	}
}

// AsChild renders the single child element in place of the <button>,
// merging the button's props into it.
func AsChild() ButtonOption {
	return func(c *buttonConfig) {
		c.asChild = true
	}
}

// WithOnClick sets the click handler: a func() or func(*dom.Event).
func WithOnClick(handler any) ButtonOption {
	return func(c *buttonConfig) {
		c.onClick = handler
	}
}

// WithChildren sets the button children.
func WithChildren(children ...any) ButtonOption {
	return func(c *buttonConfig) {
		c.children = children
	}
}

// WithClass adds additional CSS classes. They win over conflicting
// variant classes.
func WithClass(className string) ButtonOption {
	return func(c *buttonConfig) {
		c.className = className
	}
}

// WithAttr sets an extra attribute.
func WithAttr(name string, value any) ButtonOption {
	return func(c *buttonConfig) {
		if c.attrs == nil {
			c.attrs = make(vdom.Props)
		}
		c.attrs[name] = value
	}
}

const buttonBase = "inline-flex items-center justify-center whitespace-nowrap rounded-md text-sm font-medium transition-colors focus-visible:outline-none focus-visible:ring-2 disabled:pointer-events-none disabled:opacity-50"

var buttonVariants = map[Variant]string{
	VariantDefault:     "bg-primary text-primary-foreground hover:bg-primary/90",
	VariantPrimary:     "bg-primary text-primary-foreground hover:bg-primary/90",
	VariantDestructive: "bg-destructive text-destructive-foreground hover:bg-destructive/90",
	VariantOutline:     "border border-input bg-background hover:bg-accent",
	VariantSecondary:   "bg-secondary text-secondary-foreground hover:bg-secondary/80",
	VariantGhost:       "hover:bg-accent hover:text-accent-foreground",
	VariantLink:        "text-primary underline-offset-4 hover:underline",
}

var buttonSizes = map[Size]string{
	SizeSm:   "h-9 rounded-md px-3",
	SizeMd:   "h-10 px-4 py-2",
	SizeLg:   "h-11 rounded-md px-8",
	SizeIcon: "h-10 w-10",
}

// Button renders a button. With AsChild it renders its single child
// element instead; any other child count panics with an E201 error, which
// a host render reports.
func Button(opts ...ButtonOption) *vdom.VNode {
	cfg := defaultButtonConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return slot.MustCompose("button", buttonProps(cfg), cfg.asChild, cfg.children...)
}

func buttonProps(cfg buttonConfig) vdom.Props {
	props := cfg.attrs.Clone()
	props[vdom.PropClass] = classmerge.Merge(
		buttonBase,
		buttonVariants[cfg.variant],
		buttonSizes[cfg.size],
		cfg.className,
	)
	props["data-variant"] = string(cfg.variant)

	if !cfg.asChild {
		props["type"] = "button"
	}
	if cfg.disabled {
		props["disabled"] = true
		props["aria-disabled"] = true
	}
	if cfg.onClick != nil && !cfg.disabled {
		props["onclick"] = cfg.onClick
	}
	return props
}
