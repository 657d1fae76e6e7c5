package ui

import (
	"github.com/vango-dev/primitives/pkg/classmerge"
	"github.com/vango-dev/primitives/pkg/direction"
	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/escape"
	"github.com/vango-dev/primitives/pkg/portal"
	"github.com/vango-dev/primitives/pkg/slot"
	"github.com/vango-dev/primitives/pkg/vango"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// DialogOption configures a Dialog component.
type DialogOption func(*dialogConfig)

type dialogConfig struct {
	open             *bool
	defaultOpen      bool
	onOpenChange     func(bool)
	title            string
	description      string
	trigger          *vdom.VNode
	content          *vdom.VNode
	footer           *vdom.VNode
	closeOnEscape    bool
	closeOnOverlay   bool
	showCloseButton  bool
	className        string
	overlayClassName string
	container        *dom.Node
	dir              direction.Direction
}

func defaultDialogConfig() dialogConfig {
	return dialogConfig{
		closeOnEscape:   true,
		closeOnOverlay:  true,
		showCloseButton: true,
	}
}

// DialogOpen makes the dialog controlled: it is open exactly when open is
// true, and user intent is only reported through DialogOnOpenChange.
func DialogOpen(open bool) DialogOption {
	return func(c *dialogConfig) {
		c.open = &open
	}
}

// DialogDefaultOpen sets the initial state of an uncontrolled dialog.
func DialogDefaultOpen(open bool) DialogOption {
	return func(c *dialogConfig) {
		c.defaultOpen = open
	}
}

// DialogOnOpenChange sets the open change handler.
func DialogOnOpenChange(handler func(bool)) DialogOption {
	return func(c *dialogConfig) {
		c.onOpenChange = handler
	}
}

// DialogTitle sets the dialog title.
func DialogTitle(title string) DialogOption {
	return func(c *dialogConfig) {
		c.title = title
	}
}

// DialogDescription sets the dialog description.
func DialogDescription(description string) DialogOption {
	return func(c *dialogConfig) {
		c.description = description
	}
}

// DialogTrigger sets the trigger. The trigger element itself receives the
// toggle handler and aria attributes; it is not wrapped.
func DialogTrigger(trigger *vdom.VNode) DialogOption {
	return func(c *dialogConfig) {
		c.trigger = trigger
	}
}

// DialogContent sets the dialog body.
func DialogContent(content *vdom.VNode) DialogOption {
	return func(c *dialogConfig) {
		c.content = content
	}
}

// DialogFooter sets the dialog footer.
func DialogFooter(footer *vdom.VNode) DialogOption {
	return func(c *dialogConfig) {
		c.footer = footer
	}
}

// DialogCloseOnEscape enables/disables close on Escape key.
func DialogCloseOnEscape(close bool) DialogOption {
	return func(c *dialogConfig) {
		c.closeOnEscape = close
	}
}

// DialogCloseOnOverlay enables/disables close on overlay click.
func DialogCloseOnOverlay(close bool) DialogOption {
	return func(c *dialogConfig) {
		c.closeOnOverlay = close
	}
}

// DialogShowCloseButton shows/hides the close button.
func DialogShowCloseButton(show bool) DialogOption {
	return func(c *dialogConfig) {
		c.showCloseButton = show
	}
}

// DialogClass adds CSS classes to the dialog panel.
func DialogClass(className string) DialogOption {
	return func(c *dialogConfig) {
		c.className = className
	}
}

// DialogOverlayClass adds CSS classes to the overlay.
func DialogOverlayClass(className string) DialogOption {
	return func(c *dialogConfig) {
		c.overlayClassName = className
	}
}

// DialogContainer portals the dialog into container instead of the owner
// document body.
func DialogContainer(container *dom.Node) DialogOption {
	return func(c *dialogConfig) {
		c.container = container
	}
}

// DialogDir overrides the direction inherited from the nearest
// direction.Provider.
func DialogDir(dir direction.Direction) DialogOption {
	return func(c *dialogConfig) {
		c.dir = dir
	}
}

// Dialog renders a modal dialog. The panel is portalled out of the
// trigger's subtree, so it carries the resolved text direction as an
// explicit dir attribute.
func Dialog(opts ...DialogOption) *vdom.VNode {
	cfg := defaultDialogConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return vdom.Comp(&dialog{cfg: cfg})
}

type dialog struct {
	cfg dialogConfig
}

// Render implements vdom.Component.
func (d *dialog) Render() *vdom.VNode {
	cfg := d.cfg
	id := vango.UseID("dialog")
	state := vango.UseState(cfg.defaultOpen)
	dir := direction.Use(cfg.dir)

	open := state.Get()
	if cfg.open != nil {
		open = *cfg.open
	}

	setOpen := func(v bool) {
		if cfg.open == nil {
			state.Set(v)
		}
		if cfg.onOpenChange != nil {
			cfg.onOpenChange(v)
		}
	}

	var trigger *vdom.VNode
	if cfg.trigger != nil {
		trigger = slot.MustCompose("button", vdom.Props{
			"aria-haspopup": "dialog",
			"aria-expanded": open,
			"aria-controls": id,
			"data-state":    openState(open),
			"onclick":       func() { setOpen(!open) },
		}, true, cfg.trigger)
	}

	if !open {
		return vdom.Fragment(trigger)
	}

	layer := &dialogLayer{
		cfg:     cfg,
		id:      id,
		dir:     dir,
		onClose: func() { setOpen(false) },
	}
	return vdom.Fragment(trigger, portal.New(cfg.container, vdom.Comp(layer)))
}

func openState(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}

// dialogLayer is the overlay and panel. It only exists while the dialog is
// open, so its Escape subscription follows the open state.
type dialogLayer struct {
	cfg     dialogConfig
	id      string
	dir     direction.Direction
	onClose func()
}

const (
	overlayBase = "fixed inset-0 z-50 bg-black/80"
	panelBase   = "fixed left-[50%] top-[50%] z-50 grid w-full max-w-lg translate-x-[-50%] translate-y-[-50%] gap-4 border bg-background p-6 shadow-lg sm:rounded-lg"
)

// Render implements vdom.Component.
func (l *dialogLayer) Render() *vdom.VNode {
	cfg := l.cfg
	escape.UseEscapeKeydown(func(*dom.Event) {
		if cfg.closeOnEscape {
			l.onClose()
		}
	})

	var onOverlayClick any
	if cfg.closeOnOverlay {
		onOverlayClick = vdom.OnClick(l.onClose)
	}
	overlay := vdom.Div(
		vdom.Class(classmerge.Merge(overlayBase, cfg.overlayClassName)),
		vdom.Data("state", "open"),
		vdom.Data("dialog-overlay", ""),
		onOverlayClick,
	)

	panel := vdom.Div(
		vdom.ID(l.id),
		vdom.Role("dialog"),
		vdom.AriaModal(true),
		vdom.Dir(l.dir.String()),
		vdom.Class(classmerge.Merge(panelBase, cfg.className)),
		vdom.Data("state", "open"),
	)

	if cfg.title != "" {
		titleID := l.id + "-title"
		panel.Props["aria-labelledby"] = titleID
		panel.Children = append(panel.Children, vdom.H2(
			vdom.ID(titleID),
			vdom.Class("text-lg font-semibold leading-none tracking-tight"),
			vdom.Text(cfg.title),
		))
	}
	if cfg.description != "" {
		descID := l.id + "-description"
		panel.Props["aria-describedby"] = descID
		panel.Children = append(panel.Children, vdom.P(
			vdom.ID(descID),
			vdom.Class("text-sm text-muted-foreground"),
			vdom.Text(cfg.description),
		))
	}
	if cfg.content != nil {
		panel.Children = append(panel.Children, cfg.content)
	}
	if cfg.footer != nil {
		panel.Children = append(panel.Children, vdom.Div(
			vdom.Class("flex flex-col-reverse sm:flex-row sm:justify-end sm:space-x-2"),
			cfg.footer,
		))
	}
	if cfg.showCloseButton {
		panel.Children = append(panel.Children, Button(
			Ghost(),
			WithSize(SizeIcon),
			WithClass("absolute top-4 end-4 h-6 w-6"),
			WithAttr("aria-label", "Close"),
			WithAttr("data-dialog-close", ""),
			WithOnClick(l.onClose),
			WithChildren(vdom.Span(vdom.AriaHidden(true), vdom.Text("×"))),
		))
	}

	return vdom.Fragment(overlay, panel)
}
