// Package host mounts component trees into dom containers.
//
// A Root owns one mounted tree. Mount renders it and commits the result to
// the container. Effects registered with vango.OnMount do not run during
// Mount; they run on the next Tick, which then re-renders any components
// whose state changed and commits again:
//
//	root, err := host.New(doc.Body(), host.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	defer root.Unmount()
//
//	if err := root.Mount(ctx, ui.Dialog(...)); err != nil {
//	    return err
//	}
//	if _, err := root.Settle(ctx); err != nil {
//	    return err
//	}
//
// Elements keep their dom identity across renders when their kind, tag and
// key match. Components are matched by their concrete type, so a component
// keeps its Owner (and with it its state and effects) across parent renders.
//
// Render and effect panics are recovered and returned from Mount and Tick
// as coded errors. A component that panics keeps its previous output.
//
// A Root is not safe for concurrent use. Metrics may be scraped from other
// goroutines.
package host
