package vango

import (
	"errors"
	"testing"
)

// render simulates a host render pass of a component owned by o.
func render(o *Owner, fn func()) {
	WithOwner(o, func() {
		o.StartRender()
		fn()
		o.EndRender()
	})
}

func TestOnMountRunsAfterCommit(t *testing.T) {
	owner := NewOwner(nil)
	ran := 0

	render(owner, func() {
		OnMount(func() Cleanup {
			ran++
			return nil
		})
	})

	if ran != 0 {
		t.Fatal("OnMount should not run during render")
	}
	if !owner.HasPendingEffects() {
		t.Fatal("effect should be pending after render")
	}

	n, err := owner.RunPendingEffects()
	if err != nil {
		t.Fatalf("RunPendingEffects() error = %v", err)
	}
	if n != 1 || ran != 1 {
		t.Errorf("ran = %d (reported %d), want 1", ran, n)
	}
	if owner.HasPendingEffects() {
		t.Error("no effects should remain pending")
	}
}

func TestOnMountOncePerInstance(t *testing.T) {
	owner := NewOwner(nil)
	ran := 0
	effect := func() {
		OnMount(func() Cleanup {
			ran++
			return nil
		})
	}

	render(owner, effect)
	owner.RunPendingEffects()
	render(owner, effect)
	owner.RunPendingEffects()

	if ran != 1 {
		t.Errorf("ran = %d, want 1", ran)
	}
}

func TestOnMountCleanupOnDispose(t *testing.T) {
	owner := NewOwner(nil)
	cleaned := 0

	render(owner, func() {
		OnMount(func() Cleanup {
			return func() { cleaned++ }
		})
	})
	owner.RunPendingEffects()

	owner.Dispose()
	owner.Dispose()

	if cleaned != 1 {
		t.Errorf("cleanup calls = %d, want 1", cleaned)
	}
}

func TestOnMountDisposedBeforeCommit(t *testing.T) {
	owner := NewOwner(nil)
	ran := false

	render(owner, func() {
		OnMount(func() Cleanup {
			ran = true
			return nil
		})
	})
	owner.Dispose()
	owner.RunPendingEffects()

	if ran {
		t.Error("effect should not run after its owner is disposed")
	}
}

func TestRunPendingEffectsRecoversPanics(t *testing.T) {
	root := NewOwner(nil)
	child := NewOwner(root)
	sibling := false

	render(child, func() {
		OnMount(func() Cleanup { panic("boom") })
		OnMount(func() Cleanup {
			sibling = true
			return nil
		})
	})

	n, err := root.RunPendingEffects()
	if err == nil || !errors.Is(err, ErrPanic) {
		t.Errorf("error = %v, want ErrPanic", err)
	}
	if !sibling {
		t.Error("sibling effect should still run")
	}
	if n != 2 {
		t.Errorf("ran = %d, want 2", n)
	}
}

func TestEffectsRunParentFirst(t *testing.T) {
	root := NewOwner(nil)
	child := NewOwner(root)
	var order []string

	render(child, func() {
		OnMount(func() Cleanup {
			order = append(order, "child")
			return nil
		})
	})
	render(root, func() {
		OnMount(func() Cleanup {
			order = append(order, "root")
			return nil
		})
	})
	root.RunPendingEffects()

	if len(order) != 2 || order[0] != "root" || order[1] != "child" {
		t.Errorf("order = %v, want [root child]", order)
	}
}

func TestOnUnmount(t *testing.T) {
	owner := NewOwner(nil)
	calls := 0
	hook := func() { OnUnmount(func() { calls++ }) }

	render(owner, hook)
	render(owner, hook)
	owner.Dispose()

	if calls != 1 {
		t.Errorf("unmount calls = %d, want 1", calls)
	}
}
