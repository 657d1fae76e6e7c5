package vango

import "errors"

// ErrHookOrder is raised in DebugMode when a component calls hooks in a
// different order or number than on its first render.
var ErrHookOrder = errors.New("vango: hook order changed between renders")

// ErrPanic wraps non-error values recovered from panicking effects.
var ErrPanic = errors.New("vango: effect panicked")

