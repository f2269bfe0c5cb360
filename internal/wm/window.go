package wm

import (
	"github.com/mj1618/wintree/internal/platform"
	"github.com/pkg/errors"
)

// Window wraps one OS window handle. Each attribute is read from the OS on
// first access and cached for the lifetime of the wrapper. The wrapper is a
// snapshot: get a new one from Query.Window to observe changes.
//
// A Window does not own the OS window. It is not safe for concurrent use.
type Window struct {
	handle platform.Handle
	sys    platform.WindowSystem

	class     cached[string]
	caption   cached[string]
	bounds    cached[platform.Rect]
	parent    cached[platform.Handle]
	style     cached[platform.WindowStyle]
	exStyle   cached[platform.ExtendedStyle]
	minimized cached[bool]
	modern    cached[bool]
	pid       cached[uint32]
	tid       cached[uint32]
}

// NewWindow wraps h. No OS call is made until an accessor is used.
func NewWindow(sys platform.WindowSystem, h platform.Handle) *Window {
	return &Window{handle: h, sys: sys}
}

type cached[T any] struct {
	value T
	ok    bool
}

// load returns the cached value or performs exactly one fetch. Failed fetches
// are not cached.
func load[T any](c *cached[T], h platform.Handle, what string, fetch func(platform.Handle) (T, error)) (T, error) {
	if c.ok {
		return c.value, nil
	}
	v, err := fetch(h)
	if err != nil {
		var zero T
		return zero, errors.Wrapf(err, "%s of window %v", what, h)
	}
	c.value, c.ok = v, true
	return v, nil
}

func (w *Window) Handle() platform.Handle { return w.handle }

func (w *Window) ClassName() (string, error) {
	return load(&w.class, w.handle, "class name", w.sys.ClassName)
}

// Caption returns the window title. An untitled window has an empty caption.
func (w *Window) Caption() (string, error) {
	return load(&w.caption, w.handle, "caption", w.sys.Caption)
}

func (w *Window) Bounds() (platform.Rect, error) {
	return load(&w.bounds, w.handle, "bounds", w.sys.Bounds)
}

// Parent returns NoHandle for unparented windows.
func (w *Window) Parent() (platform.Handle, error) {
	return load(&w.parent, w.handle, "parent", w.sys.Parent)
}

func (w *Window) Style() (platform.WindowStyle, error) {
	return load(&w.style, w.handle, "style", w.sys.Style)
}

func (w *Window) ExtendedStyle() (platform.ExtendedStyle, error) {
	return load(&w.exStyle, w.handle, "extended style", w.sys.ExtendedStyle)
}

func (w *Window) IsMinimized() (bool, error) {
	return load(&w.minimized, w.handle, "minimized state", w.sys.IsMinimized)
}

// IsModernApp reports whether the window belongs to the sandboxed app
// subsystem.
func (w *Window) IsModernApp() (bool, error) {
	return load(&w.modern, w.handle, "modern app state", w.sys.IsModernApp)
}

func (w *Window) ProcessID() (uint32, error) {
	return load(&w.pid, w.handle, "process id", w.sys.ProcessID)
}

func (w *Window) ThreadID() (uint32, error) {
	return load(&w.tid, w.handle, "thread id", w.sys.ThreadID)
}

// Load reads every attribute that is not cached yet. It stops at the first
// failure.
func (w *Window) Load() error {
	steps := []func() error{
		func() error { _, err := w.ClassName(); return err },
		func() error { _, err := w.Caption(); return err },
		func() error { _, err := w.Bounds(); return err },
		func() error { _, err := w.Parent(); return err },
		func() error { _, err := w.Style(); return err },
		func() error { _, err := w.ExtendedStyle(); return err },
		func() error { _, err := w.IsMinimized(); return err },
		func() error { _, err := w.IsModernApp(); return err },
		func() error { _, err := w.ProcessID(); return err },
		func() error { _, err := w.ThreadID(); return err },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
