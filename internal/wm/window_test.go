package wm

import (
	"errors"
	"testing"

	"github.com/mj1618/wintree/internal/platform"
	"github.com/mj1618/wintree/internal/platform/platformtest"
	"github.com/nalgeon/be"
)

func TestWindow_AccessorFetchesOnce(t *testing.T) {
	fake := platformtest.New().Add(appWindow(0x10))
	w := newQuery(fake).Window(0x10)

	first, err := w.ClassName()
	be.Err(t, err, nil)
	second, err := w.ClassName()
	be.Err(t, err, nil)

	be.Equal(t, first, "Notepad")
	be.Equal(t, second, first)
	be.Equal(t, fake.Calls["ClassName"], 1)
}

func TestWindow_EveryAccessorFetchesOnce(t *testing.T) {
	fake := platformtest.New().Add(appWindow(0x10))
	w := newQuery(fake).Window(0x10)

	for range 2 {
		be.Err(t, w.Load(), nil)
	}
	be.Equal(t, fake.AttributeCalls(), 10)
	for _, name := range []string{"ClassName", "Caption", "Bounds", "Parent", "Style", "ExtendedStyle", "IsMinimized", "IsModernApp", "ProcessID", "ThreadID"} {
		be.Equal(t, fake.Calls[name], 1)
	}
}

func TestWindow_NoCallsUntilAccessed(t *testing.T) {
	fake := platformtest.New().Add(appWindow(0x10))
	w := newQuery(fake).Window(0x10)

	be.Equal(t, w.Handle(), platform.Handle(0x10))
	be.Equal(t, fake.AttributeCalls(), 0)
}

func TestWindow_AbsentValuesAreNotErrors(t *testing.T) {
	fake := platformtest.New().Add(platformtest.Window{Handle: 0x10})
	w := newQuery(fake).Window(0x10)

	caption, err := w.Caption()
	be.Err(t, err, nil)
	be.Equal(t, caption, "")

	parent, err := w.Parent()
	be.Err(t, err, nil)
	be.True(t, parent.IsZero())

	bounds, err := w.Bounds()
	be.Err(t, err, nil)
	be.True(t, bounds.Empty())
}

func TestWindow_FailedFetchIsNotCached(t *testing.T) {
	boom := errors.New("boom")
	fake := platformtest.New().Add(appWindow(0x10))
	fake.Errors["Caption"] = boom
	w := newQuery(fake).Window(0x10)

	_, err := w.Caption()
	be.Err(t, err, boom)

	delete(fake.Errors, "Caption")
	caption, err := w.Caption()
	be.Err(t, err, nil)
	be.Equal(t, caption, "notes.txt - Notepad")
	be.Equal(t, fake.Calls["Caption"], 2)
}

func TestWindow_FailureStaysOnTheRequestedAccessor(t *testing.T) {
	fake := platformtest.New().Add(appWindow(0x10))
	fake.Errors["Style"] = errors.New("style unavailable")
	w := newQuery(fake).Window(0x10)

	_, err := w.Style()
	be.Err(t, err, "style unavailable")

	class, err := w.ClassName()
	be.Err(t, err, nil)
	be.Equal(t, class, "Notepad")
}

func TestWindow_SnapshotIsNotRefreshed(t *testing.T) {
	fake := platformtest.New().Add(appWindow(0x10))
	q := newQuery(fake)
	old := q.Window(0x10)

	caption, err := old.Caption()
	be.Err(t, err, nil)
	be.Equal(t, caption, "notes.txt - Notepad")

	fake.Windows[0x10].Caption = "*notes.txt - Notepad"

	caption, _ = old.Caption()
	be.Equal(t, caption, "notes.txt - Notepad")

	fresh, err := q.Window(0x10).Caption()
	be.Err(t, err, nil)
	be.Equal(t, fresh, "*notes.txt - Notepad")
}

func TestWindow_LoadStopsAtFirstFailure(t *testing.T) {
	fake := platformtest.New().Add(appWindow(0x10))
	fake.Errors["Bounds"] = platform.ErrInvalidHandle
	w := newQuery(fake).Window(0x10)

	be.Err(t, w.Load(), platform.ErrInvalidHandle)
	be.Equal(t, fake.Calls["Parent"], 0)
}

func TestWindow_UnknownHandle(t *testing.T) {
	fake := platformtest.New()
	_, err := newQuery(fake).Window(0x99).ClassName()
	be.Err(t, err, platform.ErrInvalidHandle)
}
