package wm

import (
	"testing"

	"github.com/mj1618/wintree/internal/platform"
	"github.com/mj1618/wintree/internal/platform/platformtest"
	"github.com/nalgeon/be"
)

func TestDescribe(t *testing.T) {
	w := appWindow(0x10)
	w.ExStyle = platform.ExStyleAppWindow
	w.TID = 7
	fake := platformtest.New().Add(w)
	q := newQuery(fake)

	got, err := q.Describe(q.Window(0x10), true)
	be.Err(t, err, nil)
	be.Equal(t, got.Handle, "0x10")
	be.Equal(t, got.Class, "Notepad")
	be.Equal(t, got.Title, "notes.txt - Notepad")
	be.Equal(t, got.Bounds, [4]int{100, 100, 800, 600})
	be.Equal(t, got.Parent, "")
	be.Equal(t, got.PID, 100)
	be.Equal(t, got.TID, 7)
	be.True(t, got.Visible)
	be.True(t, got.TopLevel)
	be.Equal(t, got.ExStyle, []string{"appwindow"})
	be.Equal(t, fake.AttributeCalls(), 10)
}

func TestDescribe_ChildWindow(t *testing.T) {
	w := appWindow(0x11)
	w.Parent = 0x10
	fake := platformtest.New().Add(w)
	q := newQuery(fake)

	got, err := q.Describe(q.Window(0x11), true)
	be.Err(t, err, nil)
	be.Equal(t, got.Parent, "0x10")
	be.True(t, !got.TopLevel)
}

func TestExplain(t *testing.T) {
	w := appWindow(0x10)
	w.Minimized = true
	fake := platformtest.New().Add(w)
	q := newQuery(fake)

	v, err := q.Explain(q.Window(0x10), true)
	be.Err(t, err, nil)
	be.True(t, !v.TopLevel)
	be.Equal(t, v.Rule, int(RejectMinimized))
	be.Equal(t, v.Reason, "window is minimized")
}

func TestExplain_TopLevelHasNoReason(t *testing.T) {
	fake := platformtest.New().Add(appWindow(0x10))
	q := newQuery(fake)

	v, err := q.Explain(q.Window(0x10), true)
	be.Err(t, err, nil)
	be.True(t, v.TopLevel)
	be.Equal(t, v.Reason, "")
}

func TestDescribe_IgnoreFlag(t *testing.T) {
	w := appWindow(0x10)
	w.Class = "Progman"
	fake := platformtest.New().Add(w)
	q := newQuery(fake)

	got, err := q.Describe(q.Window(0x10), true)
	be.Err(t, err, nil)
	be.True(t, !got.TopLevel)

	got, err = q.Describe(q.Window(0x10), false)
	be.Err(t, err, nil)
	be.True(t, got.TopLevel)
}
