package wm

import (
	"errors"
	"testing"

	"github.com/mj1618/wintree/internal/platform"
	"github.com/mj1618/wintree/internal/platform/platformtest"
	"github.com/nalgeon/be"
)

func classify(t *testing.T, w platformtest.Window, ignoreKnownClasses bool) Rejection {
	t.Helper()
	fake := platformtest.New().Add(w)
	q := newQuery(fake)
	r, err := q.Classify(q.Window(w.Handle), ignoreKnownClasses)
	be.Err(t, err, nil)
	return r
}

func TestClassify_AppWindowIsTopLevel(t *testing.T) {
	be.Equal(t, classify(t, appWindow(0x10), true), RejectNone)
}

func TestClassify_EachRuleRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*platformtest.Window)
		want   Rejection
	}{
		{"ignored class", func(w *platformtest.Window) { w.Class = "Progman" }, RejectIgnoredClass},
		{"empty caption", func(w *platformtest.Window) { w.Caption = "" }, RejectNoCaption},
		{"zero width", func(w *platformtest.Window) { w.Rect.Right = w.Rect.Left }, RejectEmptyBounds},
		{"zero height", func(w *platformtest.Window) { w.Rect.Bottom = w.Rect.Top }, RejectEmptyBounds},
		{"has parent", func(w *platformtest.Window) { w.Parent = 0x99 }, RejectHasParent},
		{"tool window", func(w *platformtest.Window) { w.ExStyle |= platform.ExStyleToolWindow }, RejectToolWindow},
		{"no redirection bitmap", func(w *platformtest.Window) { w.ExStyle |= platform.ExStyleNoRedirectionBitmap }, RejectNoRedirectionBitmap},
		{"hidden", func(w *platformtest.Window) { w.Style = 0 }, RejectHidden},
		{"minimized", func(w *platformtest.Window) { w.Minimized = true }, RejectMinimized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := appWindow(0x10)
			tt.mutate(&w)
			be.Equal(t, classify(t, w, true), tt.want)
		})
	}
}

func TestClassify_ModernAppMayLackRedirectionBitmap(t *testing.T) {
	w := appWindow(0x10)
	w.ExStyle = platform.ExStyleNoRedirectionBitmap
	w.ModernApp = true
	be.Equal(t, classify(t, w, true), RejectNone)

	w.ExStyle |= platform.ExStyleToolWindow
	be.Equal(t, classify(t, w, true), RejectToolWindow)
}

func TestClassify_FirstFailingRuleWins(t *testing.T) {
	w := appWindow(0x10)
	w.Caption = ""
	w.Parent = 0x99
	w.Minimized = true
	be.Equal(t, classify(t, w, true), RejectNoCaption)
}

func TestClassify_ShortCircuitsBeforeStyleFetch(t *testing.T) {
	w := appWindow(0x10)
	w.Caption = ""
	fake := platformtest.New().Add(w)
	boom := errors.New("style fetch must not happen")
	fake.Errors["Style"] = boom
	fake.Errors["ExtendedStyle"] = boom
	q := newQuery(fake)

	r, err := q.Classify(q.Window(0x10), true)
	be.Err(t, err, nil)
	be.Equal(t, r, RejectNoCaption)
	be.Equal(t, fake.Calls["Style"], 0)
	be.Equal(t, fake.Calls["ExtendedStyle"], 0)
	be.Equal(t, fake.Calls["Bounds"], 0)
}

func TestClassify_ShellWindowDependsOnIgnoreFlag(t *testing.T) {
	w := appWindow(0x10)
	w.Class = "Progman"
	w.Caption = "Program Manager"

	be.Equal(t, classify(t, w, true), RejectIgnoredClass)
	be.Equal(t, classify(t, w, false), RejectNone)
}

func TestClassify_EmptyCaptionAlwaysRejected(t *testing.T) {
	w := appWindow(0x10)
	w.Caption = ""
	for _, ignore := range []bool{true, false} {
		be.Equal(t, classify(t, w, ignore), RejectNoCaption)
	}
}

func TestClassify_NoIgnoreSkipsClassFetch(t *testing.T) {
	fake := platformtest.New().Add(appWindow(0x10))
	q := newQuery(fake)

	_, err := q.Classify(q.Window(0x10), false)
	be.Err(t, err, nil)
	be.Equal(t, fake.Calls["ClassName"], 0)
}

func TestClassify_IsDeterministicOverSnapshot(t *testing.T) {
	fake := platformtest.New().Add(appWindow(0x10))
	q := newQuery(fake)
	w := q.Window(0x10)

	first, err := q.IsTopLevel(w, true)
	be.Err(t, err, nil)
	calls := fake.AttributeCalls()

	fake.Windows[0x10].Minimized = true
	second, err := q.IsTopLevel(w, true)
	be.Err(t, err, nil)

	be.True(t, first)
	be.Equal(t, second, first)
	be.Equal(t, fake.AttributeCalls(), calls)
}

func TestClassify_FetchErrorIsReturned(t *testing.T) {
	fake := platformtest.New().Add(appWindow(0x10))
	fake.Errors["Style"] = platform.ErrInvalidHandle
	q := newQuery(fake)

	top, err := q.IsTopLevel(q.Window(0x10), true)
	be.Err(t, err, platform.ErrInvalidHandle)
	be.True(t, !top)
}

func TestClassify_NilIgnoreList(t *testing.T) {
	fake := platformtest.New().Add(appWindow(0x10))
	r, err := Classify(NewWindow(fake, 0x10), nil)
	be.Err(t, err, nil)
	be.Equal(t, r, RejectNone)
}

func TestRejection_String(t *testing.T) {
	be.Equal(t, RejectNone.String(), "top-level")
	be.Equal(t, RejectMinimized.String(), "window is minimized")
	be.Equal(t, Rejection(42).String(), "unknown")
}
