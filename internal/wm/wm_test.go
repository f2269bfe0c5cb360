package wm

import (
	"github.com/mj1618/wintree/internal/platform"
	"github.com/mj1618/wintree/internal/platform/platformtest"
)

// appWindow returns a window that passes every top-level rule.
func appWindow(h platform.Handle) platformtest.Window {
	return platformtest.Window{
		Handle:  h,
		Class:   "Notepad",
		Caption: "notes.txt - Notepad",
		Rect:    platform.Rect{Left: 100, Top: 100, Right: 900, Bottom: 700},
		Style:   platform.StyleVisible,
		PID:     100,
		TID:     1,
	}
}

func newQuery(fake *platformtest.Fake) *Query {
	return NewQuery(fake.Provider(), Options{})
}

func handles(windows []*Window) []platform.Handle {
	out := make([]platform.Handle, len(windows))
	for i, w := range windows {
		out[i] = w.Handle()
	}
	return out
}
