package cmd

import (
	"image/color"
	"testing"

	"github.com/mj1618/wintree/internal/model"
)

func TestUnionBounds(t *testing.T) {
	got := unionBounds([4]int{0, 0, 1920, 1080}, [4]int{-100, 50, 200, 100}, [4]int{1800, 1000, 400, 300}, [4]int{5, 5, 0, 10})
	want := [4]int{-100, 0, 2300, 1300}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := unionBounds(); got != [4]int{} {
		t.Errorf("empty input: got %v", got)
	}
}

func TestFitLabel(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"Notepad", 100, "Notepad"},
		{"Untitled - Notepad", 70, "Untitle..."},
		{"abc", 14, "ab"},
		{"abc", 3, ""},
	}
	for _, tt := range tests {
		if got := fitLabel(tt.s, tt.width); got != tt.want {
			t.Errorf("fitLabel(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}

func TestRenderWindowMap_Size(t *testing.T) {
	img := RenderWindowMap(nil, [4]int{0, 0, 1920, 1080}, 0.25)
	if img.Bounds().Dx() != 480 || img.Bounds().Dy() != 270 {
		t.Errorf("got %v, want 480x270", img.Bounds())
	}

	img = RenderWindowMap(nil, [4]int{}, 0.25)
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Errorf("no bounds: got %v, want 1x1", img.Bounds())
	}
}

func TestRenderWindowMap_FrontWindowOnTop(t *testing.T) {
	windows := []model.Window{
		{Handle: "0x10", Title: "front", Bounds: [4]int{100, 100, 400, 400}, Focused: true},
		{Handle: "0x20", Title: "back", Bounds: [4]int{0, 0, 400, 400}},
	}
	img := RenderWindowMap(windows, [4]int{0, 0, 800, 600}, 0.5)

	// Inside both windows, away from outlines and labels.
	if got := img.RGBAAt(150, 150); got != mapFocused {
		t.Errorf("overlap: got %v, want focused color", got)
	}
	if got := img.RGBAAt(40, 150); got != mapFill {
		t.Errorf("back window: got %v, want fill color", got)
	}
	if got := img.RGBAAt(350, 250); got != mapDesktop {
		t.Errorf("desktop: got %v, want desktop color", got)
	}
	if got := img.RGBAAt(50, 50); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("outline: got %v, want white", got)
	}
}
