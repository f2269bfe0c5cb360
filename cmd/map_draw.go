package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/mj1618/wintree/internal/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// basicfont.Face7x13 glyph size in pixels.
const (
	glyphWidth  = 7
	glyphHeight = 13
)

var (
	mapBackground = color.RGBA{R: 32, G: 32, B: 40, A: 255}
	mapDesktop    = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	mapFill       = color.RGBA{R: 40, G: 110, B: 200, A: 255}
	mapFocused    = color.RGBA{R: 220, G: 120, B: 30, A: 255}
	mapOutline    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	mapText       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	mapTextShadow = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// unionBounds returns the smallest [x, y, w, h] rectangle covering every
// non-empty input rectangle.
func unionBounds(rects ...[4]int) [4]int {
	var minX, minY, maxX, maxY int
	first := true
	for _, r := range rects {
		if r[2] <= 0 || r[3] <= 0 {
			continue
		}
		x1, y1, x2, y2 := r[0], r[1], r[0]+r[2], r[1]+r[3]
		if first {
			minX, minY, maxX, maxY = x1, y1, x2, y2
			first = false
			continue
		}
		minX, minY = min(minX, x1), min(minY, y1)
		maxX, maxY = max(maxX, x2), max(maxY, y2)
	}
	return [4]int{minX, minY, maxX - minX, maxY - minY}
}

// RenderWindowMap draws the desktop rectangle and every window's bounds,
// scaled by scale. windows are in z-order front to back; they are painted
// back to front so the front window ends up on top.
func RenderWindowMap(windows []model.Window, desktop [4]int, scale float64) *image.RGBA {
	rects := [][4]int{desktop}
	for _, w := range windows {
		rects = append(rects, w.Bounds)
	}
	canvas := unionBounds(rects...)

	width := max(1, int(float64(canvas[2])*scale))
	height := max(1, int(float64(canvas[3])*scale))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(mapBackground), image.Point{}, draw.Src)

	toImage := func(b [4]int) image.Rectangle {
		x := int(float64(b[0]-canvas[0]) * scale)
		y := int(float64(b[1]-canvas[1]) * scale)
		return image.Rect(x, y, x+int(float64(b[2])*scale), y+int(float64(b[3])*scale))
	}

	if desktop[2] > 0 && desktop[3] > 0 {
		draw.Draw(img, toImage(desktop).Intersect(img.Bounds()), image.NewUniform(mapDesktop), image.Point{}, draw.Src)
	}

	for i := len(windows) - 1; i >= 0; i-- {
		w := windows[i]
		r := toImage(w.Bounds).Intersect(img.Bounds())
		if r.Empty() {
			continue
		}
		fill := mapFill
		if w.Focused {
			fill = mapFocused
		}
		draw.Draw(img, r, image.NewUniform(fill), image.Point{}, draw.Src)
		drawRectangle(img, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, mapOutline)

		label := fitLabel(fmt.Sprintf("[%d] %s", i+1, w.Title), r.Dx()-4)
		if label != "" && r.Dy() > glyphHeight+2 {
			drawTextWithShadow(img, label, r.Min.X+2, r.Min.Y+glyphHeight, mapText, mapTextShadow)
		}
	}
	return img
}

// fitLabel truncates s to the number of glyphs that fit in width pixels.
func fitLabel(s string, width int) string {
	n := width / glyphWidth
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// isWithinBounds checks if a point is within the image bounds
func isWithinBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawRectangle draws a rectangle outline on the image
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()

	// Clamp to image bounds
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}

	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x < x2; x++ {
		if isWithinBounds(bounds, x, y1) {
			img.Set(x, y1, c)
		}
		if isWithinBounds(bounds, x, y2-1) {
			img.Set(x, y2-1, c)
		}
	}
	for y := y1; y < y2; y++ {
		if isWithinBounds(bounds, x1, y) {
			img.Set(x1, y, c)
		}
		if isWithinBounds(bounds, x2-1, y) {
			img.Set(x2-1, y, c)
		}
	}
}

// drawTextWithShadow draws text with its baseline at (x, y) over a one
// pixel drop shadow.
func drawTextWithShadow(img *image.RGBA, text string, x, y int, textColor, shadowColor color.Color) {
	for _, pass := range []struct {
		dx, dy int
		c      color.Color
	}{
		{1, 1, shadowColor},
		{0, 0, textColor},
	} {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(pass.c),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(x+pass.dx, y+pass.dy),
		}
		d.DrawString(text)
	}
}
