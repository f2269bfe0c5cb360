package model

import "strings"

// WindowFilter selects windows from a listing. Zero fields match everything.
type WindowFilter struct {
	PID   int     // Process ID (0 = unset)
	Class string  // Exact class name, case-insensitive
	Title string  // Title substring, case-insensitive
	BBox  *[4]int // Only windows intersecting this [x, y, w, h] rectangle
}

// Match reports whether w passes every set criterion of f.
func (f WindowFilter) Match(w Window) bool {
	if f.PID != 0 && w.PID != f.PID {
		return false
	}
	if f.Class != "" && !strings.EqualFold(w.Class, f.Class) {
		return false
	}
	if f.Title != "" && !strings.Contains(strings.ToLower(w.Title), strings.ToLower(f.Title)) {
		return false
	}
	if f.BBox != nil && !boundsIntersect(w.Bounds, *f.BBox) {
		return false
	}
	return true
}

// boundsIntersect checks if two [x, y, width, height] rectangles overlap.
func boundsIntersect(a, b [4]int) bool {
	ax1, ay1, ax2, ay2 := a[0], a[1], a[0]+a[2], a[1]+a[3]
	bx1, by1, bx2, by2 := b[0], b[1], b[0]+b[2], b[1]+b[3]
	return ax1 < bx2 && ax2 > bx1 && ay1 < by2 && ay2 > by1
}
