package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// Handle identifies one OS window. It is borrowed, never owned.
type Handle uintptr

// NoHandle denotes "no window" and terminates sibling chains.
const NoHandle Handle = 0

// IsZero reports whether h is NoHandle.
func (h Handle) IsZero() bool { return h == NoHandle }

func (h Handle) String() string {
	return fmt.Sprintf("0x%X", uintptr(h))
}

// ParseHandle parses a window handle given as decimal or 0x-prefixed hex.
func ParseHandle(s string) (Handle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoHandle, fmt.Errorf("invalid handle: empty")
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return NoHandle, fmt.Errorf("invalid handle %q: %w", s, err)
	}
	return Handle(v), nil
}

// Rect is a window rectangle in screen coordinates.
type Rect struct {
	Left, Top, Right, Bottom int
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Bounds returns r as x, y, width, height.
func (r Rect) Bounds() [4]int {
	return [4]int{r.Left, r.Top, r.Width(), r.Height()}
}

// WindowStyle holds WS_* flags.
type WindowStyle uint32

// StyleVisible is WS_VISIBLE.
const StyleVisible WindowStyle = 0x10000000

func (s WindowStyle) Has(flag WindowStyle) bool { return s&flag != 0 }

// ExtendedStyle holds WS_EX_* flags.
type ExtendedStyle uint32

const (
	ExStyleTopmost             ExtendedStyle = 0x00000008
	ExStyleToolWindow          ExtendedStyle = 0x00000080
	ExStyleAppWindow           ExtendedStyle = 0x00040000
	ExStyleNoRedirectionBitmap ExtendedStyle = 0x00200000
)

func (s ExtendedStyle) Has(flag ExtendedStyle) bool { return s&flag != 0 }

// Flags returns the names of the known extended style bits set in s.
func (s ExtendedStyle) Flags() []string {
	var names []string
	if s.Has(ExStyleTopmost) {
		names = append(names, "topmost")
	}
	if s.Has(ExStyleToolWindow) {
		names = append(names, "toolwindow")
	}
	if s.Has(ExStyleAppWindow) {
		names = append(names, "appwindow")
	}
	if s.Has(ExStyleNoRedirectionBitmap) {
		names = append(names, "noredirectionbitmap")
	}
	return names
}

// ListOptions controls window listing.
type ListOptions struct {
	All      bool    // Every window in z-order, not only top-level ones
	Parent   Handle  // List children of this window (NoHandle = desktop root)
	NoIgnore bool    // Do not apply the class ignore-list
	PID      int     // Filter by PID (0 = unset)
	Class    string  // Filter by exact class name
	Title    string  // Filter by title substring
	BBox     *[4]int // Only windows intersecting this rectangle (nil = no filter)
}

// ParseBBox parses a "x,y,w,h" string.
func ParseBBox(s string) (*[4]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid bbox %q: expected x,y,w,h", s)
	}
	var vals [4]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid bbox %q: %w", s, err)
		}
		vals[i] = v
	}
	return &vals, nil
}
