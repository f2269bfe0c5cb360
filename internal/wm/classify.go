package wm

import "github.com/mj1618/wintree/internal/platform"

// Rejection names the rule that disqualified a window from being top-level.
type Rejection int

const (
	RejectNone Rejection = iota
	RejectIgnoredClass
	RejectNoCaption
	RejectEmptyBounds
	RejectHasParent
	RejectToolWindow
	RejectNoRedirectionBitmap
	RejectHidden
	RejectMinimized
)

var rejectionNames = map[Rejection]string{
	RejectNone:                "top-level",
	RejectIgnoredClass:        "class is on the ignore-list",
	RejectNoCaption:           "window has no caption",
	RejectEmptyBounds:         "window has empty bounds",
	RejectHasParent:           "window has a parent",
	RejectToolWindow:          "window is a tool window",
	RejectNoRedirectionBitmap: "window is not rendered normally (no redirection bitmap)",
	RejectHidden:              "window is not visible",
	RejectMinimized:           "window is minimized",
}

func (r Rejection) String() string {
	if s, ok := rejectionNames[r]; ok {
		return s
	}
	return "unknown"
}

// Classify evaluates the top-level rules in order and returns the first one
// that rejects w, or RejectNone. Later rules are not evaluated, so their
// attributes are not fetched. A nil ignore-list skips the class rule.
func Classify(w *Window, ignore *IgnoreList) (Rejection, error) {
	if ignore.Len() > 0 {
		class, err := w.ClassName()
		if err != nil {
			return RejectNone, err
		}
		if ignore.Contains(class) {
			return RejectIgnoredClass, nil
		}
	}

	caption, err := w.Caption()
	if err != nil {
		return RejectNone, err
	}
	if caption == "" {
		return RejectNoCaption, nil
	}

	bounds, err := w.Bounds()
	if err != nil {
		return RejectNone, err
	}
	if bounds.Empty() {
		return RejectEmptyBounds, nil
	}

	parent, err := w.Parent()
	if err != nil {
		return RejectNone, err
	}
	if !parent.IsZero() {
		return RejectHasParent, nil
	}

	exStyle, err := w.ExtendedStyle()
	if err != nil {
		return RejectNone, err
	}
	if exStyle.Has(platform.ExStyleToolWindow) {
		return RejectToolWindow, nil
	}
	// Modern apps legitimately render without a redirection bitmap.
	if exStyle.Has(platform.ExStyleNoRedirectionBitmap) {
		modern, err := w.IsModernApp()
		if err != nil {
			return RejectNone, err
		}
		if !modern {
			return RejectNoRedirectionBitmap, nil
		}
	}

	// Hidden preview windows
	style, err := w.Style()
	if err != nil {
		return RejectNone, err
	}
	if !style.Has(platform.StyleVisible) {
		return RejectHidden, nil
	}

	minimized, err := w.IsMinimized()
	if err != nil {
		return RejectNone, err
	}
	if minimized {
		return RejectMinimized, nil
	}
	return RejectNone, nil
}

// Classify applies the rules with the query's ignore-list when
// ignoreKnownClasses is set.
func (q *Query) Classify(w *Window, ignoreKnownClasses bool) (Rejection, error) {
	var ignore *IgnoreList
	if ignoreKnownClasses {
		ignore = q.ignore
	}
	return Classify(w, ignore)
}

// IsTopLevel reports whether w is a genuine, visible, unparented
// application window.
func (q *Query) IsTopLevel(w *Window, ignoreKnownClasses bool) (bool, error) {
	r, err := q.Classify(w, ignoreKnownClasses)
	if err != nil {
		return false, err
	}
	return r == RejectNone, nil
}
