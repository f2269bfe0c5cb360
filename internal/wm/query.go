package wm

import (
	"iter"
	"log/slog"

	"github.com/mj1618/wintree/internal/platform"
	"github.com/pkg/errors"
)

// DefaultMaxSiblings bounds a single sibling walk.
const DefaultMaxSiblings = 1 << 16

// Options configures a Query. Zero values select the defaults.
type Options struct {
	// Ignore is the class ignore-list. nil selects DefaultIgnoreList.
	Ignore *IgnoreList

	// MaxSiblings stops a walk with ErrSiblingLimit after this many windows.
	MaxSiblings int

	Logger *slog.Logger
}

// Query is the entry point for window traversal, classification and
// linkage. It is not safe for concurrent use.
type Query struct {
	sys         platform.WindowSystem
	procs       platform.ProcessInspector
	ignore      *IgnoreList
	maxSiblings int
	logger      *slog.Logger
}

// NewQuery creates a Query over the provider's backends.
func NewQuery(p *platform.Provider, opts Options) *Query {
	q := &Query{
		sys:         p.Windows,
		procs:       p.Processes,
		ignore:      opts.Ignore,
		maxSiblings: opts.MaxSiblings,
		logger:      opts.Logger,
	}
	if q.ignore == nil {
		q.ignore = DefaultIgnoreList()
	}
	if q.maxSiblings <= 0 {
		q.maxSiblings = DefaultMaxSiblings
	}
	if q.logger == nil {
		q.logger = slog.New(slog.DiscardHandler)
	}
	return q
}

// IgnoreList returns the list consulted when classification ignores known
// classes. Mutations affect later walks.
func (q *Query) IgnoreList() *IgnoreList { return q.ignore }

// Window returns a fresh wrapper for h.
func (q *Query) Window(h platform.Handle) *Window {
	return NewWindow(q.sys, h)
}

// TopWindows walks the children of parent in z-order, front to back. A nil
// parent walks the top-level windows of the desktop. The walk ends at the
// first NoHandle. A handle seen twice ends the walk with ErrSiblingCycle.
// When the first window cannot be fetched the only error yielded matches
// ErrWalkNotStarted.
func (q *Query) TopWindows(parent *Window) iter.Seq2[*Window, error] {
	return func(yield func(*Window, error) bool) {
		root := platform.NoHandle
		if parent != nil {
			root = parent.Handle()
		}
		h, err := q.sys.TopWindow(root)
		if err != nil {
			yield(nil, notStarted(errors.Wrapf(err, "first window of %v", root)))
			return
		}

		seen := make(map[platform.Handle]struct{})
		for !h.IsZero() {
			if len(seen) >= q.maxSiblings {
				yield(nil, errors.Wrapf(ErrSiblingLimit, "stopped after %d windows", len(seen)))
				return
			}
			if _, dup := seen[h]; dup {
				yield(nil, errors.Wrapf(ErrSiblingCycle, "window %v reached twice", h))
				return
			}
			seen[h] = struct{}{}

			if !yield(q.Window(h), nil) {
				return
			}

			prev := h
			if h, err = q.sys.NextWindow(prev); err != nil {
				yield(nil, errors.Wrapf(err, "window after %v", prev))
				return
			}
		}
		q.logger.Debug("window walk finished", "parent", root, "windows", len(seen))
	}
}

// TopLevelWindows yields the desktop's windows that classify as top-level,
// front to back. A window whose attributes cannot be read is yielded with
// its error and the walk continues.
func (q *Query) TopLevelWindows(ignoreKnownClasses bool) iter.Seq2[*Window, error] {
	return func(yield func(*Window, error) bool) {
		for w, err := range q.TopWindows(nil) {
			if err != nil {
				yield(nil, err)
				return
			}
			top, err := q.IsTopLevel(w, ignoreKnownClasses)
			if err != nil {
				if !yield(w, err) {
					return
				}
				continue
			}
			if top && !yield(w, nil) {
				return
			}
		}
	}
}

// ActiveWindow wraps the foreground window. When no window has the focus
// the wrapper holds NoHandle.
func (q *Query) ActiveWindow() (*Window, error) {
	h, err := q.sys.ForegroundWindow()
	if err != nil {
		return nil, errors.Wrap(err, "foreground window")
	}
	return q.Window(h), nil
}

// DesktopWindow wraps the desktop root window.
func (q *Query) DesktopWindow() (*Window, error) {
	h, err := q.sys.DesktopWindow()
	if err != nil {
		return nil, errors.Wrap(err, "desktop window")
	}
	return q.Window(h), nil
}
