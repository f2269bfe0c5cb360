package cmd

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/mj1618/wintree/internal/model"
	"github.com/mj1618/wintree/internal/output"
	"github.com/mj1618/wintree/internal/platform"
	"github.com/mj1618/wintree/internal/wm"
)

// newQuery builds a window query over the current platform provider.
func newQuery() (*wm.Query, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	return wm.NewQuery(provider, appConfig.QueryOptions(logger)), nil
}

// resolveWindow returns the window named by hwnd, or the foreground window
// when hwnd is empty.
func resolveWindow(q *wm.Query, hwnd string) (*wm.Window, error) {
	if hwnd == "" {
		w, err := q.ActiveWindow()
		if err != nil {
			return nil, err
		}
		if w.Handle().IsZero() {
			return nil, fmt.Errorf("no foreground window; specify --hwnd")
		}
		return w, nil
	}
	h, err := platform.ParseHandle(hwnd)
	if err != nil {
		return nil, err
	}
	if h.IsZero() {
		return nil, fmt.Errorf("invalid handle %q: must be non-zero", hwnd)
	}
	return q.Window(h), nil
}

// foregroundHandle returns the focused window handle, or NoHandle.
func foregroundHandle(q *wm.Query) platform.Handle {
	w, err := q.ActiveWindow()
	if err != nil {
		logger.Debug("no foreground window", "err", err)
		return platform.NoHandle
	}
	return w.Handle()
}

// collectWindows describes every window of seq that matches filter.
// Windows that cannot be read are reported in Errors and skipped. A walk
// that cannot start fails the whole listing.
func collectWindows(q *wm.Query, seq iter.Seq2[*wm.Window, error], filter model.WindowFilter, ignoreKnownClasses bool) ([]model.Window, []string, error) {
	focused := foregroundHandle(q)
	windows := []model.Window{}
	var problems []string
	for w, err := range seq {
		if err != nil {
			if errors.Is(err, wm.ErrWalkNotStarted) {
				return nil, nil, err
			}
			logger.Warn("window skipped", "err", err)
			problems = append(problems, err.Error())
			continue
		}
		desc, err := q.Describe(w, ignoreKnownClasses)
		if err != nil {
			logger.Warn("window skipped", "hwnd", w.Handle(), "err", err)
			problems = append(problems, err.Error())
			continue
		}
		if !filter.Match(desc) {
			continue
		}
		desc.Focused = !focused.IsZero() && w.Handle() == focused
		windows = append(windows, desc)
	}
	return windows, problems, nil
}

// listWindows runs a listing for the CLI and the MCP server.
func listWindows(q *wm.Query, opts platform.ListOptions) (output.ListResult, error) {
	result := output.ListResult{TS: time.Now().Unix(), PID: opts.PID}
	ignoreKnownClasses := !opts.NoIgnore

	var seq iter.Seq2[*wm.Window, error]
	switch {
	case !opts.Parent.IsZero():
		result.Parent = opts.Parent.String()
		seq = q.TopWindows(q.Window(opts.Parent))
	case opts.All:
		seq = q.TopWindows(nil)
	default:
		seq = q.TopLevelWindows(ignoreKnownClasses)
	}

	filter := model.WindowFilter{PID: opts.PID, Class: opts.Class, Title: opts.Title, BBox: opts.BBox}
	windows, problems, err := collectWindows(q, seq, filter, ignoreKnownClasses)
	if err != nil {
		return result, err
	}
	result.Windows = windows
	result.Errors = problems
	return result, nil
}

// linkedWindows lists the windows owned by the threads of w's process.
func linkedWindows(q *wm.Query, w *wm.Window, filter model.WindowFilter) (output.ListResult, error) {
	result := output.ListResult{TS: time.Now().Unix()}
	pid, err := w.ProcessID()
	if err != nil {
		return result, err
	}
	result.PID = int(pid)

	windows, problems, err := collectWindows(q, q.LinkedWindows(w), filter, true)
	if err != nil {
		return result, err
	}
	result.Windows = windows
	result.Errors = problems
	return result, nil
}

// describeWindow describes a single window and marks whether it has focus.
func describeWindow(q *wm.Query, w *wm.Window) (model.Window, error) {
	desc, err := q.Describe(w, true)
	if err != nil {
		return model.Window{}, err
	}
	focused := foregroundHandle(q)
	desc.Focused = !focused.IsZero() && w.Handle() == focused
	return desc, nil
}
