package wm

import (
	"github.com/mj1618/wintree/internal/model"
	"github.com/mj1618/wintree/internal/platform"
)

// Describe loads every attribute of w and returns its serializable snapshot.
func (q *Query) Describe(w *Window, ignoreKnownClasses bool) (model.Window, error) {
	if err := w.Load(); err != nil {
		return model.Window{}, err
	}
	top, err := q.IsTopLevel(w, ignoreKnownClasses)
	if err != nil {
		return model.Window{}, err
	}

	// All attributes are cached by Load; the errors below are always nil.
	class, _ := w.ClassName()
	caption, _ := w.Caption()
	bounds, _ := w.Bounds()
	parent, _ := w.Parent()
	style, _ := w.Style()
	exStyle, _ := w.ExtendedStyle()
	minimized, _ := w.IsMinimized()
	modern, _ := w.IsModernApp()
	pid, _ := w.ProcessID()
	tid, _ := w.ThreadID()

	out := model.Window{
		Handle:    w.Handle().String(),
		Class:     class,
		Title:     caption,
		Bounds:    bounds.Bounds(),
		PID:       int(pid),
		TID:       int(tid),
		Visible:   style.Has(platform.StyleVisible),
		Minimized: minimized,
		ModernApp: modern,
		ExStyle:   exStyle.Flags(),
		TopLevel:  top,
	}
	if !parent.IsZero() {
		out.Parent = parent.String()
	}
	return out, nil
}

// Explain classifies w and describes the outcome.
func (q *Query) Explain(w *Window, ignoreKnownClasses bool) (model.Verdict, error) {
	desc, err := q.Describe(w, ignoreKnownClasses)
	if err != nil {
		return model.Verdict{}, err
	}
	r, err := q.Classify(w, ignoreKnownClasses)
	if err != nil {
		return model.Verdict{}, err
	}
	v := model.Verdict{Window: desc, TopLevel: r == RejectNone}
	if r != RejectNone {
		v.Rule = int(r)
		v.Reason = r.String()
	}
	return v, nil
}
