package platform

// WindowSystem answers window enumeration and attribute queries against the
// OS window manager. Absent values (no parent, empty caption, empty rect) are
// returned as zero values, not errors.
type WindowSystem interface {
	// TopWindow returns the first child of parent in z-order, or the first
	// top-level window when parent is NoHandle. NoHandle means there is none.
	TopWindow(parent Handle) (Handle, error)

	// NextWindow returns the window below h in z-order, or NoHandle at the end
	// of the chain.
	NextWindow(h Handle) (Handle, error)

	ForegroundWindow() (Handle, error)
	DesktopWindow() (Handle, error)

	ClassName(h Handle) (string, error)
	Caption(h Handle) (string, error)
	Bounds(h Handle) (Rect, error)
	Parent(h Handle) (Handle, error)
	Style(h Handle) (WindowStyle, error)
	ExtendedStyle(h Handle) (ExtendedStyle, error)
	IsMinimized(h Handle) (bool, error)

	// IsModernApp reports whether h belongs to the sandboxed app subsystem.
	IsModernApp(h Handle) (bool, error)

	ProcessID(h Handle) (uint32, error)
	ThreadID(h Handle) (uint32, error)
}

// ProcessInspector exposes the per-process thread list and the windows each
// thread owns.
type ProcessInspector interface {
	// OpenThreads acquires the thread list of a process. The caller must Close
	// the returned snapshot. Returns an error wrapping ErrProcessNotFound when
	// the process has exited.
	OpenThreads(pid uint32) (ThreadSnapshot, error)

	// EnumThreadWindows calls fn once per window owned by the thread until fn
	// returns false.
	EnumThreadWindows(tid uint32, fn func(Handle) bool) error
}

// ThreadSnapshot is a scoped, forward-only list of thread ids.
type ThreadSnapshot interface {
	// Next returns the next thread id. ok is false once the list is exhausted.
	Next() (tid uint32, ok bool, err error)
	Close() error
}
