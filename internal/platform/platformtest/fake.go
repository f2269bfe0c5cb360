// Package platformtest provides an in-memory platform backend for tests.
// Every primitive call is counted and any primitive can be made to fail.
package platformtest

import (
	"fmt"

	"github.com/mj1618/wintree/internal/platform"
)

// Window is the attribute set the fake reports for one handle.
type Window struct {
	Handle    platform.Handle
	Class     string
	Caption   string
	Rect      platform.Rect
	Parent    platform.Handle
	Style     platform.WindowStyle
	ExStyle   platform.ExtendedStyle
	Minimized bool
	ModernApp bool
	PID       uint32
	TID       uint32
}

// Fake implements platform.WindowSystem and platform.ProcessInspector.
type Fake struct {
	Windows    map[platform.Handle]*Window
	First      map[platform.Handle]platform.Handle // parent -> first child
	Next       map[platform.Handle]platform.Handle
	Foreground platform.Handle
	Desktop    platform.Handle

	Threads       map[uint32][]uint32          // pid -> thread ids
	ThreadWindows map[uint32][]platform.Handle // tid -> owned windows

	// Errors makes the named primitive fail for every handle.
	Errors map[string]error
	// HandleErrors makes every attribute read of a handle fail.
	HandleErrors map[platform.Handle]error

	Calls    map[string]int
	Acquired int
	Released int
}

// New returns an empty fake.
func New() *Fake {
	return &Fake{
		Windows:       make(map[platform.Handle]*Window),
		First:         make(map[platform.Handle]platform.Handle),
		Next:          make(map[platform.Handle]platform.Handle),
		Threads:       make(map[uint32][]uint32),
		ThreadWindows: make(map[uint32][]platform.Handle),
		Errors:        make(map[string]error),
		HandleErrors:  make(map[platform.Handle]error),
		Calls:         make(map[string]int),
	}
}

// Add registers windows with the fake.
func (f *Fake) Add(windows ...Window) *Fake {
	for i := range windows {
		w := windows[i]
		f.Windows[w.Handle] = &w
	}
	return f
}

// Chain sets the z-order of parent's children to handles.
func (f *Fake) Chain(parent platform.Handle, handles ...platform.Handle) *Fake {
	if len(handles) == 0 {
		delete(f.First, parent)
		return f
	}
	f.First[parent] = handles[0]
	for i := 0; i+1 < len(handles); i++ {
		f.Next[handles[i]] = handles[i+1]
	}
	return f
}

// Provider wraps the fake in a platform.Provider.
func (f *Fake) Provider() *platform.Provider {
	return &platform.Provider{Windows: f, Processes: f}
}

// AttributeCalls sums the calls made to the attribute primitives.
func (f *Fake) AttributeCalls() int {
	n := 0
	for _, name := range []string{"ClassName", "Caption", "Bounds", "Parent", "Style", "ExtendedStyle", "IsMinimized", "IsModernApp", "ProcessID", "ThreadID"} {
		n += f.Calls[name]
	}
	return n
}

func (f *Fake) call(name string) error {
	f.Calls[name]++
	return f.Errors[name]
}

func (f *Fake) lookup(name string, h platform.Handle) (*Window, error) {
	if err := f.call(name); err != nil {
		return nil, err
	}
	if err := f.HandleErrors[h]; err != nil {
		return nil, err
	}
	w, ok := f.Windows[h]
	if !ok {
		return nil, fmt.Errorf("%w: %v", platform.ErrInvalidHandle, h)
	}
	return w, nil
}

func (f *Fake) TopWindow(parent platform.Handle) (platform.Handle, error) {
	if err := f.call("TopWindow"); err != nil {
		return platform.NoHandle, err
	}
	return f.First[parent], nil
}

func (f *Fake) NextWindow(h platform.Handle) (platform.Handle, error) {
	if err := f.call("NextWindow"); err != nil {
		return platform.NoHandle, err
	}
	return f.Next[h], nil
}

func (f *Fake) ForegroundWindow() (platform.Handle, error) {
	if err := f.call("ForegroundWindow"); err != nil {
		return platform.NoHandle, err
	}
	return f.Foreground, nil
}

func (f *Fake) DesktopWindow() (platform.Handle, error) {
	if err := f.call("DesktopWindow"); err != nil {
		return platform.NoHandle, err
	}
	return f.Desktop, nil
}

func (f *Fake) ClassName(h platform.Handle) (string, error) {
	w, err := f.lookup("ClassName", h)
	if err != nil {
		return "", err
	}
	return w.Class, nil
}

func (f *Fake) Caption(h platform.Handle) (string, error) {
	w, err := f.lookup("Caption", h)
	if err != nil {
		return "", err
	}
	return w.Caption, nil
}

func (f *Fake) Bounds(h platform.Handle) (platform.Rect, error) {
	w, err := f.lookup("Bounds", h)
	if err != nil {
		return platform.Rect{}, err
	}
	return w.Rect, nil
}

func (f *Fake) Parent(h platform.Handle) (platform.Handle, error) {
	w, err := f.lookup("Parent", h)
	if err != nil {
		return platform.NoHandle, err
	}
	return w.Parent, nil
}

func (f *Fake) Style(h platform.Handle) (platform.WindowStyle, error) {
	w, err := f.lookup("Style", h)
	if err != nil {
		return 0, err
	}
	return w.Style, nil
}

func (f *Fake) ExtendedStyle(h platform.Handle) (platform.ExtendedStyle, error) {
	w, err := f.lookup("ExtendedStyle", h)
	if err != nil {
		return 0, err
	}
	return w.ExStyle, nil
}

func (f *Fake) IsMinimized(h platform.Handle) (bool, error) {
	w, err := f.lookup("IsMinimized", h)
	if err != nil {
		return false, err
	}
	return w.Minimized, nil
}

func (f *Fake) IsModernApp(h platform.Handle) (bool, error) {
	w, err := f.lookup("IsModernApp", h)
	if err != nil {
		return false, err
	}
	return w.ModernApp, nil
}

func (f *Fake) ProcessID(h platform.Handle) (uint32, error) {
	w, err := f.lookup("ProcessID", h)
	if err != nil {
		return 0, err
	}
	return w.PID, nil
}

func (f *Fake) ThreadID(h platform.Handle) (uint32, error) {
	w, err := f.lookup("ThreadID", h)
	if err != nil {
		return 0, err
	}
	return w.TID, nil
}

func (f *Fake) OpenThreads(pid uint32) (platform.ThreadSnapshot, error) {
	if err := f.call("OpenThreads"); err != nil {
		return nil, err
	}
	tids, ok := f.Threads[pid]
	if !ok {
		return nil, fmt.Errorf("pid %d: %w", pid, platform.ErrProcessNotFound)
	}
	f.Acquired++
	return &snapshot{fake: f, tids: tids}, nil
}

func (f *Fake) EnumThreadWindows(tid uint32, fn func(platform.Handle) bool) error {
	if err := f.call("EnumThreadWindows"); err != nil {
		return err
	}
	for _, h := range f.ThreadWindows[tid] {
		if !fn(h) {
			break
		}
	}
	return nil
}

type snapshot struct {
	fake   *Fake
	tids   []uint32
	pos    int
	closed bool
}

func (s *snapshot) Next() (uint32, bool, error) {
	if s.closed {
		return 0, false, fmt.Errorf("thread snapshot already closed")
	}
	if err := s.fake.call("NextThread"); err != nil {
		return 0, false, err
	}
	if s.pos >= len(s.tids) {
		return 0, false, nil
	}
	tid := s.tids[s.pos]
	s.pos++
	return tid, true, nil
}

func (s *snapshot) Close() error {
	if s.closed {
		return fmt.Errorf("thread snapshot already closed")
	}
	s.closed = true
	s.fake.Released++
	return s.fake.call("CloseThreads")
}

var (
	_ platform.WindowSystem     = (*Fake)(nil)
	_ platform.ProcessInspector = (*Fake)(nil)
)
