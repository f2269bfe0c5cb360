//go:build windows

package win32

import (
	"unsafe"

	"github.com/mj1618/wintree/internal/platform"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// modernAppClasses are the window classes hosting sandboxed (UWP) apps.
var modernAppClasses = map[string]bool{
	"Windows.UI.Core.CoreWindow": true,
	"ApplicationFrameWindow":     true,
}

// WindowSystem implements platform.WindowSystem with user32 calls.
type WindowSystem struct{}

// NewWindowSystem creates a new user32-backed window system.
func NewWindowSystem() *WindowSystem {
	return &WindowSystem{}
}

func isWindow(h platform.Handle) bool {
	r, _, _ := procIsWindow.Call(uintptr(h))
	return r != 0
}

// invalid reports h as gone when it no longer names a window, otherwise it
// wraps the failed call's error.
func invalid(h platform.Handle, call string, err error) error {
	if !isWindow(h) {
		return errors.Wrapf(platform.ErrInvalidHandle, "%s(%v)", call, h)
	}
	return errors.Wrapf(err, "%s(%v)", call, h)
}

func (ws *WindowSystem) TopWindow(parent platform.Handle) (platform.Handle, error) {
	if parent.IsZero() {
		r, _, _ := procGetTopWindow.Call(0)
		return platform.Handle(r), nil
	}
	if !isWindow(parent) {
		return platform.NoHandle, errors.Wrapf(platform.ErrInvalidHandle, "GetWindow(%v, GW_CHILD)", parent)
	}
	r, _, _ := procGetWindow.Call(uintptr(parent), gwChild)
	return platform.Handle(r), nil
}

func (ws *WindowSystem) NextWindow(h platform.Handle) (platform.Handle, error) {
	r, _, _ := procGetWindow.Call(uintptr(h), gwHwndNext)
	return platform.Handle(r), nil
}

func (ws *WindowSystem) ForegroundWindow() (platform.Handle, error) {
	r, _, _ := procGetForegroundWindow.Call()
	return platform.Handle(r), nil
}

func (ws *WindowSystem) DesktopWindow() (platform.Handle, error) {
	r, _, _ := procGetDesktopWindow.Call()
	return platform.Handle(r), nil
}

func (ws *WindowSystem) ClassName(h platform.Handle) (string, error) {
	buf := make([]uint16, maxClassName)
	r, _, err := procGetClassNameW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if r == 0 {
		return "", invalid(h, "GetClassNameW", err)
	}
	return windows.UTF16ToString(buf[:r]), nil
}

func (ws *WindowSystem) Caption(h platform.Handle) (string, error) {
	n, _, _ := procGetWindowTextLengthW.Call(uintptr(h))
	if n == 0 {
		if !isWindow(h) {
			return "", errors.Wrapf(platform.ErrInvalidHandle, "GetWindowTextW(%v)", h)
		}
		return "", nil
	}
	buf := make([]uint16, n+1)
	r, _, _ := procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:r]), nil
}

func (ws *WindowSystem) Bounds(h platform.Handle) (platform.Rect, error) {
	var rc rect
	r, _, err := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&rc)))
	if r == 0 {
		return platform.Rect{}, invalid(h, "GetWindowRect", err)
	}
	return platform.Rect{
		Left:   int(rc.Left),
		Top:    int(rc.Top),
		Right:  int(rc.Right),
		Bottom: int(rc.Bottom),
	}, nil
}

func (ws *WindowSystem) Parent(h platform.Handle) (platform.Handle, error) {
	r, _, _ := procGetParent.Call(uintptr(h))
	if r == 0 && !isWindow(h) {
		return platform.NoHandle, errors.Wrapf(platform.ErrInvalidHandle, "GetParent(%v)", h)
	}
	return platform.Handle(r), nil
}

// windowLong reads a GWL_* value. Zero is a valid style, so failure is only
// reported when the handle is gone.
func (ws *WindowSystem) windowLong(h platform.Handle, index uintptr) (uint32, error) {
	r, _, _ := procGetWindowLongW.Call(uintptr(h), index)
	if r == 0 && !isWindow(h) {
		return 0, errors.Wrapf(platform.ErrInvalidHandle, "GetWindowLongW(%v)", h)
	}
	return uint32(r), nil
}

func (ws *WindowSystem) Style(h platform.Handle) (platform.WindowStyle, error) {
	v, err := ws.windowLong(h, gwlStyle)
	return platform.WindowStyle(v), err
}

func (ws *WindowSystem) ExtendedStyle(h platform.Handle) (platform.ExtendedStyle, error) {
	v, err := ws.windowLong(h, gwlExStyle)
	return platform.ExtendedStyle(v), err
}

func (ws *WindowSystem) IsMinimized(h platform.Handle) (bool, error) {
	r, _, _ := procIsIconic.Call(uintptr(h))
	return r != 0, nil
}

func (ws *WindowSystem) IsModernApp(h platform.Handle) (bool, error) {
	class, err := ws.ClassName(h)
	if err != nil {
		return false, err
	}
	return modernAppClasses[class], nil
}

func (ws *WindowSystem) threadProcessID(h platform.Handle) (tid, pid uint32, err error) {
	r, _, callErr := procGetWindowThreadProcessId.Call(uintptr(h), uintptr(unsafe.Pointer(&pid)))
	if r == 0 {
		return 0, 0, invalid(h, "GetWindowThreadProcessId", callErr)
	}
	return uint32(r), pid, nil
}

func (ws *WindowSystem) ProcessID(h platform.Handle) (uint32, error) {
	_, pid, err := ws.threadProcessID(h)
	return pid, err
}

func (ws *WindowSystem) ThreadID(h platform.Handle) (uint32, error) {
	tid, _, err := ws.threadProcessID(h)
	return tid, err
}

var _ platform.WindowSystem = (*WindowSystem)(nil)
