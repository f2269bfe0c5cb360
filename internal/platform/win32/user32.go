//go:build windows

package win32

import "golang.org/x/sys/windows"

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetTopWindow             = user32.NewProc("GetTopWindow")
	procGetWindow                = user32.NewProc("GetWindow")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procGetDesktopWindow         = user32.NewProc("GetDesktopWindow")
	procGetClassNameW            = user32.NewProc("GetClassNameW")
	procGetWindowTextLengthW     = user32.NewProc("GetWindowTextLengthW")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procGetParent                = user32.NewProc("GetParent")
	procGetWindowLongW           = user32.NewProc("GetWindowLongW")
	procIsIconic                 = user32.NewProc("IsIconic")
	procIsWindow                 = user32.NewProc("IsWindow")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procEnumThreadWindows        = user32.NewProc("EnumThreadWindows")
)

const (
	gwHwndNext = 2
	gwChild    = 5

	gwlStyle   = ^uintptr(15) // GWL_STYLE (-16)
	gwlExStyle = ^uintptr(19) // GWL_EXSTYLE (-20)

	// Longest class name RegisterClass accepts, plus the terminator.
	maxClassName = 257
)

// rect mirrors the Win32 RECT structure.
type rect struct {
	Left, Top, Right, Bottom int32
}
