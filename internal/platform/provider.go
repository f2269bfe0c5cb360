package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// Provider bundles the platform backends for the current OS.
type Provider struct {
	Windows   WindowSystem
	Processes ProcessInspector
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("wintree is not supported on %s/%s; supported: windows/amd64, windows/arm64", runtime.GOOS, runtime.GOARCH)

// ErrProcessNotFound is returned when a process exited before its threads
// could be opened.
var ErrProcessNotFound = errors.New("process not found")

// ErrInvalidHandle is returned when a handle no longer names a window.
var ErrInvalidHandle = errors.New("invalid window handle")

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/win32/init.go for the Windows registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
