//go:build windows

// Package win32 provides the Windows platform backend on top of user32 and
// the toolhelp snapshot API. It registers itself with internal/platform at
// init time.
package win32
