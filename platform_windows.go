//go:build windows

package main

// Register the Windows backend with internal/platform.
import _ "github.com/mj1618/wintree/internal/platform/win32"
