//go:build windows

package win32

import "github.com/mj1618/wintree/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Windows:   NewWindowSystem(),
			Processes: NewProcessInspector(),
		}, nil
	}
}
