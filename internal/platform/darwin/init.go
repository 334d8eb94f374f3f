//go:build darwin && cgo

package darwin

import "github.com/mj1618/window-cycler/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		windows := NewWindows()
		return &platform.Provider{
			Authorizer: NewAuthorizer(),
			Apps:       NewApps(),
			Windows:    windows,
			Focuser:    windows,
		}, nil
	}
}
