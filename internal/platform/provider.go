package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Authorizer Authorizer
	Apps       AppController
	Windows    WindowReader
	Focuser    WindowFocuser
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("window-cycler is not supported on %s/%s; supported: darwin/amd64, darwin/arm64 (cgo enabled)", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	p, err := NewProviderFunc()
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that every backend is present.
func (p *Provider) Validate() error {
	switch {
	case p == nil:
		return fmt.Errorf("platform provider is nil")
	case p.Authorizer == nil:
		return fmt.Errorf("permission gate not available on this platform")
	case p.Apps == nil:
		return fmt.Errorf("application control not available on this platform")
	case p.Windows == nil:
		return fmt.Errorf("window reader not available on this platform")
	case p.Focuser == nil:
		return fmt.Errorf("window focus not available on this platform")
	}
	return nil
}
