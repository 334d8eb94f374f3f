//go:build darwin

package main

// Registers the macOS accessibility provider.
import _ "github.com/mj1618/window-cycler/internal/platform/darwin"
