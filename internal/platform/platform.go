package platform

import "github.com/mj1618/window-cycler/internal/model"

// Authorizer is the OS permission gate for reading and controlling the
// windows of other applications.
type Authorizer interface {
	// Trusted reports whether the permission is currently granted.
	Trusted() bool

	// Prompt asks the OS to show its permission dialog and returns the
	// current trust state. It never blocks waiting for the user.
	Prompt() bool
}

// AppController finds and activates running application instances.
type AppController interface {
	// RunningPIDs returns the process IDs of running instances of bundleID.
	// An application that is not running yields an empty slice and no error.
	RunningPIDs(bundleID string) ([]int, error)

	// Activate brings the application to the front.
	Activate(pid int) error

	// IsFrontmost reports whether pid owns the active application.
	IsFrontmost(pid int) bool
}

// WindowReader reads the accessibility windows of a process.
type WindowReader interface {
	// AppWindows returns every window the process exposes, unfiltered, in
	// the order the OS reports them. Attributes that could not be read are
	// flagged in RawWindow.Missing.
	AppWindows(pid int) ([]RawWindow, error)
}

// WindowFocuser issues focus requests for individual windows.
type WindowFocuser interface {
	Unminimize(h model.Handle) error
	IsMinimized(h model.Handle) (bool, error)

	// SetMain marks the window as its application's main window.
	SetMain(h model.Handle) error

	// Raise brings the window to the front of its application's window stack.
	Raise(h model.Handle) error
}
