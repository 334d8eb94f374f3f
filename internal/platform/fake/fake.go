// Package fake provides an in-memory platform backend for tests and dry runs.
// It records every call so tests can assert which OS operations ran.
package fake

import (
	"fmt"
	"sync"

	"github.com/mj1618/window-cycler/internal/model"
	"github.com/mj1618/window-cycler/internal/platform"
)

// Handle identifies a fake window by its stable ID.
type Handle struct {
	ID int

	backend *Backend
}

// Release implements model.Handle.
func (h *Handle) Release() {
	if h.backend == nil {
		return
	}
	h.backend.mu.Lock()
	h.backend.released++
	h.backend.mu.Unlock()
}

// Window is a window in the fake window server.
type Window struct {
	ID        int
	Title     string
	Role      string // defaults to AXWindow
	Subrole   string // defaults to AXStandardWindow
	Bounds    model.Bounds
	Minimized bool
	Focused   bool
	Missing   platform.Attr
}

// Backend is a fake implementation of every platform interface.
type Backend struct {
	mu sync.Mutex

	trusted   bool
	apps      map[string][]int
	windows   map[int][]*Window
	frontmost int

	// Error injection.
	RunningErr  error
	ActivateErr error
	WindowsErr  map[int]error
	UnminErr    error
	SetMainErr  error
	RaiseErr    error

	// Unminimize leaves the window minimized when StickyMinimize is set,
	// which makes a polling settle run into its deadline.
	StickyMinimize bool

	calls    []string
	released int
}

// New returns a trusted backend with no running applications.
func New() *Backend {
	return &Backend{
		trusted:    true,
		apps:       make(map[string][]int),
		windows:    make(map[int][]*Window),
		WindowsErr: make(map[int]error),
	}
}

// Provider wraps the backend in a platform.Provider.
func (b *Backend) Provider() *platform.Provider {
	return &platform.Provider{
		Authorizer: b,
		Apps:       b,
		Windows:    b,
		Focuser:    b,
	}
}

// SetTrusted changes the permission state.
func (b *Backend) SetTrusted(trusted bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.trusted = trusted
}

// AddApp registers a running process for bundleID with the given windows.
func (b *Backend) AddApp(bundleID string, pid int, windows ...*Window) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.apps[bundleID] = append(b.apps[bundleID], pid)
	b.windows[pid] = append(b.windows[pid], windows...)
}

// Focused returns the ID of the window that currently has the focused flag,
// or -1 if none does.
func (b *Backend) Focused() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ws := range b.windows {
		for _, w := range ws {
			if w.Focused {
				return w.ID
			}
		}
	}
	return -1
}

// Calls returns the recorded operation log.
func (b *Backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.calls))
	copy(out, b.calls)
	return out
}

// CallCount returns how many recorded calls start with op.
func (b *Backend) CallCount(op string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		if len(c) >= len(op) && c[:len(op)] == op {
			n++
		}
	}
	return n
}

// Released returns how many handles have been released.
func (b *Backend) Released() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.released
}

func (b *Backend) record(format string, args ...interface{}) {
	b.calls = append(b.calls, fmt.Sprintf(format, args...))
}

// Trusted implements platform.Authorizer.
func (b *Backend) Trusted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.trusted
}

// Prompt implements platform.Authorizer.
func (b *Backend) Prompt() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record("prompt")
	return b.trusted
}

// RunningPIDs implements platform.AppController.
func (b *Backend) RunningPIDs(bundleID string) ([]int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record("running %s", bundleID)
	if b.RunningErr != nil {
		return nil, b.RunningErr
	}
	pids := make([]int, len(b.apps[bundleID]))
	copy(pids, b.apps[bundleID])
	return pids, nil
}

// Activate implements platform.AppController.
func (b *Backend) Activate(pid int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record("activate %d", pid)
	if b.ActivateErr != nil {
		return b.ActivateErr
	}
	b.frontmost = pid
	return nil
}

// IsFrontmost implements platform.AppController.
func (b *Backend) IsFrontmost(pid int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frontmost == pid
}

// AppWindows implements platform.WindowReader.
func (b *Backend) AppWindows(pid int) ([]platform.RawWindow, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record("windows %d", pid)
	if err := b.WindowsErr[pid]; err != nil {
		return nil, err
	}
	raws := make([]platform.RawWindow, 0, len(b.windows[pid]))
	for _, w := range b.windows[pid] {
		role := w.Role
		if role == "" {
			role = model.RoleWindow
		}
		subrole := w.Subrole
		if subrole == "" && !w.Missing.Has(platform.AttrSubrole) {
			subrole = "AXStandardWindow"
		}
		raw := platform.RawWindow{
			Handle:    &Handle{ID: w.ID, backend: b},
			PID:       pid,
			Role:      role,
			Subrole:   subrole,
			Title:     w.Title,
			Bounds:    w.Bounds,
			Minimized: w.Minimized,
			Focused:   w.Focused,
			Missing:   w.Missing,
		}
		if w.Missing.Has(platform.AttrTitle) {
			raw.Title = ""
		}
		if w.Missing.Has(platform.AttrBounds) {
			raw.Bounds = model.Bounds{}
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

func (b *Backend) lookup(h model.Handle) (*Window, error) {
	fh, ok := h.(*Handle)
	if !ok || fh == nil {
		return nil, fmt.Errorf("not a fake handle: %T", h)
	}
	for _, ws := range b.windows {
		for _, w := range ws {
			if w.ID == fh.ID {
				return w, nil
			}
		}
	}
	return nil, fmt.Errorf("window %d no longer exists", fh.ID)
}

// Unminimize implements platform.WindowFocuser.
func (b *Backend) Unminimize(h model.Handle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.lookup(h)
	if err != nil {
		return err
	}
	b.record("unminimize %d", w.ID)
	if b.UnminErr != nil {
		return b.UnminErr
	}
	if !b.StickyMinimize {
		w.Minimized = false
	}
	return nil
}

// IsMinimized implements platform.WindowFocuser.
func (b *Backend) IsMinimized(h model.Handle) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.lookup(h)
	if err != nil {
		return false, err
	}
	return w.Minimized, nil
}

// SetMain implements platform.WindowFocuser.
func (b *Backend) SetMain(h model.Handle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.lookup(h)
	if err != nil {
		return err
	}
	b.record("setmain %d", w.ID)
	if b.SetMainErr != nil {
		return b.SetMainErr
	}
	for _, ws := range b.windows {
		for _, other := range ws {
			other.Focused = other.ID == w.ID
		}
	}
	return nil
}

// Raise implements platform.WindowFocuser.
func (b *Backend) Raise(h model.Handle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.lookup(h)
	if err != nil {
		return err
	}
	b.record("raise %d", w.ID)
	return b.RaiseErr
}

var (
	_ platform.Authorizer    = (*Backend)(nil)
	_ platform.AppController = (*Backend)(nil)
	_ platform.WindowReader  = (*Backend)(nil)
	_ platform.WindowFocuser = (*Backend)(nil)
)
