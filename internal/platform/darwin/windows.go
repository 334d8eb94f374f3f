//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include "window_cycle.h"
*/
import "C"
import (
	"fmt"
	"math"
	"sync"
	"unsafe"

	"github.com/mj1618/window-cycler/internal/model"
	"github.com/mj1618/window-cycler/internal/platform"
)

// axHandle owns one retained AXUIElementRef. The ref is kept as a
// CFTypeRef, which cgo maps to uintptr, and cast back on the C side.
type axHandle struct {
	once sync.Once
	ref  C.CFTypeRef
}

// Release drops the native reference. Safe to call more than once.
func (h *axHandle) Release() {
	h.once.Do(func() {
		C.cf_release(h.ref)
		h.ref = 0
	})
}

// AXError wraps an Accessibility API error code.
type AXError struct {
	Op   string
	Code int
}

func (e *AXError) Error() string {
	return fmt.Sprintf("%s: AXError %d", e.Op, e.Code)
}

func axErr(op string, code C.int) error {
	if code == C.kAXErrorSuccess {
		return nil
	}
	return &AXError{Op: op, Code: int(code)}
}

// DarwinWindows implements platform.WindowReader and platform.WindowFocuser
// with the Accessibility API.
type DarwinWindows struct{}

// NewWindows creates a new macOS window reader and focuser.
func NewWindows() *DarwinWindows {
	return &DarwinWindows{}
}

// AppWindows returns every accessibility window of pid in OS order.
func (w *DarwinWindows) AppWindows(pid int) ([]platform.RawWindow, error) {
	var cWindows *C.CycleWindow
	var cCount C.int
	if err := axErr("list windows", C.ax_list_windows(C.pid_t(pid), &cWindows, &cCount)); err != nil {
		return nil, fmt.Errorf("pid %d: %w", pid, err)
	}
	defer C.ax_free_windows(cWindows, cCount)

	if cCount == 0 {
		return []platform.RawWindow{}, nil
	}
	slice := unsafe.Slice(cWindows, int(cCount))
	raws := make([]platform.RawWindow, 0, len(slice))
	for _, cw := range slice {
		raws = append(raws, platform.RawWindow{
			Handle:    &axHandle{ref: cw.ref},
			PID:       pid,
			Role:      goString(cw.role),
			Subrole:   goString(cw.subrole),
			Title:     goString(cw.title),
			Bounds:    toBounds(cw),
			Minimized: cw.minimized != 0,
			Focused:   cw.focused != 0,
			Missing:   missingAttrs(int(cw.missing)),
		})
	}
	return raws, nil
}

func goString(s *C.char) string {
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

func toBounds(cw C.CycleWindow) model.Bounds {
	return model.Bounds{
		X:      int(math.Round(float64(cw.x))),
		Y:      int(math.Round(float64(cw.y))),
		Width:  int(math.Round(float64(cw.width))),
		Height: int(math.Round(float64(cw.height))),
	}
}

func missingAttrs(bits int) platform.Attr {
	var m platform.Attr
	if bits&C.CW_MISSING_TITLE != 0 {
		m |= platform.AttrTitle
	}
	if bits&C.CW_MISSING_BOUNDS != 0 {
		m |= platform.AttrBounds
	}
	if bits&C.CW_MISSING_MINIMIZED != 0 {
		m |= platform.AttrMinimized
	}
	if bits&C.CW_MISSING_SUBROLE != 0 {
		m |= platform.AttrSubrole
	}
	if bits&C.CW_MISSING_FOCUSED != 0 {
		m |= platform.AttrFocused
	}
	return m
}

func toRef(h model.Handle) (C.CFTypeRef, error) {
	ah, ok := h.(*axHandle)
	if !ok || ah == nil {
		return 0, fmt.Errorf("not an accessibility window handle: %T", h)
	}
	if ah.ref == 0 {
		return 0, fmt.Errorf("window handle already released")
	}
	return ah.ref, nil
}

// Unminimize clears the window's minimized attribute.
func (w *DarwinWindows) Unminimize(h model.Handle) error {
	ref, err := toRef(h)
	if err != nil {
		return err
	}
	return axErr("unminimize", C.ax_unminimize(ref))
}

// IsMinimized reads the window's minimized attribute.
func (w *DarwinWindows) IsMinimized(h model.Handle) (bool, error) {
	ref, err := toRef(h)
	if err != nil {
		return false, err
	}
	var out C.int
	if err := axErr("read minimized", C.ax_get_minimized(ref, &out)); err != nil {
		return false, err
	}
	return out != 0, nil
}

// SetMain makes the window its application's main window.
func (w *DarwinWindows) SetMain(h model.Handle) error {
	ref, err := toRef(h)
	if err != nil {
		return err
	}
	return axErr("set main", C.ax_set_main(ref))
}

// Raise brings the window to the top of its application's window stack.
func (w *DarwinWindows) Raise(h model.Handle) error {
	ref, err := toRef(h)
	if err != nil {
		return err
	}
	return axErr("raise", C.ax_raise(ref))
}
