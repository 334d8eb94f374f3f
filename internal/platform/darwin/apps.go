//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#include "app_control.h"
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// DarwinApps implements platform.AppController with NSRunningApplication.
type DarwinApps struct{}

// NewApps creates a new macOS application controller.
func NewApps() *DarwinApps {
	return &DarwinApps{}
}

// RunningPIDs returns the process IDs of running instances of bundleID.
func (a *DarwinApps) RunningPIDs(bundleID string) ([]int, error) {
	cBundle := C.CString(bundleID)
	defer C.free(unsafe.Pointer(cBundle))

	var cPids *C.pid_t
	var cCount C.int
	if C.ns_running_pids(cBundle, &cPids, &cCount) != 0 {
		return nil, fmt.Errorf("failed to query running applications for %q", bundleID)
	}
	if cCount == 0 || cPids == nil {
		return []int{}, nil
	}
	defer C.free(unsafe.Pointer(cPids))

	slice := unsafe.Slice(cPids, int(cCount))
	pids := make([]int, len(slice))
	for i, p := range slice {
		pids[i] = int(p)
	}
	return pids, nil
}

// Activate brings the application with pid to the front.
func (a *DarwinApps) Activate(pid int) error {
	if C.ns_activate_pid(C.pid_t(pid)) != 0 {
		return fmt.Errorf("failed to activate app with PID %d", pid)
	}
	return nil
}

// IsFrontmost reports whether pid is the frontmost application.
func (a *DarwinApps) IsFrontmost(pid int) bool {
	return int(C.ns_frontmost_pid()) == pid
}
