//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework Foundation
#include <ApplicationServices/ApplicationServices.h>

static int is_trusted() {
    return AXIsProcessTrusted();
}

static int prompt_trusted() {
    const void* keys[] = { kAXTrustedCheckOptionPrompt };
    const void* values[] = { kCFBooleanTrue };
    CFDictionaryRef opts = CFDictionaryCreate(kCFAllocatorDefault, keys, values, 1,
        &kCFCopyStringDictionaryKeyCallBacks, &kCFTypeDictionaryValueCallBacks);
    Boolean ok = AXIsProcessTrustedWithOptions(opts);
    CFRelease(opts);
    return ok;
}
*/
import "C"

// DarwinAuthorizer implements platform.Authorizer with the Accessibility
// trust check.
type DarwinAuthorizer struct{}

// NewAuthorizer creates a new macOS permission gate.
func NewAuthorizer() *DarwinAuthorizer {
	return &DarwinAuthorizer{}
}

// Trusted returns true if the process has accessibility permission.
// It never shows a dialog.
func (a *DarwinAuthorizer) Trusted() bool {
	return C.is_trusted() != 0
}

// Prompt shows the system accessibility dialog if permission is missing.
// The dialog is asynchronous; the return value is the state before the
// user responds.
func (a *DarwinAuthorizer) Prompt() bool {
	return C.prompt_trusted() != 0
}
