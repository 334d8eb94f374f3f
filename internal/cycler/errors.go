package cycler

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a cycle failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindPermissionDenied
	KindNoWindowsFound
	KindFocusFailed
	KindBusy
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindPermissionDenied:
		return "PERMISSION_DENIED"
	case KindNoWindowsFound:
		return "NO_WINDOWS_FOUND"
	case KindFocusFailed:
		return "FOCUS_FAILED"
	case KindBusy:
		return "BUSY"
	default:
		return "UNKNOWN"
	}
}

// Reasons refine a Kind for logging and user messages.
const (
	ReasonNotRunning        = "not_running"
	ReasonNoWindows         = "no_windows"
	ReasonEnumerationFailed = "enumeration_failed"
	ReasonActivateFailed    = "activate_failed"
	ReasonUnminimizeFailed  = "unminimize_failed"
	ReasonSetMainFailed     = "set_main_failed"
	ReasonRaiseFailed       = "raise_failed"
	ReasonTimeout           = "timeout"
	ReasonCanceled          = "canceled"
	ReasonInFlight          = "in_flight"
	ReasonNotTrusted        = "not_trusted"
)

// Error is a typed failure returned by the enumerator and the cycler.
type Error struct {
	Op     string // operation name
	Kind   Kind
	Reason string
	Target string // target application display name
	Err    error  // underlying error, may be nil
}

func (e *Error) Error() string {
	if e == nil {
		return "cycle error"
	}
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(strings.ToLower(strings.ReplaceAll(e.Kind.String(), "_", " ")))

	var parts []string
	if e.Reason != "" {
		parts = append(parts, "reason="+e.Reason)
	}
	if e.Target != "" {
		parts = append(parts, "target="+e.Target)
	}
	if len(parts) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(parts, " "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so the sentinels below work
// with errors.Is regardless of reason or target.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) || other == nil {
		return false
	}
	return e.Kind == other.Kind
}

// Sentinels for errors.Is.
var (
	ErrPermissionDenied = &Error{Kind: KindPermissionDenied}
	ErrNoWindowsFound   = &Error{Kind: KindNoWindowsFound}
	ErrFocusFailed      = &Error{Kind: KindFocusFailed}
	ErrBusy             = &Error{Kind: KindBusy}
)

func newError(op string, kind Kind, reason, target string, err error) *Error {
	return &Error{Op: op, Kind: kind, Reason: reason, Target: target, Err: err}
}

// KindOf returns the kind of err, or KindUnknown if err is not a cycle error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) && ce != nil {
		return ce.Kind
	}
	return KindUnknown
}

// ReasonOf returns the reason of err, or "" if err is not a cycle error.
func ReasonOf(err error) string {
	var ce *Error
	if errors.As(err, &ce) && ce != nil {
		return ce.Reason
	}
	return ""
}

// UserMessage maps err to wording suitable for a notification or menu item.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ce *Error
	if !errors.As(err, &ce) || ce == nil {
		return "Something went wrong: " + err.Error()
	}
	app := ce.Target
	if app == "" {
		app = "The application"
	}
	switch ce.Kind {
	case KindPermissionDenied:
		return "Accessibility permission required. Grant it in System Settings > Privacy & Security > Accessibility."
	case KindNoWindowsFound:
		switch ce.Reason {
		case ReasonNotRunning:
			return app + " is not running."
		case ReasonEnumerationFailed:
			return "Could not read the windows of " + app + "."
		default:
			return app + " has no open windows."
		}
	case KindFocusFailed:
		if ce.Reason == ReasonTimeout {
			return "Timed out while focusing the next " + app + " window."
		}
		return "Failed to focus the next " + app + " window."
	case KindBusy:
		return "A window switch is already in progress."
	default:
		return "Something went wrong: " + err.Error()
	}
}
