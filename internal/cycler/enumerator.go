package cycler

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mj1618/window-cycler/internal/model"
	"github.com/mj1618/window-cycler/internal/platform"
)

// Enumerator captures snapshots of the eligible windows of a target application.
type Enumerator struct {
	auth    platform.Authorizer
	apps    platform.AppController
	windows platform.WindowReader
	logger  hclog.Logger
	now     func() time.Time
}

// NewEnumerator creates an enumerator backed by the given provider.
func NewEnumerator(p *platform.Provider, logger hclog.Logger) *Enumerator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Enumerator{
		auth:    p.Authorizer,
		apps:    p.Apps,
		windows: p.Windows,
		logger:  logger.Named("enumerator"),
		now:     time.Now,
	}
}

// Enumerate returns the eligible windows of target. An application that is
// not running, or that has no eligible windows, yields an empty snapshot and
// no error. The caller must Release the snapshot.
func (e *Enumerator) Enumerate(ctx context.Context, target model.Target) (*model.Snapshot, error) {
	if !e.auth.Trusted() {
		return nil, newError("enumerate", KindPermissionDenied, ReasonNotTrusted, target.DisplayName(), nil)
	}
	pids, err := e.apps.RunningPIDs(target.BundleID)
	if err != nil {
		return nil, newError("enumerate", KindNoWindowsFound, ReasonEnumerationFailed, target.DisplayName(), err)
	}
	return e.enumeratePIDs(ctx, target, pids)
}

// enumeratePIDs builds a snapshot from already-resolved process IDs. It does
// not check authorization.
func (e *Enumerator) enumeratePIDs(ctx context.Context, target model.Target, pids []int) (*model.Snapshot, error) {
	snap := &model.Snapshot{
		Target:  target,
		Running: len(pids) > 0,
		Windows: []model.Window{},
		TakenAt: e.now(),
	}

	var failures []error
	for _, pid := range pids {
		if err := ctx.Err(); err != nil {
			snap.Release()
			return nil, newError("enumerate", KindNoWindowsFound, ReasonEnumerationFailed, target.DisplayName(), err)
		}

		raws, err := e.windows.AppWindows(pid)
		if err != nil {
			e.logger.Warn("window query failed", "pid", pid, "error", err)
			failures = append(failures, err)
			continue
		}

		for _, raw := range raws {
			w, ok := admit(raw)
			if !ok {
				if raw.Handle != nil {
					raw.Handle.Release()
				}
				continue
			}
			if masked := maskedAttrs(raw.Missing); masked != 0 {
				e.logger.Debug("masked window attributes", "pid", pid, "title", w.Title, "missing", masked.String())
				snap.Masked++
			}
			w.Ordinal = len(snap.Windows)
			snap.Windows = append(snap.Windows, w)
		}
	}

	if len(pids) > 0 && len(failures) == len(pids) {
		snap.Release()
		return nil, newError("enumerate", KindNoWindowsFound, ReasonEnumerationFailed, target.DisplayName(), errors.Join(failures...))
	}

	e.logger.Debug("enumerated windows", "target", target.BundleID, "pids", len(pids), "windows", len(snap.Windows))
	return snap, nil
}

// admit applies the eligibility filter and default substitution to a raw window.
func admit(raw platform.RawWindow) (model.Window, bool) {
	// A failed role query keeps the window; anything else must be AXWindow.
	if raw.Role != "" && raw.Role != model.RoleWindow {
		return model.Window{}, false
	}

	subrole := raw.Subrole
	if raw.Missing.Has(platform.AttrSubrole) {
		subrole = ""
	}
	if !model.IsCycleKind(model.MapSubrole(subrole)) {
		return model.Window{}, false
	}

	minimized := raw.Minimized && !raw.Missing.Has(platform.AttrMinimized)

	bounds := raw.Bounds
	if raw.Missing.Has(platform.AttrBounds) {
		bounds = model.Bounds{}
	} else if !minimized && bounds.Empty() {
		// Zero-size windows are off-screen helpers, not user windows.
		return model.Window{}, false
	}
	if minimized {
		bounds = model.Bounds{}
	}

	title := raw.Title
	if raw.Missing.Has(platform.AttrTitle) || strings.TrimSpace(title) == "" {
		title = model.UntitledWindow
	}

	return model.Window{
		Title:     title,
		PID:       raw.PID,
		Bounds:    bounds,
		Minimized: minimized,
		Focused:   raw.Focused && !raw.Missing.Has(platform.AttrFocused),
		Handle:    raw.Handle,
	}, true
}

func maskedAttrs(missing platform.Attr) platform.Attr {
	return missing & (platform.AttrTitle | platform.AttrBounds | platform.AttrMinimized | platform.AttrSubrole | platform.AttrFocused)
}
