// Package cycler enumerates the windows of a target application and moves
// focus to the next one in round-robin order.
package cycler

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/mj1618/window-cycler/internal/model"
	"github.com/mj1618/window-cycler/internal/platform"
)

// Options configures a Cycler.
type Options struct {
	Settle SettleOptions

	// FocusTimeout bounds a whole cycle operation. Zero means no bound.
	FocusTimeout time.Duration

	Logger hclog.Logger
}

// DefaultOptions returns the options used when no configuration is given.
func DefaultOptions() Options {
	return Options{
		Settle: SettleOptions{
			Mode:         SettlePoll,
			Delay:        150 * time.Millisecond,
			PollInterval: 15 * time.Millisecond,
		},
		FocusTimeout: 2 * time.Second,
	}
}

// Result describes a completed (or planned) cycle.
type Result struct {
	ID          string        `yaml:"id"                    json:"id"`
	Target      model.Target  `yaml:"target"                json:"target"`
	Window      model.Window  `yaml:"window"                json:"window"`
	From        int           `yaml:"from"                  json:"from"`
	Strategy    string        `yaml:"strategy"              json:"strategy"`
	Count       int           `yaml:"count"                 json:"count"`
	Unminimized bool          `yaml:"unminimized,omitempty" json:"unminimized,omitempty"`
	DryRun      bool          `yaml:"dry_run,omitempty"     json:"dry_run,omitempty"`
	Elapsed     time.Duration `yaml:"-"                     json:"-"`
}

// Cycler moves focus to the next window of a target application.
// At most one cycle runs at a time; overlapping requests fail with ErrBusy.
type Cycler struct {
	auth    platform.Authorizer
	apps    platform.AppController
	focuser platform.WindowFocuser
	enum    *Enumerator
	opts    Options
	logger  hclog.Logger

	inFlight atomic.Bool
	newID    func() string
	now      func() time.Time
}

// New creates a cycler backed by the given provider.
func New(p *platform.Provider, opts Options) *Cycler {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Cycler{
		auth:    p.Authorizer,
		apps:    p.Apps,
		focuser: p.Focuser,
		enum:    NewEnumerator(p, logger),
		opts:    opts,
		logger:  logger.Named("cycler"),
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// Enumerator returns the enumerator the cycler uses.
func (c *Cycler) Enumerator() *Enumerator {
	return c.enum
}

// Snapshot enumerates target without activating it. The caller must
// Release the snapshot.
func (c *Cycler) Snapshot(ctx context.Context, target model.Target) (*model.Snapshot, error) {
	return c.enum.Enumerate(ctx, target)
}

// CycleNext activates target, finds its current window and focuses the next
// one. Failures are *Error values of kind PermissionDenied, NoWindowsFound,
// FocusFailed or Busy.
func (c *Cycler) CycleNext(ctx context.Context, target model.Target) (*Result, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		c.logger.Debug("dropping cycle request, another cycle is in flight", "target", target.BundleID)
		return nil, newError("cycle", KindBusy, ReasonInFlight, target.DisplayName(), nil)
	}
	defer c.inFlight.Store(false)

	if c.opts.FocusTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.FocusTimeout)
		defer cancel()
	}

	id := c.newID()
	log := c.logger.With("cycle_id", id, "target", target.BundleID)
	start := c.now()

	if !c.auth.Trusted() {
		log.Warn("accessibility permission not granted")
		return nil, newError("cycle", KindPermissionDenied, ReasonNotTrusted, target.DisplayName(), nil)
	}

	pids, err := c.apps.RunningPIDs(target.BundleID)
	if err != nil {
		return nil, newError("cycle", KindNoWindowsFound, ReasonEnumerationFailed, target.DisplayName(), err)
	}
	if len(pids) == 0 {
		log.Debug("target not running")
		return nil, newError("cycle", KindNoWindowsFound, ReasonNotRunning, target.DisplayName(), nil)
	}

	activated := pids[0]
	if err := c.activate(ctx, target, activated); err != nil {
		log.Warn("activation failed", "pid", activated, "error", err)
		return nil, err
	}

	snap, err := c.enum.enumeratePIDs(ctx, target, pids)
	if err != nil {
		return nil, c.contextError(ctx, target, err)
	}
	defer snap.Release()

	if snap.Empty() {
		log.Debug("no eligible windows")
		return nil, newError("cycle", KindNoWindowsFound, ReasonNoWindows, target.DisplayName(), nil)
	}

	next, current, strategy := PickNext(snap.Windows)
	w := snap.Windows[next]
	log.Debug("picked next window", "from", current, "to", next, "count", snap.Len(), "strategy", strategy, "title", w.Title)

	unminimized, err := c.focus(ctx, target, w, activated)
	if err != nil {
		log.Warn("focus failed", "ordinal", w.Ordinal, "error", err)
		return nil, err
	}

	res := &Result{
		ID:          id,
		Target:      target,
		Window:      w,
		From:        current,
		Strategy:    strategy,
		Count:       snap.Len(),
		Unminimized: unminimized,
		Elapsed:     c.now().Sub(start),
	}
	res.Window.Handle = nil
	log.Info("focused window", "ordinal", w.Ordinal, "title", w.Title, "count", res.Count, "elapsed", res.Elapsed)
	return res, nil
}

// Plan reports which window CycleNext would focus without activating or
// focusing anything.
func (c *Cycler) Plan(ctx context.Context, target model.Target) (*Result, error) {
	start := c.now()
	snap, err := c.enum.Enumerate(ctx, target)
	if err != nil {
		return nil, err
	}
	defer snap.Release()

	if snap.Empty() {
		reason := ReasonNoWindows
		if !snap.Running {
			reason = ReasonNotRunning
		}
		return nil, newError("plan", KindNoWindowsFound, reason, target.DisplayName(), nil)
	}

	next, current, strategy := PickNext(snap.Windows)
	res := &Result{
		ID:       c.newID(),
		Target:   target,
		Window:   snap.Windows[next],
		From:     current,
		Strategy: strategy,
		Count:    snap.Len(),
		DryRun:   true,
		Elapsed:  c.now().Sub(start),
	}
	res.Window.Handle = nil
	return res, nil
}

func (c *Cycler) activate(ctx context.Context, target model.Target, pid int) error {
	if err := c.apps.Activate(pid); err != nil {
		return newError("activate", KindFocusFailed, ReasonActivateFailed, target.DisplayName(), err)
	}
	frontmost, err := settle(ctx, c.opts.Settle, func() bool { return c.apps.IsFrontmost(pid) })
	if err != nil {
		return c.contextError(ctx, target, err)
	}
	if !frontmost {
		c.logger.Debug("application not frontmost after settle, continuing", "pid", pid)
	}
	return nil
}

// focus brings w to the front. It reports whether the window was unminimized.
func (c *Cycler) focus(ctx context.Context, target model.Target, w model.Window, activated int) (bool, error) {
	name := target.DisplayName()
	if w.Handle == nil {
		return false, newError("focus", KindFocusFailed, ReasonRaiseFailed, name, errors.New("window has no native handle"))
	}

	if w.PID != activated {
		if err := c.activate(ctx, target, w.PID); err != nil {
			return false, err
		}
	}

	unminimized := false
	if w.Minimized {
		if err := c.focuser.Unminimize(w.Handle); err != nil {
			return false, newError("focus", KindFocusFailed, ReasonUnminimizeFailed, name, err)
		}
		unminimized = true
		restored, err := settle(ctx, c.opts.Settle, func() bool {
			minimized, err := c.focuser.IsMinimized(w.Handle)
			return err == nil && !minimized
		})
		if err != nil {
			return unminimized, c.contextError(ctx, target, err)
		}
		if !restored {
			c.logger.Debug("window still minimized after settle, continuing", "ordinal", w.Ordinal)
		}
	}

	if err := ctx.Err(); err != nil {
		return unminimized, c.contextError(ctx, target, err)
	}
	if err := c.focuser.SetMain(w.Handle); err != nil {
		return unminimized, newError("focus", KindFocusFailed, ReasonSetMainFailed, name, err)
	}
	if err := c.focuser.Raise(w.Handle); err != nil {
		return unminimized, newError("focus", KindFocusFailed, ReasonRaiseFailed, name, err)
	}
	return unminimized, nil
}

// contextError turns a context expiry into a FocusFailed error and passes
// any other error through.
func (c *Cycler) contextError(ctx context.Context, target model.Target, err error) error {
	ctxErr := ctx.Err()
	if ctxErr == nil || !errors.Is(err, ctxErr) {
		return err
	}
	reason := ReasonTimeout
	if errors.Is(ctxErr, context.Canceled) {
		reason = ReasonCanceled
	}
	return newError("focus", KindFocusFailed, reason, target.DisplayName(), ctxErr)
}
