package cycler

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// SettleMode selects how the cycler waits for window-server state to propagate.
type SettleMode string

const (
	// SettleFixed waits the full delay once.
	SettleFixed SettleMode = "fixed"
	// SettlePoll checks the expected state every poll interval and stops
	// early once it holds, giving up after the delay.
	SettlePoll SettleMode = "poll"
)

// ParseSettleMode converts a config or flag value to a SettleMode.
func ParseSettleMode(s string) (SettleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "poll":
		return SettlePoll, nil
	case "fixed":
		return SettleFixed, nil
	default:
		return SettlePoll, fmt.Errorf("unknown settle mode: %q (expected poll or fixed)", s)
	}
}

const defaultPollInterval = 10 * time.Millisecond

// SettleOptions configures the waits between dependent OS calls.
type SettleOptions struct {
	Mode         SettleMode
	Delay        time.Duration
	PollInterval time.Duration
}

// settle waits according to opts. It reports whether cond held when the wait
// ended; in fixed mode cond is evaluated once after the delay. A nil cond
// counts as satisfied. The only error is ctx's.
func settle(ctx context.Context, opts SettleOptions, cond func() bool) (bool, error) {
	check := func() bool { return cond == nil || cond() }

	if opts.Delay <= 0 {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		return check(), nil
	}

	deadline := time.NewTimer(opts.Delay)
	defer deadline.Stop()

	if opts.Mode == SettleFixed {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-deadline.C:
			return check(), nil
		}
	}

	if check() {
		return true, nil
	}

	interval := opts.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-deadline.C:
			return check(), nil
		case <-ticker.C:
			if check() {
				return true, nil
			}
		}
	}
}
