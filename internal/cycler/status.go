package cycler

import (
	"context"

	"github.com/mj1618/window-cycler/internal/model"
)

// Status is a read-only view of the target for display purposes.
type Status struct {
	Target  model.Target `yaml:"target"  json:"target"`
	Trusted bool         `yaml:"trusted" json:"trusted"`
	Running bool         `yaml:"running" json:"running"`
	Windows int          `yaml:"windows" json:"windows"`
}

// IsRunning reports whether any instance of target is running. It needs no
// accessibility permission.
func (c *Cycler) IsRunning(target model.Target) bool {
	pids, err := c.apps.RunningPIDs(target.BundleID)
	return err == nil && len(pids) > 0
}

// WindowCount returns the number of eligible windows of target, or 0 when
// the target is not running, permission is missing or enumeration fails.
func (c *Cycler) WindowCount(target model.Target) int {
	return c.windowCount(context.Background(), target)
}

func (c *Cycler) windowCount(ctx context.Context, target model.Target) int {
	if !c.auth.Trusted() {
		return 0
	}
	snap, err := c.enum.Enumerate(ctx, target)
	if err != nil {
		return 0
	}
	defer snap.Release()
	return snap.Len()
}

// Status combines IsRunning and WindowCount with the trust state. It is
// what the menu bar and the MCP status tool poll.
func (c *Cycler) Status(ctx context.Context, target model.Target) Status {
	st := Status{
		Target:  target,
		Trusted: c.auth.Trusted(),
		Running: c.IsRunning(target),
	}
	if st.Running && st.Trusted {
		st.Windows = c.windowCount(ctx, target)
	}
	return st
}
