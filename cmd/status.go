package cmd

import (
	"time"

	"github.com/mj1618/window-cycler/internal/output"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the target is running and how many windows it has",
	Long: `Report accessibility trust, whether the target application is running and
its eligible window count. Never prompts and never changes focus.

With --watch, print a new status every status_interval until interrupted.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().Bool("watch", false, "Keep printing status at the configured interval")
	statusCmd.Flags().Duration("interval", 0, "Polling interval for --watch (default: status_interval from config)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	app, err := newAppContext(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := output.Print(app.cycler.Status(ctx, app.target)); err != nil {
		return err
	}

	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		return nil
	}

	interval, _ := cmd.Flags().GetDuration("interval")
	if interval <= 0 {
		interval = time.Duration(app.cfg.StatusInterval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := output.Print(app.cycler.Status(ctx, app.target)); err != nil {
				return err
			}
		}
	}
}
