package cmd

import (
	"github.com/mj1618/window-cycler/internal/cycler"
	"github.com/mj1618/window-cycler/internal/output"
	"github.com/spf13/cobra"
)

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Focus the next window of the target application",
	Long: `Activate the target application, find its current window and focus the
next one in round-robin order. This is what the hotkey does.

Examples:
  window-cycler cycle
  window-cycler cycle --dry-run
  window-cycler cycle --bundle-id com.brave.Browser`,
	RunE: runCycle,
}

func init() {
	rootCmd.AddCommand(cycleCmd)
	cycleCmd.Flags().Bool("dry-run", false, "Report the window that would be focused without activating or focusing anything")
	cycleCmd.Flags().Duration("timeout", 0, "Bound the whole cycle (default: focus_timeout from config)")
}

func runCycle(cmd *cobra.Command, args []string) error {
	app, err := newAppContext(cmd)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		opts := app.cfg.CyclerOptions(app.logger)
		opts.FocusTimeout = timeout
		app.cycler = cycler.New(app.provider, opts)
	}

	var res *cycler.Result
	if dryRun {
		res, err = app.cycler.Plan(cmd.Context(), app.target)
	} else {
		res, err = app.cycler.CycleNext(cmd.Context(), app.target)
	}
	if err != nil {
		return printError(err)
	}
	return output.Print(output.NewCycleResult(res))
}
