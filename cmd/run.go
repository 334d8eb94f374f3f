package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mj1618/window-cycler/internal/hotkey"
	"github.com/mj1618/window-cycler/internal/instance"
	"github.com/mj1618/window-cycler/internal/tray"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the menu-bar item and global hotkey",
	Long: `Show the menu-bar item and register the global hotkey. Each key press
focuses the next window of the target application. Only one instance runs
per user.

Examples:
  window-cycler run
  window-cycler run --hotkey cmd+shift+f5
  window-cycler run --bundle-id com.brave.Browser --log-level debug`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("hotkey", "", "Global hotkey, e.g. ctrl+option+c (overrides config)")
	runCmd.Flags().Bool("no-prompt", false, "Do not show the accessibility dialog at startup")
}

func runRun(cmd *cobra.Command, args []string) error {
	app, err := newAppContext(cmd)
	if err != nil {
		return err
	}

	if hk, _ := cmd.Flags().GetString("hotkey"); hk != "" {
		app.cfg.Hotkey = hk
	}
	acc, err := app.cfg.Accelerator()
	if err != nil {
		return fmt.Errorf("invalid hotkey: %w", err)
	}

	lockPath, err := instance.LockPath()
	if err != nil {
		return err
	}
	lock, err := instance.Acquire(lockPath)
	if err != nil {
		return err
	}
	defer lock.Release()

	if noPrompt, _ := cmd.Flags().GetBool("no-prompt"); !noPrompt && !app.provider.Authorizer.Trusted() {
		app.logger.Warn("accessibility permission not granted, showing system prompt")
		app.provider.Authorizer.Prompt()
	}

	app.logger.Info("starting", "target", app.target.BundleID, "hotkey", acc.String(), "lock", lock.Path())

	tray.Run(cmd.Context(), app.cycler, tray.Options{
		Target:   app.target,
		Hotkey:   acc.String(),
		Interval: time.Duration(app.cfg.StatusInterval),
		Logger:   app.logger,
		Prompt:   app.provider.Authorizer.Prompt,
		OnReady: func(ctx context.Context, m *tray.Menu) {
			err := hotkey.Listen(ctx, acc, app.logger, m.CycleNow)
			switch {
			case errors.Is(err, hotkey.ErrUnsupported):
				app.logger.Warn("global hotkey unavailable, use the menu instead", "error", err)
			case err != nil:
				app.logger.Error("hotkey listener stopped", "error", err)
			}
		},
	})
	return nil
}
