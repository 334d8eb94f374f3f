package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mj1618/window-cycler/internal/output"
	"github.com/mj1618/window-cycler/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "window-cycler",
	Short: "Cycle focus through the windows of one application",
	Long: `A macOS menu-bar utility that registers a global hotkey and, on each press,
brings the next window of the target application (Google Chrome by default)
to the front in round-robin order.

Run "window-cycler run" to start the menu-bar item and hotkey listener.
The other commands query or drive the same cycler once from the shell.`,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ~/.config/window-cycler/config.yaml)")
	rootCmd.PersistentFlags().String("bundle-id", "", "Target application bundle identifier (overrides config)")
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json (default: json when piped, yaml otherwise)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error (overrides config)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")
		return nil
	}
}
