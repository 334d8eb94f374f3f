package cmd

import (
	"github.com/mj1618/window-cycler/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the windows of the target application in cycle order",
	Long:  "Enumerate the eligible windows of the target application with their ordinal, title, PID, bounds and state. Nothing is activated or focused.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	app, err := newAppContext(cmd)
	if err != nil {
		return err
	}

	snap, err := app.cycler.Snapshot(cmd.Context(), app.target)
	if err != nil {
		return printError(err)
	}
	defer snap.Release()

	return output.Print(output.NewListResult(snap))
}
