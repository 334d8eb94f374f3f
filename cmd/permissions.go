package cmd

import (
	"github.com/mj1618/window-cycler/internal/output"
	"github.com/mj1618/window-cycler/internal/platform"
	"github.com/spf13/cobra"
)

// PermissionsResult is the output of the permissions command.
type PermissionsResult struct {
	Trusted  bool   `yaml:"trusted"          json:"trusted"`
	Prompted bool   `yaml:"prompted"         json:"prompted"`
	Hint     string `yaml:"hint,omitempty"   json:"hint,omitempty"`
}

const permissionHint = "Grant permission at: System Settings > Privacy & Security > Accessibility. " +
	"Add the app or terminal running window-cycler, then restart it."

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "Check (and optionally request) accessibility permission",
	Long:  "Report whether this process is trusted for accessibility. With --prompt, ask macOS to show its permission dialog when not trusted.",
	RunE:  runPermissions,
}

func init() {
	rootCmd.AddCommand(permissionsCmd)
	permissionsCmd.Flags().Bool("prompt", false, "Show the system permission dialog if not trusted")
}

func runPermissions(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	prompt, _ := cmd.Flags().GetBool("prompt")
	return output.Print(checkPermissions(provider.Authorizer, prompt))
}

func checkPermissions(auth platform.Authorizer, prompt bool) PermissionsResult {
	res := PermissionsResult{Trusted: auth.Trusted()}
	if !res.Trusted && prompt {
		res.Trusted = auth.Prompt()
		res.Prompted = true
	}
	if !res.Trusted {
		res.Hint = permissionHint
	}
	return res
}
