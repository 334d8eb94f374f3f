package cmd

import (
	"fmt"

	"github.com/mj1618/window-cycler/internal/config"
	"github.com/mj1618/window-cycler/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long:  "Print the configuration after applying the config file and command-line overrides. With --path, print only the config file location.",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("path", false, "Print the config file path only")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if showPath, _ := cmd.Flags().GetBool("path"); showPath {
		path, _ := rootCmd.PersistentFlags().GetString("config")
		if path == "" {
			p, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			path = p
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return output.PrintYAML(cfg)
}
