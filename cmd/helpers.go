package cmd

import (
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mj1618/window-cycler/internal/config"
	"github.com/mj1618/window-cycler/internal/cycler"
	"github.com/mj1618/window-cycler/internal/logging"
	"github.com/mj1618/window-cycler/internal/model"
	"github.com/mj1618/window-cycler/internal/output"
	"github.com/mj1618/window-cycler/internal/platform"
	"github.com/spf13/cobra"
)

// appContext bundles what every command needs.
type appContext struct {
	cfg      *config.Config
	logger   hclog.Logger
	provider *platform.Provider
	cycler   *cycler.Cycler
	target   model.Target
}

// loadConfig reads the config file and applies the root flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if bundleID, _ := rootCmd.PersistentFlags().GetString("bundle-id"); strings.TrimSpace(bundleID) != "" {
		bundleID = strings.TrimSpace(bundleID)
		if bundleID != cfg.Target.BundleID {
			cfg.Target = config.TargetConfig{BundleID: bundleID}
		}
	}
	if level, _ := rootCmd.PersistentFlags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newAppContext loads config, builds the logger and the platform provider.
func newAppContext(cmd *cobra.Command) (*appContext, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LoggingOptions())
	if err != nil {
		return nil, err
	}
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	return &appContext{
		cfg:      cfg,
		logger:   logger,
		provider: provider,
		cycler:   cycler.New(provider, cfg.CyclerOptions(logger)),
		target:   cfg.TargetApp(),
	}, nil
}

// printError prints err as a result document and returns it so the
// command exits non-zero.
func printError(err error) error {
	if perr := output.Print(output.NewErrorResult(err)); perr != nil {
		return perr
	}
	return err
}
