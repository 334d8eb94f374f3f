// Package config loads the window-cycler YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mj1618/window-cycler/internal/cycler"
	"github.com/mj1618/window-cycler/internal/hotkey"
	"github.com/mj1618/window-cycler/internal/logging"
	"github.com/mj1618/window-cycler/internal/model"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration written as a Go duration string ("150ms").
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("line %d: duration must be a string like \"150ms\": %w", node.Line, err)
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q: %w", node.Line, s, err)
	}
	*d = Duration(parsed)
	return nil
}

type TargetConfig struct {
	BundleID string `yaml:"bundle_id"`
	Name     string `yaml:"name"`
}

type SettleConfig struct {
	Mode         string   `yaml:"mode"`
	Delay        Duration `yaml:"delay"`
	PollInterval Duration `yaml:"poll_interval"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Config is the effective configuration.
type Config struct {
	Target         TargetConfig `yaml:"target"`
	Hotkey         string       `yaml:"hotkey"`
	Settle         SettleConfig `yaml:"settle"`
	FocusTimeout   Duration     `yaml:"focus_timeout"`
	StatusInterval Duration     `yaml:"status_interval"`
	Log            LogConfig    `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Target: TargetConfig{
			BundleID: model.DefaultBundleID,
			Name:     "Google Chrome",
		},
		Hotkey: "ctrl+option+c",
		Settle: SettleConfig{
			Mode:         string(cycler.SettlePoll),
			Delay:        Duration(150 * time.Millisecond),
			PollInterval: Duration(15 * time.Millisecond),
		},
		FocusTimeout:   Duration(2 * time.Second),
		StatusInterval: Duration(3 * time.Second),
		Log: LogConfig{
			Level: "info",
		},
	}
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "window-cycler", "config.yaml"), nil
}

// Load reads path on top of the defaults. A missing file yields the defaults.
// An empty path means DefaultConfigPath.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Target.BundleID) == "" {
		errs = append(errs, errors.New("target.bundle_id is required"))
	}
	if _, err := hotkey.ParseAccelerator(c.Hotkey); err != nil {
		errs = append(errs, fmt.Errorf("hotkey: %w", err))
	}
	mode, err := cycler.ParseSettleMode(c.Settle.Mode)
	if err != nil {
		errs = append(errs, fmt.Errorf("settle.mode: %w", err))
	}
	if c.Settle.Delay < 0 {
		errs = append(errs, fmt.Errorf("settle.delay must not be negative (got %s)", c.Settle.Delay))
	}
	if mode == cycler.SettlePoll && c.Settle.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("settle.poll_interval must be positive in poll mode (got %s)", c.Settle.PollInterval))
	}
	if c.FocusTimeout < 0 {
		errs = append(errs, fmt.Errorf("focus_timeout must not be negative (got %s)", c.FocusTimeout))
	}
	if c.StatusInterval <= 0 {
		errs = append(errs, fmt.Errorf("status_interval must be positive (got %s)", c.StatusInterval))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// TargetApp returns the application to cycle.
func (c *Config) TargetApp() model.Target {
	return model.Target{BundleID: c.Target.BundleID, Name: c.Target.Name}
}

// Accelerator returns the parsed hotkey.
func (c *Config) Accelerator() (hotkey.Accelerator, error) {
	return hotkey.ParseAccelerator(c.Hotkey)
}

// CyclerOptions converts the settle and timeout settings.
func (c *Config) CyclerOptions(logger hclog.Logger) cycler.Options {
	mode, err := cycler.ParseSettleMode(c.Settle.Mode)
	if err != nil {
		mode = cycler.SettlePoll
	}
	return cycler.Options{
		Settle: cycler.SettleOptions{
			Mode:         mode,
			Delay:        time.Duration(c.Settle.Delay),
			PollInterval: time.Duration(c.Settle.PollInterval),
		},
		FocusTimeout: time.Duration(c.FocusTimeout),
		Logger:       logger,
	}
}

// LoggingOptions converts the log settings.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{Level: c.Log.Level, JSON: c.Log.JSON}
}
