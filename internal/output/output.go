package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mj1618/window-cycler/internal/cycler"
	"github.com/mj1618/window-cycler/internal/model"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat converts a flag value to a Format. An empty value picks JSON
// when stdout is piped and YAML otherwise.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "":
		if IsOutputPiped() {
			return FormatJSON, nil
		}
		return FormatYAML, nil
	case "yaml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use yaml or json)", s)
	}
}

// IsOutputPiped reports whether stdout is not a terminal.
func IsOutputPiped() bool {
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

// ListResult is the top-level output of the `list` command.
type ListResult struct {
	App     string         `yaml:"app"               json:"app"`
	Running bool           `yaml:"running"           json:"running"`
	Count   int            `yaml:"count"             json:"count"`
	Masked  int            `yaml:"masked,omitempty"  json:"masked,omitempty"`
	TS      int64          `yaml:"ts"                json:"ts"`
	Windows []model.Window `yaml:"windows"           json:"windows"`
}

// NewListResult builds a ListResult from a snapshot.
func NewListResult(snap *model.Snapshot) ListResult {
	windows := snap.Windows
	if windows == nil {
		windows = []model.Window{}
	}
	return ListResult{
		App:     snap.Target.DisplayName(),
		Running: snap.Running,
		Count:   snap.Len(),
		Masked:  snap.Masked,
		TS:      snap.TakenAt.Unix(),
		Windows: windows,
	}
}

// CycleResult is the top-level output of the `cycle` command and tool.
type CycleResult struct {
	OK          bool         `yaml:"ok"                    json:"ok"`
	ID          string       `yaml:"id"                    json:"id"`
	App         string       `yaml:"app"                   json:"app"`
	Window      model.Window `yaml:"window"                json:"window"`
	From        int          `yaml:"from"                  json:"from"`
	Strategy    string       `yaml:"strategy"              json:"strategy"`
	Count       int          `yaml:"count"                 json:"count"`
	Unminimized bool         `yaml:"unminimized,omitempty" json:"unminimized,omitempty"`
	DryRun      bool         `yaml:"dry_run,omitempty"     json:"dry_run,omitempty"`
	Elapsed     string       `yaml:"elapsed"               json:"elapsed"`
}

// NewCycleResult builds a CycleResult from a successful cycle or plan.
func NewCycleResult(res *cycler.Result) CycleResult {
	return CycleResult{
		OK:          true,
		ID:          res.ID,
		App:         res.Target.DisplayName(),
		Window:      res.Window,
		From:        res.From,
		Strategy:    res.Strategy,
		Count:       res.Count,
		Unminimized: res.Unminimized,
		DryRun:      res.DryRun,
		Elapsed:     res.Elapsed.Round(time.Millisecond).String(),
	}
}

// NewErrorResult builds an ErrorResult, filling kind and reason for cycle
// errors.
func NewErrorResult(err error) ErrorResult {
	res := ErrorResult{
		OK:      false,
		Error:   err.Error(),
		Message: cycler.UserMessage(err),
	}
	if kind := cycler.KindOf(err); kind != cycler.KindUnknown {
		res.Kind = kind.String()
		res.Reason = cycler.ReasonOf(err)
	}
	return res
}

// ErrorResult is printed by commands that report a failure as a document
// before returning the error.
type ErrorResult struct {
	OK      bool   `yaml:"ok"               json:"ok"`
	Error   string `yaml:"error"            json:"error"`
	Kind    string `yaml:"kind,omitempty"   json:"kind,omitempty"`
	Reason  string `yaml:"reason,omitempty" json:"reason,omitempty"`
	Message string `yaml:"message,omitempty" json:"message,omitempty"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
