package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/mj1618/window-cycler/internal/cycler"
	"github.com/mj1618/window-cycler/internal/model"
	"gopkg.in/yaml.v3"
)

func capture(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	err = fn()
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func sampleResult() ListResult {
	return ListResult{
		App:     "Google Chrome",
		Running: true,
		Count:   2,
		TS:      1707500000,
		Windows: []model.Window{
			{Ordinal: 0, Title: "Inbox", PID: 501, Bounds: model.Bounds{X: 0, Y: 25, Width: 1440, Height: 875}, Focused: true},
			{Ordinal: 1, Title: "Docs", PID: 501, Minimized: true},
		},
	}
}

func TestPrintYAML(t *testing.T) {
	out := capture(t, func() error { return PrintYAML(sampleResult()) })

	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}
	var decoded ListResult
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.App != "Google Chrome" {
		t.Errorf("app: got %q, want %q", decoded.App, "Google Chrome")
	}
	if len(decoded.Windows) != 2 || decoded.Windows[1].Title != "Docs" || !decoded.Windows[1].Minimized {
		t.Errorf("windows: got %+v", decoded.Windows)
	}
}

func TestPrintJSON_Compact(t *testing.T) {
	out := capture(t, func() error { return PrintJSON(sampleResult()) })

	if bytes.Count([]byte(out), []byte("\n")) > 1 {
		t.Errorf("compact output should be single line, got:\n%s", out)
	}
	var decoded ListResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Count != 2 {
		t.Errorf("count: got %d, want 2", decoded.Count)
	}
}

func TestPrintPrettyJSON(t *testing.T) {
	out := capture(t, func() error { return PrintPrettyJSON(sampleResult()) })
	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("pretty output should be multi-line, got:\n%s", out)
	}
}

func TestPrint_UsesOutputFormat(t *testing.T) {
	defer func(f Format, p bool) { OutputFormat, PrettyOutput = f, p }(OutputFormat, PrettyOutput)

	OutputFormat = FormatJSON
	out := capture(t, func() error { return Print(map[string]int{"count": 3}) })
	if out != "{\"count\":3}\n" {
		t.Errorf("json output = %q", out)
	}

	OutputFormat = FormatYAML
	out = capture(t, func() error { return Print(map[string]int{"count": 3}) })
	if out != "count: 3\n" {
		t.Errorf("yaml output = %q", out)
	}

	OutputFormat = Format("xml")
	if err := Print(1); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %q, %v", f, err)
	}
	if f, err := ParseFormat("yaml"); err != nil || f != FormatYAML {
		t.Errorf("ParseFormat(yaml) = %q, %v", f, err)
	}
	if _, err := ParseFormat("agent"); err == nil {
		t.Error("expected error for unknown format")
	}
	// Under `go test` stdout is not a terminal.
	if f, err := ParseFormat(""); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(\"\") = %q, %v; want json when piped", f, err)
	}
}

func TestNewListResult(t *testing.T) {
	snap := &model.Snapshot{
		Target:  model.Target{BundleID: model.DefaultBundleID},
		Running: true,
		Masked:  1,
		TakenAt: time.Unix(1707500000, 0),
	}
	r := NewListResult(snap)
	if r.Windows == nil || r.Count != 0 {
		t.Errorf("empty snapshot should give an empty, non-nil window list: %+v", r)
	}
	if r.TS != 1707500000 || r.Masked != 1 || !r.Running {
		t.Errorf("result = %+v", r)
	}
	if r.App == "" {
		t.Error("app should fall back to a display name")
	}
}

func TestListResult_HandleNotSerialized(t *testing.T) {
	r := sampleResult()
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	windows := m["windows"].([]interface{})
	first := windows[0].(map[string]interface{})
	if _, ok := first["handle"]; ok {
		t.Error("native handle must not be serialized")
	}
	if _, ok := m["masked"]; ok {
		t.Error("zero masked count should be omitted")
	}
}

func TestNewCycleResult(t *testing.T) {
	res := &cycler.Result{
		ID:       "abc",
		Target:   model.Target{BundleID: model.DefaultBundleID, Name: "Google Chrome"},
		Window:   model.Window{Ordinal: 2, Title: "Docs"},
		From:     1,
		Strategy: cycler.StrategyFocused,
		Count:    3,
		Elapsed:  12345678 * time.Nanosecond,
	}
	r := NewCycleResult(res)
	if !r.OK || r.App != "Google Chrome" || r.Window.Title != "Docs" || r.From != 1 || r.Count != 3 {
		t.Errorf("result = %+v", r)
	}
	if r.Elapsed != "12ms" {
		t.Errorf("elapsed = %q, want 12ms", r.Elapsed)
	}
}

func TestNewErrorResult(t *testing.T) {
	wrapped := fmt.Errorf("hotkey: %w", cycler.ErrBusy)
	r := NewErrorResult(wrapped)
	if r.OK || r.Kind != "BUSY" || r.Message == "" || r.Error == "" {
		t.Errorf("result = %+v", r)
	}

	plain := NewErrorResult(errors.New("boom"))
	if plain.Kind != "" || plain.Reason != "" {
		t.Errorf("plain errors carry no kind: %+v", plain)
	}
}
