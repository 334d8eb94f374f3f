package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    hclog.Level
		wantErr bool
	}{
		{"", hclog.Info, false},
		{"debug", hclog.Debug, false},
		{"WARN", hclog.Warn, false},
		{" trace ", hclog.Trace, false},
		{"error", hclog.Error, false},
		{"loud", hclog.NoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "pid", 501)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered at warn level:\n%s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "pid=501") {
		t.Errorf("warn line missing:\n%s", out)
	}
	if !strings.Contains(out, "window-cycler") {
		t.Errorf("default logger name missing:\n%s", out)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Name: "test", Level: "debug", JSON: true, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Named("cycler").Debug("picked next window", "ordinal", 2)

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if line["@message"] != "picked next window" {
		t.Errorf("@message = %v", line["@message"])
	}
	if line["@module"] != "test.cycler" {
		t.Errorf("@module = %v", line["@module"])
	}
	if line["ordinal"] != float64(2) {
		t.Errorf("ordinal = %v", line["ordinal"])
	}
}

func TestNew_NoEscapesOutsideTerminal(t *testing.T) {
	for _, jsonFormat := range []bool{false, true} {
		var buf bytes.Buffer
		logger, err := New(Options{JSON: jsonFormat, Output: &buf})
		if err != nil {
			t.Fatal(err)
		}
		logger.Info("focused window", "ordinal", 1)
		logger.Error("focus failed")
		if strings.Contains(buf.String(), "\x1b[") {
			t.Errorf("json=%v: output contains ANSI escapes: %q", jsonFormat, buf.String())
		}
	}

	f, err := os.CreateTemp(t.TempDir(), "log")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if got := colorFor(f, false); got != hclog.ColorOff {
		t.Errorf("colorFor(regular file) = %v, want ColorOff", got)
	}
	if got := colorFor(f, true); got != hclog.ColorOff {
		t.Errorf("colorFor(json) = %v, want ColorOff", got)
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New(Options{Level: "verbose"}); err == nil {
		t.Error("expected error for unknown level")
	}
}
