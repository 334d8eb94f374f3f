// Package logging builds the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"
)

// Options configures the root logger.
type Options struct {
	Name   string
	Level  string
	JSON   bool
	Output io.Writer // defaults to stderr
}

// ParseLevel converts a level name to an hclog.Level.
func ParseLevel(s string) (hclog.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return hclog.Info, nil
	}
	level := hclog.LevelFromString(s)
	if level == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("unknown log level: %q (use trace, debug, info, warn or error)", s)
	}
	return level, nil
}

// New returns a logger configured by opts.
func New(opts Options) (hclog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	name := opts.Name
	if name == "" {
		name = "window-cycler"
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      level,
		Output:     out,
		JSONFormat: opts.JSON,
		Color:      colorFor(out, opts.JSON),
	}), nil
}

// colorFor enables color only for text output to a terminal.
func colorFor(out io.Writer, jsonFormat bool) hclog.ColorOption {
	if jsonFormat {
		return hclog.ColorOff
	}
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return hclog.ColorOff
	}
	return hclog.AutoColor
}
