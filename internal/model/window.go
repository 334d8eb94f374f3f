package model

import "fmt"

// UntitledWindow is the title used when a window's title cannot be read.
const UntitledWindow = "Untitled"

// Handle is an opaque reference to a native window object. A handle is owned
// by the snapshot that produced it and is invalid once that snapshot is released.
type Handle interface {
	Release()
}

// Bounds is an on-screen rectangle in global display coordinates.
type Bounds struct {
	X      int `yaml:"x"      json:"x"`
	Y      int `yaml:"y"      json:"y"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Empty reports whether the rectangle has no visible area.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

func (b Bounds) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", b.X, b.Y, b.Width, b.Height)
}

// Window is one eligible top-level window of the target application.
//
// Ordinal is the window's position in the snapshot that produced it and is the
// only identity used for cycling. Handle is the native reference used to focus
// the window; it is never compared across snapshots.
type Window struct {
	Ordinal   int    `yaml:"ordinal"             json:"ordinal"`
	Title     string `yaml:"title"               json:"title"`
	PID       int    `yaml:"pid"                 json:"pid"`
	Bounds    Bounds `yaml:"bounds"              json:"bounds"`
	Minimized bool   `yaml:"minimized,omitempty" json:"minimized,omitempty"`
	Focused   bool   `yaml:"focused,omitempty"   json:"focused,omitempty"`
	Handle    Handle `yaml:"-"                   json:"-"`
}
