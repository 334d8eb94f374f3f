package platform

import (
	"strings"

	"github.com/mj1618/window-cycler/internal/model"
)

// Attr is a set of window attributes.
type Attr uint8

const (
	AttrTitle Attr = 1 << iota
	AttrBounds
	AttrMinimized
	AttrSubrole
	AttrFocused
)

var attrNames = []struct {
	attr Attr
	name string
}{
	{AttrTitle, "title"},
	{AttrBounds, "bounds"},
	{AttrMinimized, "minimized"},
	{AttrSubrole, "subrole"},
	{AttrFocused, "focused"},
}

// Has reports whether every attribute in other is set in a.
func (a Attr) Has(other Attr) bool {
	return a&other == other
}

func (a Attr) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	for _, n := range attrNames {
		if a.Has(n.attr) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, ",")
}

// RawWindow is one window as reported by the accessibility layer, before
// eligibility filtering and default substitution.
type RawWindow struct {
	Handle    model.Handle
	PID       int
	Role      string
	Subrole   string
	Title     string
	Bounds    model.Bounds
	Minimized bool
	Focused   bool // main or focused window of its application

	// Missing lists attributes whose query failed; their fields hold zero values.
	Missing Attr
}
