// Package hotkey parses accelerator strings and binds them as global hotkeys.
package hotkey

import (
	"fmt"
	"strings"
)

// Modifier is a keyboard modifier in an accelerator.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModOption
	ModShift
	ModCmd
)

// modifierOrder is the canonical order used by Accelerator.String.
var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "ctrl"},
	{ModOption, "option"},
	{ModShift, "shift"},
	{ModCmd, "cmd"},
}

var modifierAliases = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"⌃":       ModCtrl,
	"option":  ModOption,
	"opt":     ModOption,
	"alt":     ModOption,
	"⌥":       ModOption,
	"shift":   ModShift,
	"⇧":       ModShift,
	"cmd":     ModCmd,
	"command": ModCmd,
	"super":   ModCmd,
	"⌘":       ModCmd,
}

var keyAliases = map[string]string{
	"enter": "return",
	"esc":   "escape",
	"spc":   "space",
	"←":     "left",
	"→":     "right",
	"↑":     "up",
	"↓":     "down",
}

var namedKeys = map[string]bool{
	"space":  true,
	"tab":    true,
	"return": true,
	"escape": true,
	"delete": true,
	"left":   true,
	"right":  true,
	"up":     true,
	"down":   true,
}

// Accelerator is a parsed hotkey such as ctrl+option+c.
type Accelerator struct {
	Mods Modifier
	Key  string // canonical key name: "a".."z", "0".."9", "f1".."f12" or a named key
}

// Has reports whether m is part of the accelerator.
func (a Accelerator) Has(m Modifier) bool {
	return a.Mods&m != 0
}

// Modifiers returns the modifiers in canonical order.
func (a Accelerator) Modifiers() []Modifier {
	var mods []Modifier
	for _, m := range modifierOrder {
		if a.Has(m.mod) {
			mods = append(mods, m.mod)
		}
	}
	return mods
}

func (a Accelerator) String() string {
	var parts []string
	for _, m := range modifierOrder {
		if a.Has(m.mod) {
			parts = append(parts, m.name)
		}
	}
	parts = append(parts, a.Key)
	return strings.Join(parts, "+")
}

// ParseAccelerator parses strings like "ctrl+option+c" or "cmd+shift+F5".
// At least one modifier is required.
func ParseAccelerator(s string) (Accelerator, error) {
	var acc Accelerator
	s = strings.TrimSpace(s)
	if s == "" {
		return acc, fmt.Errorf("empty hotkey")
	}

	parts := strings.Split(s, "+")
	for i, raw := range parts {
		part := strings.ToLower(strings.TrimSpace(raw))
		if part == "" {
			return acc, fmt.Errorf("invalid hotkey %q: empty component", s)
		}
		last := i == len(parts)-1
		if mod, ok := modifierAliases[part]; ok && !last {
			if acc.Has(mod) {
				return acc, fmt.Errorf("invalid hotkey %q: duplicate modifier %s", s, part)
			}
			acc.Mods |= mod
			continue
		}
		if !last {
			return acc, fmt.Errorf("invalid hotkey %q: %q is not a modifier", s, raw)
		}
		key, err := canonicalKey(part)
		if err != nil {
			return acc, fmt.Errorf("invalid hotkey %q: %w", s, err)
		}
		acc.Key = key
	}

	if acc.Mods == 0 {
		return acc, fmt.Errorf("invalid hotkey %q: at least one modifier is required", s)
	}
	return acc, nil
}

func canonicalKey(k string) (string, error) {
	if alias, ok := keyAliases[k]; ok {
		k = alias
	}
	if namedKeys[k] {
		return k, nil
	}
	if len(k) == 1 && (k[0] >= 'a' && k[0] <= 'z' || k[0] >= '0' && k[0] <= '9') {
		return k, nil
	}
	if len(k) >= 2 && k[0] == 'f' {
		var n int
		if _, err := fmt.Sscanf(k[1:], "%d", &n); err == nil && fmt.Sprintf("f%d", n) == k && n >= 1 && n <= 12 {
			return k, nil
		}
	}
	if _, ok := modifierAliases[k]; ok {
		return "", fmt.Errorf("missing key after modifier %q", k)
	}
	return "", fmt.Errorf("unsupported key %q", k)
}
