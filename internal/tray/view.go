package tray

import (
	"fmt"

	"github.com/mj1618/window-cycler/internal/cycler"
)

const (
	glyph           = "⧉"
	titleNoAccess   = glyph + " !"
	titleNotRunning = glyph + " –"
)

// View is what the menu bar shows for one status poll.
type View struct {
	Title          string
	Tooltip        string
	Summary        string // first, disabled menu line
	ShowPermission bool
	CycleEnabled   bool
}

// Render builds the menu-bar view from a status reading. hotkey is the
// accelerator shown in the tooltip; it may be empty.
func Render(st cycler.Status, hotkey string) View {
	app := st.Target.DisplayName()
	v := View{}

	switch {
	case !st.Trusted:
		v.Title = titleNoAccess
		v.Summary = "Accessibility permission required"
		v.ShowPermission = true
	case !st.Running:
		v.Title = titleNotRunning
		v.Summary = app + " is not running"
	default:
		v.Title = fmt.Sprintf("%s %d", glyph, st.Windows)
		v.Summary = fmt.Sprintf("%s: %s", app, pluralWindows(st.Windows))
		v.CycleEnabled = st.Windows > 0
	}

	v.Tooltip = "Cycle " + app + " windows"
	if hotkey != "" {
		v.Tooltip += " (" + hotkey + ")"
	}
	return v
}

// Outcome returns the text for the "last action" menu line.
func Outcome(res *cycler.Result, err error) string {
	if err != nil {
		return cycler.UserMessage(err)
	}
	if res == nil {
		return ""
	}
	return fmt.Sprintf("Focused %q (%d of %d)", res.Window.Title, res.Window.Ordinal+1, res.Count)
}

func pluralWindows(n int) string {
	if n == 1 {
		return "1 window"
	}
	return fmt.Sprintf("%d windows", n)
}
