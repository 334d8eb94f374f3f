package cycler

import "github.com/mj1618/window-cycler/internal/model"

// Strategy names reported in results and logs.
const (
	StrategyFocused      = "focused"
	StrategyFirstVisible = "first_visible"
	StrategyFirst        = "first"
	StrategyUnmatched    = "unmatched"
)

// Strategy locates the current window in a snapshot.
type Strategy struct {
	Name string
	Find func(windows []model.Window) (int, bool)
}

// FrontmostChain is tried in order; the first strategy that matches wins.
var FrontmostChain = []Strategy{
	{Name: StrategyFocused, Find: findFocused},
	{Name: StrategyFirstVisible, Find: findFirstVisible},
	{Name: StrategyFirst, Find: findFirst},
}

func findFocused(windows []model.Window) (int, bool) {
	for i, w := range windows {
		if w.Focused {
			return i, true
		}
	}
	return -1, false
}

func findFirstVisible(windows []model.Window) (int, bool) {
	for i, w := range windows {
		if !w.Minimized {
			return i, true
		}
	}
	return -1, false
}

func findFirst(windows []model.Window) (int, bool) {
	if len(windows) == 0 {
		return -1, false
	}
	return 0, true
}

// Frontmost returns the index of the current window and the strategy that
// found it. ok is false only when no strategy matched.
func Frontmost(windows []model.Window) (index int, strategy string, ok bool) {
	return frontmostWith(FrontmostChain, windows)
}

func frontmostWith(chain []Strategy, windows []model.Window) (int, string, bool) {
	for _, s := range chain {
		if i, ok := s.Find(windows); ok {
			return i, s.Name, true
		}
	}
	return -1, StrategyUnmatched, false
}

// NextIndex returns the index after current in a cycle of count entries.
// It returns -1 when count is not positive.
func NextIndex(current, count int) int {
	if count <= 0 {
		return -1
	}
	n := (current + 1) % count
	if n < 0 {
		n += count
	}
	return n
}

// PickNext returns the index of the window to focus, the index of the
// detected current window (-1 when unmatched) and the strategy used.
// An unmatched current window targets the first entry.
func PickNext(windows []model.Window) (next, current int, strategy string) {
	return pickNextWith(FrontmostChain, windows)
}

func pickNextWith(chain []Strategy, windows []model.Window) (int, int, string) {
	if len(windows) == 0 {
		return -1, -1, StrategyUnmatched
	}
	cur, strategy, ok := frontmostWith(chain, windows)
	if !ok || cur < 0 || cur >= len(windows) {
		return 0, -1, StrategyUnmatched
	}
	return NextIndex(cur, len(windows)), cur, strategy
}
