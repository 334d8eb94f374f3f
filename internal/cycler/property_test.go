package cycler

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/mj1618/window-cycler/internal/model"
)

// For any N >= 1 and i < N, the next index is (i+1) mod N and N steps
// return to the start.
func TestNextIndex_Closure_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("next is (i+1) mod N", prop.ForAll(
		func(n, k int) bool {
			i := k % n
			return NextIndex(i, n) == (i+1)%n
		},
		gen.IntRange(1, 64),
		gen.IntRange(0, 1000),
	))

	properties.Property("N steps return to the start", prop.ForAll(
		func(n, k int) bool {
			start := k % n
			cur := start
			for step := 0; step < n; step++ {
				cur = NextIndex(cur, n)
				if cur < 0 || cur >= n {
					return false
				}
			}
			return cur == start
		},
		gen.IntRange(1, 64),
		gen.IntRange(0, 1000),
	))

	properties.Property("N steps visit every index once", prop.ForAll(
		func(n int) bool {
			seen := make(map[int]bool, n)
			cur := 0
			for step := 0; step < n; step++ {
				if seen[cur] {
					return false
				}
				seen[cur] = true
				cur = NextIndex(cur, n)
			}
			return len(seen) == n
		},
		gen.IntRange(1, 64),
	))

	properties.TestingRun(t)
}

func buildWindows(minimized, focused []bool) []model.Window {
	n := len(minimized)
	if len(focused) < n {
		n = len(focused)
	}
	ws := make([]model.Window, n)
	for i := 0; i < n; i++ {
		ws[i] = model.Window{Ordinal: i, Minimized: minimized[i], Focused: focused[i]}
	}
	return ws
}

// The detected current window follows focused, then first non-minimized,
// then first overall, and the target is always the entry after it.
func TestPickNext_FallbackChain_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("current follows the fallback chain", prop.ForAll(
		func(minimized, focused []bool) bool {
			ws := buildWindows(minimized, focused)
			if len(ws) == 0 {
				next, cur, s := PickNext(ws)
				return next == -1 && cur == -1 && s == StrategyUnmatched
			}

			want, wantStrategy := -1, ""
			for i, w := range ws {
				if w.Focused {
					want, wantStrategy = i, StrategyFocused
					break
				}
			}
			if want < 0 {
				for i, w := range ws {
					if !w.Minimized {
						want, wantStrategy = i, StrategyFirstVisible
						break
					}
				}
			}
			if want < 0 {
				want, wantStrategy = 0, StrategyFirst
			}

			next, cur, s := PickNext(ws)
			return cur == want && s == wantStrategy && next == (want+1)%len(ws)
		},
		gen.SliceOf(gen.Bool()),
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}
