package cycler

import (
	"context"
	"errors"
	"testing"

	"github.com/mj1618/window-cycler/internal/model"
	"github.com/mj1618/window-cycler/internal/platform"
	"github.com/mj1618/window-cycler/internal/platform/fake"
)

func TestEnumerate_NotRunningIsEmpty(t *testing.T) {
	e := NewEnumerator(fake.New().Provider(), nil)
	snap, err := e.Enumerate(context.Background(), chrome)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if !snap.Empty() || snap.Running {
		t.Errorf("snapshot = %+v, want empty and not running", snap)
	}
	if snap.Windows == nil {
		t.Error("windows should be an empty slice, not nil")
	}
}

func TestEnumerate_EligibilityFilter(t *testing.T) {
	b := fake.New()
	b.AddApp(chrome.BundleID, 100,
		win(1, "Docs"),
		&fake.Window{ID: 2, Title: "Save As", Subrole: "AXDialog", Bounds: model.Bounds{Width: 400, Height: 300}},
		&fake.Window{ID: 3, Title: "Popup", Subrole: "AXFloatingWindow", Bounds: model.Bounds{Width: 300, Height: 80}},
		&fake.Window{ID: 4, Title: "", Bounds: model.Bounds{}},
		&fake.Window{ID: 5, Title: "Sheet", Role: "AXSheet", Bounds: model.Bounds{Width: 300, Height: 80}},
		&fake.Window{ID: 6, Title: "Parked", Minimized: true},
		&fake.Window{ID: 7, Title: "Unknown kind", Missing: platform.AttrSubrole, Bounds: model.Bounds{Width: 500, Height: 500}},
	)
	e := NewEnumerator(b.Provider(), nil)

	snap, err := e.Enumerate(context.Background(), chrome)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	defer snap.Release()

	want := []string{"Docs", "Parked", "Unknown kind"}
	if snap.Len() != len(want) {
		t.Fatalf("got %d windows %v, want %v", snap.Len(), snap.Identities(), want)
	}
	for i, title := range want {
		if snap.Windows[i].Title != title {
			t.Errorf("window %d = %q, want %q", i, snap.Windows[i].Title, title)
		}
		if snap.Windows[i].Ordinal != i {
			t.Errorf("window %d has ordinal %d", i, snap.Windows[i].Ordinal)
		}
	}
	if !snap.Windows[1].Minimized {
		t.Error("minimized window should be kept and flagged")
	}
	if b.Released() != 4 {
		t.Errorf("rejected handles released = %d, want 4", b.Released())
	}
}

func TestEnumerate_MasksMissingAttributes(t *testing.T) {
	b := fake.New()
	b.AddApp(chrome.BundleID, 100,
		&fake.Window{ID: 1, Title: "Secret", Missing: platform.AttrTitle, Bounds: model.Bounds{Width: 800, Height: 600}},
		&fake.Window{ID: 2, Title: "Nowhere", Missing: platform.AttrBounds},
		&fake.Window{ID: 3, Title: "Maybe", Minimized: true, Missing: platform.AttrMinimized, Bounds: model.Bounds{Width: 800, Height: 600}},
		&fake.Window{ID: 4, Title: "   ", Bounds: model.Bounds{Width: 800, Height: 600}},
	)
	e := NewEnumerator(b.Provider(), nil)

	snap, err := e.Enumerate(context.Background(), chrome)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	defer snap.Release()

	if snap.Len() != 4 {
		t.Fatalf("got %d windows, want 4", snap.Len())
	}
	if snap.Windows[0].Title != model.UntitledWindow {
		t.Errorf("missing title = %q, want %q", snap.Windows[0].Title, model.UntitledWindow)
	}
	if snap.Windows[1].Bounds != (model.Bounds{}) {
		t.Errorf("missing bounds = %+v, want zero", snap.Windows[1].Bounds)
	}
	if snap.Windows[2].Minimized {
		t.Error("failed minimized query should default to false")
	}
	if snap.Windows[3].Title != model.UntitledWindow {
		t.Errorf("blank title = %q, want placeholder", snap.Windows[3].Title)
	}
	if snap.Masked != 3 {
		t.Errorf("Masked = %d, want 3", snap.Masked)
	}
}

func TestEnumerate_TotalFailure(t *testing.T) {
	b := fake.New()
	b.AddApp(chrome.BundleID, 100, win(1, "A"))
	b.WindowsErr[100] = errors.New("AXError -25204")
	e := NewEnumerator(b.Provider(), nil)

	_, err := e.Enumerate(context.Background(), chrome)
	if !errors.Is(err, ErrNoWindowsFound) {
		t.Fatalf("expected ErrNoWindowsFound, got %v", err)
	}
	if ReasonOf(err) != ReasonEnumerationFailed {
		t.Errorf("reason = %q, want %q", ReasonOf(err), ReasonEnumerationFailed)
	}
}

func TestEnumerate_PartialProcessFailure(t *testing.T) {
	b := fake.New()
	b.AddApp(chrome.BundleID, 100, win(1, "A"))
	b.AddApp(chrome.BundleID, 200, win(2, "B"))
	b.WindowsErr[100] = errors.New("AXError -25204")
	e := NewEnumerator(b.Provider(), nil)

	snap, err := e.Enumerate(context.Background(), chrome)
	if err != nil {
		t.Fatalf("one failing process should not fail enumeration: %v", err)
	}
	defer snap.Release()
	if snap.Len() != 1 || snap.Windows[0].Title != "B" || snap.Windows[0].Ordinal != 0 {
		t.Errorf("snapshot = %v", snap.Identities())
	}
}

func TestEnumerate_RunningQueryFails(t *testing.T) {
	b := fake.New()
	b.RunningErr = errors.New("workspace unavailable")
	e := NewEnumerator(b.Provider(), nil)

	_, err := e.Enumerate(context.Background(), chrome)
	if !errors.Is(err, ErrNoWindowsFound) || ReasonOf(err) != ReasonEnumerationFailed {
		t.Errorf("got %v, want NoWindowsFound/enumeration_failed", err)
	}
}

func TestEnumerate_Idempotent(t *testing.T) {
	b := fake.New()
	b.AddApp(chrome.BundleID, 100, win(1, "Mail"), win(2, "Calendar"), &fake.Window{ID: 3, Title: "Docs", Minimized: true})
	e := NewEnumerator(b.Provider(), nil)

	first, err := e.Enumerate(context.Background(), chrome)
	if err != nil {
		t.Fatal(err)
	}
	defer first.Release()
	second, err := e.Enumerate(context.Background(), chrome)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Release()

	a, c := first.Identities(), second.Identities()
	if len(a) != len(c) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(c))
	}
	for i := range a {
		if a[i] != c[i] {
			t.Errorf("entry %d differs: %+v vs %+v", i, a[i], c[i])
		}
	}
	for _, op := range []string{"activate", "unminimize", "setmain", "raise"} {
		if n := b.CallCount(op); n != 0 {
			t.Errorf("enumeration must be read-only, %s called %d times", op, n)
		}
	}
}

func TestEnumerate_CanceledContext(t *testing.T) {
	b := fake.New()
	b.AddApp(chrome.BundleID, 100, win(1, "A"))
	e := NewEnumerator(b.Provider(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Enumerate(ctx, chrome)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected wrapped context.Canceled, got %v", err)
	}
}

func TestAdmit_FocusedFlag(t *testing.T) {
	raw := platform.RawWindow{Role: model.RoleWindow, Subrole: "AXStandardWindow", Title: "A", Focused: true, Bounds: model.Bounds{Width: 1, Height: 1}}
	w, ok := admit(raw)
	if !ok || !w.Focused {
		t.Errorf("admit = %+v, %v; want focused window", w, ok)
	}

	raw.Missing = platform.AttrFocused
	w, ok = admit(raw)
	if !ok || w.Focused {
		t.Errorf("failed focused query should default to false, got %+v", w)
	}
}
