// Package tray runs the menu-bar item: a window count in the title, a
// manual "Cycle now" entry, a permission prompt and quit.
package tray

import (
	"context"
	"errors"
	"sync"
	"time"

	"fyne.io/systray"
	"github.com/hashicorp/go-hclog"
	"github.com/mj1618/window-cycler/internal/cycler"
	"github.com/mj1618/window-cycler/internal/model"
)

// Cycler is the part of *cycler.Cycler the menu bar needs.
type Cycler interface {
	CycleNext(ctx context.Context, target model.Target) (*cycler.Result, error)
	Status(ctx context.Context, target model.Target) cycler.Status
}

// Options configures the menu bar.
type Options struct {
	Target   model.Target
	Hotkey   string
	Interval time.Duration
	Logger   hclog.Logger

	// Prompt asks the OS for accessibility permission.
	Prompt func() bool

	// OnReady runs on its own goroutine once the menu exists. The context is
	// canceled when the menu bar exits.
	OnReady func(ctx context.Context, m *Menu)
}

// Menu owns the menu items and the status poller.
type Menu struct {
	cycler Cycler
	opts   Options
	logger hclog.Logger

	mu      sync.Mutex
	summary *systray.MenuItem
	last    *systray.MenuItem
	cycle   *systray.MenuItem
	perm    *systray.MenuItem
	quit    *systray.MenuItem

	refresh chan struct{}
}

// Run shows the menu bar and blocks until Quit is chosen or ctx is done.
// It must be called from the main goroutine.
func Run(ctx context.Context, c Cycler, opts Options) {
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	if opts.Interval <= 0 {
		opts.Interval = 3 * time.Second
	}
	m := &Menu{
		cycler:  c,
		opts:    opts,
		logger:  opts.Logger.Named("tray"),
		refresh: make(chan struct{}, 1),
	}

	ctx, cancel := context.WithCancel(ctx)
	onReady := func() {
		m.build()
		go m.poll(ctx)
		go m.handleClicks(ctx)
		go func() {
			<-ctx.Done()
			systray.Quit()
		}()
		if opts.OnReady != nil {
			go opts.OnReady(ctx, m)
		}
	}
	onExit := func() {
		cancel()
		m.logger.Info("menu bar exited")
	}
	systray.Run(onReady, onExit)
}

func (m *Menu) build() {
	systray.SetTitle(glyph)
	systray.SetTooltip("Cycle " + m.opts.Target.DisplayName() + " windows")

	m.mu.Lock()
	defer m.mu.Unlock()
	m.summary = systray.AddMenuItem("Checking…", "")
	m.summary.Disable()
	m.last = systray.AddMenuItem("", "")
	m.last.Disable()
	m.last.Hide()
	systray.AddSeparator()
	m.cycle = systray.AddMenuItem("Cycle now", "Focus the next window")
	m.perm = systray.AddMenuItem("Grant Accessibility Permission…", "Open the accessibility permission prompt")
	m.perm.Hide()
	systray.AddSeparator()
	m.quit = systray.AddMenuItem("Quit", "Quit window-cycler")
}

// Refresh requests an immediate status poll.
func (m *Menu) Refresh() {
	select {
	case m.refresh <- struct{}{}:
	default:
	}
}

// Report shows the outcome of a cycle and schedules a status refresh.
func (m *Menu) Report(res *cycler.Result, err error) {
	text := Outcome(res, err)
	m.mu.Lock()
	if m.last != nil && text != "" {
		m.last.SetTitle(text)
		m.last.Show()
	}
	m.mu.Unlock()
	m.Refresh()
}

// CycleNow runs one cycle and reports its outcome.
func (m *Menu) CycleNow(ctx context.Context) {
	res, err := m.cycler.CycleNext(ctx, m.opts.Target)
	if err != nil && !errors.Is(err, cycler.ErrBusy) {
		m.logger.Warn("cycle failed", "error", err)
	}
	m.Report(res, err)
}

func (m *Menu) poll(ctx context.Context) {
	ticker := time.NewTicker(m.opts.Interval)
	defer ticker.Stop()

	m.update(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-m.refresh:
		}
		m.update(ctx)
	}
}

func (m *Menu) update(ctx context.Context) {
	st := m.cycler.Status(ctx, m.opts.Target)
	v := Render(st, m.opts.Hotkey)

	systray.SetTitle(v.Title)
	systray.SetTooltip(v.Tooltip)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.summary.SetTitle(v.Summary)
	if v.ShowPermission {
		m.perm.Show()
	} else {
		m.perm.Hide()
	}
	if v.CycleEnabled {
		m.cycle.Enable()
	} else {
		m.cycle.Disable()
	}
}

func (m *Menu) handleClicks(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.cycle.ClickedCh:
			go m.CycleNow(ctx)
		case <-m.perm.ClickedCh:
			if m.opts.Prompt != nil {
				trusted := m.opts.Prompt()
				m.logger.Info("requested accessibility permission", "trusted", trusted)
			}
			m.Refresh()
		case <-m.quit.ClickedCh:
			systray.Quit()
			return
		}
	}
}
