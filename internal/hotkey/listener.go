package hotkey

import (
	"context"
	"errors"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// ErrUnsupported is returned by Listen on platforms without global hotkeys.
var ErrUnsupported = errors.New("global hotkeys are not supported on this platform")

// Handler runs once per key-down.
type Handler func(ctx context.Context)

// dispatch runs fn on its own goroutine for every event until ctx is done or
// events is closed, then waits for running handlers to return.
func dispatch[E any](ctx context.Context, events <-chan E, logger hclog.Logger, fn Handler) {
	var wg sync.WaitGroup
	defer wg.Wait()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			logger.Debug("hotkey pressed")
			wg.Add(1)
			go func() {
				defer wg.Done()
				fn(ctx)
			}()
		}
	}
}
