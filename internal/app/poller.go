package app

import (
	"context"
	"sync"
	"time"
)

const defaultPollInterval = 5 * time.Second

// Refresher is the operation the poller repeats.
type Refresher interface {
	Refresh(ctx context.Context)
}

// StartPoller launches a background goroutine that refreshes immediately and
// then on every tick. Each refresh runs in its own goroutine, so a slow
// response never delays the next tick; overlapping refreshes are resolved by
// the store. The returned stop function cancels the loop and waits for every
// in-flight refresh to return; it is safe to call more than once.
func StartPoller(ctx context.Context, r Refresher, interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	refresh := func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Refresh(ctx)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		refresh()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				refresh()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			wg.Wait()
		})
	}
}
