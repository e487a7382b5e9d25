package workflow

import (
	"context"
	"sync"
	"time"
)

// Scheduler runs callbacks after a delay, bound to a context. When the
// context is cancelled first (a view being torn down) the callback never
// fires, which keeps a stale "navigate after success" from landing on a
// view that no longer exists.
type Scheduler struct {
	wg sync.WaitGroup
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After invokes fn once d has elapsed, unless ctx is cancelled first.
func (s *Scheduler) After(ctx context.Context, d time.Duration, fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			fn()
		case <-ctx.Done():
		}
	}()
}

// Wait blocks until every scheduled callback has either fired or been
// cancelled. Tests use this to assert on navigation outcomes.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
