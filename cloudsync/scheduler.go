package cloudsync

import (
	"sync"
	"time"
)

// scheduler owns the debounce window. Arm schedules fn after the
// window and cancels any fire still pending, so a burst of mutations
// collapses into a single save carrying only the final snapshot.
type scheduler struct {
	window time.Duration

	mu   sync.Mutex
	stop func() bool

	// after is swapped out in tests to drive firing by hand.
	after func(d time.Duration, fn func()) func() bool
}

func newScheduler(window time.Duration) *scheduler {
	return &scheduler{
		window: window,
		after: func(d time.Duration, fn func()) func() bool {
			return time.AfterFunc(d, fn).Stop
		},
	}
}

func (s *scheduler) Arm(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		s.stop()
	}
	s.stop = s.after(s.window, fn)
}

func (s *scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}
