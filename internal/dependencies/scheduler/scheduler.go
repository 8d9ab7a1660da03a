package scheduler

import "time"

// Handle refers to one pending scheduled callback
type Handle interface {
	// Cancel stops the callback from firing. Reports whether it was
	// still pending; false means it already fired or was cancelled.
	Cancel() bool
}

// Scheduler provides cancellable one-shot timers that can be mocked for
// testing. Callbacks run on their own goroutine; callers are responsible
// for re-checking current state inside the callback, since a timer may
// race a cancellation.
type Scheduler interface {
	// After schedules fn to run once after d
	After(d time.Duration, fn func()) Handle
}

// RealScheduler implements Scheduler using time.AfterFunc
type RealScheduler struct{}

// New creates a new RealScheduler
func New() *RealScheduler {
	return &RealScheduler{}
}

type realHandle struct {
	timer *time.Timer
}

func (h *realHandle) Cancel() bool {
	return h.timer.Stop()
}

// After schedules fn to run once after d
func (s *RealScheduler) After(d time.Duration, fn func()) Handle {
	return &realHandle{timer: time.AfterFunc(d, fn)}
}
