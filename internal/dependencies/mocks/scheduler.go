package mocks

import (
	"sync"
	"time"

	"github.com/openroom/partygames-go/internal/dependencies/scheduler"
)

// MockScheduler is a mock implementation of Scheduler for testing.
// Scheduled callbacks never fire on their own; tests fire them
// explicitly with Fire or FireAll.
type MockScheduler struct {
	mu    sync.Mutex
	next  int
	tasks map[int]*mockTask
}

type mockTask struct {
	sched     *MockScheduler
	id        int
	Delay     time.Duration
	fn        func()
	cancelled bool
}

// Ensure MockScheduler implements Scheduler
var _ scheduler.Scheduler = (*MockScheduler)(nil)

// NewMockScheduler creates a new MockScheduler
func NewMockScheduler() *MockScheduler {
	return &MockScheduler{tasks: make(map[int]*mockTask)}
}

// After records the callback without scheduling anything
func (s *MockScheduler) After(d time.Duration, fn func()) scheduler.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	task := &mockTask{sched: s, id: s.next, Delay: d, fn: fn}
	s.tasks[s.next] = task
	return task
}

func (t *mockTask) Cancel() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()

	if t.cancelled {
		return false
	}
	t.cancelled = true
	delete(t.sched.tasks, t.id)
	return true
}

// Pending returns the number of scheduled, un-fired callbacks
func (s *MockScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// FireAll runs every pending callback in scheduling order
func (s *MockScheduler) FireAll() {
	s.mu.Lock()
	var fns []func()
	for id := 1; id <= s.next; id++ {
		if task, ok := s.tasks[id]; ok {
			fns = append(fns, task.fn)
			delete(s.tasks, id)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// FireNext runs the earliest-scheduled pending callback, if any
func (s *MockScheduler) FireNext() bool {
	s.mu.Lock()
	var fn func()
	for id := 1; id <= s.next; id++ {
		if task, ok := s.tasks[id]; ok {
			fn = task.fn
			delete(s.tasks, id)
			break
		}
	}
	s.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}
