package engine

import (
	"container/heap"
	"sync"
	"time"
)

type timer struct {
	deadline time.Time
	seq      uint64
	fn       func()
}

// timerHeap orders timers by deadline, then by scheduling order
type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) {
	*h = append(*h, x.(*timer))
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// Scheduler runs deferred callbacks on the game loop goroutine
// Callbacks fire during Advance once game time reaches their deadline
// Scheduling is safe from any goroutine; callbacks always run inside Advance
type Scheduler struct {
	mu     sync.Mutex
	clock  TimeProvider
	timers timerHeap
	seq    uint64
}

// NewScheduler creates a scheduler reading deadlines from clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules fn to run once d of game time has elapsed
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	heap.Push(&s.timers, &timer{
		deadline: s.clock.Now().Add(d),
		seq:      s.seq,
		fn:       fn,
	})
}

// Pending returns the number of callbacks not yet run
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Advance runs every callback whose deadline has passed and returns how many ran
// The lock is released while a callback runs so callbacks may schedule more work
func (s *Scheduler) Advance() int {
	ran := 0
	for {
		s.mu.Lock()
		if len(s.timers) == 0 || s.timers[0].deadline.After(s.clock.Now()) {
			s.mu.Unlock()
			return ran
		}
		t := heap.Pop(&s.timers).(*timer)
		s.mu.Unlock()

		t.fn()
		ran++
	}
}
