package engine

import (
	"sync"
	"time"
)

// PausableClock is game time layered over a real TimeProvider
// Game time advances with real time except while paused; the scheduler reads
// it, so deferred callbacks freeze with the game
type PausableClock struct {
	mu sync.RWMutex

	real  TimeProvider
	epoch time.Time

	paused      bool
	pausedAt    time.Time     // real time the current pause began
	pausedTotal time.Duration // completed pauses only
}

// NewPausableClock creates a clock driven by real; nil uses the system clock
func NewPausableClock(real TimeProvider) *PausableClock {
	if real == nil {
		real = NewMonotonicTimeProvider()
	}
	return &PausableClock{real: real, epoch: real.Now()}
}

// Now returns game time, frozen at the pause point while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	at := pc.real.Now()
	if pc.paused {
		at = pc.pausedAt
	}
	return at.Add(-pc.pausedTotal)
}

// RealTime returns the underlying real time
func (pc *PausableClock) RealTime() time.Time {
	return pc.real.Now()
}

// Pause freezes game time; pausing twice is a no-op
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = pc.real.Now()
}

// Resume restarts game time from where it froze
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.pausedTotal += pc.real.Now().Sub(pc.pausedAt)
	pc.paused = false
}

// IsPaused reports whether game time is frozen
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns time spent paused, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	total := pc.pausedTotal
	if pc.paused {
		total += pc.real.Now().Sub(pc.pausedAt)
	}
	return total
}
