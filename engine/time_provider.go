package engine

import (
	"sync/atomic"
	"time"
)

// TimeProvider is a source of the current time
// Game code depends on this instead of time.Now so tests can drive time
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
// Used for real-time operations (UI, logging) that should not pause
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a manually driven clock for tests
type MockTimeProvider struct {
	nanos atomic.Int64
}

// NewMockTimeProvider creates a mock clock reading start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	m := &MockTimeProvider{}
	m.nanos.Store(start.UnixNano())
	return m
}

// Now returns the mocked time in UTC
func (m *MockTimeProvider) Now() time.Time {
	return time.Unix(0, m.nanos.Load()).UTC()
}

// SetTime jumps the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.nanos.Store(t.UnixNano())
}

// Advance moves the clock forward by d and returns the new time
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	return time.Unix(0, m.nanos.Add(int64(d))).UTC()
}
