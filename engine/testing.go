package engine

import (
	"time"

	"github.com/lixenwraith/returnspell/core"
)

// TestEpoch is the fixed start time used by NewTestGame
var TestEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestGame creates a game on the default maps driven by a mock clock
// The player starts on mapID at (x, y); the default return point is (1, 10, 8)
func NewTestGame(mapID, x, y int) (*Game, *MockTimeProvider) {
	mock := NewMockTimeProvider(TestEpoch)
	g, err := NewGame(Options{
		Clock:        mock,
		StartMap:     mapID,
		StartX:       x,
		StartY:       y,
		DefaultPoint: core.NewReturnPoint(1, 10, 8),
	})
	if err != nil {
		panic(err)
	}
	return g, mock
}

// Step advances the mock clock by d and runs one update
func Step(g *Game, mock *MockTimeProvider, d time.Duration) {
	mock.Advance(d)
	g.Update()
}

// RunFor advances time in frame-sized steps until d has elapsed
func RunFor(g *Game, mock *MockTimeProvider, d, frame time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		Step(g, mock, frame)
	}
}
