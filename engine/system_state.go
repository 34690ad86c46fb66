package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/returnspell/core"
)

// SystemState is the persistent session object saved with the game
// The return point is a plain field so it serializes with the rest of the save
type SystemState struct {
	SessionID   string            `toml:"session_id"`
	SaveCount   int               `toml:"save_count"`
	ReturnPoint *core.ReturnPoint `toml:"return_point"`
}

// NewSystemState creates a fresh session seeded with the default return point
func NewSystemState(defaultPoint core.ReturnPoint) *SystemState {
	s := &SystemState{SessionID: uuid.NewString()}
	s.Initialize(defaultPoint)
	return s
}

// Initialize ensures a return point exists, seeding it from defaultPoint
func (s *SystemState) Initialize(defaultPoint core.ReturnPoint) {
	if s.SessionID == "" {
		s.SessionID = uuid.NewString()
	}
	if s.ReturnPoint == nil {
		p := defaultPoint
		s.ReturnPoint = &p
	}
}

// LoadReturnPoint returns the live return point if one is stored
func (s *SystemState) LoadReturnPoint() (core.ReturnPoint, bool) {
	if s == nil || s.ReturnPoint == nil {
		return core.ReturnPoint{}, false
	}
	return *s.ReturnPoint, true
}

// StoreReturnPoint overwrites the live return point
func (s *SystemState) StoreReturnPoint(p core.ReturnPoint) {
	if s.ReturnPoint == nil {
		s.ReturnPoint = new(core.ReturnPoint)
	}
	*s.ReturnPoint = p
}

// Replace copies other into s so holders of s observe the loaded state
func (s *SystemState) Replace(other SystemState) {
	s.SessionID = other.SessionID
	s.SaveCount = other.SaveCount
	if other.ReturnPoint == nil {
		s.ReturnPoint = nil
		return
	}
	p := *other.ReturnPoint
	s.ReturnPoint = &p
}
