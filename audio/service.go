package audio

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/returnspell/core"
)

// AudioService wraps SoundManager as a Service
// Handles graceful degradation when no audio backend is available
type AudioService struct {
	manager  *SoundManager
	disabled atomic.Bool
	logger   *zap.Logger
}

// NewService creates a new audio service
func NewService(logger *zap.Logger) *AudioService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AudioService{
		manager: NewSoundManager(),
		logger:  logger.Named("audio"),
	}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: bool - mute state (true = muted, no speaker is opened)
func (s *AudioService) Init(args ...any) error {
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok && muted {
			s.disabled.Store(true)
		}
	}
	return nil
}

// Start implements Service
// Opens the speaker; sets disabled on failure (no error returned)
func (s *AudioService) Start() error {
	if s.disabled.Load() {
		return nil
	}
	if err := s.manager.Initialize(); err != nil {
		s.disabled.Store(true)
		s.logger.Warn("audio disabled", zap.Error(fmt.Errorf("%w: %v", ErrNoAudioBackend, err)))
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	s.manager.Cleanup()
	return nil
}

// IsDisabled returns true if audio is unavailable or muted
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// PlaySe plays a cue; disabled audio still rejects unknown cue names
func (s *AudioService) PlaySe(se core.SoundEffect) error {
	if s.disabled.Load() {
		if !HasCue(se.Name) {
			return fmt.Errorf("%w: %q", ErrUnknownCue, se.Name)
		}
		return nil
	}
	if err := s.manager.PlaySe(se); err != nil {
		return fmt.Errorf("play %q: %w", se.Name, err)
	}
	s.logger.Debug("cue played",
		zap.String("cue", se.Name),
		zap.Int("volume", se.Volume),
		zap.Int("pitch", se.Pitch),
		zap.Int("pan", se.Pan),
	)
	return nil
}
