package audio

import "errors"

// Sentinel errors
var (
	ErrUnknownCue     = errors.New("unknown sound cue")
	ErrNoAudioBackend = errors.New("no audio backend available")
)
