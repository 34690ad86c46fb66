package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Mix Ranges
const (
	// AudioMaxVolume is the host volume scale ceiling (percent)
	AudioMaxVolume = 100

	// AudioVolumeBase is the exponent base used by the volume effect
	AudioVolumeBase = 2

	// AudioMinPitch and AudioMaxPitch clamp the pitch percentage before resampling
	AudioMinPitch = 50
	AudioMaxPitch = 150

	// AudioResampleQuality is the interpolation quality for pitch shifting
	AudioResampleQuality = 3
)

// Move Cue
const (
	MoveSoundDuration = 350 * time.Millisecond
	MoveSoundStartHz  = 320.0
	MoveSoundEndHz    = 1280.0
)

// Buzzer Cue
const (
	BuzzerSoundDuration = 200 * time.Millisecond
	BuzzerSoundHz       = 120.0
)

// Decision Cue
const (
	DecisionSoundDuration = 90 * time.Millisecond
	DecisionSoundHz       = 880.0
)

// Save Cue
const (
	SaveSoundDuration = 500 * time.Millisecond
	SaveSoundHz       = 660.0
)
