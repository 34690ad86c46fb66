package audio

import (
	"sort"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/returnspell/core"
	"github.com/lixenwraith/returnspell/parameter"
)

const (
	cueAttack  = 5 * time.Millisecond
	cueRelease = 40 * time.Millisecond
)

// CueBuilder renders a named cue at the given sample rate
type CueBuilder func(rate beep.SampleRate) beep.Streamer

// cueLibrary maps host cue names to synthesized sounds
var cueLibrary = map[string]CueBuilder{
	core.CueMove:     createMoveCue,
	core.CueBuzzer:   createBuzzerCue,
	core.CueDecision: createDecisionCue,
	core.CueSave:     createSaveCue,
}

// CueNames returns the known cue names, sorted
func CueNames() []string {
	names := make([]string, 0, len(cueLibrary))
	for name := range cueLibrary {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasCue reports whether name is in the cue library
func HasCue(name string) bool {
	_, ok := cueLibrary[name]
	return ok
}

// Render builds the mixed streamer for a cue request
func Render(se core.SoundEffect, rate beep.SampleRate) (beep.Streamer, error) {
	build, ok := cueLibrary[se.Name]
	if !ok {
		return nil, ErrUnknownCue
	}
	return applyMix(build(rate), se), nil
}

// createMoveCue is a rising shimmer used for warps
func createMoveCue(rate beep.SampleRate) beep.Streamer {
	d := parameter.MoveSoundDuration
	sweep := NewSweep(parameter.MoveSoundStartHz, parameter.MoveSoundEndHz, d, WaveSine, rate)
	octave := NewSweep(parameter.MoveSoundStartHz*2, parameter.MoveSoundEndHz*2, d, WaveSine, rate)
	mixed := beep.Mix(newVolume(sweep, 0.6), newVolume(octave, 0.25))
	return NewEnvelope(mixed, d, cueAttack, d/2, rate)
}

// createBuzzerCue is a low harsh buzz for rejected actions
func createBuzzerCue(rate beep.SampleRate) beep.Streamer {
	d := parameter.BuzzerSoundDuration
	osc := NewOscillator(parameter.BuzzerSoundHz, d, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, d, cueAttack, cueRelease, rate), 0.5)
}

// createDecisionCue is a short confirmation blip
func createDecisionCue(rate beep.SampleRate) beep.Streamer {
	d := parameter.DecisionSoundDuration
	osc := NewOscillator(parameter.DecisionSoundHz, d, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, d, cueAttack, cueRelease, rate), 0.3)
}

// createSaveCue is a two-note chime
func createSaveCue(rate beep.SampleRate) beep.Streamer {
	half := parameter.SaveSoundDuration / 2
	n1 := NewEnvelope(NewOscillator(parameter.SaveSoundHz, half, WaveSine, rate), half, cueAttack, cueRelease, rate)
	n2 := NewEnvelope(NewOscillator(parameter.SaveSoundHz*1.5, half, WaveSine, rate), half, cueAttack, half/2, rate)
	return newVolume(beep.Seq(n1, n2), 0.6)
}
