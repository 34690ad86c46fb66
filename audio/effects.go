package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/returnspell/core"
	"github.com/lixenwraith/returnspell/parameter"
)

// WaveType selects an oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// waveforms map a phase in [0, 1) to a sample in [-1, 1]
var waveforms = map[WaveType]func(phase float64) float64{
	WaveSine: func(p float64) float64 { return math.Sin(2 * math.Pi * p) },
	WaveSquare: func(p float64) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	},
	WaveSaw:   func(p float64) float64 { return 2*p - 1 },
	WaveNoise: func(float64) float64 { return rand.Float64()*2 - 1 },
}

// NewOscillator returns a mono tone duplicated on both channels
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep returns a tone whose frequency glides linearly from startHz to endHz
func NewSweep(startHz, endHz float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	shape, ok := waveforms[wave]
	if !ok {
		shape = waveforms[WaveSine]
	}
	total := rate.N(duration)
	perSample := 1 / float64(rate)
	phase := 0.0
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n := 0
		for ; n < len(samples) && pos < total; n++ {
			v := shape(phase)
			samples[n] = [2]float64{v, v}

			hz := startHz + (endHz-startHz)*float64(pos)/float64(total)
			_, phase = math.Modf(phase + hz*perSample)
			pos++
		}
		return n, n > 0
	})
}

// NewEnvelope shapes s with a linear attack and release over duration
// Samples past duration are cut off
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := min(rate.N(release), max(total-att, 0))
	pos := 0

	gain := func(i int) float64 {
		switch {
		case att > 0 && i < att:
			return float64(i) / float64(att)
		case rel > 0 && i >= total-rel:
			return float64(total-i) / float64(rel)
		}
		return 1
	}

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		if room := total - pos; len(samples) > room {
			samples = samples[:room]
		}
		n, ok := s.Stream(samples)
		for i := range n {
			g := gain(pos)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// newVolume scales s by a linear gain in 0..1; zero is rendered silent
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	v := &effects.Volume{Streamer: s, Base: parameter.AudioVolumeBase}
	if gain <= 0 {
		v.Silent = true
		return v
	}
	v.Volume = math.Log(gain) / math.Log(parameter.AudioVolumeBase)
	return v
}

// applyMix applies the host volume, pitch and pan of se to a cue
// Pitch is a playback-rate percentage, so raising it also shortens the cue
func applyMix(s beep.Streamer, se core.SoundEffect) beep.Streamer {
	if pitch := min(max(se.Pitch, parameter.AudioMinPitch), parameter.AudioMaxPitch); pitch != 100 {
		s = beep.ResampleRatio(parameter.AudioResampleQuality, float64(pitch)/100, s)
	}

	volume := min(max(se.Volume, 0), parameter.AudioMaxVolume)
	s = newVolume(s, float64(volume)/parameter.AudioMaxVolume)

	if pan := min(max(se.Pan, -100), 100); pan != 0 {
		s = &effects.Pan{Streamer: s, Pan: float64(pan) / 100}
	}
	return s
}
