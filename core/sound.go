package core

// SoundEffect describes a one-shot cue request
// Volume and Pitch are percentages, Pan ranges -100 (left) to 100 (right)
type SoundEffect struct {
	Name   string `toml:"name"`
	Volume int    `toml:"volume"`
	Pitch  int    `toml:"pitch"`
	Pan    int    `toml:"pan"`
}

// Cue names shipped with the synthesized sound library
const (
	CueMove     = "Move1"
	CueBuzzer   = "Buzzer1"
	CueDecision = "Decision1"
	CueSave     = "Save"
)
