package event

import "github.com/lixenwraith/returnspell/core"

// PluginCommandPayload names a plugin command and its arguments
type PluginCommandPayload struct {
	Plugin  string         `toml:"plugin"`
	Command string         `toml:"command"`
	Args    map[string]any `toml:"args"`
}

// SoundRequestPayload carries the cue to play
type SoundRequestPayload struct {
	Effect core.SoundEffect `toml:"effect"`
}

// MessageRequestPayload carries a message window line
type MessageRequestPayload struct {
	Text string `toml:"text"`
}

// PlayerMovePayload carries a single step direction
type PlayerMovePayload struct {
	Direction core.Direction `toml:"direction"`
}

// PlayerLocatedPayload records a same-map relocation
type PlayerLocatedPayload struct {
	MapID int `toml:"map_id"`
	X     int `toml:"x"`
	Y     int `toml:"y"`
}

// TransferPayload describes a cross-map transfer
type TransferPayload struct {
	MapID     int            `toml:"map_id"`
	X         int            `toml:"x"`
	Y         int            `toml:"y"`
	Direction core.Direction `toml:"direction"`
	FadeType  core.FadeType  `toml:"fade_type"`
}

// FadePayload describes a fade that just started
type FadePayload struct {
	Out      bool `toml:"out"`
	Duration int  `toml:"duration"`
	White    bool `toml:"white"`
}

// SlotPayload selects a save slot
type SlotPayload struct {
	Slot int `toml:"slot"`
}
