package parameter

import "time"

// Return Sequence Timing
const (
	// ReturnCueDelay lets the cue play before the transfer logic runs
	ReturnCueDelay = 400 * time.Millisecond

	// ReturnFadeGap separates same-map fade-out from relocation
	ReturnFadeGap = 250 * time.Millisecond

	// ReturnFadeFrames is the same-map fade-out/fade-in duration
	ReturnFadeFrames = 12
)

// Return Cue Mix
const (
	ReturnCueVolume = 90
	ReturnCuePitch  = 100
	ReturnCuePan    = 0
)

// Plugin Identity
const (
	// PluginName is the namespace plugin commands register under
	PluginName = "SimpleReturnSpell"

	CommandReturn         = "Return"
	CommandSetReturnPoint = "setReturnPoint"
)

// Defaults applied when a plugin parameter is missing or unparseable
const (
	DefaultReturnMap  = 1
	DefaultReturnX    = 10
	DefaultReturnY    = 8
	DefaultReturnSE   = "Move1"
	DefaultLocale     = "en-US"
	DefaultSaveDir    = "save"
	DefaultConfigFile = "returnspell.toml"
)
