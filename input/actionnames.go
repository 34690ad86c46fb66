package input

// actionNames maps keymap action strings to intents
var actionNames = map[string]IntentType{
	"quit":             IntentQuit,
	"move_up":          IntentMoveUp,
	"move_down":        IntentMoveDown,
	"move_left":        IntentMoveLeft,
	"move_right":       IntentMoveRight,
	"return":           IntentReturn,
	"set_return_point": IntentSetReturnPoint,
	"toggle_battle":    IntentToggleBattle,
	"save":             IntentSave,
	"load":             IntentLoad,
	"dismiss":          IntentDismiss,
	"pause":            IntentPause,
	"none":             IntentNone,
}
