// Package input turns terminal key events into game intents
package input

import (
	"github.com/lixenwraith/returnspell/core"
	"github.com/lixenwraith/returnspell/event"
	"github.com/lixenwraith/returnspell/parameter"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event
	IntentPause  // P toggles pause
	IntentBlur   // Terminal lost focus
	IntentFocus  // Terminal regained focus

	// Map navigation
	IntentMoveUp    // k, Up arrow
	IntentMoveDown  // j, Down arrow
	IntentMoveLeft  // h, Left arrow
	IntentMoveRight // l, Right arrow

	// Return spell commands
	IntentReturn         // r
	IntentSetReturnPoint // p

	// Scene and persistence
	IntentToggleBattle // b
	IntentSave         // F5
	IntentLoad         // F9
	IntentDismiss      // Enter, Space
)

// Intent is one parsed user action
type Intent struct {
	Type IntentType
}

// Event converts the intent into the game event it requests
// ok is false for intents handled outside the game loop
func (i Intent) Event() (et event.EventType, payload any, ok bool) {
	switch i.Type {
	case IntentQuit:
		return event.EventQuitRequest, nil, true
	case IntentMoveUp:
		return event.EventPlayerMoveRequest, &event.PlayerMovePayload{Direction: core.DirUp}, true
	case IntentMoveDown:
		return event.EventPlayerMoveRequest, &event.PlayerMovePayload{Direction: core.DirDown}, true
	case IntentMoveLeft:
		return event.EventPlayerMoveRequest, &event.PlayerMovePayload{Direction: core.DirLeft}, true
	case IntentMoveRight:
		return event.EventPlayerMoveRequest, &event.PlayerMovePayload{Direction: core.DirRight}, true
	case IntentReturn:
		return event.EventPluginCommand, &event.PluginCommandPayload{
			Plugin: parameter.PluginName, Command: parameter.CommandReturn,
		}, true
	case IntentSetReturnPoint:
		return event.EventPluginCommand, &event.PluginCommandPayload{
			Plugin: parameter.PluginName, Command: parameter.CommandSetReturnPoint,
		}, true
	case IntentToggleBattle:
		return event.EventBattleToggle, nil, true
	case IntentSave:
		return event.EventSaveRequest, &event.SlotPayload{Slot: 1}, true
	case IntentLoad:
		return event.EventLoadRequest, &event.SlotPayload{Slot: 1}, true
	case IntentDismiss:
		return event.EventMessageDismiss, nil, true
	}
	return 0, nil, false
}
