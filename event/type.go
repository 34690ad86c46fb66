package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is the zero value and never carries a payload
	EventTick EventType = iota

	// === Command Event ===

	// EventPluginCommand invokes a registered plugin command
	// Trigger: InputHandler, script bindings
	// Consumer: CommandHandler | Payload: *PluginCommandPayload
	EventPluginCommand

	// === Audio Event ===

	// EventSoundRequest requests cue playback
	// Trigger: ReturnSpell, menus
	// Consumer: AudioHandler | Payload: *SoundRequestPayload
	EventSoundRequest

	// === Message Event ===

	// EventMessageRequest appends a line to the message window
	// Trigger: ReturnSpell, save/load
	// Consumer: MessageWindow | Payload: *MessageRequestPayload
	EventMessageRequest

	// EventMessageDismiss closes the current message line
	// Trigger: InputHandler (Enter)
	// Consumer: MessageWindow | Payload: nil
	EventMessageDismiss

	// === Movement Event ===

	// EventPlayerMoveRequest moves the player one tile
	// Trigger: InputHandler (arrows, hjkl)
	// Consumer: Game | Payload: *PlayerMovePayload
	EventPlayerMoveRequest

	// EventPlayerLocated signals an instant same-map relocation
	// Trigger: Player.Locate
	// Consumer: diagnostics | Payload: *PlayerLocatedPayload
	EventPlayerLocated

	// EventTransferReserved signals a cross-map transfer was requested
	// Trigger: Player.ReserveTransfer
	// Consumer: transfer pipeline | Payload: *TransferPayload
	EventTransferReserved

	// EventTransferComplete signals the player arrived on the destination map
	// Trigger: transfer pipeline
	// Consumer: diagnostics | Payload: *TransferPayload
	EventTransferComplete

	// EventTransferFailed signals a transfer to an unknown map
	// Trigger: transfer pipeline
	// Consumer: diagnostics | Payload: *TransferPayload
	EventTransferFailed

	// === Screen Event ===

	// EventFadeStart signals a fade-out or fade-in began
	// Trigger: Screen.FadeOut, Screen.FadeIn
	// Consumer: diagnostics | Payload: *FadePayload
	EventFadeStart

	// === Scene Event ===

	// EventBattleToggle switches between map and battle scene
	// Trigger: InputHandler (b)
	// Consumer: Game | Payload: nil
	EventBattleToggle

	// === Meta Event ===

	// EventSaveRequest writes the current state to a save slot
	// Trigger: InputHandler (F5)
	// Consumer: SaveHandler | Payload: *SlotPayload
	EventSaveRequest

	// EventLoadRequest restores state from a save slot
	// Trigger: InputHandler (F9)
	// Consumer: SaveHandler | Payload: *SlotPayload
	EventLoadRequest

	// EventQuitRequest stops the game loop
	// Trigger: InputHandler (q, Esc)
	// Consumer: main loop | Payload: nil
	EventQuitRequest
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
