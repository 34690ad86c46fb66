package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyUp:     IntentMoveUp,
			tcell.KeyDown:   IntentMoveDown,
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
			tcell.KeyEnter:  IntentDismiss,
			tcell.KeyF5:     IntentSave,
			tcell.KeyF9:     IntentLoad,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'k': IntentMoveUp,
			'j': IntentMoveDown,
			'h': IntentMoveLeft,
			'l': IntentMoveRight,
			'r': IntentReturn,
			'p': IntentSetReturnPoint,
			'b': IntentToggleBattle,
			'P': IntentPause,
			' ': IntentDismiss,
		},
	}
}

// Merge applies overrides onto kt; IntentNone entries unbind a key
func (kt *KeyTable) Merge(overrides *KeyTable) {
	if overrides == nil {
		return
	}
	for k, v := range overrides.SpecialKeys {
		if v == IntentNone {
			delete(kt.SpecialKeys, k)
			continue
		}
		kt.SpecialKeys[k] = v
	}
	for r, v := range overrides.Runes {
		if v == IntentNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = v
	}
}
