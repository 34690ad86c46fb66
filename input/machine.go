package input

import "github.com/gdamore/tcell/v2"

// Machine parses tcell events into intents
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates a machine with the default key table
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// NewMachineWithKeys creates a machine with overrides merged onto the defaults
func NewMachineWithKeys(overrides *KeyTable) *Machine {
	kt := DefaultKeyTable()
	kt.Merge(overrides)
	return &Machine{keyTable: kt}
}

// Process returns the intent for ev, or nil when ev maps to nothing
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventFocus:
		if ev.Focused {
			return &Intent{Type: IntentFocus}
		}
		return &Intent{Type: IntentBlur}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return nil
		}
		if t, ok := m.keyTable.Runes[ev.Rune()]; ok {
			return &Intent{Type: t}
		}
		return nil
	}
	if t, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
		return &Intent{Type: t}
	}
	return nil
}
