package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keymapFile is the TOML layout:
//
//	[keys]
//	f2 = "save"
//	[runes]
//	x = "return"
type keymapFile struct {
	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var file keymapFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType, len(file.Keys)),
		Runes:       make(map[rune]IntentType, len(file.Runes)),
	}

	for name, action := range file.Keys {
		key, ok := specialKeyByName(name)
		if !ok {
			return nil, fmt.Errorf("[keys] %q: unknown key name", name)
		}
		intent, err := parseAction("keys", name, action)
		if err != nil {
			return nil, err
		}
		kt.SpecialKeys[key] = intent
	}

	for name, action := range file.Runes {
		r, err := parseRuneKey(name)
		if err != nil {
			return nil, err
		}
		intent, err := parseAction("runes", name, action)
		if err != nil {
			return nil, err
		}
		kt.Runes[r] = intent
	}

	return kt, nil
}

func parseAction(section, key, action string) (IntentType, error) {
	intent, ok := actionNames[strings.ToLower(strings.TrimSpace(action))]
	if !ok {
		return IntentNone, fmt.Errorf("[%s] %q: unknown action %q", section, key, action)
	}
	return intent, nil
}

func parseRuneKey(name string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(name) != 1 {
		return 0, fmt.Errorf("[runes] %q: expected a single character", name)
	}
	r, _ := utf8.DecodeRuneInString(name)
	return r, nil
}

// specialKeyByName resolves names like "f5", "enter" or "ctrl-c" via tcell.KeyNames
func specialKeyByName(name string) (tcell.Key, bool) {
	want := strings.ToLower(strings.ReplaceAll(name, "_", "-"))
	for k, n := range tcell.KeyNames {
		if strings.ToLower(n) == want {
			return k, true
		}
	}
	return 0, false
}
