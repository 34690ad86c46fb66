package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	b, err := LoadEmbedded()
	require.NoError(t, err)
	assert.Equal(t, []string{"en-US", "ja-JP"}, b.Locales())

	for _, key := range []string{KeyReturnBlocked, KeyReturnRegistered, KeyGameSaved, KeyGameLoaded, KeySaveFailed, KeyNoSave} {
		for _, locale := range b.Locales() {
			_, ok := b.locales[locale][key]
			assert.True(t, ok, "%s missing %s", locale, key)
		}
	}
}

func TestTranslatorJapanese(t *testing.T) {
	b, err := LoadEmbedded()
	require.NoError(t, err)

	tr := NewTranslator(b, "ja-JP")
	assert.Equal(t, "今は帰還できない！", tr.Text(KeyReturnBlocked))
	assert.Equal(t, "帰還先を登録した！", tr.Text(KeyReturnRegistered))
}

func TestTranslatorFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US/game.yaml": {Data: []byte("locale: en-US\nnamespace: game\nmessages:\n  game.saved: \"Saved\"\n  game.loaded: \"Loaded\"\n")},
		"locales/ja-JP/game.yaml": {Data: []byte("locale: ja-JP\nnamespace: game\nmessages:\n  game.saved: \"セーブ\"\n")},
	}
	b, err := LoadFromFS(fsys)
	require.NoError(t, err)

	tr := NewTranslator(b, "ja-JP")
	assert.Equal(t, "セーブ", tr.Text("game.saved"))
	assert.Equal(t, "Loaded", tr.Text("game.loaded"))
	assert.Equal(t, "game.unknown", tr.Text("game.unknown"))
}

func TestTranslatorUnknownLocale(t *testing.T) {
	b, err := LoadEmbedded()
	require.NoError(t, err)

	tr := NewTranslator(b, "fr-FR")
	assert.Equal(t, BaseLocale, tr.Locale())
	assert.Equal(t, "Return point registered!", tr.Text(KeyReturnRegistered))
}

func TestLoadFromFSErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"empty", fstest.MapFS{}},
		{"no base locale", fstest.MapFS{
			"locales/ja-JP/game.yaml": {Data: []byte("locale: ja-JP\nnamespace: game\nmessages:\n  game.saved: \"x\"\n")},
		}},
		{"locale mismatch", fstest.MapFS{
			"locales/en-US/game.yaml": {Data: []byte("locale: ja-JP\nnamespace: game\nmessages:\n  game.saved: \"x\"\n")},
		}},
		{"key outside namespace", fstest.MapFS{
			"locales/en-US/game.yaml": {Data: []byte("locale: en-US\nnamespace: game\nmessages:\n  other.saved: \"x\"\n")},
		}},
		{"bad yaml", fstest.MapFS{
			"locales/en-US/game.yaml": {Data: []byte("locale: [\n")},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFS(tt.fsys)
			assert.Error(t, err)
		})
	}
}
