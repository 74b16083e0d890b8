package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	require.NotNil(t, km)

	tests := []struct {
		name    string
		keyStr  string
		binding func(*KeyMap) bool
	}{
		{"q quits", "q", func(k *KeyMap) bool { return Matches("q", k.Quit) }},
		{"ctrl+c quits", "ctrl+c", func(k *KeyMap) bool { return Matches("ctrl+c", k.Quit) }},
		{"? shows help", "?", func(k *KeyMap) bool { return Matches("?", k.Help) }},
		{"esc goes back", "esc", func(k *KeyMap) bool { return Matches("esc", k.Back) }},
		{"enter analyses", "enter", func(k *KeyMap) bool { return Matches("enter", k.Analyze) }},
		{"k moves up", "k", func(k *KeyMap) bool { return Matches("k", k.Up) }},
		{"j moves down", "j", func(k *KeyMap) bool { return Matches("j", k.Down) }},
		{"pgdown pages", "pgdown", func(k *KeyMap) bool { return Matches("pgdown", k.PageDown) }},
		{"pgup pages", "pgup", func(k *KeyMap) bool { return Matches("pgup", k.PageUp) }},
		{"n starts new", "n", func(k *KeyMap) bool { return Matches("n", k.New) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.binding(km), "expected %q to match", tt.keyStr)
		})
	}
}

func TestMatches_NoMatch(t *testing.T) {
	km := DefaultKeyMap()
	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("", km.Help))
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()
	help := km.ShortHelp()
	require.Len(t, help, 2)
	assert.Equal(t, "quit", help[0].Help().Desc)
	assert.Equal(t, "help", help[1].Help().Desc)
}

func TestKeyMap_ReportHelp(t *testing.T) {
	km := DefaultKeyMap()
	help := km.ReportHelp()
	require.Len(t, help, 4)
	assert.Equal(t, "new analysis", help[0].Help().Desc)
	assert.Equal(t, "back", help[3].Help().Desc)
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()
	groups := km.FullHelp()
	require.Len(t, groups, 3)
	for _, group := range groups {
		assert.NotEmpty(t, group)
	}
}
