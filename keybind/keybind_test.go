package keybind

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"  ":             "",
		"Esc":            "esc",
		"escape":         "esc",
		"Return":         "enter",
		"PageUp":         "pgup",
		"pagedown":       "pgdn",
		"Ctrl+R":         "ctrl+r",
		"control+x":      "ctrl+x",
		"ctrl-b":         "ctrl+b",
		"backtab":        "shift+tab",
		"alt+ctrl+alt+k": "ctrl+alt+k",
		"Meta+Shift+X":   "shift+meta+x",
		"G":              "G",
		"Rune[q]":        "q",
	}
	for in, want := range tests {
		require.Equal(t, want, normalizeKey(in), in)
	}
}

func TestMatchesKey(t *testing.T) {
	retry := NewKeybind(WithKeys("r", "Ctrl+R"), WithHelp("r", "retry"))
	top := NewKeybind(WithKeys("g", "home"))

	require.True(t, MatchesKey("r", retry))
	require.True(t, MatchesKey("ctrl+r", retry))
	require.True(t, MatchesKey("control+R", retry))
	require.False(t, MatchesKey("R", retry))
	require.True(t, MatchesKey("home", retry, top))
	require.False(t, MatchesKey("", retry, top))
	require.False(t, MatchesKey("x", retry, top))
}

func TestKeybindEnabled(t *testing.T) {
	k := NewKeybind(WithKeys("m"), WithDisabled())
	require.False(t, k.Enabled())
	require.False(t, MatchesKey("m", k))

	k.SetEnabled(true)
	require.True(t, k.Enabled())
	require.True(t, MatchesKey("m", k))

	empty := NewKeybind(WithHelp("?", "help"))
	require.False(t, empty.Enabled())
	require.Equal(t, Help{Key: "?", Desc: "help"}, empty.Help())
}

func TestKeybindSetters(t *testing.T) {
	k := NewKeybind()
	k.SetKeys("PageDown", " ", "ctrl+f")
	k.SetHelp("pgdn", "page down")

	require.Equal(t, []string{"pgdn", "ctrl+f"}, k.Keys())
	require.Equal(t, "page down", k.Help().Desc)
}

func TestMatchesNilEvent(t *testing.T) {
	require.False(t, Matches(nil, NewKeybind(WithKeys("enter"))))
}

func TestMatchesEvent(t *testing.T) {
	tests := []struct {
		event *tcell.EventKey
		key   string
	}{
		{tcell.NewEventKey(tcell.KeyRune, "j", tcell.ModNone), "j"},
		{tcell.NewEventKey(tcell.KeyRune, "G", tcell.ModNone), "G"},
		{tcell.NewEventKey(tcell.KeyRune, "r", tcell.ModCtrl), "ctrl+r"},
		{tcell.NewEventKey(tcell.KeyRune, "k", tcell.ModAlt), "alt+k"},
		{tcell.NewEventKey(tcell.KeyPgDn, "", tcell.ModNone), "pgdn"},
		{tcell.NewEventKey(tcell.KeyTab, "", tcell.ModShift), "shift+tab"},
		{tcell.NewEventKey(tcell.KeyEnter, "", tcell.ModNone), "enter"},
	}
	for _, tt := range tests {
		require.True(t, Matches(tt.event, NewKeybind(WithKeys(tt.key))), tt.key)
	}
	require.False(t, Matches(tcell.NewEventKey(tcell.KeyRune, "g", tcell.ModNone), NewKeybind(WithKeys("G"))))
}
