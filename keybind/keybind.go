// Package keybind names keyboard shortcuts and matches them against key
// events. Keys are written as strings such as "j", "pgdn" or "ctrl+r".
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v3"
)

// Keybind is a set of equivalent keys plus the help shown for them.
type Keybind struct {
	keys     []string
	help     Help
	disabled bool
}

// Help is the text a help footer shows for a keybind.
type Help struct {
	Key  string
	Desc string
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

func WithKeys(keys ...string) Option {
	return func(k *Keybind) { k.SetKeys(keys...) }
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) { k.SetHelp(key, desc) }
}

// WithDisabled creates the keybind switched off.
func WithDisabled() Option {
	return func(k *Keybind) { k.disabled = true }
}

// Enabled reports whether the keybind matches events and shows up in help.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.keys) > 0
}

func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

// Keys returns the normalized keys.
func (k Keybind) Keys() []string {
	return k.keys
}

// SetKeys replaces the keys. Blank keys are dropped.
func (k *Keybind) SetKeys(keys ...string) {
	k.keys = k.keys[:0:0]
	for _, key := range keys {
		if key = normalizeKey(key); key != "" {
			k.keys = append(k.keys, key)
		}
	}
}

func (k Keybind) Help() Help {
	return k.help
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

// Matches reports whether event triggers one of the enabled keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	return MatchesKey(eventKey(event), keybinds...)
}

// MatchesKey is Matches for a key name such as "ctrl+r" or "pgdn".
func MatchesKey(key string, keybinds ...Keybind) bool {
	key = normalizeKey(key)
	if key == "" {
		return false
	}
	return slices.ContainsFunc(keybinds, func(k Keybind) bool {
		return k.Enabled() && slices.Contains(k.keys, key)
	})
}

// modifiers in the order they appear in a normalized key.
var modifiers = []string{"ctrl", "alt", "shift", "meta"}

var modifierAliases = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"shift":   "shift",
	"meta":    "meta",
}

var keyAliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
	"del":      "delete",
}

// normalizeKey lowercases names, resolves aliases and sorts modifiers, so
// "Control+R" and "ctrl+r" compare equal. A single character without
// modifiers keeps its case: "G" and "g" are different keys.
func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	// "ctrl-x" is a common spelling of "ctrl+x".
	if lower := strings.ToLower(key); strings.HasPrefix(lower, "ctrl-") && len(key) > len("ctrl-") {
		key = "ctrl+" + key[len("ctrl-"):]
	}

	held := make(map[string]bool)
	primary := ""
	for _, part := range strings.Split(key, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if mod, ok := modifierAliases[strings.ToLower(part)]; ok {
			held[mod] = true
			continue
		}
		primary = primaryKey(part)
	}
	if primary == "" {
		return ""
	}
	if primary == "backtab" {
		held["shift"] = true
		primary = "tab"
	}
	if len(held) > 0 {
		primary = strings.ToLower(primary)
	}
	return joinKey(held, primary)
}

// primaryKey normalizes the part of a key after its modifiers.
func primaryKey(key string) string {
	// tcell names runes "Rune[x]".
	if name, ok := strings.CutPrefix(key, "Rune["); ok && strings.HasSuffix(name, "]") && len(name) > 1 {
		return strings.TrimSuffix(name, "]")
	}
	if len([]rune(key)) == 1 {
		return key
	}
	lower := strings.ToLower(key)
	if alias, ok := keyAliases[lower]; ok {
		return alias
	}
	return lower
}

func joinKey(held map[string]bool, primary string) string {
	parts := make([]string, 0, len(held)+1)
	for _, mod := range modifiers {
		if held[mod] {
			parts = append(parts, mod)
		}
	}
	return strings.Join(append(parts, primary), "+")
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "shift+tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyInsert:     "insert",
}

// eventKey names event the way normalizeKey names keys.
func eventKey(event *tcell.EventKey) string {
	key := event.Key()
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	}

	primary, ok := keyNames[key]
	if !ok && key == tcell.KeyRune {
		primary, ok = event.Str(), true
	}
	if !ok {
		return normalizeKey(event.Name())
	}

	held := make(map[string]bool)
	mods := event.Modifiers()
	held["ctrl"] = mods&tcell.ModCtrl != 0
	held["alt"] = mods&tcell.ModAlt != 0
	held["shift"] = mods&tcell.ModShift != 0
	held["meta"] = mods&tcell.ModMeta != 0
	if !held["ctrl"] && !held["alt"] && !held["shift"] && !held["meta"] {
		return primary
	}
	return normalizeKey(joinKey(held, primary))
}
