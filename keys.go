package hlist

import "github.com/xqrs/hlist/keybind"

// KeyMap holds the keybinds of a HeterogeneousList. It satisfies
// help.KeyMap so a help footer can show it.
type KeyMap struct {
	Up       keybind.Keybind
	Down     keybind.Keybind
	PageUp   keybind.Keybind
	PageDown keybind.Keybind
	Top      keybind.Keybind
	Bottom   keybind.Keybind
	Select   keybind.Keybind
	LoadMore keybind.Keybind
	Retry    keybind.Keybind
}

// DefaultKeyMap returns the default list keybinds.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "up")),
		Down:     keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "down")),
		PageUp:   keybind.NewKeybind(keybind.WithKeys("pgup", "ctrl+b"), keybind.WithHelp("pgup", "page up")),
		PageDown: keybind.NewKeybind(keybind.WithKeys("pgdn", "ctrl+f"), keybind.WithHelp("pgdn", "page down")),
		Top:      keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("g", "top")),
		Bottom:   keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("G", "bottom")),
		Select:   keybind.NewKeybind(keybind.WithKeys("enter"), keybind.WithHelp("enter", "select")),
		LoadMore: keybind.NewKeybind(keybind.WithKeys("m"), keybind.WithHelp("m", "load more")),
		Retry:    keybind.NewKeybind(keybind.WithKeys("r", "ctrl+r"), keybind.WithHelp("r", "retry")),
	}
}

// ShortHelp returns the keybinds for a one-line footer.
func (k KeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Up, k.Down, k.Select, k.LoadMore, k.Retry}
}

// FullHelp returns the keybinds grouped in columns.
func (k KeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Top, k.Bottom},
		{k.Select, k.LoadMore, k.Retry},
	}
}
