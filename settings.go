package hlist

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings is the TOML file form of the list options, the theme and the
// logging level.
//
//	language = "de"
//	log_level = "debug"
//
//	[list]
//	page_size = 25
//	infinite_scroll = true
//	divider = "dashed"
//
//	[theme]
//	border = "#5f87af"
type Settings struct {
	Language string        `toml:"language"`
	LogLevel string        `toml:"log_level"`
	List     ListSettings  `toml:"list"`
	Theme    ThemeSettings `toml:"theme"`
	// Border names the border set: plain, round, thick or hidden.
	Border string `toml:"border"`
}

// ListSettings holds the list options. Nil fields keep the configured value.
type ListSettings struct {
	PageSize               *int     `toml:"page_size"`
	InfiniteScroll         *bool    `toml:"infinite_scroll"`
	PreserveScrollPosition *bool    `toml:"preserve_scroll_position"`
	RootMargin             *int     `toml:"root_margin"`
	Threshold              *float64 `toml:"threshold"`
	Divider                string   `toml:"divider"`
	Gap                    *int     `toml:"gap"`
	ScrollBar              *bool    `toml:"scroll_bar"`
}

// LoadSettings reads settings from the TOML file at path.
func LoadSettings(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()
	return DecodeSettings(f)
}

// DecodeSettings reads settings from r. Unknown keys are rejected so typos
// do not pass silently.
func DecodeSettings(r io.Reader) (Settings, error) {
	var s Settings
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("settings: unknown key %q", undecoded[0].String())
	}
	return s, nil
}

// ApplySettings copies the list options in s onto cfg. The result still has
// to pass Validate.
func ApplySettings[T any](s Settings, cfg *Config[T]) error {
	list := s.List
	if list.PageSize != nil {
		cfg.PageSize = *list.PageSize
	}
	if list.InfiniteScroll != nil {
		cfg.InfiniteScroll = *list.InfiniteScroll
	}
	if list.PreserveScrollPosition != nil {
		cfg.PreserveScrollPosition = *list.PreserveScrollPosition
	}
	if list.RootMargin != nil {
		cfg.RootMargin = *list.RootMargin
	}
	if list.Threshold != nil {
		cfg.Threshold = *list.Threshold
	}
	if list.Gap != nil {
		cfg.Gap = *list.Gap
	}
	if list.ScrollBar != nil {
		cfg.ScrollBar = *list.ScrollBar
	}
	if list.Divider != "" {
		divider, err := ParseDividerMode(list.Divider)
		if err != nil {
			return fmt.Errorf("settings: %w", err)
		}
		cfg.Divider = divider
	}
	return nil
}

// ApplyAmbient applies the theme and log level in s to the package globals.
func (s Settings) ApplyAmbient() error {
	theme := Styles
	if err := s.Theme.Apply(&theme); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	Styles = theme
	if s.LogLevel != "" {
		SetRawLogLevel(s.LogLevel)
	}
	return nil
}
