package hlist

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor   tcell.Color // Main background color for primitives.
	ContrastBackgroundColor    tcell.Color // Background color for contrasting elements.
	BorderColor                tcell.Color // Box borders.
	TitleColor                 tcell.Color // Box titles.
	GraphicsColor              tcell.Color // Graphics, including list dividers.
	PrimaryTextColor           tcell.Color // Primary text.
	SecondaryTextColor         tcell.Color // Secondary text (e.g. labels).
	TertiaryTextColor          tcell.Color // Tertiary text (e.g. status rows).
	InverseTextColor           tcell.Color // Text on primary-colored backgrounds.
	ContrastSecondaryTextColor tcell.Color // Secondary text on ContrastBackgroundColor-colored backgrounds.
	ErrorTextColor             tcell.Color // Load failures.
}

// Styles defines the theme for applications. The default is for a black
// background and some basic colors: black, white, yellow, green, cyan, and
// blue.
var Styles = DefaultTheme()

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		PrimitiveBackgroundColor:   color.Black,
		ContrastBackgroundColor:    color.Blue,
		BorderColor:                color.White,
		TitleColor:                 color.White,
		GraphicsColor:              color.White,
		PrimaryTextColor:           color.White,
		SecondaryTextColor:         color.Yellow,
		TertiaryTextColor:          color.Green,
		InverseTextColor:           color.Blue,
		ContrastSecondaryTextColor: color.Navy,
		ErrorTextColor:             color.Red,
	}
}

// ThemeSettings is the TOML form of a Theme. Every field holds a color name
// ("navy") or a hex value ("#1e1e2e"). Empty fields keep the current color.
type ThemeSettings struct {
	PrimitiveBackground   string `toml:"primitive_background"`
	ContrastBackground    string `toml:"contrast_background"`
	Border                string `toml:"border"`
	Title                 string `toml:"title"`
	Graphics              string `toml:"graphics"`
	PrimaryText           string `toml:"primary_text"`
	SecondaryText         string `toml:"secondary_text"`
	TertiaryText          string `toml:"tertiary_text"`
	InverseText           string `toml:"inverse_text"`
	ContrastSecondaryText string `toml:"contrast_secondary_text"`
	ErrorText             string `toml:"error_text"`
}

// Apply overwrites the colors of theme that are set in s.
func (s ThemeSettings) Apply(theme *Theme) error {
	fields := []struct {
		name   string
		value  string
		target *tcell.Color
	}{
		{"primitive_background", s.PrimitiveBackground, &theme.PrimitiveBackgroundColor},
		{"contrast_background", s.ContrastBackground, &theme.ContrastBackgroundColor},
		{"border", s.Border, &theme.BorderColor},
		{"title", s.Title, &theme.TitleColor},
		{"graphics", s.Graphics, &theme.GraphicsColor},
		{"primary_text", s.PrimaryText, &theme.PrimaryTextColor},
		{"secondary_text", s.SecondaryText, &theme.SecondaryTextColor},
		{"tertiary_text", s.TertiaryText, &theme.TertiaryTextColor},
		{"inverse_text", s.InverseText, &theme.InverseTextColor},
		{"contrast_secondary_text", s.ContrastSecondaryText, &theme.ContrastSecondaryTextColor},
		{"error_text", s.ErrorText, &theme.ErrorTextColor},
	}
	for _, field := range fields {
		value := strings.TrimSpace(field.value)
		if value == "" {
			continue
		}
		c := color.GetColor(value)
		if c == color.Default {
			return fmt.Errorf("theme %s: unknown color %q", field.name, value)
		}
		*field.target = c
	}
	return nil
}
