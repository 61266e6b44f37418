package help

import (
	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/hlist"
)

// Styles holds the footer styles.
type Styles struct {
	Key       tcell.Style
	Desc      tcell.Style
	Separator tcell.Style
	Ellipsis  tcell.Style
	Status    tcell.Style
}

// StylesFromTheme derives footer styles from a list theme.
func StylesFromTheme(theme hlist.Theme) Styles {
	return Styles{
		Key:       tcell.StyleDefault.Foreground(theme.SecondaryTextColor),
		Desc:      tcell.StyleDefault.Foreground(theme.PrimaryTextColor).Dim(true),
		Separator: tcell.StyleDefault.Foreground(theme.GraphicsColor).Dim(true),
		Ellipsis:  tcell.StyleDefault.Foreground(theme.GraphicsColor).Dim(true),
		Status:    tcell.StyleDefault.Foreground(theme.TertiaryTextColor),
	}
}
