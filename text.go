package hlist

import "github.com/gdamore/tcell/v3"

// Text is a word-wrapped block of text. It is the simplest ListItem and the
// default fallback row.
type Text struct {
	*Box

	text      string
	style     tcell.Style
	alignment Alignment
	// maxLines limits the wrapped height. Zero means no limit.
	maxLines int
}

// NewText returns a text block drawn in the primary text color.
func NewText(text string) *Text {
	box := NewBox()
	box.SetDontClear(true)
	return &Text{
		Box:   box,
		text:  text,
		style: tcell.StyleDefault.Foreground(Styles.PrimaryTextColor),
	}
}

// SetText replaces the text.
func (t *Text) SetText(text string) *Text {
	if t.text != text {
		t.text = text
		t.MarkDirty()
	}
	return t
}

// GetText returns the text.
func (t *Text) GetText() string {
	return t.text
}

// SetStyle sets the text style.
func (t *Text) SetStyle(style tcell.Style) *Text {
	if t.style != style {
		t.style = style
		t.MarkDirty()
	}
	return t
}

// SetAlignment sets the horizontal alignment of each line.
func (t *Text) SetAlignment(alignment Alignment) *Text {
	t.alignment = alignment
	return t
}

// SetMaxLines limits how many wrapped lines are shown. The last shown line
// ends with an ellipsis when text was cut.
func (t *Text) SetMaxLines(lines int) *Text {
	t.maxLines = max(lines, 0)
	return t
}

func (t *Text) lines(width int) []string {
	lines := WordWrap(t.text, width)
	if t.maxLines > 0 && len(lines) > t.maxLines {
		lines = lines[:t.maxLines]
		last := lines[len(lines)-1]
		if TaggedStringWidth(last) < width {
			lines[len(lines)-1] = last + SemigraphicsHorizontalEllipsis
		} else {
			lines[len(lines)-1] = TruncateWidth(last+SemigraphicsHorizontalEllipsis, width)
		}
	}
	return lines
}

// Height returns the number of wrapped lines at width, at least one.
func (t *Text) Height(width int) int {
	return max(len(t.lines(width)), 1)
}

// Draw draws this primitive onto the screen.
func (t *Text) Draw(screen tcell.Screen) {
	t.DrawForSubclass(screen, t)

	x, y, width, height := t.GetInnerRect()
	for row, line := range t.lines(width) {
		if row >= height {
			break
		}
		PrintWithStyle(screen, line, x, y+row, width, t.alignment, t.style)
	}
}

var _ ListItem = &Text{}
