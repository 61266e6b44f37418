package hlist

import "github.com/gdamore/tcell/v3"

// subcell is the number of steps a scroll bar cell is divided into.
const subcell = 8

// ScrollGlyphs holds the track glyph and the eighth-block thumb glyphs of a
// ScrollBar.
type ScrollGlyphs struct {
	Track string
	// More marks the bottom cell while further pages can be loaded.
	More string

	ThumbLower [subcell]string
	ThumbUpper [subcell]string
}

// DefaultScrollGlyphs uses standard block elements only.
func DefaultScrollGlyphs() ScrollGlyphs {
	return ScrollGlyphs{
		Track: BoxDrawingsLightVertical,
		More:  "\u25bc",
		ThumbLower: [subcell]string{
			"\u2581", "\u2582", "\u2583", "\u2584", "\u2585", "\u2586", "\u2587", "\u2588",
		},
		ThumbUpper: [subcell]string{
			"\u2594", "\u2594", "\u2580", "\u2580", "\u2580", "\u2580", "\u2588", "\u2588",
		},
	}
}

// ScrollBar shows which of the loaded rows are in view. Its unit is a row,
// so the thumb reflects the share of loaded rows, not of all pages.
type ScrollBar struct {
	*Box

	rows    int
	visible int
	top     int
	hasMore bool

	glyphs     ScrollGlyphs
	trackStyle tcell.Style
	thumbStyle tcell.Style
}

// NewScrollBar returns an empty scroll bar.
func NewScrollBar() *ScrollBar {
	box := NewBox()
	box.SetDontClear(true)
	return &ScrollBar{
		Box:        box,
		glyphs:     DefaultScrollGlyphs(),
		trackStyle: tcell.StyleDefault.Foreground(Styles.GraphicsColor).Dim(true),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.SecondaryTextColor),
	}
}

// SetPosition sets the number of rows, how many of them are in view and the
// index of the top one.
func (s *ScrollBar) SetPosition(rows, visible, top int) *ScrollBar {
	s.rows = max(rows, 0)
	s.visible = max(visible, 0)
	s.top = max(top, 0)
	return s
}

// SetHasMore shows the more marker at the bottom of the track.
func (s *ScrollBar) SetHasMore(hasMore bool) *ScrollBar {
	s.hasMore = hasMore
	return s
}

// SetGlyphs replaces the glyphs.
func (s *ScrollBar) SetGlyphs(glyphs ScrollGlyphs) *ScrollBar {
	s.glyphs = glyphs
	return s
}

// SetStyles sets the track and thumb styles.
func (s *ScrollBar) SetStyles(track, thumb tcell.Style) *ScrollBar {
	s.trackStyle = track
	s.thumbStyle = thumb
	return s
}

type thumbMetrics struct {
	cells int
	start int
	size  int
}

// thumb returns the thumb position in subcell units over cells cells, or a
// zero size when everything is in view.
func thumb(cells, rows, visible, top int) thumbMetrics {
	m := thumbMetrics{cells: cells}
	if cells <= 0 || rows <= 0 {
		return m
	}
	visible = min(max(visible, 1), rows)
	maxTop := rows - visible
	if maxTop == 0 {
		return m
	}
	top = min(top, maxTop)

	length := cells * subcell
	m.size = min(max(length*visible/rows, subcell), length)
	m.start = (length - m.size) * top / maxTop
	return m
}

// fill returns which part of cell the thumb covers, in subcell units.
func (m thumbMetrics) fill(cell int) (start, size int) {
	cellStart := cell * subcell
	from := max(m.start, cellStart)
	to := min(m.start+m.size, cellStart+subcell)
	if to <= from {
		return 0, 0
	}
	return from - cellStart, to - from
}

func (s *ScrollBar) glyph(start, size int) (string, tcell.Style) {
	switch {
	case size <= 0:
		return s.glyphs.Track, s.trackStyle
	case size >= subcell:
		return s.glyphs.ThumbLower[subcell-1], s.thumbStyle
	case start == 0:
		return s.glyphs.ThumbUpper[size-1], s.thumbStyle
	default:
		return s.glyphs.ThumbLower[size-1], s.thumbStyle
	}
}

// Height is never used for layout; the bar takes the height it is given.
func (s *ScrollBar) Height(width int) int {
	return 1
}

// Draw draws this primitive onto the screen. Nothing is drawn while every
// row is in view and no more pages exist.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, width, height := s.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	cells := height
	if s.hasMore {
		cells--
	}
	m := thumb(cells, s.rows, s.visible, s.top)
	if m.size == 0 && !s.hasMore {
		return
	}
	for cell := 0; cell < cells; cell++ {
		glyph, style := s.glyph(m.fill(cell))
		screen.Put(x, y+cell, glyph, style)
	}
	if s.hasMore {
		screen.Put(x, y+cells, s.glyphs.More, s.trackStyle)
	}
}

var _ ListItem = &ScrollBar{}
