package hlist

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v3"
)

// Box is the base of every primitive: a rectangle with a background and an
// optional frame and title. Rows, the anchor and buttons embed it and draw
// their content inside InnerRect.
type Box struct {
	rect Rect
	// inner caches InnerRect while innerValid holds.
	inner      Rect
	innerValid bool

	background tcell.Color
	dontClear  bool

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title          string
	titleStyle     tcell.Style
	titleAlignment Alignment

	hasFocus bool
	dirty    atomic.Bool
}

// NewBox returns a Box without a border.
func NewBox() *Box {
	b := &Box{
		rect:           Rect{Width: 15, Height: 10},
		background:     Styles.PrimitiveBackgroundColor,
		borderSet:      BorderSetPlain(),
		borderStyle:    tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		titleStyle:     tcell.StyleDefault.Foreground(Styles.TitleColor),
		titleAlignment: AlignmentCenter,
	}
	b.dirty.Store(true)
	return b
}

// GetRect returns the position and size of the box.
func (b *Box) GetRect() (int, int, int, int) {
	return b.rect.X, b.rect.Y, b.rect.Width, b.rect.Height
}

// SetRect moves and resizes the box.
func (b *Box) SetRect(x, y, width, height int) {
	rect := Rect{X: x, Y: y, Width: width, Height: height}
	if b.rect != rect {
		b.rect = rect
		b.changed()
	}
}

// InnerRect is the area left for content inside the frame. A title without a
// top border still takes the first row.
func (b *Box) InnerRect() Rect {
	if b.innerValid {
		return b.inner
	}
	r := b.rect
	if b.title != "" || b.borders.Has(BordersTop) {
		r.Y++
		r.Height--
	}
	if b.borders.Has(BordersBottom) {
		r.Height--
	}
	if b.borders.Has(BordersLeft) {
		r.X++
		r.Width--
	}
	if b.borders.Has(BordersRight) {
		r.Width--
	}
	r.Width, r.Height = max(r.Width, 0), max(r.Height, 0)
	b.inner, b.innerValid = r, true
	return r
}

// GetInnerRect returns InnerRect as x, y, width and height.
func (b *Box) GetInnerRect() (int, int, int, int) {
	r := b.InnerRect()
	return r.X, r.Y, r.Width, r.Height
}

// InRect reports whether the cell at x, y lies inside the box.
func (b *Box) InRect(x, y int) bool {
	return b.rect.Contains(x, y)
}

// changed drops the cached inner rect and marks the box dirty.
func (b *Box) changed() {
	b.innerValid = false
	b.MarkDirty()
}

// IsDirty reports whether the box changed since it was last drawn.
func (b *Box) IsDirty() bool {
	return b.dirty.Load()
}

// MarkDirty flags the box for redrawing.
func (b *Box) MarkDirty() {
	b.dirty.Store(true)
}

// SetBackgroundColor sets the color the box is cleared with.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	if b.background != color {
		b.background = color
		b.borderStyle = b.borderStyle.Background(color)
		b.MarkDirty()
	}
	return b
}

// SetDontClear keeps whatever is on screen below the box. Rows drawn on top
// of the list background use it.
func (b *Box) SetDontClear(dontClear bool) *Box {
	b.dontClear = dontClear
	return b
}

// SetBorders sets which sides get a border.
func (b *Box) SetBorders(borders Borders) *Box {
	if b.borders != borders {
		b.borders = borders
		b.changed()
	}
	return b
}

// SetBorderSet sets the border glyphs.
func (b *Box) SetBorderSet(set BorderSet) *Box {
	if b.borderSet != set {
		b.borderSet = set
		b.MarkDirty()
	}
	return b
}

// SetBorderStyle sets the border style.
func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	if b.borderStyle != style {
		b.borderStyle = style
		b.MarkDirty()
	}
	return b
}

// SetTitle sets the title drawn in the top row.
func (b *Box) SetTitle(title string) *Box {
	if b.title != title {
		b.title = title
		b.changed()
	}
	return b
}

// SetTitleAlignment sets where the title sits in the top row.
func (b *Box) SetTitleAlignment(alignment Alignment) *Box {
	if b.titleAlignment != alignment {
		b.titleAlignment = alignment
		b.MarkDirty()
	}
	return b
}

// Draw draws the background and frame.
func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws the background and frame of the box that p embeds.
// Primitives call it first in their own Draw.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	r := b.rect
	if r.Empty() {
		return
	}
	if !b.dontClear {
		style := tcell.StyleDefault.Background(b.background)
		for y := r.Y; y < r.Y+r.Height; y++ {
			for x := r.X; x < r.X+r.Width; x++ {
				screen.Put(x, y, " ", style)
			}
		}
	}
	if b.borders != BordersNone && r.Width >= 2 && r.Height >= 2 {
		b.drawBorders(screen)
	}
	if b.title != "" && r.Width >= 4 {
		b.drawTitle(screen)
	}
	b.dirty.Store(false)
}

// drawTitle prints the title between the corners and marks a cut title with
// an ellipsis.
func (b *Box) drawTitle(screen tcell.Screen) {
	r := b.rect
	printed, _ := printText(screen, b.title, r.X+1, r.Y, r.Width-2, b.titleAlignment, b.titleStyle, true)
	if printed == 0 || printed == len(b.title) {
		return
	}
	x := r.X + r.Width - 2
	if b.titleAlignment == AlignmentRight {
		x = r.X + 1
	}
	_, style, _ := screen.Get(x, r.Y)
	printText(screen, SemigraphicsHorizontalEllipsis, x, r.Y, 1, AlignmentLeft, b.titleStyle.Background(style.GetBackground()), false)
}

func (b *Box) drawBorders(screen tcell.Screen) {
	r := b.rect
	right, bottom := r.X+r.Width-1, r.Y+r.Height-1
	set, style := b.borderSet, b.borderStyle

	for x := r.X + 1; x < right; x++ {
		if b.borders.Has(BordersTop) {
			screen.Put(x, r.Y, set.Top, style)
		}
		if b.borders.Has(BordersBottom) {
			screen.Put(x, bottom, set.Bottom, style)
		}
	}
	for y := r.Y + 1; y < bottom; y++ {
		if b.borders.Has(BordersLeft) {
			screen.Put(r.X, y, set.Left, style)
		}
		if b.borders.Has(BordersRight) {
			screen.Put(right, y, set.Right, style)
		}
	}

	corners := []struct {
		sides Borders
		x, y  int
		glyph string
	}{
		{BordersTop | BordersLeft, r.X, r.Y, set.TopLeft},
		{BordersTop | BordersRight, right, r.Y, set.TopRight},
		{BordersBottom | BordersLeft, r.X, bottom, set.BottomLeft},
		{BordersBottom | BordersRight, right, bottom, set.BottomRight},
	}
	for _, c := range corners {
		if b.borders&c.sides == c.sides {
			screen.Put(c.x, c.y, c.glyph, style)
		}
	}
}

// InputHandler ignores key events.
func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

// PasteHandler ignores pasted text.
func (b *Box) PasteHandler(text string) Command {
	return nil
}

// MouseHandler ignores mouse events.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	return nil, nil
}

// Focus is called when the box receives focus.
func (b *Box) Focus(delegate func(p Primitive)) {
	if !b.hasFocus {
		b.hasFocus = true
		b.MarkDirty()
	}
}

// Blur is called when the box loses focus.
func (b *Box) Blur() {
	if b.hasFocus {
		b.hasFocus = false
		b.MarkDirty()
	}
}

// HasFocus reports whether the box has focus.
func (b *Box) HasFocus() bool {
	return b.hasFocus
}

var _ Primitive = &Box{}
