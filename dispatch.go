package hlist

import (
	"github.com/gdamore/tcell/v3"
)

// rowRenderer resolves the row at index for the active mode.
type rowRenderer interface {
	Len() int
	renderAt(index int) ListItem
}

// itemRenderer serves registry and renderItem modes.
type itemRenderer[T any] struct {
	mode       Mode
	data       func() []T
	registry   Registry[T]
	kindOf     func(T) string
	renderItem RenderFunc[T]
	fallback   func(err *RenderLookupError) ListItem

	// reported holds the kinds already logged as missing.
	reported map[string]bool
}

func newItemRenderer[T any](cfg Config[T], data func() []T) *itemRenderer[T] {
	fallback := cfg.Fallback
	if fallback == nil {
		fallback = defaultFallback
	}
	return &itemRenderer[T]{
		mode:       cfg.Mode,
		data:       data,
		registry:   cfg.Registry,
		kindOf:     cfg.KindOf,
		renderItem: cfg.RenderItem,
		fallback:   fallback,
		reported:   make(map[string]bool),
	}
}

func (r *itemRenderer[T]) Len() int {
	return len(r.data())
}

func (r *itemRenderer[T]) renderAt(index int) ListItem {
	data := r.data()
	if index < 0 || index >= len(data) {
		return nil
	}
	item := data[index]

	if r.mode == ModeRenderItem {
		if row := r.renderItem(item, index); row != nil {
			return row
		}
		return r.fallback(&RenderLookupError{Index: index})
	}

	kind := kindOf(item, r.kindOf)
	render, ok := r.registry[kind]
	if !ok || render == nil {
		err := &RenderLookupError{Kind: kind, Index: index}
		if !r.reported[kind] {
			r.reported[kind] = true
			internalLogger().Warn("no renderer for item kind", "kind", kind, "index", index)
		}
		return r.fallback(err)
	}
	if row := render(item, index); row != nil {
		return row
	}
	return r.fallback(&RenderLookupError{Kind: kind, Index: index})
}

func kindOf[T any](item T, fn func(T) string) string {
	if fn != nil {
		return fn(item)
	}
	if kinded, ok := any(item).(Kinded); ok {
		return kinded.KindComponent()
	}
	return ""
}

// CheckRegistry returns a *RenderLookupError for the first item whose kind is
// missing from registry. Lists resolve kinds lazily; call it where a missing
// renderer should be caught up front.
func CheckRegistry[T any](items []T, registry Registry[T], kind func(T) string) error {
	for i, item := range items {
		k := kindOf(item, kind)
		if render, ok := registry[k]; !ok || render == nil {
			return &RenderLookupError{Kind: k, Index: i}
		}
	}
	return nil
}

// elementRenderer serves elements mode. Elements are shown unmodified.
type elementRenderer struct {
	data func() []ListItem
}

func (r *elementRenderer) Len() int {
	return len(r.data())
}

func (r *elementRenderer) renderAt(index int) ListItem {
	data := r.data()
	if index < 0 || index >= len(data) {
		return nil
	}
	return data[index]
}

func defaultFallback(err *RenderLookupError) ListItem {
	return NewText(err.Error()).
		SetStyle(tcell.StyleDefault.Foreground(Styles.ErrorTextColor).Dim(true)).
		SetMaxLines(1)
}

// dividedRenderer draws a divider below every row except the last.
type dividedRenderer struct {
	rowRenderer
	divider func(index int) ListItem
}

func withDividers[T any](r rowRenderer, cfg Config[T]) rowRenderer {
	var divider func(index int) ListItem
	switch cfg.Divider {
	case DividerLine:
		divider = func(int) ListItem { return NewDivider(BoxDrawingsLightHorizontal) }
	case DividerDashed:
		divider = func(int) ListItem { return NewDivider(BoxDrawingsLightTripleDashHorizontal) }
	case DividerCustom:
		divider = cfg.RenderDivider
	default:
		return r
	}
	return &dividedRenderer{rowRenderer: r, divider: divider}
}

func (r *dividedRenderer) renderAt(index int) ListItem {
	row := r.rowRenderer.renderAt(index)
	if row == nil || index >= r.Len()-1 {
		return row
	}
	divider := r.divider(index)
	if divider == nil {
		return row
	}
	return &dividedItem{ListItem: row, divider: divider}
}

// dividedItem is a row with its divider drawn underneath. Input goes to the
// row.
type dividedItem struct {
	ListItem
	divider ListItem
	x, y    int
	width   int
	height  int
}

func (d *dividedItem) Height(width int) int {
	return max(d.ListItem.Height(width), 1) + max(d.divider.Height(width), 1)
}

func (d *dividedItem) GetRect() (int, int, int, int) {
	return d.x, d.y, d.width, d.height
}

func (d *dividedItem) SetRect(x, y, width, height int) {
	d.x, d.y, d.width, d.height = x, y, width, height
	dividerHeight := min(max(d.divider.Height(width), 1), height)
	d.ListItem.SetRect(x, y, width, height-dividerHeight)
	d.divider.SetRect(x, y+height-dividerHeight, width, dividerHeight)
}

func (d *dividedItem) Draw(screen tcell.Screen) {
	d.ListItem.Draw(screen)
	d.divider.Draw(screen)
}

// Divider is a horizontal rule one row high.
type Divider struct {
	*Box
	glyph string
	style tcell.Style
}

// NewDivider returns a rule repeating glyph across its width.
func NewDivider(glyph string) *Divider {
	box := NewBox()
	box.SetDontClear(true)
	return &Divider{
		Box:   box,
		glyph: glyph,
		style: tcell.StyleDefault.Foreground(Styles.GraphicsColor).Dim(true),
	}
}

// SetStyle sets the rule style.
func (d *Divider) SetStyle(style tcell.Style) *Divider {
	d.style = style
	return d
}

func (d *Divider) Height(width int) int {
	return 1
}

func (d *Divider) Draw(screen tcell.Screen) {
	d.DrawForSubclass(screen, d)
	x, y, width, height := d.GetInnerRect()
	if height <= 0 {
		return
	}
	for col := x; col < x+width; col++ {
		screen.Put(col, y, d.glyph, d.style)
	}
}

var (
	_ ListItem = &Divider{}
	_ ListItem = &dividedItem{}
)
