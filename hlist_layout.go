package hlist

import (
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// cursorGutter is the number of columns left of each row for the cursor
// marker.
const cursorGutter = 2

type scrollState struct {
	// Index of the top row in the viewport.
	top int
	// Lines of the top row scrolled out above the viewport.
	offset int
	// Pending scroll delta in lines to apply on the next draw.
	pending int
	// Ensure the cursor is visible on the next draw.
	wantsCursor bool
}

type drawnRow struct {
	index  int
	item   ListItem
	row    int
	height int
}

// ScrollPosition returns the top row and its hidden lines.
func (l *HeterogeneousList[T]) ScrollPosition() ScrollPosition {
	return ScrollPosition{Top: l.scroll.top, Offset: l.scroll.offset}
}

// SetScrollPosition moves the viewport. It takes effect on the next draw.
func (l *HeterogeneousList[T]) SetScrollPosition(pos ScrollPosition) *HeterogeneousList[T] {
	l.scroll.top = max(pos.Top, 0)
	l.scroll.offset = max(pos.Offset, 0)
	l.scroll.pending = 0
	l.scroll.wantsCursor = false
	l.MarkDirty()
	return l
}

// ScrollUp scrolls the list up by one line.
func (l *HeterogeneousList[T]) ScrollUp() *HeterogeneousList[T] {
	l.scroll.pending--
	l.MarkDirty()
	return l
}

// ScrollDown scrolls the list down by one line.
func (l *HeterogeneousList[T]) ScrollDown() *HeterogeneousList[T] {
	l.scroll.pending++
	l.MarkDirty()
	return l
}

// PageUp scrolls up by one viewport height.
func (l *HeterogeneousList[T]) PageUp() *HeterogeneousList[T] {
	_, _, _, height := l.GetInnerRect()
	l.scroll.pending -= max(height, 1)
	l.MarkDirty()
	return l
}

// PageDown scrolls down by one viewport height.
func (l *HeterogeneousList[T]) PageDown() *HeterogeneousList[T] {
	_, _, _, height := l.GetInnerRect()
	l.scroll.pending += max(height, 1)
	l.MarkDirty()
	return l
}

// ScrollToStart shows the first row without moving the cursor.
func (l *HeterogeneousList[T]) ScrollToStart() *HeterogeneousList[T] {
	l.scroll = scrollState{}
	l.MarkDirty()
	return l
}

// ScrollToEnd shows the last rows, including the anchor row.
func (l *HeterogeneousList[T]) ScrollToEnd() *HeterogeneousList[T] {
	_, _, width, height := l.GetInnerRect()
	width = l.rowWidth(width)
	if width <= 0 || height <= 0 {
		return l
	}
	l.scroll.top, l.scroll.offset = l.endScrollState(width, height)
	l.scroll.pending = 0
	l.scroll.wantsCursor = false
	l.MarkDirty()
	return l
}

// Cursor returns the selected row index, or -1. The anchor row has index
// Len().
func (l *HeterogeneousList[T]) Cursor() int {
	return l.cursor
}

// SetCursor selects index and scrolls it into view. Indexes that cannot be
// selected are ignored.
func (l *HeterogeneousList[T]) SetCursor(index int) *HeterogeneousList[T] {
	if index == -1 || l.selectable(index) {
		l.setCursor(index)
		l.ensureScroll()
	}
	return l
}

func (l *HeterogeneousList[T]) setCursor(index int) {
	if l.cursor == index {
		return
	}
	l.cursor = index
	l.MarkDirty()
	if l.changed != nil {
		l.changed(index)
	}
}

// NextItem moves the cursor down one row. It returns false at the end.
func (l *HeterogeneousList[T]) NextItem() bool {
	next := max(l.cursor+1, 0)
	if !l.selectable(next) {
		return false
	}
	l.setCursor(next)
	l.ensureScroll()
	return true
}

// PrevItem moves the cursor up one row. It returns false at the top.
func (l *HeterogeneousList[T]) PrevItem() bool {
	if l.cursor <= 0 || !l.selectable(l.cursor-1) {
		return false
	}
	l.setCursor(l.cursor - 1)
	l.ensureScroll()
	return true
}

func (l *HeterogeneousList[T]) ensureScroll() {
	if l.cursor < 0 {
		l.scroll.wantsCursor = false
		return
	}
	if l.cursor > l.scroll.top {
		l.scroll.wantsCursor = true
		return
	}
	l.scroll.top = l.cursor
	l.scroll.offset = 0
}

// Draw lays out the visible rows, reasserts a preserved scroll position and
// lets the sentinel look at the anchor row.
func (l *HeterogeneousList[T]) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	if pos, ok := l.preserver.Restore(); ok {
		l.scroll.top, l.scroll.offset = pos.Top, pos.Offset
	}
	l.sync()
	l.anchor.SetSelected(l.HasFocus() && l.cursor == l.rows.Len())
	l.anchor.setPlaced(false)

	viewport := l.InnerRect()
	l.layout(screen, viewport)
	l.sentinel.Check(viewport)
}

func (l *HeterogeneousList[T]) layout(screen tcell.Screen, viewport Rect) {
	l.lastRect = viewport
	l.lastDraw = nil
	width := l.rowWidth(viewport.Width)
	if viewport.Empty() || width <= 0 {
		return
	}
	height := viewport.Height
	gap := l.cfg.Gap

	if last := l.rows.Len(); l.scroll.top > last {
		l.scroll.top, l.scroll.offset = last, 0
	}

	pendingDelta := l.scroll.pending
	ah := -(l.scroll.offset + pendingDelta)
	l.scroll.pending = 0

	if ah > 0 && l.scroll.top == 0 {
		ah = 0
		l.scroll.offset = 0
	}

	rows := make([]drawnRow, 0, 16)
	startIndex := l.scroll.top

	if ah > 0 {
		// We scrolled upward into the previous top row; prepend enough rows above.
		rows = l.prependRows(rows, width, ah)
		if len(rows) > 0 {
			last := rows[len(rows)-1]
			ah = last.row + last.height + gap
		}
	}

	// Rows within RootMargin below the viewport are laid out too, so the
	// sentinel sees the anchor before it is drawn.
	limit := height + l.cfg.RootMargin
	endReached := false
	for i := startIndex; ; i++ {
		item := l.rowAt(i)
		if item == nil {
			endReached = true
			break
		}
		itemHeight := rowHeight(item, width)
		rows = append(rows, drawnRow{index: i, item: item, row: ah, height: itemHeight})
		ah += itemHeight + gap

		if l.scroll.wantsCursor && i <= l.cursor {
			continue
		}
		if ah >= limit {
			break
		}
	}

	// When scrolling down at the end, clamp so the last row aligns to the bottom.
	if endReached && pendingDelta > 0 {
		last := rows[len(rows)-1]
		bottom := last.row + last.height
		if rows[0].row < 0 && bottom < height {
			shiftRows(rows, min(height-bottom, -rows[0].row))
		}
	}

	// Adjust rows so the cursor row is fully visible.
	if l.scroll.wantsCursor {
		for _, r := range rows {
			if r.index != l.cursor {
				continue
			}
			if bottom := r.row + r.height; bottom > height {
				shiftRows(rows, height-bottom)
			}
			break
		}
		l.scroll.wantsCursor = false
	}

	// The first partially visible row becomes the top anchor.
	for _, r := range rows {
		if r.row <= 0 && r.row+r.height+gap > 0 {
			l.scroll.top = r.index
			l.scroll.offset = -r.row
			break
		}
	}

	x, y := viewport.X, viewport.Y
	anchorIndex := l.rows.Len()
	focused := l.HasFocus()
	clipped := newClippedScreen(screen, x, y, viewport.Width, height)
	visible := rows[:0:0]
	for _, r := range rows {
		r.item.SetRect(x+cursorGutter, y+r.row, width, r.height)
		if r.index == anchorIndex {
			l.anchor.setPlaced(true)
		}
		if r.row >= height || r.row+r.height <= 0 {
			continue
		}
		r.item.Draw(clipped)
		if r.index == l.cursor {
			drawCursor(clipped, x, y+r.row, r.height, focused)
		}
		visible = append(visible, r)
	}
	l.lastDraw = visible

	if l.scrollBar != nil {
		l.scrollBar.SetPosition(l.rows.Len()+1, len(visible), l.scroll.top).
			SetHasMore(l.pager.State().HasMore)
		l.scrollBar.SetRect(x+viewport.Width-1, y, 1, height)
		l.scrollBar.Draw(screen)
	}
}

// rowWidth is the width left for rows after the cursor gutter and the
// scroll bar.
func (l *HeterogeneousList[T]) rowWidth(viewportWidth int) int {
	width := viewportWidth - cursorGutter
	if l.scrollBar != nil {
		width--
	}
	return width
}

func shiftRows(rows []drawnRow, delta int) {
	for i := range rows {
		rows[i].row += delta
	}
}

func rowHeight(item ListItem, width int) int {
	if item == nil {
		return 0
	}
	return max(item.Height(width), 1)
}

func drawCursor(screen tcell.Screen, x, y, height int, focused bool) {
	style := tcell.StyleDefault.Foreground(Styles.SecondaryTextColor)
	if !focused {
		style = style.Dim(true)
	}
	for row := y; row < y+height; row++ {
		screen.Put(x, row, SemigraphicsCursor, style)
	}
}

func (l *HeterogeneousList[T]) prependRows(rows []drawnRow, width int, ah int) []drawnRow {
	if l.scroll.top <= 0 {
		return rows
	}
	gap := l.cfg.Gap

	l.scroll.top--
	for ah > 0 {
		ah -= gap
		item := l.rowAt(l.scroll.top)
		if item == nil {
			break
		}
		height := rowHeight(item, width)
		ah -= height
		rows = append([]drawnRow{{index: l.scroll.top, item: item, row: ah, height: height}}, rows...)

		if l.scroll.top == 0 {
			break
		}
		l.scroll.top--
	}

	l.scroll.offset = ah

	if l.scroll.top == 0 && ah > 0 {
		// We hit the absolute top; normalize rows to avoid overscrolling.
		l.scroll.offset = 0
		row := 0
		for i := range rows {
			rows[i].row = row
			row += rows[i].height + gap
		}
	}
	return rows
}

// endScrollState returns the top index and offset that show the last rows.
func (l *HeterogeneousList[T]) endScrollState(width int, height int) (int, int) {
	last := l.rows.Len()
	total := 0
	for i := last; i >= 0; i-- {
		item := l.rowAt(i)
		if item == nil {
			continue
		}
		if total > 0 {
			total += l.cfg.Gap
		}
		itemHeight := rowHeight(item, width)
		if total+itemHeight > height {
			return i, total + itemHeight - height
		}
		total += itemHeight
	}
	return 0, 0
}

func (l *HeterogeneousList[T]) indexAtPoint(x, y int) int {
	r := l.lastRect
	if len(l.lastDraw) == 0 || x < r.X || x >= r.X+r.Width || y < r.Y || y >= r.Y+r.Height {
		return -1
	}

	row := y - r.Y
	for _, child := range l.lastDraw {
		if row >= child.row && row < child.row+child.height+l.cfg.Gap {
			return child.index
		}
	}
	return -1
}

// clippedScreen confines drawing to a rectangle so partially visible rows
// do not spill over the frame.
type clippedScreen struct {
	tcell.Screen
	x      int
	y      int
	width  int
	height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if !s.inBounds(x, y) {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, style)
}

func (s *clippedScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if !s.inBounds(x, y) {
		return str, 0
	}
	return s.Screen.Put(x, y, str, style)
}

func (s *clippedScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, tcell.StyleDefault)
}

func (s *clippedScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	if y < s.y || y >= s.y+s.height {
		return
	}

	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		cluster := gr.Str()
		width := max(uniseg.StringWidth(cluster), 1)
		if x >= s.x+s.width {
			return
		}
		if x >= s.x && x+width <= s.x+s.width {
			s.Screen.Put(x, y, cluster, style)
		}
		x += width
	}
}

func (s *clippedScreen) ShowCursor(x int, y int) {
	if !s.inBounds(x, y) {
		s.Screen.ShowCursor(-1, -1)
		return
	}
	s.Screen.ShowCursor(x, y)
}
