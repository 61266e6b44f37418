package hlist

import (
	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/hlist/keybind"
)

// pagerControl is the part of a Pager the list drives regardless of the
// element type.
type pagerControl interface {
	Mount(d Dispatcher) error
	Unmount()
	LoadMore()
	Retry()
	Reset()
	Len() int
	State() ListState
}

// HeterogeneousList shows a paginated sequence of rows. Depending on its Mode
// the rows come from a registry keyed by item kind, from a render function,
// or from pre-built elements. Further pages load when the trailing anchor
// row scrolls into view, or on request when infinite scroll is off.
//
// All methods must be called on the UI goroutine.
type HeterogeneousList[T any] struct {
	*Box

	cfg Config[T]

	pager        pagerControl
	itemPager    *Pager[T]
	elementPager *Pager[ListItem]
	rows         rowRenderer

	anchor    *Anchor
	sentinel  *Sentinel
	preserver *ScrollPreserver
	scrollBar *ScrollBar

	dispatcher Dispatcher
	mounted    bool

	keys KeyMap

	cursor int
	scroll scrollState

	lastDraw []drawnRow
	lastRect Rect

	selected func(index int)
	changed  func(index int)
}

// NewHeterogeneousList validates cfg and returns an unmounted list. A
// configuration error is returned as a *ConfigurationError and no list is
// created.
func NewHeterogeneousList[T any](cfg Config[T]) (*HeterogeneousList[T], error) {
	if err := Validate(cfg); err != nil {
		internalLogger().Error("invalid list configuration", "error", err)
		return nil, err
	}

	l := &HeterogeneousList[T]{
		Box:    NewBox(),
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		cursor: -1,
	}

	if cfg.Mode == ModeElements {
		seed := cfg.Elements
		if seed == nil {
			seed = cfg.InitialElements
		}
		l.elementPager = NewPager(cfg.ElementsLoader, pagerOptions(cfg, seed, l))
		l.pager = l.elementPager
		l.rows = &elementRenderer{data: l.elementPager.Data}
	} else {
		seed := cfg.Items
		if seed == nil {
			seed = cfg.InitialItems
		}
		l.itemPager = NewPager(cfg.DataLoader, pagerOptions(cfg, seed, l))
		l.pager = l.itemPager
		l.rows = newItemRenderer(cfg, l.itemPager.Data)
	}
	l.rows = withDividers(l.rows, cfg)

	l.preserver = NewScrollPreserver(cfg.PreserveScrollPosition, l.pager.Len())
	l.anchor = NewAnchor(cfg.Translator).SetActions(l.Retry, l.LoadMore)
	l.sentinel = NewSentinel(l.onIntersect, SentinelOptions{
		RootMargin: cfg.RootMargin,
		Threshold:  cfg.Threshold,
	})
	if cfg.ScrollBar {
		l.scrollBar = NewScrollBar()
	}
	l.anchor.Update(l.pager.State(), cfg.InfiniteScroll)
	return l, nil
}

func pagerOptions[T, E any](cfg Config[T], seed []E, l *HeterogeneousList[T]) PagerOptions[E] {
	return PagerOptions[E]{
		PageSize:   cfg.pageSize(),
		Initial:    seed,
		OnLoad:     cfg.OnLoad,
		OnEnd:      cfg.OnEnd,
		OnError:    cfg.OnError,
		BeforeGrow: l.beforeGrow,
		OnSettle: func(PageRequest, LoadOutcome) {
			l.sync()
			l.MarkDirty()
		},
	}
}

// Mode returns the presentation mode.
func (l *HeterogeneousList[T]) Mode() Mode {
	return l.cfg.Mode
}

// Mount starts the list. Page results are delivered through d, usually the
// Application. With infinite scroll the sentinel is attached to the anchor
// row; without it exactly one page is requested now.
func (l *HeterogeneousList[T]) Mount(d Dispatcher) error {
	if err := l.pager.Mount(d); err != nil {
		return err
	}
	l.dispatcher = d
	if l.mounted {
		return nil
	}

	l.preserver = NewScrollPreserver(l.cfg.PreserveScrollPosition, l.pager.Len())
	l.scroll = scrollState{}
	l.cursor = -1
	l.mounted = true

	if l.cfg.InfiniteScroll {
		l.sentinel.SetRef(l.anchor)
	} else {
		l.pager.LoadMore()
	}
	l.sync()
	l.MarkDirty()
	return nil
}

// Unmount disconnects the sentinel and drops loads still in flight.
func (l *HeterogeneousList[T]) Unmount() {
	if !l.mounted {
		return
	}
	l.mounted = false
	l.sentinel.Disconnect()
	l.sentinel.SetRef(nil)
	l.pager.Unmount()
	l.sync()
}

// Mounted reports whether the list is mounted.
func (l *HeterogeneousList[T]) Mounted() bool {
	return l.mounted
}

// LoadMore requests the next page. It is a no-op while loading, after the
// last page, without a loader or while unmounted.
func (l *HeterogeneousList[T]) LoadMore() {
	l.pager.LoadMore()
	l.sync()
}

// Retry requests the failed page again.
func (l *HeterogeneousList[T]) Retry() {
	l.pager.Retry()
	l.sync()
}

// Reset drops loaded pages and starts again from page 1 with the initial
// data. Loads in flight are ignored when they arrive.
func (l *HeterogeneousList[T]) Reset() {
	l.pager.Reset()
	l.preserver = NewScrollPreserver(l.cfg.PreserveScrollPosition, l.pager.Len())
	l.scroll = scrollState{}
	l.setCursor(-1)
	if l.mounted && !l.cfg.InfiniteScroll {
		l.pager.LoadMore()
	}
	l.sync()
	l.MarkDirty()
}

// State returns a snapshot of the pagination state.
func (l *HeterogeneousList[T]) State() ListState {
	return l.pager.State()
}

// Len returns the number of data rows, not counting the anchor.
func (l *HeterogeneousList[T]) Len() int {
	return l.pager.Len()
}

// Items returns the displayed items. It is nil in elements mode.
func (l *HeterogeneousList[T]) Items() []T {
	if l.itemPager == nil {
		return nil
	}
	return l.itemPager.Data()
}

// SetItems replaces the displayed items with caller-owned data. Page and
// HasMore are kept. It is ignored in elements mode.
func (l *HeterogeneousList[T]) SetItems(items []T) {
	if l.itemPager == nil {
		return
	}
	l.itemPager.SetData(items)
	l.dataReplaced()
}

// Elements returns the displayed elements. It is nil outside elements mode.
func (l *HeterogeneousList[T]) Elements() []ListItem {
	if l.elementPager == nil {
		return nil
	}
	return l.elementPager.Data()
}

// SetElements replaces the displayed elements. Page and HasMore are kept. It
// is ignored outside elements mode.
func (l *HeterogeneousList[T]) SetElements(elements []ListItem) {
	if l.elementPager == nil {
		return
	}
	l.elementPager.SetData(elements)
	l.dataReplaced()
}

func (l *HeterogeneousList[T]) dataReplaced() {
	n := l.pager.Len()
	l.preserver.Capture(n, l.ScrollPosition())
	l.sync()
	// The anchor keeps the cursor only while it offers an action.
	if l.cursor >= n && !l.selectable(l.cursor) {
		if l.selectable(n) {
			l.setCursor(n)
		} else {
			l.setCursor(n - 1)
		}
	}
	l.MarkDirty()
}

// Anchor returns the trailing status row.
func (l *HeterogeneousList[T]) Anchor() *Anchor {
	return l.anchor
}

// Sentinel returns the sentinel watching the anchor row.
func (l *HeterogeneousList[T]) Sentinel() *Sentinel {
	return l.sentinel
}

// SetKeyMap replaces the keybinds.
func (l *HeterogeneousList[T]) SetKeyMap(keys KeyMap) *HeterogeneousList[T] {
	l.keys = keys
	return l
}

// KeyMap returns the keybinds, for example to feed a help footer.
func (l *HeterogeneousList[T]) KeyMap() KeyMap {
	return l.keys
}

// SetSelectedFunc sets a handler called with the cursor index when Enter is
// pressed on a data row.
func (l *HeterogeneousList[T]) SetSelectedFunc(handler func(index int)) *HeterogeneousList[T] {
	l.selected = handler
	return l
}

// SetChangedFunc sets a handler called when the cursor moves.
func (l *HeterogeneousList[T]) SetChangedFunc(handler func(index int)) *HeterogeneousList[T] {
	l.changed = handler
	return l
}

// sync pushes the pager state into the anchor and the sentinel. The sentinel
// only observes while a load could start.
func (l *HeterogeneousList[T]) sync() {
	state := l.pager.State()
	l.anchor.Update(state, l.cfg.InfiniteScroll)
	l.sentinel.SetEnabled(l.cfg.InfiniteScroll && l.mounted &&
		state.HasMore && !state.Loading && state.Err == nil)
}

func (l *HeterogeneousList[T]) beforeGrow(newCount int) {
	l.preserver.Capture(newCount, l.ScrollPosition())
}

// onIntersect runs inside Draw when the anchor scrolls into view.
func (l *HeterogeneousList[T]) onIntersect() {
	l.pager.LoadMore()
	l.sync()
	l.MarkDirty()
	// The anchor was drawn before the load started; show the loading row.
	if l.dispatcher != nil {
		l.dispatcher.Dispatch(func() {})
	}
}

// rowAt returns the row at index: data rows first, then the anchor.
func (l *HeterogeneousList[T]) rowAt(index int) ListItem {
	n := l.rows.Len()
	switch {
	case index < 0 || index > n:
		return nil
	case index == n:
		return l.anchor
	default:
		return l.rows.renderAt(index)
	}
}

// selectable reports whether the cursor may rest on index. The anchor only
// takes the cursor while it offers an action.
func (l *HeterogeneousList[T]) selectable(index int) bool {
	n := l.rows.Len()
	if index < 0 || index > n {
		return false
	}
	return index < n || l.anchor.Actionable()
}

// InputHandler moves the cursor, pages, and triggers loads.
func (l *HeterogeneousList[T]) InputHandler(event *tcell.EventKey) Command {
	switch {
	case keybind.Matches(event, l.keys.Up):
		l.PrevItem()
	case keybind.Matches(event, l.keys.Down):
		l.NextItem()
	case keybind.Matches(event, l.keys.PageUp):
		l.PageUp()
	case keybind.Matches(event, l.keys.PageDown):
		l.PageDown()
	case keybind.Matches(event, l.keys.Top):
		l.ScrollToStart()
		if l.selectable(0) {
			l.setCursor(0)
		}
	case keybind.Matches(event, l.keys.Bottom):
		l.ScrollToEnd()
		if last := l.rows.Len() - 1; last >= 0 {
			l.setCursor(last)
		}
	case keybind.Matches(event, l.keys.Retry):
		if l.State().Err == nil {
			return nil
		}
		l.Retry()
	case keybind.Matches(event, l.keys.LoadMore):
		l.LoadMore()
	case keybind.Matches(event, l.keys.Select):
		if !l.activate() {
			return nil
		}
	default:
		return nil
	}
	l.MarkDirty()
	return RedrawCommand{}
}

// activate handles Enter on the cursor row.
func (l *HeterogeneousList[T]) activate() bool {
	switch {
	case l.cursor < 0:
		return false
	case l.cursor == l.rows.Len():
		if !l.anchor.Actionable() {
			return false
		}
		l.anchor.Activate()
		return true
	case l.selected != nil:
		l.selected(l.cursor)
		return true
	}
	return false
}

// MouseHandler selects rows on click and scrolls on the wheel.
func (l *HeterogeneousList[T]) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if !l.InRect(x, y) {
		return nil, nil
	}

	switch action {
	case MouseLeftClick:
		var cmd Command = SetFocusCommand{Target: l}
		index := l.indexAtPoint(x, y)
		if index == l.rows.Len() {
			_, anchorCmd := l.anchor.MouseHandler(action, event)
			cmd = AppendCommand(cmd, anchorCmd)
		}
		if index >= 0 && l.selectable(index) {
			l.setCursor(index)
			l.ensureScroll()
		}
		l.MarkDirty()
		return nil, cmd
	case MouseScrollUp:
		l.scroll.pending -= 3
		l.MarkDirty()
		return nil, RedrawCommand{}
	case MouseScrollDown:
		l.scroll.pending += 3
		l.MarkDirty()
		return nil, RedrawCommand{}
	}
	return nil, nil
}

var _ Primitive = &HeterogeneousList[any]{}
