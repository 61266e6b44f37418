package hlist

import (
	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/hlist/locale"
)

// AnchorStatus is what the trailing row of a list currently shows.
type AnchorStatus int

const (
	// AnchorIdle is a blank row waiting to scroll into view.
	AnchorIdle AnchorStatus = iota
	AnchorLoading
	// AnchorFailed shows the load error and a retry button.
	AnchorFailed
	// AnchorManual shows a "load more" button when infinite scroll is off.
	AnchorManual
	AnchorEnd
	AnchorEmpty
)

// Anchor is the trailing row of a HeterogeneousList. The sentinel observes
// it to load the next page, and it doubles as the status row.
type Anchor struct {
	*Box

	translator *locale.Translator
	status     AnchorStatus
	state      ListState

	retry    *Button
	loadMore *Button
	selected bool

	// placed is set while the row is part of the current layout.
	placed bool

	onRetry    func()
	onLoadMore func()
}

// NewAnchor returns an idle anchor. A nil translator uses English.
func NewAnchor(translator *locale.Translator) *Anchor {
	if translator == nil {
		translator = locale.English()
	}
	a := &Anchor{
		Box:        NewBox(),
		translator: translator,
	}
	a.SetDontClear(true)
	a.retry = NewButton(translator.Retry()).SetSelectedFunc(a.Activate)
	a.loadMore = NewButton(translator.LoadMore()).SetSelectedFunc(a.Activate)
	return a
}

// SetActions sets what the retry and load more buttons do.
func (a *Anchor) SetActions(onRetry, onLoadMore func()) *Anchor {
	a.onRetry = onRetry
	a.onLoadMore = onLoadMore
	return a
}

// Update derives the status from state. infinite tells whether pages load
// on scroll or by button.
func (a *Anchor) Update(state ListState, infinite bool) {
	status := AnchorIdle
	switch {
	case state.Loading:
		status = AnchorLoading
	case state.Err != nil:
		status = AnchorFailed
	case !state.HasMore && state.Len == 0:
		status = AnchorEmpty
	case !state.HasMore:
		status = AnchorEnd
	case !infinite:
		status = AnchorManual
	}
	if status != a.status || state != a.state {
		a.status = status
		a.state = state
		a.MarkDirty()
	}
}

// Status returns what the row currently shows.
func (a *Anchor) Status() AnchorStatus {
	return a.status
}

// Actionable reports whether Activate does something in the current status.
func (a *Anchor) Actionable() bool {
	return a.status == AnchorFailed || a.status == AnchorManual
}

// Activate retries a failed page or loads the next one, depending on the
// status.
func (a *Anchor) Activate() {
	switch a.status {
	case AnchorFailed:
		if a.onRetry != nil {
			a.onRetry()
		}
	case AnchorManual:
		if a.onLoadMore != nil {
			a.onLoadMore()
		}
	}
}

// SetSelected highlights the button of the row.
func (a *Anchor) SetSelected(selected bool) {
	if a.selected == selected {
		return
	}
	a.selected = selected
	for _, button := range []*Button{a.retry, a.loadMore} {
		if selected {
			button.Focus(nil)
		} else {
			button.Blur()
		}
	}
	a.MarkDirty()
}

// Placed reports whether the row is part of the current layout.
func (a *Anchor) Placed() bool {
	return a.placed
}

func (a *Anchor) setPlaced(placed bool) {
	a.placed = placed
}

// Height is always one row so the sentinel has something to observe.
func (a *Anchor) Height(width int) int {
	return 1
}

// Draw draws this primitive onto the screen.
func (a *Anchor) Draw(screen tcell.Screen) {
	a.DrawForSubclass(screen, a)

	x, y, width, height := a.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	status := tcell.StyleDefault.Foreground(Styles.TertiaryTextColor)
	switch a.status {
	case AnchorLoading:
		PrintWithStyle(screen, a.translator.Loading(), x, y, width, AlignmentCenter, status)
	case AnchorFailed:
		a.drawFailure(screen, x, y, width)
	case AnchorManual:
		a.drawButton(screen, a.loadMore, x+max(width-a.buttonWidth(a.loadMore), 0)/2, y)
	case AnchorEnd:
		PrintWithStyle(screen, a.translator.EndOfList(a.state.Len), x, y, width, AlignmentCenter, status.Dim(true))
	case AnchorEmpty:
		PrintWithStyle(screen, a.translator.Empty(), x, y, width, AlignmentCenter, status.Dim(true))
	}
}

func (a *Anchor) drawFailure(screen tcell.Screen, x, y, width int) {
	buttonWidth := a.buttonWidth(a.retry)
	message := a.translator.LoadFailed(a.state.Page, errorCause(a.state.Err))
	messageWidth := max(width-buttonWidth-1, 0)
	message = TruncateWidth(message, messageWidth)
	PrintWithStyle(screen, message, x, y, messageWidth, AlignmentLeft, tcell.StyleDefault.Foreground(Styles.ErrorTextColor))
	a.drawButton(screen, a.retry, x+TaggedStringWidth(message)+1, y)
}

func (a *Anchor) buttonWidth(button *Button) int {
	return TaggedStringWidth(button.Label()) + 2
}

func (a *Anchor) drawButton(screen tcell.Screen, button *Button, x, y int) {
	innerX, _, innerWidth, _ := a.GetInnerRect()
	buttonWidth := min(a.buttonWidth(button), innerX+innerWidth-x)
	if buttonWidth <= 0 {
		return
	}
	button.SetRect(x, y, buttonWidth, 1)
	button.Draw(screen)
}

// errorCause strips the LoadError wrapper, whose page the message already
// names.
func errorCause(err error) error {
	if loadErr, ok := err.(*LoadError); ok && loadErr.Err != nil {
		return loadErr.Err
	}
	return err
}

// InputHandler activates the row on Enter.
func (a *Anchor) InputHandler(event *tcell.EventKey) Command {
	if !a.Actionable() {
		return nil
	}
	return a.button().InputHandler(event)
}

// MouseHandler activates the row when its button is clicked.
func (a *Anchor) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action != MouseLeftClick || !a.Actionable() {
		return nil, nil
	}
	_, cmd := a.button().MouseHandler(action, event)
	return nil, cmd
}

// button is the control shown in the current status.
func (a *Anchor) button() *Button {
	if a.status == AnchorManual {
		return a.loadMore
	}
	return a.retry
}

var _ ListItem = &Anchor{}
