package hlist

import "github.com/gdamore/tcell/v3"

// Button is a one-row label that runs an action on Enter or a click. The
// anchor row uses one for retry and one for load more.
type Button struct {
	*Box

	label        string
	style        tcell.Style
	focusedStyle tcell.Style
	selected     func()
}

// NewButton returns a button sized to fit label.
func NewButton(label string) *Button {
	box := NewBox()
	box.SetRect(0, 0, TaggedStringWidth(label)+4, 1)
	return &Button{
		Box:          box,
		label:        label,
		style:        tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Foreground(Styles.PrimaryTextColor),
		focusedStyle: tcell.StyleDefault.Background(Styles.PrimaryTextColor).Foreground(Styles.InverseTextColor),
	}
}

// Label returns the button text.
func (b *Button) Label() string {
	return b.label
}

// SetLabel replaces the button text.
func (b *Button) SetLabel(label string) *Button {
	if b.label != label {
		b.label = label
		b.MarkDirty()
	}
	return b
}

// SetStyles sets the style without and with focus.
func (b *Button) SetStyles(style, focused tcell.Style) *Button {
	b.style, b.focusedStyle = style, focused
	b.MarkDirty()
	return b
}

// SetSelectedFunc sets the action run by Activate.
func (b *Button) SetSelectedFunc(handler func()) *Button {
	b.selected = handler
	return b
}

// Activate runs the action.
func (b *Button) Activate() {
	if b.selected != nil {
		b.selected()
	}
}

// Height is always one row.
func (b *Button) Height(width int) int {
	return 1
}

// Draw draws this primitive onto the screen.
func (b *Button) Draw(screen tcell.Screen) {
	style := b.style
	if b.HasFocus() {
		style = b.focusedStyle
	}
	b.SetBackgroundColor(style.GetBackground())
	b.DrawForSubclass(screen, b)

	x, y, width, height := b.GetInnerRect()
	if width > 0 && height > 0 {
		printText(screen, b.label, x, y+height/2, width, AlignmentCenter, style, true)
	}
}

// InputHandler activates the button on Enter.
func (b *Button) InputHandler(event *tcell.EventKey) Command {
	if event.Key() != tcell.KeyEnter {
		return nil
	}
	b.Activate()
	return RedrawCommand{}
}

// MouseHandler focuses the button on press and activates it on click.
func (b *Button) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if !b.InRect(event.Position()) {
		return nil, nil
	}
	switch action {
	case MouseLeftDown:
		return nil, SetFocusCommand{Target: b}
	case MouseLeftClick:
		b.Activate()
		return nil, RedrawCommand{}
	}
	return nil, nil
}

var _ ListItem = &Button{}
