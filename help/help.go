// Package help draws the keybind footer of a list.
package help

import (
	"strings"

	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/hlist"
	"github.com/xqrs/hlist/keybind"
)

// KeyMap supplies the keybinds a Help footer shows. hlist.KeyMap implements
// it.
type KeyMap interface {
	// ShortHelp returns the keybinds of the one-line footer.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, one column each.
	FullHelp() [][]keybind.Keybind
}

// Help is a footer listing keybinds, either on one line or in columns. An
// optional status, such as the loaded item count, is right-aligned on the
// first line when it fits.
type Help struct {
	*hlist.Box
	Styles Styles

	keyMap  KeyMap
	status  func() string
	showAll bool

	separator string
	columnGap int
	ellipsis  string
}

// New returns a footer in short mode.
func New() *Help {
	return &Help{
		Box:       hlist.NewBox(),
		Styles:    StylesFromTheme(hlist.Styles),
		separator: " \u2022 ",
		columnGap: 4,
		ellipsis:  hlist.SemigraphicsHorizontalEllipsis,
	}
}

// SetKeyMap sets the keybinds to show.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	h.MarkDirty()
	return h
}

// SetStatusFunc sets a function whose result is shown right-aligned. It is
// called on every draw.
func (h *Help) SetStatusFunc(status func() string) *Help {
	h.status = status
	return h
}

// SetShowAll switches between the one-line and the column layout.
func (h *Help) SetShowAll(showAll bool) *Help {
	if h.showAll != showAll {
		h.showAll = showAll
		h.MarkDirty()
	}
	return h
}

// ShowAll reports whether the column layout is active.
func (h *Help) ShowAll() bool {
	return h.showAll
}

// SetSeparator sets the text between keybinds on the one-line footer.
func (h *Help) SetSeparator(separator string) *Help {
	h.separator = separator
	return h
}

// SetColumnGap sets the blank columns between groups in the column layout.
func (h *Help) SetColumnGap(gap int) *Help {
	h.columnGap = max(gap, 1)
	return h
}

// SetStyles sets the footer styles.
func (h *Help) SetStyles(styles Styles) *Help {
	h.Styles = styles
	return h
}

// Height returns one row in short mode and the tallest column otherwise.
func (h *Help) Height(width int) int {
	if h.keyMap == nil {
		return 0
	}
	if !h.showAll {
		return 1
	}
	return max(len(h.columns(h.keyMap.FullHelp(), width)), 1)
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)
	if h.keyMap == nil {
		return
	}

	x, y, width, height := h.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	status := ""
	if h.status != nil {
		status = h.status()
	}
	statusWidth := 0
	if status != "" {
		statusWidth = hlist.TaggedStringWidth(status) + 1
		if statusWidth > width/2 {
			statusWidth = 0
		}
	}

	var lines []line
	if h.showAll {
		lines = h.columns(h.keyMap.FullHelp(), width-statusWidth)
	} else {
		lines = []line{h.shortLine(h.keyMap.ShortHelp(), width-statusWidth)}
	}
	for row := 0; row < len(lines) && row < height; row++ {
		lines[row].draw(screen, x, y+row, width)
	}
	if statusWidth > 0 {
		hlist.PrintWithStyle(screen, status, x, y, width, hlist.AlignmentRight, h.Styles.Status)
	}
}

// ShortHelpLine returns the one-line footer for bindings as plain text.
func (h *Help) ShortHelpLine(bindings []keybind.Keybind, maxWidth int) string {
	return h.shortLine(bindings, maxWidth).String()
}

// FullHelpLines returns the column layout for groups as plain text.
func (h *Help) FullHelpLines(groups [][]keybind.Keybind, maxWidth int) []string {
	lines := h.columns(groups, maxWidth)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimRight(l.String(), " ")
	}
	return out
}

type span struct {
	text  string
	style tcell.Style
}

// line is a run of styled spans.
type line []span

func (l line) width() int {
	w := 0
	for _, s := range l {
		w += hlist.TaggedStringWidth(s.text)
	}
	return w
}

func (l line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.text)
	}
	return b.String()
}

func (l line) draw(screen tcell.Screen, x, y, width int) {
	for _, s := range l {
		if width <= 0 {
			return
		}
		_, printed := hlist.PrintWithStyle(screen, s.text, x, y, width, hlist.AlignmentLeft, s.style)
		x += printed
		width -= printed
	}
}

// bindingSpans returns the key and description of kb, or nil when it has
// no help or is disabled.
func (h *Help) bindingSpans(kb keybind.Keybind) line {
	if !kb.Enabled() {
		return nil
	}
	hp := kb.Help()
	var out line
	if hp.Key != "" {
		out = append(out, span{hp.Key, h.Styles.Key})
	}
	if hp.Key != "" && hp.Desc != "" {
		out = append(out, span{" ", h.Styles.Desc})
	}
	if hp.Desc != "" {
		out = append(out, span{hp.Desc, h.Styles.Desc})
	}
	return out
}

// shortLine joins bindings until the next one would overflow maxWidth, then
// ends with an ellipsis if it fits.
func (h *Help) shortLine(bindings []keybind.Keybind, maxWidth int) line {
	var out line
	for _, kb := range bindings {
		item := h.bindingSpans(kb)
		if len(item) == 0 {
			continue
		}
		next := item
		if len(out) > 0 {
			next = append(line{{h.separator, h.Styles.Separator}}, item...)
		}
		if maxWidth > 0 && out.width()+next.width() > maxWidth {
			return h.withEllipsis(out, maxWidth)
		}
		out = append(out, next...)
	}
	return out
}

func (h *Help) withEllipsis(l line, maxWidth int) line {
	tail := line{{" " + h.ellipsis, h.Styles.Ellipsis}}
	if len(l) == 0 || l.width()+tail.width() > maxWidth {
		return l
	}
	return append(l, tail...)
}

// columns lays groups out side by side. Keys are padded per column so the
// descriptions line up. Groups that do not fit are replaced by an ellipsis.
func (h *Help) columns(groups [][]keybind.Keybind, maxWidth int) []line {
	type column struct {
		keys, descs []string
		keyWidth    int
		width       int
	}

	var cols []column
	for _, group := range groups {
		var c column
		for _, kb := range group {
			if !kb.Enabled() {
				continue
			}
			hp := kb.Help()
			if hp.Key == "" && hp.Desc == "" {
				continue
			}
			c.keys = append(c.keys, hp.Key)
			c.descs = append(c.descs, hp.Desc)
			c.keyWidth = max(c.keyWidth, hlist.TaggedStringWidth(hp.Key))
		}
		if len(c.keys) == 0 {
			continue
		}
		for _, desc := range c.descs {
			c.width = max(c.width, c.keyWidth+1+hlist.TaggedStringWidth(desc))
		}
		cols = append(cols, c)
	}
	if len(cols) == 0 {
		return nil
	}

	used, fit := 0, 0
	for i, c := range cols {
		w := c.width
		if i > 0 {
			w += h.columnGap
		}
		if maxWidth > 0 && used+w > maxWidth {
			break
		}
		used += w
		fit++
	}
	if fit == 0 {
		return []line{{{h.ellipsis, h.Styles.Ellipsis}}}
	}
	truncated := fit < len(cols)
	cols = cols[:fit]

	rows := 0
	for _, c := range cols {
		rows = max(rows, len(c.keys))
	}

	gap := strings.Repeat(" ", h.columnGap)
	lines := make([]line, rows)
	for row := range lines {
		var l line
		for i, c := range cols {
			if i > 0 {
				l = append(l, span{gap, h.Styles.Separator})
			}
			if row >= len(c.keys) {
				l = append(l, span{strings.Repeat(" ", c.width), h.Styles.Desc})
				continue
			}
			key := c.keys[row]
			pad := c.keyWidth - hlist.TaggedStringWidth(key)
			cell := line{
				{key + strings.Repeat(" ", pad), h.Styles.Key},
				{" " + c.descs[row], h.Styles.Desc},
			}
			if fill := c.width - cell.width(); fill > 0 {
				cell = append(cell, span{strings.Repeat(" ", fill), h.Styles.Desc})
			}
			l = append(l, cell...)
		}
		lines[row] = l
	}
	if truncated {
		lines[0] = h.withEllipsis(lines[0], maxWidth)
	}
	return lines
}

var _ hlist.ListItem = (*Help)(nil)
