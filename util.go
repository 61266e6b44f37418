package hlist

import "github.com/gdamore/tcell/v3"

// Alignment places text horizontally within its box.
type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// PrintWithStyle prints text on row y within maxWidth cells from x. Text that
// does not fit is cut on the right when left-aligned, on the left when
// right-aligned and on both sides when centered. A style with the default
// background keeps the background already on screen. It returns the number of
// bytes and the width printed.
func PrintWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	return printText(screen, text, x, y, maxWidth, alignment, style, style.GetBackground() == tcell.ColorDefault)
}

type grapheme struct {
	text  string
	width int
}

func graphemes(text string) (out []grapheme, width int) {
	var state *stepState
	for len(text) > 0 {
		var cluster string
		cluster, text, state = step(text, state)
		out = append(out, grapheme{cluster, state.Width()})
		width += state.Width()
	}
	return out, width
}

func printText(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style, keepBackground bool) (bytes, printed int) {
	screenWidth, screenHeight := screen.Size()
	if maxWidth <= 0 || text == "" || y < 0 || y >= screenHeight {
		return 0, 0
	}

	clusters, width := graphemes(text)
	var cut int
	switch alignment {
	case AlignmentRight:
		cut = width - maxWidth
	case AlignmentCenter:
		cut = (width - maxWidth) / 2
	}
	for cut > 0 && len(clusters) > 0 {
		cut -= clusters[0].width
		width -= clusters[0].width
		clusters = clusters[1:]
	}

	right := min(x+maxWidth, screenWidth)
	visible := min(width, maxWidth)
	switch alignment {
	case AlignmentRight:
		x += maxWidth - visible
	case AlignmentCenter:
		x += maxWidth/2 - visible/2
	}

	for _, c := range clusters {
		if x+c.width > right {
			break
		}
		if c.width > 0 {
			cellStyle := style
			if keepBackground {
				_, existing, _ := screen.Get(x, y)
				cellStyle = style.Background(existing.GetBackground())
			}
			// Trailing cells of wide clusters first, so they do not overwrite
			// the cluster itself.
			for offset := c.width - 1; offset > 0; offset-- {
				screen.Put(x+offset, y, " ", cellStyle)
			}
			screen.Put(x, y, c.text, cellStyle)
		}
		x += c.width
		bytes += len(c.text)
		printed += c.width
	}
	return bytes, printed
}
