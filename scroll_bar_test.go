package hlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThumb(t *testing.T) {
	require.Zero(t, thumb(10, 5, 5, 0).size)
	require.Zero(t, thumb(0, 50, 5, 0).size)

	m := thumb(10, 40, 10, 0)
	require.Equal(t, 2*subcell+subcell/2, m.size)
	require.Zero(t, m.start)

	m = thumb(10, 40, 10, 30)
	require.Equal(t, 10*subcell, m.start+m.size)

	m = thumb(4, 1000, 4, 10)
	require.Equal(t, subcell, m.size)
}

func TestThumbFill(t *testing.T) {
	m := thumbMetrics{cells: 4, start: 4, size: 8}
	start, size := m.fill(0)
	require.Equal(t, 4, start)
	require.Equal(t, 4, size)
	start, size = m.fill(1)
	require.Zero(t, start)
	require.Equal(t, 4, size)
	_, size = m.fill(2)
	require.Zero(t, size)
}

func TestScrollBarDraw(t *testing.T) {
	screen := newFakeScreen(1, 4)
	bar := NewScrollBar().SetPosition(8, 4, 0)
	bar.SetRect(0, 0, 1, 4)
	bar.Draw(screen)

	glyphs := DefaultScrollGlyphs()
	require.Equal(t, glyphs.ThumbLower[subcell-1], screen.line(0))
	require.Equal(t, glyphs.ThumbLower[subcell-1], screen.line(1))
	require.Equal(t, glyphs.Track, screen.line(2))
	require.Equal(t, glyphs.Track, screen.line(3))

	screen.clear()
	bar.SetPosition(3, 3, 0).SetHasMore(true).Draw(screen)
	require.Equal(t, glyphs.Track, screen.line(0))
	require.Equal(t, glyphs.More, screen.line(3))

	screen.clear()
	bar.SetHasMore(false).Draw(screen)
	for y := range 4 {
		require.Empty(t, screen.line(y))
	}
}

func TestHeterogeneousListScrollBar(t *testing.T) {
	l, _, screen := newTestList(t, Config[string]{
		Mode:       ModeRenderItem,
		Items:      labels("item", 20),
		RenderItem: renderLabel,
		ScrollBar:  true,
	}, 20, 5)
	l.Draw(screen)

	line := []rune(screen.line(0))
	require.Len(t, line, 20)
	require.Equal(t, "  item 0", string(line[:8]))
	require.Equal(t, DefaultScrollGlyphs().ThumbLower[subcell-1], string(line[19]))
}
