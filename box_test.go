package hlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoxInnerRect(t *testing.T) {
	b := NewBox()
	b.SetRect(2, 1, 10, 5)
	require.Equal(t, Rect{X: 2, Y: 1, Width: 10, Height: 5}, b.InnerRect())

	b.SetBorders(BordersAll)
	require.Equal(t, Rect{X: 3, Y: 2, Width: 8, Height: 3}, b.InnerRect())

	b.SetBorders(BordersNone).SetTitle("feed")
	require.Equal(t, Rect{X: 2, Y: 2, Width: 10, Height: 4}, b.InnerRect())

	require.True(t, b.InRect(11, 5))
	require.False(t, b.InRect(12, 5))
}

func TestBoxDirty(t *testing.T) {
	screen := newFakeScreen(10, 3)
	b := NewBox()
	b.SetRect(0, 0, 10, 3)
	require.True(t, b.IsDirty())

	b.Draw(screen)
	require.False(t, b.IsDirty())

	b.SetRect(0, 0, 10, 3)
	require.False(t, b.IsDirty())
	b.Focus(nil)
	require.True(t, b.IsDirty())
}

func TestBoxDrawsBordersAndCutTitle(t *testing.T) {
	screen := newFakeScreen(10, 3)
	b := NewBox().SetBorders(BordersAll).SetTitle("abcdefghijkl").SetTitleAlignment(AlignmentLeft)
	b.SetRect(0, 0, 10, 3)
	b.Draw(screen)

	require.Equal(t, "┌abcdefg…┐", screen.line(0))
	require.Equal(t, "│        │", screen.line(1))
	require.Equal(t, "└────────┘", screen.line(2))
}
