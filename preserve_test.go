package hlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScrollPreserverRestoresAfterGrowth(t *testing.T) {
	p := NewScrollPreserver(true, 10)
	before := ScrollPosition{Top: 4, Offset: 1}

	p.Capture(20, before)
	pos, ok := p.Restore()
	require.True(t, ok)
	require.Equal(t, before, pos)
	require.Equal(t, 20, p.Count())

	_, ok = p.Restore()
	require.False(t, ok)
}

func TestScrollPreserverIgnoresShrinking(t *testing.T) {
	p := NewScrollPreserver(true, 20)
	p.Capture(10, ScrollPosition{Top: 3})
	_, ok := p.Restore()
	require.False(t, ok)
	require.Equal(t, 10, p.Count())

	p.Capture(10, ScrollPosition{Top: 3})
	_, ok = p.Restore()
	require.False(t, ok)
}

func TestScrollPreserverKeepsFirstCapture(t *testing.T) {
	p := NewScrollPreserver(true, 0)
	p.Capture(5, ScrollPosition{Top: 1})
	p.Capture(9, ScrollPosition{Top: 7})

	pos, ok := p.Restore()
	require.True(t, ok)
	require.Equal(t, ScrollPosition{Top: 1}, pos)
	require.Equal(t, 9, p.Count())
}

func TestScrollPreserverDisabled(t *testing.T) {
	p := NewScrollPreserver(false, 10)
	p.Capture(20, ScrollPosition{Top: 2})
	_, ok := p.Restore()
	require.False(t, ok)

	p = NewScrollPreserver(true, 10)
	p.Capture(20, ScrollPosition{Top: 2})
	p.SetEnabled(false)
	p.SetEnabled(true)
	_, ok = p.Restore()
	require.False(t, ok)
}
