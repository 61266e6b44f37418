package hlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// placedAnchor returns an anchor laid out at row y of a 20 column list.
func placedAnchor(y int) *Anchor {
	a := NewAnchor(nil)
	a.SetRect(0, y, 20, 1)
	a.setPlaced(true)
	return a
}

func TestSentinelFiresOncePerEntry(t *testing.T) {
	fired := 0
	s := NewSentinel(func() { fired++ }, SentinelOptions{Enabled: true})
	anchor := placedAnchor(15)
	s.SetRef(anchor)
	viewport := Rect{X: 0, Y: 0, Width: 20, Height: 10}

	s.Check(viewport)
	require.Zero(t, fired)

	anchor.SetRect(0, 5, 20, 1)
	s.Check(viewport)
	s.Check(viewport)
	require.Equal(t, 1, fired)

	anchor.SetRect(0, 30, 20, 1)
	s.Check(viewport)
	anchor.SetRect(0, 9, 20, 1)
	s.Check(viewport)
	require.Equal(t, 2, fired)
}

func TestSentinelIgnoresUnplacedAnchor(t *testing.T) {
	fired := 0
	s := NewSentinel(func() { fired++ }, SentinelOptions{Enabled: true})
	anchor := placedAnchor(2)
	anchor.setPlaced(false)
	s.SetRef(anchor)

	s.Check(Rect{Width: 20, Height: 10})
	require.Zero(t, fired)
}

func TestSentinelDisabledNeverFires(t *testing.T) {
	fired := 0
	s := NewSentinel(func() { fired++ }, SentinelOptions{})
	s.SetRef(placedAnchor(0))

	s.Check(Rect{Width: 20, Height: 10})
	require.Zero(t, fired)
	require.False(t, s.Observing())
	require.Zero(t, s.Attachments())
}

func TestSentinelDisablingIsImmediate(t *testing.T) {
	fired := 0
	s := NewSentinel(func() { fired++ }, SentinelOptions{Enabled: true})
	s.SetRef(placedAnchor(3))
	require.True(t, s.Observing())

	s.SetEnabled(false)
	require.False(t, s.Enabled())
	require.False(t, s.Observing())
	s.Check(Rect{Width: 20, Height: 10})
	require.Zero(t, fired)

	s.SetEnabled(true)
	s.Check(Rect{Width: 20, Height: 10})
	require.Equal(t, 1, fired)
}

func TestSentinelReattachDisconnectsPrevious(t *testing.T) {
	s := NewSentinel(nil, SentinelOptions{Enabled: true})
	s.SetRef(placedAnchor(0))
	first := s.observer
	require.Equal(t, 1, s.Attachments())

	s.SetRef(placedAnchor(1))
	require.False(t, first.Connected())
	require.True(t, s.observer.Connected())
	require.Equal(t, 2, s.Attachments())

	same := s.anchor
	s.SetRef(same)
	require.Equal(t, 2, s.Attachments())

	s.SetRef(nil)
	require.False(t, s.Observing())
}

func TestSentinelRootMargin(t *testing.T) {
	fired := 0
	s := NewSentinel(func() { fired++ }, SentinelOptions{Enabled: true, RootMargin: 2})
	s.SetRef(placedAnchor(11))

	s.Check(Rect{Width: 20, Height: 10})
	require.Equal(t, 1, fired)

	fired = 0
	s = NewSentinel(func() { fired++ }, SentinelOptions{Enabled: true, RootMargin: 2})
	s.SetRef(placedAnchor(12))
	s.Check(Rect{Width: 20, Height: 10})
	require.Zero(t, fired)
}

func TestSentinelThreshold(t *testing.T) {
	fired := 0
	s := NewSentinel(func() { fired++ }, SentinelOptions{Enabled: true, Threshold: 0.5})
	anchor := NewAnchor(nil)
	anchor.SetRect(0, 8, 20, 4)
	anchor.setPlaced(true)
	s.SetRef(anchor)

	s.Check(Rect{Width: 20, Height: 9})
	require.Zero(t, fired)

	s.Check(Rect{Width: 20, Height: 10})
	require.Equal(t, 1, fired)
}

func TestSentinelDisconnect(t *testing.T) {
	fired := 0
	s := NewSentinel(func() { fired++ }, SentinelOptions{Enabled: true})
	s.SetRef(placedAnchor(0))
	s.Disconnect()

	s.Check(Rect{Width: 20, Height: 10})
	require.Zero(t, fired)
	require.False(t, s.Observing())
}
