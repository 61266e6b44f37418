package hlist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func labels(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s %d", prefix, i)
	}
	return out
}

func renderLabel(item string, index int) ListItem {
	return NewText(item)
}

// labelLoader serves total labels and fails the calls listed in failOn.
func labelLoader(total int, calls *atomic.Int64, failOn ...int64) Loader[string] {
	all := labels("item", total)
	return func(ctx context.Context, req PageRequest) (Page[string], error) {
		call := calls.Inc()
		for _, n := range failOn {
			if call == n {
				return Page[string]{}, errors.New("boom")
			}
		}
		start := min((req.Page-1)*req.Limit, total)
		end := min(start+req.Limit, total)
		return Page[string]{Data: all[start:end], HasMore: end < total}, nil
	}
}

func newTestList(t *testing.T, cfg Config[string], width, height int) (*HeterogeneousList[string], *queueDispatcher, *fakeScreen) {
	t.Helper()
	l, err := NewHeterogeneousList(cfg)
	require.NoError(t, err)
	l.SetRect(0, 0, width, height)
	d := newQueueDispatcher()
	require.NoError(t, l.Mount(d))
	return l, d, newFakeScreen(width, height)
}

func TestNewHeterogeneousListRejectsInvalidConfig(t *testing.T) {
	l, err := NewHeterogeneousList(Config[string]{Mode: ModeRegistry, Items: []string{"a"}})
	require.Nil(t, l)
	require.True(t, IsConfigurationError(err))
}

func TestHeterogeneousListDrawsRowsAndDividers(t *testing.T) {
	l, _, screen := newTestList(t, Config[string]{
		Mode:       ModeRenderItem,
		Items:      []string{"alpha", "beta"},
		RenderItem: renderLabel,
		Divider:    DividerLine,
	}, 40, 6)

	l.Draw(screen)

	require.Equal(t, "  alpha", screen.line(0))
	require.Equal(t, "  "+strings.Repeat(BoxDrawingsLightHorizontal, 38), screen.line(1))
	require.Equal(t, "  beta", screen.line(2))
	require.Contains(t, screen.line(3), "End of list")
	require.Contains(t, screen.line(3), "2 items")
	require.Equal(t, AnchorEnd, l.Anchor().Status())
}

func TestHeterogeneousListRegistryMode(t *testing.T) {
	l, err := NewHeterogeneousList(Config[feedEntry]{
		Mode:     ModeRegistry,
		Items:    []feedEntry{{"note", "a"}, {"poll", "b"}, {"task", "c"}},
		Registry: entryRegistry(),
	})
	require.NoError(t, err)
	l.SetRect(0, 0, 60, 5)
	require.NoError(t, l.Mount(newQueueDispatcher()))
	require.Equal(t, ModeRegistry, l.Mode())

	screen := newFakeScreen(60, 5)
	l.Draw(screen)

	require.Equal(t, "  note: a", screen.line(0))
	require.Contains(t, screen.line(1), `no renderer registered for kind "poll"`)
	require.Equal(t, "  task: c", screen.line(2))
}

func TestHeterogeneousListElementsMode(t *testing.T) {
	first := NewText("first")
	l, _, screen := newTestList(t, Config[string]{
		Mode:     ModeElements,
		Elements: []ListItem{first, NewText("second")},
		Gap:      1,
	}, 30, 6)

	l.Draw(screen)
	require.Equal(t, "  first", screen.line(0))
	require.Equal(t, "", screen.line(1))
	require.Equal(t, "  second", screen.line(2))
	require.Same(t, first, l.Elements()[0])
	require.Nil(t, l.Items())

	l.SetElements([]ListItem{NewText("only")})
	screen.clear()
	l.Draw(screen)
	require.Equal(t, "  only", screen.line(0))
}

func TestHeterogeneousListWithoutInfiniteScrollLoadsOnce(t *testing.T) {
	calls := atomic.NewInt64(0)
	l, d, screen := newTestList(t, Config[string]{
		Mode:       ModeRenderItem,
		DataLoader: labelLoader(50, calls),
		RenderItem: renderLabel,
		PageSize:   10,
	}, 40, 30)

	require.True(t, l.State().Loading)
	d.next(t)
	for range 3 {
		l.Draw(screen)
		d.flush()
	}

	require.EqualValues(t, 1, calls.Load())
	require.Equal(t, 10, l.Len())
	require.Zero(t, l.Sentinel().Attachments())
	require.Equal(t, AnchorManual, l.Anchor().Status())
	require.Contains(t, screen.line(10), "Load more")

	l.LoadMore()
	d.next(t)
	require.EqualValues(t, 2, calls.Load())
	require.Equal(t, 20, l.Len())
	require.Zero(t, l.Sentinel().Attachments())
}

func TestHeterogeneousListInfiniteScrollLoadsOnDraw(t *testing.T) {
	calls := atomic.NewInt64(0)
	ends := 0
	cfg := DefaultConfig[string]()
	cfg.Mode = ModeRenderItem
	cfg.DataLoader = labelLoader(9, calls)
	cfg.RenderItem = renderLabel
	cfg.PageSize = 3
	cfg.OnEnd = func() { ends++ }
	l, d, screen := newTestList(t, cfg, 40, 20)

	require.True(t, l.Sentinel().Observing())
	require.Zero(t, calls.Load())

	for i := 0; i < 10 && l.State().HasMore; i++ {
		l.Draw(screen)
		d.settle(t, func() bool { return !l.State().Loading })
	}

	require.EqualValues(t, 3, calls.Load())
	require.Equal(t, labels("item", 9), l.Items())
	require.Equal(t, 1, ends)
	require.False(t, l.Sentinel().Observing())

	screen.clear()
	l.Draw(screen)
	d.flush()
	require.EqualValues(t, 3, calls.Load())
	require.Equal(t, "  item 8", screen.line(8))
	require.Contains(t, screen.line(9), "9 items")
}

func TestHeterogeneousListWaitsForAnchorToScrollIntoView(t *testing.T) {
	calls := atomic.NewInt64(0)
	cfg := DefaultConfig[string]()
	cfg.Mode = ModeRenderItem
	cfg.DataLoader = labelLoader(100, calls)
	cfg.RenderItem = renderLabel
	cfg.PageSize = 10
	cfg.RootMargin = 0
	l, d, screen := newTestList(t, cfg, 40, 5)

	l.Draw(screen)
	d.settle(t, func() bool { return l.Len() == 10 })

	l.Draw(screen)
	d.flush()
	require.EqualValues(t, 1, calls.Load())
	require.False(t, l.Anchor().Placed())

	l.ScrollToEnd()
	l.Draw(screen)
	require.True(t, l.Anchor().Placed())
	d.settle(t, func() bool { return l.Len() == 20 })
	require.EqualValues(t, 2, calls.Load())
}

func TestHeterogeneousListRetryAfterFailure(t *testing.T) {
	calls := atomic.NewInt64(0)
	var reported []error
	l, d, screen := newTestList(t, Config[string]{
		Mode:       ModeRenderItem,
		DataLoader: labelLoader(30, calls, 1),
		RenderItem: renderLabel,
		PageSize:   10,
		OnError:    func(err error) { reported = append(reported, err) },
	}, 60, 20)

	d.next(t)
	require.Equal(t, AnchorFailed, l.Anchor().Status())
	require.Len(t, reported, 1)

	l.Draw(screen)
	require.Contains(t, screen.line(0), "Could not load page 1: boom")
	require.Contains(t, screen.line(0), "Retry")

	l.Retry()
	d.next(t)
	require.NoError(t, l.State().Err)
	require.Equal(t, 10, l.Len())
	require.Equal(t, 2, l.State().Page)
}

func TestHeterogeneousListAnchorActivation(t *testing.T) {
	calls := atomic.NewInt64(0)
	l, d, _ := newTestList(t, Config[string]{
		Mode:       ModeRenderItem,
		DataLoader: labelLoader(30, calls, 2),
		RenderItem: renderLabel,
		PageSize:   10,
	}, 40, 20)
	d.next(t)

	l.SetCursor(10)
	require.Equal(t, 10, l.Cursor())
	require.True(t, l.activate())
	d.next(t)
	require.Equal(t, AnchorFailed, l.Anchor().Status())

	require.True(t, l.activate())
	d.next(t)
	require.Equal(t, 20, l.Len())
	require.EqualValues(t, 3, calls.Load())
}

func TestHeterogeneousListCursor(t *testing.T) {
	var changes, selections []int
	l, _, screen := newTestList(t, Config[string]{
		Mode:       ModeRenderItem,
		Items:      labels("row", 3),
		RenderItem: renderLabel,
	}, 30, 10)
	l.SetChangedFunc(func(index int) { changes = append(changes, index) })
	l.SetSelectedFunc(func(index int) { selections = append(selections, index) })

	require.Equal(t, -1, l.Cursor())
	require.False(t, l.PrevItem())
	require.True(t, l.NextItem())
	require.True(t, l.NextItem())
	require.True(t, l.NextItem())
	require.False(t, l.NextItem())
	require.True(t, l.PrevItem())
	require.Equal(t, []int{0, 1, 2, 1}, changes)

	l.SetCursor(99)
	require.Equal(t, 1, l.Cursor())

	require.True(t, l.activate())
	require.Equal(t, []int{1}, selections)

	l.Draw(screen)
	require.Equal(t, SemigraphicsCursor+" row 1", screen.line(1))
	require.Equal(t, "  row 0", screen.line(0))
}

func TestHeterogeneousListShrinkMovesCursorOffInactiveAnchor(t *testing.T) {
	l, _, _ := newTestList(t, Config[string]{
		Mode:       ModeRenderItem,
		Items:      labels("row", 5),
		RenderItem: renderLabel,
	}, 30, 10)
	l.SetCursor(4)

	l.SetItems(labels("row", 2))
	require.Equal(t, AnchorEnd, l.Anchor().Status())
	require.Equal(t, 1, l.Cursor())

	l.SetItems(nil)
	require.Equal(t, -1, l.Cursor())
}

func TestHeterogeneousListShrinkKeepsCursorOnActionableAnchor(t *testing.T) {
	calls := atomic.NewInt64(0)
	l, d, _ := newTestList(t, Config[string]{
		Mode:       ModeRenderItem,
		DataLoader: labelLoader(50, calls),
		RenderItem: renderLabel,
		PageSize:   10,
	}, 40, 20)
	d.next(t)
	l.SetCursor(9)

	l.SetItems(labels("row", 3))
	require.Equal(t, AnchorManual, l.Anchor().Status())
	require.Equal(t, 3, l.Cursor())
}

func TestHeterogeneousListMouseSelect(t *testing.T) {
	l, _, screen := newTestList(t, Config[string]{
		Mode:       ModeRenderItem,
		Items:      labels("row", 3),
		RenderItem: renderLabel,
	}, 30, 10)
	l.Draw(screen)

	_, cmd := l.MouseHandler(MouseLeftClick, tcell.NewEventMouse(5, 2, tcell.Button1, tcell.ModNone))
	require.Equal(t, 2, l.Cursor())
	require.Equal(t, SetFocusCommand{Target: l}, cmd)

	_, cmd = l.MouseHandler(MouseLeftClick, tcell.NewEventMouse(5, 40, tcell.Button1, tcell.ModNone))
	require.Nil(t, cmd)
}

func TestHeterogeneousListClickLoadMore(t *testing.T) {
	calls := atomic.NewInt64(0)
	l, d, screen := newTestList(t, Config[string]{
		Mode:       ModeRenderItem,
		DataLoader: labelLoader(50, calls),
		RenderItem: renderLabel,
		PageSize:   10,
	}, 40, 20)
	d.next(t)
	l.Draw(screen)
	require.Contains(t, screen.line(10), "Load more")

	// Beside the button nothing loads.
	_, cmd := l.MouseHandler(MouseLeftClick, tcell.NewEventMouse(3, 10, tcell.Button1, tcell.ModNone))
	require.Equal(t, SetFocusCommand{Target: l}, cmd)
	require.False(t, l.State().Loading)

	_, cmd = l.MouseHandler(MouseLeftClick, tcell.NewEventMouse(20, 10, tcell.Button1, tcell.ModNone))
	require.Equal(t, BatchCommand{SetFocusCommand{Target: l}, RedrawCommand{}}, cmd)
	d.next(t)
	require.EqualValues(t, 2, calls.Load())
	require.Equal(t, 20, l.Len())
}

func TestHeterogeneousListReset(t *testing.T) {
	calls := atomic.NewInt64(0)
	l, d, _ := newTestList(t, Config[string]{
		Mode:       ModeRenderItem,
		DataLoader: labelLoader(50, calls),
		RenderItem: renderLabel,
		PageSize:   10,
	}, 40, 20)
	d.next(t)
	l.LoadMore()
	d.next(t)
	require.Equal(t, 20, l.Len())
	l.SetCursor(5)

	l.Reset()
	require.Equal(t, -1, l.Cursor())
	require.Zero(t, l.Len())
	require.True(t, l.State().Loading)

	d.next(t)
	require.Equal(t, 10, l.Len())
	require.Equal(t, 2, l.State().Page)
}

func TestHeterogeneousListUnmount(t *testing.T) {
	calls := atomic.NewInt64(0)
	cfg := DefaultConfig[string]()
	cfg.Mode = ModeRenderItem
	cfg.DataLoader = labelLoader(50, calls)
	cfg.RenderItem = renderLabel
	l, d, screen := newTestList(t, cfg, 40, 10)
	require.True(t, l.Sentinel().Observing())

	l.Draw(screen)
	require.True(t, l.State().Loading)

	l.Unmount()
	require.False(t, l.Mounted())
	require.False(t, l.Sentinel().Observing())
	d.flush()
	d.settle(t, func() bool { return d.dispatched() >= 2 })
	d.flush()
	require.Zero(t, l.Len())

	l.Draw(screen)
	l.LoadMore()
	require.False(t, l.State().Loading)
}

func TestHeterogeneousListPreservesScrollOnGrowth(t *testing.T) {
	for _, preserve := range []bool{true, false} {
		t.Run(fmt.Sprint(preserve), func(t *testing.T) {
			l, _, screen := newTestList(t, Config[string]{
				Mode:                   ModeRenderItem,
				Items:                  labels("item", 20),
				RenderItem:             renderLabel,
				PreserveScrollPosition: preserve,
			}, 30, 5)
			l.Draw(screen)
			l.SetScrollPosition(ScrollPosition{Top: 5})
			l.Draw(screen)
			require.Equal(t, ScrollPosition{Top: 5}, l.ScrollPosition())

			l.SetItems(labels("item", 40))
			l.ScrollToStart()
			screen.clear()
			l.Draw(screen)

			if preserve {
				require.Equal(t, ScrollPosition{Top: 5}, l.ScrollPosition())
				require.Equal(t, "  item 5", screen.line(0))
			} else {
				require.Equal(t, ScrollPosition{}, l.ScrollPosition())
				require.Equal(t, "  item 0", screen.line(0))
			}
		})
	}
}

func TestHeterogeneousListMountTwiceLoadsOnce(t *testing.T) {
	calls := atomic.NewInt64(0)
	l, d, _ := newTestList(t, Config[string]{
		Mode:       ModeRenderItem,
		DataLoader: labelLoader(50, calls),
		RenderItem: renderLabel,
	}, 40, 10)
	require.NoError(t, l.Mount(d))
	d.next(t)
	d.flush()
	require.EqualValues(t, 1, calls.Load())
	require.ErrorIs(t, l.Mount(nil), ErrNoDispatcher)
}
