package hlist

import (
	"fmt"
	"strings"

	"github.com/xqrs/hlist/locale"
)

// Mode selects how a HeterogeneousList turns its data into rows. It is fixed
// for the lifetime of a list.
type Mode int

const (
	// ModeRegistry renders items through Config.Registry, keyed by each
	// item's kind.
	ModeRegistry Mode = iota + 1
	// ModeRenderItem renders items through Config.RenderItem.
	ModeRenderItem
	// ModeElements shows pre-built elements as they are.
	ModeElements
)

func (m Mode) String() string {
	switch m {
	case ModeRegistry:
		return "registry"
	case ModeRenderItem:
		return "renderItem"
	case ModeElements:
		return "elements"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the names returned by Mode.String, case-insensitively.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "registry":
		return ModeRegistry, nil
	case "renderitem", "render-item", "render_item":
		return ModeRenderItem, nil
	case "elements":
		return ModeElements, nil
	}
	return 0, fmt.Errorf("unknown mode %q", name)
}

// DividerMode selects what is drawn between consecutive rows.
type DividerMode int

const (
	DividerNone DividerMode = iota
	DividerLine
	DividerDashed
	// DividerCustom draws the row returned by Config.RenderDivider.
	DividerCustom
)

// ParseDividerMode maps a settings name to a divider mode.
func ParseDividerMode(name string) (DividerMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return DividerNone, nil
	case "line":
		return DividerLine, nil
	case "dashed":
		return DividerDashed, nil
	case "custom":
		return DividerCustom, nil
	}
	return DividerNone, fmt.Errorf("unknown divider %q", name)
}

// Kinded is implemented by items that name their registry entry.
type Kinded interface {
	KindComponent() string
}

// RenderFunc turns one item into a row.
type RenderFunc[T any] func(item T, index int) ListItem

// Registry maps an item kind to its renderer.
type Registry[T any] map[string]RenderFunc[T]

// Config describes a HeterogeneousList. Exactly one mode's inputs may be set;
// Validate enforces this. A nil slice or map counts as absent while an empty
// one counts as present.
type Config[T any] struct {
	Mode Mode

	// Items is caller-owned data shown from the start. SetItems replaces it.
	Items []T
	// InitialItems seeds the list once when it mounts.
	InitialItems []T
	// DataLoader fetches further pages of items.
	DataLoader Loader[T]
	Registry   Registry[T]
	// KindOf names an item's registry entry. Items implementing Kinded
	// do not need it.
	KindOf     func(item T) string
	RenderItem RenderFunc[T]

	Elements        []ListItem
	InitialElements []ListItem
	ElementsLoader  Loader[ListItem]

	// PageSize is the limit passed to loaders. Zero means DefaultPageSize.
	PageSize int
	// InfiniteScroll loads the next page when the trailing anchor becomes
	// visible. When false the list loads once on mount and waits for
	// LoadMore.
	InfiniteScroll bool
	// PreserveScrollPosition keeps the viewport still while rows are
	// appended.
	PreserveScrollPosition bool
	// RootMargin grows the viewport by this many rows, above and below,
	// when deciding whether the anchor is visible.
	RootMargin int
	// Threshold is the share of the anchor's rows, between 0 and 1, that
	// must be visible.
	Threshold float64

	Divider       DividerMode
	RenderDivider func(index int) ListItem
	// Gap is the number of blank rows between rows.
	Gap int
	// ScrollBar draws a scroll bar in the rightmost column.
	ScrollBar bool

	// Fallback replaces rows that could not be rendered. The default is a
	// dim line naming the problem.
	Fallback func(err *RenderLookupError) ListItem

	OnLoad  func(page, count int)
	OnEnd   func()
	OnError func(err error)

	// Translator provides the status row strings. Nil uses English.
	Translator *locale.Translator
}

// DefaultPageSize is used when Config.PageSize is zero.
const DefaultPageSize = 20

// DefaultConfig returns a configuration with the usual defaults. Mode and
// the data inputs are left for the caller.
func DefaultConfig[T any]() Config[T] {
	return Config[T]{
		PageSize:               DefaultPageSize,
		InfiniteScroll:         true,
		PreserveScrollPosition: true,
		RootMargin:             1,
		Threshold:              0,
	}
}

func (c Config[T]) pageSize() int {
	if c.PageSize <= 0 {
		return DefaultPageSize
	}
	return c.PageSize
}
