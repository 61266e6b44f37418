package hlist

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/atomic"
)

// PageRequest is passed to a Loader. Page starts at 1.
type PageRequest struct {
	Page  int
	Limit int
}

// Page is one loader response.
type Page[E any] struct {
	Data    []E
	HasMore bool
}

// Loader fetches one page. It runs on its own goroutine and should honor ctx,
// which is cancelled when the list unmounts.
type Loader[E any] func(ctx context.Context, req PageRequest) (Page[E], error)

// Dispatcher runs functions on the UI goroutine. Application implements it.
type Dispatcher interface {
	Dispatch(f func())
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(f func())

func (d DispatcherFunc) Dispatch(f func()) {
	d(f)
}

// LoadOutcome is how a page request ended.
type LoadOutcome int

const (
	LoadSucceeded LoadOutcome = iota
	LoadFailed
	// LoadCancelled results arrived after Unmount or Reset and were dropped.
	LoadCancelled
)

func (o LoadOutcome) String() string {
	switch o {
	case LoadSucceeded:
		return "succeeded"
	case LoadFailed:
		return "failed"
	case LoadCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("LoadOutcome(%d)", int(o))
	}
}

// ListState is a snapshot of a Pager.
type ListState struct {
	// Page is the next page to request.
	Page int
	// Len is the number of rows held.
	Len     int
	Loading bool
	HasMore bool
	// Err is the last *LoadError, nil once a new attempt starts.
	Err error
}

// PagerOptions configures a Pager.
type PagerOptions[E any] struct {
	PageSize int
	// Initial seeds the data on creation and on Reset.
	Initial []E

	OnLoad  func(page, count int)
	OnEnd   func()
	OnError func(err error)

	// BeforeGrow runs right before the data grows to newCount rows.
	BeforeGrow func(newCount int)
	// OnSettle runs after every request, including cancelled ones.
	OnSettle func(req PageRequest, outcome LoadOutcome)
}

// Pager owns the paginated data of a list. All methods must be called on the
// UI goroutine; loader results are delivered there through the Dispatcher
// given to Mount.
type Pager[E any] struct {
	loader Loader[E]
	opts   PagerOptions[E]

	data    []E
	page    int
	loading bool
	hasMore bool
	err     *LoadError
	// ended is set once OnEnd fired for the current exhaustion.
	ended bool

	dispatcher Dispatcher
	ctx        context.Context
	cancel     context.CancelFunc
	mounted    *atomic.Bool
	mounts     int
	generation *atomic.Uint64
}

// NewPager returns a pager seeded with opts.Initial. A nil loader makes a
// pager without further pages.
func NewPager[E any](loader Loader[E], opts PagerOptions[E]) *Pager[E] {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	p := &Pager[E]{
		loader:     loader,
		opts:       opts,
		mounted:    atomic.NewBool(false),
		generation: atomic.NewUint64(0),
	}
	p.seed()
	return p
}

func (p *Pager[E]) seed() {
	p.data = slices.Clone(p.opts.Initial)
	p.page = 1
	p.loading = false
	p.hasMore = p.loader != nil
	p.err = nil
	p.ended = false
}

// Mount starts accepting loads. Results are handed to d. Mounting again after
// Unmount starts from fresh state.
func (p *Pager[E]) Mount(d Dispatcher) error {
	if d == nil {
		return ErrNoDispatcher
	}
	if p.mounted.Load() {
		p.dispatcher = d
		return nil
	}
	if p.mounts > 0 {
		p.seed()
	}
	p.mounts++
	p.dispatcher = d
	p.ctx, p.cancel = context.WithCancel(context.Background())
	p.mounted.Store(true)
	return nil
}

// Unmount stops accepting loads. The loader context is cancelled and results
// still in flight are dropped when they arrive.
func (p *Pager[E]) Unmount() {
	if !p.mounted.Swap(false) {
		return
	}
	p.generation.Inc()
	p.cancel()
	p.loading = false
}

// Mounted reports whether the pager accepts loads.
func (p *Pager[E]) Mounted() bool {
	return p.mounted.Load()
}

// LoadMore requests the next page. It does nothing while a load is in flight,
// when no more pages exist, without a loader, or while unmounted.
func (p *Pager[E]) LoadMore() {
	if p.loading || !p.hasMore || p.loader == nil || !p.mounted.Load() {
		return
	}

	p.loading = true
	p.err = nil

	req := PageRequest{Page: p.page, Limit: p.opts.PageSize}
	generation := p.generation.Load()
	ctx := p.ctx
	dispatcher := p.dispatcher
	internalLogger().Debug("loading page", "page", req.Page, "limit", req.Limit)

	go func() {
		page, err := p.call(ctx, req)
		dispatcher.Dispatch(func() {
			p.settle(generation, req, page, err)
		})
	}()
}

// call runs the loader and converts a panic into an error.
func (p *Pager[E]) call(ctx context.Context, req PageRequest) (page Page[E], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrLoaderPanic, r)
		}
	}()
	return p.loader(ctx, req)
}

func (p *Pager[E]) settle(generation uint64, req PageRequest, page Page[E], err error) {
	outcome := p.apply(generation, req, page, err)
	if p.opts.OnSettle != nil {
		p.opts.OnSettle(req, outcome)
	}
}

func (p *Pager[E]) apply(generation uint64, req PageRequest, page Page[E], err error) LoadOutcome {
	if generation != p.generation.Load() {
		internalLogger().Debug("dropping stale page", "page", req.Page, "error", err)
		return LoadCancelled
	}

	p.loading = false
	if err != nil {
		p.err = &LoadError{Page: req.Page, Err: err}
		internalLogger().Debug("page failed", "page", req.Page, "error", err)
		if p.opts.OnError != nil {
			p.opts.OnError(p.err)
		}
		return LoadFailed
	}

	if n := len(page.Data); n > 0 {
		if p.opts.BeforeGrow != nil {
			p.opts.BeforeGrow(len(p.data) + n)
		}
		p.data = append(p.data, page.Data...)
	}
	p.hasMore = page.HasMore
	p.page++
	internalLogger().Debug("page loaded", "page", req.Page, "count", len(page.Data), "has_more", page.HasMore)

	if p.opts.OnLoad != nil {
		p.opts.OnLoad(req.Page, len(page.Data))
	}
	if !p.hasMore && !p.ended {
		p.ended = true
		if p.opts.OnEnd != nil {
			p.opts.OnEnd()
		}
	}
	return LoadSucceeded
}

// Retry clears the last error and requests the same page again. Without an
// error it behaves exactly like LoadMore.
func (p *Pager[E]) Retry() {
	p.err = nil
	p.LoadMore()
}

// SetData replaces the held rows and keeps the pagination bookkeeping.
func (p *Pager[E]) SetData(data []E) {
	if len(data) > len(p.data) && p.opts.BeforeGrow != nil {
		p.opts.BeforeGrow(len(data))
	}
	p.data = slices.Clone(data)
}

// SetInitial changes what Reset seeds the data with.
func (p *Pager[E]) SetInitial(data []E) {
	p.opts.Initial = slices.Clone(data)
}

// Reset returns to page 1 with the initial data. Loads in flight are
// dropped and OnEnd may fire again.
func (p *Pager[E]) Reset() {
	p.generation.Inc()
	if p.mounted.Load() {
		p.cancel()
		p.ctx, p.cancel = context.WithCancel(context.Background())
	}
	p.seed()
}

// Data returns the held rows. The slice must not be modified.
func (p *Pager[E]) Data() []E {
	return p.data
}

// Len returns the number of held rows.
func (p *Pager[E]) Len() int {
	return len(p.data)
}

// HasLoader reports whether the pager was created with a loader.
func (p *Pager[E]) HasLoader() bool {
	return p.loader != nil
}

// State returns a snapshot of the pager.
func (p *Pager[E]) State() ListState {
	state := ListState{
		Page:    p.page,
		Len:     len(p.data),
		Loading: p.loading,
		HasMore: p.hasMore,
	}
	if p.err != nil {
		state.Err = p.err
	}
	return state
}
