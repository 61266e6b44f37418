// Package loaders provides ready-made page loaders and loader decorators.
package loaders

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/xqrs/hlist"
)

// FromSlice serves data in pages of the requested limit. Pages past the end
// are empty and report no more data.
func FromSlice[E any](data []E) hlist.Loader[E] {
	return func(ctx context.Context, req hlist.PageRequest) (hlist.Page[E], error) {
		if err := ctx.Err(); err != nil {
			return hlist.Page[E]{}, err
		}
		if req.Page < 1 || req.Limit < 1 {
			return hlist.Page[E]{}, fmt.Errorf("loaders: invalid request page=%d limit=%d", req.Page, req.Limit)
		}
		start := (req.Page - 1) * req.Limit
		if start >= len(data) {
			return hlist.Page[E]{}, nil
		}
		end := min(start+req.Limit, len(data))
		page := make([]E, end-start)
		copy(page, data[start:end])
		return hlist.Page[E]{Data: page, HasMore: end < len(data)}, nil
	}
}

// WithTimeout bounds every call of next by d.
func WithTimeout[E any](next hlist.Loader[E], d time.Duration) hlist.Loader[E] {
	return func(ctx context.Context, req hlist.PageRequest) (hlist.Page[E], error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return next(ctx, req)
	}
}

// WithDelay waits d before calling next. Demos use it to make the loading
// state visible.
func WithDelay[E any](next hlist.Loader[E], d time.Duration) hlist.Loader[E] {
	return func(ctx context.Context, req hlist.PageRequest) (hlist.Page[E], error) {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return hlist.Page[E]{}, ctx.Err()
		case <-timer.C:
		}
		return next(ctx, req)
	}
}

// Dedupe shares one call of next between concurrent identical requests. It
// helps when several lists read from the same loader. The shared call keeps
// running when the caller that started it goes away; each caller still stops
// waiting once its own context is done.
func Dedupe[E any](next hlist.Loader[E]) hlist.Loader[E] {
	var group singleflight.Group
	return func(ctx context.Context, req hlist.PageRequest) (hlist.Page[E], error) {
		key := fmt.Sprintf("%d/%d", req.Page, req.Limit)
		shared := context.WithoutCancel(ctx)
		result := group.DoChan(key, func() (any, error) {
			return next(shared, req)
		})
		select {
		case <-ctx.Done():
			return hlist.Page[E]{}, ctx.Err()
		case r := <-result:
			if r.Err != nil {
				return hlist.Page[E]{}, r.Err
			}
			page := r.Val.(hlist.Page[E])
			// Each caller gets its own copy of Data.
			page.Data = append([]E(nil), page.Data...)
			return page, nil
		}
	}
}
