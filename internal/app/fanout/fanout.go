// Package fanout runs a function across a slice of items with bounded
// concurrency. It backs the local cascade that removes a list's members.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Each calls fn for every item using at most workers goroutines and returns
// every failure joined with errors.Join, in input order. Items still waiting
// for a worker when ctx is canceled are skipped and report ctx.Err().
//
// workers below 1 is treated as 1.
func Each[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	if len(items) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}

	errs := make([]error, len(items))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			}
			errs[i] = fn(ctx, item)
		})
	}

	wg.Wait()
	return errors.Join(errs...)
}
