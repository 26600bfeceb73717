// Package workerpool fans independent work items out to a bounded number of goroutines.
package workerpool

import (
	"context"
	"errors"
	"sync"
)

// Each calls fn for every item on at most workers goroutines. A failing item
// does not stop the others: all errors are joined. Items not yet handed out
// when ctx is done are skipped and ctx.Err() is part of the result.
func Each[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	workers = min(max(workers, 1), len(items))

	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)
	tasks := make(chan T)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if err := fn(ctx, item); err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
				}
			}
		}()
	}

feed:
	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break feed
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
