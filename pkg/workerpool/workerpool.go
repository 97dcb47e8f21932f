// Package workerpool provides bounded concurrent processing utilities.
package workerpool

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Process runs process over items with at most workerCount concurrent calls. The first
// error cancels the context passed to the remaining calls and is returned.
func Process[T any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workerCount, 1))

	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		item := item
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return process(ctx, item)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// ProcessAll runs process over every item with at most workerCount concurrent calls and
// returns all errors joined. Failures do not stop the remaining items.
func ProcessAll[T any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) error) error {
	var (
		mu   sync.Mutex
		errs []error
	)
	g := new(errgroup.Group)
	g.SetLimit(max(workerCount, 1))

	for _, item := range items {
		item := item
		g.Go(func() error {
			if err := process(ctx, item); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}
