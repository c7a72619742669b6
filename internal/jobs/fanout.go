// Package jobs runs batches of independent work items with bounded
// concurrency.
package jobs

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FanOut calls fn for every item with at most limit calls in flight and
// returns one result per item in input order. Item failures belong in R:
// one item never stops the others. Items not yet started when ctx is done
// get skip(item, ctx.Err()) instead of fn.
func FanOut[T, R any](
	ctx context.Context,
	items []T,
	limit int,
	fn func(ctx context.Context, item T) R,
	skip func(item T, err error) R,
) []R {
	if limit < 1 {
		limit = 1
	}
	results := make([]R, len(items))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = skip(item, err)
				return nil
			}
			results[i] = fn(ctx, item)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
