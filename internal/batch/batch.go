// Package batch fans conversions out over a bounded number of goroutines.
package batch

import (
	"context"
	"sync"
)

// DefaultConcurrency bounds in-flight calls when Map is given a
// non-positive limit.
const DefaultConcurrency = 8

// Result is the outcome for one input, at the same index as the input.
type Result[T any] struct {
	Value T
	Err   error
}

// Map calls fn for every input with at most limit calls in flight and
// returns results in input order. Once ctx is done, inputs that have not
// started are marked with ctx.Err() instead of being run.
func Map[In, Out any](ctx context.Context, inputs []In, limit int, fn func(context.Context, In) (Out, error)) []Result[Out] {
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	results := make([]Result[Out], len(inputs))
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i, in := range inputs {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			for j := i; j < len(inputs); j++ {
				results[j].Err = ctx.Err()
			}
			wg.Wait()
			return results
		}

		wg.Add(1)
		go func(i int, in In) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}
			results[i].Value, results[i].Err = fn(ctx, in)
		}(i, in)
	}

	wg.Wait()
	return results
}
