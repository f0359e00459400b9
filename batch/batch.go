// Package batch runs a codec over many strings concurrently while keeping their order.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"urlencoder/encoding"

	"golang.org/x/sync/errgroup"
)

// ItemError is returned by Decode when one of the inputs could not be decoded.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

// Unwrap returns the codec error.
func (e *ItemError) Unwrap() error {
	return e.Err
}

// Encode encodes every input with c, using up to the given number of workers. Zero or less workers means one per CPU.
func Encode(ctx context.Context, c *encoding.Codec, inputs []string, workers int) ([]string, error) {
	return run(ctx, inputs, workers, func(s string) (string, error) {
		return c.Encode(s), nil
	})
}

// Decode decodes every input with c, using up to the given number of workers.
// The first failure stops the remaining work and is returned as an *ItemError. No partial results are returned.
func Decode(ctx context.Context, c *encoding.Codec, inputs []string, workers int) ([]string, error) {
	return run(ctx, inputs, workers, c.Decode)
}

func run(ctx context.Context, inputs []string, workers int, f func(string) (string, error)) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}

	out := make([]string, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	indexes := make(chan int)

	g.Go(func() error {
		defer close(indexes)
		for i := range inputs {
			select {
			case indexes <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range indexes {
				s, err := f(inputs[i])
				if err != nil {
					return &ItemError{Index: i, Err: err}
				}
				out[i] = s
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
