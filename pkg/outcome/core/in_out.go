package core

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Emit produces a pending value resolved with v.
func Emit[T any](ctx context.Context, v T) <-chan T {
	return EmitAll(ctx, v)
}

// EmitAll feeds values into a channel one by one, stopping when ctx is
// done. The channel closes once all values are sent or the feed breaks.
func EmitAll[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// EmitOutcomes wraps each value in a success outcome and feeds the
// stream, for use as a pipeline source.
func EmitOutcomes[T, E any](ctx context.Context, values ...T) <-chan outcome.Outcome[T, E] {
	in := make(chan outcome.Outcome[T, E])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- solo.Succeed[T, E](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// First awaits the first value from out, falling back to defaultV when
// the channel closes empty or ctx is done.
func First[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}

// Collect drains out into a slice until it closes or ctx is done.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}
