package core

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Ready lifts an already resolved outcome into a pending one that
// resolves immediately.
func Ready[T, E any](o outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
	ch := make(chan outcome.Outcome[T, E], 1)
	ch <- o
	close(ch)
	return ch
}

// Resolve awaits a pending outcome. If the channel closes without a
// value or ctx is done first, the zero Outcome is returned (IsEmpty).
func Resolve[T, E any](ctx context.Context,
	pending <-chan outcome.Outcome[T, E]) outcome.Outcome[T, E] {

	select {
	case o, ok := <-pending:
		if !ok {
			var empty outcome.Outcome[T, E]
			return empty
		}
		return o
	case <-ctx.Done():
		var empty outcome.Outcome[T, E]
		return empty
	}
}

// Lift is the one generic lifting rule. It awaits the pending input,
// applies dispatch to the resolved outcome, awaits the dispatched
// result and emits it. The suspension points occur in that fixed order
// within a single goroutine, so no two behavior arguments of the same
// call ever run concurrently. When the input never resolves (closed
// channel, ctx done) the output closes without emitting: an unresolved
// pending stays unresolved, the substrate owns cancellation.
func Lift[In, Out, E, F any](ctx context.Context,
	pending <-chan outcome.Outcome[In, E],
	dispatch func(ctx context.Context, ready outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, F]) <-chan outcome.Outcome[Out, F] {

	out := make(chan outcome.Outcome[Out, F], 1)

	go func() {
		defer close(out)

		select {
		case <-ctx.Done():
			return
		case ready, ok := <-pending:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				return
			case res, running := <-dispatch(ctx, ready):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
				case out <- res:
				}
			}
		}
	}()

	return out
}

// Settle awaits a bare asynchronous value and wraps it into an outcome.
// It is step three of the lifting rule for asynchronous behavior
// arguments: dispatch hands the argument's pending value here and Lift
// awaits the result.
func Settle[V any, Out, F any](ctx context.Context, pending <-chan V,
	wrap func(v V) outcome.Outcome[Out, F]) <-chan outcome.Outcome[Out, F] {

	out := make(chan outcome.Outcome[Out, F], 1)

	go func() {
		defer close(out)

		select {
		case <-ctx.Done():
		case v, ok := <-pending:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
			case out <- wrap(v):
			}
		}
	}()

	return out
}
