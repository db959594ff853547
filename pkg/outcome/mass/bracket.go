package mass

import (
	"context"
	"io"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/core"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Using is the pending-input bracket with a synchronous operation.
func Using[R io.Closer, T, E any](ctx context.Context, pending <-chan outcome.Outcome[R, E],
	operation func(ctx context.Context, r R) outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {

	return core.Lift(ctx, pending,
		func(ctx context.Context, ready outcome.Outcome[R, E]) <-chan outcome.Outcome[T, E] {
			return core.Ready(solo.Using(ctx, ready, operation))
		})
}

// UsingAsync brackets an asynchronous operation: the resource is closed
// exactly once after the operation's pending result settles, or when
// the await is abandoned, whichever exit path occurs.
func UsingAsync[R io.Closer, T, E any](ctx context.Context, pending <-chan outcome.Outcome[R, E],
	operation func(ctx context.Context, r R) <-chan outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {

	return core.Lift(ctx, pending,
		func(ctx context.Context, ready outcome.Outcome[R, E]) <-chan outcome.Outcome[T, E] {
			if ready.IsFailure() {
				return core.Ready(outcome.ErrFrom[R, T](ready))
			}

			out := make(chan outcome.Outcome[T, E], 1)

			go func() {
				defer close(out)

				r := ready.Value()
				defer r.Close()

				select {
				case <-ctx.Done():
				case res, ok := <-operation(ctx, r):
					if !ok {
						return
					}

					select {
					case <-ctx.Done():
					case out <- res:
					}
				}
			}()

			return out
		})
}
