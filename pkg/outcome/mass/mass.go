package mass

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/core"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Every function here is the pending-input form of its solo namesake,
// produced by core.Lift: resolve the input, run the solo dispatch, emit.
// The Async variants additionally take an asynchronous behavior
// argument and settle it as the second suspension point. Ready inputs
// lift via core.Ready, so the four sync/async combinations need no
// further enumeration.

func Map[In, Out, E any](ctx context.Context, pending <-chan outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, v In) Out) <-chan outcome.Outcome[Out, E] {

	return core.Lift(ctx, pending,
		func(ctx context.Context, ready outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E] {
			return core.Ready(solo.Map(ctx, ready, onSuccess))
		})
}

func MapAsync[In, Out, E any](ctx context.Context, pending <-chan outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, v In) <-chan Out) <-chan outcome.Outcome[Out, E] {

	return core.Lift(ctx, pending,
		func(ctx context.Context, ready outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E] {
			if ready.IsFailure() {
				return core.Ready(outcome.ErrFrom[In, Out](ready))
			}
			return core.Settle(ctx, onSuccess(ctx, ready.Value()),
				func(v Out) outcome.Outcome[Out, E] {
					return outcome.Ok[Out, E](v)
				})
		})
}

func Bind[In, Out, E any](ctx context.Context, pending <-chan outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, v In) outcome.Outcome[Out, E]) <-chan outcome.Outcome[Out, E] {

	return core.Lift(ctx, pending,
		func(ctx context.Context, ready outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E] {
			return core.Ready(solo.Bind(ctx, ready, onSuccess))
		})
}

func BindAsync[In, Out, E any](ctx context.Context, pending <-chan outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, v In) <-chan outcome.Outcome[Out, E]) <-chan outcome.Outcome[Out, E] {

	return core.Lift(ctx, pending,
		func(ctx context.Context, ready outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E] {
			if ready.IsFailure() {
				return core.Ready(outcome.ErrFrom[In, Out](ready))
			}
			return onSuccess(ctx, ready.Value())
		})
}

func MapError[T, E, F any](ctx context.Context, pending <-chan outcome.Outcome[T, E],
	onFailure func(ctx context.Context, e E) F) <-chan outcome.Outcome[T, F] {

	return core.Lift(ctx, pending,
		func(ctx context.Context, ready outcome.Outcome[T, E]) <-chan outcome.Outcome[T, F] {
			return core.Ready(solo.MapError(ctx, ready, onFailure))
		})
}

func MapErrorAsync[T, E, F any](ctx context.Context, pending <-chan outcome.Outcome[T, E],
	onFailure func(ctx context.Context, e E) <-chan F) <-chan outcome.Outcome[T, F] {

	return core.Lift(ctx, pending,
		func(ctx context.Context, ready outcome.Outcome[T, E]) <-chan outcome.Outcome[T, F] {
			if ready.IsSuccess() {
				return core.Ready(outcome.OkFrom[T, E, F](ready))
			}
			return core.Settle(ctx, onFailure(ctx, ready.Err()),
				func(f F) outcome.Outcome[T, F] {
					return outcome.Err[T, F](f)
				})
		})
}

// Match awaits the pending input, then collapses it synchronously. An
// input that never resolves collapses as the zero (empty) outcome, a
// failure with the zero E.
func Match[T, E, R any](ctx context.Context, pending <-chan outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, v T) R,
	onFailure func(ctx context.Context, e E) R) R {

	return solo.Match(ctx, core.Resolve(ctx, pending), onSuccess, onFailure)
}

func BindIf[T, E any](ctx context.Context, pending <-chan outcome.Outcome[T, E],
	predicate func(ctx context.Context, v T) bool,
	continuation func(ctx context.Context, v T) outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {

	return core.Lift(ctx, pending,
		func(ctx context.Context, ready outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
			return core.Ready(solo.BindIf(ctx, ready, predicate, continuation))
		})
}

// BindIfAsync keeps the solo evaluation order: failure short-circuit,
// then the synchronous predicate, then the asynchronous continuation.
func BindIfAsync[T, E any](ctx context.Context, pending <-chan outcome.Outcome[T, E],
	predicate func(ctx context.Context, v T) bool,
	continuation func(ctx context.Context, v T) <-chan outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {

	return core.Lift(ctx, pending,
		func(ctx context.Context, ready outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
			if ready.IsFailure() {
				return core.Ready(ready)
			}
			if !predicate(ctx, ready.Value()) {
				return core.Ready(ready)
			}
			return continuation(ctx, ready.Value())
		})
}

func Ensure[T, E any](ctx context.Context, pending <-chan outcome.Outcome[T, E],
	predicate func(ctx context.Context, v T) bool,
	onInvalid func(ctx context.Context, v T) E) <-chan outcome.Outcome[T, E] {

	return core.Lift(ctx, pending,
		func(ctx context.Context, ready outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
			return core.Ready(solo.Ensure(ctx, ready, predicate, onInvalid))
		})
}

func Tap[T, E any](ctx context.Context, pending <-chan outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, v T)) <-chan outcome.Outcome[T, E] {

	return core.Lift(ctx, pending,
		func(ctx context.Context, ready outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
			return core.Ready(solo.Tap(ctx, ready, onSuccess))
		})
}

// TapAsync awaits the action's completion before forwarding the
// original outcome, so downstream stages observe the side effect done.
func TapAsync[T, E any](ctx context.Context, pending <-chan outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, v T) <-chan struct{}) <-chan outcome.Outcome[T, E] {

	return core.Lift(ctx, pending,
		func(ctx context.Context, ready outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
			if ready.IsFailure() {
				return core.Ready(ready)
			}
			return core.Settle(ctx, onSuccess(ctx, ready.Value()),
				func(struct{}) outcome.Outcome[T, E] {
					return ready
				})
		})
}

func TapError[T, E any](ctx context.Context, pending <-chan outcome.Outcome[T, E],
	onFailure func(ctx context.Context, e E)) <-chan outcome.Outcome[T, E] {

	return core.Lift(ctx, pending,
		func(ctx context.Context, ready outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
			return core.Ready(solo.TapError(ctx, ready, onFailure))
		})
}

func Do[T, E any](ctx context.Context, pending <-chan outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, v T),
	onFailure func(ctx context.Context, e E)) <-chan outcome.Outcome[T, E] {

	return core.Lift(ctx, pending,
		func(ctx context.Context, ready outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
			return core.Ready(solo.Do(ctx, ready, onSuccess, onFailure))
		})
}

// DoAsync awaits whichever action the variant selects; the two actions
// stay mutually exclusive because the dispatch picks exactly one.
func DoAsync[T, E any](ctx context.Context, pending <-chan outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, v T) <-chan struct{},
	onFailure func(ctx context.Context, e E) <-chan struct{}) <-chan outcome.Outcome[T, E] {

	return core.Lift(ctx, pending,
		func(ctx context.Context, ready outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
			var done <-chan struct{}
			if ready.IsSuccess() {
				done = onSuccess(ctx, ready.Value())
			} else {
				done = onFailure(ctx, ready.Err())
			}
			return core.Settle(ctx, done,
				func(struct{}) outcome.Outcome[T, E] {
					return ready
				})
		})
}
