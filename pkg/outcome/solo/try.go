package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/faults"
)

// Try runs operation and converts a panic into a failure via errFrom.
// No panic escapes the adapter; a normal return becomes a success.
func Try[T, E any](ctx context.Context, operation func(ctx context.Context) T,
	errFrom func(recovered any) E) (res outcome.Outcome[T, E]) {

	defer func() {
		if p := recover(); p != nil {
			res = outcome.Err[T, E](errFrom(p))
		}
	}()

	return outcome.Ok[T, E](operation(ctx))
}

// TryFinally is Try with a cleanup action that runs exactly once, after
// the success/failure branch is determined and before the call returns,
// whether the operation returned or panicked. A panic inside finally is
// not swallowed: it unwinds past the return, superseding the outcome,
// as an ordinary deferred call would.
func TryFinally[T, E any](ctx context.Context, operation func(ctx context.Context) T,
	errFrom func(recovered any) E,
	finally func(ctx context.Context)) (res outcome.Outcome[T, E]) {

	defer finally(ctx)
	defer func() {
		if p := recover(); p != nil {
			res = outcome.Err[T, E](errFrom(p))
		}
	}()

	return outcome.Ok[T, E](operation(ctx))
}

// TryErr is the exception-first form: the failure payload is the raw
// *faults.Panic, for callers that want to inspect or log before a later
// MapError converts it to a domain type.
func TryErr[T any](ctx context.Context,
	operation func(ctx context.Context) T) outcome.Outcome[T, error] {

	return Try(ctx, operation, func(recovered any) error {
		return faults.FromPanic(recovered)
	})
}

// From adapts an ordinary (T, error) return into an Outcome.
func From[T any](v T, err error) outcome.Outcome[T, error] {
	if outcome.IsNil(err) {
		return outcome.Ok[T, error](v)
	}
	return outcome.Err[T, error](err)
}
