package mass

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// TryAsync runs the operation in the adapter's goroutine and resolves
// the returned pending outcome with Success on normal return or a
// converted Failure on panic. No panic escapes the adapter.
func TryAsync[T, E any](ctx context.Context, operation func(ctx context.Context) T,
	errFrom func(recovered any) E) <-chan outcome.Outcome[T, E] {

	out := make(chan outcome.Outcome[T, E], 1)

	go func() {
		defer close(out)

		res := solo.Try(ctx, operation, errFrom)

		select {
		case <-ctx.Done():
		case out <- res:
		}
	}()

	return out
}

// TryAsyncFinally adds a cleanup action with the same exactly-once
// guarantee as solo.TryFinally, now spanning the suspension: finally
// runs after the branch is determined and before the pending outcome
// resolves. A panic inside finally is not swallowed.
func TryAsyncFinally[T, E any](ctx context.Context, operation func(ctx context.Context) T,
	errFrom func(recovered any) E,
	finally func(ctx context.Context)) <-chan outcome.Outcome[T, E] {

	out := make(chan outcome.Outcome[T, E], 1)

	go func() {
		defer close(out)

		res := solo.TryFinally(ctx, operation, errFrom, finally)

		select {
		case <-ctx.Done():
		case out <- res:
		}
	}()

	return out
}

// TryAsyncErr is the exception-first asynchronous form; the failure
// payload is a *faults.Panic.
func TryAsyncErr[T any](ctx context.Context,
	operation func(ctx context.Context) T) <-chan outcome.Outcome[T, error] {

	out := make(chan outcome.Outcome[T, error], 1)

	go func() {
		defer close(out)

		res := solo.TryErr(ctx, operation)

		select {
		case <-ctx.Done():
		case out <- res:
		}
	}()

	return out
}
