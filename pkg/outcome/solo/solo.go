package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

func Succeed[T, E any](v T) outcome.Outcome[T, E] {
	return outcome.Ok[T, E](v)
}

func Fail[T, E any](e E) outcome.Outcome[T, E] {
	return outcome.Err[T, E](e)
}

// Map transforms the success value. A failure passes through untouched
// and onSuccess is never invoked.
func Map[In, Out, E any](ctx context.Context, input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, v In) Out) outcome.Outcome[Out, E] {

	if input.IsSuccess() {
		return outcome.Ok[Out, E](onSuccess(ctx, input.Value()))
	}
	return outcome.ErrFrom[In, Out](input)
}

// Bind chains a function that itself returns an Outcome; its result is
// returned as-is, never double-wrapped. A failure short-circuits.
func Bind[In, Out, E any](ctx context.Context, input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, v In) outcome.Outcome[Out, E]) outcome.Outcome[Out, E] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return outcome.ErrFrom[In, Out](input)
}

// MapError is the failure-side mirror of Map; a success passes through.
func MapError[T, E, F any](ctx context.Context, input outcome.Outcome[T, E],
	onFailure func(ctx context.Context, e E) F) outcome.Outcome[T, F] {

	if input.IsFailure() {
		return outcome.Err[T, F](onFailure(ctx, input.Err()))
	}
	return outcome.OkFrom[T, E, F](input)
}

// Match collapses the outcome into a plain value. Exactly one handler
// runs per call; this is the sanctioned exit from the Outcome world.
func Match[T, E, R any](ctx context.Context, input outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, v T) R,
	onFailure func(ctx context.Context, e E) R) R {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Err())
}

// BindIf runs the continuation only when the predicate holds for the
// success value. Evaluation order is fixed: failure short-circuit, then
// predicate, then continuation. A false predicate keeps the original
// success; a failure skips the predicate entirely.
func BindIf[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	predicate func(ctx context.Context, v T) bool,
	continuation func(ctx context.Context, v T) outcome.Outcome[T, E]) outcome.Outcome[T, E] {

	if input.IsFailure() {
		return input
	}
	if predicate(ctx, input.Value()) {
		return continuation(ctx, input.Value())
	}
	return input
}

// Ensure turns a success that fails the predicate into a failure built
// by onInvalid. Failures pass through.
func Ensure[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	predicate func(ctx context.Context, v T) bool,
	onInvalid func(ctx context.Context, v T) E) outcome.Outcome[T, E] {

	if input.IsFailure() {
		return input
	}
	if predicate(ctx, input.Value()) {
		return input
	}
	return outcome.Err[T, E](onInvalid(ctx, input.Value()))
}

// Tap observes the success value for its side effect and returns the
// input unchanged.
func Tap[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, v T)) outcome.Outcome[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}
	return input
}

// TapError is the failure-side Tap.
func TapError[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	onFailure func(ctx context.Context, e E)) outcome.Outcome[T, E] {

	if input.IsFailure() {
		onFailure(ctx, input.Err())
	}
	return input
}

// Do invokes exactly one of the two actions by variant and returns the
// input unchanged. Unlike Match it stays inside the Outcome world.
func Do[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, v T),
	onFailure func(ctx context.Context, e E)) outcome.Outcome[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onFailure(ctx, input.Err())
	}
	return input
}
