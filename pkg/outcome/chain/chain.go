package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Chain wraps an Outcome with its context to enable fluent chaining.
// Steps that preserve T are methods; steps that change a type parameter
// are free functions, since Go methods cannot add type parameters.
type Chain[T, E any] struct {
	ctx    context.Context
	result outcome.Outcome[T, E]
}

// Start creates a new chain from an existing outcome.
func Start[T, E any](ctx context.Context, result outcome.Outcome[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value.
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: outcome.Ok[T, E](value),
	}
}

// Result returns the underlying outcome.
func (c *Chain[T, E]) Result() outcome.Outcome[T, E] {
	return c.result
}

// Then chains a function that returns an Outcome of the same type.
func (c *Chain[T, E]) Then(onSuccess func(ctx context.Context, v T) outcome.Outcome[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    c.ctx,
		result: solo.Bind(c.ctx, c.result, onSuccess),
	}
}

// BindIf gates the continuation on a predicate over the success value.
func (c *Chain[T, E]) BindIf(predicate func(ctx context.Context, v T) bool,
	continuation func(ctx context.Context, v T) outcome.Outcome[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    c.ctx,
		result: solo.BindIf(c.ctx, c.result, predicate, continuation),
	}
}

// Ensure fails the chain when the predicate rejects the success value.
func (c *Chain[T, E]) Ensure(predicate func(ctx context.Context, v T) bool,
	onInvalid func(ctx context.Context, v T) E) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    c.ctx,
		result: solo.Ensure(c.ctx, c.result, predicate, onInvalid),
	}
}

// Tap performs a side effect on the success value without changing the
// outcome.
func (c *Chain[T, E]) Tap(onSuccess func(ctx context.Context, v T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    c.ctx,
		result: solo.Tap(c.ctx, c.result, onSuccess),
	}
}

// TapError performs a side effect on the failure value.
func (c *Chain[T, E]) TapError(onFailure func(ctx context.Context, e E)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    c.ctx,
		result: solo.TapError(c.ctx, c.result, onFailure),
	}
}

// Do performs exactly one of the two side effects by variant.
func (c *Chain[T, E]) Do(onSuccess func(ctx context.Context, v T),
	onFailure func(ctx context.Context, e E)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    c.ctx,
		result: solo.Do(c.ctx, c.result, onSuccess, onFailure),
	}
}

// Map chains a pure transformation to a new success type.
func Map[T, U, E any](c *Chain[T, E], onSuccess func(ctx context.Context, v T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// Bind chains a function that returns an Outcome of a new success type.
func Bind[T, U, E any](c *Chain[T, E],
	onSuccess func(ctx context.Context, v T) outcome.Outcome[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Bind(c.ctx, c.result, onSuccess),
	}
}

// MapError rewrites the failure type.
func MapError[T, E, F any](c *Chain[T, E],
	onFailure func(ctx context.Context, e E) F) *Chain[T, F] {
	return &Chain[T, F]{
		ctx:    c.ctx,
		result: solo.MapError(c.ctx, c.result, onFailure),
	}
}

// ThenTry chains a function that returns (T, error), for chains whose
// failure side is a plain error.
func ThenTry[T any](c *Chain[T, error],
	try func(ctx context.Context, v T) (T, error)) *Chain[T, error] {
	return c.Then(func(ctx context.Context, v T) outcome.Outcome[T, error] {
		return solo.From(try(ctx, v))
	})
}

// Match collapses the chain into a final value via solo.Match.
func Match[T, E, R any](c *Chain[T, E],
	onSuccess func(ctx context.Context, v T) R,
	onFailure func(ctx context.Context, e E) R) R {
	return solo.Match(c.ctx, c.result, onSuccess, onFailure)
}
