package pipe

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/core"
	"github.com/ib-77/outcome/pkg/outcome/mass"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// ErrAbandoned marks items a drain handler forwarded after cancellation
// without processing them.
var ErrAbandoned = errors.New("pipeline abandoned item")

func MapStage[In, Out, E any](onSuccess func(ctx context.Context, v In) Out) Stage[In, Out, E] {
	return func(ctx context.Context, input outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E] {
		return mass.Map(ctx, core.Ready(input), onSuccess)
	}
}

func BindStage[In, Out, E any](onSuccess func(ctx context.Context, v In) outcome.Outcome[Out, E]) Stage[In, Out, E] {
	return func(ctx context.Context, input outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E] {
		return mass.Bind(ctx, core.Ready(input), onSuccess)
	}
}

func EnsureStage[T, E any](predicate func(ctx context.Context, v T) bool,
	onInvalid func(ctx context.Context, v T) E) Stage[T, T, E] {
	return func(ctx context.Context, input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
		return mass.Ensure(ctx, core.Ready(input), predicate, onInvalid)
	}
}

func TapStage[T, E any](onSuccess func(ctx context.Context, v T)) Stage[T, T, E] {
	return func(ctx context.Context, input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
		return mass.Tap(ctx, core.Ready(input), onSuccess)
	}
}

// TryStage adapts an ordinary (Out, error) function into a stage over
// error-sided outcomes.
func TryStage[In, Out any](try func(ctx context.Context, v In) (Out, error)) Stage[In, Out, error] {
	return func(ctx context.Context, input outcome.Outcome[In, error]) <-chan outcome.Outcome[Out, error] {
		return mass.Bind(ctx, core.Ready(input),
			func(ctx context.Context, v In) outcome.Outcome[Out, error] {
				return solo.From(try(ctx, v))
			})
	}
}

// DrainRemaining builds cancel handlers that forward everything still
// in flight when ctx is done: failures keep their payload, unprocessed
// successes become ErrAbandoned failures. Honors WithDrainRemaining.
func DrainRemaining[In, Out any]() core.CancelHandlers[In, Out, error] {
	abandon := func(in outcome.Outcome[In, error]) outcome.Outcome[Out, error] {
		if in.IsFailure() {
			return outcome.ErrFrom[In, Out](in)
		}
		return outcome.Err[Out, error](ErrAbandoned)
	}

	return core.CancelHandlers[In, Out, error]{
		OnCancel: func(ctx context.Context, inputCh <-chan outcome.Outcome[In, error],
			outCh chan<- outcome.Outcome[Out, error]) {
			if !core.IsDrainRemainingEnabled(ctx, true) {
				return
			}
			for in := range inputCh {
				outCh <- abandon(in)
			}
		},
		OnCancelUnprocessed: func(ctx context.Context, unprocessed outcome.Outcome[In, error],
			outCh chan<- outcome.Outcome[Out, error]) {
			if !core.IsDrainRemainingEnabled(ctx, true) {
				return
			}
			outCh <- abandon(unprocessed)
		},
		OnCancelProcessed: func(ctx context.Context, in outcome.Outcome[In, error],
			processed outcome.Outcome[Out, error], outCh chan<- outcome.Outcome[Out, error]) {
			if !core.IsDrainRemainingEnabled(ctx, true) {
				return
			}
			outCh <- processed
		},
	}
}
