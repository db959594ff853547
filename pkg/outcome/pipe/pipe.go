package pipe

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/core"
)

// Stage processes one resolved outcome and yields a pending one; the
// mass combinators produce stages via the constructors in stages.go.
type Stage[In, Out, E any] func(ctx context.Context, input outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E]

// Run fans a stream of outcomes over lines workers running a
// type-preserving stage. The output closes once every worker drains.
func Run[T, E any](ctx context.Context, inputCh <-chan outcome.Outcome[T, E],
	stage Stage[T, T, E], lines int) <-chan outcome.Outcome[T, E] {

	return RunWith(ctx, inputCh, stage, core.CancelHandlers[T, T, E]{}, nil, lines)
}

// Turnout is Run for a type-changing stage.
func Turnout[In, Out, E any](ctx context.Context, inputCh <-chan outcome.Outcome[In, E],
	stage Stage[In, Out, E], lines int) <-chan outcome.Outcome[Out, E] {

	return RunWith(ctx, inputCh, stage, core.CancelHandlers[In, Out, E]{}, nil, lines)
}

// RunWith exposes the cancel handlers and the delivery hook for callers
// that route work caught by cancellation.
func RunWith[In, Out, E any](ctx context.Context, inputCh <-chan outcome.Outcome[In, E],
	stage Stage[In, Out, E],
	handlers core.CancelHandlers[In, Out, E],
	onDelivered func(ctx context.Context, out outcome.Outcome[Out, E]),
	lines int) <-chan outcome.Outcome[Out, E] {

	out := make(chan outcome.Outcome[Out, E])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go core.Worker(ctx, inputCh, out, stage, handlers, onDelivered, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Collect is the terminal stage: each outcome is collapsed to R by
// exactly one of the two handlers. When ctx is done and draining is
// enabled, the remaining inputs are still collapsed so the consumer
// sees every item.
func Collect[In, E, R any](ctx context.Context, inputCh <-chan outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, v In) R,
	onFailure func(ctx context.Context, e E) R) <-chan R {

	out := make(chan R)

	collapse := func(in outcome.Outcome[In, E]) R {
		if in.IsSuccess() {
			return onSuccess(ctx, in.Value())
		}
		return onFailure(ctx, in.Err())
	}

	go func() {
		defer close(out)

		for {
			if ctx.Err() != nil {
				if core.IsDrainRemainingEnabled(ctx, true) {
					for in := range inputCh {
						out <- collapse(in)
					}
				}
				return
			}

			select {
			case <-ctx.Done():
				if core.IsDrainRemainingEnabled(ctx, true) {
					for in := range inputCh {
						out <- collapse(in)
					}
				}
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				select {
				case <-ctx.Done():
					if core.IsDrainRemainingEnabled(ctx, true) {
						out <- collapse(in)
						for rest := range inputCh {
							out <- collapse(rest)
						}
					}
					return
				case out <- collapse(in):
				}
			}
		}
	}()

	return out
}
