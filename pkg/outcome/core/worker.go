package core

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

// CancelHandlers lets a pipeline decide what happens to work caught by
// cancellation: the still-unread input stream, a single unprocessed
// item, or an item whose stage result could no longer be delivered.
type CancelHandlers[In, Out, E any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan outcome.Outcome[In, E], outCh chan<- outcome.Outcome[Out, E])
	OnCancelUnprocessed func(ctx context.Context, unprocessed outcome.Outcome[In, E], outCh chan<- outcome.Outcome[Out, E])
	OnCancelProcessed   func(ctx context.Context, in outcome.Outcome[In, E], processed outcome.Outcome[Out, E], outCh chan<- outcome.Outcome[Out, E])
}

// Worker pulls pending outcomes from inputCh, runs each through stage
// and forwards the resolution to outCh until the input closes or ctx is
// done. One Worker per pipeline line; the stage itself decides how it
// suspends (usually via Lift).
func Worker[In, Out, E any](ctx context.Context,
	inputCh <-chan outcome.Outcome[In, E], outCh chan<- outcome.Outcome[Out, E],
	stage func(ctx context.Context, input outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E],
	handlers CancelHandlers[In, Out, E],
	onDelivered func(ctx context.Context, out outcome.Outcome[Out, E]),
	wg *sync.WaitGroup) {

	defer wg.Done()

	for {
		if ctx.Err() != nil {
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		}

		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case res, running := <-stage(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, res, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- res:
					if onDelivered != nil {
						onDelivered(ctx, res)
					}
				}
			}
		}
	}
}
