package solo

import (
	"context"
	"io"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Using runs operation against the resource held by input and closes
// the resource exactly once on every exit path, including a panic in
// operation. The operation's own outcome is returned untouched; the
// Close error is discarded (release is expected to be idempotent). On a
// failed input nothing was acquired and nothing is released.
func Using[R io.Closer, T, E any](ctx context.Context, input outcome.Outcome[R, E],
	operation func(ctx context.Context, r R) outcome.Outcome[T, E]) outcome.Outcome[T, E] {

	if input.IsFailure() {
		return outcome.ErrFrom[R, T](input)
	}

	r := input.Value()
	defer r.Close()

	return operation(ctx, r)
}
