// Package solo contains the synchronous combinators over a ready
// Outcome[T, E]. Each one dispatches on the variant, invokes its
// behavior argument only for the variant it targets, and forwards the
// outcome unchanged otherwise.
//
// Highlights:
//   - Map/Bind/MapError: transform one side, short-circuit the other
//   - Match: collapse to a plain value, exactly one handler per call
//   - BindIf/Ensure: predicate-gated continuation and validation
//   - Tap/TapError/Do: side effects that never alter the outcome
//   - Using: bracket over an io.Closer, release on every exit path
//   - Try/TryFinally/TryErr: panic adapter with exactly-once cleanup
//
// The asynchronous forms live in package mass.
package solo
