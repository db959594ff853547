// Package outcome defines Outcome[T, E], a two-variant success/failure
// value, and the constructors and helpers the combinator packages build
// on.
//
// An Outcome is immutable once built. Ok and Err are the only entry
// points; OkFrom and ErrFrom re-thread a variant across a type change
// without minting a new identity. Reading the wrong variant's payload
// panics: that is a usage fault, not a domain failure, and is never
// converted by any combinator.
//
// Subpackages:
//   - solo: synchronous combinators (Map, Bind, MapError, Match, BindIf,
//     Tap, TapError, Do, Using, Try)
//   - core: pending-outcome primitives and the generic lifting rule
//   - mass: asynchronous forms of every combinator
//   - chain: fluent wrapper over solo
//   - pipe: worker-pooled stage composition
//   - faults: closed error hierarchy for boundary classification
package outcome
