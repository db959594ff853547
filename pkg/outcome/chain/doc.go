// Package chain offers a fluent wrapper over the solo combinators for
// callers that prefer method chaining to nested calls. A Chain carries
// the context alongside the outcome so steps stay one-liners.
//
// Same-type steps (Then, BindIf, Ensure, Tap, TapError, Do) are
// methods; type-changing steps (Map, Bind, MapError, Match, ThenTry)
// are package functions.
package chain
