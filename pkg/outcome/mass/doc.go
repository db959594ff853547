// Package mass lifts every solo combinator over pending outcomes. Each
// function resolves its input, applies the solo dispatch and emits the
// result through core.Lift; the Async variants take an asynchronous
// behavior argument and settle it as the second suspension point. For a
// resolved input the results agree with the solo forms.
package mass
