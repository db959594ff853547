// Package core holds the pending-outcome primitives. A pending outcome
// is a receive-only channel resolved by whatever asynchronous substrate
// produced it; Ready and Resolve bridge between ready and pending, and
// Lift is the single generic rule by which every synchronous combinator
// gains its asynchronous forms (see package mass). Worker, the Emit and
// Collect bridges and the ctx options serve package pipe.
package core
