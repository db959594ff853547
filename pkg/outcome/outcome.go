package outcome

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Outcome holds exactly one of a success value T or a failure value E.
// It is immutable after construction and safe to share between readers.
// T and E should be distinct types; with the named constructors the
// compiler never has to guess which side a bare value belongs to.
type Outcome[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	fault     E
	isSuccess bool
}

func Ok[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, E any](e E) Outcome[T, E] {
	return Outcome[T, E]{
		fault:     e,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// ErrFrom re-threads a failure into a different success type, keeping
// the original id and creation time. Calling it on a success panics.
func ErrFrom[In, Out, E any](from Outcome[In, E]) Outcome[Out, E] {
	if from.isSuccess {
		panic("outcome: ErrFrom called on Success")
	}
	return Outcome[Out, E]{
		fault:     from.fault,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// OkFrom re-threads a success into a different failure type, keeping
// the original id and creation time. Calling it on a failure panics.
func OkFrom[T, E, F any](from Outcome[T, E]) Outcome[T, F] {
	if !from.isSuccess {
		panic("outcome: OkFrom called on Failure")
	}
	return Outcome[T, F]{
		value:     from.value,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[T, E]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T, E]) IsFailure() bool {
	return !o.isSuccess
}

// Value returns the success payload. Reading it from a Failure is a
// programmer fault, never a domain error, so it panics unconditionally.
func (o Outcome[T, E]) Value() T {
	if !o.isSuccess {
		panic("outcome: Value called on Failure")
	}
	return o.value
}

// Err returns the failure payload. Reading it from a Success panics.
func (o Outcome[T, E]) Err() E {
	if o.isSuccess {
		panic("outcome: Err called on Success")
	}
	return o.fault
}

func (o Outcome[T, E]) ID() uuid.UUID {
	return o.id
}

// CreatedAt is the construction time (UTC).
func (o Outcome[T, E]) CreatedAt() time.Time {
	return o.createdAt
}

// IsEmpty reports a zero Outcome, which only appears when a pending
// outcome was never resolved (closed channel, cancelled await).
func (o Outcome[T, E]) IsEmpty() bool {
	return o.id == uuid.Nil
}

// Equals compares variant and payload structurally. Identity metadata
// (id, creation time) does not participate.
func (o Outcome[T, E]) Equals(other Outcome[T, E]) bool {
	if o.isSuccess != other.isSuccess {
		return false
	}
	if o.isSuccess {
		return reflect.DeepEqual(o.value, other.value)
	}
	return reflect.DeepEqual(o.fault, other.fault)
}

func (o Outcome[T, E]) String() string {
	if o.isSuccess {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return fmt.Sprintf("Failure(%v)", o.fault)
}
