package faults

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Network is a failed exchange with a remote peer.
type Network struct {
	Op  string
	Err error
}

func (e *Network) Error() string {
	return fmt.Sprintf("network: %s: %v", e.Op, e.Err)
}

func (e *Network) Unwrap() error {
	return e.Err
}

// Timeout is an operation that ran out of time.
type Timeout struct {
	Op    string
	After time.Duration
}

func (e *Timeout) Error() string {
	return fmt.Sprintf("timeout: %s after %s", e.Op, e.After)
}

// Parse is malformed input.
type Parse struct {
	Input string
	Err   error
}

func (e *Parse) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *Parse) Unwrap() error {
	return e.Err
}

// Panic carries a recovered panic value and the stack at recovery.
// The exception-first Try forms use it as the failure payload.
type Panic struct {
	Value any
	Stack []byte
}

func (e *Panic) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// FromPanic wraps a recovered value. If the panic value already is a
// *Panic (re-panicked), it is returned as-is.
func FromPanic(v any) *Panic {
	if p, ok := v.(*Panic); ok {
		return p
	}
	return &Panic{Value: v, Stack: debug.Stack()}
}

// Classify maps context cancellation and deadline errors to *Timeout,
// leaving everything else untouched.
func Classify(op string, err error) error {
	if outcome.IsCancellation(err) {
		return &Timeout{Op: op}
	}
	return err
}
