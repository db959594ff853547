package outcome

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether err is nil, including a typed nil pointer
// hiding inside the interface.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// UnwrapAll flattens a joined error into its parts, or wraps a plain
// error into a single-element slice.
func UnwrapAll(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellation reports whether err stems from context cancellation
// or deadline expiry, however deep it is wrapped.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
