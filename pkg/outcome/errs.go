package outcome

import (
	"reflect"

	"go.uber.org/multierr"
)

// CombineErrors is the error semigroup: both operands are kept, in
// order, in a single combined error. Splitting the result back apart is
// Errors.
func CombineErrors() Combine[error] {
	return func(a, b error) error {
		return multierr.Append(a, b)
	}
}

// Errors returns the individual errors contained in err. A plain error
// yields a one-element slice; nil yields an empty one.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}
	return multierr.Errors(err)
}

// IsNil reports whether v is nil, including a typed nil pointer stored
// in an interface value.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Kind() == reflect.Ptr && reflect.ValueOf(v).IsNil()
}
