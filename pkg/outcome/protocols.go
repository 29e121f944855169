package outcome

import (
	"golang.org/x/exp/constraints"
)

// Eq reports whether two values are equal. Implementations must be
// reflexive, symmetric and transitive.
type Eq[T any] func(a, b T) bool

// Cmp is a strict total order over T. Implementations must be
// consistent with the Eq protocol used alongside them:
// cmp(a, b) == Equal exactly when eq(a, b).
type Cmp[T any] func(a, b T) Ordering

// Combine merges two values of the same type. Implementations must be
// associative; no identity element is assumed.
type Combine[T any] func(a, b T) T

// Eq derives the equality protocol induced by the order.
func (c Cmp[T]) Eq() Eq[T] {
	return func(a, b T) bool {
		return c(a, b) == Equal
	}
}

// EqComparable builds an Eq from the language == operator.
func EqComparable[T comparable]() Eq[T] {
	return func(a, b T) bool {
		return a == b
	}
}

// CmpOrdered builds a Cmp from the language < operator.
func CmpOrdered[T constraints.Ordered]() Cmp[T] {
	return func(a, b T) Ordering {
		switch {
		case a < b:
			return Less
		case a > b:
			return Greater
		default:
			return Equal
		}
	}
}

// Reverse inverts the direction of a Cmp.
func Reverse[T any](c Cmp[T]) Cmp[T] {
	return func(a, b T) Ordering {
		return c(a, b).Reversed()
	}
}

// CombineSlices is the append semigroup. The result is a fresh slice;
// neither argument is mutated.
func CombineSlices[T any]() Combine[[]T] {
	return func(a, b []T) []T {
		out := make([]T, 0, len(a)+len(b))
		out = append(out, a...)
		return append(out, b...)
	}
}
