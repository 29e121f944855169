package either

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// Either holds exactly one of two alternatives: a first payload F
// (failure, by railway convention) or a second payload S (success).
// Values are immutable; every operation returns a new Either.
type Either[F, S any] struct {
	isSecond bool
	first    F
	second   S
}

// First creates an Either carrying the first payload.
func First[F, S any](f F) Either[F, S] {
	return Either[F, S]{first: f}
}

// Second creates an Either carrying the second payload.
func Second[F, S any](s S) Either[F, S] {
	return Either[F, S]{isSecond: true, second: s}
}

// Wrap converts a (value, error) pair into an Either. A typed nil error
// stored in the interface counts as nil.
func Wrap[S any](v S, err error) Either[error, S] {
	if outcome.IsNil(err) {
		return Second[error](v)
	}
	return First[error, S](err)
}

// Try runs fn and wraps its outcome.
func Try[S any](fn func() (S, error)) Either[error, S] {
	return Wrap(fn())
}

func (o Either[F, S]) IsFirst() bool {
	return !o.isSecond
}

func (o Either[F, S]) IsSecond() bool {
	return o.isSecond
}

// First returns the first payload and whether it is present.
func (o Either[F, S]) First() (F, bool) {
	if o.isSecond {
		var zero F
		return zero, false
	}
	return o.first, true
}

// Second returns the second payload and whether it is present.
func (o Either[F, S]) Second() (S, bool) {
	if !o.isSecond {
		var zero S
		return zero, false
	}
	return o.second, true
}

// MustFirst returns the first payload or panics. Accessing the payload
// of the wrong variant is a programming error, not a recoverable one.
func (o Either[F, S]) MustFirst() F {
	if o.isSecond {
		panic("outcome/either: first payload absent")
	}
	return o.first
}

// MustSecond returns the second payload or panics.
func (o Either[F, S]) MustSecond() S {
	if !o.isSecond {
		panic("outcome/either: second payload absent")
	}
	return o.second
}

// OrElse returns the second payload, or fallback when the value is a
// first.
func (o Either[F, S]) OrElse(fallback S) S {
	if !o.isSecond {
		return fallback
	}
	return o.second
}

// Swap exchanges the two sides.
func (o Either[F, S]) Swap() Either[S, F] {
	if o.isSecond {
		return First[S, F](o.second)
	}
	return Second[S](o.first)
}

// Err returns the first payload of an error-carrying Either, or nil on
// success.
func Err[S any](o Either[error, S]) error {
	if e, ok := o.First(); ok {
		return e
	}
	return nil
}

// Unpack converts an error-carrying Either back into the language's
// (value, error) shape.
func Unpack[S any](o Either[error, S]) (S, error) {
	if !o.isSecond {
		var zero S
		return zero, o.first
	}
	return o.second, nil
}

// Equal reports payload equality under the supplied protocols. Values
// with different tags are never equal.
func Equal[F, S any](ef outcome.Eq[F], es outcome.Eq[S], a, b Either[F, S]) bool {
	if a.isSecond != b.isSecond {
		return false
	}
	if a.isSecond {
		return es(a.second, b.second)
	}
	return ef(a.first, b.first)
}

// Compare orders two Eithers: any First sorts before any Second; same
// tags order by payload.
func Compare[F, S any](cf outcome.Cmp[F], cs outcome.Cmp[S], a, b Either[F, S]) outcome.Ordering {
	switch {
	case !a.isSecond && !b.isSecond:
		return cf(a.first, b.first)
	case !a.isSecond:
		return outcome.Less
	case !b.isSecond:
		return outcome.Greater
	default:
		return cs(a.second, b.second)
	}
}

// Cmb combines two Eithers. Both seconds combine via cs; any First
// operand short-circuits, and the first one encountered wins.
func Cmb[F, S any](cs outcome.Combine[S], a, b Either[F, S]) Either[F, S] {
	if !a.isSecond {
		return a
	}
	if !b.isSecond {
		return b
	}
	return Second[F](cs(a.second, b.second))
}
