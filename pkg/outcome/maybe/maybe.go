package maybe

import (
	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/either"
)

// Maybe is the optional specialization of the railway container: the
// failure side carries no payload. The zero value is None, so absence
// needs no allocation and no constructor call.
type Maybe[S any] struct {
	present bool
	value   S
}

// Some creates a present Maybe.
func Some[S any](s S) Maybe[S] {
	return Maybe[S]{present: true, value: s}
}

// None creates an absent Maybe. Equivalent to the zero value.
func None[S any]() Maybe[S] {
	return Maybe[S]{}
}

func (o Maybe[S]) IsSome() bool {
	return o.present
}

func (o Maybe[S]) IsNone() bool {
	return !o.present
}

// Get returns the payload and whether it is present.
func (o Maybe[S]) Get() (S, bool) {
	return o.value, o.present
}

// MustGet returns the payload or panics on absence.
func (o Maybe[S]) MustGet() S {
	if !o.present {
		panic("outcome/maybe: payload absent")
	}
	return o.value
}

// GetOrElse returns the payload, or fallback on absence.
func (o Maybe[S]) GetOrElse(fallback S) S {
	if !o.present {
		return fallback
	}
	return o.value
}

// FromPtr converts a possibly-nil pointer into a Maybe over the
// pointed-to value.
func FromPtr[S any](p *S) Maybe[S] {
	if p == nil {
		return None[S]()
	}
	return Some(*p)
}

// ToPtr returns a pointer to a copy of the payload, or nil on absence.
func ToPtr[S any](o Maybe[S]) *S {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// FromOk converts the language's comma-ok shape into a Maybe.
func FromOk[S any](v S, ok bool) Maybe[S] {
	if !ok {
		return None[S]()
	}
	return Some(v)
}

// ToEither upgrades absence into a concrete first payload.
func ToEither[F, S any](o Maybe[S], absence F) either.Either[F, S] {
	if !o.present {
		return either.First[F, S](absence)
	}
	return either.Second[F](o.value)
}

// FromEither drops the first payload, keeping only presence.
func FromEither[F, S any](o either.Either[F, S]) Maybe[S] {
	if v, ok := o.Second(); ok {
		return Some(v)
	}
	return None[S]()
}

// Equal reports equality under es. Two Nones are equal; None never
// equals Some.
func Equal[S any](es outcome.Eq[S], a, b Maybe[S]) bool {
	if a.present != b.present {
		return false
	}
	if !a.present {
		return true
	}
	return es(a.value, b.value)
}

// Compare orders two Maybes: None sorts before any Some.
func Compare[S any](cs outcome.Cmp[S], a, b Maybe[S]) outcome.Ordering {
	switch {
	case !a.present && !b.present:
		return outcome.Equal
	case !a.present:
		return outcome.Less
	case !b.present:
		return outcome.Greater
	default:
		return cs(a.value, b.value)
	}
}

// Cmb combines two Maybes. None is the identity; presence on one side
// passes through without invoking cs.
func Cmb[S any](cs outcome.Combine[S], a, b Maybe[S]) Maybe[S] {
	if !a.present {
		return b
	}
	if !b.present {
		return a
	}
	return Some(cs(a.value, b.value))
}
