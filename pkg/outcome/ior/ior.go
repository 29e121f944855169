package ior

import (
	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/either"
	"github.com/ib-77/outcome/pkg/outcome/maybe"
)

type tag uint8

const (
	tagFirst tag = iota
	tagSecond
	tagBoth
)

// Ior holds a first payload, a second payload, or both at once. Unlike
// the these package, sequencing here never discards a first payload:
// accumulation threads a Combine protocol for F, so every note that
// ever appeared is folded into the result. Values are immutable; every
// operation returns a new Ior.
type Ior[F, S any] struct {
	tag    tag
	first  F
	second S
}

// First creates an Ior carrying only the first payload.
func First[F, S any](f F) Ior[F, S] {
	return Ior[F, S]{tag: tagFirst, first: f}
}

// Second creates an Ior carrying only the second payload.
func Second[F, S any](s S) Ior[F, S] {
	return Ior[F, S]{tag: tagSecond, second: s}
}

// Both creates an Ior carrying the two payloads at once.
func Both[F, S any](f F, s S) Ior[F, S] {
	return Ior[F, S]{tag: tagBoth, first: f, second: s}
}

func (o Ior[F, S]) IsFirst() bool {
	return o.tag == tagFirst
}

func (o Ior[F, S]) IsSecond() bool {
	return o.tag == tagSecond
}

func (o Ior[F, S]) IsBoth() bool {
	return o.tag == tagBoth
}

// First returns the first payload and whether it is present. Both
// counts as present.
func (o Ior[F, S]) First() (F, bool) {
	if o.tag == tagSecond {
		var zero F
		return zero, false
	}
	return o.first, true
}

// Second returns the second payload and whether it is present. Both
// counts as present.
func (o Ior[F, S]) Second() (S, bool) {
	if o.tag == tagFirst {
		var zero S
		return zero, false
	}
	return o.second, true
}

// MustFirst returns the first payload or panics.
func (o Ior[F, S]) MustFirst() F {
	if o.tag == tagSecond {
		panic("outcome/ior: first payload absent")
	}
	return o.first
}

// MustSecond returns the second payload or panics.
func (o Ior[F, S]) MustSecond() S {
	if o.tag == tagFirst {
		panic("outcome/ior: second payload absent")
	}
	return o.second
}

// OrElse returns the second payload, or fallback when the value is a
// bare first.
func (o Ior[F, S]) OrElse(fallback S) S {
	if o.tag == tagFirst {
		return fallback
	}
	return o.second
}

// FromEither widens an Either into an Ior. Both is never produced.
func FromEither[F, S any](o either.Either[F, S]) Ior[F, S] {
	if v, ok := o.Second(); ok {
		return Second[F](v)
	}
	f, _ := o.First()
	return First[F, S](f)
}

// ToEither narrows an Ior into an Either. Both resolves to Second and
// its accumulated first payload is dropped.
func ToEither[F, S any](o Ior[F, S]) either.Either[F, S] {
	if o.tag == tagFirst {
		return either.First[F, S](o.first)
	}
	return either.Second[F](o.second)
}

// Pad splits an Ior into its two optional payloads. At least one of
// the results is present.
func Pad[F, S any](o Ior[F, S]) (maybe.Maybe[F], maybe.Maybe[S]) {
	switch o.tag {
	case tagFirst:
		return maybe.Some(o.first), maybe.None[S]()
	case tagSecond:
		return maybe.None[F](), maybe.Some(o.second)
	default:
		return maybe.Some(o.first), maybe.Some(o.second)
	}
}

// Equal reports payload equality under the supplied protocols. Values
// with different tags are never equal.
func Equal[F, S any](ef outcome.Eq[F], es outcome.Eq[S], a, b Ior[F, S]) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case tagFirst:
		return ef(a.first, b.first)
	case tagSecond:
		return es(a.second, b.second)
	case tagBoth:
		return ef(a.first, b.first) && es(a.second, b.second)
	default:
		panic("outcome/ior: corrupt tag")
	}
}

// Compare orders two Iors: First sorts before Second sorts before
// Both; same tags order by payload, Both lexicographically by first
// then second.
func Compare[F, S any](cf outcome.Cmp[F], cs outcome.Cmp[S], a, b Ior[F, S]) outcome.Ordering {
	if a.tag != b.tag {
		if a.tag < b.tag {
			return outcome.Less
		}
		return outcome.Greater
	}
	switch a.tag {
	case tagFirst:
		return cf(a.first, b.first)
	case tagSecond:
		return cs(a.second, b.second)
	case tagBoth:
		if ord := cf(a.first, b.first); ord != outcome.Equal {
			return ord
		}
		return cs(a.second, b.second)
	default:
		panic("outcome/ior: corrupt tag")
	}
}
