package these

import (
	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/either"
)

type tag uint8

const (
	tagFirst tag = iota
	tagSecond
	tagBoth
)

// These holds a first payload, a second payload, or both at once. The
// first side is a note that rides along: sequencing keeps only the
// latest note, so no combiner is ever needed. Values are immutable;
// every operation returns a new These.
type These[F, S any] struct {
	tag    tag
	first  F
	second S
}

// First creates a These carrying only the first payload.
func First[F, S any](f F) These[F, S] {
	return These[F, S]{tag: tagFirst, first: f}
}

// Second creates a These carrying only the second payload.
func Second[F, S any](s S) These[F, S] {
	return These[F, S]{tag: tagSecond, second: s}
}

// Both creates a These carrying the two payloads at once.
func Both[F, S any](f F, s S) These[F, S] {
	return These[F, S]{tag: tagBoth, first: f, second: s}
}

func (o These[F, S]) IsFirst() bool {
	return o.tag == tagFirst
}

func (o These[F, S]) IsSecond() bool {
	return o.tag == tagSecond
}

func (o These[F, S]) IsBoth() bool {
	return o.tag == tagBoth
}

// First returns the first payload and whether it is present. Both
// counts as present.
func (o These[F, S]) First() (F, bool) {
	if o.tag == tagSecond {
		var zero F
		return zero, false
	}
	return o.first, true
}

// Second returns the second payload and whether it is present. Both
// counts as present.
func (o These[F, S]) Second() (S, bool) {
	if o.tag == tagFirst {
		var zero S
		return zero, false
	}
	return o.second, true
}

// MustFirst returns the first payload or panics.
func (o These[F, S]) MustFirst() F {
	if o.tag == tagSecond {
		panic("outcome/these: first payload absent")
	}
	return o.first
}

// MustSecond returns the second payload or panics.
func (o These[F, S]) MustSecond() S {
	if o.tag == tagFirst {
		panic("outcome/these: second payload absent")
	}
	return o.second
}

// OrElse returns the second payload, or fallback when the value is a
// bare first.
func (o These[F, S]) OrElse(fallback S) S {
	if o.tag == tagFirst {
		return fallback
	}
	return o.second
}

// FromEither widens an Either into a These. Both is never produced.
func FromEither[F, S any](o either.Either[F, S]) These[F, S] {
	if v, ok := o.Second(); ok {
		return Second[F](v)
	}
	f, _ := o.First()
	return First[F, S](f)
}

// ToEither narrows a These into an Either. Both resolves to Second and
// its note is dropped.
func ToEither[F, S any](o These[F, S]) either.Either[F, S] {
	if o.tag == tagFirst {
		return either.First[F, S](o.first)
	}
	return either.Second[F](o.second)
}

// Equal reports payload equality under the supplied protocols. Values
// with different tags are never equal.
func Equal[F, S any](ef outcome.Eq[F], es outcome.Eq[S], a, b These[F, S]) bool {
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
		panic("outcome/these: corrupt tag")
	}
}

// Compare orders two These values: First sorts before Second sorts
// before Both; same tags order by payload, Both lexicographically by
// first then second.
func Compare[F, S any](cf outcome.Cmp[F], cs outcome.Cmp[S], a, b These[F, S]) outcome.Ordering {
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
		panic("outcome/these: corrupt tag")
	}
}
