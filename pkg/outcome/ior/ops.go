package ior

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// Match performs case analysis, returning whichever branch applies.
func Match[F, S, T any](o Ior[F, S], onFirst func(F) T, onSecond func(S) T, onBoth func(F, S) T) T {
	switch o.tag {
	case tagFirst:
		return onFirst(o.first)
	case tagSecond:
		return onSecond(o.second)
	case tagBoth:
		return onBoth(o.first, o.second)
	default:
		panic("outcome/ior: corrupt tag")
	}
}

// Map transforms the second payload wherever it is present; the first
// payload rides along untouched.
func Map[F, S, S2 any](o Ior[F, S], f func(S) S2) Ior[F, S2] {
	switch o.tag {
	case tagFirst:
		return First[F, S2](o.first)
	case tagSecond:
		return Second[F](f(o.second))
	default:
		return Both(o.first, f(o.second))
	}
}

// MapFirst transforms the first payload wherever it is present.
func MapFirst[F, F2, S any](o Ior[F, S], f func(F) F2) Ior[F2, S] {
	switch o.tag {
	case tagFirst:
		return First[F2, S](f(o.first))
	case tagSecond:
		return Second[F2](o.second)
	default:
		return Both(f(o.first), o.second)
	}
}

// BiMap transforms both payloads at once.
func BiMap[F, F2, S, S2 any](o Ior[F, S], ff func(F) F2, fs func(S) S2) Ior[F2, S2] {
	switch o.tag {
	case tagFirst:
		return First[F2, S2](ff(o.first))
	case tagSecond:
		return Second[F2](fs(o.second))
	default:
		return Both(ff(o.first), fs(o.second))
	}
}

// FlatMap sequences o into the Ior produced by f, folding first
// payloads together with cf. A bare first short-circuits. When o is
// Both, f runs on the second payload and o's first payload is combined
// with whatever first payload f produces; nothing is ever dropped.
func FlatMap[F, S, S2 any](cf outcome.Combine[F], o Ior[F, S], f func(S) Ior[F, S2]) Ior[F, S2] {
	switch o.tag {
	case tagFirst:
		return First[F, S2](o.first)
	case tagSecond:
		return f(o.second)
	default:
		next := f(o.second)
		switch next.tag {
		case tagFirst:
			return First[F, S2](cf(o.first, next.first))
		case tagSecond:
			return Both(o.first, next.second)
		default:
			return Both(cf(o.first, next.first), next.second)
		}
	}
}

// Cmb combines two Iors slot by slot: first payloads fold with cf,
// second payloads with cs, and a slot present on only one side passes
// through as is. Only two bare Firsts produce a bare First; any
// present second payload survives, as a Both when a first payload is
// around.
func Cmb[F, S any](cf outcome.Combine[F], cs outcome.Combine[S], a, b Ior[F, S]) Ior[F, S] {
	if a.tag == tagFirst && b.tag == tagFirst {
		return First[F, S](cf(a.first, b.first))
	}

	af, aFirstOk := a.First()
	bf, bFirstOk := b.First()
	as, aSecondOk := a.Second()
	bs, bSecondOk := b.Second()

	first, firstOk := mergeSlot(cf, af, aFirstOk, bf, bFirstOk)
	second, _ := mergeSlot(cs, as, aSecondOk, bs, bSecondOk)
	if !firstOk {
		return Second[F](second)
	}
	return Both(first, second)
}

// mergeSlot folds one optional slot across two operands: both present
// combines, one present passes through.
func mergeSlot[T any](c outcome.Combine[T], av T, aok bool, bv T, bok bool) (T, bool) {
	switch {
	case aok && bok:
		return c(av, bv), true
	case aok:
		return av, true
	case bok:
		return bv, true
	default:
		var zero T
		return zero, false
	}
}
