package these

import (
	"github.com/ib-77/outcome/pkg/outcome/maybe"
)

// Match performs case analysis, returning whichever branch applies.
func Match[F, S, T any](o These[F, S], onFirst func(F) T, onSecond func(S) T, onBoth func(F, S) T) T {
	switch o.tag {
	case tagFirst:
		return onFirst(o.first)
	case tagSecond:
		return onSecond(o.second)
	case tagBoth:
		return onBoth(o.first, o.second)
	default:
		panic("outcome/these: corrupt tag")
	}
}

// Map transforms the second payload wherever it is present; the note
// rides along untouched.
func Map[F, S, S2 any](o These[F, S], f func(S) S2) These[F, S2] {
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
func MapFirst[F, F2, S any](o These[F, S], f func(F) F2) These[F2, S] {
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
func BiMap[F, F2, S, S2 any](o These[F, S], ff func(F) F2, fs func(S) S2) These[F2, S2] {
	switch o.tag {
	case tagFirst:
		return First[F2, S2](ff(o.first))
	case tagSecond:
		return Second[F2](fs(o.second))
	default:
		return Both(ff(o.first), fs(o.second))
	}
}

// FlatMap sequences o into the These produced by f. A bare first
// short-circuits. When o is Both, f runs on the second payload and any
// note f produces replaces o's note; o's note survives only a plain
// Second result.
func FlatMap[F, S, S2 any](o These[F, S], f func(S) These[F, S2]) These[F, S2] {
	switch o.tag {
	case tagFirst:
		return First[F, S2](o.first)
	case tagSecond:
		return f(o.second)
	default:
		next := f(o.second)
		if next.tag == tagSecond {
			return Both(o.first, next.second)
		}
		return next
	}
}

// Merge overlays b onto a slot by slot: a payload present in b wins its
// slot, a slot empty in b keeps a's payload.
func Merge[F, S any](a, b These[F, S]) These[F, S] {
	first, firstOk := b.First()
	if !firstOk {
		first, firstOk = a.First()
	}
	second, secondOk := b.Second()
	if !secondOk {
		second, secondOk = a.Second()
	}
	switch {
	case firstOk && secondOk:
		return Both(first, second)
	case firstOk:
		return First[F, S](first)
	default:
		return Second[F](second)
	}
}

// Swap exchanges the two sides.
func Swap[F, S any](o These[F, S]) These[S, F] {
	switch o.tag {
	case tagFirst:
		return Second[S](o.first)
	case tagSecond:
		return First[S, F](o.second)
	default:
		return Both(o.second, o.first)
	}
}

// Pad splits a These into its two optional payloads. At least one of
// the results is present.
func Pad[F, S any](o These[F, S]) (maybe.Maybe[F], maybe.Maybe[S]) {
	switch o.tag {
	case tagFirst:
		return maybe.Some(o.first), maybe.None[S]()
	case tagSecond:
		return maybe.None[F](), maybe.Some(o.second)
	default:
		return maybe.Some(o.first), maybe.Some(o.second)
	}
}
