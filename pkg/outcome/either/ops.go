package either

// Match performs case analysis, returning whichever branch applies.
func Match[F, S, T any](o Either[F, S], onFirst func(F) T, onSecond func(S) T) T {
	if o.isSecond {
		return onSecond(o.second)
	}
	return onFirst(o.first)
}

// Map transforms the second payload; a first passes through unchanged.
func Map[F, S, S2 any](o Either[F, S], f func(S) S2) Either[F, S2] {
	if !o.isSecond {
		return First[F, S2](o.first)
	}
	return Second[F](f(o.second))
}

// MapFirst transforms the first payload; a second passes through
// unchanged.
func MapFirst[F, F2, S any](o Either[F, S], f func(F) F2) Either[F2, S] {
	if o.isSecond {
		return Second[F2](o.second)
	}
	return First[F2, S](f(o.first))
}

// FlatMap switches to the Either produced by f when o is a second; a
// first short-circuits and f is never invoked.
func FlatMap[F, S, S2 any](o Either[F, S], f func(S) Either[F, S2]) Either[F, S2] {
	if !o.isSecond {
		return First[F, S2](o.first)
	}
	return f(o.second)
}

// ZipWith combines two seconds via f. The first failure encountered
// wins; no accumulation happens.
func ZipWith[F, A, B, R any](a Either[F, A], b Either[F, B], f func(A, B) R) Either[F, R] {
	if !a.isSecond {
		return First[F, R](a.first)
	}
	if !b.isSecond {
		return First[F, R](b.first)
	}
	return Second[F](f(a.second, b.second))
}

// Recover is the dual of FlatMap: f is applied to a first payload and
// may substitute a fresh Either; a second passes through unchanged.
func Recover[F, F2, S any](o Either[F, S], f func(F) Either[F2, S]) Either[F2, S] {
	if o.isSecond {
		return Second[F2](o.second)
	}
	return f(o.first)
}
