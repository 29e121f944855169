package maybe

// Match performs case analysis, returning whichever branch applies.
func Match[S, T any](o Maybe[S], onNone func() T, onSome func(S) T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// Map transforms the payload; None passes through unchanged.
func Map[S, S2 any](o Maybe[S], f func(S) S2) Maybe[S2] {
	if !o.present {
		return None[S2]()
	}
	return Some(f(o.value))
}

// FlatMap switches to the Maybe produced by f when o is present; None
// short-circuits and f is never invoked.
func FlatMap[S, S2 any](o Maybe[S], f func(S) Maybe[S2]) Maybe[S2] {
	if !o.present {
		return None[S2]()
	}
	return f(o.value)
}

// ZipWith combines two present payloads via f; any absence wins.
func ZipWith[A, B, R any](a Maybe[A], b Maybe[B], f func(A, B) R) Maybe[R] {
	if !a.present || !b.present {
		return None[R]()
	}
	return Some(f(a.value, b.value))
}

// OrElse substitutes the fallback Maybe on absence.
func OrElse[S any](o Maybe[S], fallback Maybe[S]) Maybe[S] {
	if o.present {
		return o
	}
	return fallback
}

// Filter keeps the payload only when pred holds.
func Filter[S any](o Maybe[S], pred func(S) bool) Maybe[S] {
	if !o.present || !pred(o.value) {
		return None[S]()
	}
	return o
}
