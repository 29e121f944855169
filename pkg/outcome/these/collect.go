package these

import (
	"slices"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Reduce folds items sequentially. Both results keep the fold running
// with their note replacing the last; a bare First halts it. Later
// items are never visited after a halt.
func Reduce[F, S, A any](items []A, fn func(acc S, item A) These[F, S], initial S) These[F, S] {
	return Do(func(st *Stepper[F]) S {
		acc := initial
		for _, item := range items {
			acc = Bind(st, fn(acc, item))
		}
		return acc
	})
}

// TraverseInto evaluates f over items left to right, feeding each
// second payload into b. Notes accumulate latest-wins; the finished
// structure comes back as Both when any item carried a note.
// R cannot be inferred from the builder, so call sites name it:
// TraverseInto[map[K]V](items, f, b).
func TraverseInto[R any, F, S, A any](items []A, f func(item A) These[F, S], b outcome.Builder[S, R]) These[F, R] {
	return Do(func(st *Stepper[F]) R {
		for _, item := range items {
			b.Add(Bind(st, f(item)))
		}
		return b.Finish()
	})
}

// Traverse evaluates f over items left to right and collects the
// second payloads in input order.
func Traverse[F, S, A any](items []A, f func(item A) These[F, S]) These[F, []S] {
	return TraverseInto[[]S](items, f, outcome.NewSliceBuilder[S](len(items)))
}

// Collect turns a slice of These into a These of a slice, preserving
// input order.
func Collect[F, S any](os []These[F, S]) These[F, []S] {
	return Traverse(os, func(o These[F, S]) These[F, S] { return o })
}

// Gather traverses a map in ascending key order, preserving keys in the
// built map. Sorting the keys makes the surviving note deterministic.
func Gather[F any, K constraints.Ordered, V, S any](m map[K]V, f func(k K, v V) These[F, S]) These[F, map[K]S] {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return Do(func(st *Stepper[F]) map[K]S {
		b := outcome.NewMapBuilder[K, S](len(m))
		for _, k := range keys {
			b.Add(outcome.Entry[K, S]{Key: k, Val: Bind(st, f(k, m[k]))})
		}
		return b.Finish()
	})
}

// Lift2 adapts a binary function to one over These, evaluated left to
// right.
func Lift2[F, A, B, R any](f func(A, B) R) func(These[F, A], These[F, B]) These[F, R] {
	return func(a These[F, A], b These[F, B]) These[F, R] {
		return Do(func(st *Stepper[F]) R {
			av := Bind(st, a)
			bv := Bind(st, b)
			return f(av, bv)
		})
	}
}

// Lift3 adapts a ternary function to one over These, evaluated left to
// right.
func Lift3[F, A, B, C, R any](f func(A, B, C) R) func(These[F, A], These[F, B], These[F, C]) These[F, R] {
	return func(a These[F, A], b These[F, B], c These[F, C]) These[F, R] {
		return Do(func(st *Stepper[F]) R {
			av := Bind(st, a)
			bv := Bind(st, b)
			cv := Bind(st, c)
			return f(av, bv, cv)
		})
	}
}
