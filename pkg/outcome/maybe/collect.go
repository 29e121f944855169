package maybe

import (
	"slices"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Reduce folds items sequentially, short-circuiting on the first None
// produced by fn. Later items are never visited after a short-circuit.
func Reduce[S, A any](items []A, fn func(acc S, item A) Maybe[S], initial S) Maybe[S] {
	return Do(func(st *Stepper) S {
		acc := initial
		for _, item := range items {
			acc = Bind(st, fn(acc, item))
		}
		return acc
	})
}

// TraverseInto evaluates f over items left to right, feeding each
// payload into b. The builder's finished structure is returned as a
// Some; the first None wins and the builder is abandoned.
// R cannot be inferred from the builder, so call sites name it:
// TraverseInto[map[K]V](items, f, b).
func TraverseInto[R any, S, A any](items []A, f func(item A) Maybe[S], b outcome.Builder[S, R]) Maybe[R] {
	return Do(func(st *Stepper) R {
		for _, item := range items {
			b.Add(Bind(st, f(item)))
		}
		return b.Finish()
	})
}

// Traverse evaluates f over items left to right and collects the
// payloads in input order.
func Traverse[S, A any](items []A, f func(item A) Maybe[S]) Maybe[[]S] {
	return TraverseInto[[]S](items, f, outcome.NewSliceBuilder[S](len(items)))
}

// Collect turns a slice of Maybes into a Maybe of a slice, preserving
// input order.
func Collect[S any](os []Maybe[S]) Maybe[[]S] {
	return Traverse(os, func(o Maybe[S]) Maybe[S] { return o })
}

// Gather traverses a map in ascending key order, preserving keys in the
// built map. Sorting the keys keeps the short-circuit deterministic.
func Gather[K constraints.Ordered, V, S any](m map[K]V, f func(k K, v V) Maybe[S]) Maybe[map[K]S] {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return Do(func(st *Stepper) map[K]S {
		b := outcome.NewMapBuilder[K, S](len(m))
		for _, k := range keys {
			b.Add(outcome.Entry[K, S]{Key: k, Val: Bind(st, f(k, m[k]))})
		}
		return b.Finish()
	})
}

// Lift2 adapts a binary function to one over Maybes.
func Lift2[A, B, R any](f func(A, B) R) func(Maybe[A], Maybe[B]) Maybe[R] {
	return func(a Maybe[A], b Maybe[B]) Maybe[R] {
		return ZipWith(a, b, f)
	}
}

// Lift3 adapts a ternary function to one over Maybes.
func Lift3[A, B, C, R any](f func(A, B, C) R) func(Maybe[A], Maybe[B], Maybe[C]) Maybe[R] {
	return func(a Maybe[A], b Maybe[B], c Maybe[C]) Maybe[R] {
		return Do(func(st *Stepper) R {
			av := Bind(st, a)
			bv := Bind(st, b)
			cv := Bind(st, c)
			return f(av, bv, cv)
		})
	}
}
