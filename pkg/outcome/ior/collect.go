package ior

import (
	"slices"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Reduce folds items sequentially, folding first payloads with cf.
// Both results keep the fold running; a bare First halts it with
// everything accumulated so far. Later items are never visited after a
// halt.
func Reduce[F, S, A any](cf outcome.Combine[F], items []A, fn func(acc S, item A) Ior[F, S], initial S) Ior[F, S] {
	return Do(cf, func(st *Stepper[F]) S {
		acc := initial
		for _, item := range items {
			acc = Bind(st, fn(acc, item))
		}
		return acc
	})
}

// TraverseInto evaluates f over items left to right, feeding each
// second payload into b and folding first payloads with cf. The
// finished structure comes back as Both when any item carried a first
// payload.
// R cannot be inferred from the builder, so call sites name it:
// TraverseInto[map[K]V](cf, items, f, b).
func TraverseInto[R any, F, S, A any](cf outcome.Combine[F], items []A, f func(item A) Ior[F, S], b outcome.Builder[S, R]) Ior[F, R] {
	return Do(cf, func(st *Stepper[F]) R {
		for _, item := range items {
			b.Add(Bind(st, f(item)))
		}
		return b.Finish()
	})
}

// Traverse evaluates f over items left to right and collects the
// second payloads in input order, folding first payloads with cf.
func Traverse[F, S, A any](cf outcome.Combine[F], items []A, f func(item A) Ior[F, S]) Ior[F, []S] {
	return TraverseInto[[]S](cf, items, f, outcome.NewSliceBuilder[S](len(items)))
}

// Collect turns a slice of Iors into an Ior of a slice, preserving
// input order and folding first payloads with cf.
func Collect[F, S any](cf outcome.Combine[F], os []Ior[F, S]) Ior[F, []S] {
	return Traverse(cf, os, func(o Ior[F, S]) Ior[F, S] { return o })
}

// Gather traverses a map in ascending key order, preserving keys in
// the built map and folding first payloads with cf. Sorting the keys
// keeps the accumulation order deterministic.
func Gather[F any, K constraints.Ordered, V, S any](cf outcome.Combine[F], m map[K]V, f func(k K, v V) Ior[F, S]) Ior[F, map[K]S] {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return Do(cf, func(st *Stepper[F]) map[K]S {
		b := outcome.NewMapBuilder[K, S](len(m))
		for _, k := range keys {
			b.Add(outcome.Entry[K, S]{Key: k, Val: Bind(st, f(k, m[k]))})
		}
		return b.Finish()
	})
}

// Lift2 adapts a binary function to one over Iors, evaluated left to
// right with first payloads folded by cf.
func Lift2[F, A, B, R any](cf outcome.Combine[F], f func(A, B) R) func(Ior[F, A], Ior[F, B]) Ior[F, R] {
	return func(a Ior[F, A], b Ior[F, B]) Ior[F, R] {
		return Do(cf, func(st *Stepper[F]) R {
			av := Bind(st, a)
			bv := Bind(st, b)
			return f(av, bv)
		})
	}
}

// Lift3 adapts a ternary function to one over Iors, evaluated left to
// right with first payloads folded by cf.
func Lift3[F, A, B, C, R any](cf outcome.Combine[F], f func(A, B, C) R) func(Ior[F, A], Ior[F, B], Ior[F, C]) Ior[F, R] {
	return func(a Ior[F, A], b Ior[F, B], c Ior[F, C]) Ior[F, R] {
		return Do(cf, func(st *Stepper[F]) R {
			av := Bind(st, a)
			bv := Bind(st, b)
			cv := Bind(st, c)
			return f(av, bv, cv)
		})
	}
}
