package maybe

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/ib-77/outcome/pkg/outcome/task"
)

// completion pairs a finished element with its submission index so the
// aggregate can be assembled in input order regardless of completion
// order.
type completion[S any] struct {
	idx int
	o   Maybe[S]
}

// TraversePar dispatches f for every item immediately, each on its own
// goroutine, and resolves as soon as either all complete present or any
// one completes as None. The first None to complete wins; the remaining
// in-flight computations are left to finish on their own and their
// results are discarded. No cancellation is issued to them.
//
// The aggregate preserves input order by index, not completion order.
func TraversePar[S, A any](ctx context.Context, items []A, f func(ctx context.Context, item A) Maybe[S]) Maybe[[]S] {
	if len(items) == 0 {
		return Some([]S{})
	}
	// Buffered so abandoned completions never block their goroutines.
	ch := make(chan completion[S], len(items))
	for i, item := range items {
		go func() {
			ch <- completion[S]{idx: i, o: f(ctx, item)}
		}()
	}
	return assemble(ch, len(items))
}

// TraverseParN is TraversePar with at most n computations in flight at
// a time. n <= 0 means unbounded. The aggregate still resolves early on
// the first None; waiting dispatches then run and are discarded, they
// are not cancelled.
func TraverseParN[S, A any](ctx context.Context, n int, items []A, f func(ctx context.Context, item A) Maybe[S]) Maybe[[]S] {
	if n <= 0 || n >= len(items) {
		return TraversePar(ctx, items, f)
	}
	sem := semaphore.NewWeighted(int64(n))
	ch := make(chan completion[S], len(items))
	for i, item := range items {
		go func() {
			// Background acquire: dispatch is unconditional, only
			// execution is bounded.
			_ = sem.Acquire(context.Background(), 1)
			defer sem.Release(1)
			ch <- completion[S]{idx: i, o: f(ctx, item)}
		}()
	}
	return assemble(ch, len(items))
}

// CollectPar aggregates already-dispatched tasks. Submission order
// determines the position of each result; completion order only
// determines which absence wins. Each task is awaited to completion on
// a forwarding goroutine; the aggregate itself resolves early on the
// first None to arrive.
func CollectPar[S any](ts []*task.Task[Maybe[S]]) Maybe[[]S] {
	if len(ts) == 0 {
		return Some([]S{})
	}
	ch := make(chan completion[S], len(ts))
	for i, t := range ts {
		go func() {
			<-t.Done()
			ch <- completion[S]{idx: i, o: t.Result()}
		}()
	}
	return assemble(ch, len(ts))
}

// assemble drains n completions, staging payloads into an
// index-addressed slice. Only this goroutine touches the slice, so no
// locking is needed even though completions arrive from many
// goroutines.
func assemble[S any](ch <-chan completion[S], n int) Maybe[[]S] {
	out := make([]S, n)
	for range n {
		c := <-ch
		if !c.o.present {
			return None[[]S]()
		}
		out[c.idx] = c.o.value
	}
	return Some(out)
}
