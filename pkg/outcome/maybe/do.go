package maybe

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome/task"
)

// Stepper drives one comprehension. Absence carries no payload, so the
// stepper records nothing; its identity alone routes halts. A stepper
// belongs to the Do call that created it and must not escape the body.
type Stepper struct {
	// Never zero-sized: distinct steppers must have distinct addresses
	// or halt routing breaks.
	_ byte
}

// haltToken aborts a comprehension body. It carries the stepper's
// identity so that nested comprehensions and foreign panics pass
// through untouched.
type haltToken struct {
	st *Stepper
}

// Do evaluates an imperative comprehension over Maybe values. The body
// binds intermediate Maybes with Bind or Check; the first absence halts
// the body (deferred cleanup inside the body still runs, exactly once)
// and the whole comprehension is None. A body that returns normally
// produces a Some.
//
// Panics raised by the body itself are not intercepted; they unwind to
// the caller as usual.
func Do[S any](body func(st *Stepper) S) (out Maybe[S]) {
	st := &Stepper{}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if h, ok := r.(haltToken); ok && h.st == st {
			out = None[S]()
			return
		}
		panic(r)
	}()
	return Some(body(st))
}

// Bind unwraps the payload of o, or halts the comprehension on absence.
func Bind[X any](st *Stepper, o Maybe[X]) X {
	if o.present {
		return o.value
	}
	panic(haltToken{st: st})
}

// Check is Bind over the language's comma-ok shape: it returns v when
// ok holds and halts the comprehension otherwise.
func Check[X any](st *Stepper, v X, ok bool) X {
	if ok {
		return v
	}
	panic(haltToken{st: st})
}

// DoAsync runs the comprehension body on its own goroutine and returns
// the handle to its eventual result. Steps inside the body await
// previously dispatched tasks strictly in the order written; DoAsync
// itself never parallelizes them.
func DoAsync[S any](ctx context.Context, body func(ctx context.Context, st *Stepper) S) *task.Task[Maybe[S]] {
	return task.Go(ctx, func(ctx context.Context) Maybe[S] {
		return Do(func(st *Stepper) S {
			return body(ctx, st)
		})
	})
}

// BindTask awaits t and binds its result. When ctx gives up before the
// task completes, the comprehension halts with None; the task itself
// keeps running unobserved.
func BindTask[X any](st *Stepper, ctx context.Context, t *task.Task[Maybe[X]]) X {
	o, ok := t.Await(ctx)
	if !ok {
		panic(haltToken{st: st})
	}
	return Bind(st, o)
}
