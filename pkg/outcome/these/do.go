package these

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome/task"
)

// Stepper drives one comprehension. It tracks the latest note seen by a
// bind; a newer note simply replaces the older one. A stepper belongs
// to the Do call that created it and must not escape the body.
type Stepper[F any] struct {
	noted bool
	first F
}

// haltToken aborts a comprehension body. It carries the stepper's
// identity so that nested comprehensions and foreign panics pass
// through untouched.
type haltToken struct {
	st any
}

// Do evaluates an imperative comprehension over These values. Binds on
// Both keep the body running and note the first payload, each newer
// note replacing the last; a bare First halts the body (deferred
// cleanup inside the body still runs, exactly once). A body that
// returns normally produces Both when anything was noted, Second
// otherwise.
//
// Panics raised by the body itself are not intercepted; they unwind to
// the caller as usual.
func Do[F, S any](body func(st *Stepper[F]) S) (out These[F, S]) {
	st := &Stepper[F]{}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if h, ok := r.(haltToken); ok && h.st == st {
			out = First[F, S](st.first)
			return
		}
		panic(r)
	}()
	ret := body(st)
	if st.noted {
		return Both(st.first, ret)
	}
	return Second[F](ret)
}

// Bind unwraps the second payload of o. A Both replaces the stepper's
// note and resumes; a bare First replaces the note and halts.
func Bind[F, X any](st *Stepper[F], o These[F, X]) X {
	switch o.tag {
	case tagFirst:
		st.noted = true
		st.first = o.first
		panic(haltToken{st: st})
	case tagSecond:
		return o.second
	default:
		st.noted = true
		st.first = o.first
		return o.second
	}
}

// DoAsync runs the comprehension body on its own goroutine and returns
// the handle to its eventual result. Steps inside the body await
// previously dispatched tasks strictly in the order written; DoAsync
// itself never parallelizes them.
func DoAsync[F, S any](ctx context.Context, body func(ctx context.Context, st *Stepper[F]) S) *task.Task[These[F, S]] {
	return task.Go(ctx, func(ctx context.Context) These[F, S] {
		return Do(func(st *Stepper[F]) S {
			return body(ctx, st)
		})
	})
}

// BindTask awaits t and binds its result. When ctx gives up before the
// task completes, the comprehension halts with the context's error; the
// task itself keeps running unobserved.
func BindTask[X any](st *Stepper[error], ctx context.Context, t *task.Task[These[error, X]]) X {
	o, ok := t.Await(ctx)
	if !ok {
		st.noted = true
		st.first = ctx.Err()
		panic(haltToken{st: st})
	}
	return Bind(st, o)
}
