package ior

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/task"
)

// Stepper drives one comprehension. It folds every first payload seen
// by a bind into a running accumulator using the comprehension's
// Combine protocol. A stepper belongs to the Do call that created it
// and must not escape the body.
type Stepper[F any] struct {
	cf    outcome.Combine[F]
	noted bool
	acc   F
}

// note folds e into the running accumulator.
func (st *Stepper[F]) note(e F) {
	if st.noted {
		st.acc = st.cf(st.acc, e)
		return
	}
	st.noted = true
	st.acc = e
}

// haltToken aborts a comprehension body. It carries the stepper's
// identity so that nested comprehensions and foreign panics pass
// through untouched.
type haltToken struct {
	st any
}

// Do evaluates an imperative comprehension over Ior values, folding
// first payloads with cf. Binds on Both keep the body running and fold
// their first payload into the accumulator; a bare First folds then
// halts the body (deferred cleanup inside the body still runs, exactly
// once). A body that returns normally produces Both when anything
// accumulated, Second otherwise.
//
// Panics raised by the body itself are not intercepted; they unwind to
// the caller as usual.
func Do[F, S any](cf outcome.Combine[F], body func(st *Stepper[F]) S) (out Ior[F, S]) {
	st := &Stepper[F]{cf: cf}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if h, ok := r.(haltToken); ok && h.st == st {
			out = First[F, S](st.acc)
			return
		}
		panic(r)
	}()
	ret := body(st)
	if st.noted {
		return Both(st.acc, ret)
	}
	return Second[F](ret)
}

// Bind unwraps the second payload of o. A Both folds its first payload
// into the accumulator and resumes; a bare First folds and halts.
func Bind[F, X any](st *Stepper[F], o Ior[F, X]) X {
	switch o.tag {
	case tagFirst:
		st.note(o.first)
		panic(haltToken{st: st})
	case tagSecond:
		return o.second
	default:
		st.note(o.first)
		return o.second
	}
}

// DoAsync runs the comprehension body on its own goroutine and returns
// the handle to its eventual result. Steps inside the body await
// previously dispatched tasks strictly in the order written; DoAsync
// itself never parallelizes them.
func DoAsync[F, S any](ctx context.Context, cf outcome.Combine[F], body func(ctx context.Context, st *Stepper[F]) S) *task.Task[Ior[F, S]] {
	return task.Go(ctx, func(ctx context.Context) Ior[F, S] {
		return Do(cf, func(st *Stepper[F]) S {
			return body(ctx, st)
		})
	})
}

// BindTask awaits t and binds its result. When ctx gives up before the
// task completes, the context's error is folded into the accumulator
// and the comprehension halts; the task itself keeps running
// unobserved.
func BindTask[X any](st *Stepper[error], ctx context.Context, t *task.Task[Ior[error, X]]) X {
	o, ok := t.Await(ctx)
	if !ok {
		st.note(ctx.Err())
		panic(haltToken{st: st})
	}
	return Bind(st, o)
}
