package either

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/task"
)

// Stepper drives one comprehension. It records the first payload that
// halted the run. A stepper belongs to the Do call that created it and
// must not escape the body.
type Stepper[F any] struct {
	first F
	// Never zero-sized, even for a zero-sized F: distinct steppers
	// must have distinct addresses or halt routing breaks.
	_ byte
}

// haltToken aborts a comprehension body. It carries the stepper's
// identity so that nested comprehensions and foreign panics pass
// through untouched.
type haltToken struct {
	st any
}

// Do evaluates an imperative comprehension over Either values. The body
// binds intermediate Eithers with Bind or Check; the first First
// payload halts the body (deferred cleanup inside the body still runs,
// exactly once) and becomes the result. A body that returns normally
// produces a Second.
//
// Panics raised by the body itself are not intercepted; they unwind to
// the caller as usual.
func Do[F, S any](body func(st *Stepper[F]) S) (out Either[F, S]) {
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
	return Second[F](body(st))
}

// Bind unwraps the second payload of o, or halts the comprehension with
// o's first payload.
func Bind[F, X any](st *Stepper[F], o Either[F, X]) X {
	if o.isSecond {
		return o.second
	}
	st.first = o.first
	panic(haltToken{st: st})
}

// Check is Bind over the language's (value, error) shape: it returns v
// when err is nil and halts the comprehension with err otherwise.
func Check[X any](st *Stepper[error], v X, err error) X {
	if outcome.IsNil(err) {
		return v
	}
	st.first = err
	panic(haltToken{st: st})
}

// DoAsync runs the comprehension body on its own goroutine and returns
// the handle to its eventual result. Steps inside the body await
// previously dispatched tasks strictly in the order written; DoAsync
// itself never parallelizes them.
func DoAsync[F, S any](ctx context.Context, body func(ctx context.Context, st *Stepper[F]) S) *task.Task[Either[F, S]] {
	return task.Go(ctx, func(ctx context.Context) Either[F, S] {
		return Do(func(st *Stepper[F]) S {
			return body(ctx, st)
		})
	})
}

// BindTask awaits t and binds its result. When ctx gives up before the
// task completes, the comprehension halts with the context's error; the
// task itself keeps running unobserved.
func BindTask[X any](st *Stepper[error], ctx context.Context, t *task.Task[Either[error, X]]) X {
	o, ok := t.Await(ctx)
	if !ok {
		st.first = ctx.Err()
		panic(haltToken{st: st})
	}
	return Bind(st, o)
}
