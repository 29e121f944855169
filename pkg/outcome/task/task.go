package task

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Task is a handle to a computation already running on its own
// goroutine. The result is written once and memoized; any number of
// goroutines may await it.
type Task[T any] struct {
	id        uuid.UUID
	startedAt time.Time
	done      chan struct{}
	result    T
}

// Go starts fn on a new goroutine and returns its handle. The handle is
// stamped with an id and the UTC start time.
func Go[T any](ctx context.Context, fn func(ctx context.Context) T) *Task[T] {
	t := &Task[T]{
		id:        uuid.New(),
		startedAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
	go func() {
		defer close(t.done)
		t.result = fn(ctx)
	}()
	return t
}

// Resolved returns an already-completed task carrying v.
func Resolved[T any](v T) *Task[T] {
	t := &Task[T]{
		id:        uuid.New(),
		startedAt: time.Now().UTC(),
		done:      make(chan struct{}),
		result:    v,
	}
	close(t.done)
	return t
}

// Await blocks until the task completes or ctx is done. It reports
// false when the context gave up first; the task keeps running and its
// result may still be awaited later.
func (t *Task[T]) Await(ctx context.Context) (T, bool) {
	select {
	case <-t.done:
		return t.result, true
	case <-ctx.Done():
		var zero T
		return zero, false
	}
}

// Result returns the memoized result. It must only be called after the
// task completed; waiting is Await's or Done's job.
func (t *Task[T]) Result() T {
	select {
	case <-t.done:
		return t.result
	default:
		panic("outcome/task: result read before completion")
	}
}

// Done is closed when the task has completed.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

func (t *Task[T]) Id() uuid.UUID {
	return t.id
}

// StartedAt is the UTC time the task was spawned.
func (t *Task[T]) StartedAt() time.Time {
	return t.startedAt
}

// All awaits every task in order and collects the results. It reports
// false as soon as ctx is done, leaving the remaining tasks running.
func All[T any](ctx context.Context, ts ...*Task[T]) ([]T, bool) {
	out := make([]T, 0, len(ts))
	for _, t := range ts {
		v, ok := t.Await(ctx)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}
