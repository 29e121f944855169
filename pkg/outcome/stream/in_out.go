package stream

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome/either"
)

// FromValues feeds the given values into a fresh channel as successes.
// The channel closes after the last value, or early when the context
// ends.
func FromValues[T any](ctx context.Context, values ...T) <-chan either.Either[error, T] {
	out := make(chan either.Either[error, T])

	go func() {
		defer close(out)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case out <- either.Second[error](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// FromSlice feeds a slice into a fresh channel as successes.
func FromSlice[T any](ctx context.Context, items []T) <-chan either.Either[error, T] {
	return FromValues(ctx, items...)
}

// CollectChan gathers successes from in, in arrival order, until the
// channel closes. The first failure seen wins; the channel is still
// drained afterwards so upstream lines finish. A context that ends
// mid-collect wins over anything still buffered.
func CollectChan[T any](ctx context.Context, in <-chan either.Either[error, T]) either.Either[error, []T] {
	collected := make([]T, 0)
	var firstErr error

	for {
		select {
		case <-ctx.Done():
			return either.First[error, []T](ctx.Err())
		case o, ok := <-in:
			if !ok {
				if firstErr != nil {
					return either.First[error, []T](firstErr)
				}
				return either.Second[error](collected)
			}

			if firstErr != nil {
				continue
			}
			if e, failed := o.First(); failed {
				firstErr = e
				continue
			}
			collected = append(collected, o.MustSecond())
		}
	}
}

// Drain consumes in until it closes or the context ends, discarding
// every element.
func Drain[T any](ctx context.Context, in <-chan T) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-in:
			if !ok {
				return
			}
		}
	}
}
