package stream

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome/either"
)

// Stage processes one element of a pipeline.
type Stage[In, Out any] func(ctx context.Context, o either.Either[error, In]) either.Either[error, Out]

func locomotive[In, Out any](ctx context.Context, in <-chan either.Either[error, In],
	out chan<- either.Either[error, Out], stage Stage[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case o, ok := <-in:
			if !ok {
				return
			}

			processed := stage(ctx, o)

			select {
			case <-ctx.Done():
				return
			case out <- processed:
			}
		}
	}
}

// Emit runs stage over every element of in on a single line, preserving
// arrival order.
func Emit[In, Out any](ctx context.Context, in <-chan either.Either[error, In],
	stage Stage[In, Out]) <-chan either.Either[error, Out] {
	return Fanout(ctx, in, stage, 1)
}

// Fanout runs stage over in on the given number of lines. The output
// closes once every line has drained. Order across lines is not
// preserved.
func Fanout[In, Out any](ctx context.Context, in <-chan either.Either[error, In],
	stage Stage[In, Out], lines int) <-chan either.Either[error, Out] {

	if lines < 1 {
		lines = 1
	}

	out := make(chan either.Either[error, Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go locomotive(ctx, in, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Run is Fanout with the line count taken from the context, falling
// back to a single line.
func Run[In, Out any](ctx context.Context, in <-chan either.Either[error, In],
	stage Stage[In, Out]) <-chan either.Either[error, Out] {
	return Fanout(ctx, in, stage, Workers(ctx, 1))
}
