package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome/either"
)

// Chain pairs an error-carrying Either with the context the pipeline
// runs under, so steps can be composed fluently without threading both
// through every call.
type Chain[T any] struct {
	ctx context.Context
	res either.Either[error, T]
}

// Start begins a chain from an existing Either.
func Start[T any](ctx context.Context, o either.Either[error, T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: o}
}

// FromValue begins a chain from a plain value.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, either.Second[error](v))
}

// Result returns the underlying Either.
func (c Chain[T]) Result() either.Either[error, T] {
	return c.res
}

// Unpack collapses the chain into the language's (value, error) shape.
func (c Chain[T]) Unpack() (T, error) {
	return either.Unpack(c.res)
}

// Then switches to the Either produced by onSecond. A failed chain
// passes through and onSecond is never invoked.
func Then[T, U any](c Chain[T], onSecond func(ctx context.Context, v T) either.Either[error, U]) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: either.FlatMap(c.res, func(v T) either.Either[error, U] {
			return onSecond(c.ctx, v)
		}),
	}
}

// ThenTry calls a (value, error) function and folds the error into the
// chain.
func ThenTry[T, U any](c Chain[T], try func(ctx context.Context, v T) (U, error)) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: either.FlatMap(c.res, func(v T) either.Either[error, U] {
			return either.Wrap(try(c.ctx, v))
		}),
	}
}

// Map transforms the successful value.
func Map[T, U any](c Chain[T], onSecond func(ctx context.Context, v T) U) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: either.Map(c.res, func(v T) U {
			return onSecond(c.ctx, v)
		}),
	}
}

// Ensure runs a side effect on success without changing the result.
func (c Chain[T]) Ensure(onSecond func(ctx context.Context, v T)) Chain[T] {
	if v, ok := c.res.Second(); ok {
		onSecond(c.ctx, v)
	}
	return c
}

// OrElse keeps the chain when it succeeded and falls back to the
// alternative otherwise. When both failed the original failure wins.
func (c Chain[T]) OrElse(alternative Chain[T]) Chain[T] {
	if c.res.IsSecond() {
		return c
	}
	if alternative.res.IsSecond() {
		return alternative
	}
	return c
}

// Finally collapses the chain into a final value via the two handlers.
func (c Chain[T]) Finally(onSecond func(ctx context.Context, v T) T, onFirst func(ctx context.Context, err error) T) T {
	return either.Match(c.res,
		func(err error) T { return onFirst(c.ctx, err) },
		func(v T) T { return onSecond(c.ctx, v) })
}
