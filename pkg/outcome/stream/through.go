package stream

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome/either"
)

// Through lifts a switching function into a stage. Failures pass
// through untouched.
func Through[In, Out any](f func(ctx context.Context, v In) either.Either[error, Out]) Stage[In, Out] {
	return func(ctx context.Context, o either.Either[error, In]) either.Either[error, Out] {
		return either.FlatMap(o, func(v In) either.Either[error, Out] {
			return f(ctx, v)
		})
	}
}

// ThroughMap lifts a pure transformation into a stage.
func ThroughMap[In, Out any](f func(ctx context.Context, v In) Out) Stage[In, Out] {
	return func(ctx context.Context, o either.Either[error, In]) either.Either[error, Out] {
		return either.Map(o, func(v In) Out {
			return f(ctx, v)
		})
	}
}

// ThroughTry lifts a (value, error) function into a stage.
func ThroughTry[In, Out any](f func(ctx context.Context, v In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, o either.Either[error, In]) either.Either[error, Out] {
		return either.FlatMap(o, func(v In) either.Either[error, Out] {
			return either.Wrap(f(ctx, v))
		})
	}
}

// ThroughTee runs a side effect on successes and passes every element
// through unchanged.
func ThroughTee[T any](f func(ctx context.Context, v T)) Stage[T, T] {
	return func(ctx context.Context, o either.Either[error, T]) either.Either[error, T] {
		if v, ok := o.Second(); ok {
			f(ctx, v)
		}
		return o
	}
}

// ThroughCheck validates successes, turning invalid values into a
// failure built from the message.
func ThroughCheck[T any](check func(ctx context.Context, v T) (valid bool, msg string)) Stage[T, T] {
	return func(ctx context.Context, o either.Either[error, T]) either.Either[error, T] {
		return either.FlatMap(o, func(v T) either.Either[error, T] {
			if valid, msg := check(ctx, v); !valid {
				return either.First[error, T](errors.New(msg))
			}
			return either.Second[error](v)
		})
	}
}
