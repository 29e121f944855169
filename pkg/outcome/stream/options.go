package stream

import "context"

type optionKey string

const workerOptionKey optionKey = "worker_options"

type workerOptions struct {
	maxCount int
}

// WithWorkers returns a context carrying the line count Run should use.
func WithWorkers(ctx context.Context, n int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workerOptions{maxCount: n})
}

// Workers reads the line count carried by the context, or fallback when
// none was set.
func Workers(ctx context.Context, fallback int) int {
	options, ok := ctx.Value(workerOptionKey).(workerOptions)
	if ok {
		return options.maxCount
	}
	return fallback
}
