// Package stream runs railway pipelines over channels of
// Either[error, T].
//
// Sources feed values into a channel, stages transform elements one at
// a time, and sinks gather or discard what comes out. Every goroutine
// honours the pipeline context, so an ended context winds the whole
// pipeline down without leaking lines.
//
// Key operations:
// - FromValues/FromSlice: feed values into a channel as successes
// - Emit: run a stage on a single line, preserving order
// - Fanout/Run: run a stage on several lines (Run reads the count
//   from the context via WithWorkers)
// - Through/ThroughMap/ThroughTry/ThroughTee/ThroughCheck: lift plain
//   functions into stages
// - CollectChan: gather successes in arrival order, first failure wins
// - Drain: consume and discard whatever remains
package stream
