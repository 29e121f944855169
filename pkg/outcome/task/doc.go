// Package task provides a minimal promise-like handle for computations
// dispatched on their own goroutines. It backs the asynchronous
// comprehensions and the concurrent collection combinators of the
// container families.
//
// Key operations:
// - Go: spawn a computation, obtain its handle
// - Resolved: wrap an already-known value
// - Await: join with context-bounded waiting
// - Done/Result: completion signal and memoized result
// - All: sequential join of several handles
//
// Each handle carries an id and its UTC spawn time for tracing; neither
// participates in any comparison.
package task
