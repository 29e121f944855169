// Package chain provides a fluent wrapper around Either[error, T]
// for building synchronous railway pipelines.
//
// It carries a context.Context alongside the running result so that
// each step receives both without the caller threading them by hand.
// Steps that change the value type are free functions; steps that keep
// it are methods.
//
// Key operations:
// - Start/FromValue: begin a chain from an Either or a plain value
// - Then: switch to a new Either[error, U] via a function
// - ThenTry: call a (U, error) function and fold the error in
// - Map: transform the successful value (T -> U)
// - Ensure: run a side effect on success without changing the result
// - OrElse: fall back to an alternative chain when this one failed
// - Finally: collapse the chain into a final value via handlers
package chain
