// Package either implements the strict two-variant railway container:
// a value is exactly one of First (failure, by convention) or Second
// (success). Sequencing is right-biased and short-circuits on the first
// First; nothing accumulates.
//
// Key operations:
// - First/Second/Wrap/Try: construct values
// - Match/Map/MapFirst/FlatMap/ZipWith/Recover: transform and sequence
// - Equal/Compare/Cmb: protocol-driven equality, total order, combination
// - Do/Bind/Check: imperative comprehensions that short-circuit
// - DoAsync/BindTask: the same over task handles, awaited in order
// - Reduce/Collect/Traverse/TraverseInto/Gather/Lift2/Lift3: sequential
//   collection combinators
// - TraversePar/TraverseParN/CollectPar: concurrent variants that
//   dispatch every element immediately and resolve on the first
//   failure to complete
package either
