// Package ior implements the inclusive three-variant railway container
// with combining accumulation: a value carries a first payload, a
// second payload, or both, and sequencing folds every first payload it
// meets with a caller-supplied Combine protocol. Nothing is ever
// dropped; warnings pile up while the second payload keeps flowing.
// For replacement accumulation without a combiner see the these
// package.
//
// Key operations:
// - First/Second/Both/FromEither: construct values
// - Match/Map/MapFirst/BiMap/FlatMap(cf): transform and sequence
// - Cmb(cf, cs): slot-by-slot combination of two values
// - Equal/Compare: protocol-driven equality and total order
// - Pad/ToEither: restructure
// - Do(cf)/Bind: imperative comprehensions; Both folds and resumes,
//   bare First folds and halts
// - DoAsync/BindTask: the same over task handles, awaited in order
// - Reduce/Collect/Traverse/TraverseInto/Gather/Lift2/Lift3:
//   sequential collection combinators, all folding with cf
package ior
