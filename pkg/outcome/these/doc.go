// Package these implements the inclusive three-variant railway
// container: a value carries a first payload, a second payload, or
// both. The first side acts as a note that rides along with a still
// usable second payload. Sequencing keeps only the latest note: a
// newer note replaces the previous one, so the first side needs no
// combiner. For combining accumulation see the ior package.
//
// Key operations:
// - First/Second/Both/FromEither: construct values
// - Match/Map/MapFirst/BiMap/FlatMap: transform and sequence
// - Merge/Swap/Pad/ToEither: restructure
// - Equal/Compare: protocol-driven equality and total order
// - Do/Bind: imperative comprehensions; Both resumes, bare First halts
// - DoAsync/BindTask: the same over task handles, awaited in order
// - Reduce/Collect/Traverse/TraverseInto/Gather/Lift2/Lift3:
//   sequential collection combinators
package these
