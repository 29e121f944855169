// Package maybe implements the optional specialization of the railway
// container: a value is either Some (present) or None (absent), and
// absence carries no payload. The zero value of Maybe is None.
//
// Key operations:
// - Some/None/FromPtr/FromOk/FromEither: construct values
// - Match/Map/FlatMap/ZipWith/OrElse/Filter: transform and sequence
// - Equal/Compare/Cmb: protocol-driven equality, total order,
//   combination (None is the identity)
// - Do/Bind/Check: imperative comprehensions that halt on absence
// - DoAsync/BindTask: the same over task handles, awaited in order
// - Reduce/Collect/Traverse/TraverseInto/Gather/Lift2/Lift3: sequential
//   collection combinators
// - TraversePar/TraverseParN/CollectPar: concurrent variants that
//   dispatch every element immediately and resolve on the first
//   absence to complete
package maybe
