// Package outcome holds the shared kernel for the railway container
// families (either, maybe, these, ior): the comparison and combination
// protocols every family defers to for its payload types, and the
// Builder abstraction used by the collection combinators.
//
// Highlights:
// - Ordering: three-valued comparison result (Less, Equal, Greater)
// - Eq/Cmp/Combine: protocol function types supplied by callers
// - EqComparable/CmpOrdered: ready-made protocol instances
// - CombineErrors/CombineSlices: common semigroup instances
// - Builder: incremental Add/Finish accumulator with slice, map and
//   discard implementations
package outcome
