// Package pointalgebra defines the symbolic and quantitative timepoints,
// intervals, and the Vilain point-algebra relation set used throughout the
// mission planner's temporal reasoning (packages qtcn and stn build directly
// on these types).
//
// A Timepoint is either Qualitative (identified by a Label) or Quantitative
// (identified by a [Lo,Hi] bound, Lo <= Hi). Identity follows spec §3:
// qualitative timepoints compare by label, quantitative ones by bound tuple.
//
// Relation is a bitmask over the three base point-algebra primitives
// {Less, Equal, Greater}; every derived relation (<=, >=, !=, Universal,
// Empty) is a union of those primitives, which is what makes Compose and
// Intersect simple bitwise operations instead of a hand-maintained 8x8 table.
//
// Errors:
//
//	ErrInvalidBounds - Lo > Hi when constructing a quantitative Timepoint.
//	ErrTypeMismatch  - Equals called across a qualitative/quantitative pair.
package pointalgebra
