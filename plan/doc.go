// Package plan derives the deduplicated reach set from raw item names and
// splits it into balanced, disjoint per-rank assignments.
//
// Build is deterministic: reaches are sorted lexicographically before
// slicing, so the same input set and worker count always produce the same
// plan regardless of the caller's enumeration order.
package plan
