// Package perm implements partial permutations of {0,…,n−1} and a few
// enumeration utilities on top of them.
//
// A Permutation keeps two arrays in lock-step:
//
//	forward[pos]   → value or Unset
//	inverse[value] → pos   or Unset
//
// so both "where does pos go" and "who already claimed value" are O(1).
// Assignment is monotonic: once a position or a value is taken it is never
// overwritten. Speculative search therefore clones before extending:
//
//	next := p.Clone()
//	next.Set(pos, v)
//
// The isomorphism search in package isocheck is the main consumer; the
// symmetric-group factory in package families uses All and Compose.
//
// Complexity:
//   - Set/Get/InverseOf: O(1).
//   - EmptyPos/PossibleValues/Clone: O(n).
//   - Next: O(n); All: O(n·n!) time and memory (materialized, not lazy).
package perm
