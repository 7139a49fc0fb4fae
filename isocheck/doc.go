// Package isocheck decides whether two finite groups are isomorphic by a
// depth-first search over partial element bijections with propagation.
//
// Search (per pair g1, g2 of equal order n, after comparing how many
// elements of each order the two groups have):
//  1. Seed p(0) = 0: identities must correspond.
//  2. Propagate to a fixed point: for every pair (i, j) of mapped elements,
//     p(g1[i][j]) must equal g2[p(i)][p(j)]. An already mapped product is
//     checked; an unmapped one is forced, unless the target is claimed by
//     another element, which kills the branch.
//  3. If p is total it is an isomorphism: stop (first match wins).
//  4. Otherwise branch on the smallest unmapped element, trying unclaimed
//     targets in ascending order on a clone of p.
//
// IsomorphismContext polls a context every few nodes, so callers can bound
// the search in time.
//
// The search is deterministic: the same inputs always yield the same witness.
//
// Complexity:
//   - Propagation pass: O(n²); passes per node ≤ n.
//   - Worst case exponential in the number of generators, in practice a
//     handful of branch points per call.
package isocheck
