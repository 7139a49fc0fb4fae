// Package generator enumerates all finite groups of a given order, one
// representative per isomorphism class, by completing a multiplication table
// with depth-first backtracking and constraint propagation.
//
// Search state:
//   - An n×n grid of cells in [−1, n), −1 meaning undetermined.
//   - Row 0 and column 0 are pre-filled with the identity law; element 0 is
//     the identity of every group produced.
//
// Search (Generate):
//  1. Pick the first undetermined cell in row-major order.
//  2. No such cell: the grid is a leaf. Build a fingroup.Group and keep it
//     unless it is isomorphic to a group already kept.
//  3. Otherwise try values 0…n−1 in order, each on a copy of the grid, and
//     recurse into copies that survive propagation.
//
// Propagation (to a fixed point, any contradiction prunes the branch):
//   - Row inverses: a non-identity row holds exactly one 0 outside column 0.
//     Two zeros, or a fully determined row without a zero, is infeasible.
//     A single undetermined cell in a row without a zero is forced to 0.
//     Once row i has its 0 at column j, cell (j, i) must be 0 too.
//   - Column inverses: the same rule on the transposed view.
//   - Associativity: whenever (i·j)·k and i·(j·k) are both addressable,
//     they must agree; if only one side is known the other is forced.
//
// Leaves that survive propagation always satisfy the group axioms, so a
// fingroup.New failure at a leaf is reported as ErrInconsistentLeaf.
//
// Options:
//   - WithContext: cancellation, checked every few hundred nodes.
//   - WithLogger:  charmbracelet/log logger for debug traces.
//   - WithOnLeaf:  hook invoked on every leaf, duplicate or not.
//
// Complexity:
//   - Propagation pass: O(n³) for associativity, O(n²) for inverses.
//   - The tree is exponential in the worst case; orders up to about 10 are
//     practical.
package generator
