// SPDX-License-Identifier: MIT
// Package: GroupEnumerator/families
//
// Package families builds the reference groups used to check enumeration
// results: cyclic, symmetric, dihedral and the quaternion group.
//
// Contract:
//   - Each factory validates its parameter first and returns a sentinel error
//     (ErrTooSmall, ErrTooLarge) wrapped with the factory name.
//   - Element 0 is always the identity, as fingroup requires.
//   - Every result goes through fingroup.New; a factory never hands out an
//     unvalidated table.
//
// Labelling:
//   - Cyclic(n):    k ↦ g^k.
//   - Symmetric(n): index in perm.All(n), so 0 is the identity permutation.
//   - Dihedral(n):  r^k ↦ k, s·r^k ↦ n+k.
//   - Quaternion(): ±1, ±i, ±j, ±k ↦ 0…7 as 2·unit + sign.
package families
