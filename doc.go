// Package groupenumerator enumerates finite groups of small order up to
// isomorphism, by completing Cayley tables.
//
// 🚀 What is in the box?
//
//	• Enumeration: backtracking over partial multiplication tables, pruned by
//	  the inverse rule and forced associativity
//	• Isomorphism: bijection search with propagation, plus a witness
//	• Reference groups: cyclic, symmetric, dihedral, quaternion, direct products
//	• Finite fields: F_q for prime powers q, with their additive and
//	  multiplicative groups
//	• Cayley graphs: generating sets, word metric, DOT and SVG output
//	• Catalog: enumeration results cached in files, Redis or MongoDB
//
// Packages:
//
//	perm/          permutations with an inverse index, lexicographic enumeration
//	fingroup/      validated groups built from Cayley tables, direct products
//	isocheck/      isomorphism oracle for groups and lists of groups
//	generator/     the enumeration engine
//	families/      Cyclic, Symmetric, Dihedral, Quaternion
//	finfield/      polynomials over Z_p and finite fields
//	cayley/        Cayley graph walks and rendering
//	catalog/       cache-through enumeration over pluggable stores
//	internal/      config, HTTP server and the genum CLI
//
// Quick example:
//
//	groups, err := generator.AllGroups(8)
//	// len(groups) == 5: Z8, Z2×Z4, Z2×Z2×Z2, D4, Q8
//
// The genum binary wraps it all:
//
//	go install github.com/fedimser/GroupEnumerator/cmd/genum@latest
//	genum enumerate --to 9 -o groups.txt
package groupenumerator
