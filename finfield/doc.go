// SPDX-License-Identifier: MIT
// Package: GroupEnumerator/finfield
//
// Package finfield builds the finite fields F_q, q = p^k, as Z_p[x]/(m(x))
// for the first monic irreducible m of degree k, and exposes their additive
// and multiplicative structures as fingroup values.
//
// Element encoding:
//   - An element is an int in [0, q): the compact form of its polynomial
//     representative, i.e. the base-p digits are the coefficients, lowest
//     degree first. 0 is the zero element, 1 the unit, p the class of x.
//
// Building blocks:
//   - Number theory: Pow, PowMod, DivMod, SmallestPrimeDivisor, IsPrime,
//     IntLog.
//   - Polynomial: immutable polynomial over Z_p with Add, Multiply, Scale,
//     Shift, Residual and the compact encoding.
//   - Irreducible(p, k): sieve over products of monic polynomials.
//   - Field: precomputed addition and multiplication tables.
//
// Limits:
//   - Tables are q×q; New rejects q above MaxCardinality.
//   - Arithmetic is on int without overflow checks; keep p^k small.
package finfield
