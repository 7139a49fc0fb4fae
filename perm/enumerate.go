package perm

import "fmt"

// Next returns the lexicographic successor of a total permutation, or
// (nil, false) when p is already the last one (descending order).
//
// Algorithm (classic next-permutation):
//  1. k = rightmost index with forward[k] < forward[k+1] (the ascent).
//  2. l = rightmost index > k with forward[l] > forward[k].
//  3. swap k and l, then reverse the suffix after k.
//
// Next panics with ErrPartial on a partial permutation.
func (p *Permutation) Next() (*Permutation, bool) {
	if !p.IsTotal() {
		panic(fmt.Errorf("perm: Next on %s: %w", p, ErrPartial))
	}
	var (
		n    = len(p.forward)
		k, l int
	)
	k = -1
	for i := n - 2; i >= 0; i-- {
		if p.forward[i] < p.forward[i+1] {
			k = i
			break
		}
	}
	if k == -1 {
		return nil, false
	}
	l = n - 1
	for p.forward[l] <= p.forward[k] {
		l--
	}

	next := make([]int, n)
	copy(next, p.forward)
	next[k], next[l] = next[l], next[k]
	for i, j := k+1, n-1; i < j; i, j = i+1, j-1 {
		next[i], next[j] = next[j], next[i]
	}
	q, _ := FromSlice(next) // a rearrangement of a bijection is a bijection

	return q, true
}

// All returns every permutation of size n in lexicographic order, starting
// from the identity. All(0) returns a single empty permutation.
// The list is fully materialized: n! entries, keep n small.
func All(n int) []*Permutation {
	if n < 0 {
		n = 0
	}
	out := make([]*Permutation, 0, Factorial(n))
	for p, ok := Identity(n), true; ok; p, ok = p.Next() {
		out = append(out, p)
	}

	return out
}

// Compose returns p1∘p2, i.e. result[i] = p1[p2[i]]. Both must be total and
// of the same size.
func Compose(p1, p2 *Permutation) (*Permutation, error) {
	if p1.Len() != p2.Len() {
		return nil, fmt.Errorf("perm: Compose: %d vs %d: %w", p1.Len(), p2.Len(), ErrLengthMismatch)
	}
	if !p1.IsTotal() || !p2.IsTotal() {
		return nil, fmt.Errorf("perm: Compose: %w", ErrPartial)
	}
	out := make([]int, p1.Len())
	for i := range out {
		out[i] = p1.forward[p2.forward[i]]
	}

	return FromSlice(out)
}

// Factorial returns n! for n ≥ 0 and 1 for negative n.
// 20! is the largest value that fits in int64.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}

	return result
}
