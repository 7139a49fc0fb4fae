package isocheck

import (
	"context"

	"github.com/fedimser/GroupEnumerator/fingroup"
	"github.com/fedimser/GroupEnumerator/perm"
)

// AreIsomorphic reports whether g1 ≅ g2.
func AreIsomorphic(g1, g2 *fingroup.Group) bool {
	return NewChecker(g1).IsIsomorphic(g2)
}

// Isomorphism returns a witness g1 → g2, or (nil, false).
func Isomorphism(g1, g2 *fingroup.Group) (*perm.Permutation, bool) {
	return NewChecker(g1).Isomorphism(g2)
}

// IsomorphismContext is Isomorphism with cancellation; see
// Checker.IsomorphismContext.
func IsomorphismContext(ctx context.Context, g1, g2 *fingroup.Group) (*perm.Permutation, bool, error) {
	return NewChecker(g1).IsomorphismContext(ctx, g2)
}

// AreListsIsomorphic reports whether the lists can be paired one-to-one so
// that paired groups are isomorphic.
//
// Matching is greedy first-fit: each group of list1 takes the first unused
// isomorphic partner in list2. Since isomorphism is an equivalence relation,
// all candidate partners of a group are interchangeable, so first-fit never
// needs to backtrack.
func AreListsIsomorphic(list1, list2 []*fingroup.Group) bool {
	if len(list1) != len(list2) {
		return false
	}
	used := make([]bool, len(list2))
	for _, g := range list1 {
		c := NewChecker(g)
		found := false
		for j, h := range list2 {
			if used[j] {
				continue
			}
			if c.IsIsomorphic(h) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
