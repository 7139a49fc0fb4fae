package fingroup

import "fmt"

// MultiplyGroups returns the direct product g1 × g2 (× more…), folded left.
//
// The pair (a1, a2) is encoded as a1·|g2| + a2 and
//
//	(a1, a2)·(b1, b2) = (a1·b1, a2·b2)
//
// so the identity (0, 0) is element 0. The product of valid groups is always
// a group; the result still goes through New. Errors name the 0-based index
// of the factor whose product failed.
func MultiplyGroups(g1, g2 *Group, more ...*Group) (*Group, error) {
	acc, err := product(g1, g2)
	if err != nil {
		return nil, fmt.Errorf("fingroup: MultiplyGroups: factor 1: %w", err)
	}
	for i, g := range more {
		if acc, err = product(acc, g); err != nil {
			return nil, fmt.Errorf("fingroup: MultiplyGroups: factor %d: %w", i+2, err)
		}
	}

	return acc, nil
}

func product(g1, g2 *Group) (*Group, error) {
	var (
		n1 = g1.order
		n2 = g2.order
		n  = n1 * n2
	)
	table := make([][]int, n)
	for i := 0; i < n; i++ {
		table[i] = make([]int, n)
		a1, a2 := i/n2, i%n2
		for j := 0; j < n; j++ {
			b1, b2 := j/n2, j%n2
			table[i][j] = n2*g1.at(a1, b1) + g2.at(a2, b2)
		}
	}

	return New(table)
}
