package families

import (
	"fmt"

	"github.com/fedimser/GroupEnumerator/fingroup"
	"github.com/fedimser/GroupEnumerator/perm"
)

// MaxSymmetricDegree bounds Symmetric: S6 already has a 720×720 table.
const MaxSymmetricDegree = 6

const (
	methodCyclic    = "Cyclic"
	methodSymmetric = "Symmetric"
	methodDihedral  = "Dihedral"
)

// Cyclic returns Z_n, n ≥ 1.
func Cyclic(n int) (*fingroup.Group, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodCyclic, n, ErrTooSmall)
	}

	return fingroup.New(square(n, func(i, j int) int { return (i + j) % n }))
}

// Symmetric returns S_n, 1 ≤ n ≤ MaxSymmetricDegree, with composition
// (a·b)(x) = a(b(x)).
func Symmetric(n int) (*fingroup.Group, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodSymmetric, n, ErrTooSmall)
	}
	if n > MaxSymmetricDegree {
		return nil, fmt.Errorf("%s: n=%d > %d: %w", methodSymmetric, n, MaxSymmetricDegree, ErrTooLarge)
	}

	elems := perm.All(n)
	index := make(map[string]int, len(elems))
	for i, p := range elems {
		index[p.String()] = i
	}

	var composeErr error
	table := square(len(elems), func(i, j int) int {
		c, err := perm.Compose(elems[i], elems[j])
		if err != nil {
			composeErr = err
			return 0
		}

		return index[c.String()]
	})
	if composeErr != nil {
		return nil, fmt.Errorf("%s: %w", methodSymmetric, composeErr)
	}

	return fingroup.New(table)
}

// Dihedral returns D_n, the symmetry group of a regular n-gon, of order 2n.
// Relations: r^n = s² = e, r·s = s·r⁻¹. D_1 ≅ Z2 and D_2 ≅ Z2×Z2.
func Dihedral(n int) (*fingroup.Group, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodDihedral, n, ErrTooSmall)
	}
	mod := func(x int) int { return ((x % n) + n) % n }

	return fingroup.New(square(2*n, func(a, b int) int {
		ra, rb := a%n, b%n
		switch {
		case a < n && b < n: // r^a · r^b
			return mod(ra + rb)
		case a < n: // r^a · s r^b = s r^(b−a)
			return n + mod(rb-ra)
		case b < n: // s r^a · r^b = s r^(a+b)
			return n + mod(ra+rb)
		default: // s r^a · s r^b = r^(b−a)
			return mod(rb - ra)
		}
	}))
}

// quaternionUnits[u][v] = (sign, unit) of u·v for units 1, i, j, k.
var quaternionUnits = [4][4][2]int{
	{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	{{0, 1}, {1, 0}, {0, 3}, {1, 2}},
	{{0, 2}, {1, 3}, {1, 0}, {0, 1}},
	{{0, 3}, {0, 2}, {1, 1}, {1, 0}},
}

// Quaternion returns Q8 = {±1, ±i, ±j, ±k}. Element 2u+s is (−1)^s·unit_u.
func Quaternion() (*fingroup.Group, error) {
	return fingroup.New(square(8, func(a, b int) int {
		ua, sa := a/2, a%2
		ub, sb := b/2, b%2
		prod := quaternionUnits[ua][ub]

		return 2*prod[1] + (sa ^ sb ^ prod[0])
	}))
}

func square(n int, op func(i, j int) int) [][]int {
	t := make([][]int, n)
	for i := range t {
		t[i] = make([]int, n)
		for j := range t[i] {
			t[i][j] = op(i, j)
		}
	}

	return t
}
