// Package fingroup provides Group, an immutable, validated finite group given
// by its multiplication (Cayley) table.
//
// Elements are the integers 0…order−1 and element 0 is always the identity.
// A Group can only be obtained through New (or the helpers built on it), so
// every value in circulation satisfies closure, identity, inverses and
// associativity.
//
// Complexity:
//   - New: O(n³) because of the associativity check.
//   - Op/Inverse/Order: O(1).
//   - IsAbelian/Equal: O(n²).
package fingroup

// Group is a validated finite group. It is never mutated after New returns
// and is therefore safe for concurrent readers.
type Group struct {
	order int
	table []int // row-major, table[a*order+b] = a·b
	inv   []int
}

// New validates table and returns the group it describes. The input is
// copied; later changes to table do not affect the Group.
//
// Errors: *InvalidGroupError wrapping ErrBadShape, ErrClosure, ErrIdentity,
// ErrInverse or ErrAssociativity (first violation in that order).
func New(table [][]int) (*Group, error) {
	var (
		n       = len(table)
		i, j, k int
	)
	if n == 0 {
		return nil, invalid(ErrBadShape)
	}
	for i = 0; i < n; i++ {
		if len(table[i]) != n {
			return nil, invalid(ErrBadShape, i)
		}
	}

	g := &Group{
		order: n,
		table: make([]int, n*n),
		inv:   make([]int, n),
	}

	// Closure.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := table[i][j]
			if v < 0 || v >= n {
				return nil, invalid(ErrClosure, i, j)
			}
			g.table[i*n+j] = v
		}
	}

	// Identity.
	for i = 0; i < n; i++ {
		if g.at(0, i) != i || g.at(i, 0) != i {
			return nil, invalid(ErrIdentity, i)
		}
	}

	// Inverses: exactly one zero per row, and it must be two-sided.
	for i = 0; i < n; i++ {
		found := -1
		for j = 0; j < n; j++ {
			if g.at(i, j) != 0 {
				continue
			}
			if found != -1 {
				return nil, invalid(ErrInverse, i, j)
			}
			found = j
		}
		if found == -1 {
			return nil, invalid(ErrInverse, i)
		}
		if g.at(found, i) != 0 {
			return nil, invalid(ErrInverse, i, found)
		}
		g.inv[i] = found
	}

	// Associativity.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			ij := g.at(i, j)
			for k = 0; k < n; k++ {
				if g.at(ij, k) != g.at(i, g.at(j, k)) {
					return nil, invalid(ErrAssociativity, i, j, k)
				}
			}
		}
	}

	return g, nil
}

// MustNew is like New but panics on an invalid table. Intended for static
// tables and tests.
func MustNew(table [][]int) *Group {
	g, err := New(table)
	if err != nil {
		panic(err)
	}

	return g
}

func (g *Group) at(a, b int) int { return g.table[a*g.order+b] }

// Order returns the number of elements.
func (g *Group) Order() int { return g.order }

// Op returns a·b.
func (g *Group) Op(a, b int) int { return g.at(a, b) }

// Inverse returns a⁻¹.
func (g *Group) Inverse(a int) int { return g.inv[a] }

// IsAbelian reports whether a·b = b·a for all a, b.
func (g *Group) IsAbelian() bool {
	for i := 0; i < g.order; i++ {
		for j := i + 1; j < g.order; j++ {
			if g.at(i, j) != g.at(j, i) {
				return false
			}
		}
	}

	return true
}

// Table returns a fresh copy of the multiplication table.
func (g *Group) Table() [][]int {
	out := make([][]int, g.order)
	for i := range out {
		out[i] = make([]int, g.order)
		copy(out[i], g.table[i*g.order:(i+1)*g.order])
	}

	return out
}

// Equal reports whether both groups have identical tables (same labelling).
// Use package isocheck for equality up to isomorphism.
func (g *Group) Equal(h *Group) bool {
	if g.order != h.order {
		return false
	}
	for i := range g.table {
		if g.table[i] != h.table[i] {
			return false
		}
	}

	return true
}

// ElementOrder returns the least k ≥ 1 with a^k = 0.
func (g *Group) ElementOrder(a int) int {
	k, x := 1, a
	for x != 0 {
		x = g.at(x, a)
		k++
	}

	return k
}
