package generator

// undetermined marks a cell whose product is not known yet.
const undetermined = -1

// grid is a partially filled n×n multiplication table stored row-major.
// Every accessor takes a transposed flag so the row rules can be reused
// for columns.
type grid struct {
	n     int
	cells []int
}

// newGrid returns the root grid: identity row and column filled, every
// other cell undetermined.
func newGrid(n int) *grid {
	g := &grid{n: n, cells: make([]int, n*n)}
	for i := range g.cells {
		g.cells[i] = undetermined
	}
	for i := 0; i < n; i++ {
		g.cells[i] = i   // row 0
		g.cells[i*n] = i // column 0
	}

	return g
}

func (g *grid) clone() *grid {
	c := &grid{n: g.n, cells: make([]int, len(g.cells))}
	copy(c.cells, g.cells)

	return c
}

func (g *grid) get(t bool, x, y int) int {
	if t {
		x, y = y, x
	}

	return g.cells[x*g.n+y]
}

// set stores v and reports whether the cell changed.
func (g *grid) set(t bool, x, y, v int) bool {
	if t {
		x, y = y, x
	}
	idx := x*g.n + y
	if g.cells[idx] == v {
		return false
	}
	g.cells[idx] = v

	return true
}

// firstUndetermined returns the row-major index of the first undetermined
// cell, or -1 when the grid is complete.
func (g *grid) firstUndetermined() int {
	for idx, v := range g.cells {
		if v == undetermined {
			return idx
		}
	}

	return -1
}

// rows returns the grid as a fresh [][]int.
func (g *grid) rows() [][]int {
	out := make([][]int, g.n)
	for i := range out {
		out[i] = make([]int, g.n)
		copy(out[i], g.cells[i*g.n:(i+1)*g.n])
	}

	return out
}

// propagate applies the inverse and associativity rules until a full pass
// changes nothing. It returns false on the first contradiction; the grid is
// then in an unspecified state and must be discarded.
func (g *grid) propagate() bool {
	var (
		changed, c bool
		ok         bool
	)
	for changed = true; changed; {
		changed = false
		for _, t := range [2]bool{false, true} {
			if c, ok = g.inverseRule(t); !ok {
				return false
			}
			changed = changed || c
		}
		if c, ok = g.associativityRule(); !ok {
			return false
		}
		changed = changed || c
	}

	return true
}

// inverseRule enforces one inverse per non-identity row (columns when t is
// set) and the symmetry of that inverse.
func (g *grid) inverseRule(t bool) (changed, ok bool) {
	var (
		n              = g.n
		i, j, v        int
		zeros, unknown int
		inv, free      int
	)
	for i = 1; i < n; i++ {
		zeros, unknown = 0, 0
		for j = 1; j < n; j++ {
			switch v = g.get(t, i, j); v {
			case 0:
				zeros++
				inv = j
			case undetermined:
				unknown++
				free = j
			}
		}
		if zeros >= 2 {
			return changed, false
		}
		if unknown == 0 && zeros == 0 {
			return changed, false
		}
		if unknown == 1 && zeros == 0 {
			inv = free
			zeros = 1
			g.set(t, i, inv, 0)
			changed = true
		}
		if zeros == 1 {
			switch v = g.get(t, inv, i); v {
			case undetermined:
				g.set(t, inv, i, 0)
				changed = true
			case 0:
			default:
				return changed, false
			}
		}
	}

	return changed, true
}

// associativityRule enforces (i·j)·k = i·(j·k) wherever both inner products
// are known.
func (g *grid) associativityRule() (changed, ok bool) {
	var (
		n             = g.n
		i, j, k, a, b int
		left, right   int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if a = g.cells[i*n+j]; a == undetermined {
				continue
			}
			for k = 0; k < n; k++ {
				if b = g.cells[j*n+k]; b == undetermined {
					continue
				}
				left, right = g.cells[a*n+k], g.cells[i*n+b]
				switch {
				case left != undetermined && right != undetermined:
					if left != right {
						return changed, false
					}
				case left != undetermined:
					g.cells[i*n+b] = left
					changed = true
				case right != undetermined:
					g.cells[a*n+k] = right
					changed = true
				}
			}
		}
	}

	return changed, true
}
