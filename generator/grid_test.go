package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_IdentityBorder(t *testing.T) {
	g := newGrid(3)
	require.Equal(t, []int{
		0, 1, 2,
		1, -1, -1,
		2, -1, -1,
	}, g.cells)
	assert.Equal(t, 4, g.firstUndetermined())
}

func TestGrid_TransposedAccess(t *testing.T) {
	g := newGrid(3)
	g.cells[1*3+2] = 0
	assert.Equal(t, 0, g.get(false, 1, 2))
	assert.Equal(t, 0, g.get(true, 2, 1))
	assert.True(t, g.set(true, 1, 2, 1)) // writes cell (2,1)
	assert.False(t, g.set(true, 1, 2, 1))
	assert.Equal(t, 1, g.cells[2*3+1])
}

func TestPropagate_OrderTwoCompletes(t *testing.T) {
	g := newGrid(2)
	require.True(t, g.propagate())
	assert.Equal(t, [][]int{{0, 1}, {1, 0}}, g.rows())
}

// TestPropagate_ForcesZ3: fixing 1·1 = 2 determines the whole table.
func TestPropagate_ForcesZ3(t *testing.T) {
	g := newGrid(3)
	g.cells[1*3+1] = 2
	require.True(t, g.propagate())
	assert.Equal(t, [][]int{
		{0, 1, 2},
		{1, 2, 0},
		{2, 0, 1},
	}, g.rows())
}

func TestPropagate_Contradictions(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		fills map[int]int // cell index -> value
	}{
		{"two zeros in a row", 4, map[int]int{5: 0, 6: 0}},
		{"two zeros in a column", 4, map[int]int{5: 0, 9: 0}},
		{"row without inverse", 2, map[int]int{3: 1}},
		{"asymmetric inverse", 3, map[int]int{5: 0, 7: 1}},
		// 1·1 = 1 forces 1 = e: (1·1)·k vs 1·(1·k) disagree at once.
		{"idempotent non-identity", 3, map[int]int{4: 1}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := newGrid(tc.n)
			for idx, v := range tc.fills {
				g.cells[idx] = v
			}
			assert.False(t, g.propagate())
		})
	}
}

func TestClone_Independent(t *testing.T) {
	g := newGrid(3)
	c := g.clone()
	c.cells[4] = 2
	assert.Equal(t, undetermined, g.cells[4])
}
