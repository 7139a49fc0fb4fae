package generator_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedimser/GroupEnumerator/families"
	"github.com/fedimser/GroupEnumerator/fingroup"
	"github.com/fedimser/GroupEnumerator/generator"
	"github.com/fedimser/GroupEnumerator/isocheck"
)

func must(g *fingroup.Group, err error) *fingroup.Group {
	if err != nil {
		panic(err)
	}

	return g
}

func cyclic(n int) *fingroup.Group { return must(families.Cyclic(n)) }

func product(gs ...*fingroup.Group) *fingroup.Group {
	return must(fingroup.MultiplyGroups(gs[0], gs[1], gs[2:]...))
}

// known returns the classification of groups of order n ≤ 8.
func known(n int) []*fingroup.Group {
	switch n {
	case 4:
		return []*fingroup.Group{cyclic(4), product(cyclic(2), cyclic(2))}
	case 6:
		return []*fingroup.Group{cyclic(6), must(families.Symmetric(3))}
	case 8:
		return []*fingroup.Group{
			cyclic(8),
			product(cyclic(2), cyclic(4)),
			product(cyclic(2), cyclic(2), cyclic(2)),
			must(families.Dihedral(4)),
			must(families.Quaternion()),
		}
	default: // 1, 2, 3, 5, 7
		return []*fingroup.Group{cyclic(n)}
	}
}

func TestAllGroups_Classification(t *testing.T) {
	for n := 1; n <= 8; n++ {
		n := n
		t.Run(fmt.Sprintf("order=%d", n), func(t *testing.T) {
			groups, err := generator.AllGroups(n)
			require.NoError(t, err)
			require.True(t, isocheck.AreListsIsomorphic(known(n), groups),
				"order %d: got %d groups", n, len(groups))
		})
	}
}

func TestAllGroups_Trivial(t *testing.T) {
	groups, err := generator.AllGroups(1)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, [][]int{{0}}, groups[0].Table())
}

func TestGenerate_InvalidOrder(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := generator.Generate(n)
		require.ErrorIs(t, err, generator.ErrInvalidOrder)
	}
}

// TestAllGroups_Axioms re-checks every group law on the produced tables.
func TestAllGroups_Axioms(t *testing.T) {
	for n := 1; n <= 8; n++ {
		groups, err := generator.AllGroups(n)
		require.NoError(t, err)
		for _, g := range groups {
			for x := 0; x < n; x++ {
				require.Equal(t, x, g.Op(0, x))
				require.Equal(t, x, g.Op(x, 0))
				require.Equal(t, 0, g.Op(x, g.Inverse(x)))
				require.Equal(t, 0, g.Op(g.Inverse(x), x))
				for y := 0; y < n; y++ {
					for z := 0; z < n; z++ {
						require.Equal(t, g.Op(g.Op(x, y), z), g.Op(x, g.Op(y, z)))
					}
				}
			}
			again, err := fingroup.New(g.Table())
			require.NoError(t, err)
			require.True(t, again.Equal(g))
		}
	}
}

func TestGenerate_PairwiseDistinct(t *testing.T) {
	groups, err := generator.AllGroups(8)
	require.NoError(t, err)
	for i := range groups {
		for j := i + 1; j < len(groups); j++ {
			require.False(t, isocheck.AreIsomorphic(groups[i], groups[j]), "i=%d j=%d", i, j)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := generator.AllGroups(6)
	require.NoError(t, err)
	b, err := generator.AllGroups(6)
	require.NoError(t, err)
	require.Len(t, b, len(a))
	for i := range a {
		require.True(t, a[i].Equal(b[i]))
	}
}

func TestGenerate_StatsAndOnLeaf(t *testing.T) {
	var leaves, dups int
	res, err := generator.Generate(6, generator.WithOnLeaf(func(g *fingroup.Group, duplicate bool) {
		require.Equal(t, 6, g.Order())
		leaves++
		if duplicate {
			dups++
		}
	}))
	require.NoError(t, err)

	s := res.Stats
	assert.Equal(t, leaves, s.Leaves)
	assert.Equal(t, dups, s.Duplicates)
	assert.Equal(t, len(res.Groups), s.Leaves-s.Duplicates)
	assert.Greater(t, s.Nodes, s.Pruned)
	assert.Greater(t, s.Pruned, 0)
	// every labelling of Z6 and S3 with identity 0 is a leaf: 5!/2 + 5!/6
	assert.Equal(t, 80, s.Leaves)
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := generator.Generate(8, generator.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestGenerate_CancelledMidway cancels from the leaf hook.
func TestGenerate_CancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	res, err := generator.Generate(8,
		generator.WithContext(ctx),
		generator.WithOnLeaf(func(*fingroup.Group, bool) { cancel() }),
	)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, res.Groups)
}

func TestGenerate_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	_, err := generator.Generate(4, generator.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "new class")
	assert.Contains(t, buf.String(), "enumeration done")
}

func TestOptions_NilIgnored(t *testing.T) {
	o := generator.DefaultOptions()
	//nolint:staticcheck // nil context is the case under test
	generator.WithContext(nil)(&o)
	generator.WithLogger(nil)(&o)
	assert.NotNil(t, o.Ctx)
	assert.NotNil(t, o.Logger)
}
