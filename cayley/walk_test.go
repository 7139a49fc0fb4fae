package cayley_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedimser/GroupEnumerator/cayley"
	"github.com/fedimser/GroupEnumerator/families"
	"github.com/fedimser/GroupEnumerator/fingroup"
)

func TestWalk_Cyclic(t *testing.T) {
	z6 := must(families.Cyclic(6))
	res, err := cayley.Walk(z6, []int{1})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, res.Depth)
	assert.Equal(t, 5, res.Diameter())
	assert.Equal(t, []int{1, 1, 1}, res.Word(3))
	assert.Nil(t, res.Word(0))
}

func TestWalk_Subgroup(t *testing.T) {
	z6 := must(families.Cyclic(6))
	res, err := cayley.Walk(z6, []int{2})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 4}, res.Order)
	assert.False(t, res.Reached(1))
	assert.Equal(t, cayley.Unreached, res.Depth[3])
	assert.Nil(t, res.Word(3))
}

// TestWalk_WordsEvaluate: every word multiplies out to its element.
func TestWalk_WordsEvaluate(t *testing.T) {
	tests := []struct {
		name string
		grp  *fingroup.Group
		gens []int
	}{
		{"D4", must(families.Dihedral(4)), []int{1, 4}},
		{"Q8", must(families.Quaternion()), []int{2, 4}},
	}
	for _, g := range tests {
		grp := g.grp
		res, err := cayley.Walk(grp, g.gens)
		require.NoError(t, err, g.name)
		require.Len(t, res.Order, 8, g.name)
		for x := 0; x < 8; x++ {
			prod := 0
			for _, s := range res.Word(x) {
				prod = grp.Op(prod, s)
			}
			assert.Equal(t, x, prod, "%s: word of %d", g.name, x)
			assert.Len(t, res.Word(x), res.Depth[x])
		}
	}
}

func TestWalk_Options(t *testing.T) {
	z8 := must(families.Cyclic(8))

	res, err := cayley.Walk(z8, []int{1}, cayley.WithMaxDepth(3))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)

	_, err = cayley.Walk(z8, []int{1}, cayley.WithMaxDepth(-1))
	require.ErrorIs(t, err, cayley.ErrOptionViolation)

	_, err = cayley.Walk(z8, []int{8})
	require.ErrorIs(t, err, cayley.ErrBadGenerator)

	stop := errors.New("stop")
	var seen []int
	res, err = cayley.Walk(z8, []int{1}, cayley.WithOnVisit(func(x, depth int) error {
		seen = append(seen, x)
		if depth == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Nil(t, res, "no partial result on error")
	assert.Equal(t, []int{0, 1, 2}, seen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err = cayley.Walk(z8, []int{1}, cayley.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)

	_, err = cayley.Walk(z8, []int{1}, cayley.WithOnVisit(nil))
	require.NoError(t, err)
}
