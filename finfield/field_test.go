package finfield_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedimser/GroupEnumerator/families"
	"github.com/fedimser/GroupEnumerator/fingroup"
	"github.com/fedimser/GroupEnumerator/finfield"
	"github.com/fedimser/GroupEnumerator/isocheck"
)

func mustField(t *testing.T, q int) *finfield.Field {
	t.Helper()
	f, err := finfield.New(q)
	require.NoError(t, err)

	return f
}

// elementaryAbelian returns C_p^k.
func elementaryAbelian(t *testing.T, p, k int) *fingroup.Group {
	t.Helper()
	g, err := families.Cyclic(p)
	require.NoError(t, err)
	out := g
	for i := 1; i < k; i++ {
		out, err = fingroup.MultiplyGroups(out, g)
		require.NoError(t, err)
	}

	return out
}

func TestCanCreate(t *testing.T) {
	yes := []int{2, 3, 4, 5, 7, 8, 9, 16, 25, 27, 32, 49, 121, 128}
	no := []int{-1, 0, 1, 6, 10, 12, 15, 18, 36, 100}
	for _, q := range yes {
		assert.True(t, finfield.CanCreate(q), "q=%d", q)
	}
	for _, q := range no {
		assert.False(t, finfield.CanCreate(q), "q=%d", q)
		_, err := finfield.New(q)
		assert.ErrorIs(t, err, finfield.ErrNoSuchField, "q=%d", q)
	}

	_, err := finfield.New(1 << 13)
	require.ErrorIs(t, err, finfield.ErrTooLarge)
}

func TestParameters(t *testing.T) {
	f := mustField(t, 27)
	assert.Equal(t, 27, f.Cardinality())
	assert.Equal(t, 3, f.Characteristic())
	assert.Equal(t, 3, f.Degree())
	assert.Equal(t, 3, f.Modulus().Degree())
	assert.Equal(t, "F_27", f.String())
}

func TestElements(t *testing.T) {
	tests := map[int][]string{
		2: {"0", "1"},
		3: {"0", "1", "2"},
		4: {"0", "1", "x", "x+1"},
		8: {"0", "1", "x", "x+1", "x^2", "x^2+1", "x^2+x", "x^2+x+1"},
		9: {"0", "1", "2", "x", "x+1", "x+2", "2*x", "2*x+1", "2*x+2"},
	}
	for q, want := range tests {
		f := mustField(t, q)
		got := make([]string, q)
		for i := range got {
			got[i] = f.Element(i).String()
		}
		assert.Equal(t, want, got, "q=%d", q)
	}
	assert.Equal(t, "x^6+x+1", mustField(t, 128).Element(67).String())
}

func TestAdditiveGroups(t *testing.T) {
	tests := []struct{ q, p, k int }{
		{2, 2, 1}, {3, 3, 1}, {4, 2, 2}, {5, 5, 1}, {7, 7, 1},
		{8, 2, 3}, {9, 3, 2}, {11, 11, 1}, {16, 2, 4}, {27, 3, 3},
	}
	for _, tc := range tests {
		g, err := mustField(t, tc.q).AdditiveGroup()
		require.NoError(t, err)
		assert.True(t, isocheck.AreIsomorphic(g, elementaryAbelian(t, tc.p, tc.k)), "q=%d", tc.q)
	}
}

func TestMultiplicativeGroups(t *testing.T) {
	for q := 2; q < 64; q++ {
		if !finfield.CanCreate(q) {
			continue
		}
		q := q
		t.Run(fmt.Sprintf("F_%d", q), func(t *testing.T) {
			g, err := mustField(t, q).MultiplicativeGroup()
			require.NoError(t, err)
			c, err := families.Cyclic(q - 1)
			require.NoError(t, err)
			assert.True(t, isocheck.AreIsomorphic(g, c))
		})
	}
}

func TestFieldAxioms(t *testing.T) {
	f := mustField(t, 9)
	for a := 0; a < 9; a++ {
		assert.Equal(t, 0, f.Add(a, f.Neg(a)))
		assert.Equal(t, 0, f.Sub(a, a))
		assert.Equal(t, 0, f.Times(a, 3), "characteristic 3")
		if a == 0 {
			continue
		}
		inv, err := f.Inv(a)
		require.NoError(t, err)
		assert.Equal(t, 1, f.Mul(a, inv))
		assert.Equal(t, 1, f.Power(a, 8), "a^(q-1) = 1")
		assert.Equal(t, inv, f.Power(a, -1))
		for b := 1; b < 9; b++ {
			c, err := f.Div(a, b)
			require.NoError(t, err)
			assert.Equal(t, a, f.Mul(c, b))
			assert.Equal(t, f.Mul(a, f.Add(b, 1)), f.Add(f.Mul(a, b), a), "distributivity")
		}
	}

	_, err := f.Div(1, 0)
	require.ErrorIs(t, err, finfield.ErrDivisionByZero)
	_, err = f.Inv(0)
	require.ErrorIs(t, err, finfield.ErrDivisionByZero)
	assert.Panics(t, func() { f.Power(0, -1) })
	assert.Equal(t, 1, f.Power(0, 0))
}

// TestRoots_F4: x^3 = 0 only at 0, and x^3 = 1 on every unit of F_4.
func TestRoots_F4(t *testing.T) {
	f := mustField(t, 4)
	assert.Equal(t, []int{0}, f.Roots([]int{0, 0, 0, 1}))
	assert.Equal(t, []int{1, 2, 3}, f.Roots([]int{-1, 0, 0, 1}))
	assert.Equal(t, []int{2, 3}, f.Roots([]int{1, 1, 1})) // x^2+x+1
	assert.Nil(t, mustField(t, 3).Roots([]int{1, 0, 1}))    // x^2+1 over F_3
}

func TestDescribe(t *testing.T) {
	f := mustField(t, 4)
	assert.Equal(t, "F_4 is F_2[x]/(x^2+x+1).\n", f.Describe(false))

	full := f.Describe(true)
	assert.Contains(t, full, "Addition table for F_4:\n")
	assert.Contains(t, full, "a + a+1 = 1\n")
	assert.Contains(t, full, "a * a = a+1\n")
	assert.Contains(t, full, "1 / 0 = N/A\n")
	assert.Contains(t, full, "1 / a = a+1\n")
}
