package finfield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedimser/GroupEnumerator/finfield"
)

func poly(t *testing.T, p int, coefs ...int) finfield.Polynomial {
	t.Helper()
	a, err := finfield.FromCoefficients(coefs, p)
	require.NoError(t, err)

	return a
}

func TestAdd(t *testing.T) {
	sum, err := finfield.Add(poly(t, 10, 1, 2, 3), poly(t, 10, 3, 8, 8, 4))
	require.NoError(t, err)
	assert.Equal(t, "4*x^3+x^2+4", sum.String())
}

func TestMultiply(t *testing.T) {
	prod, err := finfield.Multiply(poly(t, 10, 1, 1), poly(t, 10, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, "x^2+2*x+1", prod.String())
}

func TestResidual(t *testing.T) {
	r, err := finfield.Residual(poly(t, 10, 1, 1, 1, 1), poly(t, 10, 3, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, "4", r.String())

	r, err = finfield.Residual(poly(t, 10, 1, 1), poly(t, 10, 0, 0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, "x+1", r.String())

	r, err = finfield.Residual(poly(t, 7, 1, 2, 3), poly(t, 7, 5))
	require.NoError(t, err)
	assert.True(t, r.IsZero())

	_, err = finfield.Residual(poly(t, 7, 1), poly(t, 7, 0))
	require.ErrorIs(t, err, finfield.ErrDivisionByZero)
}

func TestModulusMismatch(t *testing.T) {
	_, err := finfield.Add(poly(t, 2, 1), poly(t, 3, 1))
	require.ErrorIs(t, err, finfield.ErrModulusMismatch)
	_, err = finfield.Multiply(poly(t, 2, 1), poly(t, 3, 1))
	require.ErrorIs(t, err, finfield.ErrModulusMismatch)
	_, err = finfield.FromCompact(5, 1)
	require.ErrorIs(t, err, finfield.ErrBadModulus)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0", poly(t, 10).String())
	assert.Equal(t, "0", poly(t, 10, 0, 0, 0).String())
	assert.Equal(t, "2*a^2+a+1", poly(t, 3, 1, 1, 2).Format("a"))
	assert.Equal(t, "x^6+x+1", poly(t, 2, 1, 1, 0, 0, 0, 0, 1).String())
}

func TestCompact_RoundTrip(t *testing.T) {
	for c := 0; c < 81; c++ {
		a, err := finfield.FromCompact(c, 3)
		require.NoError(t, err)
		require.Equal(t, c, a.Compact())
	}
	a := poly(t, 3, 2, 0, 1) // x^2+2
	assert.Equal(t, 11, a.Compact())
	assert.Equal(t, 2, a.Degree())
	assert.True(t, a.IsMonic())
	assert.Equal(t, 0, a.ValueAt(1)) // 1+2 ≡ 0
	assert.Equal(t, 0, a.ValueAt(2))
	assert.Equal(t, 2, a.ValueAt(0))
}

func TestScaleShift(t *testing.T) {
	a := poly(t, 5, 1, 2)
	assert.Equal(t, "3*x+4", a.Scale(-1).String())
	assert.Equal(t, "2*x^3+x^2", a.Shift(2).String())
	assert.True(t, a.Scale(5).IsZero())
	assert.True(t, poly(t, 5).Shift(3).IsZero())
}

func TestIrreducible(t *testing.T) {
	tests := []struct {
		p, k int
		want string
	}{
		{2, 1, "x"},
		{2, 2, "x^2+x+1"},
		{2, 3, "x^3+x+1"},
		{3, 2, "x^2+1"},
		{2, 7, "x^7+x+1"},
	}
	for _, tc := range tests {
		m, err := finfield.Irreducible(tc.p, tc.k)
		require.NoError(t, err)
		assert.Equal(t, tc.want, m.String(), "p=%d k=%d", tc.p, tc.k)
	}

	_, err := finfield.Irreducible(4, 2)
	require.ErrorIs(t, err, finfield.ErrBadModulus)
	_, err = finfield.Irreducible(2, 0)
	require.ErrorIs(t, err, finfield.ErrBadDegree)
}
