package finfield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fedimser/GroupEnumerator/finfield"
)

func TestPow(t *testing.T) {
	assert.Equal(t, 2, finfield.Pow(2, 1))
	assert.Equal(t, 1024, finfield.Pow(2, 10))
	assert.Equal(t, 81, finfield.Pow(3, 4))
	assert.Equal(t, 1, finfield.Pow(7, 0))
}

func TestPowMod_DivMod(t *testing.T) {
	assert.Equal(t, 1, finfield.PowMod(3, 6, 7)) // Fermat
	assert.Equal(t, 4, finfield.PowMod(2, 10, 5))
	assert.Equal(t, 5, finfield.DivMod(3, 2, 7)) // 2·5 = 10 ≡ 3
	for y := 1; y < 11; y++ {
		assert.Equal(t, 1, finfield.DivMod(y, y, 11))
	}
}

func TestPrimes(t *testing.T) {
	tests := []struct {
		x, spd int
		prime  bool
	}{
		{2, 2, true}, {9, 3, false}, {17, 17, true}, {91, 7, false}, {1, 1, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.spd, finfield.SmallestPrimeDivisor(tc.x), "x=%d", tc.x)
		assert.Equal(t, tc.prime, finfield.IsPrime(tc.x), "x=%d", tc.x)
	}
}

func TestIntLog(t *testing.T) {
	assert.Equal(t, 3, finfield.IntLog(8, 2))
	assert.Equal(t, 0, finfield.IntLog(1, 5))
	assert.Equal(t, 1, finfield.IntLog(13, 13))
	assert.Equal(t, -1, finfield.IntLog(12, 2))
	assert.Equal(t, -1, finfield.IntLog(8, 1))
}
