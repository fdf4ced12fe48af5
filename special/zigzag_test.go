package special

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTangent(t *testing.T) {
	// OEIS A000182.
	want := []int64{1, 2, 16, 272, 7936, 353792, 22368256, 1903757312}
	got := Tangent(len(want))
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Zero(t, big.NewInt(w).Cmp(got[i]), "T_%d = %s, want %d", i+1, got[i], w)
	}
}

// Past the int64 range, check the zigzag algorithm against the Bernoulli
// generator through T_n = (-1)^(n-1)·2^(2n)·(2^(2n)-1)/(2n)·B_2n. The two
// take entirely different routes (in-place integer folds vs the rational
// choose recurrence), so agreement is a strong cross-check.
func TestTangent_Large(t *testing.T) {
	const n = 15
	got := Tangent(n)
	require.Len(t, got, n)

	bern := Bernoulli(2 * n)
	p := new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), 2*n))
	want := new(big.Rat).Mul(p, new(big.Rat).Sub(p, big.NewRat(1, 1)))
	want.Quo(want, big.NewRat(2*n, 1))
	want.Mul(want, bern[2*n])
	if n%2 == 0 {
		want.Neg(want)
	}
	assert.Zero(t, want.Cmp(new(big.Rat).SetInt(got[n-1])),
		"T_%d = %s, want %s", n, got[n-1], want.RatString())
}

func TestTangent_Empty(t *testing.T) {
	assert.Nil(t, Tangent(0))
	assert.Nil(t, Tangent(-3))
}

func TestSecant(t *testing.T) {
	// OEIS A000364.
	want := []int64{1, 1, 5, 61, 1385, 50521, 2702765, 199360981, 19391512145}
	got := Secant(len(want) - 1)
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Zero(t, big.NewInt(w).Cmp(got[i]), "S_%d = %s, want %d", i, got[i], w)
	}
}

func TestSecant_Empty(t *testing.T) {
	assert.Nil(t, Secant(-1))
	got := Secant(0)
	require.Len(t, got, 1)
	assert.Zero(t, big.NewInt(1).Cmp(got[0]))
}

// Interleaved, the two sequences form the zigzag numbers (A000111), so
// consecutive terms must sandwich each other: T_n ≤ S_n ≤ T_{n+1}.
func TestZigzag_Interleave(t *testing.T) {
	tang := Tangent(6)
	sec := Secant(6)
	for n := 1; n <= 6; n++ {
		assert.True(t, tang[n-1].Cmp(sec[n]) <= 0, "T_%d ≤ S_%d", n, n)
		if n < 6 {
			assert.True(t, sec[n].Cmp(tang[n]) <= 0, "S_%d ≤ T_%d", n, n+1)
		}
	}
}
