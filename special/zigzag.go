package special

import "math/big"

// Tangent returns the first n tangent numbers T_1..T_n
// (1, 2, 16, 272, 7936, …), the odd-index zigzag numbers.
//
// The in-place integer recurrence is Brent and Zimmermann's: seed row
// T_k = (k-1)!, then fold with T_j ← (j-k)·T_{j-1} + (j-k+2)·T_j. No
// rational arithmetic is involved, so every intermediate stays an exact
// integer of modest size.
func Tangent(n int) []*big.Int {
	if n <= 0 {
		return nil
	}
	t := make([]*big.Int, n)
	t[0] = big.NewInt(1)
	for k := 1; k < n; k++ {
		t[k] = new(big.Int).Mul(big.NewInt(int64(k)), t[k-1])
	}
	a := new(big.Int)
	b := new(big.Int)
	for k := 1; k < n; k++ {
		for j := k; j < n; j++ {
			a.Mul(big.NewInt(int64(j-k)), t[j-1])
			b.Mul(big.NewInt(int64(j-k+2)), t[j])
			t[j].Add(a, b)
		}
	}
	return t
}

// Secant returns the secant numbers S_0..S_n (1, 1, 5, 61, 1385, …), the
// even-index zigzag numbers. Same in-place scheme as Tangent with shifted
// coefficients: seed S_k = k!, fold with S_j ← (j-k)·S_{j-1} + (j-k+1)·S_j.
func Secant(n int) []*big.Int {
	if n < 0 {
		return nil
	}
	s := make([]*big.Int, n+1)
	s[0] = big.NewInt(1)
	for k := 1; k <= n; k++ {
		s[k] = new(big.Int).Mul(big.NewInt(int64(k)), s[k-1])
	}
	a := new(big.Int)
	b := new(big.Int)
	for k := 1; k <= n; k++ {
		for j := k + 1; j <= n; j++ {
			a.Mul(big.NewInt(int64(j-k)), s[j-1])
			b.Mul(big.NewInt(int64(j-k+1)), s[j])
			s[j].Add(a, b)
		}
	}
	return s
}
