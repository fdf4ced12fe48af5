package special

import "math/big"

// Bernoulli returns the Bernoulli numbers B_0 through B_n as exact
// rationals, using the B_1 = -1/2 convention. Every odd index above 1 is
// zero.
//
// The even entries follow the defining recurrence
//
//	B_m = -1/(m+1) · Σ_{k=0}^{m-1} C(m+1, k)·B_k
//
// which is quadratic in n but exact at any size thanks to big.Rat.
func Bernoulli(n int) []*big.Rat {
	if n < 0 {
		return nil
	}
	out := make([]*big.Rat, n+1)
	out[0] = big.NewRat(1, 1)
	if n >= 1 {
		out[1] = big.NewRat(-1, 2)
	}
	sum := new(big.Rat)
	term := new(big.Rat)
	binom := new(big.Int)
	for m := 2; m <= n; m++ {
		if m%2 == 1 {
			out[m] = new(big.Rat)
			continue
		}
		sum.SetInt64(0)
		for k := 0; k < m; k++ {
			if out[k].Sign() == 0 {
				continue
			}
			binom.Binomial(int64(m+1), int64(k))
			term.SetInt(binom)
			sum.Add(sum, term.Mul(term, out[k]))
		}
		scale := big.NewRat(-1, int64(m+1))
		out[m] = scale.Mul(scale, sum)
	}
	return out
}

// BernoulliFloat64 is Bernoulli projected to float64. Entries whose
// magnitude exceeds the float64 range come back as ±Inf.
func BernoulliFloat64(n int) []float64 {
	exact := Bernoulli(n)
	out := make([]float64, len(exact))
	for i, r := range exact {
		out[i], _ = r.Float64()
	}
	return out
}
