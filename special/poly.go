package special

// evalPoly evaluates a polynomial by Horner's method with coefficients in
// descending order: coeffs[0]·x^n + coeffs[1]·x^(n-1) + ... + coeffs[n].
// Horner accumulation keeps the high-degree rational kernels (erf, the
// reflection prefactors) free of the cancellation that naive power sums
// accumulate.
func evalPoly[T Float](x T, coeffs []T) T {
	switch len(coeffs) {
	case 0:
		return 0
	case 1:
		return coeffs[0]
	}
	result := coeffs[0]
	for _, c := range coeffs[1:] {
		result = result*x + c
	}
	return result
}
