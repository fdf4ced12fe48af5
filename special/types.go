package special

import "math"

// Float is the constraint satisfied by the real scalar types the evaluators
// accept.
type Float interface {
	~float32 | ~float64
}

// Complex is the constraint satisfied by the complex scalar types accepted
// by the evaluators in the cmplx subpackage.
type Complex interface {
	~complex64 | ~complex128
}

// isNonPosInt reports whether x sits exactly on a pole of the Gamma
// function: zero or a negative integer.
func isNonPosInt(x float64) bool {
	return x <= 0 && x == math.Floor(x)
}

// poleSign returns the sign of the one-sided limit convention at the pole
// -n: positive when n is even, negative when n is odd, following the
// residue (-1)^n/n!. Parity is taken with math.Mod rather than an integer
// conversion, which would be out of range for poles beyond 2^63 (every
// float64 integer that large is even).
func poleSign(x float64) int {
	if math.Mod(x, 2) == 0 {
		return 1
	}
	return -1
}
