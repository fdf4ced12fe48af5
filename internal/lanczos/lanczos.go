// Package lanczos holds the Lanczos approximation data shared by the real
// and complex Gamma evaluators. Both evaluators reference this single table,
// which is what makes the restriction of the complex Gamma to the real axis
// reproduce the real Gamma: same constants, same series, same region split.
//
// The table is the g = 7, 9-term coefficient set (Godfrey). With
//
//	t = x + g - 0.5
//	A(x) = c0 + c1/x + c2/(x+1) + ... + c8/(x+7)
//
// the approximation
//
//	Γ(x) = √(2π) · t^(x-0.5) · e^(-t) · A(x)
//
// holds to roughly 15 significant digits for real x ≥ 0.5, and for complex
// arguments with Re(z) ≥ 0.5.
package lanczos

import (
	"math"
	"math/cmplx"
)

// G is the Lanczos parameter matched to the coefficient table below.
// Changing one without the other invalidates the approximation.
const G = 7.0

const (
	// SqrtTwoPi is √(2π).
	SqrtTwoPi = 2.50662827463100050241576528481
	// LogSqrtTwoPi is ln √(2π), the constant term of the log-space form.
	LogSqrtTwoPi = 0.91893853320467274178032973640
)

// coeffs are the partial-fraction coefficients of the rational part A(x).
var coeffs = [9]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

// Series evaluates the rational part A(x) for a Gamma argument x ≥ 0.5.
func Series(x float64) float64 {
	sum := coeffs[0]
	for i := 1; i < len(coeffs); i++ {
		sum += coeffs[i] / (x - 1 + float64(i))
	}
	return sum
}

// SeriesCmplx evaluates A(z) for a complex Gamma argument with Re(z) ≥ 0.5.
// It is the same partial-fraction sum as Series over the same table.
func SeriesCmplx(z complex128) complex128 {
	sum := complex(coeffs[0], 0)
	for i := 1; i < len(coeffs); i++ {
		sum += complex(coeffs[i], 0) / (z + complex(float64(i)-1, 0))
	}
	return sum
}

// HalfPow returns t^((x-0.5)/2) for t = x + G - 0.5. The Gamma evaluators
// apply it twice instead of computing t^(x-0.5) outright so that arguments
// near the overflow boundary do not overflow in the intermediate power while
// e^(-t) still cancels the excess.
func HalfPow(x float64) float64 {
	t := x + G - 0.5
	return math.Pow(t, (x-0.5)/2)
}

// HalfPowCmplx is the complex counterpart of HalfPow.
func HalfPowCmplx(z complex128) complex128 {
	t := z + complex(G-0.5, 0)
	return cmplx.Pow(t, (z-complex(0.5, 0))/2)
}
