package special

import (
	"math"

	"github.com/gosci/gosci/internal/lanczos"
)

// maxGammaArg is the largest float64 argument with a finite Gamma value.
// Above it Γ(x) exceeds the float64 range and Gamma returns +Inf while
// LnGamma stays finite.
const maxGammaArg = 171.61447887182298

// Gamma computes the Gamma function Γ(x).
//
// Γ generalizes the factorial: Γ(n) = (n-1)! for positive integers. For
// x ≥ 0.5 it is evaluated with the Lanczos approximation (g = 7, 9-term
// table, shared with the cmplx subpackage); for x < 0.5 the reflection
// formula Γ(x) = π / (sin(πx)·Γ(1-x)) extends the approximation to the
// rest of the real line.
//
// Special cases:
//   - Gamma(NaN) = NaN
//   - Gamma(+Inf) = +Inf
//   - Gamma(-Inf) = NaN
//   - Gamma(-n) for integer n ≥ 0 is +Inf when n is even, -Inf when n is
//     odd, following the residue sign (-1)^n/n!
//   - Gamma(x) = +Inf for x > 171.61447887182298 (float64 overflow)
func Gamma[T Float](x T) T {
	return T(gamma(float64(x)))
}

func gamma(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case math.IsInf(x, 1):
		return x
	case math.IsInf(x, -1):
		return math.NaN()
	}
	if isNonPosInt(x) {
		return math.Inf(poleSign(x))
	}
	if x > maxGammaArg {
		return math.Inf(1)
	}
	if x < 0.5 {
		return math.Pi / (sinPi(x) * gamma(1-x))
	}
	t := x + lanczos.G - 0.5
	p := lanczos.HalfPow(x)
	return lanczos.SqrtTwoPi * lanczos.Series(x) * p * math.Exp(-t) * p
}

// sinPi computes sin(πx) with the argument reduced to the nearest integer
// first, so the reflection formula keeps full precision next to the poles
// where πx itself would round away the distance to the singularity.
func sinPi(x float64) float64 {
	n := math.Round(x)
	s := math.Sin(math.Pi * (x - n))
	if int64(n)&1 != 0 {
		s = -s
	}
	return s
}

// GammaSgn returns the sign of Γ(x): 1 for x > 0, alternating between -1
// and 1 on the unit intervals between negative integers, and 0 at the
// poles and at zero where Γ has no one value.
func GammaSgn[T Float](x T) T {
	return T(gammaSgn(float64(x)))
}

func gammaSgn(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x > 0:
		return 1
	case isNonPosInt(x):
		return 0
	}
	if int64(math.Floor(-x))&1 != 0 {
		return 1
	}
	return -1
}

// RGamma computes the reciprocal Gamma function 1/Γ(x). Unlike Gamma it is
// entire: at the poles of Γ it returns exactly 0, and it underflows to 0
// rather than overflowing for large x.
func RGamma[T Float](x T) T {
	return T(rGamma(float64(x)))
}

func rGamma(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case math.IsInf(x, 1):
		return 0
	case isNonPosInt(x):
		return 0
	}
	return gammaSgn(x) * math.Exp(-lnGamma(x))
}

// Poch computes the Pochhammer symbol (rising factorial)
// Γ(x+m)/Γ(x). Integer shifts are taken by direct products; the general
// case goes through LnGamma with the sign recovered from GammaSgn. Where
// the ratio has a pole in the numerator only, the result is NaN; a pole in
// the denominator only gives 0.
func Poch[T Float](x, m T) T {
	return T(poch(float64(x), float64(m)))
}

func poch(x, m float64) float64 {
	if math.IsNaN(x) || math.IsNaN(m) {
		return math.NaN()
	}
	r := 1.0

	for m >= 1 {
		if x+m == 1 {
			break
		}
		m--
		r *= x + m
		if !finiteNonzero(r) {
			break
		}
	}
	for m <= -1 {
		if x+m == 1 {
			break
		}
		r /= x + m
		m++
		if !finiteNonzero(r) {
			break
		}
	}

	if m == 0 {
		return r
	}
	if x > 1e4 && math.Abs(m) <= 1 {
		// Asymptotic expansion of Γ(x+m)/Γ(x) ~ x^m for large x.
		return r * math.Pow(x, m) *
			(1 +
				m*(m-1)/(2*x) +
				m*(m-1)*(m-2)*(3*m-1)/(24*x*x) +
				m*m*(m-1)*(m-1)*(m-2)*(m-3)/(48*x*x*x))
	}

	if isNonPosInt(x+m) && !isNonPosInt(x) && x+m != m {
		return math.NaN()
	}
	if !isNonPosInt(x+m) && isNonPosInt(x) {
		return 0
	}

	return r * math.Exp(lnGamma(x+m)-lnGamma(x)) * gammaSgn(x+m) * gammaSgn(x)
}

func finiteNonzero(r float64) bool {
	return r != 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}
