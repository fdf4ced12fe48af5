package special

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/remyoudompheng/bigfft"
)

// Multiplications done per window before recursing. Keeps the partial
// products short enough to pipeline.
const maxMultiplications = 16

var factorialCache = [maxMultiplications + 1]uint64{
	1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800, 39916800,
	479001600, 6227020800, 87178291200, 1307674368000, 20922789888000,
}

var factorial2Cache = [2*maxMultiplications + 1]uint64{
	1, 1, 2, 3, 8, 15, 48, 105, 384, 945, 3840, 10395, 46080, 135135,
	645120, 2027025, 10321920, 34459425, 185794560, 654729075, 3715891200,
	13749310575, 81749606400, 316234143225, 1961990553600, 7905853580625,
	51011754393600, 213458046676875, 1428329123020800, 6190283353629375,
	42849873690624000, 191898783962510625, 1371195958099968000,
}

// Largest n whose (double) factorial fits a uint64.
const (
	maxFactorial64  = 20
	maxFactorial264 = 33
)

// Factorial returns n! = n·(n-1)·…·1, with 0! = 1.
//
// The result wraps modulo 2^64 for n > 20; use CheckedFactorial to detect
// that, or BigFactorial for an exact result.
func Factorial(n uint64) uint64 {
	if n < uint64(len(factorialCache)) {
		return factorialCache[n]
	}
	w := uint64(len(factorialCache))
	return partialProduct(n-(w-1), n, 1) * Factorial(n-w)
}

// Factorial2 returns the double factorial n!!, the product of the
// integers up to n with the same parity as n, with 0!! = 1.
//
// Wraps modulo 2^64 for n > 33; use CheckedFactorial2 for detection.
func Factorial2(n uint64) uint64 {
	if n < uint64(len(factorial2Cache)) {
		return factorial2Cache[n]
	}
	w := uint64(len(factorial2Cache))
	return partialProduct(n-(w-1), n, 2) * Factorial2(n-w)
}

// FactorialK returns the k-step factorial n·(n-k)·(n-2k)·…, with the
// convention that the value for n = 0 is 1 for every k. FactorialK(n, 1)
// is Factorial(n) and FactorialK(n, 2) is Factorial2(n).
//
// k must be positive; FactorialK panics otherwise. Wraps on overflow; use
// CheckedFactorialK for detection.
func FactorialK(n, k uint64) uint64 {
	if k == 0 {
		panic("special: FactorialK requires k > 0")
	}
	if n == 0 {
		return 1
	}
	// k*maxMultiplications can only wrap when it already exceeds any n, in
	// which case the whole product fits one window and no recursion is due.
	if k <= math.MaxUint64/maxMultiplications {
		maxWindow := k * maxMultiplications
		if n > maxWindow {
			return partialProduct(n-maxWindow, n, k) * FactorialK(n-maxWindow-1, k)
		}
	}
	window := k * (n / k)
	if window == n {
		window -= k
	}
	return partialProduct(n-window, n, k)
}

// CheckedFactorial is Factorial with overflow detection: ok is false when
// n! does not fit a uint64 (n > 20).
func CheckedFactorial(n uint64) (uint64, bool) {
	if n > maxFactorial64 {
		return 0, false
	}
	return Factorial(n), true
}

// CheckedFactorial2 is Factorial2 with overflow detection (n > 33).
func CheckedFactorial2(n uint64) (uint64, bool) {
	if n > maxFactorial264 {
		return 0, false
	}
	return Factorial2(n), true
}

// CheckedFactorialK is FactorialK with overflow detection. It also reports
// ok = false for k = 0 instead of panicking.
func CheckedFactorialK(n, k uint64) (uint64, bool) {
	if k == 0 {
		return 0, false
	}
	if n == 0 {
		return 1, true
	}
	if k <= math.MaxUint64/maxMultiplications {
		maxWindow := k * maxMultiplications
		if n > maxWindow {
			head, ok := checkedPartialProduct(n-maxWindow, n, k)
			if !ok {
				return 0, false
			}
			tail, ok := CheckedFactorialK(n-maxWindow-1, k)
			if !ok {
				return 0, false
			}
			return checkedMul64(head, tail)
		}
	}
	window := k * (n / k)
	if window == n {
		window -= k
	}
	return checkedPartialProduct(n-window, n, k)
}

// partialProduct computes start·(start+step)·… over values ≤ stop. The
// advance is guarded so a step past stop cannot wrap uint64 and re-enter
// the range.
func partialProduct(start, stop, step uint64) uint64 {
	result := uint64(1)
	for start <= stop {
		result *= start
		if stop-start < step {
			break
		}
		start += step
	}
	return result
}

func checkedPartialProduct(start, stop, step uint64) (uint64, bool) {
	result := uint64(1)
	for start <= stop {
		var ok bool
		if result, ok = checkedMul64(result, start); !ok {
			return 0, false
		}
		if stop-start < step {
			break
		}
		start += step
	}
	return result, true
}

func checkedMul64(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// Bit size above which balanced-product operands are multiplied with the
// FFT-based algorithm instead of math/big's Karatsuba.
const fftThresholdBits = 1 << 15

// BigFactorial returns n! exactly. The product is computed over balanced
// halves so the operands of each multiplication are of comparable size,
// which is what lets the FFT multiplication pay off for large n.
func BigFactorial(n uint64) *big.Int {
	if n <= maxFactorial64 {
		return new(big.Int).SetUint64(Factorial(n))
	}
	return rangeProduct(2, n)
}

func rangeProduct(lo, hi uint64) *big.Int {
	if hi-lo < maxMultiplications {
		p := new(big.Int).SetUint64(lo)
		t := new(big.Int)
		for v := lo + 1; v <= hi; v++ {
			p.Mul(p, t.SetUint64(v))
		}
		return p
	}
	mid := lo + (hi-lo)/2
	return mulBig(rangeProduct(lo, mid), rangeProduct(mid+1, hi))
}

func mulBig(a, b *big.Int) *big.Int {
	if a.BitLen() > fftThresholdBits && b.BitLen() > fftThresholdBits {
		return bigfft.Mul(a, b)
	}
	return new(big.Int).Mul(a, b)
}
