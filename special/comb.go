package special

// Choose returns the binomial coefficient C(n, k), the number of ways to
// pick k items from n without repetition. Out-of-range arguments (k > n,
// or either negative) yield 0.
//
// The multiplicative recurrence keeps every intermediate value an exact
// integer, so the only failure mode is ordinary int64 overflow; use
// CheckedChoose to detect that.
func Choose(n, k int64) int64 {
	if k > n || n < 0 || k < 0 {
		return 0
	}
	m := n + 1
	terms := min(k, n-k) + 1
	result := int64(1)
	for i := int64(1); i < terms; i++ {
		result = result * (m - i) / i
	}
	return result
}

// ChooseRep returns the number of multisets of size k drawn from n items,
// C(n+k-1, k). Out-of-range arguments yield 0.
func ChooseRep(n, k int64) int64 {
	if n < 0 || k < 0 {
		return 0
	}
	return Choose(n+k-1, k)
}

// Perm returns the number of k-permutations of n items,
// n·(n-1)·…·(n-k+1). Out-of-range arguments yield 0.
func Perm(n, k int64) int64 {
	if k > n || n < 0 || k < 0 {
		return 0
	}
	result := int64(1)
	for i := n - k + 1; i <= n; i++ {
		result *= i
	}
	return result
}

// CheckedChoose is Choose with overflow detection.
func CheckedChoose(n, k int64) (int64, bool) {
	if k > n || n < 0 || k < 0 {
		return 0, true
	}
	m := n + 1
	terms := min(k, n-k) + 1
	result := int64(1)
	for i := int64(1); i < terms; i++ {
		p, ok := checkedMulInt64(result, m-i)
		if !ok {
			return 0, false
		}
		result = p / i
	}
	return result, true
}

// CheckedChooseRep is ChooseRep with overflow detection, including
// overflow of the n+k-1 shift itself.
func CheckedChooseRep(n, k int64) (int64, bool) {
	if n < 0 || k < 0 {
		return 0, true
	}
	shifted, ok := checkedAddInt64(n, k-1)
	if !ok {
		return 0, false
	}
	return CheckedChoose(shifted, k)
}

// CheckedPerm is Perm with overflow detection.
func CheckedPerm(n, k int64) (int64, bool) {
	if k > n || n < 0 || k < 0 {
		return 0, true
	}
	result := int64(1)
	for i := n - k + 1; i <= n; i++ {
		var ok bool
		if result, ok = checkedMulInt64(result, i); !ok {
			return 0, false
		}
	}
	return result, true
}

func checkedMulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

func checkedAddInt64(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}
