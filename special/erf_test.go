package special

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestErf_KnownValues(t *testing.T) {
	testCases := []struct {
		x, want float64
	}{
		{0, 0},
		{0.5, 0.5204998778130465377},
		{1, 0.8427007929497148693},
		{2, 0.9953222650189527342},
		{3, 0.9999779095030014146},
		{-1, -0.8427007929497148693},
		{0.25, 0.2763263901682369017},
	}

	for _, tc := range testCases {
		got := Erf(tc.x)
		if !scalar.EqualWithinAbsOrRel(got, tc.want, 1e-15, 1e-14) {
			t.Errorf("Erf(%v) = %v, want %v (ULP error: %v)",
				tc.x, got, tc.want, ulpDistance64(got, tc.want))
		}
	}
}

func TestErf_MatchesStdlib(t *testing.T) {
	for x := -5.9; x < 5.9; x += 0.113 {
		got := Erf(x)
		want := math.Erf(x)
		if !scalar.EqualWithinAbsOrRel(got, want, 1e-15, 1e-13) {
			t.Errorf("Erf(%v) = %v, math.Erf = %v (ULP error: %v)",
				x, got, want, ulpDistance64(got, want))
		}
	}
}

func TestErf_Saturation(t *testing.T) {
	for _, x := range []float64{6, 7, 100, 1e300, math.Inf(1)} {
		if got := Erf(x); got != 1 {
			t.Errorf("Erf(%v) = %v, want exactly 1", x, got)
		}
		if got := Erf(-x); got != -1 {
			t.Errorf("Erf(%v) = %v, want exactly -1", -x, got)
		}
	}
}

func TestErf_OddSymmetry(t *testing.T) {
	for _, x := range []float64{1e-12, 0.3, 0.9, 1.7, 3.2, 5.5} {
		a := Erf(x)
		b := Erf(-x)
		if a != -b {
			t.Errorf("Erf(%v) = %v but Erf(%v) = %v; want exact odd symmetry", x, a, -x, b)
		}
	}
}

func TestErf_TinyArgument(t *testing.T) {
	// Below the series cutoff erf(x) ≈ 2x/√π.
	for _, x := range []float64{1e-12, 1e-15, 5e-11} {
		got := Erf(x)
		want := x * 2 / math.SqrtPi
		if !scalar.EqualWithinRel(got, want, 1e-12) {
			t.Errorf("Erf(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestErf_NaN(t *testing.T) {
	if got := Erf(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Erf(NaN) = %v, want NaN", got)
	}
}

func TestErfc_KnownValues(t *testing.T) {
	testCases := []struct {
		x, want float64
	}{
		{0, 1},
		{0.5, 0.4795001221869534623},
		{1, 0.1572992070502851307},
		{2, 0.0046777349810472658},
		{5, 1.5374597944280348502e-11},
		{10, 2.0884875837625447570e-45},
		{-1, 1.8427007929497148693},
		{-3, 1.9999779095030014146},
	}

	for _, tc := range testCases {
		got := Erfc(tc.x)
		if !scalar.EqualWithinRel(got, tc.want, 1e-12) {
			t.Errorf("Erfc(%v) = %v, want %v (ULP error: %v)",
				tc.x, got, tc.want, ulpDistance64(got, tc.want))
		}
	}
}

func TestErfc_MatchesStdlib(t *testing.T) {
	for x := -6.0; x < 26; x += 0.211 {
		got := Erfc(x)
		want := math.Erfc(x)
		if !scalar.EqualWithinRel(got, want, 1e-12) {
			t.Errorf("Erfc(%v) = %v, math.Erfc = %v (ULP error: %v)",
				x, got, want, ulpDistance64(got, want))
		}
	}
}

func TestErfc_Saturation(t *testing.T) {
	for _, x := range []float64{110, 200, 1e9, math.Inf(1)} {
		if got := Erfc(x); got != 0 {
			t.Errorf("Erfc(%v) = %v, want exactly 0", x, got)
		}
	}
	for _, x := range []float64{-6, -50, math.Inf(-1)} {
		if got := Erfc(x); got != 2 {
			t.Errorf("Erfc(%v) = %v, want exactly 2", x, got)
		}
	}
}

func TestErfc_ComplementIdentity(t *testing.T) {
	for _, x := range []float64{-3, -1.5, -0.25, 0, 0.4, 1, 2.5, 4, 5.75} {
		sum := Erf(x) + Erfc(x)
		if !scalar.EqualWithinAbs(sum, 1, 1e-14) {
			t.Errorf("Erf(%v)+Erfc(%v) = %v, want 1", x, x, sum)
		}
	}
}

func TestErfc_NaN(t *testing.T) {
	if got := Erfc(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Erfc(NaN) = %v, want NaN", got)
	}
}

func TestErf_Float32(t *testing.T) {
	testCases := []struct {
		x, want float32
	}{
		{1, 0.8427008},
		{-0.5, -0.52049988},
		{2, 0.99532226},
	}
	for _, tc := range testCases {
		got := Erf(tc.x)
		if !scalar.EqualWithinRel(float64(got), float64(tc.want), 1e-6) {
			t.Errorf("Erf[float32](%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}
