package special

import (
	"math"
	"testing"
)

func TestEvalPoly(t *testing.T) {
	testCases := []struct {
		name   string
		x      float64
		coeffs []float64
		want   float64
	}{
		{"empty", 3, nil, 0},
		{"constant", 100, []float64{7.5}, 7.5},
		{"linear", 2, []float64{3, 1}, 7},                  // 3x + 1
		{"quadratic", 2, []float64{1, -2, 1}, 1},           // (x-1)²
		{"cubic at zero", 0, []float64{4, 3, 2, 1}, 1},
		{"negative x", -2, []float64{1, 0, 0, 0}, -8},      // x³
		{"fractional", 0.5, []float64{2, -1, 0.25}, 0.25},  // 2x² - x + 0.25
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := evalPoly(tc.x, tc.coeffs)
			if math.Abs(got-tc.want) > 1e-15 {
				t.Errorf("evalPoly(%v, %v) = %v, want %v", tc.x, tc.coeffs, got, tc.want)
			}
		})
	}
}

func TestEvalPoly_Float32(t *testing.T) {
	got := evalPoly(float32(2), []float32{1, 1, 1}) // x² + x + 1
	if got != 7 {
		t.Errorf("evalPoly[float32] = %v, want 7", got)
	}
}

func TestIsNonPosInt(t *testing.T) {
	for _, x := range []float64{0, -1, -2, -1e6, math.Copysign(0, -1)} {
		if !isNonPosInt(x) {
			t.Errorf("isNonPosInt(%v) = false, want true", x)
		}
	}
	for _, x := range []float64{1, 0.5, -0.5, -1.0000001, math.NaN(), math.Inf(1)} {
		if isNonPosInt(x) {
			t.Errorf("isNonPosInt(%v) = true, want false", x)
		}
	}
}
