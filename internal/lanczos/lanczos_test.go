package lanczos

import (
	"math"
	"math/cmplx"
	"testing"
)

// Assembling the full approximation from the exported pieces must
// reproduce Γ at easy reference points; this pins the coefficient table
// and the series indexing against transcription slips.
func assemble(x float64) float64 {
	t := x + G - 0.5
	p := HalfPow(x)
	return SqrtTwoPi * Series(x) * p * math.Exp(-t) * p
}

func TestSeries_ReproducesGamma(t *testing.T) {
	testCases := []struct {
		x, want float64
	}{
		{0.5, math.Sqrt(math.Pi)},
		{1, 1},
		{2, 1},
		{5, 24},
		{7.5, 1871.2543057977862},
		{10, 362880},
	}
	for _, tc := range testCases {
		got := assemble(tc.x)
		if math.Abs(got-tc.want) > 1e-12*math.Abs(tc.want) {
			t.Errorf("assembled Γ(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestSeriesCmplx_MatchesRealOnAxis(t *testing.T) {
	for _, x := range []float64{0.5, 1.25, 3, 8.5, 20} {
		got := SeriesCmplx(complex(x, 0))
		want := Series(x)
		if real(got) != want || imag(got) != 0 {
			t.Errorf("SeriesCmplx(%v+0i) = %v, Series = %v", x, got, want)
		}
	}
}

func TestHalfPow_SplitsWithoutOverflow(t *testing.T) {
	// Near the Γ overflow cutoff the full power t^(x-0.5) is not
	// representable, but each half must be.
	for _, x := range []float64{150, 171, 171.6} {
		p := HalfPow(x)
		if math.IsInf(p, 0) {
			t.Errorf("HalfPow(%v) overflowed", x)
		}
		t2 := x + G - 0.5
		want := math.Pow(t2, x-0.5)
		if !math.IsInf(want, 0) {
			rel := math.Abs(p*p-want) / want
			if rel > 1e-12 {
				t.Errorf("HalfPow(%v)² = %v, want %v", x, p*p, want)
			}
		}
	}
}

func TestHalfPowCmplx_MatchesRealOnAxis(t *testing.T) {
	for _, x := range []float64{1, 5.5, 42} {
		got := HalfPowCmplx(complex(x, 0))
		want := HalfPow(x)
		if cmplx.Abs(got-complex(want, 0)) > 1e-12*want {
			t.Errorf("HalfPowCmplx(%v+0i) = %v, HalfPow = %v", x, got, want)
		}
	}
}

func TestConstants(t *testing.T) {
	if math.Abs(SqrtTwoPi-math.Sqrt(2*math.Pi)) > 1e-15 {
		t.Errorf("SqrtTwoPi = %v", SqrtTwoPi)
	}
	if math.Abs(LogSqrtTwoPi-math.Log(SqrtTwoPi)) > 1e-15 {
		t.Errorf("LogSqrtTwoPi = %v", LogSqrtTwoPi)
	}
}
