// Package cmplx provides the Gamma function over the complex plane.
//
// The evaluator shares its Lanczos coefficient table with the real
// evaluators in the parent special package, and on the real axis it
// delegates to them outright, so the restriction of Gamma to Im(z) = 0
// reproduces special.Gamma by construction rather than by approximation.
//
// Off the axis, arguments with Re(z) ≥ 0.5 go through the Lanczos formula
// in complex arithmetic; the rest of the plane is reached by the
// reflection formula Γ(z) = π / (sin(πz)·Γ(1-z)) with principal-value
// complex sine and power, which leaves no branch ambiguity since Γ is
// single-valued.
package cmplx
