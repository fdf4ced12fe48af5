// Package special provides special mathematical functions: the Gamma
// function and its relatives, the error function, factorials,
// combinatorics, and the classical integer sequences built on them
// (Bernoulli, tangent, secant numbers).
//
// # Numeric model
//
// The floating-point evaluators are generic over the Float constraint
// (float32 and float64). Each generic entry point dispatches to a float64
// core; float32 results are obtained by conversion, which preserves the
// full float32 precision since the core carries roughly 15 significant
// digits.
//
// Errors are numerical, never panics: a pole yields a signed infinity, an
// overflow yields infinity of the correct sign, and NaN inputs propagate
// to NaN outputs. Callers interpret these sentinels; no function in this
// package returns an error value.
//
// # Evaluators
//
// Gamma and LnGamma share one Lanczos coefficient table (g = 7, 9 terms)
// with the complex evaluator in the cmplx subpackage. Gamma uses the
// reflection formula Γ(x)Γ(1-x) = π/sin(πx) for x < 0.5 and reports the
// simple poles at non-positive integers as signed infinities following the
// residue sign (-1)^n/n!. Erf and Erfc use rational interval
// approximations accurate to machine precision.
//
// # Integer functions
//
// Factorial, Factorial2, FactorialK, Choose, ChooseRep and Perm operate on
// machine integers with Checked variants that report overflow instead of
// wrapping. BigFactorial, Bernoulli, Tangent and Secant produce exact
// arbitrary-precision results.
//
// # Concurrency
//
// Every function is pure and stateless. The only package-level data are
// immutable coefficient and lookup tables, so all functions may be called
// concurrently without synchronization.
package special
