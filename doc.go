// Package quad provides numerical quadrature rules for scientific
// computing — starting with fast, stable Gauss-Hermite nodes and weights
// for integrals of the form ∫ f(x)·e^(−x²) dx over the real line.
//
// 🚀 What is quad?
//
//	A small, focused library for statistical and numerical callers that
//	need quadrature rules, e.g. adaptive Gauss-Hermite approximation of
//	marginal likelihoods:
//		• Golub-Welsch rules: eigendecomposition of the Jacobi matrix,
//		  stable to order n ≥ 100 and beyond
//		• Direct rules: textbook coefficient recursion + companion-matrix
//		  root finding (illustrative; unstable past n ≈ 20)
//		• Polynomial toolbox: Hermite coefficients, evaluation, and
//		  general real-root extraction
//
// ✨ Why choose quad?
//
//   - Minimal API – arrays in, arrays out, sentinel errors via errors.Is
//   - Deterministic – no hidden state, identical input gives identical output
//   - Concurrency-safe – every call owns its own scratch; no globals
//   - Vetted numerics – all matrix factorization delegated to gonum
//
// Everything is organized under two subpackages:
//
//	ghq/  — Gauss-Hermite quadrature rules (Golub-Welsch and direct paths)
//	poly/ — Hermite polynomial coefficients, evaluation, companion-matrix roots
//
// Quick start:
//
//	rule, err := ghq.GaussHermite(20)
//	if err != nil { ... }
//	v := rule.Integrate(math.Cos) // ≈ ∫ cos(x)·e^(−x²) dx = √π·e^(−1/4)
//
//	go get github.com/katalvlaran/quad
package quad
