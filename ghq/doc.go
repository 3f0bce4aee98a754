// Package ghq computes nodes and weights for Gauss-Hermite quadrature:
// given an order n it produces abscissae x_i and weights w_i such that
//
//	∫ f(x)·e^(−x²) dx ≈ Σ w_i·f(x_i)
//
// over the real line.
//
// 🚀 Two paths, one contract:
//
//   - GaussHermite — the Golub-Welsch algorithm: eigendecomposition of
//     the symmetric tridiagonal Jacobi matrix built from the three-term
//     recurrence of the monic Hermite polynomials. No polynomial is ever
//     evaluated, so the method stays stable for n ≥ 100 and beyond.
//     This is the recommended entry point.
//   - GaussHermiteDirect — the textbook construction: exact Hermite
//     coefficients, companion-matrix root finding, and a log-space
//     weight formula. Clear and illustrative, but compounding error in
//     the coefficient recursion and root finding makes it unusable past
//     n ≈ 20. Kept for teaching and for cross-checking the stable path
//     at small orders.
//
// ✨ Guarantees (both paths, within floating tolerance):
//
//   - every weight is strictly positive
//   - the weights sum to μ₀ = √π, the total mass of e^(−x²)
//   - identical input yields identical output; no hidden state
//   - safe for concurrent use: each call owns its own scratch buffers
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/quad/ghq"
//
//	rule, err := ghq.GaussHermite(20)
//	if err != nil {
//	  // ErrNonPositiveOrder or ErrEigenFailed
//	}
//	v := rule.Integrate(math.Cos) // ≈ √π·e^(−1/4)
//
// All matrix factorization is delegated to gonum; no numerical linear
// algebra is reimplemented here.
//
// Complexity: O(n²) matrix construction, O(n³) eigendecomposition.
package ghq
