package ghq

import (
	"math"

	"github.com/katalvlaran/quad/poly"
)

// GaussHermiteDirect computes the order-n Gauss-Hermite quadrature rule
// by direct polynomial construction:
//  1. exact Hermite coefficients via poly.HermiteCoef,
//  2. nodes as the real roots of H_n via poly.FindRoots,
//  3. weights through the closed form
//     w_i = 2^(n−1)·n!·√π / (n²·H_{n−1}(x_i)²)
//     evaluated in log space — the factors span hundreds of orders of
//     magnitude, so the logarithms are summed and exponentiated once:
//     log w_i = (n−1)·log 2 + lgamma(n+1) + ½·log π
//     − 2·log n − 2·log|H_{n−1}(x_i)|.
//
// The construction is clear but numerically unstable beyond n ≈ 20:
// the int64 coefficient recursion overflows and the companion-matrix
// root finding is ill-conditioned for high degrees. Callers needing
// large n must use GaussHermite instead; this path exists for teaching
// and for cross-validation at small orders.
//
// Errors:
//   - ErrNonPositiveOrder — n ≤ 0, checked before any allocation.
//   - poly.ErrEigenFailed — root finding did not converge (propagated).
func GaussHermiteDirect(n int) (*Rule, error) {
	if n < 1 {
		return nil, ErrNonPositiveOrder
	}

	coef, err := poly.HermiteCoef(n)
	if err != nil {
		return nil, err
	}

	nodes, err := poly.FindRoots(coef)
	if err != nil {
		return nil, err
	}

	log2 := math.Log(2)
	logSqrtPi := 0.5 * math.Log(math.Pi)
	lgam, _ := math.Lgamma(float64(n + 1))
	logN := math.Log(float64(n))

	weights := make([]float64, n)
	for i, x := range nodes {
		lw := float64(n-1)*log2 + lgam + logSqrtPi -
			2*logN - 2*math.Log(math.Abs(poly.EvalHermite(x, n-1)))
		weights[i] = math.Exp(lw)
	}

	return &Rule{Nodes: nodes, Weights: weights}, nil
}
