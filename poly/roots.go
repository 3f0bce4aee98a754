package poly

import "gonum.org/v1/gonum/mat"

// FindRoots computes the n roots of the degree-n polynomial
//
//	p(x) = coef[0] + coef[1]·x + ... + coef[n]·x^n
//
// as the eigenvalues of its companion matrix, returning only the real
// part of each eigenvalue.
//
// The companion matrix carries ones on the subdiagonal and the negated,
// leading-coefficient-normalized coefficients in its last column; its
// characteristic polynomial is exactly p, so a general (non-symmetric)
// eigenvalue decomposition — eigenvalues only, no eigenvectors — yields
// the roots. The matrix is call-local scratch, released on every path.
//
// Imaginary parts are computed and discarded. This is a deliberate,
// lossy contract: it is valid only when p is known a priori to have
// all-real roots (as Hermite polynomials do). For a polynomial with
// complex roots the result silently contains the real parts of the
// conjugate pairs; no error is raised.
//
// Errors:
//   - ErrDimensionMismatch — fewer than two coefficients (a constant
//     polynomial has no roots to find).
//   - ErrZeroLeadingCoef   — coef[n] == 0.
//   - ErrEigenFailed       — the eigensolver did not converge.
//
// Complexity: O(n²) construction, O(n³) decomposition.
func FindRoots(coef []float64) ([]float64, error) {
	if len(coef) < 2 {
		return nil, ErrDimensionMismatch
	}
	n := len(coef) - 1
	if coef[n] == 0 {
		return nil, ErrZeroLeadingCoef
	}

	c := mat.NewDense(n, n, nil)
	for i := 1; i < n; i++ {
		c.Set(i, i-1, 1)
	}
	for i := 0; i < n; i++ {
		c.Set(i, n-1, -coef[i]/coef[n])
	}

	var eig mat.Eigen
	if ok := eig.Factorize(c, mat.EigenNone); !ok {
		return nil, ErrEigenFailed
	}

	roots := make([]float64, n)
	for i, v := range eig.Values(nil) {
		roots[i] = real(v)
	}

	return roots, nil
}
