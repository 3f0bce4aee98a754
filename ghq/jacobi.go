package ghq

import "math"

// hermiteJacobi builds the symmetric tridiagonal matrix similar to the
// Jacobi matrix of the monic Hermite polynomials
//
//	p_n(x) = H_n(x) / 2^n
//	p_{n+1}(x) + (B_n − x)·p_n(x) + A_n·p_{n−1}(x) = 0
//	B_n = 0,  A_n = n/2
//
// returned implicitly as its diagonal d (length n, all zero since the
// recursion has no shift term) and sub/super-diagonal e (length n−1,
// e[i] = √A_{i+1} = √((i+1)/2); empty for n = 1). The matrix is never
// materialized densely here. Callers validate n ≥ 1.
func hermiteJacobi(n int) (d, e []float64) {
	d = make([]float64, n)
	e = make([]float64, n-1)
	for i := range e {
		e[i] = math.Sqrt((float64(i) + 1) / 2)
	}

	return d, e
}
