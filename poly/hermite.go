package poly

// HermiteCoef computes the coefficients of the physicists' Hermite
// polynomial H_n. The returned slice has length n+1 with coefficient i
// multiplying x^i, so HermiteCoef(2) = [−2, 0, 4] encodes
// H_2(x) = 4x² − 2.
//
// The recurrence H_i(x) = 2x·H_{i−1}(x) − 2(i−1)·H_{i−2}(x) runs over
// exact int64 arithmetic and converts to float64 only at the final
// extraction step, so no rounding accumulates during the recursion
// itself. Coefficients grow exponentially with n, however, and overflow
// int64 past roughly degree 30; results beyond that are unusable, which
// matches the instability ceiling of the direct quadrature path that
// consumes them (see ghq.GaussHermiteDirect).
//
// Errors:
//   - ErrNegativeDegree — n < 0.
//
// Complexity: O(n²) time and space (call-local workspace).
func HermiteCoef(n int) ([]float64, error) {
	if n < 0 {
		return nil, ErrNegativeDegree
	}

	// Degenerate degrees need no workspace.
	if n == 0 {
		return []float64{1}, nil
	}
	if n == 1 {
		return []float64{0, 2}, nil
	}

	// Row i of the workspace holds the n+1 coefficients of H_i.
	stride := n + 1
	work := make([]int64, stride*stride)
	work[0] = 1        // H_0(x) = 1
	work[stride+1] = 2 // H_1(x) = 2x

	for i := 2; i <= n; i++ {
		k := int64(2 * (i - 1))
		// Constant term has no 2x·H_{i−1} contribution.
		work[i*stride] = -k * work[(i-2)*stride]
		for j := 1; j <= i; j++ {
			work[i*stride+j] = 2*work[(i-1)*stride+j-1] - k*work[(i-2)*stride+j]
		}
	}

	coef := make([]float64, stride)
	for j := range coef {
		coef[j] = float64(work[n*stride+j])
	}

	return coef, nil
}

// EvalHermite evaluates the physicists' Hermite polynomial H_n at x via
// the three-term recurrence
//
//	H_{i+1}(x) = 2x·H_i(x) − 2i·H_{i−1}(x),  H_0(x) = 1,  H_1(x) = 2x.
//
// O(n) time, O(1) space, no memoization across calls. The degree must
// be non-negative; EvalHermiteBatch validates degrees for callers that
// take them from external input.
func EvalHermite(x float64, n int) float64 {
	if n == 0 {
		return 1
	}
	if n == 1 {
		return 2 * x
	}

	hm2, hm1 := 1.0, 2*x
	var h float64
	for i := 2; i <= n; i++ {
		h = 2*x*hm1 - 2*float64(i-1)*hm2
		hm2, hm1 = hm1, h
	}

	return h
}

// EvalHermiteBatch evaluates Hermite polynomials for paired points and
// degrees with scalar broadcasting: when the slices have equal length
// the evaluation is pairwise H_{ns[i]}(xs[i]); otherwise the shorter
// argument is treated as a scalar — its first element is repeated
// across the longer one. The result has the length of the longer input.
//
// Errors:
//   - ErrDimensionMismatch — either slice is empty.
//   - ErrNegativeDegree    — any degree is negative (checked before any
//     evaluation; no partial result is returned).
func EvalHermiteBatch(xs []float64, ns []int) ([]float64, error) {
	if len(xs) == 0 || len(ns) == 0 {
		return nil, ErrDimensionMismatch
	}
	for _, n := range ns {
		if n < 0 {
			return nil, ErrNegativeDegree
		}
	}

	switch {
	case len(xs) == len(ns):
		out := make([]float64, len(xs))
		for i := range xs {
			out[i] = EvalHermite(xs[i], ns[i])
		}
		return out, nil

	case len(xs) > len(ns):
		// Degree is scalar: repeat ns[0] across all points.
		out := make([]float64, len(xs))
		for i := range xs {
			out[i] = EvalHermite(xs[i], ns[0])
		}
		return out, nil

	default:
		// Point is scalar: repeat xs[0] across all degrees.
		out := make([]float64, len(ns))
		for i := range ns {
			out[i] = EvalHermite(xs[0], ns[i])
		}
		return out, nil
	}
}
