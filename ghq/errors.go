// Package ghq: sentinel error set.
// All entry points MUST return these sentinels (or sentinels of package
// poly, propagated unwrapped) and tests MUST check them via errors.Is.

package ghq

import "errors"

var (
	// ErrNonPositiveOrder is returned when the quadrature order n ≤ 0.
	// Validated before any allocation.
	ErrNonPositiveOrder = errors.New("ghq: quadrature order must be positive")

	// ErrEigenFailed indicates that the symmetric tridiagonal
	// eigendecomposition did not converge within the solver's internal
	// iteration budget. Fatal and surfaced as-is — no retry, since
	// rerunning an iterative solver on unchanged input is futile.
	// Callers may fall back to a different method or report upward.
	ErrEigenFailed = errors.New("ghq: eigen decomposition failed to converge")
)
