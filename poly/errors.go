// Package poly: sentinel error set.
// All functions in this package MUST return these sentinels and tests
// MUST check them via errors.Is. User-triggered error conditions never
// panic.

package poly

import "errors"

var (
	// ErrNegativeDegree is returned when a polynomial degree n < 0 is
	// requested. Degrees are validated before any allocation.
	ErrNegativeDegree = errors.New("poly: degree must be non-negative")

	// ErrZeroLeadingCoef signals a zero leading coefficient passed to
	// root finding. Companion-matrix construction divides by it, so the
	// condition is detected up front instead of producing infinities.
	ErrZeroLeadingCoef = errors.New("poly: zero leading coefficient")

	// ErrDimensionMismatch indicates inconsistent or degenerate array
	// lengths at the API boundary, e.g. fewer than two coefficients for
	// root finding, or an empty operand in broadcast evaluation.
	ErrDimensionMismatch = errors.New("poly: dimension mismatch")

	// ErrEigenFailed indicates that the companion-matrix eigenvalue
	// decomposition did not converge. Fatal and surfaced as-is: retrying
	// an iterative dense solver on unchanged input is futile.
	ErrEigenFailed = errors.New("poly: eigen decomposition failed to converge")
)
