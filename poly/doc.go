// Package poly implements Hermite polynomial utilities and general
// real-root extraction via the companion matrix.
//
// The package covers three closely related operations:
//
//   - HermiteCoef computes the coefficients of the physicists' Hermite
//     polynomial H_n using the two-term recurrence over exact int64
//     arithmetic, converting to float64 only at the end.
//   - EvalHermite and EvalHermiteBatch evaluate H_n(x) directly through
//     the three-term recurrence H_{i+1}(x) = 2x·H_i(x) − 2i·H_{i−1}(x).
//   - FindRoots locates the roots of an arbitrary polynomial as the
//     eigenvalues of its companion matrix, keeping only the real parts.
//
// These are the building blocks of the direct Gauss-Hermite quadrature
// path in package ghq. They are simple and exact for small degrees, but
// both the coefficient recursion (int64 growth) and the root finding
// (ill-conditioned companion matrix) degrade for large n; production
// quadrature should use ghq.GaussHermite, which avoids polynomials
// entirely.
//
// All functions are pure: no package state, no logging, safe for
// concurrent use. Errors are package sentinels matched via errors.Is.
package poly
