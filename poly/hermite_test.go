package poly_test

import (
	"testing"

	"github.com/katalvlaran/quad/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// horner evaluates a coefficient slice at x, as an independent check
// against the recurrence-based EvalHermite.
func horner(coef []float64, x float64) float64 {
	v := 0.0
	for i := len(coef) - 1; i >= 0; i-- {
		v = v*x + coef[i]
	}

	return v
}

// TestHermiteCoef_LowDegrees pins the exact coefficient slices for the
// first few Hermite polynomials.
func TestHermiteCoef_LowDegrees(t *testing.T) {
	cases := []struct {
		n    int
		want []float64
	}{
		{0, []float64{1}},                // H_0 = 1
		{1, []float64{0, 2}},             // H_1 = 2x
		{2, []float64{-2, 0, 4}},         // H_2 = 4x² − 2
		{3, []float64{0, -12, 0, 8}},     // H_3 = 8x³ − 12x
		{4, []float64{12, 0, -48, 0, 16}}, // H_4 = 16x⁴ − 48x² + 12
	}

	for _, tc := range cases {
		got, err := poly.HermiteCoef(tc.n)
		require.NoError(t, err, "HermiteCoef(%d) must not error", tc.n)
		assert.Equal(t, tc.want, got, "coefficients of H_%d", tc.n)
	}
}

// TestHermiteCoef_NegativeDegree verifies the up-front degree check.
func TestHermiteCoef_NegativeDegree(t *testing.T) {
	coef, err := poly.HermiteCoef(-1)
	assert.ErrorIs(t, err, poly.ErrNegativeDegree, "negative degree must error")
	assert.Nil(t, coef, "no partial coefficient slice on error")
}

// TestHermiteCoef_Idempotent verifies that repeated calls with the same
// degree yield identical output (no hidden state).
func TestHermiteCoef_Idempotent(t *testing.T) {
	a, err := poly.HermiteCoef(12)
	require.NoError(t, err)
	b, err := poly.HermiteCoef(12)
	require.NoError(t, err)
	assert.Equal(t, a, b, "HermiteCoef must be deterministic")
}

// TestEvalHermite_MatchesCoefficients cross-checks the recurrence
// evaluation against Horner evaluation of the exact coefficients.
func TestEvalHermite_MatchesCoefficients(t *testing.T) {
	points := []float64{-1.5, -0.3, 0, 0.7, 2}

	for n := 0; n <= 8; n++ {
		coef, err := poly.HermiteCoef(n)
		require.NoError(t, err)

		for _, x := range points {
			got := poly.EvalHermite(x, n)
			want := horner(coef, x)
			assert.InDelta(t, want, got, 1e-9, "H_%d(%v)", n, x)
		}
	}
}

// TestEvalHermiteBatch_Pairwise checks equal-length pairwise evaluation:
// H_0(0) = 1 and H_1(1) = 2.
func TestEvalHermiteBatch_Pairwise(t *testing.T) {
	got, err := poly.EvalHermiteBatch([]float64{0, 1}, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, got)
}

// TestEvalHermiteBatch_ScalarDegree checks broadcasting a single degree
// across many points.
func TestEvalHermiteBatch_ScalarDegree(t *testing.T) {
	// H_2(x) = 4x² − 2 at x = 0, 1, 2.
	got, err := poly.EvalHermiteBatch([]float64{0, 1, 2}, []int{2})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, 2, 14}, got)
}

// TestEvalHermiteBatch_ScalarPoint checks broadcasting a single point
// across many degrees.
func TestEvalHermiteBatch_ScalarPoint(t *testing.T) {
	// H_0(1) = 1, H_1(1) = 2, H_2(1) = 2.
	got, err := poly.EvalHermiteBatch([]float64{1}, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 2}, got)
}

// TestEvalHermiteBatch_Errors covers empty operands and negative degrees.
func TestEvalHermiteBatch_Errors(t *testing.T) {
	_, err := poly.EvalHermiteBatch(nil, []int{1})
	assert.ErrorIs(t, err, poly.ErrDimensionMismatch, "empty points must error")

	_, err = poly.EvalHermiteBatch([]float64{0}, nil)
	assert.ErrorIs(t, err, poly.ErrDimensionMismatch, "empty degrees must error")

	_, err = poly.EvalHermiteBatch([]float64{0, 1}, []int{1, -2})
	assert.ErrorIs(t, err, poly.ErrNegativeDegree, "negative degree must error")
}
