// Package ghq defines the quadrature rule type shared by both
// construction paths.
package ghq

// Rule is a Gauss-Hermite quadrature rule of some order n: Nodes holds
// the n abscissae and Weights the matching n weights, index-aligned.
// Both slices are freshly allocated per call and owned by the caller;
// the package retains no reference to them.
//
// Nodes produced by GaussHermite come out in ascending order (the
// symmetric eigensolver sorts its eigenvalues); the direct path makes
// no ordering promise.
type Rule struct {
	Nodes   []float64
	Weights []float64
}

// Len returns the order of the rule.
func (r *Rule) Len() int { return len(r.Nodes) }

// Integrate approximates ∫ f(x)·e^(−x²) dx over the real line as the
// weighted sum Σ Weights[i]·f(Nodes[i]). Exact for polynomial f of
// degree up to 2n−1.
func (r *Rule) Integrate(f func(float64) float64) float64 {
	var sum float64
	for i, x := range r.Nodes {
		sum += r.Weights[i] * f(x)
	}

	return sum
}
