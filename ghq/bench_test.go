package ghq_test

import (
	"testing"

	"github.com/katalvlaran/quad/ghq"
)

// benchmarkGaussHermite runs the Golub-Welsch path at order n.
func benchmarkGaussHermite(b *testing.B, n int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ghq.GaussHermite(n); err != nil {
			b.Fatalf("GaussHermite(%d) failed: %v", n, err)
		}
	}
}

// BenchmarkGaussHermite_Order10 benchmarks a small production rule.
func BenchmarkGaussHermite_Order10(b *testing.B) { benchmarkGaussHermite(b, 10) }

// BenchmarkGaussHermite_Order50 benchmarks a medium rule.
func BenchmarkGaussHermite_Order50(b *testing.B) { benchmarkGaussHermite(b, 50) }

// BenchmarkGaussHermite_Order100 benchmarks the large stable regime.
func BenchmarkGaussHermite_Order100(b *testing.B) { benchmarkGaussHermite(b, 100) }

// BenchmarkGaussHermiteDirect_Order10 benchmarks the direct path in its
// accurate regime, for comparison with the stable path at equal order.
func BenchmarkGaussHermiteDirect_Order10(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := ghq.GaussHermiteDirect(10); err != nil {
			b.Fatalf("GaussHermiteDirect(10) failed: %v", err)
		}
	}
}
