package nw_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/genealign/nw"
)

// benchmarkAlign runs Align on a random n-symbol sequence and a lightly
// mutated copy of it.
func benchmarkAlign(b *testing.B, n int, banded bool) {
	rng := rand.New(rand.NewSource(42))
	a := randomSeq(rng, "ACGT", n)
	c := mutate(rng, a, n/50+1)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := nw.Align(a, c, banded, n); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_FullSmall benchmarks full mode on 100-symbol sequences.
func BenchmarkAlign_FullSmall(b *testing.B) { benchmarkAlign(b, 100, false) }

// BenchmarkAlign_FullMedium benchmarks full mode on 1000-symbol sequences.
func BenchmarkAlign_FullMedium(b *testing.B) { benchmarkAlign(b, 1000, false) }

// BenchmarkAlign_BandedSmall benchmarks banded mode on 100-symbol sequences.
func BenchmarkAlign_BandedSmall(b *testing.B) { benchmarkAlign(b, 100, true) }

// BenchmarkAlign_BandedMedium benchmarks banded mode on 1000-symbol sequences.
func BenchmarkAlign_BandedMedium(b *testing.B) { benchmarkAlign(b, 1000, true) }

// BenchmarkAlign_BandedLarge benchmarks banded mode on 10000-symbol sequences.
func BenchmarkAlign_BandedLarge(b *testing.B) { benchmarkAlign(b, 10000, true) }
