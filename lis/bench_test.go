package lis_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvldp/lis"
)

// benchSeed keeps benchmark inputs reproducible across runs.
const benchSeed = 7

// randomSequence builds an n-element input with values spread wide enough
// to avoid degenerate all-equal runs.
func randomSequence(n int) []int {
	rng := rand.New(rand.NewSource(benchSeed))
	seq := make([]int, n)
	for i := range seq {
		seq[i] = rng.Intn(10 * n)
	}

	return seq
}

// BenchmarkFind exercises the full tabulate-and-reconstruct path at graded
// sizes; the quadratic inner scan dominates from n≈1000 up.
func BenchmarkFind(b *testing.B) {
	for _, n := range []int{100, 1000, 5000} {
		seq := randomSequence(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = lis.Find(seq)
			}
		})
	}
}

// BenchmarkLength isolates the tabulation without the reconstruction walk.
func BenchmarkLength(b *testing.B) {
	seq := randomSequence(1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = lis.Length(seq)
	}
}
