package knapsack_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvldp/knapsack"
)

// benchSeed keeps benchmark inputs reproducible across runs.
const benchSeed = 11

// randomItems builds n items with the index-0 boundary zeroed out.
func randomItems(n int) (weights, values []int) {
	rng := rand.New(rand.NewSource(benchSeed))
	weights = make([]int, n)
	values = make([]int, n)
	for i := 1; i < n; i++ {
		weights[i] = rng.Intn(50) + 1
		values[i] = rng.Intn(100) + 1
	}

	return weights, values
}

// BenchmarkSolve exercises the full table fill at graded instance sizes.
func BenchmarkSolve(b *testing.B) {
	for _, size := range []struct{ items, capacity int }{
		{20, 100},
		{50, 1000},
		{100, 5000},
	} {
		weights, values := randomItems(size.items)
		b.Run(fmt.Sprintf("n=%d/W=%d", size.items, size.capacity), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := knapsack.Solve(size.capacity, weights, values); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkTableItems isolates the reconstruction walk on a solved table.
func BenchmarkTableItems(b *testing.B) {
	weights, values := randomItems(100)
	table, err := knapsack.Solve(5000, weights, values)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = table.Items(weights); err != nil {
			b.Fatal(err)
		}
	}
}
