package fibonacci

import (
	"fmt"
	"math/big"
)

// Generate returns the first n Fibonacci numbers as uint64 values,
// seeded F(0)=0 and F(1)=1, each later term computed from the two
// stored terms immediately before it.
//
// n=0 yields an empty (non-nil) slice; n=1 yields [0]. Negative n fails
// with ErrNegativeCount; n greater than MaxUint64Terms fails with
// ErrTooManyTerms rather than silently overflowing.
//
// Complexity: O(n) time, O(n) space.
func Generate(n int) ([]uint64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeCount, n)
	}
	if n > MaxUint64Terms {
		return nil, fmt.Errorf("%w: n=%d, uint64 holds at most the first %d terms", ErrTooManyTerms, n, MaxUint64Terms)
	}

	seq := make([]uint64, n)
	// F(0)=0 is already the zero value; seed F(1) and roll the
	// recurrence forward over stored terms.
	if n > 1 {
		seq[1] = 1
	}
	for i := 2; i < n; i++ {
		seq[i] = seq[i-1] + seq[i-2]
	}

	return seq, nil
}

// GenerateBig returns the first n Fibonacci numbers as *big.Int values.
// It follows the same recurrence as Generate but has no upper bound on
// n; only negative n is rejected (ErrNegativeCount).
//
// Every element is freshly allocated, so mutating a returned term never
// affects its neighbours or later calls.
//
// Complexity: O(n·M(n)) time where M is big-integer addition cost, O(n) terms.
func GenerateBig(n int) ([]*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeCount, n)
	}

	seq := make([]*big.Int, n)
	for i := range seq {
		switch i {
		case 0:
			seq[i] = big.NewInt(0)
		case 1:
			seq[i] = big.NewInt(1)
		default:
			seq[i] = new(big.Int).Add(seq[i-1], seq[i-2])
		}
	}

	return seq, nil
}

// GenerateNaive returns the first n Fibonacci numbers with each term
// recomputed independently by unmemoized recursion. It is a pedagogical
// baseline for comparing against Generate, never a production path: the
// cost of term i alone is O(φⁱ), which is why n is capped at
// MaxNaiveTerms (ErrTooManyTerms beyond it, ErrNegativeCount below 0).
//
// Complexity: O(φⁿ) time, O(n) result space, O(n) recursion depth.
func GenerateNaive(n int) ([]uint64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeCount, n)
	}
	if n > MaxNaiveTerms {
		return nil, fmt.Errorf("%w: n=%d, naive recursion is capped at %d terms", ErrTooManyTerms, n, MaxNaiveTerms)
	}

	seq := make([]uint64, n)
	for i := range seq {
		seq[i] = naiveTerm(i)
	}

	return seq, nil
}

// naiveTerm computes F(i) by textbook recursive re-expansion, on purpose
// without memoization. Exponential; callers bound i via MaxNaiveTerms.
func naiveTerm(i int) uint64 {
	if i < 2 {
		return uint64(i)
	}

	return naiveTerm(i-1) + naiveTerm(i-2)
}
