// Package fibonacci - bounds and sentinel errors shared by the generators.
package fibonacci

import (
	"errors"
	"fmt"
)

// MaxUint64Terms is the longest prefix Generate can produce without
// overflowing its element type: F(93) = 12200160415121876738 is the
// largest Fibonacci number representable in uint64, so the first 94
// terms F(0)..F(93) are the exact uint64-safe range. Longer prefixes
// must go through GenerateBig.
const MaxUint64Terms = 94

// MaxNaiveTerms bounds GenerateNaive. Producing the first n terms by
// unmemoized recursion costs on the order of F(n+2) self-calls, so 35
// keeps the worst case near 3·10⁷ invocations; past that the variant
// stops being a comparison baseline and becomes a stall.
const MaxNaiveTerms = 35

// Sentinel errors for the Fibonacci generators.
//
// ErrInvalidArgument is the root of the family: every malformed-input
// failure satisfies errors.Is(err, ErrInvalidArgument). The finer
// sentinels below wrap it so callers may match at either granularity.
var (
	// ErrInvalidArgument is the root sentinel for all malformed input.
	ErrInvalidArgument = errors.New("fibonacci: invalid argument")

	// ErrNegativeCount indicates a negative requested term count.
	ErrNegativeCount = fmt.Errorf("%w: negative term count", ErrInvalidArgument)

	// ErrTooManyTerms indicates a term count beyond the generator's
	// documented bound (MaxUint64Terms or MaxNaiveTerms).
	ErrTooManyTerms = fmt.Errorf("%w: term count exceeds generator bound", ErrInvalidArgument)
)
