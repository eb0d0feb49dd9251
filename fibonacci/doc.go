// Package fibonacci generates prefixes of the Fibonacci sequence by
// linear tabulation, with an explicitly exponential naive variant kept
// for side-by-side comparison.
//
// The sequence is seeded F(0)=0, F(1)=1 and every later term is the sum
// of the two immediately preceding stored terms, so Generate runs in
// O(n) time and O(n) space. GenerateNaive recomputes each term by
// unmemoized recursive expansion instead; it exists only as a teaching
// baseline for measuring what tabulation buys, and it is bounded to
// small inputs because its cost grows as φⁿ.
//
// Two value domains are supported:
//
//   - Generate returns []uint64 and refuses prefixes longer than
//     MaxUint64Terms, since F(93) is the last term that fits in uint64.
//   - GenerateBig returns []*big.Int with no upper bound.
//
// All generators are pure: inputs are never mutated, results are freshly
// allocated on every call, and identical inputs yield identical outputs.
//
// Errors follow the package convention of a single ErrInvalidArgument
// root sentinel with finer-grained sentinels wrapped around it; match
// either level with errors.Is.
package fibonacci
