// Package lis computes longest strictly-increasing subsequences of
// ordered sequences by quadratic tabulation with full back-pointer
// reconstruction.
//
// 🚀 What is LIS?
//
//	The longest increasing subsequence of a sequence is the longest
//	selection of elements, kept in their original relative order, whose
//	values strictly rise.  It shows up in:
//	  • Patience-sorting & card-game analysis
//	  • Edit-distance and diff-style sequence comparison
//	  • Scheduling & box-stacking style optimizations
//	  • Teaching the table/back-pointer DP pattern in its purest form
//
// ✨ Key features:
//   - one tabulation, three views: Find (values), FindIndices
//     (positions), Length (just the number)
//   - generic over any ordered element type (ints, floats, strings)
//   - strict increase: equal values never chain
//   - frozen deterministic tie-breaks — ambiguous inputs reproduce
//     byte-identical answers on every run and every platform
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvldp/lis"
//
//	seq := []int{10, 22, 9, 33, 21, 50, 41, 60, 80}
//	sub := lis.Find(seq)        // [10 22 33 50 60 80]
//	n   := lis.Length(seq)      // 6
//	pos := lis.FindIndices(seq) // [0 1 3 5 7 8]
//
// Performance:
//
//   - Time:   O(n²)
//   - Memory: O(n) for the length and predecessor tables
//
// Inputs are never mutated and results are freshly allocated; the
// functions are pure and safe to call from any number of goroutines.
package lis
