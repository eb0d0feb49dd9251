// Package lvldp is your in-memory playground for classic dynamic
// programming — tabulated solvers with explicit tables and reconstructable
// optimal solutions.
//
// 🚀 What is lvldp?
//
//	A small, deterministic library that brings together three textbook
//	DP problems, each solved the honest bottom-up way:
//		• Fibonacci: linear tabulation, plus the exponential naive
//		  recursion kept as a measurable warm-up baseline
//		• Longest increasing subsequence (LIS): quadratic length table,
//		  predecessor table, and full back-pointer reconstruction
//		• 0-1 knapsack: the complete value table, not just the optimum,
//		  with item-set reconstruction by walking the table upward
//
// ✨ Why choose lvldp?
//
//   - Deterministic by contract – fixed tie-breaks, fixed scan orders,
//     bit-identical output for identical input
//   - Pure functions – no shared state, no I/O, no hidden mutability;
//     every call owns its tables and hands the result to you
//   - Explicit tables – the DP matrices are the product, so you can
//     inspect, test, and teach from them
//   - Honest errors – sentinel errors under a single per-package
//     ErrInvalidArgument root, matched with errors.Is
//
// Under the hood, everything is organized under three subpackages:
//
//	fibonacci/ — linear recurrence tabulation (uint64 and math/big paths)
//	lis/       — quadratic LIS with predecessor reconstruction
//	knapsack/  — 0-1 knapsack value-table tabulation + item recovery
//
// Quick taste:
//
//	seq := []int{10, 22, 9, 33, 21, 50, 41, 60, 80}
//	fmt.Println(lis.Find(seq)) // [10 22 33 50 60 80]
//
// Each package documents its exact boundary conventions (the knapsack
// capacity test is deliberately strict — see knapsack's doc.go) so that
// independent implementations can reproduce outputs byte for byte.
//
//	go get github.com/katalvlaran/lvldp
package lvldp
