// Package knapsack solves the 0/1 knapsack problem by bottom-up dynamic
// programming, returning the complete value table rather than a single number.
//
// 🚀 What is 0/1 knapsack?
//
//	Given n items with integer weights and numeric values plus a capacity
//	budget, pick a subset (each item used at most once) that maximizes the
//	total value carried within the budget.  The tabulated answer powers:
//	  • Resource allocation & budgeting
//	  • Cargo loading and subset-selection problems
//	  • Cutting-stock style planning
//	  • Teaching material for DP table construction
//
// ✨ Key features:
//   - full n×W value table — every subproblem answer stays inspectable
//   - generic over value types (any built-in integer or float)
//   - Items reconstructs one optimal item subset straight from the table
//   - strict validation with sentinel errors (errors.Is friendly)
//
// ⚠️ Capacity convention:
//
//	A cell at column x admits an item only when its weight is strictly
//	below x, so an item that exactly fills the remaining budget is treated
//	as not fitting.  Textbook formulations usually admit it (≤).  The
//	table is internally consistent under the stricter rule; read Solve's
//	documentation before comparing results against other solvers.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvldp/knapsack"
//
//	weights := []int{0, 3, 9, 3, 6, 5} // index 0 is the boundary item
//	values := []int{0, 40, 45, 72, 77, 16}
//
//	table, err := knapsack.Solve(15, weights, values)
//	if err != nil {
//	  // handle ErrInvalidArgument (or a finer sentinel)
//	}
//	fmt.Println(table.Best())         // 189
//	picked, _ := table.Items(weights) // [1 3 4]
//
// Performance:
//
//   - Time:   O(n·W)
//   - Memory: O(n·W)
//
// See examples in example_test.go.
package knapsack
