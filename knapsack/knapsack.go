package knapsack

import "fmt"

// Solve builds the complete 0/1 knapsack value table for the given item
// list and capacity.
//
// Inputs:
//   - capacity — number of capacity columns W; budgets run 0..W-1.
//   - weights  — item weights; index 0 is a boundary placeholder that is
//     never selected (keep it 0), real items start at index 1.
//   - values   — item values, indexed like weights.
//
// Algorithm outline:
//  1. Validate everything up front; no table escapes a malformed call.
//  2. Allocate n×W zeroed cells; row 0 and column 0 stay zero (no items
//     or no budget means no value).
//  3. Fill row k from row k-1: each cell keeps the better of excluding
//     item k and including it.
//
// Capacity convention: item k is admitted at column x only when
// weights[k] < x, strictly. An item whose weight equals the remaining
// budget does not fit under this rule, although textbook formulations
// usually admit it (<=); Best therefore reports the optimum over subsets
// of total weight at most capacity-2. The stricter boundary is kept for
// compatibility with existing outputs. Callers wanting the usual
// inclusive optimum for a weight budget B can call Solve with capacity
// B+2, whose Best covers exactly the subsets of total weight <= B.
//
// Zero capacity and an empty item list are both valid and produce a
// degenerate all-zero table.
//
// Complexity: O(n·W) time, O(n·W) memory.
func Solve[V Value](capacity int, weights []int, values []V) (Table[V], error) {
	// 1) Validate-first: reject malformed input before any allocation.
	if err := validate(capacity, weights, values); err != nil {
		return nil, err
	}

	// 2) Allocate the full table; Go zeroes every cell, which is exactly
	//    the boundary row/column contents.
	n := len(weights)
	table := make(Table[V], n)
	for k := range table {
		table[k] = make([]V, capacity)
	}

	// 3) Fill row by row; row k reads only row k-1.
	for k := 1; k < n; k++ {
		w, v := weights[k], values[k]
		for x := 1; x < capacity; x++ {
			best := table[k-1][x] // exclude item k
			if w < x {            // strict fit: an exact fill is out
				if withItem := table[k-1][x-w] + v; withItem > best {
					best = withItem
				}
			}
			table[k][x] = best
		}
	}

	return table, nil
}

// Items reconstructs one optimal item subset from the receiver table by
// walking it bottom-up: whenever a cell differs from the cell directly
// above, that row's item was included and the budget shrinks by its
// weight.
//
// weights must be the list the table was solved with; Items revalidates
// it (ErrWeightsMismatch, ErrNegativeWeight) because the table does not
// retain its inputs. The returned indices are ascending. A degenerate
// table yields an empty, non-nil slice.
//
// Complexity: O(n) time, O(n) memory for the result.
func (t Table[V]) Items(weights []int) ([]int, error) {
	// 1) The weight list must line up with the table rows.
	if len(weights) != t.Rows() {
		return nil, fmt.Errorf("%w: %d weights vs %d rows", ErrWeightsMismatch, len(weights), t.Rows())
	}
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: item %d", ErrNegativeWeight, i)
		}
	}

	taken := make([]int, 0)
	if t.Rows() == 0 || t.Cols() == 0 {
		return taken, nil
	}

	// 2) Walk from the bottom-right cell toward the boundary row.
	x := t.Cols() - 1
	for k := t.Rows() - 1; k >= 1; k-- {
		if t[k][x] == t[k-1][x] {
			continue // the optimum here does not need item k
		}
		if weights[k] >= x {
			// The cell claims item k was included, yet the weight cannot
			// pass the strict fit test for this column.
			return nil, fmt.Errorf("%w: item %d at column %d", ErrWeightsMismatch, k, x)
		}
		taken = append(taken, k)
		x -= weights[k]
	}

	// 3) The walk visits items last-to-first; restore ascending order.
	for left, right := 0, len(taken)-1; left < right; left, right = left+1, right-1 {
		taken[left], taken[right] = taken[right], taken[left]
	}

	return taken, nil
}

// validate applies the shared argument contract: non-negative capacity,
// aligned lists, non-negative weights and values.
func validate[V Value](capacity int, weights []int, values []V) error {
	if capacity < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	if len(weights) != len(values) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(weights), len(values))
	}
	for i, w := range weights {
		if w < 0 {
			return fmt.Errorf("%w: item %d", ErrNegativeWeight, i)
		}
	}
	for i, v := range values {
		if v < 0 {
			return fmt.Errorf("%w: item %d", ErrNegativeValue, i)
		}
	}

	return nil
}
