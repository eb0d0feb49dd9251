// Package knapsack: table type, value constraint, and sentinel error set.
// Every exported operation returns these sentinels (wrapped with context
// where useful) and tests match them via errors.Is. No exported entry
// point panics on user input.
package knapsack

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Value enumerates the numeric types a table can aggregate: any built-in
// integer or float. Summation and ordering are the only operations used.
type Value interface {
	constraints.Integer | constraints.Float
}

// Table is the complete bottom-up value table produced by Solve.
//
// Table[k][x] holds the best achievable total value using only items with
// index ≤ k under capacity budget x, where an item fits only if its weight
// is strictly below the remaining budget (see Solve). Row 0 and column 0
// are all-zero boundaries. The table is fully populated before Solve
// returns and never mutated by this package afterwards.
type Table[V Value] [][]V

// Rows returns the number of item rows, boundary row included.
func (t Table[V]) Rows() int { return len(t) }

// Cols returns the number of capacity columns (budgets 0..W-1).
func (t Table[V]) Cols() int {
	if len(t) == 0 {
		return 0
	}

	return len(t[0])
}

// At returns the cell value at row k, column x, or ErrOutOfRange when the
// index falls outside the table.
func (t Table[V]) At(k, x int) (V, error) {
	var zero V
	if k < 0 || k >= t.Rows() || x < 0 || x >= t.Cols() {
		return zero, fmt.Errorf("%w: cell (%d,%d) of %dx%d", ErrOutOfRange, k, x, t.Rows(), t.Cols())
	}

	return t[k][x], nil
}

// Best returns the bottom-right cell — the optimum over the full item list
// at full capacity. A degenerate table (no rows or no columns) yields the
// zero value.
func (t Table[V]) Best() V {
	var zero V
	if t.Rows() == 0 || t.Cols() == 0 {
		return zero
	}

	return t[t.Rows()-1][t.Cols()-1]
}

var (
	// ErrInvalidArgument is the root failure for every malformed input;
	// the finer sentinels below wrap it, so errors.Is(err, ErrInvalidArgument)
	// matches any validation error from this package.
	ErrInvalidArgument = errors.New("knapsack: invalid argument")

	// ErrLengthMismatch signals weights and values of different lengths.
	ErrLengthMismatch = fmt.Errorf("%w: weights and values differ in length", ErrInvalidArgument)

	// ErrNegativeCapacity signals a capacity below zero.
	ErrNegativeCapacity = fmt.Errorf("%w: negative capacity", ErrInvalidArgument)

	// ErrNegativeWeight signals an item weight below zero.
	ErrNegativeWeight = fmt.Errorf("%w: negative item weight", ErrInvalidArgument)

	// ErrNegativeValue signals an item value below zero.
	ErrNegativeValue = fmt.Errorf("%w: negative item value", ErrInvalidArgument)

	// ErrOutOfRange signals a cell index outside the table bounds.
	ErrOutOfRange = fmt.Errorf("%w: cell index out of range", ErrInvalidArgument)

	// ErrWeightsMismatch signals a weight list that cannot describe the
	// receiver table during reconstruction: wrong length, or an included
	// item that could not have fit its column.
	ErrWeightsMismatch = fmt.Errorf("%w: weights do not match table", ErrInvalidArgument)
)
