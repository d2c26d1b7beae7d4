// SPDX-License-Identifier: MIT

package pool

import (
	"sync/atomic"

	"github.com/katalvlaran/lvmul/vector"
)

// Kernel computes one cell from its row and column vectors.
// vector.Dot is the default.
type Kernel[T vector.Numeric] func(row, col vector.Vector[T]) (T, error)

// Result is the outcome of one Task: a value or an error, never both.
type Result[T vector.Numeric] struct {
	Value T
	Err   error
}

// Task is one unit of dispatched work: an output cell, the owned row and
// column vectors it needs, and a single-use result channel.
//   - Created and owned by the caller; handed to exactly one queue.
//   - The worker writes exactly one Result (or none if it dies) and closes Done.
type Task[T vector.Numeric] struct {
	Cell int // flattened cell index i*cols + j (also the output offset)
	Row  int // output row i
	Col  int // output column j

	row vector.Vector[T] // owned copy of the operand row
	col vector.Vector[T] // owned copy of the operand column

	out     chan Result[T] // capacity 1: the worker never blocks on delivery
	claimed atomic.Bool    // set on first Submit; enforces single use
}

// NewTask builds a task for cell (i, j) with a fresh capacity-1 result channel.
// Complexity: O(1).
func NewTask[T vector.Numeric](cell, i, j int, row, col vector.Vector[T]) *Task[T] {
	return &Task[T]{
		Cell: cell,
		Row:  i,
		Col:  j,
		row:  row,
		col:  col,
		out:  make(chan Result[T], 1),
	}
}

// Done returns the receive side of the result channel.
// It yields at most one Result and is then closed; a receive with ok == false
// and no prior value means the worker terminated before delivering.
func (t *Task[T]) Done() <-chan Result[T] { return t.out }
