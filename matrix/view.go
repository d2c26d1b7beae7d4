// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvmul/vector"
)

// ColumnView is a non-owning, lazy strided view of one column.
// Index k maps to base.data[col + k*base.cols]; nothing is copied until Gather.
type ColumnView[T vector.Numeric] struct {
	base *Matrix[T] // underlying storage owner (immutable)
	col  int        // column index in base
}

// ColumnView returns the lazy view of column j or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) ColumnView(j int) (ColumnView[T], error) {
	if j < 0 || j >= m.cols {
		return ColumnView[T]{}, errors.Wrapf(ErrOutOfRange, "%s(%d) on %d cols", ctxCol, j, m.cols)
	}

	return ColumnView[T]{base: m, col: j}, nil
}

// Len returns the number of elements in the column (== base rows).
func (v ColumnView[T]) Len() int {
	if v.base == nil {
		return 0
	}

	return v.base.rows
}

// At returns element k of the column or ErrOutOfRange.
// Complexity: O(1).
func (v ColumnView[T]) At(k int) (T, error) {
	if k < 0 || k >= v.Len() {
		var zero T
		return zero, errors.Wrapf(ErrOutOfRange, "ColumnView.At(%d)", k)
	}

	return v.base.data[v.col+k*v.base.cols], nil
}

// Gather materialises the column into an owned Vector (stride = base cols).
// Complexity: O(rows).
func (v ColumnView[T]) Gather() (vector.Vector[T], error) {
	if v.base == nil {
		return vector.Vector[T]{}, nil
	}

	return vector.Gather(v.base.data, v.col, v.base.cols, v.base.rows)
}
