// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row/Col return errors instead of panicking.
//   - Keep matrices immutable so concurrent readers never need a lock.
//
// Complexity quicksheet:
//   - New: O(r*c) copy; At/Offset: O(1); Row: O(c); Col: O(r); Data: O(r*c).

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvmul/vector"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"      // ctor tag used in error wrappers
	ctxIdentity = "Identity" // ctor tag used in error wrappers
	ctxAt       = "At"       // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxCol      = "Col"      // method tag used in error wrappers
)

// Matrix is an immutable row-major matrix of T.
//   - rows, cols hold the extents (>= 0).
//   - data is a flat buffer of length rows*cols (offset = i*cols + j).
type Matrix[T vector.Numeric] struct {
	rows, cols int // extents
	data       []T // owned row-major storage, len == rows*cols
}

// New creates a rows×cols matrix from a flat row-major buffer.
// MAIN DESCRIPTION:
//   - Public constructor; the buffer length is a checked precondition.
//
// Implementation:
//   - Stage 1: validate rows>=0, cols>=0, rows*cols fits in int and len(data)==rows*cols.
//   - Stage 2: copy data into an owned buffer.
//
// Behavior highlights:
//   - A mismatched buffer is rejected, never truncated or padded.
//   - Zero extents are legal (empty products are well defined).
//
// Errors:
//   - ErrBadShape (wrapped with the offending extents).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T vector.Numeric](data []T, rows, cols int) (*Matrix[T], error) {
	if err := checkExtents(ctxNew, rows, cols); err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, errors.Wrapf(ErrBadShape, "%s: buffer has %d elements, want %d×%d=%d",
			ctxNew, len(data), rows, cols, rows*cols)
	}
	buf := make([]T, len(data)) // owned copy
	copy(buf, data)

	return &Matrix[T]{rows: rows, cols: cols, data: buf}, nil
}

// MustNew is New that panics on a shape violation.
// Intended for literals in tests and examples where a bad shape is a programmer error.
func MustNew[T vector.Numeric](data []T, rows, cols int) *Matrix[T] {
	m, err := New(data, rows, cols)
	if err != nil {
		panic(err)
	}

	return m
}

// Zeros returns a rows×cols matrix filled with the zero value of T.
// Complexity: O(r*c).
func Zeros[T vector.Numeric](rows, cols int) (*Matrix[T], error) {
	if err := checkExtents("Zeros", rows, cols); err != nil {
		return nil, err
	}

	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity[T vector.Numeric](n int) (*Matrix[T], error) {
	if err := checkExtents(ctxIdentity, n, n); err != nil {
		return nil, err
	}
	data := make([]T, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = T(1) // multiplicative identity on the diagonal
	}

	return &Matrix[T]{rows: n, cols: n, data: data}, nil
}

// checkExtents rejects negative extents and products that overflow int.
func checkExtents(op string, rows, cols int) error {
	if rows < 0 || cols < 0 {
		return errors.Wrapf(ErrBadShape, "%s: rows=%d cols=%d", op, rows, cols)
	}
	if rows != 0 && cols > math.MaxInt/rows {
		return errors.Wrapf(ErrBadShape, "%s: %d×%d overflows int", op, rows, cols)
	}

	return nil
}

// wrap adopts buf without copying; used by producers that own a fresh buffer.
func wrap[T vector.Numeric](buf []T, rows, cols int) *Matrix[T] {
	return &Matrix[T]{rows: rows, cols: cols, data: buf}
}

// FromBuffer adopts buf as the backing storage without copying.
// The caller hands over ownership and MUST NOT touch buf afterwards; the
// multiplication engine uses it to publish its output buffer.
// Errors: ErrBadShape as in New.
func FromBuffer[T vector.Numeric](buf []T, rows, cols int) (*Matrix[T], error) {
	if err := checkExtents("FromBuffer", rows, cols); err != nil {
		return nil, err
	}
	if len(buf) != rows*cols {
		return nil, errors.Wrapf(ErrBadShape, "FromBuffer: %d elements for %d×%d", len(buf), rows, cols)
	}

	return wrap(buf, rows, cols), nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// Len returns rows*cols, the number of cells.
func (m *Matrix[T]) Len() int { return len(m.data) }

// Offset returns the row-major offset of (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Offset(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.cols + col, nil
}

// At returns the element at (row, col) or ErrOutOfRange.
// Never panics on bad indices.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.Offset(row, col)
	if err != nil {
		var zero T
		return zero, errors.Wrapf(err, "%s(%d,%d)", ctxAt, row, col)
	}

	return m.data[off], nil
}

// Row returns an owned copy of row i: data[i*cols : (i+1)*cols].
// Errors: ErrOutOfRange.
// Complexity: O(cols).
func (m *Matrix[T]) Row(i int) (vector.Vector[T], error) {
	if i < 0 || i >= m.rows {
		return vector.Vector[T]{}, errors.Wrapf(ErrOutOfRange, "%s(%d) on %d rows", ctxRow, i, m.rows)
	}
	base := i * m.cols

	return vector.New(m.data[base : base+m.cols]), nil
}

// Col returns an owned copy of column j gathered with stride cols:
// data[j], data[j+cols], data[j+2*cols], ...
// Errors: ErrOutOfRange.
// Complexity: O(rows).
func (m *Matrix[T]) Col(j int) (vector.Vector[T], error) {
	view, err := m.ColumnView(j)
	if err != nil {
		return vector.Vector[T]{}, err
	}

	return view.Gather()
}

// Data returns a copy of the row-major buffer.
// Complexity: O(r*c).
func (m *Matrix[T]) Data() []T {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp
}

// Equal reports whether m and o have the same shape and elements.
// Two nil matrices are equal; a nil and a non-nil one are not.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}
