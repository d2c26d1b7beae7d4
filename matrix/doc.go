// SPDX-License-Identifier: MIT

// Package matrix provides the immutable, row-major Matrix[T] used as operand
// and result of the parallel multiplication engine.
//
// What & Why:
//
//	A Matrix is a flat buffer plus explicit extents. Element (i, j) lives at
//	offset i*cols + j. Matrices are never mutated after construction: the
//	engine produces a fresh Matrix, so operands can be read concurrently by
//	any number of goroutines without locks.
//
// The package provides:
//
//   - New / MustNew / Zeros / Identity constructors with strict shape checks.
//   - O(1) element access (At, Offset) and owned Row/Col vectors for tasks.
//   - ColumnView: lazy strided column access, no transpose materialised.
//   - String / GoString rendering: {1 2, 3 4} and
//     Matrix { rows: 2, cols: 2, data: {1 2, 3 4} }.
//   - MulSequential: the single-threaded reference product.
//   - ToGonum / FromGonum for float64 interop with gonum.org/v1/gonum/mat.
//
// Complexity:
//
//	Rows/Cols/At: O(1). New/Data/Row/Col: O(copied elements).
//	MulSequential: O(r*n*c) time, O(r*c) memory.
package matrix
