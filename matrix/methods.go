// SPDX-License-Identifier: MIT

// Package matrix provides the single-threaded reference operations used to
// cross-check the parallel engine: the product and the transpose.
package matrix

import "github.com/katalvlaran/lvmul/vector"

// Operation name constants for unified error wrapping.
const (
	opMulSequential = "MulSequential"
	opTranspose     = "Transpose"
)

// MulSequential performs the standard product a × b on the calling goroutine.
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Prepare): allocate the result buffer (zero value of T).
// Stage 3 (Execute): i-j-k triple loop over the flat buffers.
// Stage 4 (Finalize): adopt the buffer as the result Matrix.
// Complexity: O(r*n*c) time and O(r*c) memory.
func MulSequential[T vector.Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	// Stage 1: Validate inputs
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulSequential, err)
	}

	// Stage 2: Allocate result buffer
	aRows, aCols, bCols := a.rows, a.cols, b.cols
	out := make([]T, aRows*bCols)
	var (
		i, j, k    int // loop iterators
		rowOffsetA int
		sum, zero  T
	)
	// Stage 3: row-major i-j-k
	// a.data layout: i*aCols + k
	// b.data layout: k*bCols + j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		for j = 0; j < bCols; j++ {
			sum = zero // additive identity
			for k = 0; k < aCols; k++ {
				sum += a.data[rowOffsetA+k] * b.data[k*bCols+j]
			}
			out[i*bCols+j] = sum
		}
	}

	// Stage 4: Return result
	return wrap(out, aRows, bCols), nil
}

// Transpose returns a new Matrix with rows and columns swapped.
// Complexity: O(r*c).
func Transpose[T vector.Numeric](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := make([]T, len(m.data))
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			out[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}

	return wrap(out, m.cols, m.rows), nil
}
