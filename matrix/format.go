// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen    = "{"
	_fmtClose   = "}"
	_fmtRowSep  = ", " // between rows
	_fmtElemSep = " "  // between elements of a row
)

// Compile-time assertions for fmt conformance.
var (
	_ fmt.Stringer   = (*Matrix[int])(nil)
	_ fmt.GoStringer = (*Matrix[int])(nil)
)

// String renders the matrix in bracketed, row-grouped form.
// A 2×3 matrix renders as {1 2 3, 4 5 6}; a 3×2 one as {1 2, 3 4, 5 6}.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write each element with %v into a strings.Builder.
//
// Complexity: O(r*c).
func (m *Matrix[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	b.WriteString(_fmtOpen)
	for i = 0; i < m.rows; i++ { // iterate rows deterministically
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		base = i * m.cols
		for j = 0; j < m.cols; j++ { // iterate cols
			if j > 0 {
				b.WriteString(_fmtElemSep)
			}
			fmt.Fprintf(&b, "%v", m.data[base+j])
		}
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// GoString is the debug form used by %#v:
// Matrix { rows: 2, cols: 2, data: {22 28, 49 64} }.
func (m *Matrix[T]) GoString() string {
	if m == nil {
		return "Matrix(nil)"
	}

	return fmt.Sprintf("Matrix { rows: %d, cols: %d, data: %s }", m.rows, m.cols, m.String())
}
