// SPDX-License-Identifier: MIT

// Package vector - owned Vector storage and the dot-product kernel.
//
// Purpose:
//   - Give every task its own copy of the row/column it works on (no sharing).
//   - Keep the numeric capability explicit through the Numeric constraint.

package vector

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Numeric is the capability set required from an element type: additive
// identity (zero value), +, +=, * and copy semantics.
type Numeric interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Vector is an immutable, owned sequence of T.
// The zero value is an empty vector.
type Vector[T Numeric] struct {
	data []T // owned; never handed out for writing
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Vector[int]{}

// New returns a Vector holding a copy of data.
// Complexity: O(n).
func New[T Numeric](data []T) Vector[T] {
	cp := make([]T, len(data)) // owned copy; caller keeps its slice
	copy(cp, data)

	return Vector[T]{data: cp}
}

// own wraps data without copying. The caller must hand over ownership.
func own[T Numeric](data []T) Vector[T] { return Vector[T]{data: data} }

// Gather builds a Vector from n elements of src starting at offset and
// advancing by stride (strided column extraction without a transpose).
// Implementation:
//   - Stage 1: validate offset/stride/n against len(src).
//   - Stage 2: single pass copy into a freshly owned buffer.
//
// Errors: ErrOutOfRange when the last requested index falls outside src.
// Complexity: O(n) time, O(n) space.
func Gather[T Numeric](src []T, offset, stride, n int) (Vector[T], error) {
	if n == 0 {
		return Vector[T]{}, nil
	}
	last := offset + (n-1)*stride
	if offset < 0 || stride <= 0 || n < 0 || last >= len(src) {
		return Vector[T]{}, errors.Wrapf(ErrOutOfRange,
			"Gather(offset=%d, stride=%d, n=%d) over %d elements", offset, stride, n, len(src))
	}
	out := make([]T, n)
	var i, idx int
	for i, idx = 0, offset; i < n; i, idx = i+1, idx+stride {
		out[i] = src[idx]
	}

	return own(out), nil
}

// Len returns the number of elements.
// Complexity: O(1).
func (v Vector[T]) Len() int { return len(v.data) }

// At returns the element at i or ErrOutOfRange.
// Complexity: O(1).
func (v Vector[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(v.data) {
		return zero, errors.Wrapf(ErrOutOfRange, "At(%d) on length %d", i, len(v.data))
	}

	return v.data[i], nil
}

// Slice returns a copy of the elements.
// Complexity: O(n).
func (v Vector[T]) Slice() []T {
	cp := make([]T, len(v.data))
	copy(cp, v.data)

	return cp
}

// Equal reports whether v and w hold the same elements in the same order.
func (v Vector[T]) Equal(w Vector[T]) bool {
	if len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != w.data[i] {
			return false
		}
	}

	return true
}

// String renders the vector as "[a b c]".
func (v Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteByte(']')

	return b.String()
}

// Dot returns the inner product Σ a[i]*b[i].
// MAIN DESCRIPTION:
//   - Unit of work executed by pool workers for one output cell.
//
// Implementation:
//   - Stage 1: reject operands of different length.
//   - Stage 2: accumulate from the zero value of T in index order.
//
// Errors:
//   - ErrLengthMismatch (wrapped with both lengths).
//
// Determinism:
//   - Fixed left-to-right accumulation; no side effects.
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot[T Numeric](a, b Vector[T]) (T, error) {
	return DotSlices(a.data, b.data)
}

// DotSlices is Dot over raw slices, for callers that already own the data.
// Complexity: O(n).
func DotSlices[T Numeric](a, b []T) (T, error) {
	var sum T // additive identity
	if len(a) != len(b) {
		return sum, errors.Wrapf(ErrLengthMismatch, "got %d and %d", len(a), len(b))
	}
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum, nil
}
