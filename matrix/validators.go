// SPDX-License-Identifier: MIT
// Package matrix: centralized validators.
//
// Purpose:
//   - Single source of truth for operand checks shared by the reference
//     product here and the parallel coordinator in package matmul.
//   - Return sentinel errors wrapped with the validator tag.

package matrix

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvmul/vector"
)

// validatorErrorf wraps an error with the validator name.
func validatorErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// ValidateNotNil - Ensures m is non-nil.
//
// Errors: ErrNilMatrix.
// Complexity: O(1).
func ValidateNotNil[T vector.Numeric](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMulCompatible - Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (with both shapes in the message).
// Complexity: O(1).
func ValidateMulCompatible[T vector.Numeric](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.cols != b.rows {
		return errors.Wrapf(ErrDimensionMismatch, "ValidateMulCompatible: %d×%d × %d×%d",
			a.rows, a.cols, b.rows, b.cols)
	}

	return nil
}
