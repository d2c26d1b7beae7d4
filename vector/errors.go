// SPDX-License-Identifier: MIT

// Package vector: sentinel error set.
// Every message is prefixed with "vector: ..." for grep-ability; callers match
// with errors.Is, context is attached at the detection site.

package vector

import "github.com/cockroachdb/errors"

var (
	// ErrLengthMismatch is returned by Dot when the operands differ in length.
	// Inside the multiplication engine it signals a slicing bug, never user input.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")
)
