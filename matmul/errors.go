// SPDX-License-Identifier: MIT
// Package matmul: sentinel error set.
// Every failure of Multiply matches exactly one of these with errors.Is;
// cell-level failures additionally carry a *CellError.

package matmul

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvmul/matrix"
	"github.com/katalvlaran/lvmul/vector"
)

var (
	// ErrDimensionMismatch is returned when a.Cols() != b.Rows().
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrNilMatrix is returned when an operand is nil.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrComputation marks a kernel failure for one cell. The kernel's own
	// error (e.g. vector.ErrLengthMismatch) stays in the chain.
	ErrComputation = errors.New("matmul: computation failed")

	// ErrChannelClosed indicates a result was never delivered: the worker
	// died before sending, or the task could not be submitted.
	ErrChannelClosed = errors.New("matmul: result channel closed without a value")
)

// CellError attributes a failure to output cell (Row, Col). Kind is
// ErrComputation or ErrChannelClosed; Err is the underlying cause, nil when
// a worker died without reporting one.
type CellError struct {
	Row, Col int
	Kind     error
	Err      error
}

func (e *CellError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cell (%d,%d): %v", e.Row, e.Col, e.Kind)
	}

	return fmt.Sprintf("cell (%d,%d): %v: %v", e.Row, e.Col, e.Kind, e.Err)
}

// Is matches the failure kind, so errors.Is(err, ErrComputation) holds
// without unwrapping into the cause.
func (e *CellError) Is(target error) bool { return target == e.Kind }

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *CellError) Unwrap() error { return e.Err }

// computationError attributes a kernel error to cell (i, j). A length
// mismatch can only happen if shape validation was bypassed, so it is also
// flagged as an assertion failure.
func computationError(i, j int, err error) error {
	if errors.Is(err, vector.ErrLengthMismatch) {
		err = errors.WithAssertionFailure(err)
	}

	return &CellError{Row: i, Col: j, Kind: ErrComputation, Err: err}
}

// closedError reports a result that never arrived; cause may be nil.
func closedError(i, j int, cause error) error {
	if cause != nil {
		cause = errors.Wrap(cause, "submit")
	}

	return &CellError{Row: i, Col: j, Kind: ErrChannelClosed, Err: cause}
}
