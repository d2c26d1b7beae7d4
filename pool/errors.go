// SPDX-License-Identifier: MIT
// Package pool: sentinel error set.
// Messages are prefixed with "pool: ..."; match with errors.Is.

package pool

import "github.com/cockroachdb/errors"

var (
	// ErrBadWorkers is returned when a pool is requested with fewer than one worker.
	ErrBadWorkers = errors.New("pool: worker count must be >= 1")

	// ErrBadQueue indicates a Submit to a queue index outside [0, Workers()).
	ErrBadQueue = errors.New("pool: queue index out of range")

	// ErrPoolClosed is returned by Submit after Close.
	ErrPoolClosed = errors.New("pool: closed")

	// ErrTaskReused indicates a Task was submitted more than once.
	// Result channels are single-use; a second delivery is a programmer error.
	ErrTaskReused = errors.New("pool: task already submitted")

	// ErrNilTask indicates a nil *Task was submitted.
	ErrNilTask = errors.New("pool: nil task")

	// ErrWorkerPanic is delivered as the task result when the kernel panics.
	ErrWorkerPanic = errors.New("pool: kernel panicked")

	// ErrBadPolicy is returned by Policy.Validate for inconsistent thresholds.
	ErrBadPolicy = errors.New("pool: invalid sizing policy")
)
