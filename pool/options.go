// SPDX-License-Identifier: MIT

// Package pool: functional configuration.
//
// Design goals:
//   - Deterministic behavior: no hidden globals except the opt-in Shared pools.
//   - Safe by construction: option constructors panic only on nonsensical
//     values (programmer error), New returns errors for runtime input.

package pool

import (
	"io"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultQueueDepth is the buffer of each worker intake queue.
	// 0 makes Submit hand the task directly to an idle worker.
	DefaultQueueDepth = 16

	// workerCounterFmt names the per-worker task counter.
	workerCounterFmt = "call.thread.worker.%d"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicQueueDepthInvalid = "pool: WithQueueDepth: depth must be >= 0"
	panicLoggerNil         = "pool: WithLogger: logger must not be nil"
)

// Counter is the slice of a counter store the pool needs.
// metrics.Store implementations satisfy it.
type Counter interface {
	Inc(key string) error
}

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	queueDepth int          // per-queue buffer; DefaultQueueDepth
	logger     *slog.Logger // never nil after gatherOptions
	counters   Counter      // optional; nil disables per-worker counting
}

// WithQueueDepth sets the buffer of every intake queue.
// Panics when depth < 0.
func WithQueueDepth(depth int) Option {
	if depth < 0 {
		panic(panicQueueDepthInvalid)
	}

	return func(o *options) { o.queueDepth = depth }
}

// WithLogger routes worker lifecycle logs to l.
// Panics when l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}

// WithCounters increments "call.thread.worker.<i>" on c after every task
// worker i completes. A nil c disables counting.
func WithCounters(c Counter) Option {
	return func(o *options) { o.counters = c }
}

// discardLogger is the default: library code stays silent unless asked.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) options {
	o := options{
		queueDepth: DefaultQueueDepth,
		logger:     discardLogger(),
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
