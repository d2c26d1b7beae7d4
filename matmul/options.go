// SPDX-License-Identifier: MIT

package matmul

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvmul/pool"
)

// Counter keys maintained when WithCounters is set.
const (
	CounterCalls    = "matmul.calls"
	CounterCells    = "matmul.cells"
	CounterFailures = "matmul.failures"
)

const (
	panicPolicyInvalid = "matmul: WithPolicy: invalid policy"
	panicLoggerNil     = "matmul: WithLogger: logger must not be nil"
)

// Option configures a Multiplier.
type Option func(*options)

type options struct {
	policy   pool.Policy
	shared   bool
	logger   *slog.Logger
	counters pool.Counter
	observer Observer
}

// WithPolicy replaces pool.DefaultPolicy. Panics when p.Validate fails.
func WithPolicy(p pool.Policy) Option {
	if err := p.Validate(); err != nil {
		panic(panicPolicyInvalid + ": " + err.Error())
	}

	return func(o *options) { o.policy = p }
}

// WithSharedPool runs every call on pool.Shared[T]() instead of a per-call
// pool. Ignored by NewWithPool.
func WithSharedPool() Option {
	return func(o *options) { o.shared = true }
}

// WithLogger routes state transitions (debug) and failures (warn) to l.
// Per-call pools inherit it.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}

// WithCounters maintains CounterCalls, CounterCells and CounterFailures on c.
// Per-call pools also count per-worker tasks on it.
func WithCounters(c pool.Counter) Option {
	return func(o *options) { o.counters = c }
}

// WithObserver registers fn for every state entry.
func WithObserver(fn Observer) Option {
	return func(o *options) { o.observer = fn }
}

func gatherOptions(user ...Option) options {
	o := options{
		policy: pool.DefaultPolicy,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
