// SPDX-License-Identifier: MIT

package matmul

import (
	"log/slog"

	"github.com/katalvlaran/lvmul/matrix"
	"github.com/katalvlaran/lvmul/pool"
	"github.com/katalvlaran/lvmul/vector"
)

// Multiplier is a reusable parallel product engine for element type T.
// It is safe for concurrent use when its pool is.
type Multiplier[T vector.Numeric] struct {
	pool *pool.Pool[T] // caller-owned; nil means per-call or shared
	opts options
}

// New returns a Multiplier that creates a pool per call (or uses
// pool.Shared[T]() with WithSharedPool).
func New[T vector.Numeric](opts ...Option) *Multiplier[T] {
	return &Multiplier[T]{opts: gatherOptions(opts...)}
}

// NewWithPool returns a Multiplier that dispatches onto p. The caller keeps
// ownership of p and closes it. Panics when p is nil.
func NewWithPool[T vector.Numeric](p *pool.Pool[T], opts ...Option) *Multiplier[T] {
	if p == nil {
		panic("matmul: NewWithPool: nil pool")
	}

	return &Multiplier[T]{pool: p, opts: gatherOptions(opts...)}
}

// Multiply computes a × b with a per-call pool sized by pool.DefaultPolicy.
func Multiply[T vector.Numeric](a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return New[T]().Multiply(a, b)
}

// Multiply computes a × b.
// Implementation:
//   - Stage 1 (ValidatingShapes): nil and a.Cols() == b.Rows() checks.
//   - Stage 2 (Dispatching): one task per cell, routed to cell mod k.
//   - Stage 3 (Collecting): read channels in creation order into the output.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (nothing dispatched).
//   - *CellError whose Kind is ErrComputation or ErrChannelClosed.
//
// Complexity: O(r·n·c) work over k workers; O(r·c + c·n) extra space.
func (m *Multiplier[T]) Multiply(a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	m.count(CounterCalls)

	m.enter(ValidatingShapes)
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, m.fail(err)
	}
	rows, cols := a.Rows(), b.Cols()
	cells := rows * cols
	out := make([]T, cells)
	if cells == 0 {
		m.enter(Succeeded)

		return matrix.FromBuffer(out, rows, cols)
	}

	p, release, err := m.acquire(cells)
	if err != nil {
		return nil, m.fail(err)
	}
	defer release()
	k := min(m.opts.policy.Workers(cells), p.Workers())

	m.enter(Dispatching)
	tasks, err := m.dispatch(p, k, a, b)
	if err != nil {
		drain(tasks)

		return nil, m.fail(err)
	}

	m.enter(Collecting)
	for idx, t := range tasks {
		res, ok := <-t.Done()
		switch {
		case !ok:
			err = closedError(t.Row, t.Col, nil)
		case res.Err != nil:
			err = computationError(t.Row, t.Col, res.Err)
		default:
			out[t.Cell] = res.Value

			continue
		}
		drain(tasks[idx+1:])

		return nil, m.fail(err)
	}

	m.enter(Succeeded)

	return matrix.FromBuffer(out, rows, cols)
}

// dispatch submits every cell row-major and returns the tasks in creation
// order. On a submit failure it returns the tasks already submitted.
func (m *Multiplier[T]) dispatch(p *pool.Pool[T], k int, a, b *matrix.Matrix[T]) ([]*pool.Task[T], error) {
	rows, cols := a.Rows(), b.Cols()

	columns := make([]vector.Vector[T], cols) // gathered once; vectors are immutable
	for j := range columns {
		col, err := b.Col(j)
		if err != nil {
			return nil, err
		}
		columns[j] = col
	}

	tasks := make([]*pool.Task[T], 0, rows*cols)
	for i := 0; i < rows; i++ {
		row, err := a.Row(i)
		if err != nil {
			return tasks, err
		}
		for j := 0; j < cols; j++ {
			cell := i*cols + j
			task := pool.NewTask(cell, i, j, row, columns[j])
			if err = p.Submit(cell%k, task); err != nil {
				return tasks, closedError(i, j, err)
			}
			tasks = append(tasks, task)
			m.count(CounterCells)
		}
	}

	return tasks, nil
}

// acquire picks the pool for one call and the func that releases it.
func (m *Multiplier[T]) acquire(cells int) (*pool.Pool[T], func(), error) {
	switch {
	case m.pool != nil:
		return m.pool, func() {}, nil
	case m.opts.shared:
		return pool.Shared[T](), func() {}, nil
	}
	p, err := pool.New[T](m.opts.policy.Workers(cells),
		pool.WithLogger(m.opts.logger), pool.WithCounters(m.opts.counters))
	if err != nil {
		return nil, nil, err
	}

	return p, p.Close, nil
}

// drain waits out every remaining task and discards its result, so no
// worker is still computing for this call once Multiply returns.
func drain[T vector.Numeric](tasks []*pool.Task[T]) {
	for _, t := range tasks {
		for range t.Done() {
		}
	}
}

func (m *Multiplier[T]) enter(s State) {
	m.opts.logger.Debug("matmul state", slog.String("state", s.String()))
	if m.opts.observer != nil {
		m.opts.observer(s)
	}
}

func (m *Multiplier[T]) fail(err error) error {
	m.opts.logger.Warn("matmul failed", slog.Any("error", err))
	m.count(CounterFailures)
	m.enter(Failed)

	return err
}

func (m *Multiplier[T]) count(key string) {
	if m.opts.counters == nil {
		return
	}
	if err := m.opts.counters.Inc(key); err != nil {
		m.opts.logger.Debug("matmul counter", slog.String("key", key), slog.Any("error", err))
	}
}
