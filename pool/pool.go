// SPDX-License-Identifier: MIT

package pool

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvmul/vector"
)

// Pool is a fixed set of long-lived workers, each bound to a private intake
// queue. Workers are spawned at creation and persist until Close.
type Pool[T vector.Numeric] struct {
	queues []chan *Task[T] // queues[i] is consumed only by worker i
	kernel Kernel[T]
	opts   options

	mu     sync.RWMutex // Submit holds R while sending; Close holds W while closing queues
	closed bool

	closeOnce sync.Once
	wg        sync.WaitGroup // live worker goroutines
}

// New creates a pool of `workers` goroutines running vector.Dot.
// Errors: ErrBadWorkers when workers < 1.
func New[T vector.Numeric](workers int, opts ...Option) (*Pool[T], error) {
	return NewWithKernel[T](workers, vector.Dot[T], opts...)
}

// NewWithKernel creates a pool whose workers run kernel for every task.
// Implementation:
//   - Stage 1: validate workers >= 1 and kernel != nil.
//   - Stage 2: allocate one buffered queue per worker.
//   - Stage 3: spawn one goroutine per queue.
//
// Complexity: O(workers).
func NewWithKernel[T vector.Numeric](workers int, kernel Kernel[T], opts ...Option) (*Pool[T], error) {
	if workers < 1 {
		return nil, errors.Wrapf(ErrBadWorkers, "got %d", workers)
	}
	if kernel == nil {
		return nil, errors.New("pool: nil kernel")
	}
	o := gatherOptions(opts...)

	p := &Pool[T]{
		queues: make([]chan *Task[T], workers),
		kernel: kernel,
		opts:   o,
	}
	for i := range p.queues {
		p.queues[i] = make(chan *Task[T], o.queueDepth)
	}
	for i := range p.queues {
		p.spawn(i)
	}
	o.logger.Debug("pool started", slog.Int("workers", workers), slog.Int("queue_depth", o.queueDepth))

	return p, nil
}

// Workers returns the number of workers (== number of queues).
func (p *Pool[T]) Workers() int { return len(p.queues) }

// Closed reports whether Close has been called.
func (p *Pool[T]) Closed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.closed
}

// Submit routes task to queue q. It blocks while that queue is full.
// Errors:
//   - ErrNilTask, ErrTaskReused (programmer errors; task untouched).
//   - ErrBadQueue when q is outside [0, Workers()).
//   - ErrPoolClosed after Close.
func (p *Pool[T]) Submit(q int, task *Task[T]) error {
	if task == nil {
		return ErrNilTask
	}
	if q < 0 || q >= len(p.queues) {
		return errors.Wrapf(ErrBadQueue, "queue %d of %d", q, len(p.queues))
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}
	if !task.claimed.CompareAndSwap(false, true) {
		return errors.Wrapf(ErrTaskReused, "cell %d", task.Cell)
	}
	p.queues[q] <- task // workers keep draining, so this cannot block Close forever

	return nil
}

// Close stops accepting tasks, lets every worker drain its queue and waits
// for all workers to exit. Safe to call multiple times.
func (p *Pool[T]) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		for _, q := range p.queues {
			close(q) // signal to terminate after draining
		}
		p.mu.Unlock()
		p.wg.Wait()
		p.opts.logger.Debug("pool closed", slog.Int("workers", len(p.queues)))
	})
}

// spawn starts the worker bound to queue id.
func (p *Pool[T]) spawn(id int) {
	p.wg.Add(1)
	go p.work(id)
}

// work is the worker loop: receive, execute, deliver, until the queue closes.
// If the goroutine exits any other way (runtime.Goexit inside the kernel), a
// replacement is spawned on the same queue before this one is accounted done.
func (p *Pool[T]) work(id int) {
	exited := false
	defer func() {
		if !exited {
			p.opts.logger.Warn("worker terminated abnormally; respawning", slog.Int("worker", id))
			p.spawn(id) // Add before Done keeps Close's Wait from returning early
		}
		p.wg.Done()
	}()

	for task := range p.queues[id] {
		p.run(id, task)
	}
	exited = true
}

// run executes one task and delivers exactly one Result, then closes the
// channel. A panic becomes ErrWorkerPanic; on Goexit the channel is closed
// with no value.
func (p *Pool[T]) run(id int, task *Task[T]) {
	defer close(task.out)
	defer func() {
		if r := recover(); r != nil {
			task.out <- Result[T]{Err: errors.Wrapf(ErrWorkerPanic,
				"worker %d, cell (%d,%d): %v", id, task.Row, task.Col, r)}
			p.opts.logger.Error("kernel panic recovered",
				slog.Int("worker", id), slog.Int("row", task.Row), slog.Int("col", task.Col))
		}
	}()

	v, err := p.kernel(task.row, task.col)
	task.out <- Result[T]{Value: v, Err: err}
	p.count(id)
}

// count bumps the per-worker task counter when one is configured.
func (p *Pool[T]) count(id int) {
	if p.opts.counters == nil {
		return
	}
	if err := p.opts.counters.Inc(fmt.Sprintf(workerCounterFmt, id)); err != nil {
		p.opts.logger.Debug("worker counter", slog.Int("worker", id), slog.Any("error", err))
	}
}
