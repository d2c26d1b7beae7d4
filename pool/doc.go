// SPDX-License-Identifier: MIT

// Package pool provides a fixed-size, long-lived worker pool that executes
// dot-product tasks for the parallel multiplication engine.
//
// 🚀 Shape of the pool:
//
//	A Pool owns k workers and k intake queues, one private queue per worker.
//	Callers route every Task to a queue of their choosing (the coordinator
//	uses cell index mod k), so there is no shared work queue to contend on.
//
//	          Submit(q, task)
//	caller ───────────────────▶ queue[q] ──▶ worker q ──▶ task.Done() (cap 1)
//
// ✨ Guarantees:
//   - FIFO per queue; no ordering across queues.
//   - Exactly one Result per Task, then the task channel is closed.
//   - A kernel panic is recovered and delivered as ErrWorkerPanic.
//   - A worker goroutine that dies abnormally (runtime.Goexit in a kernel)
//     leaves its task channel closed without a value and is replaced on the
//     same queue, so the pool stays serviceable.
//   - Workers share no mutable state; the only object visible to two
//     goroutines is a task's single-use result channel.
//
// ⚙️ Usage:
//
//	p, err := pool.New[int](4, pool.WithQueueDepth(64))
//	if err != nil { ... }
//	defer p.Close()
//
//	task := pool.NewTask(cell, i, j, row, col)
//	if err := p.Submit(cell%p.Workers(), task); err != nil { ... }
//	res, ok := <-task.Done()
//
// Sizing: Policy maps an output-cell count to a worker count (DefaultPolicy:
// <100 → 1, <1000 → 2, otherwise 4). Shared returns a process-wide pool per
// element type, created once and closed by CloseShared.
package pool
