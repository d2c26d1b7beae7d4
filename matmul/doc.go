// SPDX-License-Identifier: MIT

// Package matmul multiplies matrices by fanning one dot-product task per
// output cell out to a worker pool and collecting the results in creation
// order.
//
// 🚀 Lifecycle of one call:
//
//	ValidatingShapes ─┬─▶ Dispatching ──▶ Collecting ──▶ Succeeded
//	                  └──────────────┴──────────────┴──▶ Failed
//
//   - ValidatingShapes: a.Cols() must equal b.Rows(); nothing is dispatched
//     otherwise.
//   - Dispatching: cells (i, j) are enumerated row-major. Task (i, j) gets the
//     row i of a and the gathered column j of b and goes to queue
//     (i*b.Cols() + j) mod k.
//   - Collecting: result channels are read in creation order and written to
//     the output buffer at offset i*b.Cols() + j. The first error wins; the
//     remaining channels are drained and discarded before returning.
//
// ✨ Entry points:
//
//	c, err := matmul.Multiply(a, b)          // per-call pool, sized by DefaultPolicy
//
//	m := matmul.New[int](matmul.WithSharedPool())
//	c, err := m.Multiply(a, b)               // process-wide pool.Shared[int]()
//
//	p, _ := pool.New[int](8)
//	m := matmul.NewWithPool(p)               // caller-owned pool
//
// The result is equal, element for element, to matrix.MulSequential for any
// pool size; the worker count only affects throughput.
package matmul
