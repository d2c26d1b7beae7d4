// Package lvmul multiplies matrices in parallel on a fixed pool of
// long-lived workers, one dot-product task per output cell.
//
// 🚀 What is lvmul?
//
//	A small, typed engine that brings together:
//		• Vectors & the dot-product kernel (vector)
//		• Immutable row-major matrices, strided column views, reference product (matrix)
//		• A fixed worker pool with one private queue per worker (pool)
//		• The coordinator: validate → dispatch → collect (matmul)
//		• Concurrent named counters + Prometheus export (metrics)
//		• A toy "+OK" TCP responder (responder)
//
// ✨ Why lvmul?
//
//   - Deterministic – the parallel result equals the sequential one for any pool size
//   - Typed – any integer, float or complex element type via generics
//   - Observable – state hooks, slog logging, per-worker counters
//
// Layout:
//
//	vector/    Vector[T], Dot, strided Gather
//	matrix/    Matrix[T], ColumnView, MulSequential, gonum interop
//	pool/      Pool[T], Task[T], Policy, Shared
//	matmul/    Multiply, Multiplier[T], State, CellError
//	metrics/   LockMap, ShardedMap, AtomicMap, Collector
//	responder/ Server
//	config/    YAML + flags for cmd/lvmul
//
// Quick ASCII example:
//
//	  {1 2 3}   {1 2}     {22 28}
//	  {4 5 6} × {3 4}  =  {49 64}
//	            {5 6}
//
//	four cells, four tasks, one worker (fewer than 100 cells).
//
//	go get github.com/katalvlaran/lvmul/matmul
package lvmul
