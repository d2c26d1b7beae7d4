// SPDX-License-Identifier: MIT

// Package metrics provides concurrent named counters: the bookkeeping the
// pool and the multiplication engine report into ("call.thread.worker.<i>",
// "matmul.calls", ...).
//
// Three interchangeable Store implementations trade flexibility for
// contention:
//
//	LockMap     one sync.Mutex around a map; any key, simplest.
//	ShardedMap  concurrent-map shards picked by xxhash; any key.
//	AtomicMap   fixed key set chosen at construction, one atomic.Int64 per
//	            key; no locks, unknown keys are rejected with ErrUnknownKey.
//
// Render prints a snapshot as sorted "key: value" lines, and Collector exposes
// a snapshot to Prometheus as gauges.
package metrics
