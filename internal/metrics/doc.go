// Package metrics provides lock-free counters for enrollauth observability.
//
// # Design
//
// Counters are stored in cache-line-padded uint64 slots and incremented
// atomically via [sync/atomic.AddUint64]. The write path is allocation-free.
//
// # Architecture boundaries
//
// This package owns metric storage and snapshot creation. The engine decides
// when to increment; consumers read [Snapshot] values.
//
// # What this package must NOT do
//
//   - Perform I/O or network calls.
//   - Import enrollauth or any sibling package.
//   - Expose global metric registries.
package metrics
