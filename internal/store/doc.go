// Package store provides SQLite-backed storage for test result runs.
//
// A run is one recorded results file, identified by a UUIDv7. Results are
// keyed by (run, query id, tags), so writing the same result twice is a
// no-op.
//
// # Ordering
//
//   - Runs are ordered by seq, assigned on creation, never by timestamps.
//   - Results within a run keep the order they were written in (seq ASC).
//
// # Filtering
//
// ReadResults narrows rows by suite in SQL and decides membership with
// selection.Matches, so stored results are selected exactly as results
// files are.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
