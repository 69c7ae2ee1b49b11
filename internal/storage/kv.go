// Package storage persists the task collection. The collection lives as a
// single JSON document under one key in a local key-value store; two
// interchangeable backends provide that store, one file-backed and one
// SQLite-backed.
package storage

// TasksKey is the slot the full task collection is stored under.
const TasksKey = "tasks"

// KV is a synchronous local key-value store with single-slot semantics.
type KV interface {
	// Get returns the value stored under key. The second return value is
	// false when the slot has never been written.
	Get(key string) ([]byte, bool, error)

	// Put overwrites the slot under key.
	Put(key string, value []byte) error

	Close() error
}
