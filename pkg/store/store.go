// Package store provides a small key-value persistence seam. A Store holds
// one JSON-serializable value under one key and can be backed by memory, a
// local file, SQLite or Postgres interchangeably.
package store

import "errors"

// ErrNotFound is returned by Load when nothing has been saved under the
// store's key yet. Callers are expected to fall back to a default value.
var ErrNotFound = errors.New("store: key not found")

// Store loads and saves a single value.
type Store[T any] interface {
	Load() (T, error)
	Save(T) error
}

// Memory is an in-process Store used by tests and ephemeral runs.
type Memory[T any] struct {
	value T
	saved bool
}

// NewMemory creates an empty in-memory store.
func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{}
}

// Load returns the last saved value, or ErrNotFound before the first Save.
func (m *Memory[T]) Load() (T, error) {
	if !m.saved {
		var zero T
		return zero, ErrNotFound
	}
	return m.value, nil
}

// Save keeps the value in memory.
func (m *Memory[T]) Save(v T) error {
	m.value = v
	m.saved = true
	return nil
}
