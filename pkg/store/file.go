package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// File persists the value as an indented JSON file, one file per key in the
// config directory. This is the default backend.
type File[T any] struct {
	path string
}

// NewFile creates a file-backed store at the given path.
func NewFile[T any](path string) *File[T] {
	return &File[T]{path: path}
}

// Load reads and decodes the file. A missing file yields ErrNotFound;
// unreadable or corrupt content is reported as an error so the caller can
// substitute its default.
func (f *File[T]) Load() (T, error) {
	var v T
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return v, ErrNotFound
		}
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, err
	}
	return v, nil
}

// Save encodes the value and writes it, creating parent directories as
// needed.
func (f *File[T]) Save(v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.path, data, 0644)
}
