// Package store implements the persistence layer of the contract desk.
//
// Both collections (contracts and chat sessions) live in single JSON
// documents on disk. Every mutating operation loads the whole document,
// applies the change in memory, and writes the whole document back; a
// per-store mutex serializes that read-modify-write cycle so concurrent
// mutations cannot silently lose updates. Writes go through a temp file
// and an atomic rename so a crash mid-write never truncates the
// collection.
//
// Error semantics:
//   - A missing document is not an error: it is created with its default
//     contents (empty collection) on first access.
//   - A document that exists but cannot be read or decoded is a
//     persistence failure and is propagated to the caller; it is never
//     silently treated as "no data".
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a requested record or session does not
// exist in its collection.
var ErrNotFound = errors.New("not found")

// ValidationError reports required contract fields that were absent or
// empty at creation time.
type ValidationError struct {
	Missing []string
}

// Error lists the missing fields so clients get a field-level hint.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %v", e.Missing)
}

// loadDocument reads the JSON document at path into out. If the file
// does not exist it is created holding def (the encoded default
// contents) and out is left untouched, so callers start from their
// zero-value collection.
func loadDocument(path string, out any, def []byte) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return writeDocument(path, def)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// saveDocument marshals v and atomically replaces the document at path.
func saveDocument(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return writeDocument(path, b)
}

// writeDocument writes b to path via a temp file in the same directory
// followed by a rename, so readers never observe a partial document.
func writeDocument(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
