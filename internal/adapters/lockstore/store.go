// Package lockstore persists the lock artifact on the filesystem.
package lockstore

import (
	"errors"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.LockStore on the local filesystem.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Read returns the lock text, or domain.ErrMissingLock when the artifact
// does not exist.
func (s *Store) Read(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is resolved from the project root
	if os.IsNotExist(err) {
		return "", errors.Join(domain.ErrMissingLock, zerr.With(zerr.Wrap(err, "failed to read lock file"), "path", path))
	}
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read lock file"), "path", path)
	}
	return string(data), nil
}

// Exists reports whether a lock artifact is present.
func (s *Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Write persists the lock text, prepending the provenance header. The
// write is skipped when the on-disk bytes already match, so repeated
// freezes leave the file's mtime alone and tools watching it stay quiet.
func (s *Store) Write(path, contents, header string) (bool, error) {
	payload := contents
	if header != "" {
		payload = header + "\n" + contents
	}

	if existing, err := os.ReadFile(path); err == nil { //nolint:gosec // path is resolved from the project root
		if xxhash.Sum64(existing) == xxhash.Sum64String(payload) {
			return false, nil
		}
	}

	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil { //nolint:gosec // lock file is world-readable
		return false, zerr.With(zerr.Wrap(err, "failed to write lock file"), "path", path)
	}
	return true, nil
}
