package ports

// LockStore persists the lock artifact. The reconciliation core only ever
// sees in-memory text; reading and writing the backing file is owned here.
//
//go:generate mockgen -source=lock_store.go -destination=mocks/mock_lock_store.go -package=mocks
type LockStore interface {
	// Read returns the lock text. A missing file is an error
	// (domain.ErrMissingLock); callers decide whether that is fatal.
	Read(path string) (string, error)

	// Exists reports whether a lock artifact is present.
	Exists(path string) bool

	// Write persists the lock text with a provenance header, skipping the
	// write when the on-disk content is already identical. It reports
	// whether anything was written.
	Write(path, contents, header string) (bool, error)
}
