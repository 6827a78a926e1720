package ports

import (
	"context"

	"go.trai.ch/denv/internal/core/domain"
)

// Venv manages the lifecycle of a project's virtualenv.
//
//go:generate mockgen -source=venv.go -destination=mocks/mock_venv.go -package=mocks
type Venv interface {
	// Resolve computes the venv directory for a project and interpreter,
	// honoring an activated $VIRTUAL_ENV and the outside-project setting.
	Resolve(project string, python domain.Interpreter, settings domain.Settings) (string, error)

	// Exists reports whether the venv directory is present.
	Exists(paths domain.Paths) bool

	// Create creates the virtualenv with the given interpreter.
	Create(ctx context.Context, paths domain.Paths, python domain.Interpreter) error

	// Remove deletes the venv directory.
	Remove(paths domain.Paths) error

	// BinaryPath returns the path of a named executable inside the venv,
	// failing if the venv or the binary does not exist.
	BinaryPath(paths domain.Paths, name string) (string, error)

	// BinDir returns the venv's binaries directory.
	BinDir(paths domain.Paths) string
}
