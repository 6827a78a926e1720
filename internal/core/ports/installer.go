package ports

import (
	"context"

	"go.trai.ch/denv/internal/core/domain"
)

// Installer is the external package installer (pip) operating inside a
// project's virtualenv. The core only consumes its observed state; it
// never resolves dependencies itself.
//
//go:generate mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// Freeze returns the installed dependencies as (name, version) pairs,
	// with installer noise entries already filtered out.
	Freeze(ctx context.Context, paths domain.Paths) ([]domain.FrozenDependency, error)

	// Install installs the exact set pinned by the lock artifact.
	Install(ctx context.Context, paths domain.Paths) error

	// InstallEditable installs the project itself in editable mode,
	// including its dev extras.
	InstallEditable(ctx context.Context, paths domain.Paths) error

	// Upgrade upgrades the installer itself inside the venv.
	Upgrade(ctx context.Context, paths domain.Paths) error

	// List prints the installed packages to the user.
	List(ctx context.Context, paths domain.Paths) error
}
