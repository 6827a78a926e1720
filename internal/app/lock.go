package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/zerr"
)

// LockOptions configuration for the Lock method.
type LockOptions struct {
	// PythonVersion is a marker expression (e.g. "< '3.8'") attached to
	// records that enter the lock during this reconciliation.
	PythonVersion string

	// SysPlatform is a platform name (e.g. "win32") attached as an
	// equality marker to records that enter the lock.
	SysPlatform string
}

// Lock installs the project into its venv and reconciles the observed
// dependency set into the lock artifact.
func (a *App) Lock(ctx context.Context, opts LockOptions) error {
	s, err := a.newSession(ctx)
	if err != nil {
		return err
	}

	if _, err := os.Stat(s.paths.SetupScript); err != nil {
		return errors.Join(domain.ErrMissingSetupScript, zerr.With(zerr.Wrap(err, "stat setup script"), "path", s.paths.SetupScript))
	}

	if err := a.ensureVenv(ctx, s); err != nil {
		return err
	}

	if err := a.installer.Upgrade(ctx, s.paths); err != nil {
		return err
	}

	a.logger.Info("Installing project and dependencies")
	if err := a.installer.InstallEditable(ctx, s.paths); err != nil {
		return err
	}

	frozen, err := a.installer.Freeze(ctx, s.paths)
	if err != nil {
		return err
	}

	return a.writeLock(s, frozen, opts)
}

func (a *App) writeLock(s session, frozen []domain.FrozenDependency, opts LockOptions) error {
	var text string
	if a.lockStore.Exists(s.paths.Lock) {
		existing, err := a.lockStore.Read(s.paths.Lock)
		if err != nil {
			return err
		}
		text = existing
	}

	lock, err := domain.ParseLock(text)
	if err != nil {
		return err
	}
	if opts.PythonVersion != "" {
		lock.SetPythonVersion(opts.PythonVersion)
	}
	if opts.SysPlatform != "" {
		lock.SetSysPlatform(opts.SysPlatform)
	}

	changes := lock.Freeze(frozen)
	for _, change := range changes {
		a.logger.Info(change.String())
	}

	written, err := a.lockStore.Write(s.paths.Lock, lock.String(), lockHeader(s.python))
	if err != nil {
		return err
	}
	if !written {
		a.logger.Info(domain.LockFileName + " is up to date")
		return nil
	}
	a.logger.Info(fmt.Sprintf("Wrote %s with %d change(s)", domain.LockFileName, len(changes)))
	return nil
}

// Bump rewrites the pinned version (or VCS ref, when git is set) of a
// single record in the lock artifact. The document is left untouched
// unless exactly one record matches.
func (a *App) Bump(ctx context.Context, name, value string, git bool) error {
	s, err := a.newSession(ctx)
	if err != nil {
		return err
	}

	text, err := a.lockStore.Read(s.paths.Lock)
	if err != nil {
		return err
	}

	lock, err := domain.ParseLock(text)
	if err != nil {
		return err
	}

	var changed bool
	if git {
		changed, err = lock.BumpRef(name, value)
	} else {
		changed, err = lock.Bump(name, value)
	}
	if err != nil {
		return err
	}
	if !changed {
		a.logger.Info(fmt.Sprintf("%s is already at %s", name, value))
		return nil
	}

	if _, err := a.lockStore.Write(s.paths.Lock, lock.String(), lockHeader(s.python)); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("Bumped %s to %s", name, value))
	return nil
}
