package app

import (
	"context"
	"errors"
	"os"

	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/denv/internal/core/ports"
	"go.trai.ch/zerr"
)

// InstallOptions configuration for the Install method.
type InstallOptions struct {
	// Develop additionally installs the project itself in editable mode.
	Develop bool
}

// Install creates the venv if needed and installs the exact set pinned
// by the lock artifact.
func (a *App) Install(ctx context.Context, opts InstallOptions) error {
	s, err := a.newSession(ctx)
	if err != nil {
		return err
	}

	if !a.lockStore.Exists(s.paths.Lock) {
		return errors.Join(domain.ErrMissingLock, zerr.With(zerr.New("lock file not present"), "path", s.paths.Lock))
	}

	if err := a.ensureVenv(ctx, s); err != nil {
		return err
	}

	a.logger.Info("Installing from " + domain.LockFileName)
	if err := a.installer.Install(ctx, s.paths); err != nil {
		return err
	}

	if opts.Develop {
		a.logger.Info("Installing project in editable mode")
		return a.installer.InstallEditable(ctx, s.paths)
	}
	return nil
}

// Run executes a command inside the project's venv. The binary is
// resolved against the venv first, and the child sees an activated
// environment.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return zerr.New("no command given")
	}

	s, err := a.newSession(ctx)
	if err != nil {
		return err
	}

	binary, err := a.venv.BinaryPath(s.paths, args[0])
	if err != nil {
		return err
	}

	env := []string{
		"VIRTUAL_ENV=" + s.paths.Venv,
		"PATH=" + a.venv.BinDir(s.paths) + string(os.PathListSeparator) + os.Getenv("PATH"),
	}
	return a.executor.Run(ctx, ports.Command{
		Name:        binary,
		Args:        args[1:],
		Dir:         s.paths.Project,
		Env:         env,
		Interactive: true,
	})
}

// UpgradePip upgrades pip inside the project's venv.
func (a *App) UpgradePip(ctx context.Context) error {
	s, err := a.newSession(ctx)
	if err != nil {
		return err
	}
	if !a.venv.Exists(s.paths) {
		return errors.Join(domain.ErrMissingVenv, zerr.With(zerr.New("no virtualenv directory"), "path", s.paths.Venv))
	}
	return a.installer.Upgrade(ctx, s.paths)
}
