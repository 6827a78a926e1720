package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/zerr"
)

// InitOptions configuration for the Init method.
type InitOptions struct {
	Name    string
	Version string
	Author  string
}

const setupScript = `from setuptools import setup, find_packages

setup(
    name="%s",
    version="%s",
    author="%s",
    packages=find_packages(),
    install_requires=[],
    extras_require={
        "dev": [],
    },
)
`

// Init writes a starter setup.py into the current project.
func (a *App) Init(_ context.Context, opts InitOptions) error {
	project, err := a.projectDir()
	if err != nil {
		return err
	}

	path := filepath.Join(project, domain.SetupScriptName)
	if _, err := os.Stat(path); err == nil {
		return errors.Join(domain.ErrFileExists, zerr.With(zerr.New("refusing to overwrite"), "path", path))
	}

	contents := fmt.Sprintf(setupScript, opts.Name, opts.Version, opts.Author)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write setup script"), "path", path)
	}
	a.logger.Info("Generated " + domain.SetupScriptName)
	return nil
}

// Clean removes the project's venv.
func (a *App) Clean(ctx context.Context) error {
	s, err := a.newSession(ctx)
	if err != nil {
		return err
	}
	if !a.venv.Exists(s.paths) {
		a.logger.Info("Nothing to clean")
		return nil
	}
	a.logger.Info("Removing " + s.paths.Venv)
	return a.venv.Remove(s.paths)
}

// ShowDeps lists the packages installed in the venv.
func (a *App) ShowDeps(ctx context.Context) error {
	s, err := a.newSession(ctx)
	if err != nil {
		return err
	}
	if !a.venv.Exists(s.paths) {
		return errors.Join(domain.ErrMissingVenv, zerr.With(zerr.New("no virtualenv directory"), "path", s.paths.Venv))
	}
	return a.installer.List(ctx, s.paths)
}

// VenvPath returns the venv directory for the current project.
func (a *App) VenvPath(ctx context.Context) (string, error) {
	s, err := a.newSession(ctx)
	if err != nil {
		return "", err
	}
	return s.paths.Venv, nil
}

// BinPath returns the venv's binaries directory.
func (a *App) BinPath(ctx context.Context) (string, error) {
	s, err := a.newSession(ctx)
	if err != nil {
		return "", err
	}
	return a.venv.BinDir(s.paths), nil
}
