// Package venv manages project virtualenvs and their filesystem layout.
package venv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/denv/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager implements ports.Venv. Virtualenvs are created with the
// interpreter's own venv module so the venv always matches the probed
// interpreter.
type Manager struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewManager creates a new Manager.
func NewManager(executor ports.Executor, logger ports.Logger) *Manager {
	return &Manager{executor: executor, logger: logger}
}

// Resolve computes the venv directory for a project and interpreter.
// An activated virtualenv ($VIRTUAL_ENV) always wins, so running denv
// inside an activated venv operates on that venv.
func (m *Manager) Resolve(project string, python domain.Interpreter, settings domain.Settings) (string, error) {
	if active := os.Getenv("VIRTUAL_ENV"); active != "" {
		return active, nil
	}
	if settings.VenvOutsideProject {
		return resolveOutside(project, python.Version)
	}
	return filepath.Join(project, ".venv", python.Version), nil
}

// resolveOutside places the venv under the user cache directory, keyed by
// interpreter version and project name so projects cannot collide.
func resolveOutside(project, pythonVersion string) (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to locate user cache directory")
	}
	name := filepath.Base(project)
	if name == "." || name == string(filepath.Separator) {
		return "", zerr.With(zerr.New("project path has no usable name"), "project", project)
	}
	return filepath.Join(cacheDir, "denv", "venv", pythonVersion, name), nil
}

// Exists reports whether the venv directory is present.
func (m *Manager) Exists(paths domain.Paths) bool {
	info, err := os.Stat(paths.Venv)
	return err == nil && info.IsDir()
}

// Create creates the virtualenv with the given interpreter.
func (m *Manager) Create(ctx context.Context, paths domain.Paths, python domain.Interpreter) error {
	parent := filepath.Dir(paths.Venv)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create venv parent directory"), "path", parent)
	}

	m.logger.Info("creating virtualenv in " + paths.Venv)
	err := m.executor.Run(ctx, ports.Command{
		Name: python.Binary,
		Args: []string{"-m", "venv", paths.Venv},
		Dir:  paths.Project,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create virtualenv"), "path", paths.Venv)
	}
	return nil
}

// Remove deletes the venv directory. Removing a venv that does not exist
// is not an error.
func (m *Manager) Remove(paths domain.Paths) error {
	if !m.Exists(paths) {
		return nil
	}
	if err := os.RemoveAll(paths.Venv); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove virtualenv"), "path", paths.Venv)
	}
	return nil
}

// BinDir returns the venv's binaries directory.
func (m *Manager) BinDir(paths domain.Paths) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(paths.Venv, "Scripts")
	}
	return filepath.Join(paths.Venv, "bin")
}

// BinaryPath returns the path of a named executable inside the venv.
func (m *Manager) BinaryPath(paths domain.Paths, name string) (string, error) {
	if !m.Exists(paths) {
		return "", errors.Join(domain.ErrMissingVenv, zerr.With(zerr.New("no virtualenv directory"), "path", paths.Venv))
	}

	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	path := filepath.Join(m.BinDir(paths), name)
	if _, err := os.Stat(path); err != nil {
		return "", zerr.With(zerr.Wrap(err, "executable not found in virtualenv"), "path", path)
	}
	return path, nil
}
