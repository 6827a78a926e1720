// Package app implements the application layer for denv.
package app

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/denv/internal/build"
	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/denv/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic. Every command resolves a
// session (settings, interpreter, paths) and then drives the ports.
type App struct {
	logger    ports.Logger
	executor  ports.Executor
	installer ports.Installer
	probe     ports.InterpreterProbe
	venv      ports.Venv
	lockStore ports.LockStore
	settings  ports.SettingsLoader

	// workdir overrides the process cwd, mainly for tests.
	workdir string
}

// New creates a new App instance.
func New(
	log ports.Logger,
	executor ports.Executor,
	installer ports.Installer,
	probe ports.InterpreterProbe,
	venv ports.Venv,
	lockStore ports.LockStore,
	settings ports.SettingsLoader,
) *App {
	return &App{
		logger:    log,
		executor:  executor,
		installer: installer,
		probe:     probe,
		venv:      venv,
		lockStore: lockStore,
		settings:  settings,
	}
}

// WithWorkdir pins the project directory instead of using the process cwd.
// This is primarily used for testing.
func (a *App) WithWorkdir(dir string) *App {
	a.workdir = dir
	return a
}

// session holds everything resolved once per command invocation.
type session struct {
	settings domain.Settings
	python   domain.Interpreter
	paths    domain.Paths
}

func (a *App) newSession(ctx context.Context) (session, error) {
	project, err := a.projectDir()
	if err != nil {
		return session{}, err
	}

	settings, err := a.settings.Load(project)
	if err != nil {
		return session{}, err
	}

	python, err := a.probe.Probe(ctx, settings.PythonBinary)
	if err != nil {
		return session{}, err
	}

	venvDir, err := a.venv.Resolve(project, python, settings)
	if err != nil {
		return session{}, err
	}

	return session{
		settings: settings,
		python:   python,
		paths:    domain.ProjectPaths(project).WithVenv(venvDir),
	}, nil
}

func (a *App) projectDir() (string, error) {
	if a.workdir != "" {
		return a.workdir, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine working directory")
	}
	return dir, nil
}

// ensureVenv creates the virtualenv when it is missing.
func (a *App) ensureVenv(ctx context.Context, s session) error {
	if a.venv.Exists(s.paths) {
		return nil
	}
	a.logger.Info(fmt.Sprintf("Creating virtualenv in %s with %s", s.paths.Venv, s.python.Binary))
	return a.venv.Create(ctx, s.paths, s.python)
}

// lockHeader renders the provenance comment written atop the lock artifact.
func lockHeader(python domain.Interpreter) string {
	return fmt.Sprintf("# Generated with denv %s, python %s, on %s", build.Version, python.Version, python.Platform)
}
