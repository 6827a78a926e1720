// Package pip integrates the pip installer running inside a project venv.
package pip

import (
	"context"
	"errors"
	"strings"

	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/denv/internal/core/ports"
	"go.trai.ch/zerr"
)

// debianNoise is reported by pip on some Debian installations even though
// it is not a real project dependency.
// See https://bugs.debian.org/cgi-bin/bugreport.cgi?bug=871790
const debianNoise = "pkg-resources"

// Installer implements ports.Installer by shelling out to pip inside the
// project's virtualenv.
type Installer struct {
	executor ports.Executor
	venv     ports.Venv
	logger   ports.Logger
}

// NewInstaller creates a new Installer.
func NewInstaller(executor ports.Executor, venv ports.Venv, logger ports.Logger) *Installer {
	return &Installer{executor: executor, venv: venv, logger: logger}
}

// Freeze runs `pip freeze` and returns the observed dependencies.
// Editable installs are excluded so the project itself never ends up in
// its own lock; `--all` keeps pip and setuptools pinned like everything
// else.
func (i *Installer) Freeze(ctx context.Context, paths domain.Paths) ([]domain.FrozenDependency, error) {
	pip, err := i.venv.BinaryPath(paths, "pip")
	if err != nil {
		return nil, err
	}

	out, err := i.executor.Output(ctx, ports.Command{
		Name: pip,
		Args: []string{"freeze", "--exclude-editable", "--all"},
		Dir:  paths.Project,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "pip freeze failed")
	}

	return ParseFreeze(out)
}

// ParseFreeze parses `pip freeze` output into frozen dependencies,
// filtering installer noise.
func ParseFreeze(out string) ([]domain.FrozenDependency, error) {
	var deps []domain.FrozenDependency
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, version, ok := strings.Cut(line, "==")
		if !ok || name == "" || version == "" {
			return nil, errors.Join(domain.ErrBrokenFreezeLine, zerr.With(zerr.New("expected `<name>==<version>`"), "line", line))
		}
		if name == debianNoise {
			continue
		}
		deps = append(deps, domain.FrozenDependency{Name: name, Version: version})
	}
	return deps, nil
}

// Install installs the exact set pinned by the lock artifact.
func (i *Installer) Install(ctx context.Context, paths domain.Paths) error {
	i.logger.Info("installing dependencies from " + domain.LockFileName)
	return i.runPip(ctx, paths, "install", "--requirement", paths.Lock)
}

// InstallEditable installs the project in editable mode with dev extras,
// so freeze observes the full development dependency set.
func (i *Installer) InstallEditable(ctx context.Context, paths domain.Paths) error {
	i.logger.Info("installing deps from " + domain.SetupScriptName)
	return i.runPip(ctx, paths, "install", "--editable", ".[dev]")
}

// Upgrade upgrades pip itself inside the venv. Old pip versions produce
// freeze output the codec rejects, so locking always upgrades first.
func (i *Installer) Upgrade(ctx context.Context, paths domain.Paths) error {
	i.logger.Info("upgrading pip")
	if err := i.runPip(ctx, paths, "install", "pip", "--upgrade"); err != nil {
		return errors.Join(domain.ErrPipUpgradeFailed, err)
	}
	return nil
}

// List prints the installed packages to the user's terminal.
func (i *Installer) List(ctx context.Context, paths domain.Paths) error {
	pip, err := i.venv.BinaryPath(paths, "pip")
	if err != nil {
		return err
	}
	return i.executor.Run(ctx, ports.Command{
		Name:        pip,
		Args:        []string{"list"},
		Dir:         paths.Project,
		Interactive: true,
	})
}

// runPip invokes pip through `python -m pip` so pip can upgrade itself
// on platforms where the pip binary cannot replace a running executable.
func (i *Installer) runPip(ctx context.Context, paths domain.Paths, args ...string) error {
	python, err := i.venv.BinaryPath(paths, "python")
	if err != nil {
		return err
	}
	return i.executor.Run(ctx, ports.Command{
		Name: python,
		Args: append([]string{"-m", "pip"}, args...),
		Dir:  paths.Project,
	})
}
