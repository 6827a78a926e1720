package venv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/denv/internal/adapters/venv"
	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/denv/internal/core/ports"
	"go.trai.ch/denv/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newManager(t *testing.T) (*venv.Manager, *mocks.MockExecutor) {
	t.Helper()
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return venv.NewManager(executor, logger), executor
}

func TestResolve(t *testing.T) {
	python := domain.Interpreter{Binary: "/usr/bin/python3", Version: "3.11.4", Platform: "linux"}

	t.Run("activated venv wins", func(t *testing.T) {
		t.Setenv("VIRTUAL_ENV", "/active/venv")
		m, _ := newManager(t)

		got, err := m.Resolve("/work/demo", python, domain.Settings{})
		require.NoError(t, err)
		assert.Equal(t, "/active/venv", got)
	})

	t.Run("defaults to a versioned dir inside the project", func(t *testing.T) {
		t.Setenv("VIRTUAL_ENV", "")
		m, _ := newManager(t)

		got, err := m.Resolve("/work/demo", python, domain.Settings{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/work/demo", ".venv", "3.11.4"), got)
	})

	t.Run("outside-project uses the user cache dir", func(t *testing.T) {
		t.Setenv("VIRTUAL_ENV", "")
		cache := t.TempDir()
		t.Setenv("XDG_CACHE_HOME", cache)
		m, _ := newManager(t)

		got, err := m.Resolve("/work/demo", python, domain.Settings{VenvOutsideProject: true})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cache, "denv", "venv", "3.11.4", "demo"), got)
	})
}

func TestExistsAndRemove(t *testing.T) {
	m, _ := newManager(t)

	paths := domain.ProjectPaths(t.TempDir()).WithVenv(filepath.Join(t.TempDir(), "venv"))
	assert.False(t, m.Exists(paths))

	require.NoError(t, os.MkdirAll(paths.Venv, 0o755))
	assert.True(t, m.Exists(paths))

	require.NoError(t, m.Remove(paths))
	assert.False(t, m.Exists(paths))

	// Removing again is a no-op
	require.NoError(t, m.Remove(paths))
}

func TestCreate(t *testing.T) {
	m, executor := newManager(t)

	project := t.TempDir()
	python := domain.Interpreter{Binary: "/usr/bin/python3", Version: "3.11.4"}
	paths := domain.ProjectPaths(project).WithVenv(filepath.Join(project, ".venv", "3.11.4"))

	executor.EXPECT().
		Run(gomock.Any(), ports.Command{
			Name: python.Binary,
			Args: []string{"-m", "venv", paths.Venv},
			Dir:  project,
		}).
		Return(nil)

	require.NoError(t, m.Create(context.Background(), paths, python))

	// Parent directory is prepared for the interpreter
	info, err := os.Stat(filepath.Dir(paths.Venv))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestBinaryPath(t *testing.T) {
	m, _ := newManager(t)

	project := t.TempDir()
	paths := domain.ProjectPaths(project).WithVenv(filepath.Join(project, ".venv", "3.11.4"))

	t.Run("missing venv", func(t *testing.T) {
		_, err := m.BinaryPath(paths, "pytest")
		assert.ErrorIs(t, err, domain.ErrMissingVenv)
	})

	binDir := m.BinDir(paths)
	require.NoError(t, os.MkdirAll(binDir, 0o755))

	t.Run("missing binary", func(t *testing.T) {
		_, err := m.BinaryPath(paths, "pytest")
		assert.Error(t, err)
	})

	t.Run("existing binary", func(t *testing.T) {
		want := filepath.Join(binDir, "pytest")
		require.NoError(t, os.WriteFile(want, []byte("#!/bin/sh\n"), 0o755))

		got, err := m.BinaryPath(paths, "pytest")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
