package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/denv/internal/core/domain"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields zero settings", func(t *testing.T) {
		t.Parallel()

		got, err := NewLoader().Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, domain.Settings{}, got)
	})

	t.Run("reads settings from project directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeSettings(t, dir, "venv:\n  outsideProject: true\npython:\n  binary: python3.11\n")

		got, err := NewLoader().Load(dir)
		require.NoError(t, err)
		assert.Equal(t, domain.Settings{
			VenvOutsideProject: true,
			PythonBinary:       "python3.11",
		}, got)
	})

	t.Run("walks up to a parent directory", func(t *testing.T) {
		t.Parallel()

		parent := t.TempDir()
		writeSettings(t, parent, "venv:\n  outsideProject: true\n")

		child := filepath.Join(parent, "src", "pkg")
		require.NoError(t, os.MkdirAll(child, 0o755))

		got, err := NewLoader().Load(child)
		require.NoError(t, err)
		assert.True(t, got.VenvOutsideProject)
	})

	t.Run("invalid yaml yields ErrSettingsParseFailed", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeSettings(t, dir, "venv: [unclosed\n")

		_, err := NewLoader().Load(dir)
		assert.ErrorIs(t, err, domain.ErrSettingsParseFailed)
	})
}

func writeSettings(t *testing.T, dir, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte(contents), 0o644))
}
