// Package config provides the settings loader for denv.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SettingsFileName is the name of the optional settings file.
const SettingsFileName = "denv.yaml"

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load walks up from cwd looking for denv.yaml and returns its settings.
// A missing file is not an error; every setting has a usable zero value.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	path, found := findSettings(cwd)
	if !found {
		return domain.Settings{}, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is discovered under the user's cwd
	if err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	}

	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, errors.Join(
			domain.ErrSettingsParseFailed,
			zerr.With(zerr.Wrap(err, "invalid yaml"), "path", path),
		)
	}

	return domain.Settings{
		VenvOutsideProject: file.Venv.OutsideProject,
		PythonBinary:       file.Python.Binary,
	}, nil
}

func findSettings(cwd string) (string, bool) {
	currentDir := cwd
	for {
		path := filepath.Join(currentDir, SettingsFileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}
