package ports

import "go.trai.ch/denv/internal/core/domain"

// SettingsLoader loads user settings for a project directory.
//
//go:generate mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads denv.yaml from the project directory or any parent.
	// A missing file yields the zero-value settings.
	Load(cwd string) (domain.Settings, error)
}
