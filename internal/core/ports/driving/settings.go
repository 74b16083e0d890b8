package driving

import "github.com/custodia-labs/certcheck/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, filling unset keys
	// from domain.DefaultSettings.
	Get() (*domain.Settings, error)

	// Set validates and persists a single dot-separated key
	// (e.g., "ner.provider").
	Set(key, value string) error

	// Path returns the configuration file path.
	Path() string

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
