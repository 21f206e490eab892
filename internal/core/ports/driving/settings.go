package driving

import "github.com/custodia-labs/seamap/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetDatasetBackend updates where the initiative dataset is stored.
	SetDatasetBackend(backend domain.DatasetBackend, path string) error

	// SetValue parses and stores a single setting by key.
	SetValue(key, value string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
