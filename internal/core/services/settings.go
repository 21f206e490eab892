package services

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/ports/driven"
	"github.com/custodia-labs/seamap/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeySidebarWidth   = "map.sidebar_width"
	KeyViewportHeight = "map.viewport_height"
	KeyTooltipZOffset = "map.tooltip_z_offset"
	KeyDatasetBackend = "dataset.backend"
	KeyDatasetPath    = "dataset.path"
	KeySearchLimit    = "search.limit"
)

// SettingKeys lists every key the settings service reads.
var SettingKeys = []string{
	KeySidebarWidth,
	KeyViewportHeight,
	KeyTooltipZOffset,
	KeyDatasetBackend,
	KeyDatasetPath,
	KeySearchLimit,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Map: domain.MapSettings{
			SidebarWidth:   s.getPositiveInt(KeySidebarWidth, defaults.Map.SidebarWidth),
			ViewportHeight: s.getPositiveInt(KeyViewportHeight, defaults.Map.ViewportHeight),
			TooltipZOffset: s.getPositiveInt(KeyTooltipZOffset, defaults.Map.TooltipZOffset),
		},
		Dataset: domain.DatasetSettings{
			Backend: s.getBackend(defaults.Dataset.Backend),
			Path:    s.configStore.GetString(KeyDatasetPath),
		},
		Search: domain.SearchSettings{
			Limit: s.getPositiveInt(KeySearchLimit, defaults.Search.Limit),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("save settings: %w", domain.ErrInvalidInput)
	}
	if !settings.Dataset.Backend.IsValid() {
		return fmt.Errorf("invalid dataset backend: %s", settings.Dataset.Backend)
	}

	// Save map settings
	if err := s.configStore.Set(KeySidebarWidth, settings.Map.SidebarWidth); err != nil {
		return fmt.Errorf("save sidebar width: %w", err)
	}
	if err := s.configStore.Set(KeyViewportHeight, settings.Map.ViewportHeight); err != nil {
		return fmt.Errorf("save viewport height: %w", err)
	}
	if err := s.configStore.Set(KeyTooltipZOffset, settings.Map.TooltipZOffset); err != nil {
		return fmt.Errorf("save tooltip z offset: %w", err)
	}

	// Save dataset settings
	if err := s.configStore.Set(KeyDatasetBackend, settings.Dataset.Backend.String()); err != nil {
		return fmt.Errorf("save dataset backend: %w", err)
	}
	if err := s.configStore.Set(KeyDatasetPath, settings.Dataset.Path); err != nil {
		return fmt.Errorf("save dataset path: %w", err)
	}

	if err := s.configStore.Set(KeySearchLimit, settings.Search.Limit); err != nil {
		return fmt.Errorf("save search limit: %w", err)
	}

	return nil
}

// SetDatasetBackend updates the dataset backend and path.
func (s *SettingsService) SetDatasetBackend(backend domain.DatasetBackend, path string) error {
	if !backend.IsValid() {
		return fmt.Errorf("invalid dataset backend: %s", backend)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Dataset.Backend = backend
	settings.Dataset.Path = path

	return s.Save(settings)
}

// SetValue parses value for the given key and persists it.
// Integer settings must be positive, except search.limit where zero means
// no limit.
func (s *SettingsService) SetValue(key, value string) error {
	if !slices.Contains(SettingKeys, key) {
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case KeyDatasetBackend:
		return s.SetDatasetBackend(domain.DatasetBackend(value), settings.Dataset.Path)
	case KeyDatasetPath:
		settings.Dataset.Path = value
		return s.Save(settings)
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || (n == 0 && key != KeySearchLimit) {
		return fmt.Errorf("setting %q must be a positive integer: %w", key, domain.ErrInvalidInput)
	}
	switch key {
	case KeySidebarWidth:
		settings.Map.SidebarWidth = n
	case KeyViewportHeight:
		settings.Map.ViewportHeight = n
	case KeyTooltipZOffset:
		settings.Map.TooltipZOffset = n
	case KeySearchLimit:
		settings.Search.Limit = n
	}
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return *domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBackend(defaultVal domain.DatasetBackend) domain.DatasetBackend {
	val := s.configStore.GetString(KeyDatasetBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.DatasetBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
