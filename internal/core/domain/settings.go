package domain

const unknownDescription = "Unknown"

// DatasetBackend identifies where initiatives are stored.
type DatasetBackend string

// Available dataset backends.
const (
	// DatasetBackendSQLite stores initiatives in the local SQLite database.
	DatasetBackendSQLite DatasetBackend = "sqlite"

	// DatasetBackendMemory loads initiatives from a CSV file on every start.
	DatasetBackendMemory DatasetBackend = "memory"
)

// AllDatasetBackends returns every backend in display order.
func AllDatasetBackends() []DatasetBackend {
	return []DatasetBackend{DatasetBackendSQLite, DatasetBackendMemory}
}

// IsValid returns true if the backend is recognised.
func (b DatasetBackend) IsValid() bool {
	switch b {
	case DatasetBackendSQLite, DatasetBackendMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b DatasetBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b DatasetBackend) Description() string {
	switch b {
	case DatasetBackendSQLite:
		return "SQLite (imported dataset)"
	case DatasetBackendMemory:
		return "Memory (CSV loaded at startup)"
	default:
		return unknownDescription
	}
}

// MapSettings holds map layout configuration.
type MapSettings struct {
	// SidebarWidth is the default on-screen width of the sidebar.
	SidebarWidth int

	// ViewportHeight is the height of the map viewport. Half of it is
	// used as the top inset when fitting a sidebar selection.
	ViewportHeight int

	// TooltipZOffset is the z-order given to a marker while its tooltip shows.
	TooltipZOffset int
}

// DatasetSettings holds dataset configuration.
type DatasetSettings struct {
	// Backend selects the initiative store.
	Backend DatasetBackend

	// Path is the CSV file for the memory backend.
	Path string
}

// SearchSettings holds search behaviour configuration.
type SearchSettings struct {
	// Limit caps the number of results. Zero means unlimited.
	Limit int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Map holds map layout settings.
	Map MapSettings

	// Dataset holds dataset settings.
	Dataset DatasetSettings

	// Search holds search settings.
	Search SearchSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		Map: MapSettings{
			SidebarWidth:   30,
			ViewportHeight: 24,
			TooltipZOffset: 1000,
		},
		Dataset: DatasetSettings{
			Backend: DatasetBackendSQLite,
		},
		Search: SearchSettings{
			Limit: 0,
		},
	}
}
