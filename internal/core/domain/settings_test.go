package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetBackend_IsValid(t *testing.T) {
	assert.True(t, DatasetBackendSQLite.IsValid())
	assert.True(t, DatasetBackendMemory.IsValid())
	assert.False(t, DatasetBackend("postgres").IsValid())
	assert.False(t, DatasetBackend("").IsValid())
}

func TestAllDatasetBackends(t *testing.T) {
	backends := AllDatasetBackends()

	require.Len(t, backends, 2)
	for _, b := range backends {
		assert.True(t, b.IsValid())
	}
}

func TestDatasetBackend_Description(t *testing.T) {
	assert.Contains(t, DatasetBackendSQLite.Description(), "SQLite")
	assert.Contains(t, DatasetBackendMemory.Description(), "CSV")
	assert.Equal(t, unknownDescription, DatasetBackend("x").Description())
}

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	require.NotNil(t, settings)
	assert.Equal(t, 30, settings.Map.SidebarWidth)
	assert.Equal(t, 24, settings.Map.ViewportHeight)
	assert.Equal(t, 1000, settings.Map.TooltipZOffset)
	assert.Equal(t, DatasetBackendSQLite, settings.Dataset.Backend)
	assert.Empty(t, settings.Dataset.Path)
	assert.Zero(t, settings.Search.Limit)
}
