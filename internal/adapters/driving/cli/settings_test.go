package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/seamap/internal/core/domain"
)

func TestSettingsCmd_Show(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("settings")

	require.NoError(t, err)
	assert.Contains(t, out, "[Map]")
	assert.Contains(t, out, "Sidebar width: 30")
	assert.Contains(t, out, "Viewport height: 24")
	assert.Contains(t, out, "Tooltip z-offset: 1000")
	assert.Contains(t, out, "Backend: SQLite")
	assert.Contains(t, out, "Path: (not set)")
	assert.Contains(t, out, "Limit: none")
}

func TestSettingsCmd_SetThenGet(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("settings", "set", "map.sidebar_width", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "Set map.sidebar_width to 42")

	out, err = execute("settings", "get", "map.sidebar_width")
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)

	out, err = execute("settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Sidebar width: 42")
}

func TestSettingsCmd_SetRejectsInvalid(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"settings", "set", "map.colour", "red"}},
		{"not a number", []string{"settings", "set", "map.sidebar_width", "wide"}},
		{"zero width", []string{"settings", "set", "map.sidebar_width", "0"}},
		{"bad backend", []string{"settings", "set", "dataset.backend", "postgres"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestSettingsCmd_GetUnknownKey(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("settings", "get", "map.colour")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsCmd_BackendPrompt(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	rootCmd.SetIn(strings.NewReader("2\n/data/initiatives.csv\n"))

	out, err := execute("settings", "backend")

	require.NoError(t, err)
	assert.Contains(t, out, "Select Dataset Backend")
	assert.Contains(t, out, "Dataset backend set to: Memory")

	settings, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DatasetBackendMemory, settings.Dataset.Backend)
	assert.Equal(t, "/data/initiatives.csv", settings.Dataset.Path)
}

func TestSettingsCmd_BackendPromptKeepsDefault(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	rootCmd.SetIn(strings.NewReader("\n"))

	_, err := execute("settings", "backend")

	require.NoError(t, err)
	settings, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DatasetBackendSQLite, settings.Dataset.Backend)
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 1},
		{"2", 2},
		{"0", 1},
		{"3", 1},
		{"x", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseChoice(tt.input, 2, 1), "input %q", tt.input)
	}
}
