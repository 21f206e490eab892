package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/seamap/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/seamap/internal/core/services"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "seamap", rootCmd.Use)
}

func TestRootCmd_HasPersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "data-dir"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"import", "search", "select", "tui", "mcp", "settings", "version"} {
		assert.True(t, names[want], want)
	}
}

func TestRequireServices_NotConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	SetServices(nil)

	_, err := execute("settings", "show")

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestRequireServices_UsesBootstrapWithFlags(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	SetServices(nil)

	var got Options
	calls := 0
	SetBootstrap(func(opts Options) (*Services, error) {
		calls++
		got = opts
		return &Services{
			Store:    memory.NewInitiativeStore(),
			Settings: services.NewSettingsService(memory.NewConfigStore()),
		}, nil
	})

	out, err := execute("--config-dir", "/tmp/cfg", "--data-dir", "/tmp/data", "settings", "get", "map.sidebar_width")

	require.NoError(t, err)
	assert.Equal(t, "30\n", out)
	assert.Equal(t, Options{ConfigDir: "/tmp/cfg", DataDir: "/tmp/data"}, got)
	assert.Equal(t, 1, calls)

	_, err = execute("settings", "get", "search.limit")
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "services are built once")
}

func TestRequireServices_BootstrapError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	SetServices(nil)

	boom := errors.New("cannot open database")
	SetBootstrap(func(Options) (*Services, error) { return nil, boom })

	_, err := execute("search", "zeal")

	assert.ErrorIs(t, err, boom)
}

func TestRequireServices_IncompleteServices(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	SetServices(nil)

	SetBootstrap(func(Options) (*Services, error) { return &Services{}, nil })

	_, err := execute("search", "zeal")

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCloseServices(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	closed := false
	svc.Close = func() error {
		closed = true
		return errors.New("already closed")
	}

	closeServices()

	assert.True(t, closed)
}
