package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importCSV = `id,name,homepage,postcode,lat,lng
C1,Acorn Co-op,acorn.coop,BS1 1AA,51.45,-2.59
C2,Beacon Housing,,M1 1AA,,
`

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "initiatives.csv")
	require.NoError(t, os.WriteFile(path, []byte(importCSV), 0o600))
	return path
}

func TestImportCmd_ReplacesDataset(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := writeCSV(t)

	out, err := execute("import", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 initiatives from "+path)

	count, err := svc.Store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	acorn, err := svc.Store.Get(context.Background(), "C1")
	require.NoError(t, err)
	assert.Equal(t, "http://acorn.coop", acorn.Homepage)
	assert.True(t, acorn.Geolocated)
}

func TestImportCmd_UsesDatasetPathSetting(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := writeCSV(t)
	require.NoError(t, svc.Settings.SetValue("dataset.path", path))

	out, err := execute("import")

	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 initiatives")
}

func TestImportCmd_NoPath(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("import")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset.path is not set")
}

func TestImportCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("import", filepath.Join(t.TempDir(), "missing.csv"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "import failed")

	count, err := svc.Store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count, "a failed import keeps the old dataset")
}

func TestImportCmd_MemoryBackendNote(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, svc.Settings.SetValue("dataset.backend", "memory"))

	out, err := execute("import", writeCSV(t))

	require.NoError(t, err)
	assert.Contains(t, out, "memory backend")
}

func TestImportCmd_HasWatchFlag(t *testing.T) {
	flag := importCmd.Flags().Lookup("watch")
	require.NotNil(t, flag)
	assert.Equal(t, "w", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestImportCmd_WatchStopsWithContext(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := writeCSV(t)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"import", "--watch", path})
	defer rootCmd.SetArgs(nil)
	resetContexts(rootCmd)
	defer resetContexts(rootCmd)

	err := rootCmd.ExecuteContext(ctx)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Imported 2 initiatives")
	assert.Contains(t, buf.String(), "Watching "+path)
}

func TestImportCmd_WatchAfterEarlierRun(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := writeCSV(t)

	_, err := execute("import", path)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"import", "--watch", path})
	defer rootCmd.SetArgs(nil)
	defer resetContexts(rootCmd)

	done := make(chan error, 1)
	go func() { done <- rootCmd.ExecuteContext(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop when the context was cancelled")
	}
	assert.Contains(t, buf.String(), "Watching "+path)
}
