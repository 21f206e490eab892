package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/seamap/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "seamap-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func sampleInitiatives() []*domain.Initiative {
	return []*domain.Initiative{
		{ID: "R001", Name: "Zeal Bakery", Homepage: "http://zeal.coop", Postcode: "BS1 4DJ", Lat: 51.45, Lng: -2.59, Geolocated: true},
		{ID: "R002", Name: "acorn housing", Postcode: "M1 1AA", Lat: 53.48, Lng: -2.24, Geolocated: true},
		{ID: "R003", Name: "Mill Workers", Postcode: "LS2 7EW"},
	}
}

// ==================== Store Creation Tests ====================

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "seamap-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	dbPath := filepath.Join(tempDir, "initiatives.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)
	assert.NoError(t, store.db.Ping())
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "seamap-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	nestedDir := filepath.Join(tempDir, "nested", "path", "to", "db")
	store, err := NewStore(nestedDir)
	require.NoError(t, err)
	defer store.Close()

	assert.DirExists(t, nestedDir)
}

func TestNewStore_Migrations(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	var tableExists int
	err = store.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='initiatives'",
	).Scan(&tableExists)
	require.NoError(t, err)
	assert.Equal(t, 1, tableExists)
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "seamap-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	ctx := context.Background()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.InitiativeStore().SaveAll(ctx, sampleInitiatives()))
	require.NoError(t, store.Close())

	reopened, err := NewStore(tempDir)
	require.NoError(t, err)
	defer reopened.Close()

	count, err := reopened.InitiativeStore().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	version, err := reopened.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, version, "migrations must not be re-recorded")
}

func TestStore_Close(t *testing.T) {
	store, _ := setupTestStore(t)

	assert.NoError(t, store.Close())
	assert.Error(t, store.db.Ping())
}

// ==================== InitiativeStore Tests ====================

func TestInitiativeStore_SaveAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	is := store.InitiativeStore()
	require.NoError(t, is.SaveAll(ctx, sampleInitiatives()))

	got, err := is.Get(ctx, "R001")
	require.NoError(t, err)
	assert.Equal(t, "Zeal Bakery", got.Name)
	assert.Equal(t, "http://zeal.coop", got.Homepage)
	assert.Equal(t, "BS1 4DJ", got.Postcode)
	assert.True(t, got.Geolocated)
	assert.InDelta(t, 51.45, got.Lat, 1e-9)
	assert.InDelta(t, -2.59, got.Lng, 1e-9)
}

func TestInitiativeStore_NotGeolocatedRoundTrip(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	is := store.InitiativeStore()
	require.NoError(t, is.SaveAll(ctx, sampleInitiatives()))

	got, err := is.Get(ctx, "R003")
	require.NoError(t, err)
	assert.False(t, got.Geolocated)
	assert.False(t, got.HasGeoLocation())
}

func TestInitiativeStore_Get_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.InitiativeStore().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInitiativeStore_SaveAll_Upsert(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	is := store.InitiativeStore()
	require.NoError(t, is.SaveAll(ctx, sampleInitiatives()))

	updated := &domain.Initiative{ID: "R001", Name: "Zeal Bakery Co-op"}
	require.NoError(t, is.SaveAll(ctx, []*domain.Initiative{updated}))

	got, err := is.Get(ctx, "R001")
	require.NoError(t, err)
	assert.Equal(t, "Zeal Bakery Co-op", got.Name)
	assert.False(t, got.Geolocated)

	count, err := is.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestInitiativeStore_SaveAll_RejectsMissingID(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	is := store.InitiativeStore()

	err := is.SaveAll(ctx, []*domain.Initiative{
		{ID: "ok", Name: "Fine"},
		{Name: "No ID"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	count, err := is.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "failed batch must roll back")
}

func TestInitiativeStore_List_OrderedByName(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	is := store.InitiativeStore()
	require.NoError(t, is.SaveAll(ctx, sampleInitiatives()))

	list, err := is.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"R002", "R003", "R001"}, domain.IDs(list))
}

func TestInitiativeStore_List_Empty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	list, err := store.InitiativeStore().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestInitiativeStore_Search(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	is := store.InitiativeStore()
	require.NoError(t, is.SaveAll(ctx, sampleInitiatives()))

	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{name: "name case insensitive", text: "ZEAL", want: []string{"R001"}},
		{name: "postcode", text: "ls2", want: []string{"R003"}},
		{name: "shared substring", text: "r", want: []string{"R002", "R003", "R001"}},
		{name: "limit", text: "r", limit: 2, want: []string{"R002", "R003"}},
		{name: "no match", text: "xyz", want: []string{}},
		{name: "wildcards are literal", text: "%", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := is.Search(ctx, tt.text, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, domain.IDs(got))
		})
	}
}

func TestInitiativeStore_Clear(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	is := store.InitiativeStore()
	require.NoError(t, is.SaveAll(ctx, sampleInitiatives()))
	require.NoError(t, is.Clear(ctx))

	count, err := is.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestInitiativeStore_ContextCancellation(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.InitiativeStore().List(ctx)
	assert.Error(t, err)
}

func TestInitiativeStore_Search_FoldsNonASCII(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	is := store.InitiativeStore()
	require.NoError(t, is.SaveAll(ctx, []*domain.Initiative{
		{ID: "E1", Name: "École Coopérative"},
		{ID: "E2", Name: "Straße Kollektiv"},
	}))

	got, err := is.Search(ctx, "école", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"E1"}, domain.IDs(got))

	got, err = is.Search(ctx, "COOPÉRATIVE", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"E1"}, domain.IDs(got))
}

func TestInitiativeStore_ReplaceAll(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	is := store.InitiativeStore()
	require.NoError(t, is.SaveAll(ctx, sampleInitiatives()))

	err := is.ReplaceAll(ctx, []*domain.Initiative{{ID: "N001", Name: "New Leaf"}})
	require.NoError(t, err)

	list, err := is.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"N001"}, domain.IDs(list))
}

func TestInitiativeStore_ReplaceAll_FailureKeepsRows(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	is := store.InitiativeStore()
	require.NoError(t, is.SaveAll(ctx, sampleInitiatives()))

	err := is.ReplaceAll(ctx, []*domain.Initiative{{ID: "N001", Name: "New Leaf"}, {Name: "No ID"}})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	count, err := is.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = is.Get(ctx, "N001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
