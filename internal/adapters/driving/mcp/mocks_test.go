package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/seamap/internal/adapters/driven/mapview"
	"github.com/custodia-labs/seamap/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/services"
)

// mockDatasetService is a mock implementation of driving.DatasetService.
type mockDatasetService struct {
	results    []*domain.Initiative
	initiative *domain.Initiative
	err        error
	lastOpts   domain.SearchOptions
}

func (m *mockDatasetService) Load(_ context.Context) (int, error) {
	return len(m.results), m.err
}

func (m *mockDatasetService) Search(
	_ context.Context,
	_ string,
	opts domain.SearchOptions,
) ([]*domain.Initiative, error) {
	m.lastOpts = opts
	return m.results, m.err
}

func (m *mockDatasetService) Get(_ context.Context, _ string) (*domain.Initiative, error) {
	if m.initiative == nil && m.err == nil {
		return nil, domain.ErrNotFound
	}
	return m.initiative, m.err
}

func (m *mockDatasetService) Import(_ context.Context) (int, error) {
	return 0, m.err
}

// testSession is a headless map loaded with three initiatives.
type testSession struct {
	session *services.Session
	canvas  *mapview.Canvas
	server  *Server
}

func newTestSession(t *testing.T) *testSession {
	t.Helper()

	store := memory.NewInitiativeStore()
	require.NoError(t, store.SaveAll(context.Background(), []*domain.Initiative{
		{ID: "R001", Name: "Zeal Bakery", Postcode: "OX1 1AA", Lat: 51.75, Lng: -1.25, Geolocated: true},
		{ID: "R002", Name: "Zeal Housing", Postcode: "L1 1AA", Lat: 53.4, Lng: -2.98, Geolocated: true},
		{ID: "R003", Name: "Mill Workers"},
	}))

	canvas := mapview.NewCanvas()
	session := services.NewSession(store, nil, canvas, domain.DefaultAppSettings().Map)
	t.Cleanup(session.Close)
	_, err := session.Dataset.Load(context.Background())
	require.NoError(t, err)

	server, err := NewServer(&Ports{
		Dataset:      session.Dataset,
		Sidebar:      session.Sidebar,
		Interactions: session.Interactions,
		Markers:      session.Markers(),
		Map:          canvas,
	})
	require.NoError(t, err)

	return &testSession{session: session, canvas: canvas, server: server}
}
