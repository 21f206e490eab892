package services

import (
	"bytes"
	"testing"

	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/ports/driven"
	"github.com/custodia-labs/seamap/internal/logger"
)

func geoInitiative(id string, lat, lng float64) *domain.Initiative {
	return &domain.Initiative{ID: id, Name: "Initiative " + id, Lat: lat, Lng: lng, Geolocated: true}
}

func plainInitiative(id string) *domain.Initiative {
	return &domain.Initiative{ID: id, Name: "Initiative " + id}
}

// record subscribes to topic and collects every payload published on it.
func record[T any](bus *EventBus, topic domain.Topic[T]) *[]T {
	got := &[]T{}
	Subscribe(bus, topic, func(v T) error {
		*got = append(*got, v)
		return nil
	})
	return got
}

// captureLogs redirects the logger into a buffer for the test's duration.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := logger.Output()
	logger.SetOutput(buf)
	t.Cleanup(func() { logger.SetOutput(prev) })
	return buf
}

// recordingSidebar counts refreshes.
type recordingSidebar struct {
	refreshes int
}

func (r *recordingSidebar) Refresh() {
	r.refreshes++
}

// fakeMarker records the calls a marker receives.
type fakeMarker struct {
	id      string
	tooltip bool
	zOffset int
}

func (m *fakeMarker) OpenTooltip() { m.tooltip = true }
func (m *fakeMarker) CloseTooltip() { m.tooltip = false }
func (m *fakeMarker) SetZIndexOffset(offset int) { m.zOffset = offset }

// fakeLayer tracks its members.
type fakeLayer struct {
	members map[driven.MarkerHandle]bool
}

func newFakeLayer() *fakeLayer {
	return &fakeLayer{members: make(map[driven.MarkerHandle]bool)}
}

func (l *fakeLayer) AddMarker(marker driven.MarkerHandle) { l.members[marker] = true }
func (l *fakeLayer) RemoveMarker(marker driven.MarkerHandle) { delete(l.members, marker) }

func (l *fakeLayer) has(marker driven.MarkerHandle) bool {
	return l.members[marker]
}

// fakeMapView hands out fakeMarkers and records fits.
type fakeMapView struct {
	selected   *fakeLayer
	unselected *fakeLayer
	markers    map[string]*fakeMarker
	fits       []domain.FitBounds
	addErr     error
}

func newFakeMapView() *fakeMapView {
	return &fakeMapView{
		selected:   newFakeLayer(),
		unselected: newFakeLayer(),
		markers:    make(map[string]*fakeMarker),
	}
}

func (v *fakeMapView) AddMarker(initiative *domain.Initiative) (driven.MarkerHandle, error) {
	if v.addErr != nil {
		return nil, v.addErr
	}
	m := &fakeMarker{id: initiative.ID}
	v.markers[initiative.ID] = m
	return m, nil
}

func (v *fakeMapView) FitBounds(fit domain.FitBounds) { v.fits = append(v.fits, fit) }
func (v *fakeMapView) SelectedLayer() driven.MarkerLayer { return v.selected }
func (v *fakeMapView) UnselectedLayer() driven.MarkerLayer { return v.unselected }
