package services

import (
	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/ports/driven"
)

// Session wires one bus to the dataset, sidebar and map collaborators that
// make up a running map. Driving adapters build one per process.
type Session struct {
	Bus          *EventBus
	Dataset      *DatasetService
	Sidebar      *SidebarPresenter
	Map          *MapPresenter
	Interactions *InteractionService
}

// NewSession subscribes presenters for view to a fresh bus. The sidebar view
// is attached later with Sidebar.SetView. The source may be nil.
func NewSession(
	store driven.InitiativeStore,
	source driven.InitiativeSource,
	view driven.MapView,
	settings domain.MapSettings,
) *Session {
	bus := NewEventBus()
	return &Session{
		Bus:          bus,
		Dataset:      NewDatasetService(bus, store, source),
		Sidebar:      NewSidebarPresenter(bus, nil, settings),
		Map:          NewMapPresenter(bus, view, settings),
		Interactions: NewInteractionService(bus),
	}
}

// Markers returns the registry of map markers.
func (s *Session) Markers() *MarkerRegistry {
	return s.Map.Registry()
}

// Close unsubscribes both presenters and removes every marker.
func (s *Session) Close() {
	s.Sidebar.Close()
	s.Map.Close()
}
