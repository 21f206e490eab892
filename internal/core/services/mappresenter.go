package services

import (
	"fmt"

	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/ports/driven"
	"github.com/custodia-labs/seamap/internal/logger"
)

// MapPresenter applies bus notifications to the map view and its markers.
type MapPresenter struct {
	bus      *EventBus
	view     driven.MapView
	registry *MarkerRegistry
	subs     []Subscription
}

// NewMapPresenter creates a presenter for the view and subscribes it to the bus.
func NewMapPresenter(bus *EventBus, view driven.MapView, settings domain.MapSettings) *MapPresenter {
	p := &MapPresenter{
		bus:      bus,
		view:     view,
		registry: NewMarkerRegistry(view.SelectedLayer(), view.UnselectedLayer(), settings.TooltipZOffset),
	}

	p.subs = []Subscription{
		Subscribe(bus, domain.TopicInitiativeNew, p.onInitiativeNew),
		Subscribe(bus, domain.TopicDatasetLoaded, p.onDatasetLoaded),
		Subscribe(bus, domain.TopicSelectionChanged, p.onMarkersNeedToShowLatestSelection),
		Subscribe(bus, domain.TopicFitBounds, p.onMapNeedsToBeZoomedAndPanned),
		Subscribe(bus, domain.TopicShowTooltip, p.onNeedToShowInitiativeTooltip),
		Subscribe(bus, domain.TopicHideTooltip, p.onNeedToHideInitiativeTooltip),
	}
	return p
}

// Registry returns the presenter's marker registry.
func (p *MapPresenter) Registry() *MarkerRegistry {
	return p.registry
}

// Close unsubscribes the presenter and tears down every marker.
func (p *MapPresenter) Close() {
	for _, sub := range p.subs {
		p.bus.Unsubscribe(sub)
	}
	p.subs = nil
	p.registry.Teardown()
}

func (p *MapPresenter) onInitiativeNew(initiative *domain.Initiative) error {
	if initiative == nil {
		return fmt.Errorf("%w: new initiative event without an initiative", domain.ErrMalformedPayload)
	}
	if !initiative.HasGeoLocation() {
		return nil
	}
	if p.registry.IsRegistered(initiative.ID) {
		logger.Debug("map: marker for %q already exists", initiative.ID)
		return nil
	}

	marker, err := p.view.AddMarker(initiative)
	if err != nil {
		return fmt.Errorf("creating marker for %q: %w", initiative.ID, err)
	}
	return p.registry.Register(initiative, marker)
}

func (p *MapPresenter) onDatasetLoaded(data domain.DatasetLoaded) error {
	logger.Info("map: dataset loaded with %d initiative(s)", data.Count)
	if !data.HasBounds {
		return nil
	}
	p.view.FitBounds(domain.FitBounds{Bounds: data.Bounds})
	return nil
}

func (p *MapPresenter) onMarkersNeedToShowLatestSelection(data domain.SelectionChanged) error {
	for _, initiative := range data.Unselected {
		p.registry.SetUnselected(initiative)
	}
	for _, initiative := range data.Selected {
		p.registry.SetSelected(initiative)
	}
	return nil
}

func (p *MapPresenter) onMapNeedsToBeZoomedAndPanned(data domain.FitBounds) error {
	p.view.FitBounds(data)
	return nil
}

func (p *MapPresenter) onNeedToShowInitiativeTooltip(initiative *domain.Initiative) error {
	p.registry.ShowTooltip(initiative)
	return nil
}

func (p *MapPresenter) onNeedToHideInitiativeTooltip(initiative *domain.Initiative) error {
	p.registry.HideTooltip(initiative)
	return nil
}
