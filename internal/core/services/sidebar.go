package services

import (
	"fmt"

	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/ports/driven"
	"github.com/custodia-labs/seamap/internal/core/ports/driving"
	"github.com/custodia-labs/seamap/internal/logger"
)

// Ensure SidebarPresenter implements the interface.
var _ driving.SidebarPresenter = (*SidebarPresenter)(nil)

// SidebarPresenter owns the selection history shown in the sidebar. It turns
// search, click and marker events into ContentStack entries and announces
// each new selection so markers, map and sidebar can follow.
type SidebarPresenter struct {
	bus            *EventBus
	view           driven.SidebarView
	stack          *ContentStack
	viewportHeight int
	subs           []Subscription
}

// NewSidebarPresenter creates a presenter and subscribes it to the bus.
// The view is optional and may be set later with SetView.
func NewSidebarPresenter(bus *EventBus, view driven.SidebarView, settings domain.MapSettings) *SidebarPresenter {
	p := &SidebarPresenter{
		bus:            bus,
		view:           view,
		stack:          NewContentStack(),
		viewportHeight: settings.ViewportHeight,
	}

	p.subs = []Subscription{
		Subscribe(bus, domain.TopicSearchResults, p.onInitiativeResults),
		Subscribe(bus, domain.TopicInitiativeClicked, p.onInitiativeClickedInSidebar),
		Subscribe(bus, domain.TopicMarkerSelectionSet, p.onMarkerSelectionSet),
		Subscribe(bus, domain.TopicMarkerSelectionToggle, p.onMarkerSelectionToggled),
		Subscribe(bus, domain.TopicInitiativeMouseover, p.onInitiativeMouseover),
		Subscribe(bus, domain.TopicInitiativeMouseout, p.onInitiativeMouseout),
		Subscribe(bus, domain.TopicHistoryBack, p.onHistoryBack),
		Subscribe(bus, domain.TopicHistoryForward, p.onHistoryForward),
	}
	return p
}

// SetView sets the sidebar view refreshed after each change.
func (p *SidebarPresenter) SetView(view driven.SidebarView) {
	p.view = view
}

// SetViewportHeight updates the height used for the vertical fit inset.
func (p *SidebarPresenter) SetViewportHeight(height int) {
	p.viewportHeight = height
}

// Close unsubscribes the presenter from the bus.
func (p *SidebarPresenter) Close() {
	for _, sub := range p.subs {
		p.bus.Unsubscribe(sub)
	}
	p.subs = nil
}

// Current returns the selection at the history cursor.
func (p *SidebarPresenter) Current() (domain.StackItem, bool) {
	return p.stack.Current()
}

// Back publishes a history-back request. Returns false at the first entry.
func (p *SidebarPresenter) Back() bool {
	if !p.CanGoBack() {
		return false
	}
	Publish(p.bus, domain.TopicHistoryBack, struct{}{})
	return true
}

// Forward publishes a history-forward request. Returns false at the last entry.
func (p *SidebarPresenter) Forward() bool {
	if !p.CanGoForward() {
		return false
	}
	Publish(p.bus, domain.TopicHistoryForward, struct{}{})
	return true
}

// CanGoBack reports whether there is an earlier selection.
func (p *SidebarPresenter) CanGoBack() bool {
	return !p.stack.AtStart()
}

// CanGoForward reports whether there is a later selection.
func (p *SidebarPresenter) CanGoForward() bool {
	return !p.stack.AtEnd()
}

// History returns every selection and the cursor position.
func (p *SidebarPresenter) History() ([]domain.StackItem, int) {
	return p.stack.Items(), p.stack.Index()
}

func (p *SidebarPresenter) onInitiativeResults(data domain.SearchResults) error {
	if data.Results == nil {
		return fmt.Errorf("%w: search results without a result list", domain.ErrMalformedPayload)
	}
	logger.Debug("sidebar: %s", data.Describe())

	last, hadLast := p.stack.Current()
	p.stack.Append(domain.NewSearchResults(data.Results, data.Text))
	p.notifyMarkersNeedToShowNewSelection(last, hadLast)
	p.notifyMapNeedsToBeZoomedAndPanned(0)
	Publish(p.bus, domain.TopicShowInitiatives, struct{}{})
	p.refresh()
	return nil
}

func (p *SidebarPresenter) onInitiativeClickedInSidebar(data domain.InitiativeClicked) error {
	if data.Initiative == nil {
		return fmt.Errorf("%w: sidebar click without an initiative", domain.ErrMalformedPayload)
	}
	logger.Debug("sidebar: clicked %s", data.Describe())

	last, hadLast := p.stack.Current()
	p.stack.Append(domain.NewSelection([]*domain.Initiative{data.Initiative}))
	p.notifyMarkersNeedToShowNewSelection(last, hadLast)
	p.notifyMapNeedsToBeZoomedAndPanned(data.SidebarWidth)
	p.refresh()
	return nil
}

func (p *SidebarPresenter) onMarkerSelectionSet(initiative *domain.Initiative) error {
	if initiative == nil {
		return fmt.Errorf("%w: marker selection without an initiative", domain.ErrMalformedPayload)
	}

	last, hadLast := p.stack.Current()
	p.stack.Append(domain.NewSelection([]*domain.Initiative{initiative}))
	p.notifyMarkersNeedToShowNewSelection(last, hadLast)
	p.refresh()
	return nil
}

func (p *SidebarPresenter) onMarkerSelectionToggled(initiative *domain.Initiative) error {
	if initiative == nil {
		return fmt.Errorf("%w: marker toggle without an initiative", domain.ErrMalformedPayload)
	}

	// No previous selection toggles against an empty list.
	last, hadLast := p.stack.Current()
	p.stack.Append(last.Toggled(initiative))
	p.notifyMarkersNeedToShowNewSelection(last, hadLast)
	p.refresh()
	return nil
}

func (p *SidebarPresenter) onInitiativeMouseover(initiative *domain.Initiative) error {
	if initiative == nil {
		return fmt.Errorf("%w: mouseover without an initiative", domain.ErrMalformedPayload)
	}
	Publish(p.bus, domain.TopicShowTooltip, initiative)
	return nil
}

func (p *SidebarPresenter) onInitiativeMouseout(initiative *domain.Initiative) error {
	if initiative == nil {
		return fmt.Errorf("%w: mouseout without an initiative", domain.ErrMalformedPayload)
	}
	Publish(p.bus, domain.TopicHideTooltip, initiative)
	return nil
}

func (p *SidebarPresenter) onHistoryBack(struct{}) error {
	last, hadLast := p.stack.Current()
	if !p.stack.Back() {
		return nil
	}
	p.historyButtonsUsed(last, hadLast)
	return nil
}

func (p *SidebarPresenter) onHistoryForward(struct{}) error {
	last, hadLast := p.stack.Current()
	if !p.stack.Forward() {
		return nil
	}
	p.historyButtonsUsed(last, hadLast)
	return nil
}

func (p *SidebarPresenter) historyButtonsUsed(last domain.StackItem, hadLast bool) {
	logger.Debug("sidebar: history moved to %d of %d", p.stack.Index()+1, p.stack.Len())
	p.notifyMarkersNeedToShowNewSelection(last, hadLast)
	p.refresh()
}

func (p *SidebarPresenter) notifyMarkersNeedToShowNewSelection(last domain.StackItem, hadLast bool) {
	var unselected []*domain.Initiative
	if hadLast {
		unselected = last.Initiatives()
	} else {
		unselected = []*domain.Initiative{}
	}
	current, _ := p.stack.Current()

	Publish(p.bus, domain.TopicSelectionChanged, domain.SelectionChanged{
		Unselected: unselected,
		Selected:   current.Initiatives(),
	})
}

// notifyMapNeedsToBeZoomedAndPanned fits the map to the geolocated part of
// the current selection. Initiatives without coordinates take no part in
// the bounds. A selection where none is geolocated publishes no fit event
// instead of fitting to empty bounds, so the map keeps its current view.
func (p *SidebarPresenter) notifyMapNeedsToBeZoomedAndPanned(sidebarWidth int) {
	current, _ := p.stack.Current()
	bounds, ok := domain.BoundsOf(geolocated(current.Initiatives()))
	if !ok {
		logger.Debug("sidebar: nothing to fit for %d initiative(s)", current.Len())
		return
	}

	Publish(p.bus, domain.TopicFitBounds, domain.FitBounds{
		Bounds:  bounds,
		Padding: domain.SidebarPadding(sidebarWidth, p.viewportHeight),
	})
}

func (p *SidebarPresenter) refresh() {
	if p.view != nil {
		p.view.Refresh()
	}
}

func geolocated(initiatives []*domain.Initiative) []*domain.Initiative {
	out := initiatives[:0]
	for _, in := range initiatives {
		if in.HasGeoLocation() {
			out = append(out, in)
		}
	}
	return out
}
