package services

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/ports/driving"
)

// Ensure InteractionService implements the interface.
var _ driving.InteractionService = (*InteractionService)(nil)

// ErrHandlerFailed is returned when a subscriber rejected a published gesture.
var ErrHandlerFailed = errors.New("event handler(s) failed")

// InteractionService publishes user gestures on the bus.
type InteractionService struct {
	bus *EventBus
}

// NewInteractionService creates a new interaction service.
func NewInteractionService(bus *EventBus) *InteractionService {
	return &InteractionService{bus: bus}
}

// ClickInitiative publishes a sidebar click.
func (s *InteractionService) ClickInitiative(initiative *domain.Initiative, sidebarWidth int) error {
	if initiative == nil {
		return fmt.Errorf("click: %w", domain.ErrInvalidInput)
	}
	return s.check(domain.TopicInitiativeClicked.Name(), Publish(s.bus, domain.TopicInitiativeClicked,
		domain.InitiativeClicked{Initiative: initiative, SidebarWidth: max(sidebarWidth, 0)}))
}

// SelectMarker publishes a marker selection.
func (s *InteractionService) SelectMarker(initiative *domain.Initiative) error {
	return s.publish(domain.TopicMarkerSelectionSet, initiative)
}

// ToggleMarker publishes a marker toggle.
func (s *InteractionService) ToggleMarker(initiative *domain.Initiative) error {
	return s.publish(domain.TopicMarkerSelectionToggle, initiative)
}

// Hover publishes a sidebar mouseover.
func (s *InteractionService) Hover(initiative *domain.Initiative) error {
	return s.publish(domain.TopicInitiativeMouseover, initiative)
}

// Unhover publishes a sidebar mouseout.
func (s *InteractionService) Unhover(initiative *domain.Initiative) error {
	return s.publish(domain.TopicInitiativeMouseout, initiative)
}

func (s *InteractionService) publish(topic domain.Topic[*domain.Initiative], initiative *domain.Initiative) error {
	if initiative == nil {
		return fmt.Errorf("%s: %w", topic.Name(), domain.ErrInvalidInput)
	}
	return s.check(topic.Name(), Publish(s.bus, topic, initiative))
}

func (s *InteractionService) check(topic string, failed int) error {
	if failed > 0 {
		return fmt.Errorf("%s: %d %w", topic, failed, ErrHandlerFailed)
	}
	return nil
}
