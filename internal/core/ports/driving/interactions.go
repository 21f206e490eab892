package driving

import "github.com/custodia-labs/seamap/internal/core/domain"

// InteractionService turns user gestures into bus events. Driving adapters
// use it instead of publishing directly.
type InteractionService interface {
	// ClickInitiative reports a sidebar row activation. sidebarWidth is the
	// on-screen width of the sidebar, used to keep the fitted map clear of it.
	ClickInitiative(initiative *domain.Initiative, sidebarWidth int) error

	// SelectMarker replaces the selection with the initiative.
	SelectMarker(initiative *domain.Initiative) error

	// ToggleMarker adds or removes the initiative from the selection.
	ToggleMarker(initiative *domain.Initiative) error

	// Hover shows the initiative's tooltip.
	Hover(initiative *domain.Initiative) error

	// Unhover hides the initiative's tooltip.
	Unhover(initiative *domain.Initiative) error
}
