package driving

import "github.com/custodia-labs/seamap/internal/core/domain"

// MarkerRegistry reports which initiatives have markers and their state.
type MarkerRegistry interface {
	// IsRegistered reports whether the initiative has a marker.
	IsRegistered(id string) bool

	// IsSelected reports whether the initiative's marker is in the selected layer.
	IsSelected(id string) bool

	// Selected returns the IDs of every selected marker, sorted.
	Selected() []string

	// Len returns the number of registered markers.
	Len() int

	// SetSelected moves the initiative's marker to the selected layer.
	SetSelected(initiative *domain.Initiative)

	// SetUnselected moves the initiative's marker to the unselected layer.
	SetUnselected(initiative *domain.Initiative)
}
