// Package tui provides an interactive terminal user interface for seamap.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/seamap/internal/adapters/driving/tui/views/mappane"
	"github.com/custodia-labs/seamap/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Dataset runs searches against the loaded initiatives.
	Dataset driving.DatasetService

	// Sidebar exposes the selection history.
	Sidebar driving.SidebarPresenter

	// Interactions publishes clicks, selections and hovers.
	Interactions driving.InteractionService

	// Markers reports which markers are selected. Optional.
	Markers driving.MarkerRegistry

	// Settings supplies the sidebar width and search limit. Optional.
	Settings driving.SettingsService

	// Map is the canvas the map pane draws.
	Map mappane.Canvas
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(
	dataset driving.DatasetService,
	sidebar driving.SidebarPresenter,
	interactions driving.InteractionService,
	canvas mappane.Canvas,
) *Ports {
	return &Ports{
		Dataset:      dataset,
		Sidebar:      sidebar,
		Interactions: interactions,
		Map:          canvas,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Dataset == nil {
		return ErrMissingDatasetService
	}
	if p.Sidebar == nil {
		return ErrMissingSidebarPresenter
	}
	if p.Interactions == nil {
		return ErrMissingInteractionService
	}
	if p.Map == nil {
		return ErrMissingMapCanvas
	}
	return nil
}
