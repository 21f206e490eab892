package mcp

import (
	"github.com/custodia-labs/seamap/internal/adapters/driven/mapview"
	"github.com/custodia-labs/seamap/internal/core/ports/driving"
)

// MapState reports what a headless map currently shows.
type MapState interface {
	State() mapview.State
}

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Dataset searches and looks up initiatives.
	Dataset driving.DatasetService

	// Sidebar exposes and navigates the selection history.
	Sidebar driving.SidebarPresenter

	// Interactions publishes clicks and marker selections.
	Interactions driving.InteractionService

	// Markers reports which markers are selected. Optional.
	Markers driving.MarkerRegistry

	// Map exposes the headless map. Optional.
	Map MapState
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Dataset == nil {
		return ErrMissingDatasetService
	}
	if p.Sidebar == nil {
		return ErrMissingSidebarPresenter
	}
	if p.Interactions == nil {
		return ErrMissingInteractionService
	}
	return nil
}
