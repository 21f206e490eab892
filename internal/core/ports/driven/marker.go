package driven

import "github.com/custodia-labs/seamap/internal/core/domain"

// MarkerHandle is the rendering layer's representation of one initiative
// on the map. The core only routes state changes to it.
type MarkerHandle interface {
	// OpenTooltip shows the marker's hover text.
	OpenTooltip()

	// CloseTooltip hides the marker's hover text.
	CloseTooltip()

	// SetZIndexOffset changes the marker's stacking order relative to siblings.
	SetZIndexOffset(offset int)
}

// MarkerLayer is a group of markers rendered together, e.g. the selected
// markers drawn above the unselected ones.
type MarkerLayer interface {
	// AddMarker adds a marker to the layer.
	AddMarker(marker MarkerHandle)

	// RemoveMarker removes a marker from the layer. Removing a marker that
	// is not in the layer is a no-op.
	RemoveMarker(marker MarkerHandle)
}

// MapView is the map the map presenter drives.
type MapView interface {
	// AddMarker creates a marker for a geolocated initiative.
	AddMarker(initiative *domain.Initiative) (MarkerHandle, error)

	// FitBounds zooms and pans so the bounds are visible inside the padding.
	FitBounds(fit domain.FitBounds)

	// SelectedLayer returns the layer for selected markers.
	SelectedLayer() MarkerLayer

	// UnselectedLayer returns the layer for unselected markers.
	UnselectedLayer() MarkerLayer
}

// SidebarView is the sidebar the sidebar presenter refreshes.
type SidebarView interface {
	// Refresh redraws the sidebar from the presenter's current state.
	Refresh()
}
