package services

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/ports/driven"
	"github.com/custodia-labs/seamap/internal/core/ports/driving"
)

// Ensure MarkerRegistry implements the interface.
var _ driving.MarkerRegistry = (*MarkerRegistry)(nil)

// registration tracks one marker and the layer it currently belongs to.
type registration struct {
	marker   driven.MarkerHandle
	selected bool
}

// MarkerRegistry maps initiative IDs to their markers and moves markers
// between the selected and unselected layers. Lookups for initiatives
// without a marker are silently ignored.
type MarkerRegistry struct {
	selectedLayer   driven.MarkerLayer
	unselectedLayer driven.MarkerLayer
	tooltipZOffset  int
	markers         map[string]*registration
}

// NewMarkerRegistry creates a registry drawing into the given layers.
// tooltipZOffset is applied to a marker while its tooltip is shown.
func NewMarkerRegistry(selected, unselected driven.MarkerLayer, tooltipZOffset int) *MarkerRegistry {
	return &MarkerRegistry{
		selectedLayer:   selected,
		unselectedLayer: unselected,
		tooltipZOffset:  tooltipZOffset,
		markers:         make(map[string]*registration),
	}
}

// Register adds the marker for an initiative to the unselected layer.
// Each initiative may be registered once per view lifetime.
func (r *MarkerRegistry) Register(initiative *domain.Initiative, marker driven.MarkerHandle) error {
	if initiative == nil || marker == nil {
		return fmt.Errorf("registering marker: %w", domain.ErrInvalidInput)
	}
	if !initiative.HasGeoLocation() {
		return fmt.Errorf("registering marker for %q: %w", initiative.ID, domain.ErrNoGeoLocation)
	}
	if _, exists := r.markers[initiative.ID]; exists {
		return fmt.Errorf("registering marker for %q: %w", initiative.ID, domain.ErrAlreadyRegistered)
	}

	r.markers[initiative.ID] = &registration{marker: marker}
	r.unselectedLayer.AddMarker(marker)
	return nil
}

// SetSelected moves the initiative's marker to the selected layer.
func (r *MarkerRegistry) SetSelected(initiative *domain.Initiative) {
	reg := r.lookup(initiative)
	if reg == nil || reg.selected {
		return
	}
	r.unselectedLayer.RemoveMarker(reg.marker)
	r.selectedLayer.AddMarker(reg.marker)
	reg.selected = true
}

// SetUnselected moves the initiative's marker to the unselected layer.
func (r *MarkerRegistry) SetUnselected(initiative *domain.Initiative) {
	reg := r.lookup(initiative)
	if reg == nil || !reg.selected {
		return
	}
	r.selectedLayer.RemoveMarker(reg.marker)
	r.unselectedLayer.AddMarker(reg.marker)
	reg.selected = false
}

// ShowTooltip opens the marker's tooltip and raises it above its siblings.
func (r *MarkerRegistry) ShowTooltip(initiative *domain.Initiative) {
	reg := r.lookup(initiative)
	if reg == nil {
		return
	}
	reg.marker.OpenTooltip()
	reg.marker.SetZIndexOffset(r.tooltipZOffset)
}

// HideTooltip closes the marker's tooltip and restores its stacking order.
func (r *MarkerRegistry) HideTooltip(initiative *domain.Initiative) {
	reg := r.lookup(initiative)
	if reg == nil {
		return
	}
	reg.marker.CloseTooltip()
	reg.marker.SetZIndexOffset(0)
}

// Lookup returns the marker registered for an initiative ID.
func (r *MarkerRegistry) Lookup(id string) (driven.MarkerHandle, bool) {
	reg, ok := r.markers[id]
	if !ok {
		return nil, false
	}
	return reg.marker, true
}

// IsRegistered reports whether the initiative has a marker.
func (r *MarkerRegistry) IsRegistered(id string) bool {
	_, ok := r.markers[id]
	return ok
}

// IsSelected reports whether the initiative's marker is in the selected layer.
func (r *MarkerRegistry) IsSelected(id string) bool {
	reg, ok := r.markers[id]
	return ok && reg.selected
}

// Selected returns the IDs of every selected marker, sorted.
func (r *MarkerRegistry) Selected() []string {
	ids := make([]string, 0)
	for id, reg := range r.markers {
		if reg.selected {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered markers.
func (r *MarkerRegistry) Len() int {
	return len(r.markers)
}

// Teardown removes every marker from its layer and forgets all registrations.
func (r *MarkerRegistry) Teardown() {
	for id, reg := range r.markers {
		if reg.selected {
			r.selectedLayer.RemoveMarker(reg.marker)
		} else {
			r.unselectedLayer.RemoveMarker(reg.marker)
		}
		delete(r.markers, id)
	}
}

func (r *MarkerRegistry) lookup(initiative *domain.Initiative) *registration {
	if initiative == nil {
		return nil
	}
	return r.markers[initiative.ID]
}
