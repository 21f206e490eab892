package mapview

import (
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/ports/driven"
)

// Glyphs used when rendering.
const (
	GlyphEmpty      = ' '
	GlyphUnselected = 'o'
	GlyphSelected   = '@'
)

// Verify interface compliance.
var (
	_ driven.MapView      = (*Canvas)(nil)
	_ driven.MarkerLayer  = (*Layer)(nil)
	_ driven.MarkerHandle = (*Marker)(nil)
)

// Canvas is an in-memory map of initiative markers.
type Canvas struct {
	mu         sync.Mutex
	markers    map[string]*Marker
	order      []*Marker
	selected   *Layer
	unselected *Layer
	view       domain.FitBounds
	hasView    bool
	fits       int
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	c := &Canvas{markers: make(map[string]*Marker)}
	c.selected = &Layer{canvas: c, name: "selected", members: make(map[*Marker]bool)}
	c.unselected = &Layer{canvas: c, name: "unselected", members: make(map[*Marker]bool)}
	return c
}

// AddMarker creates a marker for a geolocated initiative. The marker is not
// drawn until it is added to a layer.
func (c *Canvas) AddMarker(initiative *domain.Initiative) (driven.MarkerHandle, error) {
	if !initiative.HasGeoLocation() {
		return nil, domain.ErrNoGeoLocation
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.markers[initiative.ID]; ok {
		return nil, fmt.Errorf("marker %q: %w", initiative.ID, domain.ErrAlreadyExists)
	}
	m := &Marker{canvas: c, initiative: initiative}
	c.markers[initiative.ID] = m
	c.order = append(c.order, m)
	return m, nil
}

// FitBounds records the view the map should show.
func (c *Canvas) FitBounds(fit domain.FitBounds) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = fit
	c.hasView = true
	c.fits++
}

// SelectedLayer returns the layer for selected markers.
func (c *Canvas) SelectedLayer() driven.MarkerLayer {
	return c.selected
}

// UnselectedLayer returns the layer for unselected markers.
func (c *Canvas) UnselectedLayer() driven.MarkerLayer {
	return c.unselected
}

// View returns the last fitted view.
func (c *Canvas) View() (domain.FitBounds, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view, c.hasView
}

// FitCount returns how many times the view was fitted.
func (c *Canvas) FitCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fits
}

// Marker returns the marker for an initiative ID.
func (c *Canvas) Marker(id string) (*Marker, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.markers[id]
	return m, ok
}

// Len returns the number of markers created.
func (c *Canvas) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

// State is a snapshot of the canvas.
type State struct {
	Selected   []string          `json:"selected"`
	Unselected []string          `json:"unselected"`
	Tooltip    string            `json:"tooltip,omitempty"`
	View       *domain.FitBounds `json:"view,omitempty"`
}

// State returns a snapshot with layer members sorted by ID.
func (c *Canvas) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := State{
		Selected:   c.selected.idsLocked(),
		Unselected: c.unselected.idsLocked(),
	}
	if m := c.tooltipLocked(); m != nil {
		st.Tooltip = m.initiative.ID
	}
	if c.hasView {
		view := c.view
		st.View = &view
	}
	return st
}

// Tooltip returns the initiative whose tooltip is open, if any. When more
// than one is open the one stacked highest wins.
func (c *Canvas) Tooltip() (*domain.Initiative, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := c.tooltipLocked()
	if m == nil {
		return nil, false
	}
	return m.initiative, true
}

func (c *Canvas) tooltipLocked() *Marker {
	var top *Marker
	for _, m := range c.order {
		if !m.tooltip {
			continue
		}
		if top == nil || m.zOffset > top.zOffset {
			top = m
		}
	}
	return top
}

// Layer is a group of markers drawn together.
type Layer struct {
	canvas  *Canvas
	name    string
	members map[*Marker]bool
}

// Name returns the layer name.
func (l *Layer) Name() string {
	return l.name
}

// AddMarker adds a marker to the layer. Markers from other canvases are ignored.
func (l *Layer) AddMarker(handle driven.MarkerHandle) {
	m, ok := handle.(*Marker)
	if !ok || m.canvas != l.canvas {
		return
	}
	l.canvas.mu.Lock()
	defer l.canvas.mu.Unlock()
	l.members[m] = true
}

// RemoveMarker removes a marker from the layer.
func (l *Layer) RemoveMarker(handle driven.MarkerHandle) {
	m, ok := handle.(*Marker)
	if !ok {
		return
	}
	l.canvas.mu.Lock()
	defer l.canvas.mu.Unlock()
	delete(l.members, m)
}

// Contains reports whether the initiative's marker is in the layer.
func (l *Layer) Contains(id string) bool {
	l.canvas.mu.Lock()
	defer l.canvas.mu.Unlock()
	m, ok := l.canvas.markers[id]
	return ok && l.members[m]
}

// IDs returns the initiative IDs in the layer, sorted.
func (l *Layer) IDs() []string {
	l.canvas.mu.Lock()
	defer l.canvas.mu.Unlock()
	return l.idsLocked()
}

func (l *Layer) idsLocked() []string {
	ids := make([]string, 0, len(l.members))
	for m := range l.members {
		ids = append(ids, m.initiative.ID)
	}
	sort.Strings(ids)
	return ids
}

// Marker is one initiative on the canvas.
type Marker struct {
	canvas     *Canvas
	initiative *domain.Initiative
	tooltip    bool
	zOffset    int
}

// Initiative returns the marker's initiative.
func (m *Marker) Initiative() *domain.Initiative {
	return m.initiative
}

// OpenTooltip shows the marker's label.
func (m *Marker) OpenTooltip() {
	m.canvas.mu.Lock()
	defer m.canvas.mu.Unlock()
	m.tooltip = true
}

// CloseTooltip hides the marker's label.
func (m *Marker) CloseTooltip() {
	m.canvas.mu.Lock()
	defer m.canvas.mu.Unlock()
	m.tooltip = false
}

// SetZIndexOffset changes the marker's stacking order.
func (m *Marker) SetZIndexOffset(offset int) {
	m.canvas.mu.Lock()
	defer m.canvas.mu.Unlock()
	m.zOffset = offset
}

// TooltipOpen reports whether the tooltip is shown.
func (m *Marker) TooltipOpen() bool {
	m.canvas.mu.Lock()
	defer m.canvas.mu.Unlock()
	return m.tooltip
}

// ZIndexOffset returns the stacking offset.
func (m *Marker) ZIndexOffset() int {
	m.canvas.mu.Lock()
	defer m.canvas.mu.Unlock()
	return m.zOffset
}
