package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/seamap/internal/core/domain"
)

// defaultSearchLimit caps search results when the caller gives no limit.
const defaultSearchLimit = 25

// Select modes.
const (
	modeClick  = "click"
	modeMarker = "marker"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"text to match against initiative names and postcodes"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 25)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []InitiativeOutput `json:"results"`
	Count   int                `json:"count"`
}

// InitiativeOutput represents a single initiative.
type InitiativeOutput struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Homepage   string  `json:"homepage,omitempty"`
	Postcode   string  `json:"postcode,omitempty"`
	Lat        float64 `json:"lat,omitempty"`
	Lng        float64 `json:"lng,omitempty"`
	Geolocated bool    `json:"geolocated"`
}

// SelectInput is the input schema for the select_initiative tool.
type SelectInput struct {
	ID           string `json:"id" jsonschema:"initiative identifier"`
	Mode         string `json:"mode,omitempty" jsonschema:"click (default) zooms the map to the initiative, marker only changes the selection"`
	SidebarWidth int    `json:"sidebar_width,omitempty" jsonschema:"columns hidden by a sidebar, used to pad the zoom in click mode"`
}

// ToggleInput is the input schema for the toggle_initiative tool.
type ToggleInput struct {
	ID string `json:"id" jsonschema:"initiative identifier"`
}

// EmptyInput is the input schema for tools without arguments.
type EmptyInput struct{}

// SelectionOutput describes the sidebar item at the history cursor.
type SelectionOutput struct {
	Kind            string             `json:"kind"`
	Query           string             `json:"query,omitempty"`
	Initiatives     []InitiativeOutput `json:"initiatives"`
	Position        int                `json:"position"`
	Depth           int                `json:"depth"`
	CanGoBack       bool               `json:"can_go_back"`
	CanGoForward    bool               `json:"can_go_forward"`
	SelectedMarkers []string           `json:"selected_markers,omitempty"`
}

// HistoryOutput is the output schema for the history tools.
type HistoryOutput struct {
	Moved     bool            `json:"moved"`
	Selection SelectionOutput `json:"selection"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search initiatives by name or postcode and show the results on the map",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "select_initiative",
		Description: "Make one initiative the current selection",
	}, s.handleSelect)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "toggle_initiative",
		Description: "Add an initiative to the current selection, or remove it if present",
	}, s.handleToggle)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "history_back",
		Description: "Return to the previous selection",
	}, s.handleHistoryBack)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "history_forward",
		Description: "Move to the next selection",
	}, s.handleHistoryForward)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "current_selection",
		Description: "Describe the current selection and history position",
	}, s.handleCurrentSelection)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, SearchOutput{}, fmt.Errorf("query: %w", domain.ErrInvalidInput)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	results, err := s.ports.Dataset.Search(ctx, input.Query, domain.SearchOptions{Limit: limit})
	if err != nil {
		return nil, SearchOutput{}, err
	}

	return nil, SearchOutput{
		Results: toOutputs(results),
		Count:   len(results),
	}, nil
}

// handleSelect handles the select_initiative tool invocation.
func (s *Server) handleSelect(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SelectInput,
) (*mcp.CallToolResult, SelectionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	initiative, err := s.lookup(ctx, input.ID)
	if err != nil {
		return nil, SelectionOutput{}, err
	}

	switch input.Mode {
	case "", modeClick:
		err = s.ports.Interactions.ClickInitiative(initiative, input.SidebarWidth)
	case modeMarker:
		err = s.ports.Interactions.SelectMarker(initiative)
	default:
		return nil, SelectionOutput{}, fmt.Errorf("mode %q: %w", input.Mode, domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, SelectionOutput{}, err
	}

	return nil, s.selection(), nil
}

// handleToggle handles the toggle_initiative tool invocation.
func (s *Server) handleToggle(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ToggleInput,
) (*mcp.CallToolResult, SelectionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	initiative, err := s.lookup(ctx, input.ID)
	if err != nil {
		return nil, SelectionOutput{}, err
	}
	if err := s.ports.Interactions.ToggleMarker(initiative); err != nil {
		return nil, SelectionOutput{}, err
	}

	return nil, s.selection(), nil
}

// handleHistoryBack handles the history_back tool invocation.
func (s *Server) handleHistoryBack(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	moved := s.ports.Sidebar.Back()
	return nil, HistoryOutput{Moved: moved, Selection: s.selection()}, nil
}

// handleHistoryForward handles the history_forward tool invocation.
func (s *Server) handleHistoryForward(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	moved := s.ports.Sidebar.Forward()
	return nil, HistoryOutput{Moved: moved, Selection: s.selection()}, nil
}

// handleCurrentSelection handles the current_selection tool invocation.
func (s *Server) handleCurrentSelection(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, SelectionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return nil, s.selection(), nil
}

func (s *Server) lookup(ctx context.Context, id string) (*domain.Initiative, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id: %w", domain.ErrInvalidInput)
	}
	initiative, err := s.ports.Dataset.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("initiative %q: %w", id, err)
	}
	return initiative, nil
}

// selection snapshots the sidebar. Callers hold mu.
func (s *Server) selection() SelectionOutput {
	items, index := s.ports.Sidebar.History()
	out := SelectionOutput{
		Kind:         "none",
		Initiatives:  []InitiativeOutput{},
		Position:     index + 1,
		Depth:        len(items),
		CanGoBack:    s.ports.Sidebar.CanGoBack(),
		CanGoForward: s.ports.Sidebar.CanGoForward(),
	}

	if current, ok := s.ports.Sidebar.Current(); ok {
		out.Kind = current.Kind().String()
		out.Query, _ = current.Query()
		out.Initiatives = toOutputs(current.Initiatives())
	}
	if s.ports.Markers != nil {
		out.SelectedMarkers = s.ports.Markers.Selected()
	}
	return out
}

func toOutputs(initiatives []*domain.Initiative) []InitiativeOutput {
	out := make([]InitiativeOutput, 0, len(initiatives))
	for _, in := range initiatives {
		if in != nil {
			out = append(out, toOutput(in))
		}
	}
	return out
}

func toOutput(in *domain.Initiative) InitiativeOutput {
	out := InitiativeOutput{
		ID:         in.ID,
		Name:       in.Name,
		Homepage:   in.Homepage,
		Postcode:   in.Postcode,
		Geolocated: in.HasGeoLocation(),
	}
	if out.Geolocated {
		out.Lat = in.Lat
		out.Lng = in.Lng
	}
	return out
}
