package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/seamap/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for seamap resources.
	uriScheme = "seamap://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "selection",
		Name:        "selection",
		Description: "The current sidebar selection and history position",
		MIMEType:    mimeJSON,
	}, s.handleSelectionResource)

	if s.ports.Map != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + "map",
			Name:        "map",
			Description: "Marker layers, open tooltip and current view of the map",
			MIMEType:    mimeJSON,
		}, s.handleMapResource)
	}

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "initiatives/{id}",
		Name:        "initiative",
		Description: "A single initiative",
		MIMEType:    mimeJSON,
	}, s.handleInitiativeResource)
}

// handleSelectionResource returns the current selection.
func (s *Server) handleSelectionResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	selection := s.selection()
	s.mu.Unlock()

	return jsonResource(req.Params.URI, selection)
}

// handleMapResource returns the state of the headless map.
func (s *Server) handleMapResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Map == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	s.mu.Lock()
	state := s.ports.Map.State()
	s.mu.Unlock()

	return jsonResource(req.Params.URI, state)
}

// handleInitiativeResource returns one initiative by ID.
func (s *Server) handleInitiativeResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractInitiativeID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	initiative, err := s.ports.Dataset.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting initiative: %w", err)
	}

	return jsonResource(req.Params.URI, toOutput(initiative))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractInitiativeID extracts the ID from a URI like seamap://initiatives/{id}.
func extractInitiativeID(uri string) string {
	const prefix = uriScheme + "initiatives/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
