// Package mcp provides an MCP (Model Context Protocol) server adapter for seamap.
// It lets AI assistants search initiatives and drive the map selection.
package mcp

import "errors"

// ErrMissingDatasetService is returned when the dataset service is not provided.
var ErrMissingDatasetService = errors.New("mcp: dataset service is required")

// ErrMissingSidebarPresenter is returned when the sidebar presenter is not provided.
var ErrMissingSidebarPresenter = errors.New("mcp: sidebar presenter is required")

// ErrMissingInteractionService is returned when the interaction service is not provided.
var ErrMissingInteractionService = errors.New("mcp: interaction service is required")
