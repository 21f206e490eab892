package tui

import "errors"

// ErrMissingDatasetService is returned when the dataset service is not provided.
var ErrMissingDatasetService = errors.New("tui: dataset service is required")

// ErrMissingSidebarPresenter is returned when the sidebar presenter is not provided.
var ErrMissingSidebarPresenter = errors.New("tui: sidebar presenter is required")

// ErrMissingInteractionService is returned when the interaction service is not provided.
var ErrMissingInteractionService = errors.New("tui: interaction service is required")

// ErrMissingMapCanvas is returned when the map canvas is not provided.
var ErrMissingMapCanvas = errors.New("tui: map canvas is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
