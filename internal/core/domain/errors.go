package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedPayload indicates an event payload is missing required data.
	// Presenters log and drop such events rather than failing.
	ErrMalformedPayload = errors.New("malformed event payload")

	// ErrAlreadyRegistered indicates a marker already exists for an initiative.
	ErrAlreadyRegistered = errors.New("marker already registered")

	// ErrNoGeoLocation indicates an initiative has no usable coordinates.
	ErrNoGeoLocation = errors.New("initiative has no geolocation")

	// ErrDatasetUnavailable indicates no initiative store is configured.
	ErrDatasetUnavailable = errors.New("dataset unavailable")
)
