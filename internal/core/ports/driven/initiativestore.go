package driven

import (
	"context"

	"github.com/custodia-labs/seamap/internal/core/domain"
)

// InitiativeStore persists the initiative dataset.
type InitiativeStore interface {
	// SaveAll stores or updates the given initiatives.
	SaveAll(ctx context.Context, initiatives []*domain.Initiative) error

	// Get retrieves an initiative by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Initiative, error)

	// List returns every initiative ordered by name.
	List(ctx context.Context) ([]*domain.Initiative, error)

	// Search returns initiatives whose name or postcode contains the text,
	// case-insensitively, ordered by name. A limit of zero means no limit.
	Search(ctx context.Context, text string, limit int) ([]*domain.Initiative, error)

	// Count returns the number of stored initiatives.
	Count(ctx context.Context) (int, error)

	// Clear removes every initiative.
	Clear(ctx context.Context) error

	// ReplaceAll swaps the whole dataset for the given initiatives.
	// It either succeeds completely or leaves the stored dataset unchanged.
	ReplaceAll(ctx context.Context, initiatives []*domain.Initiative) error
}

// InitiativeSource reads initiatives from an external dataset file.
type InitiativeSource interface {
	// ReadAll returns every initiative in the source.
	ReadAll(ctx context.Context) ([]*domain.Initiative, error)
}
