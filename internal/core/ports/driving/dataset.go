package driving

import (
	"context"

	"github.com/custodia-labs/seamap/internal/core/domain"
)

// DatasetService gives external actors access to the initiative dataset.
type DatasetService interface {
	// Load announces every stored initiative on the event bus, followed by
	// a dataset-loaded event. Returns the number of initiatives announced.
	Load(ctx context.Context) (int, error)

	// Search finds initiatives matching the text and publishes them as
	// search results.
	Search(ctx context.Context, text string, opts domain.SearchOptions) ([]*domain.Initiative, error)

	// Get retrieves an initiative by ID.
	Get(ctx context.Context, id string) (*domain.Initiative, error)

	// Import replaces the stored dataset with the initiatives from the source.
	Import(ctx context.Context) (int, error)
}
