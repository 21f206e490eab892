package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/ports/driven"
	"github.com/custodia-labs/seamap/internal/core/ports/driving"
	"github.com/custodia-labs/seamap/internal/logger"
)

// Ensure DatasetService implements the interface.
var _ driving.DatasetService = (*DatasetService)(nil)

// DatasetService loads initiatives from the store and announces them on the
// bus. It plays the part of the asynchronous data and search collaborators:
// results reach the presenters only through bus events.
type DatasetService struct {
	bus    *EventBus
	store  driven.InitiativeStore
	source driven.InitiativeSource
}

// NewDatasetService creates a new dataset service.
// The source is optional and only needed for Import.
func NewDatasetService(bus *EventBus, store driven.InitiativeStore, source driven.InitiativeSource) *DatasetService {
	return &DatasetService{
		bus:    bus,
		store:  store,
		source: source,
	}
}

// Load publishes every stored initiative followed by a dataset-loaded event.
func (s *DatasetService) Load(ctx context.Context) (int, error) {
	logger.Section("Dataset Load")
	if s.store == nil {
		return 0, domain.ErrDatasetUnavailable
	}

	initiatives, err := s.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing initiatives: %w", err)
	}

	var located []*domain.Initiative
	for _, initiative := range initiatives {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		Publish(s.bus, domain.TopicInitiativeNew, initiative)
		if initiative.HasGeoLocation() {
			located = append(located, initiative)
		}
	}

	bounds, ok := domain.BoundsOf(located)
	Publish(s.bus, domain.TopicDatasetLoaded, domain.DatasetLoaded{
		Count:     len(initiatives),
		Bounds:    bounds,
		HasBounds: ok,
	})

	logger.Info("Loaded %d initiatives (%d geolocated)", len(initiatives), len(located))
	return len(initiatives), nil
}

// Search finds initiatives matching the text and publishes them as search
// results. An empty query publishes nothing and returns no results.
func (s *DatasetService) Search(
	ctx context.Context, text string, opts domain.SearchOptions,
) ([]*domain.Initiative, error) {
	logger.Section("Search")
	logger.Debug("Query: %q", text)
	if s.store == nil {
		return nil, domain.ErrDatasetUnavailable
	}

	query := strings.TrimSpace(text)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []*domain.Initiative{}, nil
	}

	results, err := s.store.Search(ctx, query, max(opts.Limit, 0))
	if err != nil {
		return nil, fmt.Errorf("searching initiatives: %w", err)
	}
	if results == nil {
		results = []*domain.Initiative{}
	}
	logger.Debug("Found %d results", len(results))

	Publish(s.bus, domain.TopicSearchResults, domain.SearchResults{
		Results: results,
		Text:    query,
	})
	return results, nil
}

// Get retrieves an initiative by ID.
func (s *DatasetService) Get(ctx context.Context, id string) (*domain.Initiative, error) {
	if s.store == nil {
		return nil, domain.ErrDatasetUnavailable
	}
	return s.store.Get(ctx, id)
}

// Import replaces the stored dataset with the source's initiatives.
// A failed read or save leaves the previous dataset in place.
func (s *DatasetService) Import(ctx context.Context) (int, error) {
	logger.Section("Dataset Import")
	if s.store == nil || s.source == nil {
		return 0, domain.ErrDatasetUnavailable
	}

	initiatives, err := s.source.ReadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading dataset: %w", err)
	}
	if err := s.store.ReplaceAll(ctx, initiatives); err != nil {
		return 0, fmt.Errorf("saving dataset: %w", err)
	}

	logger.Info("Imported %d initiatives", len(initiatives))
	return len(initiatives), nil
}
