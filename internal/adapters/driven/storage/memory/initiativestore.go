package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/ports/driven"
)

// Ensure InitiativeStore implements the interface.
var _ driven.InitiativeStore = (*InitiativeStore)(nil)

// InitiativeStore is an in-memory implementation of driven.InitiativeStore.
type InitiativeStore struct {
	mu          sync.RWMutex
	initiatives map[string]*domain.Initiative
}

// NewInitiativeStore creates a new in-memory initiative store.
func NewInitiativeStore() *InitiativeStore {
	return &InitiativeStore{
		initiatives: make(map[string]*domain.Initiative),
	}
}

// SaveAll stores or updates the given initiatives.
func (s *InitiativeStore) SaveAll(_ context.Context, initiatives []*domain.Initiative) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, in := range initiatives {
		if in == nil || in.ID == "" {
			return domain.ErrInvalidInput
		}
		stored := *in
		s.initiatives[in.ID] = &stored
	}
	return nil
}

// ReplaceAll swaps the stored dataset for initiatives. A rejected
// initiative leaves the previous dataset in place.
func (s *InitiativeStore) ReplaceAll(_ context.Context, initiatives []*domain.Initiative) error {
	next := make(map[string]*domain.Initiative, len(initiatives))
	for _, in := range initiatives {
		if in == nil || in.ID == "" {
			return domain.ErrInvalidInput
		}
		stored := *in
		next[in.ID] = &stored
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.initiatives = next
	return nil
}

// Get retrieves an initiative by ID.
func (s *InitiativeStore) Get(_ context.Context, id string) (*domain.Initiative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	in, ok := s.initiatives[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return in, nil
}

// List returns every initiative ordered by name.
func (s *InitiativeStore) List(_ context.Context) ([]*domain.Initiative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*domain.Initiative, 0, len(s.initiatives))
	for _, in := range s.initiatives {
		result = append(result, in)
	}
	sortByName(result)
	return result, nil
}

// Search returns initiatives whose name or postcode contains the text.
func (s *InitiativeStore) Search(ctx context.Context, text string, limit int) ([]*domain.Initiative, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(text))
	result := make([]*domain.Initiative, 0)
	for _, in := range all {
		if limit > 0 && len(result) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(in.Name), needle) ||
			strings.Contains(strings.ToLower(in.Postcode), needle) {
			result = append(result, in)
		}
	}
	return result, nil
}

// Count returns the number of stored initiatives.
func (s *InitiativeStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.initiatives), nil
}

// Clear removes every initiative.
func (s *InitiativeStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initiatives = make(map[string]*domain.Initiative)
	return nil
}

func sortByName(initiatives []*domain.Initiative) {
	sort.Slice(initiatives, func(i, j int) bool {
		a, b := strings.ToLower(initiatives[i].Name), strings.ToLower(initiatives[j].Name)
		if a != b {
			return a < b
		}
		return initiatives[i].ID < initiatives[j].ID
	})
}
