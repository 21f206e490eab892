package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/services"
)

func TestNewServer(t *testing.T) {
	t.Run("missing dataset service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingDatasetService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ts := newTestSession(t)
		assert.NotNil(t, ts.server)
	})
}

func TestPorts_Validate(t *testing.T) {
	bus := services.NewEventBus()
	sidebar := services.NewSidebarPresenter(bus, nil, domain.DefaultAppSettings().Map)
	interactions := services.NewInteractionService(bus)

	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{"empty", &Ports{}, ErrMissingDatasetService},
		{"missing sidebar", &Ports{Dataset: &mockDatasetService{}}, ErrMissingSidebarPresenter},
		{"missing interactions", &Ports{Dataset: &mockDatasetService{}, Sidebar: sidebar}, ErrMissingInteractionService},
		{"required only", &Ports{Dataset: &mockDatasetService{}, Sidebar: sidebar, Interactions: interactions}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
