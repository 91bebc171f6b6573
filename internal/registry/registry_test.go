package registry

import (
	"bytes"
	"testing"

	"github.com/devklg/complete-agentic-project-1/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegistryGetAndList(t *testing.T) {
	reg := New(domain.DefaultRoster(), zap.NewNop(), domain.WithOutput(&bytes.Buffer{}))

	agent, err := reg.Get("elena-backend-api")
	require.NoError(t, err)
	assert.Equal(t, "elena-backend-api", agent.Name)
	assert.Equal(t, domain.StatusInitialized, agent.ReportStatus().Status)

	agents := reg.List()
	require.Len(t, agents, 8)

	// List preserves roster order.
	names := reg.Names()
	for i, a := range agents {
		assert.Equal(t, names[i], a.Name)
	}
}

func TestRegistryUnknownAgent(t *testing.T) {
	reg := New(domain.DefaultRoster(), zap.NewNop())

	_, err := reg.Get("ghost")
	require.ErrorIs(t, err, ErrAgentNotFound)
}

func TestRegistryEmptyRoster(t *testing.T) {
	reg := New(nil, zap.NewNop())

	agents := reg.List()
	require.NotNil(t, agents)
	assert.Empty(t, agents)
}

func TestRegistryDuplicateNameKeepsFirst(t *testing.T) {
	specs := []domain.Spec{
		{Name: "maya-viral", Description: "first"},
		{Name: "maya-viral", Description: "second"},
	}
	reg := New(specs, zap.NewNop(), domain.WithOutput(&bytes.Buffer{}))

	require.Len(t, reg.List(), 1)
	agent, err := reg.Get("maya-viral")
	require.NoError(t, err)
	assert.Equal(t, "first", agent.Description)
}
