package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tripdesk/concierge/internal/domain"
	"github.com/tripdesk/concierge/internal/provider/registry"
)

type stubProvider struct {
	family domain.ProviderFamily
}

func (s *stubProvider) Generate(_ context.Context, _ *domain.ProviderRequest) (string, error) {
	return "", nil
}

func (s *stubProvider) Family() domain.ProviderFamily {
	return s.family
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("registers and retrieves by family", func(t *testing.T) {
		reg := registry.NewRegistry()
		provider := &stubProvider{family: domain.FamilyOpenAI}

		require.NoError(t, reg.Register(ctx, provider))

		got, err := reg.Get(ctx, domain.FamilyOpenAI)
		require.NoError(t, err)
		require.Same(t, provider, got)
	})

	t.Run("rejects duplicate family", func(t *testing.T) {
		reg := registry.NewRegistry()
		require.NoError(t, reg.Register(ctx, &stubProvider{family: domain.FamilyGemini}))

		err := reg.Register(ctx, &stubProvider{family: domain.FamilyGemini})
		require.Error(t, err)
		require.Contains(t, err.Error(), "already registered")
	})

	t.Run("rejects nil provider", func(t *testing.T) {
		reg := registry.NewRegistry()
		require.Error(t, reg.Register(ctx, nil))
	})

	t.Run("unknown family is not found", func(t *testing.T) {
		reg := registry.NewRegistry()

		_, err := reg.Get(ctx, domain.FamilyGemini)
		require.Error(t, err)
		require.Contains(t, err.Error(), "not found")
	})

	t.Run("empty family is rejected", func(t *testing.T) {
		reg := registry.NewRegistry()

		_, err := reg.Get(ctx, "")
		require.Error(t, err)
	})
}
