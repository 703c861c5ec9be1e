package openai_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tripdesk/concierge/internal/domain"
	"github.com/tripdesk/concierge/internal/provider/openai"
)

func TestNewProvider(t *testing.T) {
	t.Run("with system key", func(t *testing.T) {
		provider := openai.NewProvider(openai.Config{
			APIKey:  "sk-test",
			BaseURL: "https://api.openai.com/v1",
			Timeout: 60,
		})

		require.NotNil(t, provider)
		require.Equal(t, domain.FamilyOpenAI, provider.Family())
	})

	t.Run("without system key", func(t *testing.T) {
		// Per-user keys arrive at request time, so construction succeeds.
		provider := openai.NewProvider(openai.Config{})

		require.NotNil(t, provider)
	})
}

func TestProvider_Generate_NilRequest(t *testing.T) {
	provider := openai.NewProvider(openai.Config{APIKey: "sk-test"})

	text, err := provider.Generate(context.Background(), nil)

	require.Error(t, err)
	require.Empty(t, text)
	require.Contains(t, err.Error(), "request cannot be nil")
}
