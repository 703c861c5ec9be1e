package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tripdesk/concierge/internal/domain"
)

func TestResolveModel(t *testing.T) {
	t.Run("resolves marketing names through the alias table", func(t *testing.T) {
		ref, err := domain.ResolveModel("gpt-4o-mini")
		require.NoError(t, err)
		require.Equal(t, domain.FamilyOpenAI, ref.Family)
		require.Equal(t, "gpt-4o-mini-2024-07-18", ref.ProviderModelID)

		ref, err = domain.ResolveModel("gemini-flash")
		require.NoError(t, err)
		require.Equal(t, domain.FamilyGemini, ref.Family)
		require.Equal(t, "gemini-1.5-flash", ref.ProviderModelID)
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		ref, err := domain.ResolveModel("  GPT-4o  ")
		require.NoError(t, err)
		require.Equal(t, "gpt-4o-2024-08-06", ref.ProviderModelID)
	})

	t.Run("unknown names fall back to prefix rules", func(t *testing.T) {
		ref, err := domain.ResolveModel("gemini-3.0-ultra")
		require.NoError(t, err)
		require.Equal(t, domain.FamilyGemini, ref.Family)
		require.Equal(t, "gemini-3.0-ultra", ref.ProviderModelID)

		ref, err = domain.ResolveModel("gpt-5")
		require.NoError(t, err)
		require.Equal(t, domain.FamilyOpenAI, ref.Family)
	})

	t.Run("rejects unresolvable names", func(t *testing.T) {
		_, err := domain.ResolveModel("llama-70b")
		require.Error(t, err)

		_, err = domain.ResolveModel("")
		require.Error(t, err)
	})
}

func TestAlternateFamily(t *testing.T) {
	require.Equal(t, domain.FamilyGemini, domain.AlternateFamily(domain.FamilyOpenAI))
	require.Equal(t, domain.FamilyOpenAI, domain.AlternateFamily(domain.FamilyGemini))
}

func TestDefaultModelID(t *testing.T) {
	require.Equal(t, "gpt-4o-mini-2024-07-18", domain.DefaultModelID(domain.FamilyOpenAI))
	require.Equal(t, "gemini-1.5-flash", domain.DefaultModelID(domain.FamilyGemini))
}
