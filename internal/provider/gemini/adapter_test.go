package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tripdesk/concierge/internal/domain"
)

func newTestProvider(url string) *Provider {
	return NewProvider(Config{BaseURL: url, Timeout: 5})
}

func TestGenerate(t *testing.T) {
	var gotRequest generateRequest
	var gotURL string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))

		resp := generateResponse{
			Candidates: []candidate{
				{Content: content{Role: "model", Parts: []part{{Text: "Roma é incrível!"}}}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)

	text, err := provider.Generate(context.Background(), &domain.ProviderRequest{
		Model:  "gemini-1.5-flash",
		APIKey: "gm-test",
		Messages: []domain.Message{
			{Role: "system", Content: "instruções"},
			{Role: "user", Content: "primeira pergunta"},
			{Role: "assistant", Content: "primeira resposta"},
			{Role: "user", Content: "segunda pergunta"},
		},
		MaxOutputTokens: 1200,
	})

	require.NoError(t, err)
	require.Equal(t, "Roma é incrível!", text)

	// Key travels as a query parameter.
	require.Contains(t, gotURL, "models/gemini-1.5-flash:generateContent")
	require.Contains(t, gotURL, "key=gm-test")

	// No system role: instructions are prepended to the first user turn,
	// assistant becomes model.
	require.Len(t, gotRequest.Contents, 3)
	require.Equal(t, "user", gotRequest.Contents[0].Role)
	require.Equal(t, "instruções\n\nprimeira pergunta", gotRequest.Contents[0].Parts[0].Text)
	require.Equal(t, "model", gotRequest.Contents[1].Role)
	require.Equal(t, "user", gotRequest.Contents[2].Role)

	require.Equal(t, 1200, gotRequest.GenerationConfig.MaxOutputTokens)
}

func TestGenerate_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)

	_, err := provider.Generate(context.Background(), &domain.ProviderRequest{
		Model:    "gemini-1.5-flash",
		APIKey:   "gm-test",
		Messages: []domain.Message{{Role: "user", Content: "oi"}},
	})

	var providerErr *domain.ProviderError
	require.ErrorAs(t, err, &providerErr)
	require.Equal(t, domain.FamilyGemini, providerErr.Family)
	require.Equal(t, http.StatusTooManyRequests, providerErr.StatusCode)
	require.Contains(t, providerErr.Body, "quota exceeded")
}

func TestGenerate_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(generateResponse{})
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)

	text, err := provider.Generate(context.Background(), &domain.ProviderRequest{
		Model:    "gemini-1.5-flash",
		APIKey:   "gm-test",
		Messages: []domain.Message{{Role: "user", Content: "oi"}},
	})

	// Empty output is the orchestrator's problem, not an adapter error.
	require.NoError(t, err)
	require.Empty(t, text)
}

func TestGenerate_MissingAPIKey(t *testing.T) {
	provider := newTestProvider("http://localhost:1")

	_, err := provider.Generate(context.Background(), &domain.ProviderRequest{
		Model:    "gemini-1.5-flash",
		Messages: []domain.Message{{Role: "user", Content: "oi"}},
	})

	require.Error(t, err)
	require.Contains(t, err.Error(), "API key is required")
}

func TestMapContents_SystemOnly(t *testing.T) {
	contents := mapContents([]domain.Message{{Role: "system", Content: "instruções"}})

	require.Len(t, contents, 1)
	require.Equal(t, "user", contents[0].Role)
	require.Equal(t, "instruções", contents[0].Parts[0].Text)
}

func TestGenerate_NilRequest(t *testing.T) {
	provider := newTestProvider("http://localhost:1")

	_, err := provider.Generate(context.Background(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "request cannot be nil")
}
