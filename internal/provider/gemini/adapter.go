// Package gemini adapts the generate-content provider family to the domain
// Provider interface. The API has no system role, so system instructions are
// prepended to the first user message, and assistant turns are remapped to
// the model role. The API key travels as a query parameter, not a header.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tripdesk/concierge/internal/domain"
	"github.com/tripdesk/concierge/internal/observability"
)

const defaultTimeoutSeconds = 60

// Provider implements domain.Provider for the generate-content family.
type Provider struct {
	baseURL    string
	httpClient *http.Client
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens,omitempty"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// NewProvider creates a new generate-content provider.
func NewProvider(config Config) *Provider {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}

	return &Provider{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// Generate sends a generate-content request and returns the first
// candidate's first part. No candidates means empty output, not an error;
// the orchestrator owns the fallback policy.
func (p *Provider) Generate(ctx context.Context, req *domain.ProviderRequest) (string, error) {
	if req == nil {
		return "", errors.New("request cannot be nil")
	}
	if req.APIKey == "" {
		return "", errors.New("API key is required")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling generate-content API", zap.String("model", req.Model))

	body, err := json.Marshal(generateRequest{
		Contents: mapContents(req.Messages),
		GenerationConfig: generationConfig{
			MaxOutputTokens: req.MaxOutputTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		p.baseURL, url.PathEscape(req.Model), url.QueryEscape(req.APIKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("generate-content call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", &domain.ProviderError{
			Family:     domain.FamilyGemini,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var generateResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&generateResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(generateResp.Candidates) == 0 || len(generateResp.Candidates[0].Content.Parts) == 0 {
		logger.Debug("generate-content API returned no candidates")
		return "", nil
	}

	return generateResp.Candidates[0].Content.Parts[0].Text, nil
}

// Family returns the provider family identifier.
func (p *Provider) Family() domain.ProviderFamily {
	return domain.FamilyGemini
}

// mapContents converts normalized messages to the generate-content shape:
// system text is collected and prepended to the first user turn, assistant
// becomes model, user stays user.
func mapContents(messages []domain.Message) []content {
	var systemParts []string
	contents := make([]content, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case "system":
			systemParts = append(systemParts, msg.Content)
		case "assistant":
			contents = append(contents, content{Role: "model", Parts: []part{{Text: msg.Content}}})
		default:
			contents = append(contents, content{Role: "user", Parts: []part{{Text: msg.Content}}})
		}
	}

	if len(systemParts) == 0 {
		return contents
	}

	prefix := strings.Join(systemParts, "\n\n")
	for i := range contents {
		if contents[i].Role == "user" {
			contents[i].Parts[0].Text = prefix + "\n\n" + contents[i].Parts[0].Text
			return contents
		}
	}

	// No user turn to carry the system text, send it as one.
	return append([]content{{Role: "user", Parts: []part{{Text: prefix}}}}, contents...)
}
