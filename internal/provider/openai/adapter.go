// Package openai adapts the chat-completions provider family to the domain
// Provider interface using the official SDK. Model alias resolution happens
// upstream; this adapter receives provider-internal model identifiers only.
package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"

	"github.com/tripdesk/concierge/internal/domain"
	"github.com/tripdesk/concierge/internal/observability"
)

const defaultTimeoutSeconds = 60

// Provider implements domain.Provider for the chat-completions family.
type Provider struct {
	client  openai.Client
	timeout time.Duration
}

// NewProvider creates a new chat-completions provider. A missing system API
// key is not an error here: per-user keys can still arrive at request time.
func NewProvider(config Config) *Provider {
	opts := []option.RequestOption{}

	if config.APIKey != "" {
		opts = append(opts, option.WithAPIKey(config.APIKey))
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	return &Provider{
		client:  openai.NewClient(opts...),
		timeout: time.Duration(timeout) * time.Second,
	}
}

// Generate sends a completion request and returns the first choice's text.
// An empty choice list or empty content is returned as "" with a nil error;
// the orchestrator owns the fallback policy.
func (p *Provider) Generate(ctx context.Context, req *domain.ProviderRequest) (string, error) {
	if req == nil {
		return "", errors.New("request cannot be nil")
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	logger := observability.FromContext(ctx)
	logger.Debug("calling chat-completions API", zap.String("model", req.Model))

	params := toSDKParams(req)

	var callOpts []option.RequestOption
	if req.APIKey != "" {
		callOpts = append(callOpts, option.WithAPIKey(req.APIKey))
	}

	resp, err := p.client.Chat.Completions.New(ctx, params, callOpts...)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &domain.ProviderError{
				Family:     domain.FamilyOpenAI,
				StatusCode: apiErr.StatusCode,
				Body:       apiErr.RawJSON(),
			}
		}
		return "", fmt.Errorf("chat-completions call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		logger.Debug("chat-completions API returned no choices")
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}

// Family returns the provider family identifier.
func (p *Provider) Family() domain.ProviderFamily {
	return domain.FamilyOpenAI
}

// toSDKParams converts the normalized request to SDK ChatCompletionNewParams.
func toSDKParams(req *domain.ProviderRequest) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, len(req.Messages))
	for i, msg := range req.Messages {
		switch msg.Role {
		case "system":
			messages[i] = openai.SystemMessage(msg.Content)
		case "assistant":
			messages[i] = openai.AssistantMessage(msg.Content)
		default:
			messages[i] = openai.UserMessage(msg.Content)
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: messages,
	}

	if req.MaxOutputTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxOutputTokens))
	}

	return params
}
