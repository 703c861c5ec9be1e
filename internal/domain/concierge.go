package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tripdesk/concierge/internal/observability"
)

// Defaults carries the system-wide concierge configuration the resolver
// falls back to when neither the user nor the fallback profile provide a
// value. Passed in explicitly at construction; the pipeline never reads
// ambient environment state.
type Defaults struct {
	Model           string
	FallbackProfile string
	OpenAIKey       string
	GeminiKey       string
}

// ConciergeService orchestrates one concierge turn: validate, resolve
// configuration, classify, invoke a provider and extract the suggestion.
// It is stateless across requests; concurrent turns share nothing mutable.
type ConciergeService struct {
	registry ProviderRegistry
	store    UserConfigStore
	defaults Defaults
}

// NewConciergeService creates a new concierge service (DI constructor).
func NewConciergeService(registry ProviderRegistry, store UserConfigStore, defaults Defaults) *ConciergeService {
	return &ConciergeService{
		registry: registry,
		store:    store,
		defaults: defaults,
	}
}

// resolution is the per-request outcome of the configuration fallback chain.
type resolution struct {
	ref                ModelRef
	apiKey             string
	customInstructions string
	altKey             string // key for the alternate family, empty when unavailable
}

// Handle runs the full pipeline for one utterance and returns the result.
// Only input errors, configuration errors and a primary provider failure
// that also exhausted its fallback surface as errors; every other failure
// mode degrades to a best-effort textual reply.
func (s *ConciergeService) Handle(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	res, err := s.resolveConfig(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	intent := Classify(req.Prompt)
	ctx = observability.WithIntent(ctx, string(intent))
	logger := observability.FromContext(ctx)
	logger.Info("utterance classified",
		zap.String("model", res.ref.ProviderModelID),
		zap.String("family", string(res.ref.Family)))

	// Greetings are answered from a template, no provider round-trip.
	if intent == IntentGreeting {
		reply := GreetingReply(req.TripContext, req.Style)
		return newChatResult(reply, reply, nil), nil
	}

	systemPrompt := BuildSystemPrompt(intent, res.customInstructions, req.Style)
	messages := BuildMessages(systemPrompt, req.ConversationHistory, req.Prompt, req.TripContext)

	rawText, primaryErr := s.invoke(ctx, res.ref, res.apiKey, messages, OutputBudget(intent))
	if primaryErr != nil || strings.TrimSpace(rawText) == "" {
		if primaryErr != nil {
			logger.Warn("primary provider call failed", zap.Error(primaryErr))
		} else {
			logger.Warn("primary provider returned empty output")
		}

		// One-shot degraded retry against the other family. The error
		// return is discarded on purpose: a failed fallback is the same
		// as no fallback being available.
		fallbackText, fallbackErr := s.invokeFallback(ctx, res, req)
		if fallbackErr != nil {
			logger.Warn("fallback provider call failed", zap.Error(fallbackErr))
			fallbackText = ""
		}

		if strings.TrimSpace(fallbackText) != "" {
			rawText = fallbackText
			primaryErr = nil
		}

		if primaryErr != nil {
			return nil, primaryErr
		}
	}

	extraction := Extract(ctx, rawText, intent, req.TripContext)
	return newChatResult(extraction.CleanText, rawText, extraction.StructuredData), nil
}

// resolveConfig walks the configuration fallback chain: user-specific
// config, then the named fallback profile, then the system defaults. Store
// failures other than a miss degrade to the next level so a flaky store
// never takes the chat down.
func (s *ConciergeService) resolveConfig(ctx context.Context, userID string) (*resolution, error) {
	logger := observability.FromContext(ctx)

	var userCfg *UserConfig
	if userID != "" {
		cfg, err := s.store.Lookup(ctx, userID)
		switch {
		case err == nil:
			userCfg = cfg
		case errors.Is(err, ErrConfigNotFound):
		default:
			logger.Warn("user config lookup failed, falling back", zap.Error(err))
		}
	}

	if userCfg == nil && s.defaults.FallbackProfile != "" {
		cfg, err := s.store.LookupProfile(ctx, s.defaults.FallbackProfile)
		switch {
		case err == nil:
			userCfg = cfg
		case errors.Is(err, ErrConfigNotFound):
		default:
			logger.Warn("profile config lookup failed, falling back", zap.Error(err))
		}
	}

	model := s.defaults.Model
	var userKey, instructions string
	if userCfg != nil {
		if userCfg.Model != "" {
			model = userCfg.Model
		}
		userKey = userCfg.APIKey
		instructions = userCfg.CustomInstructions
	}

	ref, err := ResolveModel(model)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCredentials, err)
	}

	apiKey := userKey
	if apiKey == "" {
		apiKey = s.systemKey(ref.Family)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoCredentials, ref.Family)
	}

	return &resolution{
		ref:                ref,
		apiKey:             apiKey,
		customInstructions: instructions,
		altKey:             s.systemKey(AlternateFamily(ref.Family)),
	}, nil
}

func (s *ConciergeService) systemKey(family ProviderFamily) string {
	switch family {
	case FamilyOpenAI:
		return s.defaults.OpenAIKey
	case FamilyGemini:
		return s.defaults.GeminiKey
	}
	return ""
}

func (s *ConciergeService) invoke(
	ctx context.Context,
	ref ModelRef,
	apiKey string,
	messages []Message,
	budget int,
) (string, error) {
	provider, err := s.registry.Get(ctx, ref.Family)
	if err != nil {
		return "", fmt.Errorf("provider not available: %w", err)
	}

	return provider.Generate(ctx, &ProviderRequest{
		Model:           ref.ProviderModelID,
		APIKey:          apiKey,
		Messages:        messages,
		MaxOutputTokens: budget,
	})
}

// invokeFallback retries once against the alternate family with a generic
// general-intent prompt and its budget.
func (s *ConciergeService) invokeFallback(ctx context.Context, res *resolution, req *ChatRequest) (string, error) {
	if res.altKey == "" {
		return "", fmt.Errorf("%w: %s", ErrNoCredentials, AlternateFamily(res.ref.Family))
	}

	family := AlternateFamily(res.ref.Family)
	ref := ModelRef{Family: family, ProviderModelID: DefaultModelID(family)}

	systemPrompt := BuildSystemPrompt(IntentGeneral, res.customInstructions, req.Style)
	messages := BuildMessages(systemPrompt, req.ConversationHistory, req.Prompt, req.TripContext)

	return s.invoke(ctx, ref, res.altKey, messages, OutputBudget(IntentGeneral))
}

func newChatResult(text, fullResponse string, structured map[string]any) *ChatResult {
	return &ChatResult{
		GeneratedText:   text,
		FullResponse:    fullResponse,
		GeneratedImages: []string{},
		StructuredData:  structured,
	}
}
