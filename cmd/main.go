package main

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"github.com/tripdesk/concierge/internal/config"
	"github.com/tripdesk/concierge/internal/domain"
	"github.com/tripdesk/concierge/internal/http"
	"github.com/tripdesk/concierge/internal/http/middleware"
	"github.com/tripdesk/concierge/internal/observability"
	"github.com/tripdesk/concierge/internal/provider/gemini"
	"github.com/tripdesk/concierge/internal/provider/openai"
	"github.com/tripdesk/concierge/internal/provider/registry"
	"github.com/tripdesk/concierge/internal/userconfig/redis"
)

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *http.Server) {
		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// User-configuration store
	if err := container.Provide(func(cfg *config.RedisConfig) *goredis.Client {
		return goredis.NewClient(&goredis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}); err != nil {
		log.Fatalf("Failed to provide redis client: %v", err)
	}
	if err := container.Provide(func(client *goredis.Client) domain.UserConfigStore {
		return redis.NewStore(client)
	}); err != nil {
		log.Fatalf("Failed to provide user config store: %v", err)
	}

	// Provider Registry
	if err := container.Provide(func() domain.ProviderRegistry {
		return registry.NewRegistry()
	}); err != nil {
		log.Fatalf("Failed to provide registry: %v", err)
	}

	// Providers. Both families are registered even without a system key,
	// because per-user keys can still arrive at request time.
	if err := container.Provide(func(cfg *openai.Config) *openai.Provider {
		return openai.NewProvider(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide chat-completions provider: %v", err)
	}
	if err := container.Provide(func(cfg *gemini.Config) *gemini.Provider {
		return gemini.NewProvider(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide generate-content provider: %v", err)
	}

	// Register providers with registry (invoked for side effects)
	if err := container.Invoke(func(
		reg domain.ProviderRegistry,
		openaiProvider *openai.Provider,
		geminiProvider *gemini.Provider,
	) error {
		ctx := context.Background()

		if err := reg.Register(ctx, openaiProvider); err != nil {
			return fmt.Errorf("failed to register chat-completions provider: %w", err)
		}
		if err := reg.Register(ctx, geminiProvider); err != nil {
			return fmt.Errorf("failed to register generate-content provider: %w", err)
		}

		return nil
	}); err != nil {
		log.Fatalf("Failed to register providers: %v", err)
	}

	// Domain Services
	if err := container.Provide(func(
		reg domain.ProviderRegistry,
		store domain.UserConfigStore,
		cfg *config.Config,
	) *domain.ConciergeService {
		return domain.NewConciergeService(reg, store, domain.Defaults{
			Model:           cfg.Concierge.DefaultModel,
			FallbackProfile: cfg.Concierge.FallbackProfile,
			OpenAIKey:       cfg.OpenAI.APIKey,
			GeminiKey:       cfg.Gemini.APIKey,
		})
	}); err != nil {
		log.Fatalf("Failed to provide concierge service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
