package domain

import "context"

// Provider represents one LLM provider family behind the normalized
// request shape.
type Provider interface {
	// Generate sends a provider request and returns the raw reply text.
	// An empty string with a nil error means the provider answered with
	// no content; the orchestrator decides what to do about that.
	Generate(ctx context.Context, req *ProviderRequest) (string, error)

	// Family returns the provider family identifier.
	Family() ProviderFamily
}

// ProviderRegistry manages available provider adapters, keyed by family.
type ProviderRegistry interface {
	// Register adds a provider to the registry.
	Register(ctx context.Context, provider Provider) error

	// Get retrieves the provider for a family.
	Get(ctx context.Context, family ProviderFamily) (Provider, error)
}

// UserConfigStore is a read-only lookup of per-user concierge configuration.
type UserConfigStore interface {
	// Lookup returns the configuration for a user, or ErrConfigNotFound.
	Lookup(ctx context.Context, userID string) (*UserConfig, error)

	// LookupProfile returns a named fallback profile, or ErrConfigNotFound.
	LookupProfile(ctx context.Context, name string) (*UserConfig, error)
}
