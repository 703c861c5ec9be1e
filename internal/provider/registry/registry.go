package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tripdesk/concierge/internal/domain"
)

// Registry implements the ProviderRegistry interface, keyed by family.
type Registry struct {
	mu        sync.RWMutex
	providers map[domain.ProviderFamily]domain.Provider
}

// NewRegistry creates a new provider registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:        sync.RWMutex{},
		providers: make(map[domain.ProviderFamily]domain.Provider),
	}
}

// Register adds a provider to the registry.
func (r *Registry) Register(_ context.Context, provider domain.Provider) error {
	if provider == nil {
		return errors.New("provider cannot be nil")
	}

	family := provider.Family()
	if family == "" {
		return errors.New("provider family cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[family]; exists {
		return fmt.Errorf("provider family %s already registered", family)
	}

	r.providers[family] = provider
	return nil
}

// Get retrieves the provider for a family.
func (r *Registry) Get(_ context.Context, family domain.ProviderFamily) (domain.Provider, error) {
	if family == "" {
		return nil, errors.New("provider family cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[family]
	if !exists {
		return nil, fmt.Errorf("provider family %s not found", family)
	}

	return provider, nil
}
