// Package redis implements the user-configuration store on Redis. Records
// are flat JSON documents written by the account surface; this side only
// reads them.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tripdesk/concierge/internal/domain"
)

const keyPrefix = "concierge"

// Store implements domain.UserConfigStore backed by Redis.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis user-configuration store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Lookup returns the configuration for a user, or domain.ErrConfigNotFound.
func (s *Store) Lookup(ctx context.Context, userID string) (*domain.UserConfig, error) {
	if userID == "" {
		return nil, errors.New("user id cannot be empty")
	}
	return s.fetch(ctx, fmt.Sprintf("%s:user:%s", keyPrefix, userID))
}

// LookupProfile returns a named fallback profile, or domain.ErrConfigNotFound.
func (s *Store) LookupProfile(ctx context.Context, name string) (*domain.UserConfig, error) {
	if name == "" {
		return nil, errors.New("profile name cannot be empty")
	}
	return s.fetch(ctx, fmt.Sprintf("%s:profile:%s", keyPrefix, name))
}

func (s *Store) fetch(ctx context.Context, key string) (*domain.UserConfig, error) {
	raw, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrConfigNotFound
		}
		return nil, fmt.Errorf("config lookup failed: %w", err)
	}

	var cfg domain.UserConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, fmt.Errorf("malformed config record at %s: %w", key, err)
	}

	return &cfg, nil
}
