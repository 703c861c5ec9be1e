package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tripdesk/concierge/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 90, cfg.Server.WriteTimeout)
		require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
		require.False(t, cfg.CORS.AllowCredentials)
		require.Equal(t, "localhost:6379", cfg.Redis.Addr)
		require.Equal(t, "gpt-4o-mini", cfg.Concierge.DefaultModel)
		require.Equal(t, "default", cfg.Concierge.FallbackProfile)
		require.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
		require.Equal(t, 60, cfg.OpenAI.Timeout)
		require.Empty(t, cfg.OpenAI.APIKey)
		require.Equal(t, "https://generativelanguage.googleapis.com", cfg.Gemini.BaseURL)
		require.Equal(t, 60, cfg.Gemini.Timeout)
		require.Empty(t, cfg.Gemini.APIKey)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("REDIS_ADDR", "redis.internal:6380")
		t.Setenv("CONCIERGE_DEFAULT_MODEL", "gemini-flash")
		t.Setenv("CONCIERGE_FALLBACK_PROFILE", "trial")
		t.Setenv("OPENAI_API_KEY", "sk-test-key")
		t.Setenv("GEMINI_API_KEY", "gm-test-key")
		t.Setenv("GEMINI_TIMEOUT", "120")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
		require.Equal(t, "gemini-flash", cfg.Concierge.DefaultModel)
		require.Equal(t, "trial", cfg.Concierge.FallbackProfile)
		require.Equal(t, "sk-test-key", cfg.OpenAI.APIKey)
		require.Equal(t, "gm-test-key", cfg.Gemini.APIKey)
		require.Equal(t, 120, cfg.Gemini.Timeout)
	})
}
