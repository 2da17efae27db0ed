package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// unsetEnv removes keys for the test; t.Setenv restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "APP_PORT", "STORE_DRIVER", "LLM_PROVIDER", "CLIPBOARD_POLL_INTERVAL", "CLIPBOARD_ENABLED", "NATS_URL")

	cfg := Load()
	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "ollama", cfg.Ai.LLMProvider)
	assert.Equal(t, time.Second, cfg.Clipboard.PollInterval)
	assert.True(t, cfg.Clipboard.Enabled)
	assert.Empty(t, cfg.App.NatsURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("LLM_TIMEOUT", "30")
	t.Setenv("CLIPBOARD_POLL_INTERVAL", "250ms")
	t.Setenv("CLIPBOARD_ENABLED", "false")
	t.Setenv("GO_ENV", "production")

	cfg := Load()
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, "sk-test", cfg.APIKey())
	assert.Equal(t, 30*time.Second, cfg.Ai.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Clipboard.PollInterval)
	assert.False(t, cfg.Clipboard.Enabled)
	assert.True(t, cfg.IsProduction())
}

func TestEnvHelpersFallBackOnGarbage(t *testing.T) {
	t.Setenv("X_INT", "nope")
	t.Setenv("X_BOOL", "maybe")
	t.Setenv("X_DUR", "-5s")

	assert.Equal(t, 7, getEnvAsInt("X_INT", 7))
	assert.True(t, getEnvAsBool("X_BOOL", true))
	assert.Equal(t, time.Minute, getEnvAsDuration("X_DUR", time.Minute))
}
