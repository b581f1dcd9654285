package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BIOMIND_ADDR", ":9090")
	t.Setenv("BIOMIND_JWT_SECRET", "test-secret")
	t.Setenv("BIOMIND_TOKEN_TTL", "2h")
	t.Setenv("BIOMIND_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("BIOMIND_LLM_PROVIDER", "mock")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	require.Len(t, cfg.CORSOrigins, 2)
	assert.Equal(t, "https://b.example", cfg.CORSOrigins[1])
	assert.Equal(t, "mock", cfg.LLM.Provider)
}

func TestLoad_BadTTLFallsBack(t *testing.T) {
	t.Setenv("BIOMIND_TOKEN_TTL", "not-a-duration")

	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}
