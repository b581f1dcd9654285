// Package config loads server configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"biomind/internal/llm"
)

const (
	defaultAddr      = ":8000"
	defaultJWTSecret = "biomind-secret-key-change-in-production"
	defaultTokenTTL  = 24 * time.Hour
)

// Config holds everything the server needs to start.
type Config struct {
	// Addr is the listen address. Env: BIOMIND_ADDR.
	Addr string

	// JWTSecret signs access tokens. Env: BIOMIND_JWT_SECRET.
	JWTSecret string

	// TokenTTL is the access token lifetime. Env: BIOMIND_TOKEN_TTL
	// (Go duration syntax, e.g. "24h").
	TokenTTL time.Duration

	// CORSOrigins lists allowed origins. Env: BIOMIND_CORS_ORIGINS,
	// comma separated. Empty means allow all.
	CORSOrigins []string

	// LLM configures the model provider.
	LLM llm.Config
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables win over it.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:      defaultAddr,
		JWTSecret: defaultJWTSecret,
		TokenTTL:  defaultTokenTTL,
		LLM:       llm.ConfigFromEnv(),
	}

	if v := os.Getenv("BIOMIND_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("BIOMIND_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("BIOMIND_TOKEN_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil && ttl > 0 {
			cfg.TokenTTL = ttl
		}
	}
	if v := os.Getenv("BIOMIND_CORS_ORIGINS"); v != "" {
		for _, origin := range strings.Split(v, ",") {
			if o := strings.TrimSpace(origin); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg
}
