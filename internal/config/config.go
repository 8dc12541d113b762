package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"post-service/internal/infrastructure"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string

	// Global request throttle for the HTTP server.
	RateLimitRPS   int
	RateLimitBurst int

	// Per-subject fixed window for post creation.
	CreatePostWindow time.Duration
	CreatePostMax    int

	Auth AuthConfig
}

// AuthConfig describes the external OpenID Connect provider the session
// resolver verifies tokens against.
type AuthConfig struct {
	ProviderID   string
	Issuer       string
	ClientID     string
	ClientSecret string
	DiscoveryURL string
	Scope        string
}

// Load reads configuration from the environment, with an optional .env file.
// A missing DATABASE_URL is a startup error: the process cannot serve any
// request without a storage connection.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             infrastructure.GetEnvAsString("PORT", "8080"),
		DatabaseURL:      infrastructure.GetEnvAsString("DATABASE_URL", ""),
		RedisURL:         infrastructure.GetEnvAsString("REDIS_URL", ""),
		RateLimitRPS:     infrastructure.GetEnvAsInt("RATE_LIMIT_RPS", 100),
		RateLimitBurst:   infrastructure.GetEnvAsInt("RATE_LIMIT_BURST", 200),
		CreatePostWindow: infrastructure.GetEnvAsDuration("CREATE_POST_WINDOW", time.Minute),
		CreatePostMax:    infrastructure.GetEnvAsInt("CREATE_POST_MAX", 30),
		Auth: AuthConfig{
			ProviderID:   infrastructure.GetEnvAsString("AUTH_PROVIDER_ID", "oidc"),
			Issuer:       infrastructure.GetEnvAsString("AUTH_ISSUER", ""),
			ClientID:     infrastructure.GetEnvAsString("AUTH_CLIENT_ID", ""),
			ClientSecret: infrastructure.GetEnvAsString("AUTH_CLIENT_SECRET", ""),
			DiscoveryURL: infrastructure.GetEnvAsString("AUTH_DISCOVERY_URL", ""),
			Scope:        infrastructure.GetEnvAsString("AUTH_SCOPE", "openid profile email"),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is missing")
	}

	return cfg, nil
}
