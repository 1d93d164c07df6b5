package config

import (
	"os"
	"strings"
	"time"
)

// Environment variable names recognized by the server.
const (
	envServerAddress  = "SERVER_ADDRESS"
	envDatabaseDSN    = "DATABASE_DSN"
	envSecretKey      = "JWT_SECRET_KEY"
	envTokenValidity  = "JWT_TOKEN_VALIDITY"
	envAllowedOrigins = "ALLOWED_ORIGINS"
)

// parseEnv overlays configuration from environment variables. Values set in
// the environment win over defaults and the JSON file but lose to flags.
// ALLOWED_ORIGINS is a comma-separated list; JWT_TOKEN_VALIDITY accepts
// time.ParseDuration syntax ("24h").
func parseEnv(config *Config) {
	if v := os.Getenv(envServerAddress); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv(envDatabaseDSN); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv(envSecretKey); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv(envTokenValidity); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv(envAllowedOrigins); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				origins = append(origins, s)
			}
		}
		if len(origins) > 0 {
			config.AllowedOrigins = origins
		}
	}
}
