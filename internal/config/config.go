// Package config loads runtime configuration from the environment. The .env
// file, when present, is folded in by the command entry point before Load
// runs.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for the API server.
type Config struct {
	Port               int
	CORSAllowedOrigins []string

	GoogleAPIKey string

	AdzunaAppID   string
	AdzunaAppKey  string
	AdzunaCountry string

	ArtifactsDir string

	LogJSON  bool
	LogDebug bool
}

// Load reads environment variables and returns a validated Config. The
// generative API key is required; Adzuna credentials are optional and leave
// job search disabled when absent.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("PORT", 8000)
	v.SetDefault("ADZUNA_COUNTRY", "us")
	v.SetDefault("ARTIFACTS_DIR", "ml_model/artifacts")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_JSON", false)
	v.SetDefault("LOG_DEBUG", false)

	for _, key := range []string{
		"PORT", "GOOGLE_API_KEY",
		"ADZUNA_APP_ID", "ADZUNA_APP_KEY", "ADZUNA_COUNTRY",
		"ARTIFACTS_DIR", "CORS_ALLOWED_ORIGINS",
		"LOG_JSON", "LOG_DEBUG",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	apiKey := v.GetString("GOOGLE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY is required")
	}

	port := v.GetInt("PORT")
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("PORT must be a valid port number, got %d", port)
	}

	return &Config{
		Port:               port,
		CORSAllowedOrigins: splitOrigins(v.GetString("CORS_ALLOWED_ORIGINS")),
		GoogleAPIKey:       apiKey,
		AdzunaAppID:        v.GetString("ADZUNA_APP_ID"),
		AdzunaAppKey:       v.GetString("ADZUNA_APP_KEY"),
		AdzunaCountry:      v.GetString("ADZUNA_COUNTRY"),
		ArtifactsDir:       v.GetString("ARTIFACTS_DIR"),
		LogJSON:            v.GetBool("LOG_JSON"),
		LogDebug:           v.GetBool("LOG_DEBUG"),
	}, nil
}

// JobSearchEnabled reports whether provider credentials are configured.
func (c *Config) JobSearchEnabled() bool {
	return c.AdzunaAppID != "" && c.AdzunaAppKey != ""
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
