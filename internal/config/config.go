// Package config loads the service configuration from environment
// variables, reading a .env file first when one exists.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Server
	Port int
	Env  string // development, staging, production

	// SQLite file backing settings, custom holidays and the fallback cache.
	DatabasePath string

	// Write routes accept either key. APIKeyHash is an encoded argon2id
	// hash so the plain key need not live in the environment.
	APIKey     string
	APIKeyHash string

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text

	// Remote source for jurisdictions without a builtin calculator.
	FallbackBaseURL  string
	FallbackTimeout  time.Duration
	FallbackCacheTTL time.Duration
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// DefaultDatabasePath is used when DATABASE_PATH is unset.
const DefaultDatabasePath = "./data/worldcal.db"

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	// A missing .env file is fine; production sets variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnvInt("PORT", 8080),
		Env:          getEnv("ENV", EnvDevelopment),
		DatabasePath: getEnv("DATABASE_PATH", DefaultDatabasePath),

		APIKey:     getEnv("API_KEY", ""),
		APIKeyHash: getEnv("API_KEY_HASH", ""),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),

		FallbackBaseURL:  strings.TrimRight(getEnv("FALLBACK_BASE_URL", ""), "/"),
		FallbackTimeout:  getEnvDuration("FALLBACK_TIMEOUT", 10*time.Second),
		FallbackCacheTTL: getEnvDuration("FALLBACK_CACHE_TTL", 24*time.Hour),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	if c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required"))
	}

	if c.Env == EnvProduction && !c.HasAPIKey() {
		errs = append(errs, errors.New("API_KEY or API_KEY_HASH is required in production"))
	}
	if c.APIKeyHash != "" && !strings.HasPrefix(c.APIKeyHash, "$argon2id$") {
		errs = append(errs, errors.New("API_KEY_HASH must be an argon2id hash ($argon2id$...)"))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if c.FallbackBaseURL != "" {
		u, err := url.Parse(c.FallbackBaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("FALLBACK_BASE_URL must be an absolute http(s) URL, got %q", c.FallbackBaseURL))
		}
	}
	if c.FallbackTimeout <= 0 {
		errs = append(errs, fmt.Errorf("FALLBACK_TIMEOUT must be positive, got %s", c.FallbackTimeout))
	}
	if c.FallbackCacheTTL < 0 {
		errs = append(errs, fmt.Errorf("FALLBACK_CACHE_TTL must not be negative, got %s", c.FallbackCacheTTL))
	}

	return errors.Join(errs...)
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// HasAPIKey reports whether write routes are protected.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != "" || c.APIKeyHash != ""
}

// HasFallback reports whether a fallback source is configured.
func (c *Config) HasFallback() bool {
	return c.FallbackBaseURL != ""
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration reads a Go duration string. Unparsable values yield -1 so
// Validate reports them instead of silently using the default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return -1
	}
	return d
}
