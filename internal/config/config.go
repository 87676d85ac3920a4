// Package config provides centralized configuration management for the notes API.
// It loads configuration from CLI flags and environment variables, validates
// required fields, and provides sensible defaults.
//
// Environment variables follow the deployment contract: DATABASE_URL selects
// the SQLite database, LISTEN_ADDR the bind address, CORS_ALLOWED_ORIGINS the
// browser origins allowed to call the API.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultListenAddr  = ":3001"
	defaultDatabaseURL = "sqlite:///./notes.db"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	ListenAddr      string
	ShutdownTimeout time.Duration

	// Database
	DatabaseURL  string // As given (may carry a sqlite:// scheme)
	DatabasePath string // Normalized filesystem path or DSN handed to the driver

	// CORS
	CORSAllowedOrigins string // Comma-separated; "*" allows any origin
}

// ValidationError represents a configuration validation error with multiple issues.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// ParseFlags parses CLI flags and returns them. Call before LoadConfig.
// This registers and parses the --addr and --db flags.
func ParseFlags() (addr, databaseURL string) {
	flag.StringVar(&addr, "addr", "", "Listen address (default :3001, overrides LISTEN_ADDR env var)")
	flag.StringVar(&databaseURL, "db", "", "Database URL or path (overrides DATABASE_URL env var)")
	flag.Parse()
	return addr, databaseURL
}

// LoadConfig loads configuration from environment variables and CLI flag values.
// Non-empty addr and databaseURL flags override the corresponding env vars.
func LoadConfig(addr, databaseURL string) (*Config, error) {
	cfg := &Config{}

	// Server settings
	cfg.ListenAddr = getEnvOrDefault("LISTEN_ADDR", defaultListenAddr)
	if addr != "" {
		cfg.ListenAddr = addr
	}
	cfg.ShutdownTimeout = parseDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	// Database
	cfg.DatabaseURL = getEnvOrDefault("DATABASE_URL", defaultDatabaseURL)
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	cfg.DatabasePath = databasePathFromURL(cfg.DatabaseURL)

	// CORS
	cfg.CORSAllowedOrigins = getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// databasePathFromURL normalizes a SQLAlchemy-style sqlite URL into the path
// form the driver expects. "sqlite:///./notes.db" becomes "./notes.db",
// "sqlite:////data/notes.db" becomes "/data/notes.db". Plain paths, file: DSNs
// and ":memory:" pass through unchanged.
func databasePathFromURL(url string) string {
	trimmed := strings.TrimSpace(url)
	rest, ok := strings.CutPrefix(trimmed, "sqlite://")
	if !ok {
		return trimmed
	}
	rest = strings.TrimPrefix(rest, "/")
	if rest == "" {
		return ":memory:"
	}
	return rest
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.ListenAddr) == "" {
		errs = append(errs, "LISTEN_ADDR must not be empty")
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		errs = append(errs, "DATABASE_URL must name a database path (e.g. sqlite:///./notes.db)")
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, "SHUTDOWN_TIMEOUT must be positive")
	}
	if len(c.CORSOrigins()) == 0 {
		errs = append(errs, "CORS_ALLOWED_ORIGINS must list at least one origin or be *")
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}

// CORSOrigins returns the allowed origins as a cleaned slice.
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// PrintStartupSummary prints a human-readable summary of the configuration to stderr.
func (c *Config) PrintStartupSummary() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "notes-api server starting...")
	fmt.Fprintf(os.Stderr, "  Listen:   %s\n", c.ListenAddr)
	fmt.Fprintf(os.Stderr, "  Database: %s\n", c.DatabasePath)
	fmt.Fprintf(os.Stderr, "  CORS:     %s\n", strings.Join(c.CORSOrigins(), ", "))
	fmt.Fprintln(os.Stderr, "")
}

// Helper functions for parsing environment variables

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// MustLoadConfig loads configuration and panics if validation fails.
// Use this in main() when you want the application to fail fast on bad config.
func MustLoadConfig(addr, databaseURL string) *Config {
	cfg, err := LoadConfig(addr, databaseURL)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			panic(fmt.Sprintf("Configuration validation failed:\n  - %s", strings.Join(validationErr.Errors, "\n  - ")))
		}
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}
	return cfg
}
