// Package config provides configuration management for the chat gateway.
//
// Responsibilities:
//   - Load configuration from YAML files and environment variables
//   - Validate configuration on startup
//   - Provide runtime access to all configuration
//   - Support configuration reloading (for some settings)
//   - Manage sensitive data (the upstream API key)
//   - Establish reasonable defaults
//
// Configuration sources (priority order, high to low):
//  1. Environment variables (ADBOT_* prefix, GEMINI_API_KEY)
//  2. YAML config file (default: /etc/adbot/config.yaml)
//  3. Built-in defaults
//
// Main configuration sections:
//
//  1. Server
//     - host: Bind address (default 0.0.0.0)
//     - port: Listen port (default 8080)
//     - allowed_origins: Origins permitted to open WebSocket connections
//
//  2. Upstream
//     - endpoint: Generation API URL
//     - api_key: API key (prefer GEMINI_API_KEY env var)
//     - timeout_seconds: Per-call timeout
//
//  3. Quota
//     - max_requests: Upstream calls admitted per window (default 10)
//     - window_seconds: Window length (default 60)
//
//  4. Fallback
//     - delay_ms: Simulated think time for knowledge-base answers
//
//  5. Leads
//     - db_path: SQLite file for captured demo requests
//
//  6. Logging
//     - level: "debug" | "info" | "warn" | "error"
//     - format: "json" | "text"
//     - file_path, max_size_mb, max_backups, max_age_days, compress: rotation
package config

import "context"

// Config contains all configuration fields.
type Config struct {
	// Server configuration
	Server struct {
		Host string
		Port int
		// AllowedOrigins is a list of origins permitted to open WebSocket
		// connections. Use ["*"] to allow any origin (development only).
		AllowedOrigins []string
	}

	// Upstream generation API configuration
	Upstream struct {
		Endpoint       string
		APIKey         string
		TimeoutSeconds int
	}

	// Quota configuration for upstream admission
	Quota struct {
		MaxRequests   int
		WindowSeconds int
	}

	// Fallback responder configuration
	Fallback struct {
		DelayMS int
	}

	// Leads storage configuration
	Leads struct {
		DBPath string
	}

	// Logging configuration
	Logging struct {
		Level      string
		Format     string
		FilePath   string
		MaxSizeMB  int
		MaxBackups int
		MaxAgeDays int
		Compress   bool
	}
}

// ConfigManager defines the interface for configuration access.
type ConfigManager interface {
	// Load loads configuration from all sources.
	Load(ctx context.Context) error

	// Get returns the current configuration.
	Get(ctx context.Context) *Config

	// Validate validates configuration is correct and complete.
	Validate(ctx context.Context) error

	// Watch watches for configuration changes and reloads (if supported).
	Watch(ctx context.Context) <-chan Config

	// Reload reloads configuration from sources.
	Reload(ctx context.Context) error
}

// NewConfigManager creates a new configuration manager.
func NewConfigManager(configPath string) (ConfigManager, error) {
	mgr := &viperConfigManager{
		configPath: configPath,
		config:     DefaultConfig(),
		watchChan:  make(chan Config, 1),
	}
	return mgr, nil
}

// NewConfigManagerWithDefaults creates a config manager with the default
// config path.
func NewConfigManagerWithDefaults() (ConfigManager, error) {
	return NewConfigManager("/etc/adbot/config.yaml")
}
