package config

import "github.com/admybrand/adbot-gateway/internal/llm/gemini"

// DefaultConfig returns a configuration with all default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	// Server defaults
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

	// Upstream defaults
	cfg.Upstream.Endpoint = gemini.DefaultEndpoint
	cfg.Upstream.APIKey = ""
	cfg.Upstream.TimeoutSeconds = 30

	// Quota defaults
	cfg.Quota.MaxRequests = 10
	cfg.Quota.WindowSeconds = 60

	// Fallback defaults
	cfg.Fallback.DelayMS = 1000

	// Leads defaults
	cfg.Leads.DBPath = "/var/lib/adbot/leads.db"

	// Logging defaults
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
	cfg.Logging.FilePath = ""
	cfg.Logging.MaxSizeMB = 100
	cfg.Logging.MaxBackups = 10
	cfg.Logging.MaxAgeDays = 30
	cfg.Logging.Compress = true

	return cfg
}
