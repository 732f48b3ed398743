package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed for %s: %s", e.Field, e.Message)
}

// Validate validates the configuration and returns validation errors.
func (c *Config) Validate() []error {
	var errs []error

	// Validate server configuration
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, &ValidationError{
			Field:   "server.port",
			Message: fmt.Sprintf("port must be between 1 and 65535, got %d", c.Server.Port),
		})
	}

	if c.Server.Host == "" {
		errs = append(errs, &ValidationError{
			Field:   "server.host",
			Message: "host is required",
		})
	}

	// Validate upstream configuration
	if c.Upstream.APIKey == "" {
		errs = append(errs, &ValidationError{
			Field:   "upstream.api_key",
			Message: "API key is required (set GEMINI_API_KEY)",
		})
	}

	if c.Upstream.Endpoint == "" {
		errs = append(errs, &ValidationError{
			Field:   "upstream.endpoint",
			Message: "endpoint is required",
		})
	} else if u, err := url.Parse(c.Upstream.Endpoint); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "upstream.endpoint",
			Message: fmt.Sprintf("invalid endpoint URL: %v", err),
		})
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, &ValidationError{
			Field:   "upstream.endpoint",
			Message: fmt.Sprintf("endpoint scheme must be http or https, got '%s'", u.Scheme),
		})
	}

	if c.Upstream.TimeoutSeconds < 1 {
		errs = append(errs, &ValidationError{
			Field:   "upstream.timeout_seconds",
			Message: fmt.Sprintf("timeout must be at least 1 second, got %d", c.Upstream.TimeoutSeconds),
		})
	}

	// Validate quota configuration
	if c.Quota.MaxRequests < 1 {
		errs = append(errs, &ValidationError{
			Field:   "quota.max_requests",
			Message: fmt.Sprintf("max_requests must be at least 1, got %d", c.Quota.MaxRequests),
		})
	}

	if c.Quota.WindowSeconds < 1 {
		errs = append(errs, &ValidationError{
			Field:   "quota.window_seconds",
			Message: fmt.Sprintf("window_seconds must be at least 1, got %d", c.Quota.WindowSeconds),
		})
	}

	// Validate fallback configuration
	if c.Fallback.DelayMS < 0 {
		errs = append(errs, &ValidationError{
			Field:   "fallback.delay_ms",
			Message: fmt.Sprintf("delay_ms cannot be negative, got %d", c.Fallback.DelayMS),
		})
	}

	// Validate leads configuration
	if c.Leads.DBPath == "" {
		errs = append(errs, &ValidationError{
			Field:   "leads.db_path",
			Message: "db_path is required",
		})
	}

	// Validate logging configuration
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, &ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid log level '%s', must be one of: debug, info, warn, error", c.Logging.Level),
		})
	}

	validLogFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validLogFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, &ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid log format '%s', must be one of: json, text", c.Logging.Format),
		})
	}

	if c.Logging.MaxSizeMB < 0 {
		errs = append(errs, &ValidationError{
			Field:   "logging.max_size_mb",
			Message: fmt.Sprintf("max_size_mb cannot be negative, got %d", c.Logging.MaxSizeMB),
		})
	}

	return errs
}
