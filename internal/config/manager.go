package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// viperConfigManager implements ConfigManager using Viper.
type viperConfigManager struct {
	configPath string
	config     *Config
	viper      *viper.Viper
	watchChan  chan Config
}

// Load loads configuration from all sources.
func (m *viperConfigManager) Load(ctx context.Context) error {
	m.viper = viper.New()

	m.viper.SetConfigFile(m.configPath)
	m.viper.SetConfigType("yaml")

	m.viper.SetEnvPrefix("ADBOT")
	m.viper.AutomaticEnv()
	m.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	m.setDefaults()

	// The config file is optional; defaults plus environment variables are a
	// complete configuration on their own.
	if err := m.viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Use defaults.
		} else if os.IsNotExist(err) {
			// Use defaults.
		} else {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := m.unmarshalConfig(); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.applyEnvOverrides()

	return nil
}

// Get returns the current configuration.
func (m *viperConfigManager) Get(ctx context.Context) *Config {
	return m.config
}

// Validate validates configuration is correct and complete.
func (m *viperConfigManager) Validate(ctx context.Context) error {
	errs := m.config.Validate()
	if len(errs) > 0 {
		var errMsgs []string
		for _, err := range errs {
			errMsgs = append(errMsgs, err.Error())
		}
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errMsgs, "\n  - "))
	}
	return nil
}

// Watch watches for configuration changes and reloads.
func (m *viperConfigManager) Watch(ctx context.Context) <-chan Config {
	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		if err := m.unmarshalConfig(); err != nil {
			return
		}
		m.applyEnvOverrides()
		select {
		case m.watchChan <- *m.config:
		default:
			// Channel full, skip this update.
		}
	})

	return m.watchChan
}

// Reload reloads configuration from sources.
func (m *viperConfigManager) Reload(ctx context.Context) error {
	if err := m.viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := m.unmarshalConfig(); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.applyEnvOverrides()

	return nil
}

// setDefaults sets default values in viper.
func (m *viperConfigManager) setDefaults() {
	defaults := DefaultConfig()

	// Server defaults
	m.viper.SetDefault("server.host", defaults.Server.Host)
	m.viper.SetDefault("server.port", defaults.Server.Port)
	m.viper.SetDefault("server.allowed_origins", defaults.Server.AllowedOrigins)

	// Upstream defaults
	m.viper.SetDefault("upstream.endpoint", defaults.Upstream.Endpoint)
	m.viper.SetDefault("upstream.api_key", defaults.Upstream.APIKey)
	m.viper.SetDefault("upstream.timeout_seconds", defaults.Upstream.TimeoutSeconds)

	// Quota defaults
	m.viper.SetDefault("quota.max_requests", defaults.Quota.MaxRequests)
	m.viper.SetDefault("quota.window_seconds", defaults.Quota.WindowSeconds)

	// Fallback defaults
	m.viper.SetDefault("fallback.delay_ms", defaults.Fallback.DelayMS)

	// Leads defaults
	m.viper.SetDefault("leads.db_path", defaults.Leads.DBPath)

	// Logging defaults
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file_path", defaults.Logging.FilePath)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// unmarshalConfig unmarshals viper config into the Config struct.
func (m *viperConfigManager) unmarshalConfig() error {
	cfg := &Config{}

	// Server
	cfg.Server.Host = m.viper.GetString("server.host")
	cfg.Server.Port = m.viper.GetInt("server.port")
	cfg.Server.AllowedOrigins = m.viper.GetStringSlice("server.allowed_origins")

	// Upstream
	cfg.Upstream.Endpoint = m.viper.GetString("upstream.endpoint")
	cfg.Upstream.APIKey = m.viper.GetString("upstream.api_key")
	cfg.Upstream.TimeoutSeconds = m.viper.GetInt("upstream.timeout_seconds")

	// Quota
	cfg.Quota.MaxRequests = m.viper.GetInt("quota.max_requests")
	cfg.Quota.WindowSeconds = m.viper.GetInt("quota.window_seconds")

	// Fallback
	cfg.Fallback.DelayMS = m.viper.GetInt("fallback.delay_ms")

	// Leads
	cfg.Leads.DBPath = m.viper.GetString("leads.db_path")

	// Logging
	cfg.Logging.Level = m.viper.GetString("logging.level")
	cfg.Logging.Format = m.viper.GetString("logging.format")
	cfg.Logging.FilePath = m.viper.GetString("logging.file_path")
	cfg.Logging.MaxSizeMB = m.viper.GetInt("logging.max_size_mb")
	cfg.Logging.MaxBackups = m.viper.GetInt("logging.max_backups")
	cfg.Logging.MaxAgeDays = m.viper.GetInt("logging.max_age_days")
	cfg.Logging.Compress = m.viper.GetBool("logging.compress")

	m.config = cfg
	return nil
}

// applyEnvOverrides applies environment variable overrides for sensitive data.
func (m *viperConfigManager) applyEnvOverrides() {
	// Upstream API key from environment
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		m.config.Upstream.APIKey = apiKey
	}

	// Upstream endpoint from environment
	if endpoint := os.Getenv("ADBOT_UPSTREAM_ENDPOINT"); endpoint != "" {
		m.config.Upstream.Endpoint = endpoint
	}

	// Port from environment, only override if explicitly set
	if portEnv := os.Getenv("ADBOT_SERVER_PORT"); portEnv != "" {
		m.config.Server.Port = m.viper.GetInt("server.port")
	}

	// Leads database path from environment
	if dbPath := os.Getenv("ADBOT_LEADS_DB_PATH"); dbPath != "" {
		m.config.Leads.DBPath = dbPath
	}
}
