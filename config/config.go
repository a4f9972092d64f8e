package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weatherdash.app/errors"
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Database  DatabaseConfig  `split_words:"true"`
	Weather   WeatherConfig   `split_words:"true"`
	Cache     CacheConfig     `split_words:"true"`
	Geocoder  GeocoderConfig  `split_words:"true"`
	Scheduler SchedulerConfig `split_words:"true"`
	Dashboard DashboardConfig `split_words:"true"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// DatabaseConfig contains search-history database settings. The sqlite
// driver is the default for a single-user dashboard; postgres is
// available for shared deployments.
type DatabaseConfig struct {
	Driver   string `envconfig:"DB_DRIVER" default:"sqlite"`
	Path     string `envconfig:"DB_PATH" default:"weatherdash.db"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"weatherdash"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

// GetDSN returns a formatted postgres connection string
func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// WeatherConfig contains settings for the weather API provider
type WeatherConfig struct {
	APIKey            string  `envconfig:"WEATHER_API_KEY" required:"true"`
	BaseURL           string  `envconfig:"WEATHER_API_BASE_URL" default:"https://api.weatherapi.com/v1"`
	CacheTTLMinutes   int     `envconfig:"WEATHER_CACHE_TTL_MINUTES" default:"10"`
	EnableLogging     bool    `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	RequestsPerSecond float64 `envconfig:"WEATHER_REQUESTS_PER_SECOND" default:"5"`
	Burst             int     `envconfig:"WEATHER_BURST" default:"10"`
}

// CacheConfig selects and configures the forecast cache backend
type CacheConfig struct {
	Enabled       bool   `envconfig:"CACHE_ENABLED" default:"true"`
	Type          string `envconfig:"CACHE_TYPE" default:"memory"`
	RedisAddr     string `envconfig:"CACHE_REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"CACHE_REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"CACHE_REDIS_DB" default:"0"`
}

// GeocoderConfig contains settings for address-to-coordinate resolution
type GeocoderConfig struct {
	APIKey string `envconfig:"GEOCODER_API_KEY" default:""`
}

// SchedulerConfig contains settings for background maintenance jobs
type SchedulerConfig struct {
	PruneIntervalMinutes int `envconfig:"HISTORY_PRUNE_INTERVAL" default:"60"`
}

// DashboardConfig contains display-side defaults
type DashboardConfig struct {
	HoursPerPage    int `envconfig:"HOURS_PER_PAGE" default:"5"`
	HistoryTTLHours int `envconfig:"SEARCH_HISTORY_TTL_HOURS" default:"24"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	if err := c.Dashboard.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

// Validate checks database configuration
func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite":
		if d.Path == "" {
			return errors.NewConfigurationError("DB_PATH cannot be empty", nil)
		}
	case "postgres":
		if d.Host == "" {
			return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
		}
		if d.Port < 1 || d.Port > 65535 {
			return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
		}
		if d.User == "" {
			return errors.NewConfigurationError("DB_USER cannot be empty", nil)
		}
		if d.Name == "" {
			return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
		}
		if err := d.ValidateSSLMode(); err != nil {
			return err
		}
	default:
		return errors.NewConfigurationError("DB_DRIVER must be either sqlite or postgres", nil)
	}
	return nil
}

// ValidateSSLMode validates the SSL mode configuration
func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

// Validate checks weather API configuration
func (w *WeatherConfig) Validate() error {
	if w.APIKey == "" {
		return errors.NewConfigurationError("WEATHER_API_KEY is required", nil)
	}
	if w.BaseURL == "" {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.CacheTTLMinutes < 1 {
		return errors.NewConfigurationError("WEATHER_CACHE_TTL_MINUTES must be at least 1 minute", nil)
	}
	if w.RequestsPerSecond < 0 {
		return errors.NewConfigurationError("WEATHER_REQUESTS_PER_SECOND cannot be negative", nil)
	}
	return nil
}

// Validate checks cache configuration
func (c *CacheConfig) Validate() error {
	if c.Type != "memory" && c.Type != "redis" {
		return errors.NewConfigurationError("CACHE_TYPE must be either memory or redis", nil)
	}
	if c.Type == "redis" && c.RedisAddr == "" {
		return errors.NewConfigurationError("CACHE_REDIS_ADDR cannot be empty", nil)
	}
	return nil
}

// Validate checks scheduler configuration
func (s *SchedulerConfig) Validate() error {
	if s.PruneIntervalMinutes < 1 {
		return errors.NewConfigurationError("HISTORY_PRUNE_INTERVAL must be at least 1 minute", nil)
	}
	if s.PruneIntervalMinutes > 1440 {
		return errors.NewConfigurationError("HISTORY_PRUNE_INTERVAL cannot exceed 1440 minutes (24 hours)", nil)
	}
	return nil
}

// Validate checks dashboard configuration
func (d *DashboardConfig) Validate() error {
	if d.HoursPerPage < 1 {
		return errors.NewConfigurationError("HOURS_PER_PAGE must be at least 1", nil)
	}
	if d.HistoryTTLHours < 1 {
		return errors.NewConfigurationError("SEARCH_HISTORY_TTL_HOURS must be at least 1 hour", nil)
	}
	return nil
}
