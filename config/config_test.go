package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Database: DatabaseConfig{
			Driver: "sqlite",
			Path:   "weatherdash.db",
		},
		Weather: WeatherConfig{
			APIKey:            "test-key",
			BaseURL:           "https://api.weatherapi.com/v1",
			CacheTTLMinutes:   10,
			RequestsPerSecond: 5,
			Burst:             10,
		},
		Cache:     CacheConfig{Type: "memory"},
		Scheduler: SchedulerConfig{PruneIntervalMinutes: 60},
		Dashboard: DashboardConfig{HoursPerPage: 5, HistoryTTLHours: 24},
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	os.Setenv("WEATHER_API_KEY", "env-key")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("CACHE_TYPE", "memory")
	defer func() {
		os.Unsetenv("WEATHER_API_KEY")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("CACHE_TYPE")
	}()

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Weather.APIKey)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "https://api.weatherapi.com/v1", cfg.Weather.BaseURL)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 5, cfg.Dashboard.HoursPerPage)
	assert.Equal(t, 24, cfg.Dashboard.HistoryTTLHours)
}

func TestLoadConfigMissingAPIKey(t *testing.T) {
	os.Unsetenv("WEATHER_API_KEY")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidateServerPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestValidateDatabaseDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "mysql"
	assert.Error(t, cfg.Validate())
}

func TestValidateSQLitePath(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Path = ""
	assert.Error(t, cfg.Validate())
}

func TestValidatePostgresSettings(t *testing.T) {
	cfg := validConfig()
	cfg.Database = DatabaseConfig{
		Driver:   "postgres",
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "postgres",
		Name:     "weatherdash",
		SSLMode:  "disable",
	}
	assert.NoError(t, cfg.Validate())

	cfg.Database.SSLMode = "invalid"
	assert.Error(t, cfg.Validate())

	cfg.Database.SSLMode = "disable"
	cfg.Database.Host = ""
	assert.Error(t, cfg.Validate())
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Driver:   "postgres",
		Host:     "db.example.com",
		Port:     5432,
		User:     "app",
		Password: "secret",
		Name:     "weatherdash",
		SSLMode:  "require",
	}

	dsn := db.GetDSN()
	assert.Contains(t, dsn, "host=db.example.com")
	assert.Contains(t, dsn, "dbname=weatherdash")
	assert.Contains(t, dsn, "sslmode=require")
}

func TestValidateWeatherConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Weather.BaseURL = "ftp://api.weatherapi.com"
	assert.Error(t, cfg.Validate())

	cfg.Weather.BaseURL = "https://api.weatherapi.com/v1"
	cfg.Weather.CacheTTLMinutes = 0
	assert.Error(t, cfg.Validate())

	cfg.Weather.CacheTTLMinutes = 10
	cfg.Weather.RequestsPerSecond = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateCacheType(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Type = "memcached"
	assert.Error(t, cfg.Validate())

	cfg.Cache.Type = "redis"
	cfg.Cache.RedisAddr = ""
	assert.Error(t, cfg.Validate())

	cfg.Cache.RedisAddr = "localhost:6379"
	assert.NoError(t, cfg.Validate())
}

func TestValidateSchedulerInterval(t *testing.T) {
	cfg := validConfig()
	cfg.Scheduler.PruneIntervalMinutes = 0
	assert.Error(t, cfg.Validate())

	cfg.Scheduler.PruneIntervalMinutes = 2000
	assert.Error(t, cfg.Validate())
}

func TestValidateDashboardConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Dashboard.HoursPerPage = 0
	assert.Error(t, cfg.Validate())

	cfg.Dashboard.HoursPerPage = 5
	cfg.Dashboard.HistoryTTLHours = 0
	assert.Error(t, cfg.Validate())
}
