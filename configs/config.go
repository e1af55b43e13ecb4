package configs

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Dashboard DashboardConfig
	Log       LogConfig
}

// ServerConfig holds Mock Data API server configuration
type ServerConfig struct {
	Host string
	Port string
	Env  string
}

// DashboardConfig holds dashboard web shell configuration
type DashboardConfig struct {
	Host            string
	Port            string
	APIURL          string
	RefreshSchedule string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level      string
	FilePath   string // empty disables file logging
	MaxSize    int    // megabytes
	MaxBackups int
	MaxAge     int // days
}

// Addr returns the listen address of the API server
func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// Addr returns the listen address of the dashboard
func (c DashboardConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// IsDevelopment reports whether GO_ENV selects development mode
func (c ServerConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Load loads configuration from environment variables
func Load() *Config {
	return LoadFrom(newViper())
}

// LoadFrom builds a Config from an already-populated viper instance
func LoadFrom(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Host: v.GetString("HOST"),
			Port: v.GetString("PORT"),
			Env:  v.GetString("GO_ENV"),
		},
		Dashboard: DashboardConfig{
			Host:            v.GetString("DASHBOARD_HOST"),
			Port:            v.GetString("DASHBOARD_PORT"),
			APIURL:          strings.TrimRight(v.GetString("API_URL"), "/"),
			RefreshSchedule: v.GetString("REFRESH_SCHEDULE"),
		},
		Log: LogConfig{
			Level:      v.GetString("LOG_LEVEL"),
			FilePath:   v.GetString("LOG_FILE"),
			MaxSize:    v.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
			MaxAge:     v.GetInt("LOG_MAX_AGE_DAYS"),
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "5000")
	v.SetDefault("GO_ENV", "development")

	v.SetDefault("DASHBOARD_HOST", "0.0.0.0")
	v.SetDefault("DASHBOARD_PORT", "3000")
	v.SetDefault("API_URL", "http://localhost:5000")
	v.SetDefault("REFRESH_SCHEDULE", "@every 30s")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LOG_MAX_SIZE_MB", 100)
	v.SetDefault("LOG_MAX_BACKUPS", 7)
	v.SetDefault("LOG_MAX_AGE_DAYS", 30)
}
