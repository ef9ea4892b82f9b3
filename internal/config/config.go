package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/yt-insights/ytca/internal/analytics"
)

var (
	ErrMissingAPIKey = errors.New("YouTube API key is required")
)

// Config holds the application configuration
type Config struct {
	YouTubeAPIKey     string        `mapstructure:"youtube_api_key"`
	DBPath            string        `mapstructure:"db_path"`
	Port              string        `mapstructure:"port"`
	AllowedOrigins    []string      `mapstructure:"-"`
	DefaultMaxResults int           `mapstructure:"-"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	LogLevel          string        `mapstructure:"log_level"`
	LogFile           string        `mapstructure:"log_file"`
	LogMaxSizeMB      int           `mapstructure:"log_max_size_mb"`
	LogMaxBackups     int           `mapstructure:"log_max_backups"`
	LogMaxAgeInDays   int           `mapstructure:"log_max_age_days"`
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"http://localhost:3002",
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("allowed_origins", strings.Join(defaultOrigins, ","))
	v.SetDefault("default_max_results", analytics.DefaultMaxResults)
	v.SetDefault("request_timeout", "30s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_max_size_mb", 20)
	v.SetDefault("log_max_backups", 5)
	v.SetDefault("log_max_age_days", 30)

	v.BindEnv("youtube_api_key", "YOUTUBE_API_KEY")
	v.BindEnv("db_path", "DB_PATH")
	v.BindEnv("port", "PORT")
	v.BindEnv("allowed_origins", "ALLOWED_ORIGINS")
	v.BindEnv("default_max_results", "DEFAULT_MAX_RESULTS")
	v.BindEnv("request_timeout", "REQUEST_TIMEOUT")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("log_file", "LOG_FILE")
	v.BindEnv("log_max_size_mb", "LOG_MAX_SIZE_MB")
	v.BindEnv("log_max_backups", "LOG_MAX_BACKUPS")
	v.BindEnv("log_max_age_days", "LOG_MAX_AGE_DAYS")

	return v
}

// Load loads the configuration from environment variables. A .env file, if
// any, must already be loaded into the environment.
func Load() (*Config, error) {
	v := newViper()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	cfg.AllowedOrigins = splitList(v.GetString("allowed_origins"))
	cfg.DefaultMaxResults = parseMaxResults(v.GetString("default_max_results"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseMaxResults falls back to the default for anything that is not a
// positive integer.
func parseMaxResults(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return analytics.DefaultMaxResults
	}
	return analytics.ClampMaxResults(n)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("%w: YOUTUBE_API_KEY environment variable is not set", ErrMissingAPIKey)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

// RunLogEnabled reports whether a run log database is configured
func (c *Config) RunLogEnabled() bool {
	return c.DBPath != ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
