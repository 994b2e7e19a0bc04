// Package config loads service configuration from a YAML file with
// environment-variable overrides. Env names follow the original deployment
// (DATABASE_URL, LOG_LEVEL) so an existing .env keeps working.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	defaultServiceName       = "people-moves"
	defaultServiceVersion    = "1.0.0"
	defaultServicePort       = 8080
	defaultDatabaseURL       = "file:data/potm.db?_busy_timeout=5000"
	defaultFetchDays         = 7
	defaultMaxAgeDays        = 7
	defaultMaxPerSource      = 50
	defaultDedupWindowHours  = 24
	defaultConcurrency       = 4
	defaultRequestTimeoutSec = 30
	defaultHostRatePerSec    = 2.0
	defaultHostRateBurst     = 1
	defaultScanSchedule      = "0 */6 * * *"
	defaultLogLevel          = "info"
)

// Config holds all configuration for the service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Database DatabaseConfig `yaml:"database"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServiceConfig holds service-level settings.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `env:"PORT"       yaml:"port"`
	// VocabPath optionally points at a YAML vocabulary overlay.
	VocabPath string `env:"VOCAB_PATH" yaml:"vocab_path"`
	// ScanSchedule is a cron expression for periodic aggregation runs in
	// serve mode.
	ScanSchedule string `env:"SCAN_SCHEDULE" yaml:"scan_schedule"`
}

// DatabaseConfig holds database settings. URL accepts a SQLite file DSN or a
// postgres:// URL; the driver is picked from the scheme.
type DatabaseConfig struct {
	URL string `env:"DATABASE_URL" yaml:"url"`
}

// FetchConfig holds news aggregation settings.
type FetchConfig struct {
	// Days is how far back searches reach.
	Days int `env:"NEWS_FETCH_DAYS" yaml:"days"`
	// MaxAgeDays drops parsed articles older than this; zero disables.
	MaxAgeDays int `yaml:"max_age_days"`
	// MaxPerSource caps articles taken from one feed.
	MaxPerSource int `yaml:"max_per_source"`
	// DedupWindow is the rolling window for the person+company duplicate
	// check.
	DedupWindow time.Duration `yaml:"dedup_window"`
	// Concurrency bounds parallel per-company fetches.
	Concurrency int `yaml:"concurrency"`
	// RequestTimeout applies to each outbound HTTP request.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// HostRatePerSec and HostRateBurst throttle requests per feed host.
	HostRatePerSec float64 `yaml:"host_rate_per_sec"`
	HostRateBurst  int     `yaml:"host_rate_burst"`
	// NewsAPIKey enables the NewsAPI.org source; empty leaves it off.
	NewsAPIKey string `env:"NEWSAPI_KEY" yaml:"newsapi_key"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level       string `env:"LOG_LEVEL" yaml:"level"`
	Development bool   `yaml:"development"`
}

// Load reads configuration from path ("" skips the file), applies
// environment overrides, fills defaults and validates.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, unmarshalErr)
		}
	}

	applyEnv(cfg)
	setDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Service.Port = port
		}
	}
	if v := os.Getenv("VOCAB_PATH"); v != "" {
		cfg.Service.VocabPath = v
	}
	if v := os.Getenv("SCAN_SCHEDULE"); v != "" {
		cfg.Service.ScanSchedule = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("NEWS_FETCH_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.Fetch.Days = days
		}
	}
	if v := os.Getenv("NEWSAPI_KEY"); v != "" {
		cfg.Fetch.NewsAPIKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

func setDefaults(cfg *Config) {
	s := &cfg.Service
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.ScanSchedule == "" {
		s.ScanSchedule = defaultScanSchedule
	}

	if cfg.Database.URL == "" {
		cfg.Database.URL = defaultDatabaseURL
	}

	f := &cfg.Fetch
	if f.Days == 0 {
		f.Days = defaultFetchDays
	}
	if f.MaxAgeDays == 0 {
		f.MaxAgeDays = defaultMaxAgeDays
	}
	if f.MaxPerSource == 0 {
		f.MaxPerSource = defaultMaxPerSource
	}
	if f.DedupWindow == 0 {
		f.DedupWindow = defaultDedupWindowHours * time.Hour
	}
	if f.Concurrency == 0 {
		f.Concurrency = defaultConcurrency
	}
	if f.RequestTimeout == 0 {
		f.RequestTimeout = defaultRequestTimeoutSec * time.Second
	}
	if f.HostRatePerSec == 0 {
		f.HostRatePerSec = defaultHostRatePerSec
	}
	if f.HostRateBurst == 0 {
		f.HostRateBurst = defaultHostRateBurst
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Service.Port <= 0 || c.Service.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Service.Port)
	}
	if c.Fetch.Days < 0 {
		return fmt.Errorf("fetch days must not be negative, got %d", c.Fetch.Days)
	}
	if c.Fetch.Concurrency < 1 {
		return fmt.Errorf("fetch concurrency must be at least 1, got %d", c.Fetch.Concurrency)
	}
	if c.Fetch.DedupWindow < 0 {
		return fmt.Errorf("dedup window must not be negative, got %s", c.Fetch.DedupWindow)
	}
	return nil
}
