package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate for settings that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config holds validator settings. Environment variables set the defaults,
// a YAML file may override them, and command line flags come last.
type Config struct {
	Input             string `yaml:"input"`
	WorkDir           string `yaml:"work_dir"`
	ReportDB          string `yaml:"report_db"`
	KeepRuns          int    `yaml:"keep_runs"` // 0 keeps every run
	MetricsFile       string `yaml:"metrics_file"`
	LogLevel          string `yaml:"log_level"`
	LogFormat         string `yaml:"log_format"`
	OutputFormat      string `yaml:"output_format"`
	TimezoneCacheSize int    `yaml:"timezone_cache_size"`
	FailOnError       bool   `yaml:"fail_on_error"`
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Input:             envStr("GTFSVALIDATOR_INPUT", ""),
		WorkDir:           envStr("GTFSVALIDATOR_WORK_DIR", os.TempDir()),
		ReportDB:          envStr("GTFSVALIDATOR_REPORT_DB", ""),
		KeepRuns:          envInt("GTFSVALIDATOR_KEEP_RUNS", 0),
		MetricsFile:       envStr("GTFSVALIDATOR_METRICS_FILE", ""),
		LogLevel:          envStr("GTFSVALIDATOR_LOG_LEVEL", "info"),
		LogFormat:         envStr("GTFSVALIDATOR_LOG_FORMAT", "text"),
		OutputFormat:      envStr("GTFSVALIDATOR_OUTPUT_FORMAT", "text"),
		TimezoneCacheSize: envInt("GTFSVALIDATOR_TIMEZONE_CACHE_SIZE", 128),
		FailOnError:       envBool("GTFSVALIDATOR_FAIL_ON_ERROR", false),
	}
}

// LoadFile overlays the keys present in a YAML file onto c.
func (c *Config) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalid, c.LogFormat)
	}
	switch c.OutputFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: output format %q (want text or json)", ErrInvalid, c.OutputFormat)
	}
	if c.TimezoneCacheSize <= 0 {
		return fmt.Errorf("%w: timezone cache size must be positive, got %d", ErrInvalid, c.TimezoneCacheSize)
	}
	if c.KeepRuns < 0 {
		return fmt.Errorf("%w: keep runs must not be negative, got %d", ErrInvalid, c.KeepRuns)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
