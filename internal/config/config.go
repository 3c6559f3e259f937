// Package config loads stock-manager configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultDBPath     = "stock_management.db"
	defaultExportPath = "articles.csv"
	defaultLogLevel   = "info"
	defaultOpTimeout  = 5 * time.Second
)

// Config holds application configuration values.
type Config struct {
	DBPath     string
	ExportPath string
	LogLevel   string

	DevMode bool
	// StrictIDs makes update and delete of a missing id fail with
	// models.ErrArticleNotFound instead of succeeding silently.
	StrictIDs bool

	OpTimeout time.Duration
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{
		DBPath:     strings.TrimSpace(envOrDefault("STOCK_DB_PATH", defaultDBPath)),
		ExportPath: strings.TrimSpace(envOrDefault("STOCK_EXPORT_PATH", defaultExportPath)),
		LogLevel:   strings.ToLower(strings.TrimSpace(envOrDefault("STOCK_LOG_LEVEL", defaultLogLevel))),
		DevMode:    envBool("STOCK_DEV_MODE", false),
		StrictIDs:  envBool("STOCK_STRICT_IDS", false),
		OpTimeout:  envPositiveDuration("STOCK_OP_TIMEOUT", defaultOpTimeout),
	}

	if cfg.DBPath == "" {
		return Config{}, fmt.Errorf("STOCK_DB_PATH must not be blank")
	}
	if cfg.ExportPath == "" {
		cfg.ExportPath = defaultExportPath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		switch strings.ToLower(v) {
		case "yes", "on":
			return true
		case "no", "off":
			return false
		default:
			return defaultVal
		}
	}
	return b
}

func envPositiveDuration(key string, defaultVal time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	parsed, err := time.ParseDuration(v)
	if err != nil || parsed <= 0 {
		return defaultVal
	}
	return parsed
}
