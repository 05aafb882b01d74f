package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ariaml/ariaml-go/pkg/document"
	"github.com/ariaml/ariaml-go/pkg/logger"
)

// Config is the binary configuration. Environment variables override the file.
type Config struct {
	Address         string              `yaml:"address"`
	PagesDir        string              `yaml:"pages_dir"`
	StaticDir       string              `yaml:"static_dir"`
	StaticPrefix    string              `yaml:"static_prefix"`
	Polyfill        string              `yaml:"polyfill"`
	BaseURL         string              `yaml:"base_url"`
	Cache           CacheConfig         `yaml:"cache"`
	Log             LogConfig           `yaml:"log"`
	Sentry          logger.SentryConfig `yaml:"sentry"`
	ShutdownTimeout time.Duration       `yaml:"shutdown_timeout"`
}

// CacheConfig bounds the page cache. Disabled reloads pages on every request.
type CacheConfig struct {
	Size     int           `yaml:"size"`
	TTL      time.Duration `yaml:"ttl"`
	Disabled bool          `yaml:"disabled"`
}

// LogConfig selects the log level and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Environment variables read by loadConfig.
const (
	envAddress     = "ARIAML_ADDRESS"
	envPagesDir    = "ARIAML_PAGES_DIR"
	envPolyfill    = "ARIAML_POLYFILL"
	envStaticDir   = "ARIAML_STATIC_DIR"
	envLogLevel    = "ARIAML_LOG_LEVEL"
	envLogFormat   = "ARIAML_LOG_FORMAT"
	envSentryDSN   = "SENTRY_DSN"
	envSentryEnv   = "SENTRY_ENVIRONMENT"
	defaultAddress = ":8080"
)

var errEmptyPagesDir = errors.New("pages directory is required")

func defaultConfig() Config {
	return Config{
		Address:         defaultAddress,
		PagesDir:        "pages",
		StaticPrefix:    "/static/",
		Polyfill:        document.DefaultPolyfill,
		BaseURL:         "/",
		Log:             LogConfig{Level: "info", Format: string(logger.FormatJSON)},
		ShutdownTimeout: 30 * time.Second,
	}
}

// loadConfig reads path when set, then applies the environment.
func loadConfig(path string, getenv func(string) string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	override := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	override(&cfg.Address, envAddress)
	override(&cfg.PagesDir, envPagesDir)
	override(&cfg.Polyfill, envPolyfill)
	override(&cfg.StaticDir, envStaticDir)
	override(&cfg.Log.Level, envLogLevel)
	override(&cfg.Log.Format, envLogFormat)
	override(&cfg.Sentry.DSN, envSentryDSN)
	override(&cfg.Sentry.Environment, envSentryEnv)

	if cfg.PagesDir == "" {
		return Config{}, errEmptyPagesDir
	}
	return cfg, nil
}
