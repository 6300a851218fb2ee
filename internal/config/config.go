// Package config loads the portfolio server settings.
//
// Precedence, low to high: defaults, the YAML file named by
// PORTFOLIO_CONFIG, PORTFOLIO_* environment variables, and finally the bare
// PORT variable most hosting platforms set.
package config

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const envPrefix = "PORTFOLIO_"

// Development credentials used when none are configured.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

var (
	ErrEmptyAddr   = errors.New("addr must not be empty")
	ErrEmptyDBPath = errors.New("db_path must not be empty")
	ErrSessionTTL  = errors.New("session_ttl must be positive")
	ErrRetention   = errors.New("retention must be positive")
	ErrGinMode     = errors.New("gin_mode must be debug, release or test")
)

// Config holds process configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// GinMode is passed to gin.SetMode: debug, release or test.
	GinMode string `koanf:"gin_mode"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DBPath is the SQLite file used for engagement tracking.
	DBPath string `koanf:"db_path"`

	// ContentFile optionally replaces the built-in records.
	ContentFile string `koanf:"content_file"`

	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`

	// AdminSecret signs admin session tokens. A random secret is generated
	// at startup when empty, which logs admins out on every restart.
	AdminSecret string `koanf:"admin_secret"`

	// SessionTTL is how long an idle visitor keeps their section state.
	SessionTTL time.Duration `koanf:"session_ttl"`

	// Retention is how long tracking rows are kept.
	Retention time.Duration `koanf:"retention"`

	SecureCookies bool `koanf:"secure_cookies"`
}

// New returns the defaults.
func New() *Config {
	return &Config{
		Addr:          ":8080",
		GinMode:       "debug",
		LogLevel:      "info",
		DBPath:        "portfolio.db",
		AdminUsername: DefaultAdminUsername,
		AdminPassword: DefaultAdminPassword,
		SessionTTL:    30 * time.Minute,
		Retention:     365 * 24 * time.Hour,
	}
}

// Load builds a Config from every source.
func Load(_ context.Context) (*Config, error) {
	cfg := New()
	k := koanf.New(".")

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "load config file %s", path)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "load env config")
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	if port := os.Getenv("PORT"); port != "" && os.Getenv(envPrefix+"ADDR") == "" {
		cfg.Addr = ":" + port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return ErrEmptyAddr
	case c.DBPath == "":
		return ErrEmptyDBPath
	case c.SessionTTL <= 0:
		return ErrSessionTTL
	case c.Retention <= 0:
		return ErrRetention
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return ErrGinMode
	}
	return nil
}

// UsingDefaultCredentials reports whether either admin credential is still
// the development default.
func (c *Config) UsingDefaultCredentials() bool {
	return c.AdminUsername == DefaultAdminUsername || c.AdminPassword == DefaultAdminPassword
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
