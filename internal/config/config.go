// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// defaultDBPassword is the development password refused in production.
const defaultDBPassword = "changeme"

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host            string        `env:"APP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"APP_PORT" env-default:"8080"`
	Env             string        `env:"APP_ENV" env-default:"development" env-description:"development, production or testing"`
	LogLevel        string        `env:"APP_LOG_LEVEL" env-description:"debug, info, warn or error; defaults by environment"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// PostgreSQL connection
	DBHost     string `env:"POSTGRES_HOST" env-default:"localhost"`
	DBPort     string `env:"POSTGRES_PORT" env-default:"5432"`
	DBUser     string `env:"POSTGRES_USER" env-default:"gallerycms"`
	DBPassword string `env:"POSTGRES_PASSWORD" env-default:"changeme"`
	DBName     string `env:"POSTGRES_DB" env-default:"gallerycms"`
	DBSSLMode  string `env:"POSTGRES_SSLMODE" env-default:"disable"`

	// Valkey (Redis-compatible cache)
	ValkeyHost     string `env:"VALKEY_HOST" env-default:"localhost"`
	ValkeyPort     string `env:"VALKEY_PORT" env-default:"6379"`
	ValkeyPassword string `env:"VALKEY_PASSWORD"`
	ValkeyDB       int    `env:"VALKEY_DB" env-default:"0"`

	// S3-compatible object storage
	S3Endpoint     string        `env:"S3_ENDPOINT"`
	S3Region       string        `env:"S3_REGION" env-default:"us-east-1"`
	S3AccessKey    string        `env:"S3_ACCESS_KEY"`
	S3SecretKey    string        `env:"S3_SECRET_KEY"`
	S3PublicBucket string        `env:"S3_BUCKET_PUBLIC" env-default:"gallerycms-public"`
	S3PublicURL    string        `env:"S3_PUBLIC_URL"`
	S3PresignTTL   time.Duration `env:"S3_PRESIGN_TTL" env-default:"15m"`

	// Public feed caching
	FeedCacheTTL time.Duration `env:"FEED_CACHE_TTL" env-default:"1m"`
	FeedLocalTTL time.Duration `env:"FEED_LOCAL_TTL" env-default:"10s"`

	// Admin API write throttling, per client IP
	AdminRateLimit float64 `env:"ADMIN_RATE_LIMIT" env-default:"5"`
	AdminRateBurst int     `env:"ADMIN_RATE_BURST" env-default:"20"`
}

// Load reads an optional .env file (or the given files), then configuration
// from environment variables, applying defaults for development where
// appropriate. Variables already set in the environment win over .env
// files. Returns an error if critical values are missing in production mode.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case "development", "production", "testing":
	default:
		return fmt.Errorf("APP_ENV must be development, production or testing, got %q", c.Env)
	}

	if c.Env == "production" && c.DBPassword == defaultDBPassword {
		return fmt.Errorf("POSTGRES_PASSWORD must be set in production")
	}
	if c.FeedCacheTTL <= 0 || c.FeedLocalTTL <= 0 {
		return fmt.Errorf("FEED_CACHE_TTL and FEED_LOCAL_TTL must be positive")
	}
	// Cached pages embed presigned links.
	if c.FeedCacheTTL >= c.S3PresignTTL {
		return fmt.Errorf("FEED_CACHE_TTL must be shorter than S3_PRESIGN_TTL")
	}
	if c.AdminRateLimit <= 0 || c.AdminRateBurst <= 0 {
		return fmt.Errorf("ADMIN_RATE_LIMIT and ADMIN_RATE_BURST must be positive")
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// ValkeyAddr returns the Valkey address (host:port).
func (c *Config) ValkeyAddr() string {
	return net.JoinHostPort(c.ValkeyHost, c.ValkeyPort)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// SlogLevel returns the configured log level. Without APP_LOG_LEVEL,
// development logs at debug and everything else at info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if c.LogLevel != "" && level.UnmarshalText([]byte(c.LogLevel)) == nil {
		return level
	}
	if c.IsDev() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
