// Package config reads server settings from the environment, after
// loading an optional .env file.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Database holds the postgres connection settings
type Database struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
}

// Enabled reports whether a postgres host was configured
func (d Database) Enabled() bool {
	return d.Host != ""
}

// ConnString builds the pgx connection string, escaping credentials
func (d Database) ConnString() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	return u.String()
}

// Config is the full server configuration
type Config struct {
	Port              string
	Database          Database
	RedisURL          string
	CacheTTL          time.Duration
	CatalogSource     string
	SkipInitialImport bool
	ThemeFile         string
	StaticDir         string
	LogLevel          string
}

// Load reads .env if present and then the process environment. The
// returned bool is false when no .env file could be loaded.
func Load() (Config, bool, error) {
	loaded := godotenv.Load() == nil
	cfg, err := FromEnv(os.Getenv)
	return cfg, loaded, err
}

// FromEnv builds a Config from a lookup function, applying defaults
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port: getenv("PORT"),
		Database: Database{
			User:     getenv("DB_USER"),
			Password: getenv("DB_PASSWORD"),
			Host:     getenv("DB_HOST"),
			Port:     getenv("DB_PORT"),
			Name:     getenv("DB_NAME"),
		},
		RedisURL:      getenv("REDIS_URL"),
		CatalogSource: getenv("CATALOG_SOURCE"),
		ThemeFile:     getenv("THEME_FILE"),
		StaticDir:     getenv("STATIC_DIR"),
		LogLevel:      getenv("LOG_LEVEL"),
		CacheTTL:      5 * time.Minute,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "5432"
	}
	if cfg.CatalogSource == "" {
		cfg.CatalogSource = "data/shoes.json"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "web/static"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if raw := getenv("CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CACHE_TTL %q: %w", raw, err)
		}
		cfg.CacheTTL = ttl
	}

	if raw := getenv("SKIP_INITIAL_IMPORT"); raw != "" {
		skip, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SKIP_INITIAL_IMPORT %q: %w", raw, err)
		}
		cfg.SkipInitialImport = skip
	}

	return cfg, nil
}
