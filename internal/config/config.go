// internal/config/config.go
//
// Process configuration.
// Sources, later ones win:
//   1. Built-in defaults.
//   2. A YAML file named by CONFIG_FILE (optional).
//   3. Environment variables, after loading .env via godotenv.
//
// Validate reports every bad field at once.

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the server.
type Config struct {
	Port           string `yaml:"port"`
	LogLevel       string `yaml:"logLevel"`
	Store          string `yaml:"store"` // memory | sqlite
	DBPath         string `yaml:"dbPath"`
	JWTSecret      string `yaml:"jwtSecret"`
	JWTExpiresDays int    `yaml:"jwtExpiresDays"`
	ClientOrigin   string `yaml:"clientOrigin"`
	CookieName     string `yaml:"cookieName"`
	Production     bool   `yaml:"production"`
}

// Default returns the development defaults.
func Default() Config {
	return Config{
		Port:           "5175",
		LogLevel:       "info",
		Store:          "memory",
		DBPath:         "./data/chess.db",
		JWTSecret:      "dev_secret_change_me",
		JWTExpiresDays: 14,
		ClientOrigin:   "http://localhost:5173",
		CookieName:     "chess_token",
	}
}

// Load builds the configuration from defaults, CONFIG_FILE and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.mergeEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// mergeFile overlays the YAML file at path. Missing keys keep their value.
func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// mergeEnv overlays non-empty environment variables.
func (c *Config) mergeEnv(getenv func(string) string) error {
	set := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set("PORT", &c.Port)
	set("LOG_LEVEL", &c.LogLevel)
	set("STORE", &c.Store)
	set("DB_PATH", &c.DBPath)
	set("JWT_SECRET", &c.JWTSecret)
	set("CLIENT_ORIGIN", &c.ClientOrigin)
	set("COOKIE_NAME", &c.CookieName)

	if v := getenv("JWT_EXPIRES_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("JWT_EXPIRES_DAYS: %w", err)
		}
		c.JWTExpiresDays = n
	}
	if v := getenv("NODE_ENV"); v != "" {
		c.Production = v == "production"
	}
	return nil
}

// Validate checks every field and returns all problems together.
func (c Config) Validate() error {
	var result *multierror.Error
	if n, err := strconv.Atoi(c.Port); err != nil || n <= 0 || n > 65535 {
		result = multierror.Append(result, fmt.Errorf("port %q is not a valid TCP port", c.Port))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		result = multierror.Append(result, fmt.Errorf("log level %q: %w", c.LogLevel, err))
	}
	if c.Store != "memory" && c.Store != "sqlite" {
		result = multierror.Append(result, fmt.Errorf("store %q must be memory or sqlite", c.Store))
	}
	if c.DBPath == "" {
		result = multierror.Append(result, fmt.Errorf("db path is empty"))
	}
	if c.JWTExpiresDays <= 0 {
		result = multierror.Append(result, fmt.Errorf("jwt expiry must be positive, got %d", c.JWTExpiresDays))
	}
	if c.Production && (c.JWTSecret == "" || c.JWTSecret == Default().JWTSecret) {
		result = multierror.Append(result, fmt.Errorf("jwt secret must be set in production"))
	}
	return result.ErrorOrNil()
}

// Level returns the parsed zerolog level, defaulting to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
