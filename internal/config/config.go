package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	Port            int
	Debug           bool
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// LocationsPath is the store location CSV read once at startup.
	LocationsPath string

	// Per-browser selection storage.
	SessionCacheSize int
	SessionTTL       time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	port, err := parsePort(sharedcfg.EnvOrDefault("PORT", "8005"))
	if err != nil {
		return nil, err
	}

	sessionTTL, err := time.ParseDuration(sharedcfg.EnvOrDefault("SESSION_TTL", "30m"))
	if err != nil || sessionTTL < 0 {
		return nil, errors.New("invalid SESSION_TTL")
	}

	cfg := &Config{
		Port:             port,
		Debug:            parseBool(os.Getenv("DEBUG")),
		LogLevel:         sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:        sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:  shutdownTimeout,
		LocationsPath:    sharedcfg.EnvOrDefault("LOCATIONS_PATH", "data/dunkin_stores.csv"),
		SessionCacheSize: parseSessionCacheSize(),
		SessionTTL:       sessionTTL,
	}

	if strings.TrimSpace(cfg.LocationsPath) == "" {
		return nil, errors.New("LOCATIONS_PATH is required")
	}

	return cfg, nil
}

// HTTPAddr is the listen address for the configured port.
func (c *Config) HTTPAddr() string {
	return ":" + strconv.Itoa(c.Port)
}

// SetPort overrides the listen port, e.g. from a command-line flag.
func (c *Config) SetPort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d", port)
	}
	c.Port = port
	return nil
}

func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid PORT %q", s)
	}
	return port, nil
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && v
}

func parseSessionCacheSize() int {
	if s := os.Getenv("SESSION_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}
