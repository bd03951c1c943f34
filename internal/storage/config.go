package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// configFile is the name of the user configuration file within .shopctl/.
	configFile = "config.yaml"

	// Default configuration values
	DefaultAPIURL           = "http://localhost:5000/api"
	DefaultThemePollSeconds = 30
)

// Config represents user configuration from .shopctl/config.yaml.
// This file is user-managed and never written by shopctl.
type Config struct {
	// APIURL is the base URL of the storefront REST API.
	APIURL string `yaml:"api_url"`

	// ThemePollSeconds is the interval between automatic theme re-fetches.
	ThemePollSeconds int `yaml:"theme_poll_seconds"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		APIURL:           DefaultAPIURL,
		ThemePollSeconds: DefaultThemePollSeconds,
	}
}

// ThemePollInterval returns the poll interval as a duration.
func (c *Config) ThemePollInterval() time.Duration {
	return time.Duration(c.ThemePollSeconds) * time.Second
}

// LoadConfig loads .shopctl/config.yaml if it exists, otherwise returns
// defaults. Partial config files are merged with defaults. A .env file in
// the current directory and the SHOPCTL_API_URL / SHOPCTL_THEME_POLL
// environment variables override the file.
func (s *Storage) LoadConfig() (*Config, error) {
	// Best effort: a missing .env is the normal case.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(s.ConfigPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", configFile, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configFile, err)
	}

	if url := os.Getenv("SHOPCTL_API_URL"); url != "" {
		cfg.APIURL = url
	}
	if poll := os.Getenv("SHOPCTL_THEME_POLL"); poll != "" {
		secs, err := strconv.Atoi(poll)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid SHOPCTL_THEME_POLL %q: want positive seconds", poll)
		}
		cfg.ThemePollSeconds = secs
	}

	return cfg, nil
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.dirPath(), configFile)
}
