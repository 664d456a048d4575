// Package config handles configuration for the CLI client.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds settings for the ReportKeeper CLI.
type Config struct {
	ServerEndpointAddr string        `env:"RK_SERVER_ADDR"`
	RequestTimeout     time.Duration `env:"RK_REQUEST_TIMEOUT"`
	DownloadDir        string        `env:"RK_DOWNLOAD_DIR"`
}

// LoadDefaults populates Config with local development values.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = ":50051"
	c.RequestTimeout = 30 * time.Second
	c.DownloadDir = "downloads"
}

func (c *Config) validate() error {
	if c.ServerEndpointAddr == "" {
		return fmt.Errorf("server address is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	if c.DownloadDir == "" {
		return fmt.Errorf("download dir is required")
	}
	return nil
}

// LoadConfig applies defaults, the optional JSON file, RK_* environment
// variables and flags, in that order.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
