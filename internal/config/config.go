// Package config loads the board's runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings. Command-line flags override these values.
type Config struct {
	Addr        string `env:"ECOSHARE_ADDR" envDefault:":8080"`
	LogPath     string `env:"ECOSHARE_LOG"`
	FlashSecret string `env:"ECOSHARE_FLASH_SECRET"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
