package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from SUNICON_* environment variables. CLI flags
// use these values as their defaults.
type Env struct {
	Size     int    `env:"SUNICON_SIZE" envDefault:"256"`
	Format   string `env:"SUNICON_FORMAT" envDefault:"png"`
	Alpha    int    `env:"SUNICON_ALPHA" envDefault:"255"`
	Filter   string `env:"SUNICON_FILTER" envDefault:"none"`
	Icon     string `env:"SUNICON_ICON" envDefault:"sun"`
	LogLevel string `env:"SUNICON_LOG_LEVEL" envDefault:"info"`
}

// LoadEnv parses the environment into an Env.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
