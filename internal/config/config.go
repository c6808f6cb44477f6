package config

import (
	"errors"
	"fmt"
	"matchsim/internal/constants"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	// 0 picks a fresh seed at startup
	Seed       int64  `env:"MATCHSIM_SEED" envDefault:"0"`
	TeamAName  string `env:"MATCHSIM_TEAM_A" envDefault:"Tigers"`
	TeamBName  string `env:"MATCHSIM_TEAM_B" envDefault:"Lions"`
	MinPlayers int    `env:"MATCHSIM_MIN_PLAYERS" envDefault:"5"`
	MaxPlayers int    `env:"MATCHSIM_MAX_PLAYERS" envDefault:"10"`
	Language   string `env:"MATCHSIM_LANG" envDefault:"en"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn"`
}

func Load() (*Config, error) {
	// a missing .env is fine, the environment and defaults still apply
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MinPlayers < constants.MinTeamSize {
		return fmt.Errorf("%w: MATCHSIM_MIN_PLAYERS must be at least %d, got %d",
			ErrInvalidConfig, constants.MinTeamSize, c.MinPlayers)
	}
	if c.MinPlayers > c.MaxPlayers {
		return fmt.Errorf("%w: MATCHSIM_MIN_PLAYERS %d exceeds MATCHSIM_MAX_PLAYERS %d",
			ErrInvalidConfig, c.MinPlayers, c.MaxPlayers)
	}
	if c.TeamAName == "" || c.TeamBName == "" {
		return fmt.Errorf("%w: team names must not be empty", ErrInvalidConfig)
	}
	if c.TeamAName == c.TeamBName {
		return fmt.Errorf("%w: team names must differ, both are %q", ErrInvalidConfig, c.TeamAName)
	}
	return nil
}
