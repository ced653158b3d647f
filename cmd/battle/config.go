package main

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// config is the process configuration. Flags override the environment.
type config struct {
	Format      string        `env:"BATTLE_FORMAT" envDefault:"singles"`
	Seed        uint64        `env:"BATTLE_SEED"`
	RedisAddr   string        `env:"BATTLE_REDIS_ADDR"`
	SnapshotTTL time.Duration `env:"BATTLE_SNAPSHOT_TTL" envDefault:"1h"`
	LogLevel    string        `env:"BATTLE_LOG_LEVEL" envDefault:"info"`
	MaxTurns    int           `env:"BATTLE_MAX_TURNS" envDefault:"200"`
}

func loadConfig() (*config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return &cfg, nil
}

// Validate checks the configuration values
func (c *config) Validate() error {
	vb := errors.NewValidationBuilder()
	if _, ok := entities.FormatFor(entities.FormatID(c.Format)); !ok {
		vb.Fieldf("Format", "must be %s or %s, got %q", entities.FormatSingles, entities.FormatDoubles, c.Format)
	}
	if c.MaxTurns < 1 {
		vb.Fieldf("MaxTurns", "must be positive, got %d", c.MaxTurns)
	}
	if c.SnapshotTTL < 0 {
		vb.Fieldf("SnapshotTTL", "must not be negative, got %s", c.SnapshotTTL)
	}
	if _, err := c.level(); err != nil {
		vb.InvalidField("LogLevel", err.Error())
	}
	return vb.Build()
}

func (c *config) level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}
