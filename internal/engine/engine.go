package engine

import (
	"github.com/KirkDiggler/rpg-battle/internal/dex"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

type engine struct {
	dex   *dex.Dex
	hooks *Dispatcher
}

// Config contains configuration for creating the rules engine
type Config struct {
	Dex *dex.Dex
}

// Validate checks that all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Dex == nil {
		vb.RequiredField("Dex")
	}
	return vb.Build()
}

// New creates the rules engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{
		dex:   cfg.Dex,
		hooks: NewDispatcher(cfg.Dex),
	}, nil
}

func (e *engine) Move(id string) (*dex.Move, error) {
	return e.dex.GetMove(id)
}

func (e *engine) Hooks() *Dispatcher {
	return e.hooks
}
