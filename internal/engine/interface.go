// Package engine implements the battle rules: entity factories, stat and boost math, the
// accuracy and damage pipeline, and the hook dispatcher that lets capabilities interpose on
// it. It is stateless; every call reads and mutates only the state it is handed.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-battle/internal/engine Engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-battle/internal/dex"
	"github.com/KirkDiggler/rpg-battle/internal/entities/battle"
)

// Engine provides the battle rules calculations
type Engine interface {
	// Entity creation
	CalculateStats(build battle.Build) (battle.Stats, error)
	NewPokemon(side, rosterIndex int, build battle.Build) (*battle.Pokemon, error)

	// Lookups
	Move(id string) (*dex.Move, error)

	// Pipeline
	Speed(state *battle.State, mon *battle.Pokemon) int
	Accuracy(state *battle.State, attacker, target *battle.Pokemon, move *dex.Move) float64
	Damage(
		state *battle.State,
		roller dice.Roller,
		attacker, target *battle.Pokemon,
		move *dex.Move,
	) (*dex.DamageContext, error)
	ApplyDamage(state *battle.State, ctx *dex.DamageContext) int

	// Hooks returns the dispatcher for extension points the state machine raises directly
	Hooks() *Dispatcher
}
