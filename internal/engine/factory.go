package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-battle/internal/dex"
	"github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// PokemonID names a combatant by side, 1-based roster index and species
func PokemonID(side, rosterIndex int, species string) string {
	return fmt.Sprintf("%d:%d:%s", side, rosterIndex, species)
}

// NewMoveState creates a move slot. A build PP of zero takes the move's default.
func NewMoveState(move *dex.Move, build battle.MoveBuild) battle.MoveState {
	pp := build.PP
	if pp <= 0 {
		pp = move.PP
	}
	return battle.MoveState{ID: move.ID, PP: pp, MaxPP: pp}
}

// NewItemState creates a held item with an unused counter
func NewItemState(id string) battle.ItemState {
	return battle.ItemState{ID: id}
}

func (e *engine) NewPokemon(side, rosterIndex int, build battle.Build) (*battle.Pokemon, error) {
	if err := e.dex.ValidateBuild(build); err != nil {
		return nil, err
	}
	species, err := e.dex.GetSpecies(build.Species)
	if err != nil {
		return nil, err
	}
	stats, err := e.CalculateStats(build)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to calculate stats for %q", build.Name)
	}

	moves := make([]battle.MoveState, 0, len(build.Moves))
	for _, mb := range build.Moves {
		move, err := e.dex.GetMove(mb.ID)
		if err != nil {
			return nil, err
		}
		moves = append(moves, NewMoveState(move, mb))
	}

	return &battle.Pokemon{
		ID:      PokemonID(side, rosterIndex, build.Species),
		Side:    side,
		Build:   build,
		Types:   append([]string(nil), species.Types...),
		Stats:   stats,
		HP:      stats.HP,
		MaxHP:   stats.HP,
		Moves:   moves,
		Ability: build.Ability,
		Item:    NewItemState(build.Item),
	}, nil
}
