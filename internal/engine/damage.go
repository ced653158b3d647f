package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-battle/internal/dex"
	"github.com/KirkDiggler/rpg-battle/internal/engine/rng"
	"github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Bounds of the random damage roll, in percent
const (
	MinDamageRoll = 85
	MaxDamageRoll = 100
)

// stabMultiplier is the same-type attack bonus
const stabMultiplier = 1.5

func (e *engine) Speed(state *battle.State, mon *battle.Pokemon) int {
	ctx := &dex.SpeedContext{
		Entity: mon,
		Speed:  float64(BoostedStat(mon, battle.StatSpe)),
	}
	e.hooks.BeforeSpeedCalculation(state, ctx)
	return int(math.Floor(ctx.Speed))
}

func (e *engine) Accuracy(state *battle.State, attacker, target *battle.Pokemon, move *dex.Move) float64 {
	if move.AlwaysHits {
		return 100
	}
	stage := attacker.Boosts.Accuracy - target.Boosts.Evasion
	ctx := &dex.AccuracyContext{
		Attacker: attacker,
		Target:   target,
		Move:     move,
		Accuracy: float64(BoostedValue(battle.BoostAccuracy, stage, move.Accuracy)),
	}
	e.hooks.ModifyAccuracy(state, ctx)
	return ctx.Accuracy
}

// Damage runs the damage pipeline for one attacker/target pair. It returns nil without
// drawing from the roller when the move deals no damage: status moves and full type
// immunities.
func (e *engine) Damage(
	state *battle.State,
	roller dice.Roller,
	attacker, target *battle.Pokemon,
	move *dex.Move,
) (*dex.DamageContext, error) {
	if !move.Damaging() {
		return nil, nil
	}

	offenseKey, defenseKey := battle.StatAtk, battle.StatDef
	if move.Category == dex.CategorySpecial {
		offenseKey, defenseKey = battle.StatSpA, battle.StatSpD
	}

	typeModifier, ok := e.dex.TypeChart.Modifier(move.Type, target.Types)
	if !ok {
		return nil, nil
	}

	random, err := rng.Between(roller, MinDamageRoll, MaxDamageRoll)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll damage")
	}

	ctx := &dex.DamageContext{
		Attacker:       attacker,
		Target:         target,
		Move:           move,
		Level:          attacker.Build.Level,
		OffenseKey:     offenseKey,
		DefenseKey:     defenseKey,
		OffenseStat:    float64(BoostedStat(attacker, offenseKey)),
		DefenseStat:    float64(BoostedStat(target, defenseKey)),
		Power:          float64(move.Power),
		STAB:           attacker.HasType(move.Type),
		TypeModifier:   typeModifier,
		RandomModifier: random,
	}
	e.hooks.BeforeDamageCalculation(state, ctx)

	damage := ((2*float64(ctx.Level)/5+2)*ctx.Power*ctx.OffenseStat/ctx.DefenseStat)/50 + 2
	if ctx.STAB {
		damage *= stabMultiplier
	}
	damage *= math.Pow(2, float64(ctx.TypeModifier))
	damage *= float64(ctx.RandomModifier) / 100
	ctx.Damage = max(1, math.Floor(damage))
	return ctx, nil
}

// ApplyDamage raises onBeforeDamageApplication and subtracts the final damage from the
// target. It returns the HP removed.
func (e *engine) ApplyDamage(state *battle.State, ctx *dex.DamageContext) int {
	e.hooks.BeforeDamageApplication(state, ctx)
	return ctx.Target.SubtractHP(ctx.Damage)
}
