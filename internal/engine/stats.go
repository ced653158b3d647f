package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-battle/internal/dex"
	"github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// boostBase returns the ratio base for a boost key: 3 for accuracy and evasion, 2 otherwise
func boostBase(key battle.BoostKey) int {
	if key == battle.BoostAccuracy || key == battle.BoostEvasion {
		return 3
	}
	return 2
}

func boostRatio(key battle.BoostKey, stage int) (num, den int) {
	stage = min(battle.MaxBoost, max(battle.MinBoost, stage))
	base := boostBase(key)
	return max(base, base+stage), max(base, base-stage)
}

// BoostMultiplier converts a boost stage to its multiplier
func BoostMultiplier(key battle.BoostKey, stage int) float64 {
	num, den := boostRatio(key, stage)
	return float64(num) / float64(den)
}

// BoostedValue applies a boost stage to a raw value, flooring the result
func BoostedValue(key battle.BoostKey, stage, value int) int {
	num, den := boostRatio(key, stage)
	return int(math.Floor(float64(value) * float64(num) / float64(den)))
}

// BoostedStat returns a combatant's stat with its current boost applied
func BoostedStat(mon *battle.Pokemon, key battle.StatKey) int {
	boost := battle.BoostKey(key)
	return BoostedValue(boost, mon.Boosts.Get(boost), mon.Stats.Get(key))
}

// StatsFor computes the final stat line for a build
func StatsFor(species *dex.Species, nature *dex.Nature, build battle.Build) battle.Stats {
	var out battle.Stats
	for _, key := range battle.StatKeys {
		base := species.BaseStats.Get(key)
		iv := build.IVs.Get(key)
		ev := build.EVs.Get(key)
		raw := (2*base + iv + ev/4) * build.Level / 100
		if key == battle.StatHP {
			out.Set(key, raw+build.Level+10)
			continue
		}
		out.Set(key, int(math.Floor(float64(raw+5)*nature.Multiplier(key))))
	}
	return out
}

func (e *engine) CalculateStats(build battle.Build) (battle.Stats, error) {
	species, err := e.dex.GetSpecies(build.Species)
	if err != nil {
		return battle.Stats{}, err
	}
	nature, err := e.dex.GetNature(build.Nature)
	if err != nil {
		return battle.Stats{}, err
	}
	if build.Level < 1 {
		return battle.Stats{}, errors.InvalidArgumentf("invalid level: %d", build.Level)
	}
	return StatsFor(species, nature, build), nil
}
