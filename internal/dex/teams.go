package dex

import "github.com/KirkDiggler/rpg-battle/internal/entities/battle"

var perfectIVs = battle.Stats{HP: 31, Atk: 31, Def: 31, SpA: 31, SpD: 31, Spe: 31}

func moveset(d *Dex, ids ...string) []battle.MoveBuild {
	out := make([]battle.MoveBuild, 0, len(ids))
	for _, id := range ids {
		pp := 0
		if m, ok := d.Moves[id]; ok {
			pp = m.PP
		}
		out = append(out, battle.MoveBuild{ID: id, PP: pp})
	}
	return out
}

// SampleTeam returns a six member roster built from the bundled data
func SampleTeam(d *Dex) []battle.Build {
	return []battle.Build{
		{
			Name: "Venusaur", Species: "venusaur", Gender: battle.GenderFemale, Level: 50,
			Nature: "modest", Ability: "chlorophyll", Item: "lifeorb",
			EVs:   battle.Stats{HP: 4, SpA: 252, Spe: 252},
			IVs:   perfectIVs,
			Moves: moveset(d, "gigadrain", "sludgebomb", "earthpower"),
		},
		{
			Name: "Torkoal", Species: "torkoal", Gender: battle.GenderMale, Level: 50,
			Nature: "quiet", Ability: "drought", Item: "charcoal",
			EVs:   battle.Stats{HP: 252, SpA: 252, SpD: 4},
			IVs:   battle.Stats{HP: 31, Atk: 31, Def: 31, SpA: 31, SpD: 31, Spe: 0},
			Moves: moveset(d, "eruption", "heatwave", "earthpower", "willowisp"),
		},
		{
			Name: "Dusclops", Species: "dusclops", Gender: battle.GenderFemale, Level: 50,
			Nature: "relaxed", Ability: "frisk", Item: "eviolite",
			EVs:   battle.Stats{HP: 252, Def: 252, SpD: 4},
			IVs:   perfectIVs,
			Moves: moveset(d, "shadowsneak", "willowisp", "trickroom"),
		},
		{
			Name: "Conkeldurr", Species: "conkeldurr", Gender: battle.GenderMale, Level: 50,
			Nature: "adamant", Ability: "ironfist", Item: "focussash",
			EVs:   battle.Stats{HP: 252, Atk: 252, SpD: 4},
			IVs:   perfectIVs,
			Moves: moveset(d, "machpunch", "drainpunch", "icepunch", "rockslide"),
		},
		{
			Name: "Incineroar", Species: "incineroar", Gender: battle.GenderMale, Level: 50,
			Nature: "careful", Ability: "intimidate", Item: "assaultvest",
			EVs:   battle.Stats{HP: 252, Atk: 4, SpD: 252},
			IVs:   perfectIVs,
			Moves: moveset(d, "fakeout", "flareblitz", "darkestlariat"),
		},
		{
			Name: "Hatterene", Species: "hatterene", Gender: battle.GenderFemale, Level: 50,
			Nature: "quiet", Ability: "magicbounce", Item: "widelens",
			EVs:   battle.Stats{HP: 252, SpA: 252, Def: 4},
			IVs:   battle.Stats{HP: 31, Atk: 31, Def: 31, SpA: 31, SpD: 31, Spe: 0},
			Moves: moveset(d, "dazzlinggleam", "psychic", "aurasphere", "trickroom"),
		},
	}
}
