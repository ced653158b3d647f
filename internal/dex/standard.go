package dex

import "github.com/KirkDiggler/rpg-battle/internal/entities/battle"

// Standard returns the bundled data set
func Standard() *Dex {
	d := &Dex{
		Species:   standardSpecies(),
		Moves:     standardMoves(),
		Natures:   standardNatures(),
		Weathers:  standardWeathers(),
		TypeChart: standardTypeChart(),
	}
	d.Abilities = standardAbilities(d)
	d.Items = standardItems(d)
	return d
}

func standardSpecies() map[string]*Species {
	list := []*Species{
		{
			ID: "venusaur", Name: "Venusaur", Num: 3,
			Types:     []string{"grass", "poison"},
			BaseStats: battle.Stats{HP: 80, Atk: 82, Def: 83, SpA: 100, SpD: 100, Spe: 80},
		},
		{
			ID: "torkoal", Name: "Torkoal", Num: 324,
			Types:     []string{"fire"},
			BaseStats: battle.Stats{HP: 70, Atk: 85, Def: 140, SpA: 85, SpD: 70, Spe: 20},
		},
		{
			ID: "dusclops", Name: "Dusclops", Num: 356,
			Types:     []string{"ghost"},
			BaseStats: battle.Stats{HP: 40, Atk: 70, Def: 130, SpA: 60, SpD: 130, Spe: 25},
			CanEvolve: true,
		},
		{
			ID: "conkeldurr", Name: "Conkeldurr", Num: 534,
			Types:     []string{"fighting"},
			BaseStats: battle.Stats{HP: 105, Atk: 140, Def: 95, SpA: 55, SpD: 65, Spe: 45},
		},
		{
			ID: "incineroar", Name: "Incineroar", Num: 727,
			Types:     []string{"fire", "dark"},
			BaseStats: battle.Stats{HP: 95, Atk: 115, Def: 90, SpA: 80, SpD: 90, Spe: 60},
		},
		{
			ID: "hatterene", Name: "Hatterene", Num: 858,
			Types:     []string{"psychic", "fairy"},
			BaseStats: battle.Stats{HP: 57, Atk: 90, Def: 95, SpA: 136, SpD: 103, Spe: 29},
		},
	}
	out := make(map[string]*Species, len(list))
	for _, s := range list {
		out[s.ID] = s
	}
	return out
}

func standardMoves() map[string]*Move {
	list := []*Move{
		{ID: "flamethrower", Name: "Flamethrower", Num: 53, Type: "fire", Category: CategorySpecial,
			Power: 90, Accuracy: 100, Target: TargetNormal, PP: 15},
		{ID: "heatwave", Name: "Heat Wave", Num: 257, Type: "fire", Category: CategorySpecial,
			Power: 95, Accuracy: 90, Target: TargetAllAdjacentFoes, PP: 10},
		{ID: "eruption", Name: "Eruption", Num: 284, Type: "fire", Category: CategorySpecial,
			Power: 150, Accuracy: 100, Target: TargetAllAdjacentFoes, PP: 5},
		{ID: "earthpower", Name: "Earth Power", Num: 414, Type: "ground", Category: CategorySpecial,
			Power: 90, Accuracy: 100, Target: TargetNormal, PP: 10},
		{ID: "gigadrain", Name: "Giga Drain", Num: 202, Type: "grass", Category: CategorySpecial,
			Power: 75, Accuracy: 100, Target: TargetNormal, PP: 10},
		{ID: "sludgebomb", Name: "Sludge Bomb", Num: 188, Type: "poison", Category: CategorySpecial,
			Power: 90, Accuracy: 100, Target: TargetNormal, PP: 10},
		{ID: "psychic", Name: "Psychic", Num: 94, Type: "psychic", Category: CategorySpecial,
			Power: 90, Accuracy: 100, Target: TargetNormal, PP: 10},
		{ID: "dazzlinggleam", Name: "Dazzling Gleam", Num: 605, Type: "fairy", Category: CategorySpecial,
			Power: 80, Accuracy: 100, Target: TargetAllAdjacentFoes, PP: 10},
		{ID: "aurasphere", Name: "Aura Sphere", Num: 396, Type: "fighting", Category: CategorySpecial,
			Power: 80, AlwaysHits: true, Target: TargetNormal, PP: 20},
		{ID: "machpunch", Name: "Mach Punch", Num: 183, Type: "fighting", Category: CategoryPhysical,
			Power: 40, Accuracy: 100, Priority: 1, Target: TargetNormal, PP: 30,
			Flags: MoveFlags{Contact: true, Punch: true}},
		{ID: "drainpunch", Name: "Drain Punch", Num: 409, Type: "fighting", Category: CategoryPhysical,
			Power: 75, Accuracy: 100, Target: TargetNormal, PP: 10,
			Flags: MoveFlags{Contact: true, Punch: true}},
		{ID: "icepunch", Name: "Ice Punch", Num: 8, Type: "ice", Category: CategoryPhysical,
			Power: 75, Accuracy: 100, Target: TargetNormal, PP: 15,
			Flags: MoveFlags{Contact: true, Punch: true}},
		{ID: "rockslide", Name: "Rock Slide", Num: 157, Type: "rock", Category: CategoryPhysical,
			Power: 75, Accuracy: 90, Target: TargetAllAdjacentFoes, PP: 10},
		{ID: "fakeout", Name: "Fake Out", Num: 252, Type: "normal", Category: CategoryPhysical,
			Power: 40, Accuracy: 100, Priority: 3, Target: TargetNormal, PP: 10,
			Flags: MoveFlags{Contact: true}},
		{ID: "flareblitz", Name: "Flare Blitz", Num: 394, Type: "fire", Category: CategoryPhysical,
			Power: 120, Accuracy: 100, Target: TargetNormal, PP: 15,
			Flags: MoveFlags{Contact: true}},
		{ID: "darkestlariat", Name: "Darkest Lariat", Num: 663, Type: "dark", Category: CategoryPhysical,
			Power: 85, Accuracy: 100, Target: TargetNormal, PP: 10,
			Flags: MoveFlags{Contact: true}},
		{ID: "shadowsneak", Name: "Shadow Sneak", Num: 425, Type: "ghost", Category: CategoryPhysical,
			Power: 40, Accuracy: 100, Priority: 1, Target: TargetNormal, PP: 30,
			Flags: MoveFlags{Contact: true}},
		{ID: "willowisp", Name: "Will-O-Wisp", Num: 261, Type: "fire", Category: CategoryStatus,
			Accuracy: 85, Target: TargetNormal, PP: 15},
		{ID: "trickroom", Name: "Trick Room", Num: 433, Type: "psychic", Category: CategoryStatus,
			AlwaysHits: true, Priority: -7, Target: TargetAll, PP: 5},
	}
	out := make(map[string]*Move, len(list))
	for _, m := range list {
		out[m.ID] = m
	}
	return out
}

func standardNatures() map[string]*Nature {
	list := []*Nature{
		{ID: "adamant", Name: "Adamant", Plus: battle.StatAtk, Minus: battle.StatSpA},
		{ID: "bashful", Name: "Bashful"},
		{ID: "bold", Name: "Bold", Plus: battle.StatDef, Minus: battle.StatAtk},
		{ID: "brave", Name: "Brave", Plus: battle.StatAtk, Minus: battle.StatSpe},
		{ID: "calm", Name: "Calm", Plus: battle.StatSpD, Minus: battle.StatAtk},
		{ID: "careful", Name: "Careful", Plus: battle.StatSpD, Minus: battle.StatSpA},
		{ID: "docile", Name: "Docile"},
		{ID: "gentle", Name: "Gentle", Plus: battle.StatSpD, Minus: battle.StatDef},
		{ID: "hardy", Name: "Hardy"},
		{ID: "hasty", Name: "Hasty", Plus: battle.StatSpe, Minus: battle.StatDef},
		{ID: "impish", Name: "Impish", Plus: battle.StatDef, Minus: battle.StatSpA},
		{ID: "jolly", Name: "Jolly", Plus: battle.StatSpe, Minus: battle.StatSpA},
		{ID: "lax", Name: "Lax", Plus: battle.StatDef, Minus: battle.StatSpD},
		{ID: "lonely", Name: "Lonely", Plus: battle.StatAtk, Minus: battle.StatDef},
		{ID: "mild", Name: "Mild", Plus: battle.StatSpA, Minus: battle.StatDef},
		{ID: "modest", Name: "Modest", Plus: battle.StatSpA, Minus: battle.StatAtk},
		{ID: "naive", Name: "Naive", Plus: battle.StatSpe, Minus: battle.StatSpD},
		{ID: "naughty", Name: "Naughty", Plus: battle.StatAtk, Minus: battle.StatSpD},
		{ID: "quiet", Name: "Quiet", Plus: battle.StatSpA, Minus: battle.StatSpe},
		{ID: "quirky", Name: "Quirky"},
		{ID: "rash", Name: "Rash", Plus: battle.StatSpA, Minus: battle.StatSpD},
		{ID: "relaxed", Name: "Relaxed", Plus: battle.StatDef, Minus: battle.StatSpe},
		{ID: "sassy", Name: "Sassy", Plus: battle.StatSpD, Minus: battle.StatSpe},
		{ID: "serious", Name: "Serious"},
		{ID: "timid", Name: "Timid", Plus: battle.StatSpe, Minus: battle.StatAtk},
	}
	out := make(map[string]*Nature, len(list))
	for _, n := range list {
		out[n.ID] = n
	}
	return out
}
