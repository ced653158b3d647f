package dex

// Effect is a single type chart cell
type Effect int

// Type chart cells. Modifiers add up across a defender's types and scale damage by
// 2^sum; Immune voids the whole calculation.
const (
	Resisted    Effect = -1
	Neutral     Effect = 0
	SuperEffect Effect = 1
	Immune      Effect = 2
)

// TypeChart maps defending type -> attacking type -> effect. Missing cells are neutral.
type TypeChart map[string]map[string]Effect

// Lookup returns the effect of an attacking type against a defending type
func (c TypeChart) Lookup(defending, attacking string) Effect {
	row, ok := c[defending]
	if !ok {
		return Neutral
	}
	return row[attacking]
}

// Modifier sums the chart over every defending type. ok is false on immunity.
func (c TypeChart) Modifier(attacking string, defending []string) (modifier int, ok bool) {
	for _, t := range defending {
		e := c.Lookup(t, attacking)
		if e == Immune {
			return 0, false
		}
		modifier += int(e)
	}
	return modifier, true
}

type matchups struct {
	super   []string
	resists []string
	immune  []string
}

// buildTypeChart inverts an attacker-indexed matchup list into the defender-indexed chart
func buildTypeChart(byAttacker map[string]matchups) TypeChart {
	chart := TypeChart{}
	set := func(def, atk string, e Effect) {
		if chart[def] == nil {
			chart[def] = map[string]Effect{}
		}
		chart[def][atk] = e
	}
	for atk, m := range byAttacker {
		for _, def := range m.super {
			set(def, atk, SuperEffect)
		}
		for _, def := range m.resists {
			set(def, atk, Resisted)
		}
		for _, def := range m.immune {
			set(def, atk, Immune)
		}
	}
	return chart
}

func standardTypeChart() TypeChart {
	return buildTypeChart(map[string]matchups{
		"normal": {
			resists: []string{"rock", "steel"},
			immune:  []string{"ghost"},
		},
		"fire": {
			super:   []string{"grass", "ice", "bug", "steel"},
			resists: []string{"fire", "water", "rock", "dragon"},
		},
		"water": {
			super:   []string{"fire", "ground", "rock"},
			resists: []string{"water", "grass", "dragon"},
		},
		"electric": {
			super:   []string{"water", "flying"},
			resists: []string{"electric", "grass", "dragon"},
			immune:  []string{"ground"},
		},
		"grass": {
			super:   []string{"water", "ground", "rock"},
			resists: []string{"fire", "grass", "poison", "flying", "bug", "dragon", "steel"},
		},
		"ice": {
			super:   []string{"grass", "ground", "flying", "dragon"},
			resists: []string{"fire", "water", "ice", "steel"},
		},
		"fighting": {
			super:   []string{"normal", "ice", "rock", "dark", "steel"},
			resists: []string{"poison", "flying", "psychic", "bug", "fairy"},
			immune:  []string{"ghost"},
		},
		"poison": {
			super:   []string{"grass", "fairy"},
			resists: []string{"poison", "ground", "rock", "ghost"},
			immune:  []string{"steel"},
		},
		"ground": {
			super:   []string{"fire", "electric", "poison", "rock", "steel"},
			resists: []string{"grass", "bug"},
			immune:  []string{"flying"},
		},
		"flying": {
			super:   []string{"grass", "fighting", "bug"},
			resists: []string{"electric", "rock", "steel"},
		},
		"psychic": {
			super:   []string{"fighting", "poison"},
			resists: []string{"psychic", "steel"},
			immune:  []string{"dark"},
		},
		"bug": {
			super:   []string{"grass", "psychic", "dark"},
			resists: []string{"fire", "fighting", "poison", "flying", "ghost", "steel", "fairy"},
		},
		"rock": {
			super:   []string{"fire", "ice", "flying", "bug"},
			resists: []string{"fighting", "ground", "steel"},
		},
		"ghost": {
			super:   []string{"psychic", "ghost"},
			resists: []string{"dark"},
			immune:  []string{"normal"},
		},
		"dragon": {
			super:   []string{"dragon"},
			resists: []string{"steel"},
			immune:  []string{"fairy"},
		},
		"dark": {
			super:   []string{"psychic", "ghost"},
			resists: []string{"fighting", "dark", "fairy"},
		},
		"steel": {
			super:   []string{"ice", "rock", "fairy"},
			resists: []string{"fire", "water", "electric", "steel"},
		},
		"fairy": {
			super:   []string{"fighting", "dragon", "dark"},
			resists: []string{"fire", "poison", "steel"},
		},
	})
}
