// Package dex holds the read-only data tables the battle engine consults: species, moves,
// natures, the type chart and the capability tables (abilities, items, weathers) whose
// optional hooks interpose on the engine's extension points.
package dex

import (
	"github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Category decides which stats a move uses, or that it deals no damage
type Category string

// Move categories
const (
	CategoryPhysical Category = "physical"
	CategorySpecial  Category = "special"
	CategoryStatus   Category = "status"
)

// Target is the target class of a move
type Target string

// Target classes understood by the engine. Other classes exist in the data but cannot be
// chosen.
const (
	TargetNormal          Target = "normal"
	TargetAllAdjacentFoes Target = "allAdjacentFoes"
	TargetAll             Target = "all"
	TargetSelf            Target = "self"
)

// Species is a base form
type Species struct {
	ID        string
	Name      string
	Num       int
	Types     []string
	BaseStats battle.Stats
	CanEvolve bool
}

// MoveFlags marks move properties capabilities key off
type MoveFlags struct {
	Contact bool
	Punch   bool
}

// Move is a move definition
type Move struct {
	ID       string
	Name     string
	Num      int
	Type     string
	Category Category
	Power    int
	// Accuracy is ignored when AlwaysHits is set
	Accuracy   int
	AlwaysHits bool
	Priority   int
	Target     Target
	PP         int
	Flags      MoveFlags
}

// Damaging reports whether the move runs the damage pipeline
func (m *Move) Damaging() bool {
	return m.Category != CategoryStatus
}

// Nature raises one stat by 10% and lowers another by 10%. Neutral natures leave both empty.
type Nature struct {
	ID    string
	Name  string
	Plus  battle.StatKey
	Minus battle.StatKey
}

// Multiplier returns the nature multiplier for a stat
func (n *Nature) Multiplier(key battle.StatKey) float64 {
	switch {
	case n.Plus == n.Minus:
		return 1
	case n.Plus == key:
		return 1.1
	case n.Minus == key:
		return 0.9
	default:
		return 1
	}
}

// Capability is an ability, item or weather. Only its hooks matter to the engine.
type Capability struct {
	ID    string
	Name  string
	Num   int
	Desc  string
	Hooks Hooks
}

// Weather is a weather capability with its default duration in turns
type Weather struct {
	Capability
	Duration int
}

// Dex is the full set of lookup tables
type Dex struct {
	Species   map[string]*Species
	Moves     map[string]*Move
	Natures   map[string]*Nature
	Abilities map[string]*Capability
	Items     map[string]*Capability
	Weathers  map[string]*Weather
	TypeChart TypeChart
}

// GetSpecies returns a species by id
func (d *Dex) GetSpecies(id string) (*Species, error) {
	if s, ok := d.Species[id]; ok {
		return s, nil
	}
	return nil, errors.NotFoundf("species %q not found", id)
}

// GetMove returns a move by id
func (d *Dex) GetMove(id string) (*Move, error) {
	if m, ok := d.Moves[id]; ok {
		return m, nil
	}
	return nil, errors.NotFoundf("move %q not found", id)
}

// GetNature returns a nature by id
func (d *Dex) GetNature(id string) (*Nature, error) {
	if n, ok := d.Natures[id]; ok {
		return n, nil
	}
	return nil, errors.NotFoundf("nature %q not found", id)
}

// GetAbility returns an ability by id
func (d *Dex) GetAbility(id string) (*Capability, error) {
	if a, ok := d.Abilities[id]; ok {
		return a, nil
	}
	return nil, errors.NotFoundf("ability %q not found", id)
}

// GetItem returns an item by id. An empty id means no item and resolves to nil.
func (d *Dex) GetItem(id string) (*Capability, error) {
	if id == "" {
		return nil, nil
	}
	if i, ok := d.Items[id]; ok {
		return i, nil
	}
	return nil, errors.NotFoundf("item %q not found", id)
}

// GetWeather returns a weather by id
func (d *Dex) GetWeather(id string) (*Weather, error) {
	if w, ok := d.Weathers[id]; ok {
		return w, nil
	}
	return nil, errors.NotFoundf("weather %q not found", id)
}

// ValidateBuild checks that every id a build references exists
func (d *Dex) ValidateBuild(b battle.Build) error {
	if _, err := d.GetSpecies(b.Species); err != nil {
		return errors.Wrapf(err, "build %q", b.Name)
	}
	if _, err := d.GetNature(b.Nature); err != nil {
		return errors.Wrapf(err, "build %q", b.Name)
	}
	if _, err := d.GetAbility(b.Ability); err != nil {
		return errors.Wrapf(err, "build %q", b.Name)
	}
	if _, err := d.GetItem(b.Item); err != nil {
		return errors.Wrapf(err, "build %q", b.Name)
	}
	if len(b.Moves) == 0 {
		return errors.InvalidArgumentf("build %q has no moves", b.Name)
	}
	for _, mb := range b.Moves {
		if _, err := d.GetMove(mb.ID); err != nil {
			return errors.Wrapf(err, "build %q", b.Name)
		}
	}
	if b.Level < 1 || b.Level > 100 {
		return errors.InvalidArgumentf("build %q level %d out of range", b.Name, b.Level)
	}
	return nil
}
