package battle

import "github.com/KirkDiggler/rpg-toolkit/core"

// EntityType is the core.Entity type reported by live combatants
const EntityType = "pokemon"

// StatKey names one of the six base stats
type StatKey string

// Stat keys
const (
	StatHP  StatKey = "hp"
	StatAtk StatKey = "atk"
	StatDef StatKey = "def"
	StatSpA StatKey = "spa"
	StatSpD StatKey = "spd"
	StatSpe StatKey = "spe"
)

// StatKeys lists the stats in calculation order
var StatKeys = []StatKey{StatHP, StatAtk, StatDef, StatSpA, StatSpD, StatSpe}

// BoostKey names a boostable stat
type BoostKey string

// Boost keys
const (
	BoostAtk      BoostKey = "atk"
	BoostDef      BoostKey = "def"
	BoostSpA      BoostKey = "spa"
	BoostSpD      BoostKey = "spd"
	BoostSpe      BoostKey = "spe"
	BoostAccuracy BoostKey = "accuracy"
	BoostEvasion  BoostKey = "evasion"
)

// Boost stage bounds
const (
	MinBoost = -6
	MaxBoost = 6
)

// Stats is a full stat line. It is also used for effort and individual value spreads.
type Stats struct {
	HP  int `json:"hp"`
	Atk int `json:"atk"`
	Def int `json:"def"`
	SpA int `json:"spa"`
	SpD int `json:"spd"`
	Spe int `json:"spe"`
}

// Get returns the value for a stat key
func (s Stats) Get(key StatKey) int {
	switch key {
	case StatHP:
		return s.HP
	case StatAtk:
		return s.Atk
	case StatDef:
		return s.Def
	case StatSpA:
		return s.SpA
	case StatSpD:
		return s.SpD
	case StatSpe:
		return s.Spe
	default:
		return 0
	}
}

// Set assigns the value for a stat key
func (s *Stats) Set(key StatKey, value int) {
	switch key {
	case StatHP:
		s.HP = value
	case StatAtk:
		s.Atk = value
	case StatDef:
		s.Def = value
	case StatSpA:
		s.SpA = value
	case StatSpD:
		s.SpD = value
	case StatSpe:
		s.Spe = value
	}
}

// Boosts tracks the seven boost stages
type Boosts struct {
	Atk      int `json:"atk"`
	Def      int `json:"def"`
	SpA      int `json:"spa"`
	SpD      int `json:"spd"`
	Spe      int `json:"spe"`
	Accuracy int `json:"accuracy"`
	Evasion  int `json:"evasion"`
}

func (b *Boosts) ref(key BoostKey) *int {
	switch key {
	case BoostAtk:
		return &b.Atk
	case BoostDef:
		return &b.Def
	case BoostSpA:
		return &b.SpA
	case BoostSpD:
		return &b.SpD
	case BoostSpe:
		return &b.Spe
	case BoostAccuracy:
		return &b.Accuracy
	case BoostEvasion:
		return &b.Evasion
	default:
		return nil
	}
}

// Get returns the stage for a boost key
func (b Boosts) Get(key BoostKey) int {
	if v := b.ref(key); v != nil {
		return *v
	}
	return 0
}

// Add changes a stage by delta, clamped to [MinBoost, MaxBoost], and returns the change
// actually applied
func (b *Boosts) Add(key BoostKey, delta int) int {
	v := b.ref(key)
	if v == nil {
		return 0
	}
	next := min(MaxBoost, max(MinBoost, *v+delta))
	applied := next - *v
	*v = next
	return applied
}

// MoveState is a move slot on a live combatant
type MoveState struct {
	ID       string `json:"id"`
	PP       int    `json:"pp"`
	MaxPP    int    `json:"max_pp"`
	Disabled bool   `json:"disabled"`
}

// ItemState is a held item with a use counter for single-use items
type ItemState struct {
	ID   string `json:"id"`
	Uses int    `json:"uses"`
}

// Pokemon is a live combatant occupying an active or bench slot
type Pokemon struct {
	ID        string         `json:"id"`
	Side      int            `json:"side"`
	Build     Build          `json:"build"`
	Types     []string       `json:"types"`
	Stats     Stats          `json:"stats"`
	HP        int            `json:"hp"`
	MaxHP     int            `json:"max_hp"`
	Boosts    Boosts         `json:"boosts"`
	Moves     []MoveState    `json:"moves"`
	Ability   string         `json:"ability"`
	Item      ItemState      `json:"item"`
	Status    string         `json:"status,omitempty"`
	Volatiles map[string]int `json:"volatiles,omitempty"`
}

var _ core.Entity = (*Pokemon)(nil)

// GetID implements core.Entity
func (p *Pokemon) GetID() string {
	return p.ID
}

// GetType implements core.Entity
func (p *Pokemon) GetType() string {
	return EntityType
}

// Fainted reports whether the combatant has no HP left
func (p *Pokemon) Fainted() bool {
	return p.HP <= 0
}

// HasType reports whether the combatant carries the given type
func (p *Pokemon) HasType(t string) bool {
	for _, own := range p.Types {
		if own == t {
			return true
		}
	}
	return false
}

// Move returns the move in a 1-based slot, or nil
func (p *Pokemon) Move(slot int) *MoveState {
	if slot < 1 || slot > len(p.Moves) {
		return nil
	}
	return &p.Moves[slot-1]
}

// SubtractHP removes floor(damage) HP, at least 1, never going below 0. It returns the
// HP actually removed.
func (p *Pokemon) SubtractHP(damage float64) int {
	amount := max(1, int(damage))
	before := p.HP
	p.HP = max(0, p.HP-amount)
	return before - p.HP
}

// ResetTransient clears boosts and volatiles when leaving an active slot
func (p *Pokemon) ResetTransient() {
	p.Boosts = Boosts{}
	p.Volatiles = nil
}

// Clone returns a deep copy
func (p *Pokemon) Clone() *Pokemon {
	if p == nil {
		return nil
	}
	out := *p
	out.Build = p.Build.Clone()
	out.Types = append([]string(nil), p.Types...)
	out.Moves = append([]MoveState(nil), p.Moves...)
	if p.Volatiles != nil {
		out.Volatiles = make(map[string]int, len(p.Volatiles))
		for k, v := range p.Volatiles {
			out.Volatiles[k] = v
		}
	}
	return &out
}
