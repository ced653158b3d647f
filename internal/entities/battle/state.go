package battle

// NumPlayers is the number of sides in a battle
const NumPlayers = 2

// Weather is the single global weather effect
type Weather struct {
	ID        string `json:"id"`
	TurnsLeft int    `json:"turns_left"`
}

// SideField holds effects scoped to one side of the field
type SideField struct {
	Effects map[string]int `json:"effects,omitempty"`
}

// Field holds global and per-side field effects
type Field struct {
	Weather *Weather       `json:"weather,omitempty"`
	Effects map[string]int `json:"effects,omitempty"`
	Sides   []SideField    `json:"sides"`
}

// Clone returns a deep copy of the field
func (f Field) Clone() Field {
	out := Field{
		Effects: cloneEffects(f.Effects),
		Sides:   make([]SideField, len(f.Sides)),
	}
	if f.Weather != nil {
		w := *f.Weather
		out.Weather = &w
	}
	for i, side := range f.Sides {
		out.Sides[i] = SideField{Effects: cloneEffects(side.Effects)}
	}
	return out
}

func cloneEffects(in map[string]int) map[string]int {
	if in == nil {
		return nil
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Player is one side of the battle
type Player struct {
	ID             int        `json:"id"`
	Roster         []Build    `json:"roster"`
	Selected       bool       `json:"selected"`
	Active         []*Pokemon `json:"active"`
	Bench          []*Pokemon `json:"bench"`
	Actions        []Action   `json:"actions"`
	ForcedSwitches []int      `json:"forced_switches"`
}

// ActivePokemon returns the occupant of a 1-based active slot, or nil
func (p *Player) ActivePokemon(slot int) *Pokemon {
	if slot < 1 || slot > len(p.Active) {
		return nil
	}
	return p.Active[slot-1]
}

// BenchPokemon returns the occupant of a 1-based bench slot, or nil
func (p *Player) BenchPokemon(slot int) *Pokemon {
	if slot < 1 || slot > len(p.Bench) {
		return nil
	}
	return p.Bench[slot-1]
}

// HasHealthyBench reports whether any bench entity can still battle
func (p *Player) HasHealthyBench() bool {
	return p.HealthyBenchCount() > 0
}

// HealthyBenchCount counts bench entities with HP left
func (p *Player) HealthyBenchCount() int {
	n := 0
	for _, mon := range p.Bench {
		if mon != nil && !mon.Fainted() {
			n++
		}
	}
	return n
}

// CanBattle reports whether the side has any entity with HP left
func (p *Player) CanBattle() bool {
	for _, mon := range p.Active {
		if mon != nil && !mon.Fainted() {
			return true
		}
	}
	return p.HasHealthyBench()
}

// IsForced reports whether a slot is awaiting a mandatory switch
func (p *Player) IsForced(slot int) bool {
	for _, s := range p.ForcedSwitches {
		if s == slot {
			return true
		}
	}
	return false
}

// RemoveForced drops a slot from the forced switch list
func (p *Player) RemoveForced(slot int) {
	out := p.ForcedSwitches[:0]
	for _, s := range p.ForcedSwitches {
		if s != slot {
			out = append(out, s)
		}
	}
	p.ForcedSwitches = out
}

// CompactBench moves occupied bench slots ahead of empty ones, keeping their order
func (p *Player) CompactBench() {
	out := make([]*Pokemon, 0, len(p.Bench))
	for _, mon := range p.Bench {
		if mon != nil {
			out = append(out, mon)
		}
	}
	for len(out) < len(p.Bench) {
		out = append(out, nil)
	}
	p.Bench = out
}

// FirstEmptyBench returns the first empty 1-based bench slot, or 0
func (p *Player) FirstEmptyBench() int {
	for i, mon := range p.Bench {
		if mon == nil {
			return i + 1
		}
	}
	return 0
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	out := &Player{
		ID:             p.ID,
		Roster:         CloneBuilds(p.Roster),
		Selected:       p.Selected,
		Actions:        append([]Action(nil), p.Actions...),
		ForcedSwitches: append([]int(nil), p.ForcedSwitches...),
	}
	if p.Active != nil {
		out.Active = make([]*Pokemon, len(p.Active))
		for i, mon := range p.Active {
			out.Active[i] = mon.Clone()
		}
	}
	if p.Bench != nil {
		out.Bench = make([]*Pokemon, len(p.Bench))
		for i, mon := range p.Bench {
			out.Bench[i] = mon.Clone()
		}
	}
	return out
}

// State is the single source of truth of a battle. The engine never mutates a State
// after it has been committed; every transition works on a Clone.
type State struct {
	Format    Format           `json:"format"`
	Phase     Phase            `json:"phase"`
	Turn      int              `json:"turn"`
	Players   []*Player        `json:"players"`
	Field     Field            `json:"field"`
	TurnOrder []TurnOrderEntry `json:"turn_order,omitempty"`
	RNG       []byte           `json:"rng,omitempty"`
	Result    *Result          `json:"result,omitempty"`
}

// NewState returns the initial state for a format
func NewState(format Format) *State {
	return &State{
		Format: format,
		Phase:  PhaseSettingPlayers,
		Field:  Field{Sides: []SideField{}},
	}
}

// Player returns a side by its 1-based id, or nil
func (s *State) Player(id int) *Player {
	if id < 1 || id > len(s.Players) {
		return nil
	}
	return s.Players[id-1]
}

// RivalID returns the id of the opposing side
func RivalID(id int) int {
	return NumPlayers - id + 1
}

// AllySlot returns the slot mirrored across the own side
func (s *State) AllySlot(slot int) int {
	return s.Format.ActiveSlots - slot + 1
}

// Positions enumerates every active slot: side 1 ascending, then side 2
func (s *State) Positions() []Position {
	out := make([]Position, 0, len(s.Players)*s.Format.ActiveSlots)
	for _, p := range s.Players {
		for slot := 1; slot <= s.Format.ActiveSlots; slot++ {
			out = append(out, Position{PlayerID: p.ID, Slot: slot})
		}
	}
	return out
}

// Occupant returns the active entity at a position, or nil
func (s *State) Occupant(pos Position) *Pokemon {
	p := s.Player(pos.PlayerID)
	if p == nil {
		return nil
	}
	return p.ActivePokemon(pos.Slot)
}

// OccupiedPositions enumerates active slots holding an entity, in enumeration order
func (s *State) OccupiedPositions() []Position {
	var out []Position
	for _, pos := range s.Positions() {
		if s.Occupant(pos) != nil {
			out = append(out, pos)
		}
	}
	return out
}

// Action returns the pending action for a position
func (s *State) Action(pos Position) Action {
	p := s.Player(pos.PlayerID)
	if p == nil || pos.Slot < 1 || pos.Slot > len(p.Actions) {
		return Action{}
	}
	return p.Actions[pos.Slot-1]
}

// SetAction stores the pending action for a position
func (s *State) SetAction(pos Position, action Action) {
	p := s.Player(pos.PlayerID)
	if p == nil || pos.Slot < 1 || pos.Slot > len(p.Actions) {
		return
	}
	p.Actions[pos.Slot-1] = action
}

// SlotsMissingAction lists active slots with no pending action
func (s *State) SlotsMissingAction() []Position {
	var out []Position
	for _, pos := range s.Positions() {
		if s.Action(pos).IsEmpty() {
			out = append(out, pos)
		}
	}
	return out
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	out := &State{
		Format:    s.Format,
		Phase:     s.Phase,
		Turn:      s.Turn,
		Players:   make([]*Player, len(s.Players)),
		Field:     s.Field.Clone(),
		TurnOrder: append([]TurnOrderEntry(nil), s.TurnOrder...),
		RNG:       append([]byte(nil), s.RNG...),
	}
	for i, p := range s.Players {
		out.Players[i] = p.Clone()
	}
	if s.Result != nil {
		r := *s.Result
		out.Result = &r
	}
	return out
}
