package battle

import (
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-battle/internal/dex"
	"github.com/KirkDiggler/rpg-battle/internal/engine/rng"
	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// transition derives the next state from the committed one. Nothing it touches is visible
// outside the battle until apply commits it.
type transition struct {
	battle *Battle
	next   *entities.State
	source *rng.Source
	events []events.Event

	// joining is set by SetPlayer so the handler is registered with the commit
	joining bool
	joiner  Handler
}

func (b *Battle) newTransition() *transition {
	return &transition{
		battle: b,
		next:   b.state.Clone(),
	}
}

// dice returns the RNG for this transition, restoring it from the state on first use.
// Drawing before the battle has begun is a sequencing bug.
func (t *transition) dice() *rng.Source {
	if t.source != nil {
		return t.source
	}
	if len(t.next.RNG) == 0 {
		panic("battle: rng used before seeding")
	}
	src, err := rng.Restore(t.next.RNG)
	if err != nil {
		panic(err)
	}
	t.source = src
	return src
}

func (t *transition) roll(size int) int {
	v, err := t.dice().Roll(size)
	if err != nil {
		panic(err)
	}
	return v
}

// finish writes the advanced RNG back into the state
func (t *transition) finish() {
	if t.source != nil {
		t.next.RNG = t.source.State()
	}
}

func (t *transition) setPhase(phase entities.Phase) {
	if t.next.Phase == phase {
		return
	}
	from := t.next.Phase
	t.next.Phase = phase
	t.emit(EventPhaseChanged, nil, nil, map[string]any{KeyPhase: phase.String(), "from": from.String()})
}

// settle runs automatic transitions until the battle waits for input
func (t *transition) settle() error {
	for {
		s := t.next
		switch s.Phase {
		case entities.PhaseTeamPreview:
			if !allSelected(s) {
				return nil
			}
			t.begin()
		case entities.PhaseChoice:
			if len(s.SlotsMissingAction()) > 0 {
				return nil
			}
			if err := t.run(); err != nil {
				return err
			}
		case entities.PhaseSwitch:
			for _, p := range s.Players {
				if len(p.ForcedSwitches) > 0 {
					return nil
				}
			}
			t.finalizeTurn()
		default:
			return nil
		}
	}
}

func allSelected(s *entities.State) bool {
	if len(s.Players) < entities.NumPlayers {
		return false
	}
	for _, p := range s.Players {
		if !p.Selected {
			return false
		}
	}
	return true
}

// begin seeds the RNG, sends out every side's leads and starts turn 1
func (t *transition) begin() {
	s := t.next
	s.RNG = rng.Seed(t.battle.seed)
	s.Field.Weather = nil

	var entered []entities.Position
	for _, p := range s.Players {
		for slot := 1; slot <= s.Format.ActiveSlots; slot++ {
			if !p.IsForced(slot) {
				continue
			}
			action := p.Actions[slot-1]
			if action.Type != entities.ActionSwitch {
				continue
			}
			t.place(p, slot, action.Bench)
			entered = append(entered, entities.Position{PlayerID: p.ID, Slot: slot})
		}
		p.CompactBench()
	}
	// leads enter together, then their entry effects resolve in slot order
	for _, pos := range entered {
		t.raiseActive(pos)
	}
	t.finalizeTurn()
}

// place swaps a bench entity into an active slot without raising entry effects
func (t *transition) place(p *entities.Player, slot, bench int) *entities.Pokemon {
	out := p.Active[slot-1]
	in := p.Bench[bench-1]
	if out != nil {
		out.ResetTransient()
	}
	p.Active[slot-1] = in
	p.Bench[bench-1] = out
	p.RemoveForced(slot)
	p.Actions[slot-1] = entities.Action{}
	t.emit(EventSwitchedIn, in, out, map[string]any{KeySide: p.ID, KeySlot: slot})
	return in
}

func (t *transition) raiseActive(pos entities.Position) {
	mon := t.next.Occupant(pos)
	if mon == nil {
		return
	}
	t.battle.engine.Hooks().Active(t.next, &dex.ActiveContext{Entity: mon, Position: pos})
}

// switchIn swaps an entity in and raises its entry effects
func (t *transition) switchIn(p *entities.Player, slot, bench int) {
	t.place(p, slot, bench)
	t.raiseActive(entities.Position{PlayerID: p.ID, Slot: slot})
}

// finalizeTurn clears the action buffers, ticks field effects and opens the next turn
func (t *transition) finalizeTurn() {
	s := t.next
	if s.Turn > 0 {
		t.tickWeather()
	}
	for _, pos := range s.Positions() {
		if s.Occupant(pos) == nil {
			s.SetAction(pos, entities.PassAction())
		} else {
			s.SetAction(pos, entities.Action{})
		}
	}
	s.TurnOrder = nil
	s.Turn++
	t.setPhase(entities.PhaseChoice)
	t.emit(EventTurnStarted, nil, nil, nil)
}

func (t *transition) tickWeather() {
	w := t.next.Field.Weather
	if w == nil {
		return
	}
	w.TurnsLeft--
	if w.TurnsLeft <= 0 {
		t.next.Field.Weather = nil
		t.emit(EventWeatherEnded, nil, nil, map[string]any{KeyWeather: w.ID})
	}
}

// player resolves a side id for a command
func (t *transition) player(side int) (*entities.Player, error) {
	p := t.next.Player(side)
	if p == nil {
		return nil, errors.InvalidArgumentf("unknown side: %d", side)
	}
	return p, nil
}
