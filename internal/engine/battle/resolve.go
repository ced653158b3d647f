package battle

import (
	"slices"

	"github.com/KirkDiggler/rpg-battle/internal/dex"
	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// tiebreakSides is the die size of the speed tie breaker
const tiebreakSides = 1000

// run resolves every pending action: passes, then switches in slot order, then moves one
// at a time, re-ranking the remaining moves before each execution
func (t *transition) run() error {
	s := t.next
	t.setPhase(entities.PhaseRun)

	for _, pos := range s.Positions() {
		if s.Action(pos).Type == entities.ActionPass {
			s.SetAction(pos, entities.Action{})
		}
	}

	for _, pos := range s.Positions() {
		action := s.Action(pos)
		if action.Type != entities.ActionSwitch {
			continue
		}
		s.SetAction(pos, entities.Action{})
		p := s.Player(pos.PlayerID)
		if p.ActivePokemon(pos.Slot) == nil || p.BenchPokemon(action.Bench) == nil {
			continue
		}
		t.switchIn(p, pos.Slot, action.Bench)
	}

	for {
		order, err := t.rankMoves()
		if err != nil {
			return err
		}
		s.TurnOrder = order
		if len(order) == 0 {
			break
		}
		top := entities.Position{PlayerID: order[0].PlayerID, Slot: order[0].Slot}
		action := s.Action(top)
		s.SetAction(top, entities.Action{})
		if err := t.executeMove(top, action); err != nil {
			return err
		}
	}

	if t.checkEnd() {
		return nil
	}

	forced := false
	for _, p := range s.Players {
		p.ForcedSwitches = forcedSlots(p)
		if len(p.ForcedSwitches) > 0 {
			forced = true
		}
	}
	if forced {
		t.setPhase(entities.PhaseSwitch)
		return nil
	}
	t.finalizeTurn()
	return nil
}

// rankMoves orders the still pending moves by priority, then speed, then a fresh tie
// breaker. Moves whose user has left the field are dropped.
func (t *transition) rankMoves() ([]entities.TurnOrderEntry, error) {
	s := t.next
	var order []entities.TurnOrderEntry
	for _, pos := range s.Positions() {
		action := s.Action(pos)
		if action.Type != entities.ActionMove {
			continue
		}
		mon := s.Occupant(pos)
		if mon == nil || mon.Move(action.Move) == nil {
			s.SetAction(pos, entities.Action{})
			continue
		}
		move, err := t.battle.engine.Move(mon.Move(action.Move).ID)
		if err != nil {
			return nil, err
		}
		order = append(order, entities.TurnOrderEntry{
			PlayerID: pos.PlayerID,
			Slot:     pos.Slot,
			Priority: move.Priority,
			Speed:    t.battle.engine.Speed(s, mon),
			Tiebreak: t.roll(tiebreakSides),
		})
	}
	slices.SortStableFunc(order, func(a, b entities.TurnOrderEntry) int {
		if a.Priority != b.Priority {
			return b.Priority - a.Priority
		}
		if a.Speed != b.Speed {
			return b.Speed - a.Speed
		}
		return b.Tiebreak - a.Tiebreak
	})
	return order, nil
}

// targets resolves the positions a move hits
func (t *transition) targets(pos entities.Position, move *dex.Move, target int) ([]entities.Position, error) {
	s := t.next
	rival := entities.RivalID(pos.PlayerID)
	switch move.Target {
	case dex.TargetNormal:
		direct := entities.Position{PlayerID: rival, Slot: target}
		if s.Occupant(direct) != nil {
			return []entities.Position{direct}, nil
		}
		mirrored := entities.Position{PlayerID: rival, Slot: s.AllySlot(target)}
		if s.Occupant(mirrored) != nil {
			return []entities.Position{mirrored}, nil
		}
		return nil, nil
	case dex.TargetAllAdjacentFoes:
		var out []entities.Position
		for slot := 1; slot <= s.Format.ActiveSlots; slot++ {
			foe := entities.Position{PlayerID: rival, Slot: slot}
			if s.Occupant(foe) != nil {
				out = append(out, foe)
			}
		}
		return out, nil
	default:
		return nil, errors.Internalf("unrecognized target class: %s", move.Target).
			WithMeta("move", move.ID)
	}
}

func (t *transition) executeMove(pos entities.Position, action entities.Action) error {
	s := t.next
	rules := t.battle.engine
	attacker := s.Occupant(pos)
	slot := attacker.Move(action.Move)
	move, err := rules.Move(slot.ID)
	if err != nil {
		return err
	}
	slot.PP = max(0, slot.PP-1)
	t.emit(EventMoveUsed, attacker, nil, map[string]any{KeySide: pos.PlayerID, KeySlot: pos.Slot, KeyMove: move.ID})

	targets, err := t.targets(pos, move, action.Target)
	if err != nil {
		return err
	}

	attack := &dex.AttackContext{Attacker: attacker, Move: move}
	for _, tpos := range targets {
		target := s.Occupant(tpos)
		if target == nil {
			continue
		}
		accuracy := rules.Accuracy(s, attacker, target, move)
		if float64(t.roll(100)) > accuracy {
			t.emit(EventMoveMissed, attacker, target, map[string]any{KeyMove: move.ID})
			continue
		}
		if move.Damaging() {
			dmg, err := rules.Damage(s, t.dice(), attacker, target, move)
			if err != nil {
				return err
			}
			if dmg != nil {
				removed := rules.ApplyDamage(s, dmg)
				attack.DidDamage = true
				t.emit(EventDamaged, attacker, target, map[string]any{
					KeyMove:   move.ID,
					KeyDamage: removed,
					KeyHP:     target.HP,
				})
			}
		}
		if target.Fainted() {
			t.faint(tpos)
		}
	}
	rules.Hooks().AfterAttack(s, attack)

	// after-attack effects such as recoil can knock anyone out
	for _, p := range s.OccupiedPositions() {
		if s.Occupant(p).Fainted() {
			t.faint(p)
		}
	}
	return nil
}

// faint vacates an active slot right away, moving the entity to the first empty bench slot
func (t *transition) faint(pos entities.Position) {
	p := t.next.Player(pos.PlayerID)
	mon := p.ActivePokemon(pos.Slot)
	if mon == nil {
		return
	}
	mon.ResetTransient()
	p.Active[pos.Slot-1] = nil
	p.Actions[pos.Slot-1] = entities.Action{}
	if idx := p.FirstEmptyBench(); idx > 0 {
		p.Bench[idx-1] = mon
	}
	p.CompactBench()
	t.emit(EventFainted, mon, nil, map[string]any{KeySide: pos.PlayerID, KeySlot: pos.Slot})
}

// forcedSlots flags the lowest empty active slots that the side's healthy bench can fill
func forcedSlots(p *entities.Player) []int {
	healthy := p.HealthyBenchCount()
	var out []int
	for i, mon := range p.Active {
		if len(out) == healthy {
			break
		}
		if mon == nil {
			out = append(out, i+1)
		}
	}
	return out
}

// checkEnd ends the battle once a side has nothing left to fight with
func (t *transition) checkEnd() bool {
	s := t.next
	var standing []int
	for _, p := range s.Players {
		if p.CanBattle() {
			standing = append(standing, p.ID)
		}
	}
	if len(standing) == len(s.Players) {
		return false
	}
	result := entities.Result{}
	if len(standing) == 1 {
		result.Winner = standing[0]
	}
	for _, p := range s.Players {
		for i := range p.Actions {
			p.Actions[i] = entities.Action{}
		}
		p.ForcedSwitches = nil
	}
	s.TurnOrder = nil
	s.Result = &result
	t.setPhase(entities.PhaseEnd)
	t.emit(EventEnded, nil, nil, map[string]any{KeyWinner: result.Winner})
	return true
}
