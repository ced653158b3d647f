package battle

import (
	"context"

	"github.com/KirkDiggler/rpg-battle/internal/dex"
	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

func phaseError(op string, phase entities.Phase) *errors.Error {
	return errors.FailedPreconditionf("cannot %s during phase %s", op, phase).
		WithMeta("phase", phase.String())
}

// SetPlayer registers a side with its roster and handler and returns the side id. The
// second registration opens team preview.
func (b *Battle) SetPlayer(ctx context.Context, roster []entities.Build, h Handler) (int, error) {
	var side int
	err := b.apply(ctx, func(t *transition) error {
		s := t.next
		if s.Phase != entities.PhaseSettingPlayers || len(s.Players) >= entities.NumPlayers {
			return errors.FailedPrecondition("cannot set more than two players")
		}
		side = len(s.Players) + 1
		if len(roster) < s.Format.RosterSubsetSize {
			return errors.InvalidArgumentf("roster needs at least %d members, got %d",
				s.Format.RosterSubsetSize, len(roster))
		}
		for i, build := range roster {
			if _, err := b.engine.NewPokemon(side, i+1, build); err != nil {
				return errors.Wrapf(err, "invalid roster member %d", i+1)
			}
		}

		s.Players = append(s.Players, &entities.Player{
			ID:     side,
			Roster: entities.CloneBuilds(roster),
		})
		s.Field.Sides = append(s.Field.Sides, entities.SideField{})
		t.joining = true
		t.joiner = h
		if len(s.Players) == entities.NumPlayers {
			t.setPhase(entities.PhaseTeamPreview)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return side, nil
}

// Select picks the roster members that will fight, by 1-based roster index. Indices outside
// the roster and duplicates are ignored; exactly RosterSubsetSize must remain. The first
// ActiveSlots picks lead.
func (b *Battle) Select(ctx context.Context, side int, indices []int) error {
	return b.apply(ctx, func(t *transition) error {
		s := t.next
		if s.Phase != entities.PhaseTeamPreview {
			return phaseError("select", s.Phase)
		}
		p, err := t.player(side)
		if err != nil {
			return err
		}
		if p.Selected {
			return errors.FailedPreconditionf("side %d has already selected", side)
		}

		chosen := filterIndices(indices, len(p.Roster))
		if len(chosen) != s.Format.RosterSubsetSize {
			return errors.InvalidArgumentf("must select exactly %d roster members, got %d",
				s.Format.RosterSubsetSize, len(chosen)).
				WithMeta("side", side)
		}

		bench := make([]*entities.Pokemon, 0, len(chosen))
		for _, idx := range chosen {
			mon, err := b.engine.NewPokemon(side, idx, p.Roster[idx-1])
			if err != nil {
				return errors.Wrapf(err, "failed to create roster member %d", idx)
			}
			bench = append(bench, mon)
		}

		slots := s.Format.ActiveSlots
		p.Bench = bench
		p.Active = make([]*entities.Pokemon, slots)
		p.Actions = make([]entities.Action, slots)
		p.ForcedSwitches = make([]int, 0, slots)
		for slot := 1; slot <= slots; slot++ {
			p.Actions[slot-1] = entities.SwitchAction(slot)
			p.ForcedSwitches = append(p.ForcedSwitches, slot)
		}
		p.Selected = true
		return nil
	})
}

func filterIndices(indices []int, size int) []int {
	seen := make(map[int]bool, len(indices))
	var out []int
	for _, idx := range indices {
		if idx < 1 || idx > size || seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	return out
}

// Move chooses a move for an active slot, replacing any pending action. target is a signed
// slot: positive for a foe, negative for an ally, 0 for none.
func (b *Battle) Move(ctx context.Context, side, slot, moveSlot, target int) error {
	return b.apply(ctx, func(t *transition) error {
		s := t.next
		if s.Phase != entities.PhaseChoice {
			return phaseError("move", s.Phase)
		}
		p, err := t.player(side)
		if err != nil {
			return err
		}
		slots := s.Format.ActiveSlots
		if slot < 1 || slot > slots {
			return errors.InvalidArgumentf("active slot %d out of range", slot).WithMeta("slot", slot)
		}
		if target < -slots || target > slots {
			return errors.InvalidArgumentf("target %d out of range", target).WithMeta("target", target)
		}
		mon := p.ActivePokemon(slot)
		if mon == nil {
			return errors.FailedPreconditionf("active slot %d is empty", slot).WithMeta("slot", slot)
		}
		state := mon.Move(moveSlot)
		if state == nil {
			return errors.InvalidArgumentf("move slot %d out of range", moveSlot).WithMeta("move_slot", moveSlot)
		}
		if state.Disabled {
			return errors.FailedPreconditionf("move %s is disabled", state.ID).WithMeta("move", state.ID)
		}
		if state.PP <= 0 {
			return errors.FailedPreconditionf("move %s has no PP left", state.ID).WithMeta("move", state.ID)
		}
		move, err := b.engine.Move(state.ID)
		if err != nil {
			return err
		}

		switch move.Target {
		case dex.TargetNormal:
			if target <= 0 {
				return errors.InvalidArgumentf("move %s needs a foe slot", move.ID).WithMeta("target", target)
			}
		case dex.TargetAllAdjacentFoes:
			target = 0
		default:
			return errors.Internalf("unrecognized target class: %s", move.Target).WithMeta("move", move.ID)
		}

		p.Actions[slot-1] = entities.MoveAction(moveSlot, target)
		return nil
	})
}

// Switch swaps an active slot with a bench slot. During choice it stages the switch for the
// turn; during the switch phase it fills a fainted slot immediately.
func (b *Battle) Switch(ctx context.Context, side, slot, bench int) error {
	return b.apply(ctx, func(t *transition) error {
		s := t.next
		if s.Phase != entities.PhaseChoice && s.Phase != entities.PhaseSwitch {
			return phaseError("switch", s.Phase)
		}
		p, err := t.player(side)
		if err != nil {
			return err
		}
		if slot < 1 || slot > s.Format.ActiveSlots {
			return errors.InvalidArgumentf("active slot %d out of range", slot).WithMeta("slot", slot)
		}
		if bench < 1 || bench > s.Format.RosterSubsetSize {
			return errors.InvalidArgumentf("bench slot %d out of range", bench).WithMeta("bench", bench)
		}
		incoming := p.BenchPokemon(bench)
		if incoming == nil {
			return errors.FailedPreconditionf("bench slot %d is empty", bench).WithMeta("bench", bench)
		}
		if incoming.Fainted() {
			return errors.FailedPreconditionf("cannot switch into fainted %s", incoming.ID).WithMeta("bench", bench)
		}

		if s.Phase == entities.PhaseSwitch {
			if !p.IsForced(slot) {
				return errors.FailedPreconditionf("active slot %d does not need a switch", slot).
					WithMeta("slot", slot)
			}
			t.switchIn(p, slot, bench)
			if len(p.ForcedSwitches) == 0 {
				p.CompactBench()
			}
			return nil
		}

		if p.ActivePokemon(slot) == nil {
			return errors.FailedPreconditionf("active slot %d is empty", slot).WithMeta("slot", slot)
		}
		for other, action := range p.Actions {
			if other+1 != slot && action.Type == entities.ActionSwitch && action.Bench == bench {
				return errors.FailedPreconditionf("bench slot %d is already switching in", bench).
					WithMeta("bench", bench)
			}
		}
		p.Actions[slot-1] = entities.SwitchAction(bench)
		return nil
	})
}
