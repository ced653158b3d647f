package main

import (
	"context"
	"log/slog"

	battleengine "github.com/KirkDiggler/rpg-battle/internal/engine/battle"
	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
)

// simulation describes one bot versus bot battle
type simulation struct {
	Format   entities.FormatID
	Seed     *uint64
	Roster   []entities.Build
	MaxTurns int
}

// summary is the outcome of a finished simulation
type summary struct {
	BattleID string
	Seed     uint64
	Turns    int
	Winner   int
}

// simulate plays a battle through the service until it ends. Each side is a bot that
// answers its latest prompt with the first legal command it finds.
func simulate(ctx context.Context, svc battle.Service, sim *simulation) (*summary, error) {
	created, err := svc.CreateBattle(ctx, &battle.CreateBattleInput{Format: sim.Format, Seed: sim.Seed})
	if err != nil {
		return nil, err
	}
	id := created.BattleID
	slog.Info("battle created", "battle_id", id, "format", sim.Format, "seed", created.Seed)

	for side := 1; side <= entities.NumPlayers; side++ {
		if _, err := svc.JoinBattle(ctx, &battle.JoinBattleInput{BattleID: id, Roster: sim.Roster}); err != nil {
			return nil, errors.Wrapf(err, "side %d failed to join", side)
		}
	}

	bots := []*bot{
		{side: 1, svc: svc, battleID: id, subset: created.Format.RosterSubsetSize},
		{side: 2, svc: svc, battleID: id, subset: created.Format.RosterSubsetSize},
	}
	for {
		progressed := false
		for _, b := range bots {
			got, err := svc.GetBattle(ctx, &battle.GetBattleInput{BattleID: id, Side: b.side})
			if err != nil {
				return nil, err
			}
			if got.Phase == entities.PhaseEnd {
				out := &summary{BattleID: id, Seed: created.Seed, Turns: got.Turn}
				if got.Result != nil {
					out.Winner = got.Result.Winner
				}
				return out, nil
			}
			if got.Turn > sim.MaxTurns {
				return nil, errors.ResourceExhaustedf("battle %s still running after %d turns", id, sim.MaxTurns).
					WithMeta("battle_id", id)
			}
			if got.Prompt == nil {
				continue
			}
			if err := b.answer(ctx, got.Prompt); err != nil {
				return nil, err
			}
			progressed = true
		}
		if !progressed {
			return nil, errors.Internalf("battle %s is waiting on neither side", id).WithMeta("battle_id", id)
		}
	}
}

type bot struct {
	side     int
	svc      battle.Service
	battleID string
	subset   int
}

func (b *bot) answer(ctx context.Context, prompt *battle.Prompt) error {
	switch prompt.Kind {
	case battle.PromptTeamPreview:
		return b.selectTeam(ctx, len(prompt.Own.Team))
	case battle.PromptMove:
		return b.chooseMove(ctx, prompt.View, prompt.Slots[0])
	case battle.PromptForceSwitch:
		return b.replace(ctx, prompt.View, prompt.Slots[0])
	case battle.PromptEnd:
		return nil
	default:
		return errors.Internalf("unknown prompt kind: %s", prompt.Kind)
	}
}

// selectTeam takes the front of the roster for side 1 and the back for side 2
func (b *bot) selectTeam(ctx context.Context, size int) error {
	indices := make([]int, 0, b.subset)
	for i := 0; i < b.subset; i++ {
		if b.side == 1 {
			indices = append(indices, i+1)
		} else {
			indices = append(indices, size-i)
		}
	}
	_, err := b.svc.SelectTeam(ctx, &battle.SelectTeamInput{BattleID: b.battleID, Side: b.side, Indices: indices})
	return err
}

// chooseMove tries each move in order and falls back to a switch when none is accepted
func (b *bot) chooseMove(ctx context.Context, view *battleengine.View, slot int) error {
	mon := view.Own.Active[slot-1]
	target := firstOccupied(view.Rival.Active)
	for i, move := range mon.Moves {
		if move.Disabled || move.PP <= 0 {
			continue
		}
		_, err := b.svc.SubmitMove(ctx, &battle.SubmitMoveInput{
			BattleID: b.battleID,
			Side:     b.side,
			Slot:     slot,
			Move:     i + 1,
			Target:   target,
		})
		if err == nil {
			return nil
		}
		slog.Debug("bot move rejected", "side", b.side, "slot", slot, "move", move.ID, "error", err)
	}
	return b.stageSwitch(ctx, view, slot)
}

func (b *bot) stageSwitch(ctx context.Context, view *battleengine.View, slot int) error {
	for i, mon := range view.Own.Bench {
		if mon == nil || mon.Fainted() {
			continue
		}
		_, err := b.svc.SubmitSwitch(ctx, &battle.SubmitSwitchInput{
			BattleID: b.battleID,
			Side:     b.side,
			Slot:     slot,
			Bench:    i + 1,
		})
		if err == nil {
			return nil
		}
	}
	return errors.FailedPreconditionf("side %d has no legal command for slot %d", b.side, slot)
}

func (b *bot) replace(ctx context.Context, view *battleengine.View, slot int) error {
	return b.stageSwitch(ctx, view, slot)
}

func firstOccupied(active []*entities.Pokemon) int {
	for i, mon := range active {
		if mon != nil {
			return i + 1
		}
	}
	return 1
}
