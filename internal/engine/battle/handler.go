package battle

import (
	"context"

	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
)

// Handler receives a side's notifications. Handlers run synchronously inside the command
// that caused them and may issue commands through the Commander; those commands complete
// before the remaining notifications of the outer command are delivered.
type Handler interface {
	OnTeamPreview(ctx context.Context, cmd Commander, own RosterView, rival RivalRosterView)
	OnMove(ctx context.Context, cmd Commander, view View)
	OnForceSwitch(ctx context.Context, cmd Commander, view View, slots []int)
	OnEnd(ctx context.Context, result entities.Result)
}

// HandlerFuncs adapts optional functions to a Handler. Nil functions ignore the notification.
type HandlerFuncs struct {
	TeamPreview func(ctx context.Context, cmd Commander, own RosterView, rival RivalRosterView)
	Move        func(ctx context.Context, cmd Commander, view View)
	ForceSwitch func(ctx context.Context, cmd Commander, view View, slots []int)
	End         func(ctx context.Context, result entities.Result)
}

var _ Handler = HandlerFuncs{}

// OnTeamPreview implements Handler
func (h HandlerFuncs) OnTeamPreview(ctx context.Context, cmd Commander, own RosterView, rival RivalRosterView) {
	if h.TeamPreview != nil {
		h.TeamPreview(ctx, cmd, own, rival)
	}
}

// OnMove implements Handler
func (h HandlerFuncs) OnMove(ctx context.Context, cmd Commander, view View) {
	if h.Move != nil {
		h.Move(ctx, cmd, view)
	}
}

// OnForceSwitch implements Handler
func (h HandlerFuncs) OnForceSwitch(ctx context.Context, cmd Commander, view View, slots []int) {
	if h.ForceSwitch != nil {
		h.ForceSwitch(ctx, cmd, view, slots)
	}
}

// OnEnd implements Handler
func (h HandlerFuncs) OnEnd(ctx context.Context, result entities.Result) {
	if h.End != nil {
		h.End(ctx, result)
	}
}

// Commander issues commands on behalf of one side
type Commander struct {
	battle *Battle
	side   int
}

// Side returns the side this commander acts for
func (c Commander) Side() int {
	return c.side
}

// Select picks the roster subset during team preview
func (c Commander) Select(ctx context.Context, indices []int) error {
	return c.battle.Select(ctx, c.side, indices)
}

// Move chooses a move for an active slot
func (c Commander) Move(ctx context.Context, slot, move, target int) error {
	return c.battle.Move(ctx, c.side, slot, move, target)
}

// Switch swaps an active slot with a bench slot
func (c Commander) Switch(ctx context.Context, slot, bench int) error {
	return c.battle.Switch(ctx, c.side, slot, bench)
}
