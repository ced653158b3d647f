// Package battle is the battle state machine. It owns the phase and turn lifecycle, validates
// and stages per-slot actions, resolves turns through the rules engine and notifies each
// side's Handler.
//
// Every command works on a copy of the current state and commits it only when the command
// and every transition it cascades into succeed, so a rejected command leaves the state
// untouched. A Battle is not safe for concurrent use; hosts serialize commands.
package battle

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-battle/internal/engine"
	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Battle is a single two-sided battle
type Battle struct {
	id       string
	engine   engine.Engine
	bus      events.EventBus
	seed     uint64
	state    *entities.State
	handlers []Handler
}

// Config contains configuration for creating a battle
type Config struct {
	// ID tags events and logs
	ID     string
	Engine engine.Engine
	Format entities.Format
	// Seed initializes the RNG when the battle begins
	Seed uint64
	// EventBus receives the battle log. Optional.
	EventBus events.EventBus
}

// Validate checks that all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Engine == nil {
		vb.RequiredField("Engine")
	}
	validateFormat(cfg.Format, vb)
	return vb.Build()
}

func validateFormat(f entities.Format, vb *errors.ValidationBuilder) {
	if f.ActiveSlots < 1 || f.ActiveSlots > 2 {
		vb.Fieldf("Format.ActiveSlots", "must be 1 or 2, got %d", f.ActiveSlots)
	}
	if f.RosterSubsetSize < f.ActiveSlots {
		vb.Fieldf("Format.RosterSubsetSize", "must be at least %d, got %d", f.ActiveSlots, f.RosterSubsetSize)
	}
}

// New creates a battle waiting for its two players
func New(cfg *Config) (*Battle, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Battle{
		id:     cfg.ID,
		engine: cfg.Engine,
		bus:    cfg.EventBus,
		seed:   cfg.Seed,
		state:  entities.NewState(cfg.Format),
	}, nil
}

// Restore rebuilds a battle from a committed state. The configured format is ignored in
// favour of the state's. Handlers are not part of the state; reattach them with Attach.
func Restore(cfg *Config, state *entities.State) (*Battle, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if state == nil {
		return nil, errors.InvalidArgument("state is required")
	}
	restored := *cfg
	restored.Format = state.Format
	if err := restored.Validate(); err != nil {
		return nil, err
	}
	if len(state.Players) > entities.NumPlayers {
		return nil, errors.InvalidArgumentf("state has %d players", len(state.Players))
	}
	return &Battle{
		id:       cfg.ID,
		engine:   cfg.Engine,
		bus:      cfg.EventBus,
		seed:     cfg.Seed,
		state:    state.Clone(),
		handlers: make([]Handler, len(state.Players)),
	}, nil
}

// Attach sets the handler of an already registered side
func (b *Battle) Attach(side int, h Handler) error {
	if side < 1 || side > len(b.handlers) {
		return errors.InvalidArgumentf("unknown side: %d", side)
	}
	b.handlers[side-1] = h
	return nil
}

// ID returns the battle id
func (b *Battle) ID() string {
	return b.id
}

// State returns a copy of the committed state
func (b *Battle) State() *entities.State {
	return b.state.Clone()
}

// Turn returns the current turn
func (b *Battle) Turn() int {
	return b.state.Turn
}

// Phase returns the current phase
func (b *Battle) Phase() entities.Phase {
	return b.state.Phase
}

// Format returns the battle format
func (b *Battle) Format() entities.Format {
	return b.state.Format
}

// Result returns the outcome once the battle has ended
func (b *Battle) Result() (entities.Result, bool) {
	if b.state.Result == nil {
		return entities.Result{}, false
	}
	return *b.state.Result, true
}

// SlotsMissingAction lists a side's active slots still waiting for an action
func (b *Battle) SlotsMissingAction(side int) []int {
	var out []int
	for _, pos := range b.state.SlotsMissingAction() {
		if pos.PlayerID == side {
			out = append(out, pos.Slot)
		}
	}
	return out
}

// HasForcedSwitchesLeft reports whether a side still owes mandatory switches
func (b *Battle) HasForcedSwitchesLeft(side int) bool {
	p := b.state.Player(side)
	return p != nil && len(p.ForcedSwitches) > 0
}

// ForcedSwitches lists a side's slots awaiting a mandatory switch
func (b *Battle) ForcedSwitches(side int) []int {
	p := b.state.Player(side)
	if p == nil {
		return nil
	}
	return append([]int(nil), p.ForcedSwitches...)
}

// View returns the battle as seen by a side
func (b *Battle) View(side int) View {
	return ViewFor(b.state, side)
}

// Commander returns a commander bound to a side
func (b *Battle) Commander(side int) Commander {
	return Commander{battle: b, side: side}
}

// apply runs a command as one transition. The command and everything it cascades into
// commit together or not at all; events and notifications follow the commit.
func (b *Battle) apply(ctx context.Context, command func(t *transition) error) error {
	prev := b.state
	t := b.newTransition()
	if err := command(t); err != nil {
		return err
	}
	if err := t.settle(); err != nil {
		return err
	}
	t.finish()

	b.state = t.next
	if t.joining {
		b.handlers = append(b.handlers, t.joiner)
	}
	if prev.Phase != b.state.Phase || prev.Turn != b.state.Turn {
		slog.Debug("battle transition",
			"battle_id", b.id,
			"from_phase", prev.Phase,
			"phase", b.state.Phase,
			"turn", b.state.Turn)
	}
	b.publish(ctx, t.events)
	b.notify(ctx, prev, b.state)
	return nil
}

func (b *Battle) handler(side int) Handler {
	if side < 1 || side > len(b.handlers) {
		return nil
	}
	return b.handlers[side-1]
}

// current reports whether the committed state is still at the given phase and turn. A
// re-entrant command may have moved the battle on while notifications were being delivered.
func (b *Battle) current(phase entities.Phase, turn int) bool {
	return b.state.Phase == phase && b.state.Turn == turn
}

func (b *Battle) notify(ctx context.Context, prev, next *entities.State) {
	phase, turn := next.Phase, next.Turn
	switch {
	case phase == entities.PhaseTeamPreview && prev.Phase == entities.PhaseSettingPlayers:
		for _, p := range next.Players {
			h := b.handler(p.ID)
			if h == nil || !b.current(phase, turn) {
				continue
			}
			own, rival := RosterViews(b.state, p.ID)
			h.OnTeamPreview(ctx, b.Commander(p.ID), own, rival)
		}
	case phase == entities.PhaseChoice && (prev.Phase != phase || prev.Turn != turn):
		for _, p := range next.Players {
			h := b.handler(p.ID)
			if h == nil || !b.current(phase, turn) {
				continue
			}
			h.OnMove(ctx, b.Commander(p.ID), ViewFor(b.state, p.ID))
		}
	case phase == entities.PhaseSwitch && prev.Phase != phase:
		for _, p := range next.Players {
			h := b.handler(p.ID)
			if h == nil || !b.current(phase, turn) || !b.HasForcedSwitchesLeft(p.ID) {
				continue
			}
			h.OnForceSwitch(ctx, b.Commander(p.ID), ViewFor(b.state, p.ID), b.ForcedSwitches(p.ID))
		}
	case phase == entities.PhaseEnd && prev.Phase != phase:
		result, _ := b.Result()
		for _, p := range next.Players {
			if h := b.handler(p.ID); h != nil {
				h.OnEnd(ctx, result)
			}
		}
	}
}
