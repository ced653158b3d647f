package battle

import (
	"context"

	battleengine "github.com/KirkDiggler/rpg-battle/internal/engine/battle"
	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
)

// promptRecorder is a side's engine handler. It keeps the latest notification so that
// remote players can poll for it.
type promptRecorder struct {
	latest *Prompt
}

var _ battleengine.Handler = (*promptRecorder)(nil)

func (r *promptRecorder) OnTeamPreview(_ context.Context, _ battleengine.Commander, own battleengine.RosterView, rival battleengine.RivalRosterView) {
	r.latest = &Prompt{Kind: PromptTeamPreview, Own: &own, Rival: &rival}
}

func (r *promptRecorder) OnMove(_ context.Context, _ battleengine.Commander, view battleengine.View) {
	r.latest = &Prompt{Kind: PromptMove, Turn: view.Turn, View: &view}
}

func (r *promptRecorder) OnForceSwitch(_ context.Context, _ battleengine.Commander, view battleengine.View, slots []int) {
	r.latest = &Prompt{Kind: PromptForceSwitch, Turn: view.Turn, View: &view, Slots: slots}
}

func (r *promptRecorder) OnEnd(_ context.Context, result entities.Result) {
	r.latest = &Prompt{Kind: PromptEnd, Result: &result}
}

// promptFor returns what a side currently has to answer, or nil when it is waiting on the
// rival. The recorded notification is used when it matches the battle; otherwise, as after
// a restore, the prompt is rebuilt from the state. Forced switch prompts are always
// rebuilt since each switch changes the bench.
func promptFor(b *battleengine.Battle, rec *promptRecorder, side int) *Prompt {
	kind, ok := expectedPrompt(b, side)
	if !ok {
		return nil
	}
	if kind != PromptForceSwitch && rec != nil && rec.latest != nil &&
		rec.latest.Kind == kind && rec.latest.Turn == turnOf(b, kind) {
		out := *rec.latest
		if kind == PromptMove {
			out.Slots = b.SlotsMissingAction(side)
		}
		return &out
	}

	switch kind {
	case PromptTeamPreview:
		own, rival := battleengine.RosterViews(b.State(), side)
		return &Prompt{Kind: kind, Own: &own, Rival: &rival}
	case PromptMove:
		view := b.View(side)
		return &Prompt{Kind: kind, Turn: b.Turn(), View: &view, Slots: b.SlotsMissingAction(side)}
	case PromptForceSwitch:
		view := b.View(side)
		return &Prompt{Kind: kind, Turn: b.Turn(), View: &view, Slots: b.ForcedSwitches(side)}
	default:
		result, _ := b.Result()
		return &Prompt{Kind: PromptEnd, Result: &result}
	}
}

func turnOf(b *battleengine.Battle, kind PromptKind) int {
	switch kind {
	case PromptMove, PromptForceSwitch:
		return b.Turn()
	default:
		return 0
	}
}

// expectedPrompt reports which input the battle needs from a side right now
func expectedPrompt(b *battleengine.Battle, side int) (PromptKind, bool) {
	switch b.Phase() {
	case entities.PhaseTeamPreview:
		p := b.State().Player(side)
		return PromptTeamPreview, p != nil && !p.Selected
	case entities.PhaseChoice:
		return PromptMove, len(b.SlotsMissingAction(side)) > 0
	case entities.PhaseSwitch:
		return PromptForceSwitch, b.HasForcedSwitchesLeft(side)
	case entities.PhaseEnd:
		return PromptEnd, true
	default:
		return "", false
	}
}
