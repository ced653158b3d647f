package battle

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
)

// Battle log event types published on the configured event bus
const (
	EventPhaseChanged = "battle.phase_changed"
	EventTurnStarted  = "battle.turn_started"
	EventSwitchedIn   = "battle.switched_in"
	EventMoveUsed     = "battle.move_used"
	EventMoveMissed   = "battle.move_missed"
	EventDamaged      = "battle.damaged"
	EventFainted      = "battle.fainted"
	EventWeatherEnded = "battle.weather_ended"
	EventEnded        = "battle.ended"
)

// Keys set on event contexts
const (
	KeyBattleID = "battle_id"
	KeyTurn     = "turn"
	KeyPhase    = "phase"
	KeySide     = "side"
	KeySlot     = "slot"
	KeyMove     = "move"
	KeyDamage   = "damage"
	KeyHP       = "hp"
	KeyWeather  = "weather"
	KeyWinner   = "winner"
)

func entity(mon *entities.Pokemon) core.Entity {
	if mon == nil {
		return nil
	}
	return mon
}

// emit buffers an event; buffered events are published only once the transition commits
func (t *transition) emit(eventType string, source, target *entities.Pokemon, data map[string]any) {
	e := events.NewGameEvent(eventType, entity(source), entity(target))
	e.Context().Set(KeyBattleID, t.battle.id)
	e.Context().Set(KeyTurn, t.next.Turn)
	for k, v := range data {
		e.Context().Set(k, v)
	}
	t.events = append(t.events, e)
}

func (b *Battle) publish(ctx context.Context, buffered []events.Event) {
	if b.bus == nil {
		return
	}
	for _, e := range buffered {
		if err := b.bus.Publish(ctx, e); err != nil {
			slog.Warn("failed to publish battle event",
				"battle_id", b.id,
				"event", e.Type(),
				"error", err)
		}
	}
}
