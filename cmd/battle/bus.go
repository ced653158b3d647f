package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	battleengine "github.com/KirkDiggler/rpg-battle/internal/engine/battle"
)

// loggingBus writes every published battle event to the debug log before delivering it
type loggingBus struct {
	events.EventBus
}

func newLoggingBus(bus events.EventBus) *loggingBus {
	return &loggingBus{EventBus: bus}
}

func (b *loggingBus) Publish(ctx context.Context, e events.Event) error {
	attrs := []any{"event", e.Type()}
	if src := e.Source(); src != nil {
		attrs = append(attrs, "source", src.GetID())
	}
	if dst := e.Target(); dst != nil {
		attrs = append(attrs, "target", dst.GetID())
	}
	for _, key := range []string{
		battleengine.KeyBattleID,
		battleengine.KeyTurn,
		battleengine.KeyMove,
		battleengine.KeyDamage,
		battleengine.KeyWinner,
	} {
		if v, ok := e.Context().Get(key); ok {
			attrs = append(attrs, key, v)
		}
	}
	slog.DebugContext(ctx, "battle event", attrs...)
	return b.EventBus.Publish(ctx, e)
}
