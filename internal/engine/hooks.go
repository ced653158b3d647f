package engine

import (
	"github.com/KirkDiggler/rpg-battle/internal/dex"
	"github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Dispatcher invokes capability hooks for an extension point: the active weather first,
// then for every occupied active slot in enumeration order its ability followed by its
// held item. Undefined hooks are skipped.
type Dispatcher struct {
	dex *dex.Dex
}

// NewDispatcher creates a dispatcher over a capability table
func NewDispatcher(d *dex.Dex) *Dispatcher {
	return &Dispatcher{dex: d}
}

func dispatch[C any](d *Dispatcher, s *battle.State, pick func(*dex.Hooks) dex.Hook[C], ctx C) {
	if w := s.Field.Weather; w != nil {
		if weather, ok := d.dex.Weathers[w.ID]; ok {
			if hook := pick(&weather.Hooks); hook != nil {
				hook(s, nil, ctx)
			}
		}
	}
	for _, pos := range s.Positions() {
		// occupants are read live, an earlier hook may have changed them
		mon := s.Occupant(pos)
		if mon == nil {
			continue
		}
		if ability, ok := d.dex.Abilities[mon.Ability]; ok {
			if hook := pick(&ability.Hooks); hook != nil {
				hook(s, mon, ctx)
			}
		}
		if item, ok := d.dex.Items[mon.Item.ID]; ok {
			if hook := pick(&item.Hooks); hook != nil {
				hook(s, mon, ctx)
			}
		}
	}
}

// Active raises onActive
func (d *Dispatcher) Active(s *battle.State, ctx *dex.ActiveContext) {
	dispatch(d, s, func(h *dex.Hooks) dex.Hook[*dex.ActiveContext] { return h.OnActive }, ctx)
}

// BeforeSpeedCalculation raises onBeforeSpeedCalculation
func (d *Dispatcher) BeforeSpeedCalculation(s *battle.State, ctx *dex.SpeedContext) {
	dispatch(d, s, func(h *dex.Hooks) dex.Hook[*dex.SpeedContext] { return h.OnBeforeSpeedCalculation }, ctx)
}

// ModifyAccuracy raises onModifyAccuracy
func (d *Dispatcher) ModifyAccuracy(s *battle.State, ctx *dex.AccuracyContext) {
	dispatch(d, s, func(h *dex.Hooks) dex.Hook[*dex.AccuracyContext] { return h.OnModifyAccuracy }, ctx)
}

// BeforeDamageCalculation raises onBeforeDamageCalculation
func (d *Dispatcher) BeforeDamageCalculation(s *battle.State, ctx *dex.DamageContext) {
	dispatch(d, s, func(h *dex.Hooks) dex.Hook[*dex.DamageContext] { return h.OnBeforeDamageCalculation }, ctx)
}

// BeforeDamageApplication raises onBeforeDamageApplication
func (d *Dispatcher) BeforeDamageApplication(s *battle.State, ctx *dex.DamageContext) {
	dispatch(d, s, func(h *dex.Hooks) dex.Hook[*dex.DamageContext] { return h.OnBeforeDamageApplication }, ctx)
}

// AfterAttack raises onAfterAttack
func (d *Dispatcher) AfterAttack(s *battle.State, ctx *dex.AttackContext) {
	dispatch(d, s, func(h *dex.Hooks) dex.Hook[*dex.AttackContext] { return h.OnAfterAttack }, ctx)
}

// Trigger raises an extension point by name. The context must match the point.
func (d *Dispatcher) Trigger(point dex.HookPoint, s *battle.State, ctx any) error {
	ok := false
	switch point {
	case dex.OnActive:
		var c *dex.ActiveContext
		if c, ok = ctx.(*dex.ActiveContext); ok {
			d.Active(s, c)
		}
	case dex.OnBeforeSpeedCalculation:
		var c *dex.SpeedContext
		if c, ok = ctx.(*dex.SpeedContext); ok {
			d.BeforeSpeedCalculation(s, c)
		}
	case dex.OnModifyAccuracy:
		var c *dex.AccuracyContext
		if c, ok = ctx.(*dex.AccuracyContext); ok {
			d.ModifyAccuracy(s, c)
		}
	case dex.OnBeforeDamageCalculation:
		var c *dex.DamageContext
		if c, ok = ctx.(*dex.DamageContext); ok {
			d.BeforeDamageCalculation(s, c)
		}
	case dex.OnBeforeDamageApplication:
		var c *dex.DamageContext
		if c, ok = ctx.(*dex.DamageContext); ok {
			d.BeforeDamageApplication(s, c)
		}
	case dex.OnAfterAttack:
		var c *dex.AttackContext
		if c, ok = ctx.(*dex.AttackContext); ok {
			d.AfterAttack(s, c)
		}
	default:
		return errors.InvalidArgumentf("unknown hook point: %s", point)
	}
	if !ok {
		return errors.InvalidArgumentf("context %T does not match hook point %s", ctx, point)
	}
	return nil
}
