package dex

import "github.com/KirkDiggler/rpg-battle/internal/entities/battle"

// HookPoint names an extension point in the battle pipeline
type HookPoint string

// Extension points, in the order they occur during a turn
const (
	OnActive                  HookPoint = "onActive"
	OnBeforeSpeedCalculation  HookPoint = "onBeforeSpeedCalculation"
	OnModifyAccuracy          HookPoint = "onModifyAccuracy"
	OnBeforeDamageCalculation HookPoint = "onBeforeDamageCalculation"
	OnBeforeDamageApplication HookPoint = "onBeforeDamageApplication"
	OnAfterAttack             HookPoint = "onAfterAttack"
)

// ActiveContext is raised when an entity enters an active slot
type ActiveContext struct {
	Entity   *battle.Pokemon
	Position battle.Position
}

// SpeedContext carries the speed used to rank a pending move
type SpeedContext struct {
	Entity *battle.Pokemon
	Speed  float64
}

// AccuracyContext carries the hit chance of one attacker/target pair
type AccuracyContext struct {
	Attacker *battle.Pokemon
	Target   *battle.Pokemon
	Move     *Move
	Accuracy float64
}

// DamageContext is the in-flight damage computation of one attacker/target pair
type DamageContext struct {
	Attacker       *battle.Pokemon
	Target         *battle.Pokemon
	Move           *Move
	Level          int
	OffenseKey     battle.StatKey
	DefenseKey     battle.StatKey
	OffenseStat    float64
	DefenseStat    float64
	Power          float64
	STAB           bool
	TypeModifier   int
	RandomModifier int
	Damage         float64
}

// AttackContext is raised once an attack has resolved against every target
type AttackContext struct {
	Attacker  *battle.Pokemon
	Move      *Move
	DidDamage bool
}

// Hook is the shape shared by every hook. self is the entity owning the capability and
// is nil for field effects.
type Hook[C any] func(state *battle.State, self *battle.Pokemon, ctx C)

// Hooks has one optional field per extension point; nil fields are skipped
type Hooks struct {
	OnActive                  Hook[*ActiveContext]
	OnBeforeSpeedCalculation  Hook[*SpeedContext]
	OnModifyAccuracy          Hook[*AccuracyContext]
	OnBeforeDamageCalculation Hook[*DamageContext]
	OnBeforeDamageApplication Hook[*DamageContext]
	OnAfterAttack             Hook[*AttackContext]
}

// Defines reports whether a hook is set for a point
func (h *Hooks) Defines(point HookPoint) bool {
	switch point {
	case OnActive:
		return h.OnActive != nil
	case OnBeforeSpeedCalculation:
		return h.OnBeforeSpeedCalculation != nil
	case OnModifyAccuracy:
		return h.OnModifyAccuracy != nil
	case OnBeforeDamageCalculation:
		return h.OnBeforeDamageCalculation != nil
	case OnBeforeDamageApplication:
		return h.OnBeforeDamageApplication != nil
	case OnAfterAttack:
		return h.OnAfterAttack != nil
	default:
		return false
	}
}
