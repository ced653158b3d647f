package battle

import (
	battleengine "github.com/KirkDiggler/rpg-battle/internal/engine/battle"
	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
)

// PromptKind names the input a side is being asked for
type PromptKind string

// Prompt kinds
const (
	PromptTeamPreview PromptKind = "team_preview"
	PromptMove        PromptKind = "move"
	PromptForceSwitch PromptKind = "force_switch"
	PromptEnd         PromptKind = "end"
)

// Prompt is the latest request the battle made of a side. Only the fields of its kind are
// set.
type Prompt struct {
	Kind PromptKind
	Turn int

	// Team preview
	Own   *battleengine.RosterView
	Rival *battleengine.RivalRosterView

	// Move and forced switch
	View *battleengine.View
	// Slots still waiting for an action, or the slots that must be refilled
	Slots []int

	// End
	Result *entities.Result
}

// CreateBattleInput defines the request for creating a battle
type CreateBattleInput struct {
	Format entities.FormatID
	// Seed fixes the RNG; nil draws a random seed
	Seed *uint64
}

// CreateBattleOutput defines the response for creating a battle
type CreateBattleOutput struct {
	BattleID string
	Format   entities.Format
	Seed     uint64
}

// JoinBattleInput defines the request for joining a battle with a roster
type JoinBattleInput struct {
	BattleID string
	Roster   []entities.Build
}

// JoinBattleOutput defines the response for joining a battle
type JoinBattleOutput struct {
	Side   int
	Phase  entities.Phase
	Prompt *Prompt
}

// SelectTeamInput defines the request for picking the roster subset
type SelectTeamInput struct {
	BattleID string
	Side     int
	// 1-based roster indices, leads first
	Indices []int
}

// SelectTeamOutput defines the response for picking the roster subset
type SelectTeamOutput struct {
	Phase  entities.Phase
	Turn   int
	Prompt *Prompt
}

// SubmitMoveInput defines the request for choosing a move
type SubmitMoveInput struct {
	BattleID string
	Side     int
	Slot     int
	Move     int
	// Signed target slot: positive foe, negative ally, 0 none
	Target int
}

// SubmitMoveOutput defines the response for choosing a move
type SubmitMoveOutput struct {
	Phase  entities.Phase
	Turn   int
	Prompt *Prompt
}

// SubmitSwitchInput defines the request for a switch
type SubmitSwitchInput struct {
	BattleID string
	Side     int
	Slot     int
	Bench    int
}

// SubmitSwitchOutput defines the response for a switch
type SubmitSwitchOutput struct {
	Phase  entities.Phase
	Turn   int
	Prompt *Prompt
}

// GetBattleInput defines the request for reading a battle. Side 0 reads without a view.
type GetBattleInput struct {
	BattleID string
	Side     int
}

// GetBattleOutput defines the response for reading a battle
type GetBattleOutput struct {
	BattleID string
	Format   entities.Format
	Phase    entities.Phase
	Turn     int
	Players  int
	Result   *entities.Result
	View     *battleengine.View
	Prompt   *Prompt
}

// DeleteBattleInput defines the request for deleting a battle
type DeleteBattleInput struct {
	BattleID string
}

// DeleteBattleOutput defines the response for deleting a battle
type DeleteBattleOutput struct{}
