package testutils

import (
	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/battles"
)

// TestSnapshotSeed is the seed recorded on fixture snapshots
const TestSnapshotSeed uint64 = 42

// CreateTestState creates a singles state in the middle of turn 3 with both sides selected
func CreateTestState() *entities.State {
	state := entities.NewState(entities.Singles())
	state.Phase = entities.PhaseChoice
	state.Turn = 3
	state.RNG = []byte{1, 2, 3, 4}
	state.Players = []*entities.Player{
		{ID: 1, Selected: true, ForcedSwitches: []int{}},
		{ID: 2, Selected: true, ForcedSwitches: []int{}},
	}
	return state
}

// CreateTestSnapshot wraps CreateTestState in a snapshot with the given battle id
func CreateTestSnapshot(id string) *battles.Snapshot {
	return &battles.Snapshot{ID: id, Seed: TestSnapshotSeed, State: CreateTestState()}
}
