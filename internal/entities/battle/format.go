// Package battle defines the battle state data model shared by the engine and its hosts.
//
// All public slot numbers are 1-based: active slot 1..ActiveSlots, bench slot
// 1..RosterSubsetSize, move slot 1..len(moves). Move targets are signed: a positive
// value names a foe slot, a negative value names an ally slot and 0 means no explicit
// target.
package battle

// FormatID identifies a ruleset
type FormatID string

// Supported formats
const (
	FormatSingles FormatID = "singles"
	FormatDoubles FormatID = "doubles"
)

// Format fixes the number of active slots and the size of the selected roster subset
type Format struct {
	ID               FormatID `json:"id"`
	ActiveSlots      int      `json:"active_slots"`
	RosterSubsetSize int      `json:"roster_subset_size"`
}

// Singles returns the 1 active / 3 selected format
func Singles() Format {
	return Format{ID: FormatSingles, ActiveSlots: 1, RosterSubsetSize: 3}
}

// Doubles returns the 2 active / 4 selected format
func Doubles() Format {
	return Format{ID: FormatDoubles, ActiveSlots: 2, RosterSubsetSize: 4}
}

// FormatFor resolves a format by id
func FormatFor(id FormatID) (Format, bool) {
	switch id {
	case FormatSingles:
		return Singles(), true
	case FormatDoubles:
		return Doubles(), true
	default:
		return Format{}, false
	}
}

// Phase is a stage of the battle lifecycle
type Phase string

// Battle phases
const (
	PhaseSettingPlayers Phase = "setting_players"
	PhaseTeamPreview    Phase = "team_preview"
	PhaseChoice         Phase = "choice"
	PhaseRun            Phase = "run"
	PhaseSwitch         Phase = "switch"
	PhaseEnd            Phase = "end"
)

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}
