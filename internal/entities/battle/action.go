package battle

// ActionType discriminates pending actions
type ActionType string

// Action types. The zero value means no action has been chosen yet.
const (
	ActionNone   ActionType = ""
	ActionPass   ActionType = "pass"
	ActionSwitch ActionType = "switch"
	ActionMove   ActionType = "move"
)

// Action is the pending choice for one active slot
type Action struct {
	Type   ActionType `json:"type,omitempty"`
	Bench  int        `json:"bench,omitempty"`
	Move   int        `json:"move,omitempty"`
	Target int        `json:"target,omitempty"`
}

// PassAction returns a pass
func PassAction() Action {
	return Action{Type: ActionPass}
}

// SwitchAction returns a switch into a 1-based bench slot
func SwitchAction(bench int) Action {
	return Action{Type: ActionSwitch, Bench: bench}
}

// MoveAction returns a move from a 1-based move slot against a signed target
func MoveAction(move, target int) Action {
	return Action{Type: ActionMove, Move: move, Target: target}
}

// IsEmpty reports whether no action has been chosen
func (a Action) IsEmpty() bool {
	return a.Type == ActionNone
}

// Position addresses an active slot of a side
type Position struct {
	PlayerID int `json:"player_id"`
	Slot     int `json:"slot"`
}

// TurnOrderEntry is one ranked pending move
type TurnOrderEntry struct {
	PlayerID int `json:"player_id"`
	Slot     int `json:"slot"`
	Priority int `json:"priority"`
	Speed    int `json:"speed"`
	Tiebreak int `json:"tiebreak"`
}

// Result is the outcome of a finished battle. Winner 0 is a draw.
type Result struct {
	Winner int `json:"winner"`
}
