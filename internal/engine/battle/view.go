package battle

import (
	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
)

// PublicHPDenominator is the max HP a foe appears to have
const PublicHPDenominator = 48

// RosterView is a side's own full roster
type RosterView struct {
	ID   int             `json:"id"`
	Team []entities.Build `json:"team"`
}

// RivalRosterView is the rival roster reduced to public identity
type RivalRosterView struct {
	ID   int                    `json:"id"`
	Team []entities.PublicBuild `json:"team"`
}

// SideView is one side of the field as a given viewer may see it
type SideView struct {
	ID     int                 `json:"id"`
	Active []*entities.Pokemon `json:"active"`
	Bench  []*entities.Pokemon `json:"bench"`
}

// View is the battle as seen by one side
type View struct {
	Turn  int            `json:"turn"`
	Phase entities.Phase `json:"phase"`
	Own   SideView       `json:"own"`
	Rival SideView       `json:"rival"`
	Field entities.Field `json:"field"`
}

// RosterViews builds the team preview pair for a side
func RosterViews(state *entities.State, side int) (RosterView, RivalRosterView) {
	own := RosterView{ID: side}
	if p := state.Player(side); p != nil {
		own.Team = entities.CloneBuilds(p.Roster)
	}
	rivalID := entities.RivalID(side)
	rival := RivalRosterView{ID: rivalID}
	if p := state.Player(rivalID); p != nil {
		rival.Team = make([]entities.PublicBuild, 0, len(p.Roster))
		for _, b := range p.Roster {
			rival.Team = append(rival.Team, b.Public())
		}
	}
	return own, rival
}

// ViewFor builds the view of the battle for a side. Own entities are copied in full; foe
// entities expose only public identity, boosts and HP rescaled to PublicHPDenominator, and
// the foe bench is withheld.
func ViewFor(state *entities.State, side int) View {
	view := View{
		Turn:  state.Turn,
		Phase: state.Phase,
		Field: state.Field.Clone(),
	}
	if p := state.Player(side); p != nil {
		p = p.Clone()
		view.Own = SideView{ID: p.ID, Active: p.Active, Bench: p.Bench}
	}
	if p := state.Player(entities.RivalID(side)); p != nil {
		view.Rival = SideView{ID: p.ID, Active: make([]*entities.Pokemon, len(p.Active))}
		for i, mon := range p.Active {
			view.Rival.Active[i] = redact(mon)
		}
	}
	return view
}

func redact(mon *entities.Pokemon) *entities.Pokemon {
	if mon == nil {
		return nil
	}
	hp := 0
	if mon.MaxHP > 0 {
		// ceil(hp * 48 / maxhp)
		hp = (mon.HP*PublicHPDenominator + mon.MaxHP - 1) / mon.MaxHP
	}
	return &entities.Pokemon{
		ID:   mon.ID,
		Side: mon.Side,
		Build: entities.Build{
			Name:    mon.Build.Name,
			Species: mon.Build.Species,
			Gender:  mon.Build.Gender,
			Level:   mon.Build.Level,
			Shiny:   mon.Build.Shiny,
		},
		Types:  append([]string(nil), mon.Types...),
		HP:     hp,
		MaxHP:  PublicHPDenominator,
		Boosts: mon.Boosts,
		Status: mon.Status,
	}
}
