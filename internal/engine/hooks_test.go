package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/dex"
	"github.com/KirkDiggler/rpg-battle/internal/engine"
	"github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

type DispatcherTestSuite struct {
	suite.Suite
	calls      []string
	dispatcher *engine.Dispatcher
	state      *battle.State
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func (s *DispatcherTestSuite) recorder(name string) dex.Hooks {
	return dex.Hooks{
		OnAfterAttack: func(_ *battle.State, self *battle.Pokemon, _ *dex.AttackContext) {
			owner := "field"
			if self != nil {
				owner = self.ID
			}
			s.calls = append(s.calls, name+"@"+owner)
		},
	}
}

func (s *DispatcherTestSuite) SetupTest() {
	s.calls = nil
	d := &dex.Dex{
		Abilities: map[string]*dex.Capability{
			"loud":  {ID: "loud", Hooks: s.recorder("loud")},
			"quiet": {ID: "quiet"},
		},
		Items: map[string]*dex.Capability{
			"bell": {ID: "bell", Hooks: s.recorder("bell")},
		},
		Weathers: map[string]*dex.Weather{
			"storm": {Capability: dex.Capability{ID: "storm", Hooks: s.recorder("storm")}},
			"calm":  {Capability: dex.Capability{ID: "calm"}},
		},
	}
	s.dispatcher = engine.NewDispatcher(d)

	mon := func(id, ability, item string) *battle.Pokemon {
		return &battle.Pokemon{ID: id, Ability: ability, Item: battle.ItemState{ID: item}}
	}
	s.state = battle.NewState(battle.Doubles())
	s.state.Players = []*battle.Player{
		{ID: 1, Active: []*battle.Pokemon{mon("a", "loud", "bell"), mon("b", "quiet", "bell")}},
		{ID: 2, Active: []*battle.Pokemon{nil, mon("c", "loud", "")}},
	}
}

func (s *DispatcherTestSuite) TestOrder() {
	s.state.Field.Weather = &battle.Weather{ID: "storm", TurnsLeft: 3}

	s.dispatcher.AfterAttack(s.state, &dex.AttackContext{})

	s.Assert().Equal([]string{
		"storm@field",
		"loud@a",
		"bell@a",
		"bell@b",
		"loud@c",
	}, s.calls)
}

func (s *DispatcherTestSuite) TestUndefinedHooksSkipped() {
	s.state.Field.Weather = &battle.Weather{ID: "calm", TurnsLeft: 3}

	s.dispatcher.Active(s.state, &dex.ActiveContext{})
	s.Assert().Empty(s.calls)

	s.dispatcher.AfterAttack(s.state, &dex.AttackContext{})
	s.Assert().Len(s.calls, 4)
}

func (s *DispatcherTestSuite) TestTriggerByName() {
	s.Require().NoError(s.dispatcher.Trigger(dex.OnAfterAttack, s.state, &dex.AttackContext{}))
	s.Assert().Len(s.calls, 4)

	err := s.dispatcher.Trigger(dex.OnAfterAttack, s.state, &dex.DamageContext{})
	s.Assert().True(errors.IsInvalidArgument(err))

	err = s.dispatcher.Trigger(dex.HookPoint("onEndTurn"), s.state, &dex.AttackContext{})
	s.Assert().True(errors.IsInvalidArgument(err))
}
