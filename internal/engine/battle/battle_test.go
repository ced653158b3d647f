package battle_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/dex"
	"github.com/KirkDiggler/rpg-battle/internal/engine"
	"github.com/KirkDiggler/rpg-battle/internal/engine/battle"
	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

const testSeed = 20240611

// recordingBus keeps every published event
type recordingBus struct {
	published []events.Event
}

func (r *recordingBus) Publish(_ context.Context, e events.Event) error {
	r.published = append(r.published, e)
	return nil
}
func (r *recordingBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (r *recordingBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (r *recordingBus) Unsubscribe(_ string) error { return nil }
func (r *recordingBus) Clear(_ string)             {}
func (r *recordingBus) ClearAll()                  {}

func (r *recordingBus) ofType(eventType string) []events.Event {
	var out []events.Event
	for _, e := range r.published {
		if e.Type() == eventType {
			out = append(out, e)
		}
	}
	return out
}

// recorder counts the notifications a side receives
type recorder struct {
	previews     int
	moves        []int
	forceSwitch  [][]int
	ends         []entities.Result
	lastView     battle.View
	lastOwn      battle.RosterView
	lastRival    battle.RivalRosterView
	onMove       func(ctx context.Context, cmd battle.Commander, view battle.View)
	onSwitch     func(ctx context.Context, cmd battle.Commander, view battle.View, slots []int)
	onTeamReview func(ctx context.Context, cmd battle.Commander)
}

func (r *recorder) handler() battle.Handler {
	return battle.HandlerFuncs{
		TeamPreview: func(ctx context.Context, cmd battle.Commander, own battle.RosterView, rival battle.RivalRosterView) {
			r.previews++
			r.lastOwn, r.lastRival = own, rival
			if r.onTeamReview != nil {
				r.onTeamReview(ctx, cmd)
			}
		},
		Move: func(ctx context.Context, cmd battle.Commander, view battle.View) {
			r.moves = append(r.moves, view.Turn)
			r.lastView = view
			if r.onMove != nil {
				r.onMove(ctx, cmd, view)
			}
		},
		ForceSwitch: func(ctx context.Context, cmd battle.Commander, view battle.View, slots []int) {
			r.forceSwitch = append(r.forceSwitch, slots)
			if r.onSwitch != nil {
				r.onSwitch(ctx, cmd, view, slots)
			}
		},
		End: func(_ context.Context, result entities.Result) {
			r.ends = append(r.ends, result)
		},
	}
}

type BattleTestSuite struct {
	suite.Suite
	ctx    context.Context
	dex    *dex.Dex
	engine engine.Engine
	roster []entities.Build
	bus    *recordingBus
	one    *recorder
	two    *recorder
}

func (s *BattleTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dex = dex.Standard()
	var err error
	s.engine, err = engine.New(&engine.Config{Dex: s.dex})
	s.Require().NoError(err)
	s.roster = dex.SampleTeam(s.dex)
	s.bus = &recordingBus{}
	s.one = &recorder{}
	s.two = &recorder{}
}

func (s *BattleTestSuite) newBattle(format entities.Format) *battle.Battle {
	b, err := battle.New(&battle.Config{
		ID:       "battle-1",
		Engine:   s.engine,
		Format:   format,
		Seed:     testSeed,
		EventBus: s.bus,
	})
	s.Require().NoError(err)
	return b
}

func (s *BattleTestSuite) join(b *battle.Battle) {
	side, err := b.SetPlayer(s.ctx, s.roster, s.one.handler())
	s.Require().NoError(err)
	s.Require().Equal(1, side)
	side, err = b.SetPlayer(s.ctx, s.roster, s.two.handler())
	s.Require().NoError(err)
	s.Require().Equal(2, side)
}

// started returns a battle at turn 1 with the given selections
func (s *BattleTestSuite) started(format entities.Format, one, two []int) *battle.Battle {
	b := s.newBattle(format)
	s.join(b)
	s.Require().NoError(b.Select(s.ctx, 1, one))
	s.Require().NoError(b.Select(s.ctx, 2, two))
	s.Require().Equal(entities.PhaseChoice, b.Phase())
	s.Require().Equal(1, b.Turn())
	return b
}

// restored rebuilds a battle from an edited state and reattaches the recorders
func (s *BattleTestSuite) restored(state *entities.State) *battle.Battle {
	b, err := battle.Restore(&battle.Config{
		ID:       "battle-1",
		Engine:   s.engine,
		Seed:     testSeed,
		EventBus: s.bus,
	}, state)
	s.Require().NoError(err)
	s.Require().NoError(b.Attach(1, s.one.handler()))
	s.Require().NoError(b.Attach(2, s.two.handler()))
	return b
}

func TestBattleSuite(t *testing.T) {
	suite.Run(t, new(BattleTestSuite))
}

func (s *BattleTestSuite) TestNewRequiresEngine() {
	_, err := battle.New(&battle.Config{Format: entities.Singles()})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *BattleTestSuite) TestSetPlayerOpensTeamPreview() {
	b := s.newBattle(entities.Singles())

	side, err := b.SetPlayer(s.ctx, s.roster, s.one.handler())
	s.Require().NoError(err)
	s.Equal(1, side)
	s.Equal(entities.PhaseSettingPlayers, b.Phase())
	s.Equal(0, s.one.previews)

	side, err = b.SetPlayer(s.ctx, s.roster, s.two.handler())
	s.Require().NoError(err)
	s.Equal(2, side)
	s.Equal(entities.PhaseTeamPreview, b.Phase())
	s.Equal(1, s.one.previews)
	s.Equal(1, s.two.previews)
	s.Len(s.one.lastOwn.Team, 6)
	s.Equal(2, s.one.lastRival.ID)
	s.Require().Len(s.one.lastRival.Team, 6)
	s.Equal("venusaur", s.one.lastRival.Team[0].Species)

	_, err = b.SetPlayer(s.ctx, s.roster, nil)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *BattleTestSuite) TestSetPlayerRejectsShortRoster() {
	b := s.newBattle(entities.Singles())
	before := b.State()

	_, err := b.SetPlayer(s.ctx, s.roster[:2], s.one.handler())
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(before, b.State())
}

func (s *BattleTestSuite) TestSetPlayerRejectsUnknownSpecies() {
	b := s.newBattle(entities.Singles())
	roster := append([]entities.Build(nil), s.roster...)
	roster[0].Species = "missingno"

	_, err := b.SetPlayer(s.ctx, roster, s.one.handler())
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Empty(b.State().Players)
}

func (s *BattleTestSuite) TestSelectStartsFirstTurn() {
	b := s.started(entities.Singles(), []int{1, 2, 3}, []int{4, 5, 6})

	state := b.State()
	s.NotEmpty(state.RNG)
	one, two := state.Player(1), state.Player(2)
	s.Require().NotNil(one.ActivePokemon(1))
	s.Equal("venusaur", one.ActivePokemon(1).Build.Species)
	s.Equal("conkeldurr", two.ActivePokemon(1).Build.Species)
	s.Equal("torkoal", one.BenchPokemon(1).Build.Species)
	s.Equal("dusclops", one.BenchPokemon(2).Build.Species)
	s.Nil(one.BenchPokemon(3))
	s.Empty(one.ForcedSwitches)
	s.Equal([]int{1}, b.SlotsMissingAction(1))

	s.Equal([]int{1}, s.one.moves)
	s.Equal([]int{1}, s.two.moves)
	s.Len(s.bus.ofType(battle.EventSwitchedIn), 2)
	s.Len(s.bus.ofType(battle.EventTurnStarted), 1)
}

func (s *BattleTestSuite) TestLeadEntryEffects() {
	b := s.started(entities.Singles(), []int{2, 1, 3}, []int{5, 4, 6})

	state := b.State()
	s.Require().NotNil(state.Field.Weather)
	s.Equal(dex.WeatherHarshSunlight, state.Field.Weather.ID)
	s.Equal(-1, state.Player(1).ActivePokemon(1).Boosts.Atk)
	s.Equal(0, state.Player(2).ActivePokemon(1).Boosts.Atk)
}

func (s *BattleTestSuite) TestDoublesSelectionSize() {
	b := s.newBattle(entities.Doubles())
	s.join(b)
	before := b.State()

	err := b.Select(s.ctx, 1, []int{1, 2, 3})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(before, b.State())
	s.Equal(entities.PhaseTeamPreview, b.Phase())

	// out of range and repeated indices are dropped
	s.Require().NoError(b.Select(s.ctx, 1, []int{1, 1, 2, 9, 3, 4}))
	s.Equal(entities.PhaseTeamPreview, b.Phase())

	err = b.Select(s.ctx, 1, []int{1, 2, 3, 4})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	s.Require().NoError(b.Select(s.ctx, 2, []int{3, 4, 5, 6}))
	s.Equal(entities.PhaseChoice, b.Phase())
	s.Equal(1, b.Turn())
}

func (s *BattleTestSuite) TestPriorityMoveResolvesFirst() {
	b := s.started(entities.Singles(), []int{4, 5, 6}, []int{1, 2, 3})

	s.Require().NoError(b.Move(s.ctx, 1, 1, 1, 1)) // mach punch
	s.Equal(1, b.Turn())
	s.Require().NoError(b.Move(s.ctx, 2, 1, 1, 1)) // giga drain

	s.Equal(2, b.Turn())
	s.Equal(entities.PhaseChoice, b.Phase())

	used := s.bus.ofType(battle.EventMoveUsed)
	s.Require().Len(used, 2)
	s.Equal(engine.PokemonID(1, 4, "conkeldurr"), used[0].Source().GetID())
	s.Equal(engine.PokemonID(2, 1, "venusaur"), used[1].Source().GetID())

	state := b.State()
	conk := state.Player(1).ActivePokemon(1)
	venu := state.Player(2).ActivePokemon(1)
	s.Less(conk.HP, conk.MaxHP)
	s.Less(venu.HP, venu.MaxHP)
	s.Equal(conk.Move(1).MaxPP-1, conk.Move(1).PP)

	s.Equal([]int{1, 2}, s.one.moves)
	s.Equal([]int{1, 2}, s.two.moves)
}

func (s *BattleTestSuite) TestDoublesWaitsForEverySlot() {
	b := s.started(entities.Doubles(), []int{1, 2, 3, 4}, []int{3, 4, 5, 6})

	s.Require().NoError(b.Move(s.ctx, 1, 1, 2, 1))
	s.Require().NoError(b.Move(s.ctx, 1, 2, 3, 2))
	s.Require().NoError(b.Move(s.ctx, 2, 1, 1, 1))
	s.Equal(1, b.Turn())
	s.Equal([]int{2}, b.SlotsMissingAction(2))
	s.Empty(b.SlotsMissingAction(1))

	s.Require().NoError(b.Move(s.ctx, 2, 2, 1, 2))
	s.Equal(2, b.Turn())
	s.Equal([]int{1, 2}, b.SlotsMissingAction(1))
}

func (s *BattleTestSuite) TestMoveReplacesPendingAction() {
	b := s.started(entities.Doubles(), []int{1, 2, 3, 4}, []int{3, 4, 5, 6})

	s.Require().NoError(b.Move(s.ctx, 1, 1, 1, 1))
	s.Require().NoError(b.Switch(s.ctx, 1, 1, 1))

	action := b.State().Player(1).Actions[0]
	s.Equal(entities.ActionSwitch, action.Type)
	s.Equal(1, action.Bench)
}

func (s *BattleTestSuite) TestSpreadMoveDropsTarget() {
	b := s.started(entities.Doubles(), []int{1, 2, 3, 4}, []int{3, 4, 5, 6})

	s.Require().NoError(b.Move(s.ctx, 1, 2, 1, 2)) // eruption
	s.Equal(0, b.State().Player(1).Actions[1].Target)
}

func (s *BattleTestSuite) TestInvalidCommandsLeaveStateUntouched() {
	b := s.started(entities.Singles(), []int{1, 2, 3}, []int{4, 5, 6})
	before := b.State()
	published := len(s.bus.published)

	tests := []struct {
		name  string
		run   func() error
		check func(error) bool
	}{
		{"move slot out of range", func() error { return b.Move(s.ctx, 1, 1, 9, 1) }, errors.IsInvalidArgument},
		{"active slot out of range", func() error { return b.Move(s.ctx, 1, 2, 1, 1) }, errors.IsInvalidArgument},
		{"target out of range", func() error { return b.Move(s.ctx, 1, 1, 1, 2) }, errors.IsInvalidArgument},
		{"normal move needs a foe", func() error { return b.Move(s.ctx, 1, 1, 1, 0) }, errors.IsInvalidArgument},
		{"unknown side", func() error { return b.Move(s.ctx, 3, 1, 1, 1) }, errors.IsInvalidArgument},
		{"empty bench slot", func() error { return b.Switch(s.ctx, 1, 1, 3) }, errors.IsFailedPrecondition},
		{"bench out of range", func() error { return b.Switch(s.ctx, 1, 1, 4) }, errors.IsInvalidArgument},
		{"select after preview", func() error { return b.Select(s.ctx, 1, []int{1, 2, 3}) }, errors.IsFailedPrecondition},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			err := tc.run()
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error: %v", err)
			s.Equal(before, b.State())
		})
	}
	s.Len(s.bus.published, published)
}

func (s *BattleTestSuite) TestMoveRejectsExhaustedAndDisabled() {
	b := s.started(entities.Singles(), []int{1, 2, 3}, []int{4, 5, 6})
	state := b.State()
	venu := state.Player(1).ActivePokemon(1)
	venu.Moves[0].PP = 0
	venu.Moves[1].Disabled = true
	b = s.restored(state)

	err := b.Move(s.ctx, 1, 1, 1, 1)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	err = b.Move(s.ctx, 1, 1, 2, 1)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	s.Require().NoError(b.Move(s.ctx, 1, 1, 3, 1))
}

func (s *BattleTestSuite) TestUnsupportedTargetClassIsInternal() {
	b := s.started(entities.Singles(), []int{6, 1, 2}, []int{4, 5, 3})

	err := b.Move(s.ctx, 1, 1, 4, 0) // trick room
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *BattleTestSuite) TestStagedSwitchesCannotShareBench() {
	b := s.started(entities.Doubles(), []int{1, 2, 3, 4}, []int{3, 4, 5, 6})

	s.Require().NoError(b.Switch(s.ctx, 1, 1, 1))
	err := b.Switch(s.ctx, 1, 2, 1)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Require().NoError(b.Switch(s.ctx, 1, 2, 2))

	s.Require().NoError(b.Move(s.ctx, 2, 1, 2, 1))
	s.Require().NoError(b.Move(s.ctx, 2, 2, 1, 1))

	s.Equal(2, b.Turn())
	one := b.State().Player(1)
	s.Equal("dusclops", one.ActivePokemon(1).Build.Species)
	s.Equal("conkeldurr", one.ActivePokemon(2).Build.Species)
}

func (s *BattleTestSuite) TestFaintForcesSwitch() {
	b := s.started(entities.Singles(), []int{4, 5, 6}, []int{1, 2, 3})
	state := b.State()
	state.Player(2).ActivePokemon(1).HP = 1
	b = s.restored(state)

	s.Require().NoError(b.Move(s.ctx, 1, 1, 1, 1))
	s.Require().NoError(b.Move(s.ctx, 2, 1, 1, 1))

	s.Equal(entities.PhaseSwitch, b.Phase())
	s.Equal(1, b.Turn())
	s.Equal([]int{1}, b.ForcedSwitches(2))
	s.False(b.HasForcedSwitchesLeft(1))
	s.Require().Len(s.two.forceSwitch, 1)
	s.Equal([]int{1}, s.two.forceSwitch[0])
	s.Empty(s.one.forceSwitch)
	s.Len(s.bus.ofType(battle.EventMoveUsed), 1)
	s.Len(s.bus.ofType(battle.EventFainted), 1)

	two := b.State().Player(2)
	s.Nil(two.ActivePokemon(1))
	s.True(two.BenchPokemon(3).Fainted())

	err := b.Switch(s.ctx, 2, 1, 3)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	err = b.Move(s.ctx, 1, 1, 1, 1)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	s.Require().NoError(b.Switch(s.ctx, 2, 1, 1))
	s.Equal(entities.PhaseChoice, b.Phase())
	s.Equal(2, b.Turn())

	state = b.State()
	s.Equal("torkoal", state.Player(2).ActivePokemon(1).Build.Species)
	s.Require().NotNil(state.Field.Weather)
	s.Equal(4, state.Field.Weather.TurnsLeft)
}

func (s *BattleTestSuite) TestNoForcedSwitchWithoutHealthyBench() {
	b := s.started(entities.Doubles(), []int{3, 4, 5, 6}, []int{1, 2, 3, 4})
	state := b.State()
	two := state.Player(2)
	two.ActivePokemon(1).HP = 1
	for _, mon := range two.Bench {
		if mon != nil {
			mon.HP = 0
		}
	}
	b = s.restored(state)

	s.Require().NoError(b.Move(s.ctx, 1, 1, 2, 2)) // will-o-wisp
	s.Require().NoError(b.Move(s.ctx, 1, 2, 1, 1)) // mach punch
	s.Require().NoError(b.Move(s.ctx, 2, 1, 1, 2))
	s.Require().NoError(b.Move(s.ctx, 2, 2, 3, 1))

	s.Equal(entities.PhaseChoice, b.Phase())
	s.Equal(2, b.Turn())
	s.Empty(s.two.forceSwitch)
	s.Nil(b.State().Player(2).ActivePokemon(1))
	s.Equal([]int{2}, b.SlotsMissingAction(2))
}

func (s *BattleTestSuite) TestBattleEndsWhenSideIsOut() {
	b := s.started(entities.Singles(), []int{4, 5, 6}, []int{1, 2, 3})
	state := b.State()
	two := state.Player(2)
	two.ActivePokemon(1).HP = 1
	for _, mon := range two.Bench {
		if mon != nil {
			mon.HP = 0
		}
	}
	b = s.restored(state)

	s.Require().NoError(b.Move(s.ctx, 1, 1, 1, 1))
	s.Require().NoError(b.Move(s.ctx, 2, 1, 1, 1))

	s.Equal(entities.PhaseEnd, b.Phase())
	result, ok := b.Result()
	s.Require().True(ok)
	s.Equal(1, result.Winner)
	s.Equal([]entities.Result{{Winner: 1}}, s.one.ends)
	s.Equal([]entities.Result{{Winner: 1}}, s.two.ends)
	s.Len(s.bus.ofType(battle.EventEnded), 1)

	err := b.Move(s.ctx, 1, 1, 1, 1)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *BattleTestSuite) TestViewRedactsRival() {
	b := s.started(entities.Singles(), []int{1, 2, 3}, []int{4, 5, 6})
	state := b.State()
	conk := state.Player(2).ActivePokemon(1)
	conk.HP = conk.MaxHP/2 + 1
	b = s.restored(state)

	view := b.View(1)
	s.Equal(1, view.Turn)
	s.Require().Len(view.Own.Active, 1)
	s.Equal(state.Player(1).ActivePokemon(1).HP, view.Own.Active[0].HP)
	s.Len(view.Own.Bench, 3)

	s.Require().Len(view.Rival.Active, 1)
	rival := view.Rival.Active[0]
	s.Equal(battle.PublicHPDenominator, rival.MaxHP)
	s.Equal((conk.HP*battle.PublicHPDenominator+conk.MaxHP-1)/conk.MaxHP, rival.HP)
	s.Less(rival.HP, battle.PublicHPDenominator)
	s.Equal("conkeldurr", rival.Build.Species)
	s.Empty(rival.Build.Item)
	s.Empty(rival.Build.Moves)
	s.Empty(rival.Moves)
	s.Nil(view.Rival.Bench)

	// views are copies
	view.Own.Active[0].HP = 0
	s.NotEqual(0, b.State().Player(1).ActivePokemon(1).HP)
}

func (s *BattleTestSuite) TestSameSeedSameBattle() {
	play := func() *entities.State {
		s.SetupTest()
		b := s.started(entities.Doubles(), []int{1, 2, 3, 4}, []int{3, 4, 5, 6})
		for turn := 0; turn < 3 && b.Phase() == entities.PhaseChoice; turn++ {
			for side := 1; side <= 2; side++ {
				for _, slot := range b.SlotsMissingAction(side) {
					s.Require().NoError(b.Move(s.ctx, side, slot, 1, 1))
				}
			}
		}
		return b.State()
	}

	first := play()
	second := play()
	s.Equal(first, second)
}

func (s *BattleTestSuite) TestReentrantHandlersPlayToTheEnd() {
	bot := func(r *recorder, picks []int) {
		r.onTeamReview = func(ctx context.Context, cmd battle.Commander) {
			s.Require().NoError(cmd.Select(ctx, picks))
		}
		r.onMove = func(ctx context.Context, cmd battle.Commander, view battle.View) {
			for i, mon := range view.Own.Active {
				if mon == nil {
					continue
				}
				for move := range mon.Moves {
					if cmd.Move(ctx, i+1, move+1, 1) == nil {
						break
					}
				}
			}
		}
		r.onSwitch = func(ctx context.Context, cmd battle.Commander, view battle.View, slots []int) {
			for _, slot := range slots {
				for i, mon := range view.Own.Bench {
					if mon != nil && !mon.Fainted() && cmd.Switch(ctx, slot, i+1) == nil {
						break
					}
				}
			}
		}
	}

	play := func() *entities.State {
		s.SetupTest()
		bot(s.one, []int{1, 2, 3})
		bot(s.two, []int{4, 5, 6})
		b := s.newBattle(entities.Singles())
		s.join(b)

		s.Equal(entities.PhaseEnd, b.Phase())
		s.Len(s.one.ends, 1)
		s.Len(s.two.ends, 1)
		s.Equal(s.one.ends, s.two.ends)
		return b.State()
	}

	first := play()
	second := play()
	s.Equal(first, second)
	s.NotNil(first.Result)
}

func (s *BattleTestSuite) TestRestoreRequiresState() {
	_, err := battle.Restore(&battle.Config{Engine: s.engine}, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *BattleTestSuite) TestHandlerEditsDoNotReachState() {
	s.one.onMove = func(_ context.Context, _ battle.Commander, view battle.View) {
		mon := view.Own.Active[0]
		mon.Types[0] = "hacked"
		mon.Build.Moves[0].ID = "hacked-move"
		mon.Moves[0].PP = 0
		view.Own.Bench[0].Build.Moves[0].ID = "hacked-move"
		view.Rival.Active[0].Types[0] = "hacked"
		view.Field.Weather.TurnsLeft = 0
	}
	b := s.newBattle(entities.Singles())
	s.join(b)
	s.one.lastOwn.Team[0].Moves[0].ID = "hacked-move"
	s.roster[1].Moves[0].ID = "hacked-move"

	before := b.State()
	s.Equal("gigadrain", before.Player(1).Roster[0].Moves[0].ID)
	s.Equal("eruption", before.Player(2).Roster[1].Moves[0].ID)

	s.Require().NoError(b.Select(s.ctx, 1, []int{2, 1, 3}))
	s.Require().NoError(b.Select(s.ctx, 2, []int{4, 5, 6}))
	s.Require().Equal([]int{1}, s.one.moves)

	state := b.State()
	s.Equal(before.Player(1).Roster, state.Player(1).Roster)
	torkoal := state.Player(1).ActivePokemon(1)
	s.Equal([]string{"fire"}, torkoal.Types)
	s.Equal("eruption", torkoal.Build.Moves[0].ID)
	s.Equal(torkoal.Moves[0].MaxPP, torkoal.Moves[0].PP)
	s.Equal("gigadrain", state.Player(1).BenchPokemon(1).Build.Moves[0].ID)
	s.Equal([]string{"fighting"}, state.Player(2).ActivePokemon(1).Types)
	s.Require().NotNil(state.Field.Weather)
	s.NotZero(state.Field.Weather.TurnsLeft)
}

func (s *BattleTestSuite) TestLifeOrbRecoilKnocksOutAttacker() {
	b := s.started(entities.Singles(), []int{1, 2, 3}, []int{4, 5, 6})
	state := b.State()
	venu := state.Player(1).ActivePokemon(1)
	venu.HP = 1
	venu.Boosts.Add(entities.BoostSpA, 2)
	b = s.restored(state)

	s.Require().NoError(b.Move(s.ctx, 1, 1, 2, 1)) // sludge bomb
	s.Require().NoError(b.Move(s.ctx, 2, 1, 2, 1)) // drain punch, target gone by then

	s.Equal(entities.PhaseSwitch, b.Phase())
	s.Equal(1, b.Turn())
	s.Equal([]int{1}, b.ForcedSwitches(1))
	s.Empty(b.ForcedSwitches(2))
	s.Len(s.bus.ofType(battle.EventMoveUsed), 2)
	s.Len(s.bus.ofType(battle.EventDamaged), 1)
	fainted := s.bus.ofType(battle.EventFainted)
	s.Require().Len(fainted, 1)
	s.Equal(engine.PokemonID(1, 1, "venusaur"), fainted[0].Source().GetID())
	s.Require().Len(s.one.forceSwitch, 1)
	s.Equal([]int{1}, s.one.forceSwitch[0])

	one := b.State().Player(1)
	s.Nil(one.ActivePokemon(1))
	benched := one.BenchPokemon(3)
	s.Require().NotNil(benched)
	s.Equal("venusaur", benched.Build.Species)
	s.Equal(0, benched.HP)
	s.Equal(entities.Boosts{}, benched.Boosts)

	conk := b.State().Player(2).ActivePokemon(1)
	s.Less(conk.HP, conk.MaxHP)
}

func (s *BattleTestSuite) TestWeatherRunsOut() {
	b := s.started(entities.Singles(), []int{1, 2, 3}, []int{4, 5, 6})
	state := b.State()
	state.Field.Weather = &entities.Weather{ID: dex.WeatherHarshSunlight, TurnsLeft: 1}
	b = s.restored(state)

	s.Require().NoError(b.Move(s.ctx, 1, 1, 1, 1)) // giga drain
	s.Require().NoError(b.Move(s.ctx, 2, 1, 1, 1)) // mach punch

	s.Equal(entities.PhaseChoice, b.Phase())
	s.Equal(2, b.Turn())
	s.Nil(b.State().Field.Weather)
	s.Len(s.bus.ofType(battle.EventWeatherEnded), 1)

	s.Require().NoError(b.Move(s.ctx, 1, 1, 1, 1))
	s.Require().NoError(b.Move(s.ctx, 2, 1, 1, 1))
	s.Len(s.bus.ofType(battle.EventWeatherEnded), 1)
}

func (s *BattleTestSuite) TestSwitchingOutClearsBoostsAndVolatiles() {
	b := s.started(entities.Singles(), []int{1, 2, 3}, []int{4, 5, 6})
	state := b.State()
	venu := state.Player(1).ActivePokemon(1)
	venu.Boosts.Add(entities.BoostSpA, 2)
	venu.Boosts.Add(entities.BoostSpe, -1)
	venu.Volatiles = map[string]int{"confusion": 2}
	b = s.restored(state)

	s.Require().NoError(b.Switch(s.ctx, 1, 1, 1))
	s.Require().NoError(b.Move(s.ctx, 2, 1, 1, 1))
	s.Equal(2, b.Turn())

	one := b.State().Player(1)
	s.Equal("torkoal", one.ActivePokemon(1).Build.Species)
	var benched *entities.Pokemon
	for _, mon := range one.Bench {
		if mon != nil && mon.Build.Species == "venusaur" {
			benched = mon
		}
	}
	s.Require().NotNil(benched)
	s.Equal(entities.Boosts{}, benched.Boosts)
	s.Nil(benched.Volatiles)
	s.Equal(benched.MaxHP, benched.HP)
}

func (s *BattleTestSuite) TestLastSubmitWithEmptySlotRunsTurn() {
	b := s.started(entities.Doubles(), []int{3, 4, 5, 6}, []int{1, 2, 3, 4})
	state := b.State()
	two := state.Player(2)
	two.ActivePokemon(1).HP = 1
	for _, mon := range two.Bench {
		if mon != nil {
			mon.HP = 0
		}
	}
	b = s.restored(state)

	s.Require().NoError(b.Move(s.ctx, 1, 1, 2, 2))
	s.Require().NoError(b.Move(s.ctx, 1, 2, 1, 1))
	s.Require().NoError(b.Move(s.ctx, 2, 1, 1, 2))
	s.Require().NoError(b.Move(s.ctx, 2, 2, 3, 1))
	s.Require().Equal(2, b.Turn())
	s.Require().Nil(b.State().Player(2).ActivePokemon(1))

	used := len(s.bus.ofType(battle.EventMoveUsed))
	s.Require().NoError(b.Move(s.ctx, 1, 1, 1, 2)) // shadow sneak
	s.Require().NoError(b.Move(s.ctx, 1, 2, 1, 2)) // mach punch
	s.Equal(2, b.Turn())
	s.Equal([]int{2}, b.SlotsMissingAction(2))

	s.Require().NoError(b.Move(s.ctx, 2, 2, 4, 1)) // will-o-wisp
	s.Equal(entities.PhaseChoice, b.Phase())
	s.Equal(3, b.Turn())
	s.Len(s.bus.ofType(battle.EventMoveUsed), used+3)
	s.Equal([]int{2}, b.SlotsMissingAction(2))
	s.Equal([]int{1, 2}, b.SlotsMissingAction(1))
}
