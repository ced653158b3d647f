package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/dex"
	"github.com/KirkDiggler/rpg-battle/internal/engine"
	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/battles"
)

type DriverTestSuite struct {
	suite.Suite
	ctx    context.Context
	roster []entities.Build
	repo   *battles.InMemoryRepository
	svc    battle.Service
	seed   uint64
}

func TestDriverSuite(t *testing.T) {
	suite.Run(t, new(DriverTestSuite))
}

func (s *DriverTestSuite) SetupTest() {
	s.ctx = context.Background()
	d := dex.Standard()
	eng, err := engine.New(&engine.Config{Dex: d})
	s.Require().NoError(err)
	s.roster = dex.SampleTeam(d)
	s.repo = battles.NewInMemory(&clock.Fixed{At: time.Now()})
	s.svc, err = battle.NewOrchestrator(&battle.Config{
		Engine:      eng,
		Repository:  s.repo,
		IDGenerator: idgen.NewSequential("battle"),
	})
	s.Require().NoError(err)
	s.seed = 99
}

func (s *DriverTestSuite) run(format entities.FormatID, maxTurns int) (*summary, error) {
	return simulate(s.ctx, s.svc, &simulation{
		Format:   format,
		Seed:     &s.seed,
		Roster:   s.roster,
		MaxTurns: maxTurns,
	})
}

func (s *DriverTestSuite) TestSinglesPlaysToTheEnd() {
	out, err := s.run(entities.FormatSingles, 200)
	s.Require().NoError(err)

	s.Equal("battle_1", out.BattleID)
	s.Equal(s.seed, out.Seed)
	s.Positive(out.Turns)

	got, err := s.svc.GetBattle(s.ctx, &battle.GetBattleInput{BattleID: out.BattleID})
	s.Require().NoError(err)
	s.Equal(entities.PhaseEnd, got.Phase)
	s.Require().NotNil(got.Result)
	s.Equal(got.Result.Winner, out.Winner)
}

func (s *DriverTestSuite) TestDoublesPlaysToTheEnd() {
	out, err := s.run(entities.FormatDoubles, 200)
	s.Require().NoError(err)
	s.Positive(out.Turns)
}

func (s *DriverTestSuite) TestSameSeedSameOutcome() {
	first, err := s.run(entities.FormatSingles, 200)
	s.Require().NoError(err)
	second, err := s.run(entities.FormatSingles, 200)
	s.Require().NoError(err)

	s.NotEqual(first.BattleID, second.BattleID)
	s.Equal(first.Turns, second.Turns)
	s.Equal(first.Winner, second.Winner)
}

func (s *DriverTestSuite) TestTurnLimit() {
	_, err := s.run(entities.FormatSingles, 1)
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))
}

func (s *DriverTestSuite) TestUnknownFormat() {
	_, err := s.run(entities.FormatID("triples"), 10)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
