package rng_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/engine/rng"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

type RNGTestSuite struct {
	suite.Suite
}

func TestRNGSuite(t *testing.T) {
	suite.Run(t, new(RNGTestSuite))
}

func (s *RNGTestSuite) roll(src *rng.Source, n, size int) []int {
	out, err := src.RollN(n, size)
	s.Require().NoError(err)
	return out
}

func (s *RNGTestSuite) TestSameSeedSameSequence() {
	a := rng.New(42)
	b := rng.New(42)
	s.Assert().Equal(s.roll(a, 50, 100), s.roll(b, 50, 100))
}

func (s *RNGTestSuite) TestStateRoundTrip() {
	src := rng.New(7)
	s.roll(src, 10, 1000)

	restored, err := rng.Restore(src.State())
	s.Require().NoError(err)
	s.Assert().Equal(s.roll(src, 20, 16), s.roll(restored, 20, 16))
}

func (s *RNGTestSuite) TestSeedMatchesNew() {
	restored, err := rng.Restore(rng.Seed(99))
	s.Require().NoError(err)
	s.Assert().Equal(s.roll(rng.New(99), 5, 6), s.roll(restored, 5, 6))
}

func (s *RNGTestSuite) TestRollRange() {
	src := rng.New(1)
	for _, v := range s.roll(src, 1000, 16) {
		s.Assert().GreaterOrEqual(v, 1)
		s.Assert().LessOrEqual(v, 16)
	}

	for i := 0; i < 200; i++ {
		v, err := rng.Between(src, 85, 100)
		s.Require().NoError(err)
		s.Assert().GreaterOrEqual(v, 85)
		s.Assert().LessOrEqual(v, 100)
	}
}

func (s *RNGTestSuite) TestErrors() {
	_, err := rng.Restore(nil)
	s.Assert().True(errors.IsFailedPrecondition(err))

	_, err = rng.Restore([]byte("garbage"))
	s.Assert().True(errors.IsDataLoss(err))

	_, err = rng.New(1).Roll(0)
	s.Assert().True(errors.IsInvalidArgument(err))
}
