package battles_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	mockclock "github.com/KirkDiggler/rpg-battle/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/battles"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	clock   *mockclock.MockClock
	mr      *miniredis.Miniredis
	cleanup func()
	repo    battles.Repository
	now     time.Time
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.clock = mockclock.NewMockClock(s.ctrl)
	s.now = time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC)

	client, mr, cleanup := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.cleanup = cleanup

	repo, err := battles.NewRedisRepository(&battles.Config{
		Client: client,
		Clock:  s.clock,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *RedisRepositoryTestSuite) TestConfigValidation() {
	_, err := battles.NewRedisRepository(&battles.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = battles.NewRedisRepository(nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	s.clock.EXPECT().Now().Return(s.now).Times(2)

	saved, err := s.repo.Save(s.ctx, battles.SaveInput{Snapshot: testutils.CreateTestSnapshot("battle_1")})
	s.Require().NoError(err)
	s.Equal(s.now, saved.Snapshot.CreatedAt)
	s.Equal(s.now.Add(time.Hour), saved.Snapshot.ExpiresAt)
	s.True(s.mr.Exists("battle:battle_1"))
	s.Equal(time.Hour, s.mr.TTL("battle:battle_1"))

	got, err := s.repo.Get(s.ctx, battles.GetInput{ID: "battle_1"})
	s.Require().NoError(err)
	s.Equal(uint64(42), got.Snapshot.Seed)
	s.Equal(entities.PhaseChoice, got.Snapshot.State.Phase)
	s.Equal(3, got.Snapshot.State.Turn)
	s.Equal([]byte{1, 2, 3, 4}, got.Snapshot.State.RNG)
	s.Len(got.Snapshot.State.Players, 2)
	s.True(got.Snapshot.CreatedAt.Equal(s.now))
}

func (s *RedisRepositoryTestSuite) TestSaveKeepsCreatedAt() {
	later := s.now.Add(10 * time.Minute)
	s.clock.EXPECT().Now().Return(later)

	snapshot := testutils.CreateTestSnapshot("battle_1")
	snapshot.CreatedAt = s.now
	saved, err := s.repo.Save(s.ctx, battles.SaveInput{Snapshot: snapshot, TTL: time.Minute})
	s.Require().NoError(err)
	s.Equal(s.now, saved.Snapshot.CreatedAt)
	s.Equal(later, saved.Snapshot.UpdatedAt)
	s.Equal(time.Minute, s.mr.TTL("battle:battle_1"))
}

func (s *RedisRepositoryTestSuite) TestSaveValidation() {
	tests := []struct {
		name     string
		snapshot *battles.Snapshot
	}{
		{"nil snapshot", nil},
		{"empty id", &battles.Snapshot{State: entities.NewState(entities.Singles())}},
		{"nil state", &battles.Snapshot{ID: "battle_1"}},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := s.repo.Save(s.ctx, battles.SaveInput{Snapshot: tc.snapshot})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, battles.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, battles.GetInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetExpired() {
	s.clock.EXPECT().Now().Return(s.now)
	_, err := s.repo.Save(s.ctx, battles.SaveInput{Snapshot: testutils.CreateTestSnapshot("battle_1")})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Hour)

	_, err = s.repo.Get(s.ctx, battles.GetInput{ID: "battle_1"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetCorruptSnapshot() {
	s.Require().NoError(s.mr.Set("battle:battle_1", "{not json"))

	_, err := s.repo.Get(s.ctx, battles.GetInput{ID: "battle_1"})
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	s.clock.EXPECT().Now().Return(s.now)
	_, err := s.repo.Save(s.ctx, battles.SaveInput{Snapshot: testutils.CreateTestSnapshot("battle_1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, battles.DeleteInput{ID: "battle_1"})
	s.Require().NoError(err)
	s.False(s.mr.Exists("battle:battle_1"))

	_, err = s.repo.Delete(s.ctx, battles.DeleteInput{ID: "battle_1"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestServerErrorsAreUnavailable() {
	s.clock.EXPECT().Now().Return(s.now)
	s.mr.SetError("ERR snapshot store offline")
	defer s.mr.SetError("")

	_, err := s.repo.Save(s.ctx, battles.SaveInput{Snapshot: testutils.CreateTestSnapshot("battle_1")})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))

	_, err = s.repo.Get(s.ctx, battles.GetInput{ID: "battle_1"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.False(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, battles.DeleteInput{ID: "battle_1"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}
