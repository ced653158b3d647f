package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/testutils"
)

type PruneCommandTestSuite struct {
	suite.Suite
}

func TestPruneCommandSuite(t *testing.T) {
	suite.Run(t, new(PruneCommandTestSuite))
}

func (s *PruneCommandTestSuite) TestReportsAndDeletes() {
	client, mr, cleanup := testutils.CreateTestRedisClient(s.T())
	defer cleanup()
	s.Require().NoError(mr.Set("battle:broken", "[]"))

	var out bytes.Buffer
	s.Require().NoError(runPrune(context.Background(), &out, client, true))
	s.Contains(out.String(), "checked 1 snapshots, 1 corrupt")
	s.Contains(out.String(), "  - broken")
	s.True(mr.Exists("battle:broken"))

	out.Reset()
	s.Require().NoError(runPrune(context.Background(), &out, client, false))
	s.Contains(out.String(), "deleted 1")
	s.False(mr.Exists("battle:broken"))
}

func (s *PruneCommandTestSuite) TestRequiresRedis() {
	s.T().Setenv("BATTLE_REDIS_ADDR", "")
	cmd := newPruneCmd()
	cmd.SetArgs([]string{})
	s.Error(cmd.Execute())
}
