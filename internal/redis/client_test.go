package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestRequiresEndpoint() {
	_, err := redis.NewClient("", nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestConnects() {
	mr := miniredis.RunT(s.T())
	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.Require().NoError(client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	s.Require().NoError(err)
	s.Equal("v", got)
}
