package battles

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-battle/internal/redis"
)

// Key pattern: battle:{id}
const battleKeyPrefix = "battle:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL is the default snapshot lifetime. Zero means DefaultTTL.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.Fieldf("TTL", "must not be negative, got %s", c.TTL)
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a Redis backed snapshot repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSnapshot(input.Snapshot); err != nil {
		return nil, err
	}
	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}
	snapshot := stamp(input.Snapshot, r.clock.Now(), ttl)

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to marshal snapshot")
	}
	if err := r.client.Set(ctx, r.buildKey(snapshot.ID), data, ttl).Err(); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to store snapshot %s in Redis", snapshot.ID).
			WithMeta("battle_id", snapshot.ID)
	}
	return &SaveOutput{Snapshot: snapshot}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}
	key := r.buildKey(input.ID)

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.NotFoundf("battle %s not found", input.ID)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get snapshot %s from Redis", input.ID)
	}

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(result), &snapshot); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal snapshot").
			WithMeta("battle_id", input.ID)
	}
	if snapshot.State == nil {
		return nil, errors.DataLossf("snapshot %s has no state", input.ID)
	}

	// Redis expires the key on its own; this guards against a clock ahead of the server
	if !snapshot.ExpiresAt.IsZero() && r.clock.Now().After(snapshot.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFoundf("battle %s has expired", input.ID)
	}

	return &GetOutput{Snapshot: &snapshot}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}
	removed, err := r.client.Del(ctx, r.buildKey(input.ID)).Result()
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to delete snapshot %s from Redis", input.ID)
	}
	if removed == 0 {
		return nil, errors.NotFoundf("battle %s not found", input.ID)
	}
	return &DeleteOutput{}, nil
}

func (r *redisRepository) buildKey(id string) string {
	return battleKeyPrefix + id
}
