package battles

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-battle/internal/redis"
)

// PruneInput defines the request for sweeping unreadable snapshots
type PruneInput struct {
	// DryRun reports corrupt snapshots without deleting them
	DryRun bool
}

// PruneOutput defines the response for sweeping unreadable snapshots
type PruneOutput struct {
	Checked int
	// Corrupt holds the battle ids whose snapshot could not be decoded
	Corrupt []string
	Deleted int
}

// Prune scans every stored snapshot and removes the ones that no longer decode into a
// battle state, such as payloads written by an older schema.
func Prune(ctx context.Context, client redisclient.Client, input PruneInput) (*PruneOutput, error) {
	if client == nil {
		return nil, errors.InvalidArgument("redis client is required")
	}

	out := &PruneOutput{}
	var corruptKeys []string
	iter := client.Scan(ctx, 0, battleKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		out.Checked++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			// expired between scan and read
			continue
		}
		var snapshot Snapshot
		if err := json.Unmarshal([]byte(data), &snapshot); err == nil && snapshot.State != nil {
			continue
		}
		corruptKeys = append(corruptKeys, key)
		out.Corrupt = append(out.Corrupt, strings.TrimPrefix(key, battleKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan snapshots")
	}

	if input.DryRun || len(corruptKeys) == 0 {
		return out, nil
	}
	removed, err := client.Del(ctx, corruptKeys...).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete corrupt snapshots")
	}
	out.Deleted = int(removed)
	slog.Info("pruned corrupt snapshots", "checked", out.Checked, "deleted", out.Deleted)
	return out, nil
}
