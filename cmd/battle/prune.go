package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/redis"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/battles"
)

func newPruneCmd() *cobra.Command {
	var (
		redisAddr string
		dryRun    bool
	)
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete battle snapshots that no longer decode",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("redis") {
				cfg.RedisAddr = redisAddr
			}
			if cfg.RedisAddr == "" {
				return errors.InvalidArgument("a redis address is required (--redis or BATTLE_REDIS_ADDR)")
			}

			client, err := redis.NewClient(cfg.RedisAddr, nil)
			if err != nil {
				return errors.Wrap(err, "failed to create redis client")
			}
			defer func() { _ = client.Close() }()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runPrune(ctx, cmd.OutOrStdout(), client, dryRun)
		},
	}

	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address holding the snapshots")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list corrupt snapshots without deleting them")
	return cmd
}

func runPrune(ctx context.Context, out io.Writer, client redis.Client, dryRun bool) error {
	result, err := battles.Prune(ctx, client, battles.PruneInput{DryRun: dryRun})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "checked %d snapshots, %d corrupt\n", result.Checked, len(result.Corrupt))
	for _, id := range result.Corrupt {
		fmt.Fprintf(out, "  - %s\n", id)
	}
	if !dryRun {
		fmt.Fprintf(out, "deleted %d\n", result.Deleted)
	}
	return nil
}
