package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/dex"
	"github.com/KirkDiggler/rpg-battle/internal/engine"
	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-battle/internal/redis"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/battles"
)

type simulateFlags struct {
	format    string
	seed      uint64
	maxTurns  int
	redisAddr string
}

func newSimulateCmd() *cobra.Command {
	flags := &simulateFlags{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a seeded battle between two bots",
		Long: `Simulate creates a battle, joins two bots with the sample roster and plays it to the end.
Configuration comes from BATTLE_* environment variables; flags take precedence.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "invalid config")
			}
			return runSimulate(cmd.Context(), cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "battle format (singles or doubles)")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "rng seed, 0 draws one at random")
	cmd.Flags().IntVar(&flags.maxTurns, "max-turns", 0, "give up after this many turns")
	cmd.Flags().StringVar(&flags.redisAddr, "redis", "", "redis address for snapshots, in-memory when empty")
	return cmd
}

func (f *simulateFlags) apply(cmd *cobra.Command, cfg *config) {
	if cmd.Flags().Changed("format") {
		cfg.Format = f.format
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = f.seed
	}
	if cmd.Flags().Changed("max-turns") {
		cfg.MaxTurns = f.maxTurns
	}
	if cmd.Flags().Changed("redis") {
		cfg.RedisAddr = f.redisAddr
	}
}

func runSimulate(ctx context.Context, cmd *cobra.Command, cfg *config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	level, _ := cfg.level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	d := dex.Standard()
	eng, err := engine.New(&engine.Config{Dex: d})
	if err != nil {
		return errors.Wrap(err, "failed to create engine")
	}

	repo, err := newRepository(cfg)
	if err != nil {
		return err
	}

	svc, err := battle.NewOrchestrator(&battle.Config{
		Engine:      eng,
		Repository:  repo,
		IDGenerator: idgen.NewUUID("battle"),
		EventBus:    newLoggingBus(events.NewBus()),
		SnapshotTTL: cfg.SnapshotTTL,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create orchestrator")
	}

	var seed *uint64
	if cfg.Seed != 0 {
		seed = &cfg.Seed
	}
	summary, err := simulate(ctx, svc, &simulation{
		Format:   entities.FormatID(cfg.Format),
		Seed:     seed,
		Roster:   dex.SampleTeam(d),
		MaxTurns: cfg.MaxTurns,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "battle %s (seed %d) finished after %d turns\n", summary.BattleID, summary.Seed, summary.Turns)
	if summary.Winner == 0 {
		fmt.Fprintln(out, "result: draw")
	} else {
		fmt.Fprintf(out, "result: side %d wins\n", summary.Winner)
	}
	return nil
}

func newRepository(cfg *config) (battles.Repository, error) {
	if cfg.RedisAddr == "" {
		return battles.NewInMemory(nil), nil
	}
	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}
	repo, err := battles.NewRedisRepository(&battles.Config{
		Client: client,
		Clock:  clock.New(),
		TTL:    cfg.SnapshotTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis repository")
	}
	return repo, nil
}
