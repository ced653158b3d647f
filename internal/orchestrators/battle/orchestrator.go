// Package battle implements the battle orchestrator: it hosts live battles for remote
// players, serializes their commands and persists a snapshot after every accepted command.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-battle/internal/engine"
	battleengine "github.com/KirkDiggler/rpg-battle/internal/engine/battle"
	"github.com/KirkDiggler/rpg-battle/internal/engine/rng"
	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/battles"
)

// Service defines the interface for hosting battles
type Service interface {
	// CreateBattle creates an empty battle waiting for two players
	CreateBattle(ctx context.Context, input *CreateBattleInput) (*CreateBattleOutput, error)

	// JoinBattle registers a roster as the next side
	JoinBattle(ctx context.Context, input *JoinBattleInput) (*JoinBattleOutput, error)

	// SelectTeam picks a side's roster subset during team preview
	SelectTeam(ctx context.Context, input *SelectTeamInput) (*SelectTeamOutput, error)

	// SubmitMove chooses a move for one of a side's active slots
	SubmitMove(ctx context.Context, input *SubmitMoveInput) (*SubmitMoveOutput, error)

	// SubmitSwitch stages a switch, or fills a slot during a forced switch
	SubmitSwitch(ctx context.Context, input *SubmitSwitchInput) (*SubmitSwitchOutput, error)

	// GetBattle returns the battle as seen by a side, with that side's pending prompt
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)

	// DeleteBattle drops a battle from memory and storage
	DeleteBattle(ctx context.Context, input *DeleteBattleInput) (*DeleteBattleOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	Engine      engine.Engine
	Repository  battles.Repository
	IDGenerator idgen.Generator
	// EventBus receives every battle's log. Optional.
	EventBus events.EventBus
	// SnapshotTTL overrides the repository default when set
	SnapshotTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.SnapshotTTL < 0 {
		vb.Fieldf("SnapshotTTL", "must not be negative, got %s", c.SnapshotTTL)
	}

	return vb.Build()
}

type orchestrator struct {
	engine engine.Engine
	repo   battles.Repository
	idGen  idgen.Generator
	bus    events.EventBus
	ttl    time.Duration

	mu   sync.Mutex
	live map[string]*session
}

// session is a live battle. Its mutex serializes commands; engine callbacks run while it
// is held.
type session struct {
	mu        sync.Mutex
	battle    *battleengine.Battle
	seed      uint64
	createdAt time.Time
	prompts   []*promptRecorder
}

func (s *session) recorder(side int) *promptRecorder {
	if side < 1 || side > len(s.prompts) {
		return nil
	}
	return s.prompts[side-1]
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine: cfg.Engine,
		repo:   cfg.Repository,
		idGen:  cfg.IDGenerator,
		bus:    cfg.EventBus,
		ttl:    cfg.SnapshotTTL,
		live:   make(map[string]*session),
	}, nil
}

func (o *orchestrator) battleConfig(id string, seed uint64, format entities.Format) *battleengine.Config {
	return &battleengine.Config{
		ID:       id,
		Engine:   o.engine,
		Format:   format,
		Seed:     seed,
		EventBus: o.bus,
	}
}

// CreateBattle creates an empty battle waiting for two players
func (o *orchestrator) CreateBattle(ctx context.Context, input *CreateBattleInput) (*CreateBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	format, ok := entities.FormatFor(input.Format)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown format: %s", input.Format).
			WithMeta("format", string(input.Format))
	}
	seed := rng.NewSeed()
	if input.Seed != nil {
		seed = *input.Seed
	}

	battleID := o.idGen.Generate()
	b, err := battleengine.New(o.battleConfig(battleID, seed, format))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create battle")
	}

	sess := &session{battle: b, seed: seed}
	saved, err := o.save(ctx, sess)
	if err != nil {
		return nil, err
	}
	sess.createdAt = saved.CreatedAt

	o.mu.Lock()
	o.live[battleID] = sess
	o.mu.Unlock()

	slog.Info("battle created",
		"battle_id", battleID,
		"format", format.ID,
		"seed", seed,
	)

	return &CreateBattleOutput{
		BattleID: battleID,
		Format:   format,
		Seed:     seed,
	}, nil
}

// JoinBattle registers a roster as the next side
func (o *orchestrator) JoinBattle(ctx context.Context, input *JoinBattleInput) (*JoinBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("BattleID", input.BattleID, vb)
	if len(input.Roster) == 0 {
		vb.RequiredField("Roster")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var side int
	out := &JoinBattleOutput{}
	err := o.run(ctx, input.BattleID, func(sess *session) error {
		rec := &promptRecorder{}
		var err error
		side, err = sess.battle.SetPlayer(ctx, input.Roster, rec)
		if err != nil {
			return err
		}
		sess.prompts = append(sess.prompts, rec)
		out.Side = side
		out.Phase = sess.battle.Phase()
		out.Prompt = promptFor(sess.battle, rec, side)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("player joined battle",
		"battle_id", input.BattleID,
		"side", side,
		"roster_size", len(input.Roster),
	)
	return out, nil
}

// SelectTeam picks a side's roster subset during team preview
func (o *orchestrator) SelectTeam(ctx context.Context, input *SelectTeamInput) (*SelectTeamOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateTarget(input.BattleID, input.Side); err != nil {
		return nil, err
	}

	out := &SelectTeamOutput{}
	err := o.run(ctx, input.BattleID, func(sess *session) error {
		if err := sess.battle.Select(ctx, input.Side, input.Indices); err != nil {
			return err
		}
		out.Phase, out.Turn = sess.battle.Phase(), sess.battle.Turn()
		out.Prompt = promptFor(sess.battle, sess.recorder(input.Side), input.Side)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitMove chooses a move for one of a side's active slots
func (o *orchestrator) SubmitMove(ctx context.Context, input *SubmitMoveInput) (*SubmitMoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateTarget(input.BattleID, input.Side); err != nil {
		return nil, err
	}

	out := &SubmitMoveOutput{}
	err := o.run(ctx, input.BattleID, func(sess *session) error {
		if err := sess.battle.Move(ctx, input.Side, input.Slot, input.Move, input.Target); err != nil {
			return err
		}
		out.Phase, out.Turn = sess.battle.Phase(), sess.battle.Turn()
		out.Prompt = promptFor(sess.battle, sess.recorder(input.Side), input.Side)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitSwitch stages a switch, or fills a slot during a forced switch
func (o *orchestrator) SubmitSwitch(ctx context.Context, input *SubmitSwitchInput) (*SubmitSwitchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateTarget(input.BattleID, input.Side); err != nil {
		return nil, err
	}

	out := &SubmitSwitchOutput{}
	err := o.run(ctx, input.BattleID, func(sess *session) error {
		if err := sess.battle.Switch(ctx, input.Side, input.Slot, input.Bench); err != nil {
			return err
		}
		out.Phase, out.Turn = sess.battle.Phase(), sess.battle.Turn()
		out.Prompt = promptFor(sess.battle, sess.recorder(input.Side), input.Side)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetBattle returns the battle as seen by a side, with that side's pending prompt
func (o *orchestrator) GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	sess, err := o.load(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	b := sess.battle
	state := b.State()
	out := &GetBattleOutput{
		BattleID: input.BattleID,
		Format:   b.Format(),
		Phase:    b.Phase(),
		Turn:     b.Turn(),
		Players:  len(state.Players),
		Result:   state.Result,
	}
	if input.Side != 0 {
		if state.Player(input.Side) == nil {
			return nil, errors.NotFoundf("side %d has not joined battle %s", input.Side, input.BattleID)
		}
		view := b.View(input.Side)
		out.View = &view
		out.Prompt = promptFor(b, sess.recorder(input.Side), input.Side)
	}
	return out, nil
}

// DeleteBattle drops a battle from memory and storage
func (o *orchestrator) DeleteBattle(ctx context.Context, input *DeleteBattleInput) (*DeleteBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	// the live battle is evicted only once its snapshot is gone
	_, err := o.repo.Delete(ctx, battles.DeleteInput{ID: input.BattleID})
	if err != nil && !errors.IsNotFound(err) {
		return nil, errors.Wrapf(err, "failed to delete battle %s", input.BattleID)
	}

	o.mu.Lock()
	_, live := o.live[input.BattleID]
	delete(o.live, input.BattleID)
	o.mu.Unlock()

	if err != nil && !live {
		return nil, errors.Wrapf(err, "failed to delete battle %s", input.BattleID)
	}

	slog.Info("battle deleted", "battle_id", input.BattleID)
	return &DeleteBattleOutput{}, nil
}

func validateTarget(battleID string, side int) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("BattleID", battleID, vb)
	errors.ValidateRange("Side", side, 1, entities.NumPlayers, vb)
	return vb.Build()
}

// run applies a command to a battle under its lock and persists the result. A battle whose
// snapshot could not be saved is evicted, so the next load resumes from storage.
func (o *orchestrator) run(ctx context.Context, battleID string, command func(sess *session) error) error {
	sess, err := o.load(ctx, battleID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	turn, phase := sess.battle.Turn(), sess.battle.Phase()
	if err := command(sess); err != nil {
		slog.Warn("battle command rejected",
			"battle_id", battleID,
			"phase", sess.battle.Phase(),
			"error", err,
		)
		return err
	}

	if _, err := o.save(ctx, sess); err != nil {
		o.mu.Lock()
		if o.live[battleID] == sess {
			delete(o.live, battleID)
		}
		o.mu.Unlock()
		return err
	}

	if sess.battle.Turn() != turn {
		slog.Info("battle advanced",
			"battle_id", battleID,
			"turn", sess.battle.Turn(),
			"phase", sess.battle.Phase(),
		)
	}
	if result, ok := sess.battle.Result(); ok && phase != entities.PhaseEnd {
		slog.Info("battle ended", "battle_id", battleID, "winner", result.Winner)
	}
	return nil
}

func (o *orchestrator) save(ctx context.Context, sess *session) (*battles.Snapshot, error) {
	out, err := o.repo.Save(ctx, battles.SaveInput{
		Snapshot: &battles.Snapshot{
			ID:        sess.battle.ID(),
			Seed:      sess.seed,
			State:     sess.battle.State(),
			CreatedAt: sess.createdAt,
		},
		TTL: o.ttl,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save battle %s", sess.battle.ID())
	}
	return out.Snapshot, nil
}

// load returns the live session for a battle, restoring it from its snapshot when needed
func (o *orchestrator) load(ctx context.Context, battleID string) (*session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if sess, ok := o.live[battleID]; ok {
		return sess, nil
	}

	got, err := o.repo.Get(ctx, battles.GetInput{ID: battleID})
	if err != nil {
		return nil, err
	}
	snapshot := got.Snapshot
	b, err := battleengine.Restore(o.battleConfig(battleID, snapshot.Seed, snapshot.State.Format), snapshot.State)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to restore battle").
			WithMeta("battle_id", battleID)
	}

	sess := &session{battle: b, seed: snapshot.Seed, createdAt: snapshot.CreatedAt}
	for side := 1; side <= len(snapshot.State.Players); side++ {
		rec := &promptRecorder{}
		if err := b.Attach(side, rec); err != nil {
			return nil, errors.Wrapf(err, "failed to reattach side %d", side)
		}
		sess.prompts = append(sess.prompts, rec)
	}
	o.live[battleID] = sess

	slog.Info("battle restored from snapshot",
		"battle_id", battleID,
		"phase", b.Phase(),
		"turn", b.Turn(),
	)
	return sess, nil
}
