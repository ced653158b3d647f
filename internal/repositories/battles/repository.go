// Package battles provides persistence for battle snapshots
package battles

//go:generate mockgen -destination=mock/mock_repository.go -package=battlesmock github.com/KirkDiggler/rpg-battle/internal/repositories/battles Repository

import (
	"context"
	"time"

	entities "github.com/KirkDiggler/rpg-battle/internal/entities/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Snapshot is the persisted form of a battle. The state carries the RNG, so a snapshot
// restores a battle that continues exactly as the original would have.
type Snapshot struct {
	ID string `json:"id"`

	// Seed the battle was created with
	Seed uint64 `json:"seed"`

	// Last committed state
	State *entities.State `json:"state"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SaveInput contains the snapshot to store
type SaveInput struct {
	Snapshot *Snapshot
	// TTL overrides the repository default when set
	TTL time.Duration
}

// SaveOutput contains the stored snapshot with its timestamps filled in
type SaveOutput struct {
	Snapshot *Snapshot
}

// GetInput contains parameters for retrieving a snapshot
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved snapshot
type GetOutput struct {
	Snapshot *Snapshot
}

// DeleteInput contains parameters for deleting a snapshot
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of deleting a snapshot
type DeleteOutput struct{}

// Repository defines the storage interface for battle snapshots
type Repository interface {
	// Save creates or replaces a snapshot
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a snapshot by battle ID
	// Returns errors.NotFound if the snapshot doesn't exist or has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a snapshot
	// Returns errors.NotFound if the snapshot doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

const (
	// DefaultTTL is how long an untouched snapshot is kept
	DefaultTTL = 24 * time.Hour

	errSnapshotNil = "snapshot cannot be nil"
	errIDEmpty     = "battle ID cannot be empty"
	errStateNil    = "snapshot state cannot be nil"
)

func validateSnapshot(snapshot *Snapshot) error {
	if snapshot == nil {
		return errors.InvalidArgument(errSnapshotNil)
	}
	if snapshot.ID == "" {
		return errors.InvalidArgument(errIDEmpty)
	}
	if snapshot.State == nil {
		return errors.InvalidArgument(errStateNil)
	}
	return nil
}

// stamp fills in the timestamps of a snapshot being saved at now
func stamp(snapshot *Snapshot, now time.Time, ttl time.Duration) *Snapshot {
	out := *snapshot
	out.State = snapshot.State.Clone()
	if out.CreatedAt.IsZero() {
		out.CreatedAt = now
	}
	out.UpdatedAt = now
	out.ExpiresAt = now.Add(ttl)
	return &out
}
