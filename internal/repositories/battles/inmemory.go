package battles

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	ttl   time.Duration
	store map[string]*Snapshot
}

// NewInMemory creates a new in-memory repository. A nil clock uses the system clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		ttl:   DefaultTTL,
		store: make(map[string]*Snapshot),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a snapshot
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSnapshot(input.Snapshot); err != nil {
		return nil, err
	}
	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}
	snapshot := stamp(input.Snapshot, r.clock.Now(), ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[snapshot.ID] = snapshot

	return &SaveOutput{Snapshot: copySnapshot(snapshot)}, nil
}

// Get retrieves a snapshot by battle ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, exists := r.store[input.ID]
	if !exists || r.clock.Now().After(snapshot.ExpiresAt) {
		return nil, errors.NotFoundf("battle %s not found", input.ID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Snapshot: copySnapshot(snapshot)}, nil
}

// Delete removes a snapshot
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("battle %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

func copySnapshot(s *Snapshot) *Snapshot {
	out := *s
	out.State = s.State.Clone()
	return &out
}
