// Package rng provides the seeded random source used for every chance-based decision in a
// battle. Its full generator state round-trips through bytes so it can live in the battle
// state and replay identically.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// increment is the fixed second half of the PCG seed
const increment = 0x9e3779b97f4a7c15

// Source is a dice.Roller over a serialisable PCG generator. It is not safe for concurrent
// use; the engine owns one per transition.
type Source struct {
	pcg *mrand.PCG
}

var _ dice.Roller = (*Source)(nil)

// New returns a source seeded from a single value
func New(seed uint64) *Source {
	return &Source{pcg: mrand.NewPCG(seed, increment)}
}

// Restore rebuilds a source from bytes produced by State
func Restore(state []byte) (*Source, error) {
	if len(state) == 0 {
		return nil, errors.FailedPrecondition("rng has not been seeded")
	}
	pcg := &mrand.PCG{}
	if err := pcg.UnmarshalBinary(state); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to restore rng state")
	}
	return &Source{pcg: pcg}, nil
}

// Seed returns the serialised initial state for a seed
func Seed(seed uint64) []byte {
	return New(seed).State()
}

// NewSeed draws a fresh seed from the operating system
func NewSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// State serialises the current generator state
func (s *Source) State() []byte {
	out, err := s.pcg.MarshalBinary()
	if err != nil {
		// PCG marshalling cannot fail
		panic(err)
	}
	return out
}

// Roll returns a value in [1, size]
func (s *Source) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("invalid die size: %d", size)
	}
	return int(s.pcg.Uint64()%uint64(size)) + 1, nil
}

// RollN rolls count dice of the given size
func (s *Source) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("invalid dice count: %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Between returns a value in [lo, hi] drawn from r
func Between(r dice.Roller, lo, hi int) (int, error) {
	v, err := r.Roll(hi - lo + 1)
	if err != nil {
		return 0, err
	}
	return lo + v - 1, nil
}
