package trick

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrNotEnoughCards is returned when more cards are requested than the
// catalogue holds.
var ErrNotEnoughCards = errors.New("not enough cards in catalogue")

// Sampler picks n distinct cards from a catalogue.
type Sampler interface {
	Sample(catalogue []Card, n int) ([]Card, error)
}

// ShuffleSampler shuffles a copy of the catalogue and keeps the first n cards.
type ShuffleSampler struct {
	rng *rand.Rand
}

// NewShuffleSampler returns a sampler whose draws are fully determined by seed.
func NewShuffleSampler(seed uint64) *ShuffleSampler {
	return &ShuffleSampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomSampler returns a sampler seeded by the runtime.
func NewRandomSampler() *ShuffleSampler {
	return NewShuffleSampler(rand.Uint64())
}

// Sample implements Sampler.
func (s *ShuffleSampler) Sample(catalogue []Card, n int) ([]Card, error) {
	if n < 0 || n > len(catalogue) {
		return nil, fmt.Errorf("%w: requested %d, have %d", ErrNotEnoughCards, n, len(catalogue))
	}
	deck := make([]Card, len(catalogue))
	copy(deck, catalogue)
	s.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck[:n:n], nil
}
