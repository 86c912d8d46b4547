package trick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleSamplerDistinct(t *testing.T) {
	catalogue := Catalogue()
	inCatalogue := make(map[Card]bool, len(catalogue))
	for _, c := range catalogue {
		inCatalogue[c] = true
	}

	for seed := range uint64(50) {
		got, err := NewShuffleSampler(seed).Sample(catalogue, SelectionSize)
		require.NoError(t, err)
		require.Len(t, got, SelectionSize)

		seen := make(map[Card]bool)
		for _, c := range got {
			require.Truef(t, inCatalogue[c], "seed %d: %s not in catalogue", seed, c)
			require.Falsef(t, seen[c], "seed %d: duplicate %s", seed, c)
			seen[c] = true
		}
	}
}

func TestShuffleSamplerDeterministic(t *testing.T) {
	a, err := NewShuffleSampler(42).Sample(Catalogue(), SelectionSize)
	require.NoError(t, err)
	b, err := NewShuffleSampler(42).Sample(Catalogue(), SelectionSize)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestShuffleSamplerLeavesCatalogue(t *testing.T) {
	catalogue := Catalogue()
	_, err := NewRandomSampler().Sample(catalogue, len(catalogue))
	require.NoError(t, err)
	assert.Equal(t, Catalogue(), catalogue)
}

func TestShuffleSamplerWholeCatalogue(t *testing.T) {
	catalogue := Catalogue()
	got, err := NewShuffleSampler(7).Sample(catalogue, len(catalogue))
	require.NoError(t, err)
	assert.ElementsMatch(t, catalogue, got)
}

func TestShuffleSamplerTooMany(t *testing.T) {
	for _, n := range []int{53, -1} {
		_, err := NewShuffleSampler(1).Sample(Catalogue(), n)
		assert.ErrorIsf(t, err, ErrNotEnoughCards, "n=%d", n)
	}
}
