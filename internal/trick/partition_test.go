package trick

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numbered returns n distinct cards c00, c01, ...
func numbered(n int) []Card {
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = Card(fmt.Sprintf("c%02d", i))
	}
	return cards
}

func TestPartition(t *testing.T) {
	selection := numbered(SelectionSize)
	groups, err := Partition(selection)
	require.NoError(t, err)

	for g := range groups {
		require.Len(t, groups[g], GroupSize)
	}
	for i, card := range selection {
		assert.Equalf(t, card, groups[i%3][i/3], "card %d", i)
	}

	want := []Card{"c01", "c04", "c07", "c10", "c13", "c16", "c19"}
	if diff := cmp.Diff(want, groups[1]); diff != "" {
		t.Errorf("middle group mismatch (-want +got):\n%s", diff)
	}
}

func TestPartitionWrongSize(t *testing.T) {
	for _, n := range []int{0, 20, 22} {
		_, err := Partition(numbered(n))
		assert.ErrorIsf(t, err, ErrSelectionSize, "n=%d", n)
	}
}

func TestReorganize(t *testing.T) {
	groups, err := Partition(numbered(SelectionSize))
	require.NoError(t, err)
	a, b, c := groups[0], groups[1], groups[2]

	tests := []struct {
		choice Group
		want   []Card
	}{
		{GroupA, slices.Concat(b, a, c)},
		{GroupB, slices.Concat(a, b, c)},
		{GroupC, slices.Concat(a, c, b)},
	}
	for _, tt := range tests {
		t.Run(tt.choice.String(), func(t *testing.T) {
			got, err := Reorganize(groups, tt.choice)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Reorganize(%s) mismatch (-want +got):\n%s", tt.choice, diff)
			}
		})
	}

	// Inputs are untouched.
	again, err := Partition(numbered(SelectionSize))
	require.NoError(t, err)
	assert.Equal(t, again, groups)
}

func TestReorganizeInvalidChoice(t *testing.T) {
	groups, err := Partition(numbered(SelectionSize))
	require.NoError(t, err)
	for _, choice := range []Group{NoChoice, 4, -1} {
		_, err := Reorganize(groups, choice)
		assert.ErrorIsf(t, err, ErrInvalidChoice, "choice=%d", choice)
	}
}

// A card in the chosen pile always lands in the middle third of the next
// selection, and so near the middle of whichever pile it is dealt into.
func TestReorganizeCentersChosenGroup(t *testing.T) {
	for _, choice := range []Group{GroupA, GroupB, GroupC} {
		for pos := range GroupSize {
			t.Run(fmt.Sprintf("%s/%d", choice, pos), func(t *testing.T) {
				groups, err := Partition(numbered(SelectionSize))
				require.NoError(t, err)
				const marker = Card("marker")
				groups[choice.index()][pos] = marker

				selection, err := Reorganize(groups, choice)
				require.NoError(t, err)
				idx := slices.Index(selection, marker)
				assert.GreaterOrEqual(t, idx, GroupSize)
				assert.Less(t, idx, 2*GroupSize)

				next, err := Partition(selection)
				require.NoError(t, err)
				pile := next[idx%NumGroups]
				at := slices.Index(pile, marker)
				assert.GreaterOrEqual(t, at, 2)
				assert.LessOrEqual(t, at, 4)
			})
		}
	}
}

func TestGroupString(t *testing.T) {
	assert.Equal(t, "A", GroupA.String())
	assert.Equal(t, "none", NoChoice.String())
	assert.Equal(t, "Group(7)", Group(7).String())
	assert.True(t, GroupC.Valid())
	assert.False(t, Group(0).Valid())
}
