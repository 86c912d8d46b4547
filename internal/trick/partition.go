package trick

import (
	"errors"
	"fmt"
)

const (
	// NumGroups is the number of piles the selection is dealt into.
	NumGroups = 3

	// GroupSize is the number of cards in each pile.
	GroupSize = 7

	// SelectionSize is the number of cards used by one trick.
	SelectionSize = NumGroups * GroupSize

	// revealIndex is the middle card of the middle third.
	revealIndex = SelectionSize / 2
)

var (
	// ErrInvalidChoice is returned when a choice is not one of GroupA, GroupB or GroupC.
	ErrInvalidChoice = errors.New("invalid group choice")

	// ErrSelectionSize is returned when a selection does not hold exactly SelectionSize cards.
	ErrSelectionSize = errors.New("selection has wrong size")
)

// Group is the 1-based ordinal of a pile on screen, as reported by a click.
type Group int

const (
	NoChoice Group = iota
	GroupA
	GroupB
	GroupC
)

// Valid reports whether g names one of the three piles.
func (g Group) Valid() bool {
	return g >= GroupA && g <= GroupC
}

func (g Group) String() string {
	switch g {
	case GroupA:
		return "A"
	case GroupB:
		return "B"
	case GroupC:
		return "C"
	case NoChoice:
		return "none"
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// index returns the 0-based position of the pile. g must be valid.
func (g Group) index() int {
	return int(g) - 1
}

// Partition deals the selection round-robin: card i goes to pile i%3 at
// position i/3. Relative order is kept within each pile.
func Partition(selection []Card) ([NumGroups][]Card, error) {
	var groups [NumGroups][]Card
	if len(selection) != SelectionSize {
		return groups, fmt.Errorf("%w: got %d cards, want %d", ErrSelectionSize, len(selection), SelectionSize)
	}
	for i := range groups {
		groups[i] = make([]Card, 0, GroupSize)
	}
	for i, card := range selection {
		groups[i%NumGroups] = append(groups[i%NumGroups], card)
	}
	return groups, nil
}

// Reorganize stacks the three piles back into one selection with the chosen
// pile in the middle third:
//
//	A -> B, A, C
//	B -> A, B, C
//	C -> A, C, B
//
// The input piles are not modified.
func Reorganize(groups [NumGroups][]Card, choice Group) ([]Card, error) {
	var order [NumGroups]int
	switch choice {
	case GroupA:
		order = [NumGroups]int{1, 0, 2}
	case GroupB:
		order = [NumGroups]int{0, 1, 2}
	case GroupC:
		order = [NumGroups]int{0, 2, 1}
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidChoice, int(choice))
	}

	total := 0
	for _, g := range groups {
		total += len(g)
	}
	selection := make([]Card, 0, total)
	for _, idx := range order {
		selection = append(selection, groups[idx]...)
	}
	return selection, nil
}
