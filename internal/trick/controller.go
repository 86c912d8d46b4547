package trick

import (
	"fmt"

	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// Phase is the behaviour applied by the next call to Controller.Advance.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseAfterFirstChoice
	PhaseAfterSecondChoice
	PhaseRevealed
	PhaseIdle
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "Init"
	case PhaseAfterFirstChoice:
		return "AfterFirstChoice"
	case PhaseAfterSecondChoice:
		return "AfterSecondChoice"
	case PhaseRevealed:
		return "Revealed"
	case PhaseIdle:
		return "Idle"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Messages shown on the info surface after each phase.
const (
	MsgInit         = "Select a card and click on the group to which it belongs."
	MsgFirstChoice  = "Great job! Now, click again on the group where your selected card is located."
	MsgSecondChoice = "Fantastic! We are almost there. Do it one more time!"
	MsgRevealed     = "Is this your card?"
)

// Controller runs one trick. It keeps the selection and the piles itself and
// mirrors them into its surfaces, so the trick works even when a surface is
// missing.
//
// A Controller is not safe for concurrent use; it is meant to be driven from
// the UI event loop.
type Controller struct {
	id        string
	catalogue []Card
	sampler   Sampler
	surfaces  Surfaces

	round     int
	selection []Card
	groups    [NumGroups][]Card
	revealed  Card
}

// NewController creates a trick over the standard Catalogue. Call Start to deal.
func NewController(sampler Sampler, surfaces Surfaces) *Controller {
	return NewControllerWithCatalogue(Catalogue(), sampler, surfaces)
}

// NewControllerWithCatalogue is like NewController but draws from the given
// cards instead. The catalogue is copied.
func NewControllerWithCatalogue(catalogue []Card, sampler Sampler, surfaces Surfaces) *Controller {
	cat := make([]Card, len(catalogue))
	copy(cat, catalogue)
	return &Controller{
		id:        uuid.NewString(),
		catalogue: cat,
		sampler:   sampler,
		surfaces:  surfaces,
	}
}

// ID identifies the trick in logs.
func (c *Controller) ID() string { return c.id }

// Round returns the number of transitions performed so far.
func (c *Controller) Round() int { return c.round }

// Phase returns the phase the next Advance will apply.
func (c *Controller) Phase() Phase {
	if c.round >= int(PhaseIdle) {
		return PhaseIdle
	}
	return Phase(c.round)
}

// Selection returns a copy of the current ordered cards.
func (c *Controller) Selection() []Card {
	selection := make([]Card, len(c.selection))
	copy(selection, c.selection)
	return selection
}

// Groups returns a copy of the three current piles.
func (c *Controller) Groups() [NumGroups][]Card {
	var groups [NumGroups][]Card
	for i, g := range c.groups {
		groups[i] = make([]Card, len(g))
		copy(groups[i], g)
	}
	return groups
}

// Revealed returns the revealed card, once the trick is over.
func (c *Controller) Revealed() (Card, bool) {
	return c.revealed, c.revealed != ""
}

// Start deals the cards. It is the same as Advance(NoChoice).
func (c *Controller) Start() error {
	return c.Advance(NoChoice)
}

// Advance applies the current phase using the user's choice and moves to the
// next round. The choice is ignored when dealing and after the reveal.
//
// If the choice is required but invalid, ErrInvalidChoice is returned and
// nothing changes, the round counter included.
func (c *Controller) Advance(choice Group) error {
	phase := c.Phase()
	klog.V(1).Infof("trick %s: round %d, phase %s, choice %s", c.id, c.round, phase, choice)

	switch phase {
	case PhaseInit:
		selection, err := c.sampler.Sample(c.catalogue, SelectionSize)
		if err != nil {
			return fmt.Errorf("trick %s: dealing: %w", c.id, err)
		}
		if err := c.deal(selection); err != nil {
			return err
		}
		c.show(MsgInit)

	case PhaseAfterFirstChoice, PhaseAfterSecondChoice:
		selection, err := Reorganize(c.groups, choice)
		if err != nil {
			return fmt.Errorf("trick %s: round %d: %w", c.id, c.round, err)
		}
		if err := c.deal(selection); err != nil {
			return err
		}
		if phase == PhaseAfterFirstChoice {
			c.show(MsgFirstChoice)
		} else {
			c.show(MsgSecondChoice)
		}

	case PhaseRevealed:
		selection, err := Reorganize(c.groups, choice)
		if err != nil {
			return fmt.Errorf("trick %s: round %d: %w", c.id, c.round, err)
		}
		c.selection = selection
		for _, s := range c.surfaces.Groups {
			if s != nil {
				s.Hide()
			}
		}
		c.revealed = c.selection[revealIndex]
		if c.surfaces.Result != nil {
			c.surfaces.Result.Add(c.revealed)
		}
		c.show(MsgRevealed)
		klog.Infof("trick %s: revealed %s", c.id, c.revealed)

	case PhaseIdle:
		// Nothing left to do.
	}

	c.round++
	return nil
}

// Highlight turns the focus highlight of a pile on or off. It does not
// change the trick state.
func (c *Controller) Highlight(g Group, on bool) {
	if !g.Valid() {
		return
	}
	if s := c.surfaces.Groups[g.index()]; s != nil {
		s.SetHighlight(on)
	}
}

// deal replaces the selection and redraws the three piles.
func (c *Controller) deal(selection []Card) error {
	groups, err := Partition(selection)
	if err != nil {
		return fmt.Errorf("trick %s: %w", c.id, err)
	}
	c.selection = selection
	c.groups = groups
	for i, s := range c.surfaces.Groups {
		if s == nil {
			continue
		}
		s.Clear()
		for _, card := range groups[i] {
			s.Add(card)
		}
	}
	return nil
}

func (c *Controller) show(message string) {
	if c.surfaces.Info != nil {
		c.surfaces.Info.Show(message)
	}
}
