package trick

// GroupSurface displays one pile of cards.
type GroupSurface interface {
	// Add appends one card to the pile.
	Add(c Card)
	// Clear removes all cards.
	Clear()
	// Count returns the number of cards currently shown.
	Count() int
	// Cards returns the cards currently shown, in order.
	Cards() []Card
	// SetHighlight turns the focus highlight on or off.
	SetHighlight(on bool)
	// Hide clears the pile and removes it from view.
	Hide()
}

// ResultSurface displays the revealed card.
type ResultSurface interface {
	Add(c Card)
}

// InfoSurface displays instructions to the user.
type InfoSurface interface {
	Show(message string)
}

// Surfaces is everything a Controller renders into. Any of them may be nil,
// in which case rendering to it is skipped.
type Surfaces struct {
	Groups [NumGroups]GroupSurface
	Result ResultSurface
	Info   InfoSurface
}

// Pile is an in-memory GroupSurface and ResultSurface. The frontend renders
// its contents.
type Pile struct {
	cards       []Card
	highlighted bool
	hidden      bool
}

// NewPile returns an empty, visible pile.
func NewPile() *Pile {
	return &Pile{}
}

func (p *Pile) Add(c Card) { p.cards = append(p.cards, c) }

func (p *Pile) Clear() { p.cards = nil }

func (p *Pile) Count() int { return len(p.cards) }

// Cards returns a copy of the pile.
func (p *Pile) Cards() []Card {
	if len(p.cards) == 0 {
		return []Card{}
	}
	cards := make([]Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) SetHighlight(on bool) { p.highlighted = on }

func (p *Pile) Highlighted() bool { return p.highlighted }

func (p *Pile) Hide() {
	p.Clear()
	p.hidden = true
}

func (p *Pile) Hidden() bool { return p.hidden }

// Notice is an in-memory InfoSurface holding the last message shown.
type Notice struct {
	text string
}

func (n *Notice) Show(message string) { n.text = message }

func (n *Notice) Text() string { return n.text }
