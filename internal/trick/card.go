package trick

import "fmt"

// Card identifies one playing card. It doubles as the name of its SVG asset.
type Card string

// AssetDir is where the card images are served from.
var AssetDir = "/web/cards"

// AssetPath returns the URL of the card image. The file is assumed to exist.
func AssetPath(c Card) string {
	return fmt.Sprintf("%s/%s.svg", AssetDir, c)
}

var (
	suits = []string{"club", "diamond", "heart", "spades"}
	ranks = []string{"ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "jack", "queen", "king"}
)

// Catalogue returns the 52 cards of a standard deck, clubs first, ace to king
// within each suit. A new slice is returned on each call.
func Catalogue() []Card {
	cards := make([]Card, 0, len(suits)*len(ranks))
	for _, suit := range suits {
		for _, rank := range ranks {
			cards = append(cards, Card(fmt.Sprintf("front_%s_%s", suit, rank)))
		}
	}
	return cards
}
