package game

// Deck is an ordered collection of cards.
type Deck []Card

// FullDeck returns all NumCards distinct cards, ordered by Key.
func FullDeck() Deck {
	deck := make(Deck, 0, NumCards)
	for _, count := range Counts {
		for _, shape := range Shapes {
			for _, fill := range Fills {
				for _, color := range Colors {
					deck = append(deck, Card{Count: count, Shape: shape, Fill: fill, Color: color})
				}
			}
		}
	}
	return deck
}

// Distinct reports whether no card appears twice in the deck.
// A deck holding an invalid card is never distinct.
func (d Deck) Distinct() bool {
	var seen [NumCards]bool
	for _, c := range d {
		if c.Validate() != nil {
			return false
		}
		k := c.Key()
		if seen[k] {
			return false
		}
		seen[k] = true
	}
	return true
}
