package game

import (
	"fmt"
	"math/rand/v2"
)

// Rand is the source of randomness used by a Dealer.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniformly distributed integer in [0, n).
	IntN(n int) int
}

// Dealer deals random cards, distractors and rounds.
//
// A Dealer is not safe for concurrent use: it owns its Rand.
type Dealer struct {
	rng Rand
}

// NewDealer creates a Dealer drawing from rng.
func NewDealer(rng Rand) *Dealer {
	return &Dealer{rng: rng}
}

// NewSeededDealer creates a Dealer with a PCG generator seeded with seed.
// The same seed always deals the same sequence of rounds.
func NewSeededDealer(seed uint64) *Dealer {
	return NewDealer(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// RandomCard draws each attribute independently and uniformly.
func (d *Dealer) RandomCard() Card {
	return Card{
		Count: Counts[d.rng.IntN(len(Counts))],
		Shape: Shapes[d.rng.IntN(len(Shapes))],
		Fill:  Fills[d.rng.IntN(len(Fills))],
		Color: Colors[d.rng.IntN(len(Colors))],
	}
}

// Generate returns n pairwise distinct random cards, in the order they were drawn.
//
// It fails with ErrDomainExhausted if n > NumCards, and with
// ErrAttemptLimitExceeded if MaxGenerateAttempts draws were not enough.
func (d *Dealer) Generate(n int) (Deck, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid number of cards %d", n)
	}
	if n > NumCards {
		return nil, fmt.Errorf("requested %d cards, only %d exist: %w", n, NumCards, ErrDomainExhausted)
	}
	var seen [NumCards]bool
	cards := make(Deck, 0, n)
	for attempt := 0; len(cards) < n; attempt++ {
		if attempt >= MaxGenerateAttempts {
			return nil, fmt.Errorf("got %d of %d distinct cards after %d draws: %w",
				len(cards), n, attempt, ErrAttemptLimitExceeded)
		}
		card := d.RandomCard()
		if k := card.Key(); !seen[k] {
			seen[k] = true
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// shuffle permutes options in place with Fisher-Yates.
func (d *Dealer) shuffle(options []Option) {
	for i := len(options) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		options[i], options[j] = options[j], options[i]
	}
}
