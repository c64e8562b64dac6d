package game

import "errors"

const (
	DeckSize     = 52
	SuitsPerDeck = 4

	// Blackjack is the best possible hand total.
	Blackjack = 21
)

// ErrExhaustedShoe is returned when more cards are requested than the shoe holds.
var ErrExhaustedShoe = errors.New("shoe exhausted")
