package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Shoe is the stack of cards a session deals from. It is never refilled.
type Shoe struct {
	cards []Rank // Top of the shoe is the last element
}

// NewShoe builds numDecks standard decks and shuffles them with rng.
func NewShoe(numDecks int, rng *rand.Rand) *Shoe {
	if numDecks <= 0 {
		panic("shoe needs at least one deck")
	}

	cards := make([]Rank, 0, DeckSize*numDecks)
	for i := 0; i < SuitsPerDeck*numDecks; i++ {
		cards = append(cards, Ranks()...)
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Shoe{cards: cards}
}

// NewStackedShoe returns a shoe holding exactly the given cards, the first one on top.
func NewStackedShoe(top ...Rank) *Shoe {
	cards := make([]Rank, len(top))
	for i, r := range top {
		cards[len(top)-1-i] = r
	}
	return &Shoe{cards: cards}
}

// Draw removes and returns the top n cards in the order they were dealt.
func (s *Shoe) Draw(n int) ([]Rank, error) {
	if n < 0 {
		panic("cannot draw a negative number of cards")
	}
	if n > len(s.cards) {
		return nil, fmt.Errorf("%w: drawing %d with %d remaining", ErrExhaustedShoe, n, len(s.cards))
	}

	drawn := make([]Rank, n)
	for i := range drawn {
		drawn[i] = s.cards[len(s.cards)-1-i]
	}
	s.cards = s.cards[:len(s.cards)-n]
	return drawn, nil
}

// Next draws a single card.
func (s *Shoe) Next() (Rank, error) {
	drawn, err := s.Draw(1)
	if err != nil {
		return 0, err
	}
	return drawn[0], nil
}

func (s *Shoe) Remaining() int {
	return len(s.cards)
}
