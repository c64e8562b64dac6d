package counting

import (
	"math"

	"blackjack/game"
)

// State is the count carried from round to round within one shoe.
type State struct {
	Running float64
	True    float64
}

// RunningCount adds the weights of newly seen cards to prev.
func RunningCount(prev float64, seen []game.Rank, s Strategy) float64 {
	for _, c := range seen {
		prev += s.Weight(c, false)
	}
	return prev
}

// TrueCount scales the running count by the whole decks left in the shoe and
// rounds half to even. With less than one deck left the running count is returned as is.
func TrueCount(running float64, remaining int) float64 {
	decks := remaining / game.DeckSize
	if decks < 1 {
		return running
	}
	return math.RoundToEven(running / float64(decks))
}

// Observe counts freshly revealed cards and refreshes the true count.
func (st State) Observe(s Strategy, remaining int, seen ...game.Rank) State {
	running := RunningCount(st.Running, seen, s)
	return State{Running: running, True: TrueCount(running, remaining)}
}

// ObserveHand counts the cards of hand from index from onwards, honouring demoted aces.
func (st State) ObserveHand(s Strategy, remaining int, hand game.Hand, from int) State {
	running := st.Running
	for i := from; i < len(hand.Cards); i++ {
		running += s.Weight(hand.Cards[i], hand.IsDemoted(i))
	}
	return State{Running: running, True: TrueCount(running, remaining)}
}
