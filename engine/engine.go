package engine

import "blackjack/counting"

const (
	// DefaultDecks is the number of decks in a fresh shoe.
	DefaultDecks = 6
	// MinShoeDepth is the fewest cards a shoe must hold for another round to start.
	MinShoeDepth = 12

	dealerStandsOn = 17
)

type Result int

const (
	Win Result = iota
	Loss
	Draw
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// RoundOutcome is the player's result for one round and the count after it.
type RoundOutcome struct {
	Result Result
	Count  counting.State
}

// Counts returns the result as a (wins, losses, draws) unit vector.
func (o RoundOutcome) Counts() (wins, losses, draws int) {
	switch o.Result {
	case Win:
		return 1, 0, 0
	case Loss:
		return 0, 1, 0
	default:
		return 0, 0, 1
	}
}
