package engine

import (
	"fmt"

	"blackjack/counting"
	"blackjack/game"
)

// PlayDealer plays the dealer's hand to completion after the player stands on playerTotal.
// The dealer's cards already in hand must have been counted; every drawn card is counted here.
func PlayDealer(shoe *game.Shoe, dealer *game.Hand, playerTotal int, count counting.State, s counting.Strategy) (Result, counting.State, error) {
	for {
		// Hit until 17
		for dealer.Total() < dealerStandsOn {
			card, err := shoe.Next()
			if err != nil {
				return Loss, count, fmt.Errorf("dealer draw: %w", err)
			}
			dealer.Add(card)
			count = count.Observe(s, shoe.Remaining(), card)
		}

		total := dealer.Total()
		switch {
		case total == game.Blackjack:
			return Loss, count, nil
		case total > game.Blackjack:
			if dealer.DemoteAce() {
				continue
			}
			return Win, count, nil
		case total > playerTotal:
			return Loss, count, nil
		case total < playerTotal:
			return Win, count, nil
		default:
			return Draw, count, nil
		}
	}
}
