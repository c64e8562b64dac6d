package engine

import (
	"fmt"

	"blackjack/counting"
	"blackjack/game"
	"blackjack/player"

	"github.com/rs/zerolog/log"
)

// PlayRound deals one round from shoe and resolves it.
//
// Only cards the player can see are counted: both player cards and the dealer's up card
// at the deal, every hit, the hole card once revealed, and the dealer's draws.
func PlayRound(shoe *game.Shoe, count counting.State, s counting.Strategy, target int) (RoundOutcome, error) {
	// Deal
	mine, err := shoe.Draw(2)
	if err != nil {
		return RoundOutcome{Count: count}, fmt.Errorf("deal: %w", err)
	}
	theirs, err := shoe.Draw(2)
	if err != nil {
		return RoundOutcome{Count: count}, fmt.Errorf("deal: %w", err)
	}
	hand := game.NewHand(mine...)
	dealer := game.NewHand(theirs...)
	count = count.Observe(s, shoe.Remaining(), mine[0], mine[1], dealer.UpCard())

	// A pair of aces is 22 until one is demoted
	if hand.Total() > game.Blackjack {
		hand.DemoteAce()
	}

	// Natural
	if hand.Total() == game.Blackjack {
		count = count.ObserveHand(s, shoe.Remaining(), dealer, 1)
		if dealer.Total() == game.Blackjack {
			return RoundOutcome{Result: Draw, Count: count}, nil
		}
		return RoundOutcome{Result: Win, Count: count}, nil
	}

	// Player turn
	for {
		action, err := player.Decide(hand, target, count.True, dealer.UpCard())
		if err != nil {
			log.Warn().Err(err).Msg("defaulting to stand")
		}
		if action == player.Stand {
			break
		}

		card, err := shoe.Next()
		if err != nil {
			return RoundOutcome{Count: count}, fmt.Errorf("player hit: %w", err)
		}
		hand.Add(card)
		count = count.Observe(s, shoe.Remaining(), card)

		total := hand.Total()
		for total > game.Blackjack {
			if !hand.DemoteAce() {
				return RoundOutcome{Result: Loss, Count: count}, nil
			}
			total = hand.Total()
		}
		if total == game.Blackjack {
			return RoundOutcome{Result: Win, Count: count}, nil
		}
	}

	// Dealer turn, starting with the hole card
	count = count.ObserveHand(s, shoe.Remaining(), dealer, 1)
	result, count, err := PlayDealer(shoe, &dealer, hand.Total(), count, s)
	if err != nil {
		return RoundOutcome{Count: count}, err
	}
	return RoundOutcome{Result: result, Count: count}, nil
}
