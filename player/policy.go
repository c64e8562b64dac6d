package player

import (
	"errors"
	"fmt"

	"blackjack/game"
)

type Action int

const (
	Hit Action = iota
	Stand
)

func (a Action) String() string {
	if a == Hit {
		return "hit"
	}
	return "stand"
}

// DefaultTarget is the total the count-driven policy stands on.
const DefaultTarget = 16

// ErrUndefinedDecision is returned alongside Stand when no rule covers the situation.
var ErrUndefinedDecision = errors.New("no policy decision for hand")

// Decide picks hit or stand for the player.
//
// A positive true count (high cards left) or a negative one (low cards left) selects the
// count-driven rules around target; a neutral count falls back to the static table.
// The dealer up-card checks under a non-zero count come after total checks that already
// cover every total, so they never fire.
func Decide(hand game.Hand, target int, trueCount float64, up game.Rank) (Action, error) {
	total := hand.Total()
	upValue := game.NewHand(up).Total()

	switch {
	case trueCount > 0:
		if total >= target {
			return Stand, nil
		} else if total < target {
			return Hit, nil
		} else if upValue >= 10 {
			return Stand, nil
		}

	case trueCount < 0:
		if total <= target {
			return Hit, nil
		} else if total > target {
			return Stand, nil
		} else if upValue < 10 {
			return Hit, nil
		}

	default:
		if total >= 17 {
			return Stand, nil
		} else if 11 < total && total < 17 && upValue < 7 {
			return Stand, nil
		} else if 11 < total && total < 17 && upValue > 6 {
			return Hit, nil
		} else if total < 12 {
			return Hit, nil
		}
	}

	return Stand, fmt.Errorf("%w: total=%d true_count=%v up=%s", ErrUndefinedDecision, total, trueCount, up)
}
