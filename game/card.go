package game

import (
	"fmt"

	"blackjack/utils"
)

type Rank int

const (
	Two   Rank = iota // 0
	Three             // 1
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace // 12
)

// NumRanks is the number of distinct ranks in a standard deck.
const NumRanks = 13

var rankNames = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Ranks returns every rank in ascending order, ace last.
func Ranks() []Rank {
	ranks := make([]Rank, NumRanks)
	for i := range ranks {
		ranks[i] = Rank(i)
	}
	return ranks
}

// ParseRank converts a rank name such as "10" or "Q" back into a Rank.
func ParseRank(name string) (Rank, error) {
	i := utils.FindIndex(rankNames, name)
	if i < 0 {
		return 0, fmt.Errorf("unknown rank %q", name)
	}
	return Rank(i), nil
}

func (r Rank) String() string {
	if r < Two || r > Ace {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Value is the face value of the rank, with an ace counted as 11.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	default:
		return int(r) + 2
	}
}
